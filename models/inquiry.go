package models

import (
	"fmt"
	"time"

	"pueblastay/constants"
)

type Inquiry struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Instagram  string    `json:"instagram"`
	Career     string    `json:"career"`
	Country    string    `json:"country"`
	University string    `json:"university"`
	PropertyID *uint     `json:"propertyId"`
	RoomID     *uint     `json:"roomId"`
	Message    string    `json:"message" gorm:"type:text"`
	Type       string    `json:"type" gorm:"default:contact"`
	Status     string    `json:"status" gorm:"default:new"`
	Notes      string    `json:"notes" gorm:"type:text"` // Notas internas del staff
	StudentID  *uint     `json:"studentId"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Property   *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	Room       *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

func (i *Inquiry) ValidateType() error {
	switch i.Type {
	case constants.InquiryTypeContact, constants.InquiryTypeReservation, constants.InquiryTypePropertyListing:
		return nil
	}
	return fmt.Errorf("invalid type: %q", i.Type)
}
