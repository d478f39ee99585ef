package models

import "time"

type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	InquiryID   uint      `json:"inquiryId"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	Description string    `gorm:"type:text" json:"description"`
	Read        bool      `gorm:"default:false" json:"read"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Inquiry     *Inquiry  `json:"inquiry,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:InquiryID;references:ID"`
}
