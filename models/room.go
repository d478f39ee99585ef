package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"pueblastay/constants"
)

type Room struct {
	RoomId            uint            `json:"id" gorm:"primaryKey"`
	PropertyID        uint            `json:"propertyId"`
	RoomNumber        string          `json:"roomNumber"` // String: puede ser "3A", no solo dígitos
	Type              string          `json:"type"`       // private | shared
	BathroomType      string          `json:"bathroomType"`
	DescriptionEs     string          `json:"descriptionEs" gorm:"type:text"`
	DescriptionEn     string          `json:"descriptionEn" gorm:"type:text"`
	Images            json.RawMessage `json:"images" gorm:"type:json"`
	Amenities         json.RawMessage `json:"amenities" gorm:"type:json"` // Lista libre de texto
	Available         bool            `json:"available" gorm:"default:true"`
	AvailableFrom     *time.Time      `json:"availableFrom"` // nil = sin límite
	AvailableTo       *time.Time      `json:"availableTo"`
	HasPrivateKitchen bool            `json:"hasPrivateKitchen"`
	IsEntirePlace     bool            `json:"isEntirePlace"`
	Semester          string          `json:"semester"` // "" | primavera | otono
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Parent            Property        `json:"parent" gorm:"foreignKey:PropertyID"`
	Bookings          []Booking       `json:"bookings,omitempty" gorm:"foreignKey:RoomID"`
}

// SortValue da el valor numérico del número de cuarto para ordenar.
// No numérico cuenta como 0, igual que el parseInt del front viejo.
func (r *Room) SortValue() int {
	n, err := strconv.Atoi(leadingDigits(r.RoomNumber))
	if err != nil {
		return 0
	}
	return n
}

func leadingDigits(s string) string {
	for i, ch := range s {
		if ch < '0' || ch > '9' {
			return s[:i]
		}
	}
	return s
}

func (r *Room) ValidateType() error {
	if r.Type != constants.RoomTypePrivate && r.Type != constants.RoomTypeShared {
		return fmt.Errorf("invalid type: %q, must be private or shared", r.Type)
	}
	if r.BathroomType != constants.BathroomPrivate && r.BathroomType != constants.BathroomShared {
		return fmt.Errorf("invalid bathroomType: %q, must be private or shared", r.BathroomType)
	}
	return nil
}

func (r *Room) ValidateSemester() error {
	switch r.Semester {
	case "", constants.SemesterSpring, constants.SemesterFall:
		return nil
	}
	return fmt.Errorf("invalid semester: %q", r.Semester)
}
