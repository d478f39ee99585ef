package models

import (
	"encoding/json"
	"time"
)

type Property struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Slug          string          `json:"slug" gorm:"uniqueIndex"` // Llave de URL, generada del nombre
	NameEs        string          `json:"nameEs"`
	NameEn        string          `json:"nameEn"`
	LocationEs    string          `json:"locationEs"`
	LocationEn    string          `json:"locationEn"`
	DescriptionEs string          `json:"descriptionEs" gorm:"type:text"`
	DescriptionEn string          `json:"descriptionEn" gorm:"type:text"`
	Address       string          `json:"address"`
	Zone          string          `json:"zone"` // Colonia / zona de Puebla
	Images        json.RawMessage `json:"images" gorm:"type:json"`
	Longitude     float64         `json:"longitude"`
	Latitude      float64         `json:"latitude"`
	GooglePlaceID string          `json:"googlePlaceId"`
	Available     bool            `json:"available" gorm:"default:true"`
	AvailableFrom *time.Time      `json:"availableFrom"`
	WhatsappPhone string          `json:"whatsappPhone"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms         []Room          `json:"rooms" gorm:"foreignKey:PropertyID"`
	CommonAreas   []CommonArea    `json:"commonAreas" gorm:"many2many:property_common_areas;"`
}

// Name regresa el nombre según el locale; fr cae a en porque nunca
// existieron columnas en francés.
func (p *Property) Name(locale string) string {
	if locale == "es" {
		return p.NameEs
	}
	return p.NameEn
}

func (p *Property) Description(locale string) string {
	if locale == "es" {
		return p.DescriptionEs
	}
	return p.DescriptionEn
}

func (p *Property) Location(locale string) string {
	if locale == "es" {
		return p.LocationEs
	}
	return p.LocationEn
}
