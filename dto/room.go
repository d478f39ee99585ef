package dto

import (
	"encoding/json"
	"time"
)

type RoomRequest struct {
	RoomId            uint            `json:"id"`
	PropertyID        uint            `json:"propertyId" binding:"required"`
	RoomNumber        string          `json:"roomNumber" binding:"required"`
	Type              string          `json:"type" binding:"required"`
	BathroomType      string          `json:"bathroomType" binding:"required"`
	DescriptionEs     string          `json:"descriptionEs"`
	DescriptionEn     string          `json:"descriptionEn"`
	Images            json.RawMessage `json:"images"`
	Amenities         json.RawMessage `json:"amenities"`
	Available         bool            `json:"available"`
	AvailableFrom     *string         `json:"availableFrom"`
	AvailableTo       *string         `json:"availableTo"`
	HasPrivateKitchen bool            `json:"hasPrivateKitchen"`
	IsEntirePlace     bool            `json:"isEntirePlace"`
	Semester          string          `json:"semester"`
}

type RoomResponse struct {
	RoomId            uint            `json:"id"`
	RoomNumber        string          `json:"roomNumber"`
	Type              string          `json:"type"`
	BathroomType      string          `json:"bathroomType"`
	Description       string          `json:"description"`
	Images            json.RawMessage `json:"images"`
	Amenities         json.RawMessage `json:"amenities"`
	Available         bool            `json:"available"`
	AvailableFrom     *time.Time      `json:"availableFrom"`
	AvailableTo       *time.Time      `json:"availableTo"`
	HasPrivateKitchen bool            `json:"hasPrivateKitchen"`
	IsEntirePlace     bool            `json:"isEntirePlace"`
	Semester          string          `json:"semester"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
	Parents           Parents         `json:"parents"`
}

// Parents es el DTO con la información de la propiedad padre del cuarto
type Parents struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
