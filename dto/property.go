package dto

import (
	"encoding/json"
	"time"

	"pueblastay/models"
)

// PropertyRequest es el body de crear/actualizar propiedad. El guardado
// es de reemplazo completo, sin patch parcial.
type PropertyRequest struct {
	ID            uint            `json:"id"`
	NameEs        string          `json:"nameEs" binding:"required"`
	NameEn        string          `json:"nameEn"`
	LocationEs    string          `json:"locationEs"`
	LocationEn    string          `json:"locationEn"`
	DescriptionEs string          `json:"descriptionEs"`
	DescriptionEn string          `json:"descriptionEn"`
	Address       string          `json:"address"`
	Zone          string          `json:"zone"`
	Images        json.RawMessage `json:"images"`
	Longitude     float64         `json:"longitude"`
	Latitude      float64         `json:"latitude"`
	GooglePlaceID string          `json:"googlePlaceId"`
	Available     bool            `json:"available"`
	AvailableFrom *string         `json:"availableFrom"`
	WhatsappPhone string          `json:"whatsappPhone"`
	CommonAreaIDs []int           `json:"commonAreaIds"`
}

type PropertyResponse struct {
	ID            uint                `json:"id"`
	Slug          string              `json:"slug"`
	Name          string              `json:"name"`
	Location      string              `json:"location"`
	Zone          string              `json:"zone"`
	Address       string              `json:"address"`
	Images        json.RawMessage     `json:"images"`
	Longitude     float64             `json:"longitude"`
	Latitude      float64             `json:"latitude"`
	Available     bool                `json:"available"`
	AvailableFrom *time.Time          `json:"availableFrom"`
	CommonAreas   []models.CommonArea `json:"commonAreas"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type PropertyDetailResponse struct {
	PropertyResponse
	Description   string         `json:"description"`
	GooglePlaceID string         `json:"googlePlaceId"`
	WhatsappLink  string         `json:"whatsappLink,omitempty"`
	Rooms         []RoomResponse `json:"rooms"`
}

type ScoredProperty struct {
	Property models.Property `json:"property"`
	Score    int             `json:"score"`
}

// ReviewResponse es una reseña de Google Places, solo lectura.
type ReviewResponse struct {
	Author  string  `json:"author"`
	Rating  float64 `json:"rating"`
	Text    string  `json:"text"`
	TimeAgo string  `json:"timeAgo"`
}
