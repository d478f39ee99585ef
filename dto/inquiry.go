package dto

import "time"

// InquiryRequest es el body del formulario público de contacto/reserva.
// El estado siempre inicia en "new", sin importar lo que mande el cliente.
type InquiryRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone"`
	Instagram  string `json:"instagram"`
	Career     string `json:"career"`
	Country    string `json:"country"`
	University string `json:"university"`
	PropertyID *uint  `json:"propertyId"`
	RoomID     *uint  `json:"roomId"`
	Message    string `json:"message"`
	Type       string `json:"type"`
}

// InquiryUpdateRequest reemplaza el inquiry completo desde el dashboard.
type InquiryUpdateRequest struct {
	ID         uint   `json:"id" binding:"required"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Instagram  string `json:"instagram"`
	Career     string `json:"career"`
	Country    string `json:"country"`
	University string `json:"university"`
	PropertyID *uint  `json:"propertyId"`
	RoomID     *uint  `json:"roomId"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
	StudentID  *uint  `json:"studentId"`
}

// InquiryStatusRequest es el atajo del pipeline: clic en un icono de paso.
type InquiryStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type InquiryResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Instagram  string    `json:"instagram"`
	Career     string    `json:"career"`
	Country    string    `json:"country"`
	University string    `json:"university"`
	PropertyID *uint     `json:"propertyId"`
	RoomID     *uint     `json:"roomId"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	StepIndex  int       `json:"stepIndex"` // -1 para rejected/archived
	Terminal   bool      `json:"terminal"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
