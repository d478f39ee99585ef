package dto

import "time"

type BookingRequest struct {
	ID         uint   `json:"id"`
	RoomID     uint   `json:"roomId" binding:"required"`
	GuestName  string `json:"guestName" binding:"required"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`
	CheckIn    string `json:"checkIn" binding:"required"`
	CheckOut   string `json:"checkOut" binding:"required"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
	StudentID  *uint  `json:"studentId"`
}

type BookingResponse struct {
	ID         uint      `json:"id"`
	RoomID     uint      `json:"roomId"`
	RoomNumber string    `json:"roomNumber"`
	PropertyID uint      `json:"propertyId"`
	Property   string    `json:"property"`
	GuestName  string    `json:"guestName"`
	GuestEmail string    `json:"guestEmail"`
	GuestPhone string    `json:"guestPhone"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// BookingStatusRequest cambia solo el estado de la reserva (el staff lo
// escoge a mano en un dropdown; no hay transición automática por fecha).
type BookingStatusRequest struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// TimelineBar es una barra del tablero de ocupación.
type TimelineBar struct {
	BookingID    uint    `json:"bookingId"`
	RoomID       uint    `json:"roomId"`
	GuestName    string  `json:"guestName"`
	Status       string  `json:"status"`
	Color        string  `json:"color"`
	LeftPercent  float64 `json:"leftPercent"`
	WidthPercent float64 `json:"widthPercent"`
}

// TimelinePeriod es una columna del tablero (mes o medio mes).
type TimelinePeriod struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TimelineRow agrupa las barras de un cuarto.
type TimelineRow struct {
	RoomID     uint          `json:"roomId"`
	RoomNumber string        `json:"roomNumber"`
	Property   string        `json:"property"`
	Bars       []TimelineBar `json:"bars"`
}

type TimelineResponse struct {
	Periods []TimelinePeriod `json:"periods"`
	Rows    []TimelineRow    `json:"rows"`
}
