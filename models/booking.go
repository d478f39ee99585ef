package models

import (
	"fmt"
	"time"

	"pueblastay/constants"
)

type Booking struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RoomID     uint      `json:"roomId" gorm:"index"`
	GuestName  string    `json:"guestName"`
	GuestEmail string    `json:"guestEmail"`
	GuestPhone string    `json:"guestPhone"`
	CheckIn    time.Time `json:"checkIn" gorm:"index"`
	CheckOut   time.Time `json:"checkOut" gorm:"index"`
	Status     string    `json:"status" gorm:"default:upcoming"`
	Notes      string    `json:"notes" gorm:"type:text"`
	StudentID  *uint     `json:"studentId"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Room       *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// Blocking indica si la reserva cuenta para ocupación. Canceladas y
// completadas nunca bloquean disponibilidad.
func (b *Booking) Blocking() bool {
	return b.Status == constants.BookingStatusActive || b.Status == constants.BookingStatusUpcoming
}

// Overlaps aplica la prueba de intervalos semiabiertos [checkIn, checkOut):
// existente.check_in < nuevo.check_out AND existente.check_out > nuevo.check_in.
// El día de salida queda libre.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn)
}

func (b *Booking) ValidateStatus() error {
	switch b.Status {
	case constants.BookingStatusActive, constants.BookingStatusUpcoming,
		constants.BookingStatusCompleted, constants.BookingStatusCancelled:
		return nil
	}
	return fmt.Errorf("invalid status: %q", b.Status)
}

func (b *Booking) ValidateDates() error {
	if !b.CheckOut.After(b.CheckIn) {
		return fmt.Errorf("check_out must be after check_in")
	}
	return nil
}
