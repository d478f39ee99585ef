package services

import (
	"fmt"
	"time"

	"pueblastay/constants"
	"pueblastay/dto"
	"pueblastay/models"
)

// Granularidad del tablero de ocupación.
const (
	GranularityMonth     = "month"
	GranularityHalfMonth = "half-month"
)

// MinBarWidthPercent evita que reservas cortas desaparezcan del tablero.
const MinBarWidthPercent = 2.0

var spanishMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// ClampPeriodCount limita el número de periodos visibles a 1..12.
func ClampPeriodCount(n int) int {
	if n < 1 {
		return 1
	}
	if n > 12 {
		return 12
	}
	return n
}

// GeneratePeriods arma la lista ordenada de periodos a partir del mes de
// start. Mes completo o medio mes (1-15 / 16-fin).
func GeneratePeriods(start time.Time, granularity string, count int) []dto.TimelinePeriod {
	count = ClampPeriodCount(count)
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)

	var periods []dto.TimelinePeriod
	cursor := first
	for len(periods) < count {
		monthEnd := cursor.AddDate(0, 1, 0)
		label := fmt.Sprintf("%s %d", spanishMonths[cursor.Month()-1], cursor.Year())

		if granularity == GranularityHalfMonth {
			mid := time.Date(cursor.Year(), cursor.Month(), 16, 0, 0, 0, 0, time.UTC)
			periods = append(periods, dto.TimelinePeriod{Label: label + " (1)", Start: cursor, End: mid})
			if len(periods) < count {
				periods = append(periods, dto.TimelinePeriod{Label: label + " (2)", Start: mid, End: monthEnd})
			}
		} else {
			periods = append(periods, dto.TimelinePeriod{Label: label, Start: cursor, End: monthEnd})
		}
		cursor = monthEnd
	}
	return periods
}

// periodIndexes localiza el primer y último periodo que toca el rango de
// la reserva. Regresa ok=false si la reserva cae fuera del tablero.
func periodIndexes(b *models.Booking, periods []dto.TimelinePeriod) (first, last int, ok bool) {
	first, last = -1, -1
	for i, p := range periods {
		if b.CheckIn.Before(p.End) && b.CheckOut.After(p.Start) {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	return first, last, first != -1
}

// fraction posiciona t dentro del periodo como proporción de su duración,
// recortada a [0, 1] para que la barra no se salga de la rejilla.
func fraction(t time.Time, p dto.TimelinePeriod) float64 {
	dur := p.End.Sub(p.Start)
	if dur <= 0 {
		return 0
	}
	f := float64(t.Sub(p.Start)) / float64(dur)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// StatusColor pinta la barra según el estado de la reserva.
func StatusColor(status string) string {
	switch status {
	case constants.BookingStatusActive:
		return "#ef4444" // rojo
	case constants.BookingStatusUpcoming:
		return "#3b82f6" // azul
	case constants.BookingStatusCompleted:
		return "#9ca3af"
	default:
		return "#d1d5db" // cancelled
	}
}

// LayoutBar calcula la posición de la barra como porcentajes del ancho
// total del tablero. La fracción dentro del periodo se escala por la
// rebanada (100 / total de periodos); el ancho tiene piso de 2% para que
// las reservas cortas sigan visibles.
func LayoutBar(b *models.Booking, periods []dto.TimelinePeriod) (dto.TimelineBar, bool) {
	firstIdx, lastIdx, ok := periodIndexes(b, periods)
	if !ok {
		return dto.TimelineBar{}, false
	}

	slice := 100.0 / float64(len(periods))
	left := (float64(firstIdx) + fraction(b.CheckIn, periods[firstIdx])) * slice
	right := (float64(lastIdx) + fraction(b.CheckOut, periods[lastIdx])) * slice

	width := right - left
	if width < MinBarWidthPercent {
		width = MinBarWidthPercent
	}
	if left+width > 100 {
		width = 100 - left
	}

	return dto.TimelineBar{
		BookingID:    b.ID,
		RoomID:       b.RoomID,
		GuestName:    b.GuestName,
		Status:       b.Status,
		Color:        StatusColor(b.Status),
		LeftPercent:  left,
		WidthPercent: width,
	}, true
}

// BuildTimeline arma el tablero completo: una fila por cuarto con sus
// barras, en el orden numérico de cuartos que usa todo el dashboard.
func BuildTimeline(rooms []models.Room, bookings []models.Booking, periods []dto.TimelinePeriod) dto.TimelineResponse {
	SortRoomsByNumber(rooms)

	barsByRoom := make(map[uint][]dto.TimelineBar)
	for i := range bookings {
		if bar, ok := LayoutBar(&bookings[i], periods); ok {
			barsByRoom[bookings[i].RoomID] = append(barsByRoom[bookings[i].RoomID], bar)
		}
	}

	rows := make([]dto.TimelineRow, 0, len(rooms))
	for i := range rooms {
		room := &rooms[i]
		rows = append(rows, dto.TimelineRow{
			RoomID:     room.RoomId,
			RoomNumber: room.RoomNumber,
			Property:   room.Parent.NameEs,
			Bars:       barsByRoom[room.RoomId],
		})
	}

	return dto.TimelineResponse{Periods: periods, Rows: rows}
}
