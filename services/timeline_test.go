package services

import (
	"testing"
	"time"

	"pueblastay/constants"
	"pueblastay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPeriodCount(t *testing.T) {
	assert.Equal(t, 1, ClampPeriodCount(0))
	assert.Equal(t, 1, ClampPeriodCount(-5))
	assert.Equal(t, 6, ClampPeriodCount(6))
	assert.Equal(t, 12, ClampPeriodCount(30))
}

func TestGeneratePeriodsMonth(t *testing.T) {
	periods := GeneratePeriods(day(2026, time.January, 15), GranularityMonth, 3)

	require.Len(t, periods, 3)
	assert.Equal(t, "ene 2026", periods[0].Label)
	assert.Equal(t, day(2026, time.January, 1), periods[0].Start)
	assert.Equal(t, day(2026, time.February, 1), periods[0].End)
	assert.Equal(t, day(2026, time.April, 1), periods[2].End)

	// Periodos contiguos sin huecos
	for i := 1; i < len(periods); i++ {
		assert.Equal(t, periods[i-1].End, periods[i].Start)
	}
}

func TestGeneratePeriodsHalfMonth(t *testing.T) {
	periods := GeneratePeriods(day(2026, time.February, 3), GranularityHalfMonth, 4)

	require.Len(t, periods, 4)
	assert.Equal(t, day(2026, time.February, 1), periods[0].Start)
	assert.Equal(t, day(2026, time.February, 16), periods[0].End)
	assert.Equal(t, day(2026, time.February, 16), periods[1].Start)
	assert.Equal(t, day(2026, time.March, 1), periods[1].End)
	// Febrero con su fin real, no día 30
	assert.Equal(t, day(2026, time.March, 16), periods[2].End)
}

func TestLayoutBarContainment(t *testing.T) {
	periods := GeneratePeriods(day(2026, time.January, 1), GranularityMonth, 6)

	cases := []models.Booking{
		// Reserva que cruza varios meses
		{ID: 1, RoomID: 1, CheckIn: day(2026, time.February, 10), CheckOut: day(2026, time.May, 20), Status: constants.BookingStatusActive},
		// Reserva de un solo día: piso de 2%
		{ID: 2, RoomID: 1, CheckIn: day(2026, time.March, 10), CheckOut: day(2026, time.March, 11), Status: constants.BookingStatusUpcoming},
		// Entra antes del tablero
		{ID: 3, RoomID: 1, CheckIn: day(2025, time.November, 1), CheckOut: day(2026, time.February, 1), Status: constants.BookingStatusCompleted},
		// Sale después del tablero
		{ID: 4, RoomID: 1, CheckIn: day(2026, time.June, 15), CheckOut: day(2026, time.September, 1), Status: constants.BookingStatusUpcoming},
	}

	for _, b := range cases {
		bar, ok := LayoutBar(&b, periods)
		require.True(t, ok, "booking %d", b.ID)

		// La barra siempre cabe en el tablero
		assert.GreaterOrEqual(t, bar.LeftPercent, 0.0, "booking %d", b.ID)
		assert.LessOrEqual(t, bar.LeftPercent+bar.WidthPercent, 100.0+1e-9, "booking %d", b.ID)
		assert.GreaterOrEqual(t, bar.WidthPercent, 0.0, "booking %d", b.ID)
	}
}

func TestLayoutBarMinWidth(t *testing.T) {
	periods := GeneratePeriods(day(2026, time.January, 1), GranularityMonth, 12)

	short := models.Booking{
		ID:       1,
		RoomID:   1,
		CheckIn:  day(2026, time.June, 10),
		CheckOut: day(2026, time.June, 11),
		Status:   constants.BookingStatusUpcoming,
	}

	bar, ok := LayoutBar(&short, periods)
	require.True(t, ok)
	assert.GreaterOrEqual(t, bar.WidthPercent, MinBarWidthPercent)
}

func TestLayoutBarOutsideWindow(t *testing.T) {
	periods := GeneratePeriods(day(2026, time.January, 1), GranularityMonth, 3)

	outside := models.Booking{
		ID:       1,
		RoomID:   1,
		CheckIn:  day(2026, time.August, 1),
		CheckOut: day(2026, time.September, 1),
		Status:   constants.BookingStatusUpcoming,
	}

	_, ok := LayoutBar(&outside, periods)
	assert.False(t, ok)
}

func TestLayoutBarPosition(t *testing.T) {
	// Cuatro meses, cada rebanada vale 25%
	periods := GeneratePeriods(day(2026, time.January, 1), GranularityMonth, 4)

	// Todo febrero: del 25% al 50%
	full := models.Booking{
		ID:       1,
		RoomID:   1,
		CheckIn:  day(2026, time.February, 1),
		CheckOut: day(2026, time.March, 1),
		Status:   constants.BookingStatusActive,
	}

	bar, ok := LayoutBar(&full, periods)
	require.True(t, ok)
	assert.InDelta(t, 25.0, bar.LeftPercent, 1e-9)
	assert.InDelta(t, 25.0, bar.WidthPercent, 1e-9)
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "#ef4444", StatusColor(constants.BookingStatusActive))
	assert.Equal(t, "#3b82f6", StatusColor(constants.BookingStatusUpcoming))
	assert.Equal(t, "#9ca3af", StatusColor(constants.BookingStatusCompleted))
	assert.Equal(t, "#d1d5db", StatusColor(constants.BookingStatusCancelled))
}

func TestBuildTimelineRows(t *testing.T) {
	periods := GeneratePeriods(day(2026, time.January, 1), GranularityMonth, 6)

	rooms := []models.Room{
		{RoomId: 1, RoomNumber: "10", Parent: models.Property{NameEs: "Casa Centro"}},
		{RoomId: 2, RoomNumber: "2", Parent: models.Property{NameEs: "Casa Centro"}},
	}
	bookings := []models.Booking{
		{ID: 1, RoomID: 1, CheckIn: day(2026, time.February, 1), CheckOut: day(2026, time.April, 1), Status: constants.BookingStatusActive},
		{ID: 2, RoomID: 1, CheckIn: day(2026, time.May, 1), CheckOut: day(2026, time.June, 1), Status: constants.BookingStatusUpcoming},
	}

	timeline := BuildTimeline(rooms, bookings, periods)

	require.Len(t, timeline.Rows, 2)
	// Las filas salen en orden numérico de cuarto
	assert.Equal(t, "2", timeline.Rows[0].RoomNumber)
	assert.Equal(t, "10", timeline.Rows[1].RoomNumber)

	assert.Empty(t, timeline.Rows[0].Bars)
	assert.Len(t, timeline.Rows[1].Bars, 2)
	assert.Equal(t, "Casa Centro", timeline.Rows[1].Property)
}
