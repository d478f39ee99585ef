package services

import (
	"testing"
	"time"

	"pueblastay/constants"
	"pueblastay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlapBoundaryExclusive(t *testing.T) {
	// Reserva existente del 10 al 20
	existing := models.Booking{
		RoomID:   1,
		CheckIn:  day(2026, time.March, 10),
		CheckOut: day(2026, time.March, 20),
		Status:   constants.BookingStatusUpcoming,
	}

	// Entrar el día exacto de la salida no es conflicto
	assert.False(t, ConflictsWindow(&existing, day(2026, time.March, 20), day(2026, time.March, 25)))

	// Salir el día exacto de la entrada tampoco
	assert.False(t, ConflictsWindow(&existing, day(2026, time.March, 5), day(2026, time.March, 10)))

	// Un día de traslape ya bloquea
	assert.True(t, ConflictsWindow(&existing, day(2026, time.March, 19), day(2026, time.March, 25)))
	assert.True(t, ConflictsWindow(&existing, day(2026, time.March, 5), day(2026, time.March, 11)))

	// Rango contenido y rango que envuelve
	assert.True(t, ConflictsWindow(&existing, day(2026, time.March, 12), day(2026, time.March, 15)))
	assert.True(t, ConflictsWindow(&existing, day(2026, time.March, 1), day(2026, time.March, 30)))
}

func TestCancelledAndCompletedNeverBlock(t *testing.T) {
	window := []struct {
		status string
		blocks bool
	}{
		{constants.BookingStatusActive, true},
		{constants.BookingStatusUpcoming, true},
		{constants.BookingStatusCompleted, false},
		{constants.BookingStatusCancelled, false},
	}

	for _, tc := range window {
		b := models.Booking{
			RoomID:   1,
			CheckIn:  day(2026, time.March, 10),
			CheckOut: day(2026, time.March, 20),
			Status:   tc.status,
		}
		got := ConflictsWindow(&b, day(2026, time.March, 12), day(2026, time.March, 15))
		assert.Equal(t, tc.blocks, got, "status %s", tc.status)
	}
}

func TestRoomOpenForWindow(t *testing.T) {
	from := day(2026, time.August, 1)
	to := day(2026, time.December, 31)

	room := models.Room{RoomId: 1, Available: true, AvailableFrom: &from, AvailableTo: &to}

	// Ventana dentro del rango del cuarto
	assert.True(t, RoomOpenForWindow(&room, day(2026, time.September, 1), day(2026, time.November, 30)))

	// Entrada antes del available_from
	assert.False(t, RoomOpenForWindow(&room, day(2026, time.July, 15), day(2026, time.September, 1)))

	// Salida después del available_to
	assert.False(t, RoomOpenForWindow(&room, day(2026, time.November, 1), day(2027, time.January, 15)))

	// Bandera apagada gana sobre todo
	room.Available = false
	assert.False(t, RoomOpenForWindow(&room, day(2026, time.September, 1), day(2026, time.October, 1)))

	// Sin fechas = abierto sin límite
	open := models.Room{RoomId: 2, Available: true}
	assert.True(t, RoomOpenForWindow(&open, day(2026, time.January, 1), day(2030, time.January, 1)))
}

func TestFilterAvailableRoomsScenario(t *testing.T) {
	// Cinco cuartos de una casa: el 3 ocupado, el 4 con la bandera
	// apagada, el 5 abre hasta octubre
	octFirst := day(2026, time.October, 1)
	rooms := []models.Room{
		{RoomId: 1, PropertyID: 1, RoomNumber: "1", Type: constants.RoomTypePrivate, Available: true},
		{RoomId: 2, PropertyID: 1, RoomNumber: "2", Type: constants.RoomTypeShared, Available: true},
		{RoomId: 3, PropertyID: 1, RoomNumber: "3", Type: constants.RoomTypePrivate, Available: true},
		{RoomId: 4, PropertyID: 1, RoomNumber: "4", Type: constants.RoomTypePrivate, Available: false},
		{RoomId: 5, PropertyID: 1, RoomNumber: "5", Type: constants.RoomTypePrivate, Available: true, AvailableFrom: &octFirst},
	}
	bookings := []models.Booking{
		{RoomID: 3, CheckIn: day(2026, time.August, 15), CheckOut: day(2026, time.December, 15), Status: constants.BookingStatusActive},
		// Cancelada sobre el cuarto 1: no debe bloquear
		{RoomID: 1, CheckIn: day(2026, time.August, 1), CheckOut: day(2026, time.December, 31), Status: constants.BookingStatusCancelled},
	}

	checkIn := day(2026, time.September, 1)
	checkOut := day(2026, time.December, 1)

	free := FilterAvailableRooms(rooms, bookings, checkIn, checkOut, AvailabilityFilters{})
	require.Len(t, free, 2)
	assert.Equal(t, uint(1), free[0].RoomId)
	assert.Equal(t, uint(2), free[1].RoomId)

	// Con filtro de tipo solo queda el privado
	free = FilterAvailableRooms(rooms, bookings, checkIn, checkOut, AvailabilityFilters{Type: constants.RoomTypePrivate})
	require.Len(t, free, 1)
	assert.Equal(t, uint(1), free[0].RoomId)
}

func TestFilterAvailableRoomsByZoneAndName(t *testing.T) {
	centro := models.Property{ID: 1, NameEs: "Casa Centro", NameEn: "Downtown House", Zone: "centro"}
	cholula := models.Property{ID: 2, NameEs: "Casa Cholula", NameEn: "Cholula House", Zone: "cholula"}

	rooms := []models.Room{
		{RoomId: 1, PropertyID: 1, RoomNumber: "1", Available: true, Parent: centro},
		{RoomId: 2, PropertyID: 2, RoomNumber: "1", Available: true, Parent: cholula},
	}

	checkIn := day(2026, time.September, 1)
	checkOut := day(2026, time.December, 1)

	// Zona sin distinguir mayúsculas
	free := FilterAvailableRooms(rooms, nil, checkIn, checkOut, AvailabilityFilters{Zone: "Cholula"})
	require.Len(t, free, 1)
	assert.Equal(t, uint(2), free[0].RoomId)

	// Nombre por subcadena, en cualquiera de los dos idiomas
	free = FilterAvailableRooms(rooms, nil, checkIn, checkOut, AvailabilityFilters{Name: "downtown"})
	require.Len(t, free, 1)
	assert.Equal(t, uint(1), free[0].RoomId)

	free = FilterAvailableRooms(rooms, nil, checkIn, checkOut, AvailabilityFilters{Name: "casa"})
	assert.Len(t, free, 2)
}

func TestAvailabilityIdempotent(t *testing.T) {
	// Consultar no reserva: la misma búsqueda repetida da lo mismo
	rooms := []models.Room{
		{RoomId: 1, PropertyID: 1, RoomNumber: "1", Available: true},
		{RoomId: 2, PropertyID: 1, RoomNumber: "2", Available: true},
	}
	bookings := []models.Booking{
		{RoomID: 2, CheckIn: day(2026, time.March, 1), CheckOut: day(2026, time.June, 1), Status: constants.BookingStatusUpcoming},
	}

	checkIn := day(2026, time.April, 1)
	checkOut := day(2026, time.May, 1)

	first := FilterAvailableRooms(rooms, bookings, checkIn, checkOut, AvailabilityFilters{})
	second := FilterAvailableRooms(rooms, bookings, checkIn, checkOut, AvailabilityFilters{})

	assert.Equal(t, first, second)
	require.Len(t, first, 1)
	assert.Equal(t, uint(1), first[0].RoomId)
}

func TestSortRoomsByNumber(t *testing.T) {
	rooms := []models.Room{
		{RoomId: 1, RoomNumber: "2"},
		{RoomId: 2, RoomNumber: "10"},
		{RoomId: 3, RoomNumber: "1"},
		{RoomId: 4, RoomNumber: "abc"},
	}

	SortRoomsByNumber(rooms)

	got := make([]string, len(rooms))
	for i := range rooms {
		got[i] = rooms[i].RoomNumber
	}
	// "abc" parsea a 0 y queda primero; el resto en orden numérico, no
	// lexicográfico
	assert.Equal(t, []string{"abc", "1", "2", "10"}, got)
}

func TestSortRoomsByNumberMixed(t *testing.T) {
	rooms := []models.Room{
		{RoomId: 1, RoomNumber: "3A"},
		{RoomId: 2, RoomNumber: "3B"},
		{RoomId: 3, RoomNumber: "12"},
		{RoomId: 4, RoomNumber: "2"},
	}

	SortRoomsByNumber(rooms)

	// "3A" y "3B" valen 3 y conservan su orden relativo (sort estable)
	assert.Equal(t, "2", rooms[0].RoomNumber)
	assert.Equal(t, "3A", rooms[1].RoomNumber)
	assert.Equal(t, "3B", rooms[2].RoomNumber)
	assert.Equal(t, "12", rooms[3].RoomNumber)
}

func TestOccupiedRoomIDs(t *testing.T) {
	bookings := []models.Booking{
		{RoomID: 1, CheckIn: day(2026, time.March, 1), CheckOut: day(2026, time.April, 1), Status: constants.BookingStatusActive},
		{RoomID: 2, CheckIn: day(2026, time.June, 1), CheckOut: day(2026, time.July, 1), Status: constants.BookingStatusActive},
	}

	occupied := OccupiedRoomIDs(bookings, day(2026, time.March, 15), day(2026, time.March, 20))
	assert.True(t, occupied[1])
	assert.False(t, occupied[2])
}
