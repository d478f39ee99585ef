package services

import (
	"sort"
	"strings"
	"time"

	"pueblastay/constants"
	"pueblastay/models"

	"gorm.io/gorm"
)

// AvailabilityFilters son los filtros opcionales del buscador de
// disponibilidad del dashboard. Zone y Name se comparan contra la
// propiedad padre del cuarto.
type AvailabilityFilters struct {
	PropertyID        *uint
	Type              string
	Zone              string
	Name              string
	HasPrivateKitchen *bool
	IsEntirePlace     *bool
	Semester          string
}

// ConflictsWindow decide si una reserva bloquea la ventana pedida.
// Canceladas y completadas nunca bloquean; el resto aplica la prueba de
// intervalos semiabiertos: la salida exacta en checkIn o la entrada
// exacta en checkOut no cuentan como conflicto.
func ConflictsWindow(b *models.Booking, checkIn, checkOut time.Time) bool {
	if !b.Blocking() {
		return false
	}
	return b.Overlaps(checkIn, checkOut)
}

// OccupiedRoomIDs junta los ids de cuarto con alguna reserva en conflicto.
func OccupiedRoomIDs(bookings []models.Booking, checkIn, checkOut time.Time) map[uint]bool {
	occupied := make(map[uint]bool)
	for i := range bookings {
		if ConflictsWindow(&bookings[i], checkIn, checkOut) {
			occupied[bookings[i].RoomID] = true
		}
	}
	return occupied
}

// RoomOpenForWindow revisa la disponibilidad propia del cuarto: bandera
// encendida y ventana available_from/available_to que cubra la pedida.
// Un cuarto sin fechas se trata como abierto sin límite.
func RoomOpenForWindow(room *models.Room, checkIn, checkOut time.Time) bool {
	if !room.Available {
		return false
	}
	if room.AvailableFrom != nil && room.AvailableFrom.After(checkIn) {
		return false
	}
	if room.AvailableTo != nil && room.AvailableTo.Before(checkOut) {
		return false
	}
	return true
}

func matchesFilters(room *models.Room, f AvailabilityFilters) bool {
	if f.PropertyID != nil && room.PropertyID != *f.PropertyID {
		return false
	}
	if f.Type != "" && room.Type != f.Type {
		return false
	}
	if f.Zone != "" && !strings.EqualFold(room.Parent.Zone, f.Zone) {
		return false
	}
	if f.Name != "" {
		needle := strings.ToLower(f.Name)
		if !strings.Contains(strings.ToLower(room.Parent.NameEs), needle) &&
			!strings.Contains(strings.ToLower(room.Parent.NameEn), needle) {
			return false
		}
	}
	if f.HasPrivateKitchen != nil && room.HasPrivateKitchen != *f.HasPrivateKitchen {
		return false
	}
	if f.IsEntirePlace != nil && room.IsEntirePlace != *f.IsEntirePlace {
		return false
	}
	if f.Semester != "" && room.Semester != f.Semester {
		return false
	}
	return true
}

// FilterAvailableRooms regresa los cuartos libres para la ventana
// [checkIn, checkOut). Sin ranking: el orden queda para el sort por
// número de cuarto del caller.
func FilterAvailableRooms(rooms []models.Room, bookings []models.Booking, checkIn, checkOut time.Time, f AvailabilityFilters) []models.Room {
	occupied := OccupiedRoomIDs(bookings, checkIn, checkOut)

	var free []models.Room
	for i := range rooms {
		room := &rooms[i]
		if occupied[room.RoomId] {
			continue
		}
		if !RoomOpenForWindow(room, checkIn, checkOut) {
			continue
		}
		if !matchesFilters(room, f) {
			continue
		}
		free = append(free, rooms[i])
	}
	return free
}

// SortRoomsByNumber ordena por número de cuarto con parse numérico; lo
// no numérico cuenta como 0. Sort estable para empates.
func SortRoomsByNumber(rooms []models.Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].SortValue() < rooms[j].SortValue()
	})
}

// QueryOccupiedRoomIDs empuja la prueba de traslape a la base con un solo
// range query indexado en vez de traer la colección completa.
func QueryOccupiedRoomIDs(db *gorm.DB, checkIn, checkOut time.Time) (map[uint]bool, error) {
	var ids []uint
	err := db.Model(&models.Booking{}).
		Where("status IN ? AND check_in < ? AND check_out > ?",
			[]string{constants.BookingStatusActive, constants.BookingStatusUpcoming},
			checkOut, checkIn).
		Pluck("room_id", &ids).Error
	if err != nil {
		return nil, err
	}

	occupied := make(map[uint]bool, len(ids))
	for _, id := range ids {
		occupied[id] = true
	}
	return occupied, nil
}
