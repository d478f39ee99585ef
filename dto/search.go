package dto

import "time"

// SearchFilters guarda los filtros de la última búsqueda de
// disponibilidad de un cliente, para mezclarlos con la siguiente.
type SearchFilters struct {
	PropertyID        *uint      `json:"propertyId"`
	Type              string     `json:"type"`
	Zone              string     `json:"zone"`
	Name              string     `json:"name"`
	HasPrivateKitchen *bool      `json:"hasPrivateKitchen"`
	IsEntirePlace     *bool      `json:"isEntirePlace"`
	Semester          string     `json:"semester"`
	CheckIn           *time.Time `json:"checkIn"`
	CheckOut          *time.Time `json:"checkOut"`
}
