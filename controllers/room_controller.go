package controllers

import (
	"log"
	"strconv"
	"time"

	"pueblastay/config"
	"pueblastay/dto"
	"pueblastay/models"
	"pueblastay/response"
	"pueblastay/services"

	"github.com/gin-gonic/gin"
)

var roomsCacheKey = "rooms:all"

func toRoomResponse(r *models.Room, locale string) dto.RoomResponse {
	description := r.DescriptionEn
	if locale == "es" {
		description = r.DescriptionEs
	}

	return dto.RoomResponse{
		RoomId:            r.RoomId,
		RoomNumber:        r.RoomNumber,
		Type:              r.Type,
		BathroomType:      r.BathroomType,
		Description:       description,
		Images:            r.Images,
		Amenities:         r.Amenities,
		Available:         r.Available,
		AvailableFrom:     r.AvailableFrom,
		AvailableTo:       r.AvailableTo,
		HasPrivateKitchen: r.HasPrivateKitchen,
		IsEntirePlace:     r.IsEntirePlace,
		Semester:          r.Semester,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		Parents: dto.Parents{
			Id:   r.Parent.ID,
			Name: r.Parent.Name(locale),
			Slug: r.Parent.Slug,
		},
	}
}

func loadAllRooms() ([]models.Room, error) {
	var rooms []models.Room

	if err := services.GetFromRedis(config.Ctx, config.RedisClient, roomsCacheKey, &rooms); err == nil && len(rooms) > 0 {
		return rooms, nil
	}

	if err := config.DB.Preload("Parent").Find(&rooms).Error; err != nil {
		return nil, err
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, roomsCacheKey, rooms, 10*time.Minute); err != nil {
		log.Printf("Error guardando cuartos en Redis: %v", err)
	}
	return rooms, nil
}

func invalidateRoomsCache() {
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, roomsCacheKey); err != nil {
		log.Printf("Error invalidando cache de cuartos: %v", err)
	}
}

// GetAllRooms lista cuartos con filtros en memoria y el orden numérico
// de número de cuarto que usa todo el sitio.
func GetAllRooms(c *gin.Context) {
	locale := localeFromQuery(c)
	typeFilter := c.Query("type")
	bathroomFilter := c.Query("bathroomType")
	availableFilter := c.Query("available")
	semesterFilter := c.Query("semester")
	propertyFilter := c.Query("propertyId")

	rooms, err := loadAllRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	var filtered []models.Room
	for i := range rooms {
		room := &rooms[i]

		if typeFilter != "" && room.Type != typeFilter {
			continue
		}
		if bathroomFilter != "" && room.BathroomType != bathroomFilter {
			continue
		}
		if availableFilter != "" && room.Available != (availableFilter == "true") {
			continue
		}
		if semesterFilter != "" && room.Semester != semesterFilter {
			continue
		}
		if propertyFilter != "" {
			id, err := strconv.Atoi(propertyFilter)
			if err == nil && room.PropertyID != uint(id) {
				continue
			}
		}
		filtered = append(filtered, rooms[i])
	}

	services.SortRoomsByNumber(filtered)

	results := make([]dto.RoomResponse, 0, len(filtered))
	for i := range filtered {
		results = append(results, toRoomResponse(&filtered[i], locale))
	}

	response.SuccessWithTotal(c, results, len(results))
}

// ResetAvailabilityFilters olvida la última búsqueda del cliente
func ResetAvailabilityFilters(c *gin.Context) {
	if key := c.ClientIP(); key != "" {
		if err := services.ClearLastFilters(config.Ctx, config.RedisClient, key); err != nil {
			log.Printf("Error limpiando últimos filtros: %v", err)
		}
	}
	response.Success(c, nil)
}

// GetRoomDetail regresa un cuarto con su propiedad padre
func GetRoomDetail(c *gin.Context) {
	id := c.Param("id")
	locale := localeFromQuery(c)

	var room models.Room
	if err := config.DB.Preload("Parent").First(&room, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toRoomResponse(&room, locale))
}

func roomFromRequest(request *dto.RoomRequest) (models.Room, error) {
	room := models.Room{
		RoomId:            request.RoomId,
		PropertyID:        request.PropertyID,
		RoomNumber:        request.RoomNumber,
		Type:              request.Type,
		BathroomType:      request.BathroomType,
		DescriptionEs:     request.DescriptionEs,
		DescriptionEn:     request.DescriptionEn,
		Images:            request.Images,
		Amenities:         request.Amenities,
		Available:         request.Available,
		HasPrivateKitchen: request.HasPrivateKitchen,
		IsEntirePlace:     request.IsEntirePlace,
		Semester:          request.Semester,
	}

	if request.AvailableFrom != nil && *request.AvailableFrom != "" {
		from, err := dto.ParseDate(*request.AvailableFrom)
		if err != nil {
			return room, err
		}
		room.AvailableFrom = &from
	}
	if request.AvailableTo != nil && *request.AvailableTo != "" {
		to, err := dto.ParseDate(*request.AvailableTo)
		if err != nil {
			return room, err
		}
		room.AvailableTo = &to
	}

	return room, nil
}

// CreateRoom da de alta un cuarto desde el dashboard
func CreateRoom(c *gin.Context) {
	var request dto.RoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room, err := roomFromRequest(&request)
	if err != nil {
		response.BadRequest(c, "Fechas de disponibilidad inválidas, usa el formato yyyy-mm-dd")
		return
	}
	room.RoomId = 0

	if err := room.ValidateType(); err != nil {
		response.ValidationError(c, "Tipo de cuarto o baño inválido")
		return
	}
	if err := room.ValidateSemester(); err != nil {
		response.ValidationError(c, "Semestre inválido")
		return
	}

	var property models.Property
	if err := config.DB.First(&property, request.PropertyID).Error; err != nil {
		response.BadRequest(c, "La propiedad no existe")
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomsCache()
	invalidatePropertiesCache()
	response.Created(c, room)
}

// UpdateRoom reemplaza el cuarto completo
func UpdateRoom(c *gin.Context) {
	var request dto.RoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if request.RoomId == 0 {
		if id, err := strconv.Atoi(c.Param("id")); err == nil {
			request.RoomId = uint(id)
		}
	}

	var existing models.Room
	if err := config.DB.First(&existing, request.RoomId).Error; err != nil {
		response.NotFound(c)
		return
	}

	room, err := roomFromRequest(&request)
	if err != nil {
		response.BadRequest(c, "Fechas de disponibilidad inválidas, usa el formato yyyy-mm-dd")
		return
	}
	room.CreatedAt = existing.CreatedAt

	if err := room.ValidateType(); err != nil {
		response.ValidationError(c, "Tipo de cuarto o baño inválido")
		return
	}
	if err := room.ValidateSemester(); err != nil {
		response.ValidationError(c, "Semestre inválido")
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomsCache()
	invalidatePropertiesCache()
	response.Success(c, room)
}

// GetAvailability es el buscador de disponibilidad del dashboard:
// regresa los cuartos libres para la ventana [checkIn, checkOut) con
// los filtros opcionales. El traslape se resuelve con un solo range
// query en vez de traer todas las reservas.
func GetAvailability(c *gin.Context) {
	locale := localeFromQuery(c)

	checkInStr := c.Query("checkIn")
	checkOutStr := c.Query("checkOut")
	if checkInStr == "" || checkOutStr == "" {
		response.BadRequest(c, "checkIn y checkOut son obligatorios")
		return
	}

	checkIn, err := dto.ParseDate(checkInStr)
	if err != nil {
		response.BadRequest(c, "checkIn inválido, usa el formato yyyy-mm-dd")
		return
	}
	checkOut, err := dto.ParseDate(checkOutStr)
	if err != nil {
		response.BadRequest(c, "checkOut inválido, usa el formato yyyy-mm-dd")
		return
	}
	if !checkOut.After(checkIn) {
		response.BadRequest(c, "La fecha de salida debe ser posterior a la de entrada")
		return
	}

	incoming := dto.SearchFilters{
		Type:     c.Query("type"),
		Zone:     c.Query("zone"),
		Name:     c.Query("name"),
		Semester: c.Query("semester"),
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	}
	if v := c.Query("propertyId"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			propertyID := uint(id)
			incoming.PropertyID = &propertyID
		}
	}
	if v := c.Query("hasPrivateKitchen"); v != "" {
		b := v == "true"
		incoming.HasPrivateKitchen = &b
	}
	if v := c.Query("isEntirePlace"); v != "" {
		b := v == "true"
		incoming.IsEntirePlace = &b
	}

	// Mezclar con la última búsqueda del mismo cliente: lo que no volvió
	// a mandar se conserva
	merged := &incoming
	if key := c.ClientIP(); key != "" {
		if last, err := services.GetLastFilters(config.Ctx, config.RedisClient, key); err == nil {
			merged = services.MergeFilters(last, &incoming)
		}
	}

	filters := services.AvailabilityFilters{
		PropertyID:        merged.PropertyID,
		Type:              merged.Type,
		Zone:              merged.Zone,
		Name:              merged.Name,
		HasPrivateKitchen: merged.HasPrivateKitchen,
		IsEntirePlace:     merged.IsEntirePlace,
		Semester:          merged.Semester,
	}

	rooms, err := loadAllRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	occupied, err := services.QueryOccupiedRoomIDs(config.DB, checkIn, checkOut)
	if err != nil {
		response.ServerError(c)
		return
	}

	var candidates []models.Room
	for i := range rooms {
		if !occupied[rooms[i].RoomId] {
			candidates = append(candidates, rooms[i])
		}
	}
	free := services.FilterAvailableRooms(candidates, nil, checkIn, checkOut, filters)
	services.SortRoomsByNumber(free)

	// Guardar los filtros ya mezclados para la siguiente búsqueda
	if key := c.ClientIP(); key != "" {
		if err := services.SaveLastFilters(config.Ctx, config.RedisClient, key, merged); err != nil {
			log.Printf("Error guardando últimos filtros: %v", err)
		}
	}

	results := make([]dto.RoomResponse, 0, len(free))
	for i := range free {
		results = append(results, toRoomResponse(&free[i], locale))
	}

	response.SuccessWithTotal(c, results, len(results))
}
