package controllers

import (
	"strconv"
	"time"

	"pueblastay/config"
	"pueblastay/constants"
	"pueblastay/dto"
	"pueblastay/models"
	"pueblastay/response"
	"pueblastay/services"
	"pueblastay/validator"

	"github.com/gin-gonic/gin"
)

func toBookingResponse(b *models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:         b.ID,
		RoomID:     b.RoomID,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Status:     b.Status,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	if b.Room != nil {
		resp.RoomNumber = b.Room.RoomNumber
		resp.PropertyID = b.Room.PropertyID
		resp.Property = b.Room.Parent.NameEs
	}
	return resp
}

// GetBookings lista reservas para el dashboard, con filtros por estado
// y por cuarto.
func GetBookings(c *gin.Context) {
	statusFilter := c.Query("status")
	roomFilter := c.Query("roomId")

	query := config.DB.Preload("Room").Preload("Room.Parent").Order("check_in")
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}
	if roomFilter != "" {
		if id, err := strconv.Atoi(roomFilter); err == nil {
			query = query.Where("room_id = ?", id)
		}
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		results = append(results, toBookingResponse(&bookings[i]))
	}

	response.SuccessWithTotal(c, results, len(results))
}

// GetBookingDetail regresa una reserva
func GetBookingDetail(c *gin.Context) {
	id := c.Param("id")

	var booking models.Booking
	if err := config.DB.Preload("Room").Preload("Room.Parent").First(&booking, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toBookingResponse(&booking))
}

func bookingFromRequest(request *dto.BookingRequest) (models.Booking, error) {
	checkIn, err := dto.ParseDate(request.CheckIn)
	if err != nil {
		return models.Booking{}, err
	}
	checkOut, err := dto.ParseDate(request.CheckOut)
	if err != nil {
		return models.Booking{}, err
	}

	status := request.Status
	if status == "" {
		status = constants.BookingStatusUpcoming
	}

	return models.Booking{
		ID:         request.ID,
		RoomID:     request.RoomID,
		GuestName:  request.GuestName,
		GuestEmail: request.GuestEmail,
		GuestPhone: request.GuestPhone,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     status,
		Notes:      request.Notes,
		StudentID:  request.StudentID,
	}, nil
}

// CreateBooking da de alta una reserva. Rechaza con 409 si alguna
// reserva activa o próxima del mismo cuarto traslapa la ventana
// [check_in, check_out): el día de salida queda libre.
func CreateBooking(c *gin.Context) {
	var request dto.BookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := bookingFromRequest(&request)
	if err != nil {
		response.BadRequest(c, "Fechas inválidas, usa el formato yyyy-mm-dd")
		return
	}
	booking.ID = 0

	if err := validator.ValidateBooking(&booking); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.First(&room, booking.RoomID).Error; err != nil {
		response.BadRequest(c, "El cuarto no existe")
		return
	}

	var conflicting []models.Booking
	err = config.DB.Where("room_id = ? AND status IN ? AND check_in < ? AND check_out > ?",
		booking.RoomID,
		[]string{constants.BookingStatusActive, constants.BookingStatusUpcoming},
		booking.CheckOut, booking.CheckIn).
		Find(&conflicting).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	if len(conflicting) > 0 {
		response.Conflict(c, "El cuarto ya está reservado en ese rango de fechas")
		return
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomsCache()
	response.Created(c, toBookingResponse(&booking))
}

// UpdateBooking reemplaza la reserva completa. El chequeo de traslape
// excluye la propia reserva.
func UpdateBooking(c *gin.Context) {
	var request dto.BookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if request.ID == 0 {
		if id, err := strconv.Atoi(c.Param("id")); err == nil {
			request.ID = uint(id)
		}
	}

	var existing models.Booking
	if err := config.DB.First(&existing, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	booking, err := bookingFromRequest(&request)
	if err != nil {
		response.BadRequest(c, "Fechas inválidas, usa el formato yyyy-mm-dd")
		return
	}
	booking.CreatedAt = existing.CreatedAt

	if err := validator.ValidateBooking(&booking); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var conflicting []models.Booking
	err = config.DB.Where("id != ? AND room_id = ? AND status IN ? AND check_in < ? AND check_out > ?",
		booking.ID,
		booking.RoomID,
		[]string{constants.BookingStatusActive, constants.BookingStatusUpcoming},
		booking.CheckOut, booking.CheckIn).
		Find(&conflicting).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	if booking.Status == constants.BookingStatusActive || booking.Status == constants.BookingStatusUpcoming {
		if len(conflicting) > 0 {
			response.Conflict(c, "El cuarto ya está reservado en ese rango de fechas")
			return
		}
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomsCache()
	response.Success(c, toBookingResponse(&booking))
}

// ChangeBookingStatus cambia solo el estado; el staff lo escoge a mano,
// nunca hay transición automática por fecha.
func ChangeBookingStatus(c *gin.Context) {
	var request dto.BookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	booking.Status = request.Status
	if err := booking.ValidateStatus(); err != nil {
		response.BadRequest(c, "Estado de reserva inválido")
		return
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomsCache()
	response.Success(c, toBookingResponse(&booking))
}

// DeleteBooking borra la reserva de forma permanente (el front ya pidió
// confirmación)
func DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	var booking models.Booking
	if err := config.DB.First(&booking, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomsCache()
	response.Success(c, nil)
}

// GetTimeline arma el tablero de ocupación tipo gantt: una fila por
// cuarto, una barra por reserva, columnas por mes o medio mes.
func GetTimeline(c *gin.Context) {
	granularity := c.DefaultQuery("granularity", services.GranularityMonth)
	if granularity != services.GranularityMonth && granularity != services.GranularityHalfMonth {
		response.BadRequest(c, "granularity debe ser month o half-month")
		return
	}

	count := 6
	if v, err := strconv.Atoi(c.DefaultQuery("periods", "6")); err == nil {
		count = v
	}
	count = services.ClampPeriodCount(count)

	start := time.Now().UTC()
	if v := c.Query("start"); v != "" {
		parsed, err := dto.ParseDate(v)
		if err != nil {
			response.BadRequest(c, "start inválido, usa el formato yyyy-mm-dd")
			return
		}
		start = parsed
	}

	periods := services.GeneratePeriods(start, granularity, count)
	windowStart := periods[0].Start
	windowEnd := periods[len(periods)-1].End

	var rooms []models.Room
	roomQuery := config.DB.Preload("Parent")
	if v := c.Query("propertyId"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			roomQuery = roomQuery.Where("property_id = ?", id)
		}
	}
	if err := roomQuery.Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Todas las reservas que tocan la ventana visible, de cualquier
	// estado: las canceladas y completadas se pintan en gris
	var bookings []models.Booking
	if err := config.DB.Where("check_in < ? AND check_out > ?", windowEnd, windowStart).
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, services.BuildTimeline(rooms, bookings, periods))
}
