package controllers

import (
	"pueblastay/config"
	"pueblastay/dto"
	"pueblastay/models"
	"pueblastay/response"

	"github.com/gin-gonic/gin"
)

// currentStudent resuelve el perfil del estudiante autenticado. El
// perfil puede existir antes que la cuenta (lo creó el staff desde un
// inquiry), así que también se busca por email.
func currentStudent(c *gin.Context) (*models.StudentProfile, *models.User, bool) {
	userID, ok := c.Get("userID")
	if !ok {
		response.Unauthorized(c)
		return nil, nil, false
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.Unauthorized(c)
		return nil, nil, false
	}

	var profile models.StudentProfile
	err := config.DB.Where("user_id = ? OR email = ?", user.ID, user.Email).First(&profile).Error
	if err != nil {
		// Sin perfil todavía; el portal muestra lo ligado por email
		return nil, &user, true
	}

	// Ligar el perfil a la cuenta la primera vez que entra
	if profile.UserID == nil {
		profile.UserID = &user.ID
		config.DB.Save(&profile)
	}

	return &profile, &user, true
}

// GetMyProfile regresa el perfil del estudiante autenticado
func GetMyProfile(c *gin.Context) {
	profile, user, ok := currentStudent(c)
	if !ok {
		return
	}

	if profile == nil {
		profile = &models.StudentProfile{
			Name:  user.Name,
			Email: user.Email,
		}
	}

	response.Success(c, profile)
}

// UpdateMyProfile deja al estudiante editar sus datos de contacto
func UpdateMyProfile(c *gin.Context) {
	profile, user, ok := currentStudent(c)
	if !ok {
		return
	}

	var request models.StudentProfile
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if profile == nil {
		profile = &models.StudentProfile{
			UserID: &user.ID,
			Email:  user.Email,
		}
	}

	profile.Name = request.Name
	profile.University = request.University
	profile.Country = request.Country
	profile.Phone = request.Phone

	if err := config.DB.Save(profile).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, profile)
}

// GetMyInquiries lista los inquiries del estudiante: los ligados a su
// perfil y los que mandó con el mismo email antes de tener cuenta.
func GetMyInquiries(c *gin.Context) {
	profile, user, ok := currentStudent(c)
	if !ok {
		return
	}

	query := config.DB.Preload("Property").Preload("Room").Order("created_at DESC")
	if profile != nil {
		query = query.Where("student_id = ? OR email = ?", profile.ID, user.Email)
	} else {
		query = query.Where("email = ?", user.Email)
	}

	var inquiries []models.Inquiry
	if err := query.Find(&inquiries).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.InquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		results = append(results, toInquiryResponse(&inquiries[i]))
	}

	response.SuccessWithTotal(c, results, len(results))
}

// GetMyBookings lista las reservas del estudiante, por perfil o por email
func GetMyBookings(c *gin.Context) {
	profile, user, ok := currentStudent(c)
	if !ok {
		return
	}

	query := config.DB.Preload("Room").Preload("Room.Parent").Order("check_in DESC")
	if profile != nil {
		query = query.Where("student_id = ? OR guest_email = ?", profile.ID, user.Email)
	} else {
		query = query.Where("guest_email = ?", user.Email)
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
