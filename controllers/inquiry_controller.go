package controllers

import (
	"strconv"

	"pueblastay/constants"
	"pueblastay/dto"
	"pueblastay/models"
	"pueblastay/response"
	"pueblastay/services"
	"pueblastay/services/logger"
	"pueblastay/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InquiryController concentra el pipeline de inquiries. Lleva sus
// dependencias explícitas porque el websocket no vive en config.
type InquiryController struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Melody *melody.Melody
	Logger logger.Logger
}

func NewInquiryController(db *gorm.DB, rdb *redis.Client, m *melody.Melody) *InquiryController {
	return &InquiryController{
		DB:     db,
		Redis:  rdb,
		Melody: m,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

func toInquiryResponse(i *models.Inquiry) dto.InquiryResponse {
	return dto.InquiryResponse{
		ID:         i.ID,
		Name:       i.Name,
		Email:      i.Email,
		Phone:      i.Phone,
		Instagram:  i.Instagram,
		Career:     i.Career,
		Country:    i.Country,
		University: i.University,
		PropertyID: i.PropertyID,
		RoomID:     i.RoomID,
		Message:    i.Message,
		Type:       i.Type,
		Status:     i.Status,
		StepIndex:  models.StepIndex(i.Status),
		Terminal:   models.IsTerminalStatus(i.Status),
		Notes:      i.Notes,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

// CreateInquiry recibe el formulario público. Siempre entra al pipeline
// en "new", no importa qué mande el cliente.
func (ic *InquiryController) CreateInquiry(c *gin.Context) {
	var request dto.InquiryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	inquiryType := request.Type
	if inquiryType == "" {
		inquiryType = constants.InquiryTypeContact
	}

	inquiry := models.Inquiry{
		Name:       request.Name,
		Email:      request.Email,
		Phone:      request.Phone,
		Instagram:  request.Instagram,
		Career:     request.Career,
		Country:    request.Country,
		University: request.University,
		PropertyID: request.PropertyID,
		RoomID:     request.RoomID,
		Message:    request.Message,
		Type:       inquiryType,
		Status:     models.InquiryStatusNew,
	}

	if err := validator.ValidateInquiry(&inquiry); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	// Si el email coincide con un perfil de estudiante se liga de una vez
	var profile models.StudentProfile
	if err := ic.DB.Where("email = ?", inquiry.Email).First(&profile).Error; err == nil {
		inquiry.StudentID = &profile.ID
	}

	if err := ic.DB.Create(&inquiry).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.NotifyNewInquiry(ic.Melody, &inquiry); err != nil {
		// El inquiry ya quedó guardado; la notificación no es motivo de error
		ic.Logger.Error("No se pudo notificar el inquiry %d: %v", inquiry.ID, err)
	} else {
		ic.Logger.Info("Inquiry %d de %s notificado al dashboard", inquiry.ID, inquiry.Name)
	}

	response.Created(c, toInquiryResponse(&inquiry))
}

// GetInquiries lista inquiries para el dashboard, los más nuevos primero
func (ic *InquiryController) GetInquiries(c *gin.Context) {
	statusFilter := c.Query("status")
	typeFilter := c.Query("type")

	query := ic.DB.Order("created_at DESC")
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}
	if typeFilter != "" {
		query = query.Where("type = ?", typeFilter)
	}
	if v := c.Query("propertyId"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			query = query.Where("property_id = ?", id)
		}
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

// GetInquiryDetail regresa un inquiry con su propiedad y cuarto
func (ic *InquiryController) GetInquiryDetail(c *gin.Context) {
	id := c.Param("id")

	var inquiry models.Inquiry
	if err := ic.DB.Preload("Property").Preload("Room").First(&inquiry, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toInquiryResponse(&inquiry))
}

// UpdateInquiry reemplaza el inquiry completo desde el dashboard,
// incluidas las notas internas.
func (ic *InquiryController) UpdateInquiry(c *gin.Context) {
	var request dto.InquiryUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if request.ID == 0 {
		if id, err := strconv.Atoi(c.Param("id")); err == nil {
			request.ID = uint(id)
		}
	}

	var inquiry models.Inquiry
	if err := ic.DB.First(&inquiry, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	inquiry.Name = request.Name
	inquiry.Email = request.Email
	inquiry.Phone = request.Phone
	inquiry.Instagram = request.Instagram
	inquiry.Career = request.Career
	inquiry.Country = request.Country
	inquiry.University = request.University
	inquiry.PropertyID = request.PropertyID
	inquiry.RoomID = request.RoomID
	inquiry.Message = request.Message
	inquiry.Type = request.Type
	inquiry.Notes = request.Notes
	inquiry.StudentID = request.StudentID

	if request.Status != "" {
		if err := models.AdvanceInquiry(&inquiry, request.Status); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	if err := validator.ValidateInquiry(&inquiry); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := ic.DB.Save(&inquiry).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toInquiryResponse(&inquiry))
}

// ChangeInquiryStatus es el atajo del pipeline: el staff da clic en
// cualquier paso y el inquiry brinca ahí, hacia adelante o hacia atrás.
func (ic *InquiryController) ChangeInquiryStatus(c *gin.Context) {
	var request dto.InquiryStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var inquiry models.Inquiry
	if err := ic.DB.First(&inquiry, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := models.AdvanceInquiry(&inquiry, request.Status); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := ic.DB.Save(&inquiry).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toInquiryResponse(&inquiry))
}

// DeleteInquiry borra el inquiry y sus notificaciones de forma permanente
func (ic *InquiryController) DeleteInquiry(c *gin.Context) {
	id := c.Param("id")

	var inquiry models.Inquiry
	if err := ic.DB.First(&inquiry, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := ic.DB.Where("inquiry_id = ?", inquiry.ID).Delete(&models.Notification{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := ic.DB.Delete(&inquiry).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// GetNotifications lista las notificaciones más recientes del dashboard
func (ic *InquiryController) GetNotifications(c *gin.Context) {
	limit := 20
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && v > 0 {
		limit = v
	}

	var notifications []models.Notification
	if err := ic.DB.Order("created_at DESC").Limit(limit).Find(&notifications).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, notifications)
}
