package controllers

import (
	"strconv"

	"pueblastay/config"
	"pueblastay/models"
	"pueblastay/response"

	"github.com/gin-gonic/gin"
)

// GetAllCommonAreas regresa el catálogo de áreas comunes para los
// checkboxes del dashboard
func GetAllCommonAreas(c *gin.Context) {
	var areas []models.CommonArea
	if err := config.DB.Order("id").Find(&areas).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, areas, len(areas))
}

// CreateCommonArea agrega un área común al catálogo
func CreateCommonArea(c *gin.Context) {
	var area models.CommonArea
	if err := c.ShouldBindJSON(&area); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if area.NameEs == "" {
		response.ValidationError(c, "El nombre en español no puede estar vacío")
		return
	}

	if err := config.DB.Create(&area).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertiesCache()
	response.Created(c, area)
}

// UpdateCommonArea renombra un área común
func UpdateCommonArea(c *gin.Context) {
	var request models.CommonArea
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if request.Id == 0 {
		if id, err := strconv.Atoi(c.Param("id")); err == nil {
			request.Id = id
		}
	}

	var area models.CommonArea
	if err := config.DB.First(&area, request.Id).Error; err != nil {
		response.NotFound(c)
		return
	}

	area.NameEs = request.NameEs
	area.NameEn = request.NameEn
	if err := config.DB.Save(&area).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePropertiesCache()
	response.Success(c, area)
}

// GetSemesters regresa las dos ventanas de inscripción
func GetSemesters(c *gin.Context) {
	var semesters []models.Semester
	if err := config.DB.Order("id").Find(&semesters).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, semesters)
}
