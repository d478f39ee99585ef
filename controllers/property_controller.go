package controllers

import (
	"log"
	"net/url"
	"strconv"
	"strings"
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

var propertiesCacheKey = "properties:all"

func localeFromQuery(c *gin.Context) string {
	locale := c.DefaultQuery("locale", constants.LocaleEs)
	if locale != constants.LocaleEs && locale != constants.LocaleEn {
		// fr y cualquier otro caen a en
		locale = constants.LocaleEn
	}
	return locale
}

func toPropertyResponse(p *models.Property, locale string) dto.PropertyResponse {
	return dto.PropertyResponse{
		ID:            p.ID,
		Slug:          p.Slug,
		Name:          p.Name(locale),
		Location:      p.Location(locale),
		Zone:          p.Zone,
		Address:       p.Address,
		Images:        p.Images,
		Longitude:     p.Longitude,
		Latitude:      p.Latitude,
		Available:     p.Available,
		AvailableFrom: p.AvailableFrom,
		CommonAreas:   p.CommonAreas,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toPropertyDetail(p *models.Property, locale string) dto.PropertyDetailResponse {
	detail := dto.PropertyDetailResponse{
		PropertyResponse: toPropertyResponse(p, locale),
		Description:      p.Description(locale),
		GooglePlaceID:    p.GooglePlaceID,
	}

	if p.WhatsappPhone != "" {
		text := "Hola! Me interesa " + p.Name(locale)
		detail.WhatsappLink = services.WhatsappLink(p.WhatsappPhone, text)
	}

	for i := range p.Rooms {
		detail.Rooms = append(detail.Rooms, toRoomResponse(&p.Rooms[i], locale))
	}
	return detail
}

func loadAllProperties() ([]models.Property, error) {
	var properties []models.Property

	// Primero el cache; la colección es chica, se cachea completa
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, propertiesCacheKey, &properties); err == nil && len(properties) > 0 {
		return properties, nil
	}

	err := config.DB.Preload("CommonAreas").Preload("Rooms").Find(&properties).Error
	if err != nil {
		return nil, err
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, propertiesCacheKey, properties, 10*time.Minute); err != nil {
		log.Printf("Error guardando propiedades en Redis: %v", err)
	}
	return properties, nil
}

func invalidatePropertiesCache() {
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, propertiesCacheKey); err != nil {
		log.Printf("Error invalidando cache de propiedades: %v", err)
	}
}

// GetAllProperties lista propiedades para el sitio público y el
// dashboard. Filtros en memoria: zona, disponibilidad, texto libre.
func GetAllProperties(c *gin.Context) {
	locale := localeFromQuery(c)
	zoneFilter := c.Query("zone")
	nameFilter := c.Query("name")
	availableFilter := c.Query("available")

	page := 1
	limit := 20
	if p, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && l > 0 {
		limit = l
	}

	properties, err := loadAllProperties()
	if err != nil {
		response.ServerError(c)
		return
	}

	var filtered []models.Property
	for i := range properties {
		p := &properties[i]

		if availableFilter != "" {
			wantAvailable := availableFilter == "true"
			if p.Available != wantAvailable {
				continue
			}
		}
		if zoneFilter != "" && !strings.EqualFold(p.Zone, zoneFilter) {
			continue
		}
		if nameFilter != "" {
			decoded, _ := url.QueryUnescape(nameFilter)
			needle := strings.ToLower(decoded)
			if !strings.Contains(strings.ToLower(p.NameEs), needle) &&
				!strings.Contains(strings.ToLower(p.NameEn), needle) {
				continue
			}
		}
		filtered = append(filtered, properties[i])
	}

	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	results := make([]dto.PropertyResponse, 0, end-start)
	for i := start; i < end; i++ {
		results = append(results, toPropertyResponse(&filtered[i], locale))
	}

	response.SuccessWithPagination(c, results, page, limit, total)
}

// GetPropertyDetail regresa la propiedad con sus cuartos
func GetPropertyDetail(c *gin.Context) {
	id := c.Param("id")
	locale := localeFromQuery(c)

	var property models.Property
	if err := config.DB.Preload("CommonAreas").Preload("Rooms").First(&property, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toPropertyDetail(&property, locale))
}

// GetPropertyBySlug busca por llave de URL
func GetPropertyBySlug(c *gin.Context) {
	slug := c.Param("slug")
	locale := localeFromQuery(c)

	var property models.Property
	if err := config.DB.Preload("CommonAreas").Preload("Rooms").Where("slug = ?", slug).First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toPropertyDetail(&property, locale))
}

func propertyFromRequest(request *dto.PropertyRequest) (models.Property, error) {
	property := models.Property{
		ID:            request.ID,
		NameEs:        request.NameEs,
		NameEn:        request.NameEn,
		LocationEs:    request.LocationEs,
		LocationEn:    request.LocationEn,
		DescriptionEs: request.DescriptionEs,
		DescriptionEn: request.DescriptionEn,
		Address:       request.Address,
		Zone:          request.Zone,
		Images:        request.Images,
		Longitude:     request.Longitude,
		Latitude:      request.Latitude,
		GooglePlaceID: request.GooglePlaceID,
		Available:     request.Available,
		WhatsappPhone: request.WhatsappPhone,
	}

	if request.AvailableFrom != nil && *request.AvailableFrom != "" {
		from, err := dto.ParseDate(*request.AvailableFrom)
		if err != nil {
			return property, err
		}
		property.AvailableFrom = &from
	}

	property.Slug = services.Slugify(request.NameEs)
	return property, nil
}

// CreateProperty da de alta una propiedad desde el dashboard. Si no
// llegan coordenadas se geocodifica la dirección con Mapbox; si falla
// la propiedad se guarda sin pin.
func CreateProperty(c *gin.Context) {
	var request dto.PropertyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	property, err := propertyFromRequest(&request)
	if err != nil {
		response.BadRequest(c, "Fecha de disponibilidad inválida, usa el formato yyyy-mm-dd")
		return
	}
	property.ID = 0

	if err := validator.ValidateProperty(&property); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if property.Longitude == 0 && property.Latitude == 0 && property.Address != "" {
		lat, lng, err := services.GetCoordinatesFromAddress(property.Address, property.Zone, config.GetEnv("MAPBOX_ACCESS_TOKEN"))
		if err != nil {
			log.Printf("No se pudo geocodificar %q: %v", property.Address, err)
		} else {
			property.Latitude = lat
			property.Longitude = lng
		}
	}

	if err := config.DB.Create(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	if len(request.CommonAreaIDs) > 0 {
		var areas []models.CommonArea
		if err := config.DB.Where("id IN ?", request.CommonAreaIDs).Find(&areas).Error; err == nil {
			config.DB.Model(&property).Association("CommonAreas").Replace(areas)
		}
	}

	invalidatePropertiesCache()
	response.Created(c, property)
}

// UpdateProperty reemplaza la propiedad completa (sin patch parcial)
func UpdateProperty(c *gin.Context) {
	var request dto.PropertyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if request.ID == 0 {
		if id, err := strconv.Atoi(c.Param("id")); err == nil {
			request.ID = uint(id)
		}
	}

	var existing models.Property
	if err := config.DB.First(&existing, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	property, err := propertyFromRequest(&request)
	if err != nil {
		response.BadRequest(c, "Fecha de disponibilidad inválida, usa el formato yyyy-mm-dd")
		return
	}
	property.CreatedAt = existing.CreatedAt

	if err := validator.ValidateProperty(&property); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	var areas []models.CommonArea
	if len(request.CommonAreaIDs) > 0 {
		config.DB.Where("id IN ?", request.CommonAreaIDs).Find(&areas)
	}
	config.DB.Model(&property).Association("CommonAreas").Replace(areas)

	invalidatePropertiesCache()
	response.Success(c, property)
}

// GetPropertyReviews trae las reseñas de Google Places de la propiedad,
// con cache de un día porque el API cobra por request.
func GetPropertyReviews(c *gin.Context) {
	id := c.Param("id")

	var property models.Property
	if err := config.DB.First(&property, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if property.GooglePlaceID == "" {
		response.Success(c, []dto.ReviewResponse{})
		return
	}

	cacheKey := "reviews:" + property.GooglePlaceID
	var reviews []dto.ReviewResponse
	if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &reviews); err == nil && len(reviews) > 0 {
		response.Success(c, reviews)
		return
	}

	reviews, err := services.GetPlaceReviews(property.GooglePlaceID, config.GetEnv("GOOGLE_PLACES_API_KEY"))
	if err != nil {
		log.Printf("Error consultando reseñas de %s: %v", property.GooglePlaceID, err)
		response.Success(c, []dto.ReviewResponse{})
		return
	}

	if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, reviews, 24*time.Hour); err != nil {
		log.Printf("Error guardando reseñas en Redis: %v", err)
	}

	response.Success(c, reviews)
}

// SearchProperties busca con texto libre: zonas, tipo de cuarto y áreas
// comunes puntúan cada propiedad.
func SearchProperties(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.BadRequest(c, "query es obligatorio")
		return
	}

	properties, err := loadAllProperties()
	if err != nil {
		response.ServerError(c)
		return
	}

	cmZone := services.CreateMatcher(services.PrepareZoneList(properties))
	scored := services.FilterAndScoreProperties(query, properties, cmZone)

	locale := localeFromQuery(c)
	results := make([]dto.PropertyResponse, 0, len(scored))
	for i := range scored {
		results = append(results, toPropertyResponse(&scored[i].Property, locale))
	}

	response.SuccessWithTotal(c, results, len(results))
}
