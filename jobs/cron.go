package jobs

import (
	"log"
	"time"

	"pueblastay/config"
	"pueblastay/models"
	"pueblastay/services"
	"pueblastay/utils"

	"github.com/robfig/cron/v3"
)

// InitCronJobs registra los jobs nocturnos. Ningún job cambia estados
// de reservas: esas transiciones siempre las hace el staff a mano.
func InitCronJobs(c *cron.Cron) error {
	// Refrescar el cache de reseñas de Google a las 3am, cuando nadie
	// navega el sitio
	_, err := c.AddFunc("0 3 * * *", func() {
		utils.LogInfo("Refrescando cache de reseñas: %v", time.Now())
		RefreshReviewsCache()
	})
	if err != nil {
		return err
	}

	// Tirar los caches de listados a medianoche para que available_from
	// recién vencidos se reflejen
	_, err = c.AddFunc("0 0 * * *", func() {
		utils.LogInfo("Limpiando caches de listados: %v", time.Now())
		FlushListingCaches()
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// RefreshReviewsCache vuelve a pedir las reseñas de cada propiedad con
// google_place_id y las deja cacheadas un día.
func RefreshReviewsCache() {
	var properties []models.Property
	if err := config.DB.Where("google_place_id != ''").Find(&properties).Error; err != nil {
		utils.LogError("Error leyendo propiedades para el refresh de reseñas: %v", err)
		return
	}

	apiKey := config.GetEnv("GOOGLE_PLACES_API_KEY")
	for i := range properties {
		placeID := properties[i].GooglePlaceID

		reviews, err := services.GetPlaceReviews(placeID, apiKey)
		if err != nil {
			utils.LogError("Error refrescando reseñas de %s: %v", placeID, err)
			continue
		}

		cacheKey := "reviews:" + placeID
		if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, reviews, 24*time.Hour); err != nil {
			utils.LogError("Error guardando reseñas de %s en Redis: %v", placeID, err)
		}
	}
}

// FlushListingCaches borra los caches de propiedades y cuartos
func FlushListingCaches() {
	for _, key := range []string{"properties:all", "rooms:all"} {
		if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, key); err != nil {
			utils.LogError("Error limpiando el cache %s: %v", key, err)
		}
	}
}
