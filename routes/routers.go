package routes

import (
	"context"
	"net/http"

	"pueblastay/config"
	"pueblastay/constants"
	"pueblastay/controllers"
	middlewares "pueblastay/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	inquiryController := controllers.NewInquiryController(db, redisCli, m)

	staffOnly := middlewares.AuthMiddleware(constants.RoleStaff)
	studentOnly := middlewares.AuthMiddleware(constants.RoleStudent)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/google", controllers.AuthGoogle)

	v1.GET("/properties", controllers.GetAllProperties)
	v1.POST("/properties", staffOnly, controllers.CreateProperty)
	v1.GET("/properties/slug/:slug", controllers.GetPropertyBySlug)
	v1.GET("/properties/:id", controllers.GetPropertyDetail)
	v1.PUT("/properties/:id", staffOnly, controllers.UpdateProperty)
	v1.GET("/properties/:id/reviews", controllers.GetPropertyReviews)
	v1.GET("/search", controllers.SearchProperties)

	v1.GET("/rooms", controllers.GetAllRooms)
	v1.POST("/rooms", staffOnly, controllers.CreateRoom)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.PUT("/rooms/:id", staffOnly, controllers.UpdateRoom)
	v1.GET("/availability", controllers.GetAvailability)
	v1.DELETE("/availability/filters", controllers.ResetAvailabilityFilters)

	v1.GET("/bookings", staffOnly, controllers.GetBookings)
	v1.POST("/bookings", staffOnly, controllers.CreateBooking)
	v1.GET("/bookings/:id", staffOnly, controllers.GetBookingDetail)
	v1.PUT("/bookings/:id", staffOnly, controllers.UpdateBooking)
	v1.PUT("/bookingStatus", staffOnly, controllers.ChangeBookingStatus)
	v1.DELETE("/bookings/:id", staffOnly, controllers.DeleteBooking)
	v1.GET("/timeline", staffOnly, controllers.GetTimeline)

	// El POST de inquiries es el formulario público del sitio; el resto
	// del pipeline es del staff
	v1.POST("/inquiries", inquiryController.CreateInquiry)
	v1.GET("/inquiries", staffOnly, inquiryController.GetInquiries)
	v1.GET("/inquiries/:id", staffOnly, inquiryController.GetInquiryDetail)
	v1.PUT("/inquiries/:id", staffOnly, inquiryController.UpdateInquiry)
	v1.PUT("/inquiryStatus", staffOnly, inquiryController.ChangeInquiryStatus)
	v1.DELETE("/inquiries/:id", staffOnly, inquiryController.DeleteInquiry)
	v1.GET("/notifications", staffOnly, inquiryController.GetNotifications)

	v1.GET("/commonAreas", controllers.GetAllCommonAreas)
	v1.POST("/commonAreas", staffOnly, controllers.CreateCommonArea)
	v1.PUT("/commonAreas/:id", staffOnly, controllers.UpdateCommonArea)
	v1.GET("/semesters", controllers.GetSemesters)

	v1.GET("/students/me", studentOnly, controllers.GetMyProfile)
	v1.PUT("/students/me", studentOnly, controllers.UpdateMyProfile)
	v1.GET("/students/me/inquiries", studentOnly, controllers.GetMyInquiries)
	v1.GET("/students/me/bookings", studentOnly, controllers.GetMyBookings)

	v1.POST("/img/multi-upload", staffOnly, func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No hay archivo"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No hay archivo"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Error al abrir el archivo"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "propiedades"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Falló la subida"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Subida exitosa",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", staffOnly, func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No hay archivo"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error al abrir el archivo"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "propiedades"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Falló la subida"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Subida exitosa",
			"url":     resp.SecureURL,
		})
	})
}
