package main

import (
	"log"
	"net/http"
	"os"

	"pueblastay/config"
	"pueblastay/constants"
	"pueblastay/jobs"
	"pueblastay/models"
	"pueblastay/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	err := config.DB.AutoMigrate(
		&models.Property{},
		&models.Room{},
		&models.Booking{},
		&models.Inquiry{},
		&models.Notification{},
		&models.User{},
		&models.StudentProfile{},
		&models.CommonArea{},
		&models.Semester{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	seedSemesters()
}

// seedSemesters deja las dos ventanas de inscripción en la tabla; son
// fijas, solo cambian las fechas año con año desde el dashboard.
func seedSemesters() {
	semesters := []models.Semester{
		{Tag: constants.SemesterSpring, NameEs: "Primavera", NameEn: "Spring", FromDate: "01-01", ToDate: "06-30"},
		{Tag: constants.SemesterFall, NameEs: "Otoño", NameEn: "Fall", FromDate: "08-01", ToDate: "12-31"},
	}

	for _, s := range semesters {
		var existing models.Semester
		if err := config.DB.Where("tag = ?", s.Tag).First(&existing).Error; err != nil {
			if err := config.DB.Create(&s).Error; err != nil {
				log.Printf("Error sembrando el semestre %s: %v", s.Tag, err)
			}
		}
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no se pudo cargar el archivo .env, se usan las variables del entorno: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
