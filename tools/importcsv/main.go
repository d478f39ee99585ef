// importcsv carga los exports de CSV del sitio viejo a Postgres.
// Detecta solo si el archivo es de propiedades o de cuartos por la forma
// de los encabezados, y tolera encabezados mal escritos con un match
// difuso.
//
//	go run ./tools/importcsv -file propiedades.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"pueblastay/config"
	"pueblastay/dto"
	"pueblastay/models"
	"pueblastay/services"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

// Encabezados canónicos de cada tipo de archivo. El export viejo venía
// de hojas de cálculo capturadas a mano, así que los nombres varían.
var propertyColumns = []string{
	"name_es", "name_en", "location_es", "location_en", "description_es",
	"description_en", "address", "zone", "whatsapp", "google_place_id",
	"available", "available_from",
}

var roomColumns = []string{
	"property_slug", "room_number", "type", "bathroom_type",
	"description_es", "description_en", "available", "available_from",
	"available_to", "has_private_kitchen", "is_entire_place", "semester",
}

const headerMatchThreshold = 0.75

func main() {
	filePath := flag.String("file", "", "ruta del CSV a importar")
	dryRun := flag.Bool("dry-run", false, "parsear sin escribir a la base")
	flag.Parse()

	if *filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no se pudo cargar el archivo .env: %v", err)
	}
	config.ConnectDB()

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("No se pudo abrir %s: %v", *filePath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		log.Fatalf("No se pudo leer el encabezado: %v", err)
	}

	mapping, fileType := detectFileType(header)
	log.Printf("Archivo detectado como %s (%d columnas reconocidas)", fileType, len(mapping))

	var imported, skipped int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Fila ilegible, se brinca: %v", err)
			skipped++
			continue
		}

		row := rowValues(mapping, record)

		var importErr error
		switch fileType {
		case "properties":
			importErr = importProperty(row, *dryRun)
		case "rooms":
			importErr = importRoom(row, *dryRun)
		}

		if importErr != nil {
			log.Printf("Fila descartada: %v", importErr)
			skipped++
			continue
		}
		imported++
	}

	log.Printf("Listo: %d filas importadas, %d descartadas", imported, skipped)
}

// detectFileType decide si el CSV trae propiedades o cuartos según qué
// conjunto de encabezados canónicos reconoce más columnas.
func detectFileType(header []string) (map[string]int, string) {
	propMapping := matchColumns(header, propertyColumns)
	roomMapping := matchColumns(header, roomColumns)

	// room_number y property_slug solo existen en el export de cuartos
	if _, ok := roomMapping["room_number"]; ok && len(roomMapping) >= len(propMapping) {
		return roomMapping, "rooms"
	}
	if len(propMapping) == 0 && len(roomMapping) == 0 {
		log.Fatalf("Ningún encabezado reconocido: %v", header)
	}
	if len(roomMapping) > len(propMapping) {
		return roomMapping, "rooms"
	}
	return propMapping, "properties"
}

// matchColumns asigna a cada columna canónica el índice del encabezado
// más parecido, si la similitud pasa el umbral.
func matchColumns(header []string, canonical []string) map[string]int {
	mapping := make(map[string]int)

	for _, want := range canonical {
		bestIdx := -1
		bestScore := 0.0

		for i, got := range header {
			normalized := normalizeHeader(got)
			score := services.CalculateSimilarity(normalized, want)
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		if bestIdx >= 0 && bestScore >= headerMatchThreshold {
			mapping[want] = bestIdx
		}
	}
	return mapping
}

func normalizeHeader(h string) string {
	h = services.NormalizeInput(h)
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

func rowValues(mapping map[string]int, record []string) map[string]string {
	row := make(map[string]string, len(mapping))
	for col, idx := range mapping {
		if idx < len(record) {
			row[col] = strings.TrimSpace(record[idx])
		}
	}
	return row
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "si", "sí", "yes", "1", "x":
		return true
	}
	return false
}

func importProperty(row map[string]string, dryRun bool) error {
	if row["name_es"] == "" {
		return fmt.Errorf("propiedad sin name_es")
	}

	property := models.Property{
		NameEs:        row["name_es"],
		NameEn:        row["name_en"],
		LocationEs:    row["location_es"],
		LocationEn:    row["location_en"],
		DescriptionEs: row["description_es"],
		DescriptionEn: row["description_en"],
		Address:       row["address"],
		Zone:          row["zone"],
		WhatsappPhone: row["whatsapp"],
		GooglePlaceID: row["google_place_id"],
		Available:     parseBool(row["available"]),
	}
	property.Slug = services.Slugify(property.NameEs)

	if v := row["available_from"]; v != "" {
		if from, err := dto.ParseDate(v); err == nil {
			property.AvailableFrom = &from
		}
	}

	if dryRun {
		log.Printf("[dry-run] propiedad %s (%s)", property.NameEs, property.Slug)
		return nil
	}

	// Upsert por slug: correr el import dos veces no duplica
	return config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		UpdateAll: true,
	}).Create(&property).Error
}

func importRoom(row map[string]string, dryRun bool) error {
	if row["room_number"] == "" {
		return fmt.Errorf("cuarto sin room_number")
	}

	var property models.Property
	if err := config.DB.Where("slug = ?", row["property_slug"]).First(&property).Error; err != nil {
		return fmt.Errorf("propiedad %q no encontrada para el cuarto %s", row["property_slug"], row["room_number"])
	}

	room := models.Room{
		PropertyID:        property.ID,
		RoomNumber:        row["room_number"],
		Type:              row["type"],
		BathroomType:      row["bathroom_type"],
		DescriptionEs:     row["description_es"],
		DescriptionEn:     row["description_en"],
		Available:         parseBool(row["available"]),
		HasPrivateKitchen: parseBool(row["has_private_kitchen"]),
		IsEntirePlace:     parseBool(row["is_entire_place"]),
		Semester:          row["semester"],
	}

	if v := row["available_from"]; v != "" {
		if from, err := dto.ParseDate(v); err == nil {
			room.AvailableFrom = &from
		}
	}
	if v := row["available_to"]; v != "" {
		if to, err := dto.ParseDate(v); err == nil {
			room.AvailableTo = &to
		}
	}

	if err := room.ValidateType(); err != nil {
		return fmt.Errorf("cuarto %s: %v", room.RoomNumber, err)
	}

	if dryRun {
		log.Printf("[dry-run] cuarto %s de %s", room.RoomNumber, property.Slug)
		return nil
	}

	// Upsert por propiedad + número de cuarto
	var existing models.Room
	err := config.DB.Where("property_id = ? AND room_number = ?", property.ID, room.RoomNumber).
		First(&existing).Error
	if err == nil {
		room.RoomId = existing.RoomId
		room.CreatedAt = existing.CreatedAt
		return config.DB.Save(&room).Error
	}

	return config.DB.Create(&room).Error
}
