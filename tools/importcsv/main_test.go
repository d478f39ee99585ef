package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "name_es", normalizeHeader("Name ES"))
	assert.Equal(t, "room_number", normalizeHeader("  Room-Number "))
	assert.Equal(t, "available_from", normalizeHeader("Available From"))
}

func TestMatchColumnsFuzzy(t *testing.T) {
	// Encabezados como vienen del export viejo: mayúsculas, espacios y
	// alguna letra comida
	header := []string{"Name ES", "Name EN", "Adress", "Zone", "Available"}

	mapping := matchColumns(header, propertyColumns)

	require.Contains(t, mapping, "name_es")
	assert.Equal(t, 0, mapping["name_es"])
	require.Contains(t, mapping, "address") // "Adress" pasa el umbral difuso
	assert.Equal(t, 2, mapping["address"])
	require.Contains(t, mapping, "zone")
	require.Contains(t, mapping, "available")

	// Columnas que no vienen no se inventan
	assert.NotContains(t, mapping, "google_place_id")
}

func TestDetectFileType(t *testing.T) {
	roomHeader := []string{"Property Slug", "Room Number", "Type", "Bathroom Type", "Available"}
	mapping, fileType := detectFileType(roomHeader)
	assert.Equal(t, "rooms", fileType)
	require.Contains(t, mapping, "room_number")
	assert.Equal(t, 1, mapping["room_number"])

	propHeader := []string{"Name ES", "Name EN", "Address", "Zone", "Whatsapp"}
	_, fileType = detectFileType(propHeader)
	assert.Equal(t, "properties", fileType)
}

func TestRowValues(t *testing.T) {
	mapping := map[string]int{"name_es": 0, "zone": 2}
	record := []string{" Casa Centro ", "ignorado", "cholula"}

	row := rowValues(mapping, record)
	assert.Equal(t, "Casa Centro", row["name_es"])
	assert.Equal(t, "cholula", row["zone"])
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"true", "Si", "sí", "YES", "1", "x"} {
		assert.True(t, parseBool(v), v)
	}
	for _, v := range []string{"", "no", "false", "0"} {
		assert.False(t, parseBool(v), v)
	}
}
