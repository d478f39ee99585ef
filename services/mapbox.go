package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// GeocodingResponseMapbox define la respuesta del geocoding de Mapbox
type GeocodingResponseMapbox struct {
	Features []struct {
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"` // [lng, lat]
		Relevance float64   `json:"relevance"`
	} `json:"features"`
}

// GetBestCoordinatesFromResponseMapbox saca las coordenadas de la
// respuesta del API de Mapbox
func GetBestCoordinatesFromResponseMapbox(body io.Reader) (float64, float64, error) {
	var response GeocodingResponseMapbox
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return 0, 0, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Features) == 0 {
		return 0, 0, errors.New("no results found")
	}

	best := response.Features[0] // Mapbox ordena por relevancia
	if len(best.Center) < 2 {
		return 0, 0, errors.New("malformed center in response")
	}
	return best.Center[1], best.Center[0], nil
}

// GetCoordinatesFromAddress usa el API de Mapbox para geocodificar la
// dirección de una propiedad. Si no hay token la propiedad se guarda sin
// coordenadas (el front degrada a un panel de instrucciones).
func GetCoordinatesFromAddress(address, zone, mapboxToken string) (float64, float64, error) {
	if mapboxToken == "" {
		return 0, 0, errors.New("mapbox token not configured")
	}

	fullAddress := fmt.Sprintf("%s, %s, Puebla, México", address, zone)
	encodedAddress := url.QueryEscape(fullAddress)

	apiURL := fmt.Sprintf(
		"https://api.mapbox.com/geocoding/v5/mapbox.places/%s.json?access_token=%s&limit=1&country=mx",
		encodedAddress,
		mapboxToken,
	)

	resp, err := http.Get(apiURL)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	return GetBestCoordinatesFromResponseMapbox(resp.Body)
}
