package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"pueblastay/dto"
)

// placesDetailsResponse define la parte de la respuesta de Google Places
// que nos interesa: las reseñas.
type placesDetailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Reviews []struct {
			AuthorName              string  `json:"author_name"`
			Rating                  float64 `json:"rating"`
			Text                    string  `json:"text"`
			RelativeTimeDescription string  `json:"relative_time_description"`
		} `json:"reviews"`
	} `json:"result"`
}

// GetPlaceReviews trae las reseñas de Google Places para una propiedad.
// Es solo lectura: el sistema nunca escribe reseñas.
func GetPlaceReviews(placeID, apiKey string) ([]dto.ReviewResponse, error) {
	if placeID == "" {
		return nil, errors.New("property has no google_place_id")
	}
	if apiKey == "" {
		return nil, errors.New("google places api key not configured")
	}

	apiURL := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/details/json?place_id=%s&fields=reviews&language=es&key=%s",
		url.QueryEscape(placeID),
		apiKey,
	)

	resp, err := http.Get(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var parsed placesDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if parsed.Status != "OK" {
		return nil, fmt.Errorf("places API status %s", parsed.Status)
	}

	reviews := make([]dto.ReviewResponse, 0, len(parsed.Result.Reviews))
	for _, r := range parsed.Result.Reviews {
		reviews = append(reviews, dto.ReviewResponse{
			Author:  r.AuthorName,
			Rating:  r.Rating,
			Text:    r.Text,
			TimeAgo: r.RelativeTimeDescription,
		})
	}
	return reviews, nil
}
