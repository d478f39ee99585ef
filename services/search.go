package services

import (
	"sort"
	"strings"
	"sync"

	"pueblastay/constants"
	"pueblastay/dto"
	"pueblastay/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// NormalizeInput estandariza una cadena para comparar
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// CreateMatcher arma el closestmatch para una lista de palabras clave
func CreateMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// CalculateSimilarity mide qué tan parecidas son dos cadenas (0..1)
func CalculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Dos cadenas vacías son idénticas
	}

	return 1.0 - float64(distance)/maxLen
}

// ParseRoomType detecta el tipo de cuarto pedido en la consulta libre.
// Busca cada palabra clave como subcadena de la consulta normalizada;
// compartido se revisa primero porque sus frases nunca contienen las de
// privado. Regresa "" si la consulta no menciona tipo.
func ParseRoomType(query string) string {
	privateKeywords := []string{"cuarto privado", "privado", "private room", "individual"}
	sharedKeywords := []string{"cuarto compartido", "compartido", "shared", "roomie"}

	normalized := NormalizeInput(query)

	for _, kw := range sharedKeywords {
		if strings.Contains(normalized, kw) {
			return constants.RoomTypeShared
		}
	}
	for _, kw := range privateKeywords {
		if strings.Contains(normalized, kw) {
			return constants.RoomTypePrivate
		}
	}
	return ""
}

// PrepareZoneList junta las zonas únicas normalizadas para el matcher
func PrepareZoneList(properties []models.Property) []string {
	uniqueValues := make(map[string]bool)
	for i := range properties {
		if properties[i].Zone != "" {
			uniqueValues[NormalizeInput(properties[i].Zone)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// CalculateScore puntúa qué tanto encaja una propiedad con la consulta
func CalculateScore(query string, prop *models.Property, cmZone *closestmatch.ClosestMatch) int {
	normalizedQuery := NormalizeInput(query)
	score := 0

	if strings.Contains(NormalizeInput(prop.NameEs), normalizedQuery) ||
		strings.Contains(NormalizeInput(prop.NameEn), normalizedQuery) {
		score += 20
	}

	if prop.Zone != "" && cmZone.Closest(normalizedQuery) == NormalizeInput(prop.Zone) {
		score += 13
	}

	score += commonAreaScore(normalizedQuery, prop.CommonAreas)

	roomType := ParseRoomType(normalizedQuery)
	if roomType != "" {
		for i := range prop.Rooms {
			if prop.Rooms[i].Type == roomType && prop.Rooms[i].Available {
				score += 8
				break
			}
		}
	}

	return score
}

func commonAreaScore(query string, areas []models.CommonArea) int {
	maxAreaScore := 12
	areaScore := 0

	for _, area := range areas {
		normalized := NormalizeInput(area.NameEs)
		similarity := CalculateSimilarity(query, normalized)
		if similarity > 0.7 || strings.Contains(query, normalized) {
			areaScore += 4
			if areaScore >= maxAreaScore {
				break
			}
		}
	}
	return areaScore
}

// FilterAndScoreProperties puntúa en paralelo y ordena por score
func FilterAndScoreProperties(query string, properties []models.Property, cmZone *closestmatch.ClosestMatch) []dto.ScoredProperty {
	var scored []dto.ScoredProperty
	scoreCh := make(chan dto.ScoredProperty, len(properties))
	var wg sync.WaitGroup

	for _, prop := range properties {
		wg.Add(1)
		go func(prop models.Property) {
			defer wg.Done()
			score := CalculateScore(query, &prop, cmZone)
			if score > 0 {
				scoreCh <- dto.ScoredProperty{Property: prop, Score: score}
			}
		}(prop)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for s := range scoreCh {
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
