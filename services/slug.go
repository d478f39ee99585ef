package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
)

// Slugify genera la llave de URL de una propiedad a partir de su nombre:
// sin acentos, minúsculas, guiones.
func Slugify(name string) string {
	normalized := strings.ToLower(unidecode.Unidecode(strings.TrimSpace(name)))

	var b strings.Builder
	lastDash := true // evita guion inicial
	for _, r := range normalized {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
