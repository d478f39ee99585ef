package dto

import "time"

// DateLayout es el formato de fechas del API (igual que los inputs date
// del front).
const DateLayout = "2006-01-02"

// ParseDate interpreta una fecha del API.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
