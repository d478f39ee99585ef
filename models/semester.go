package models

import (
	"time"
)

// Semester es una de las dos ventanas fijas de inscripción a las que un
// cuarto puede quedar etiquetado.
type Semester struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Tag       string    `json:"tag" gorm:"uniqueIndex"` // primavera | otono
	NameEs    string    `json:"nameEs"`
	NameEn    string    `json:"nameEn"`
	FromDate  string    `json:"fromDate"` // Inicio de la ventana
	ToDate    string    `json:"toDate"`   // Fin de la ventana
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
