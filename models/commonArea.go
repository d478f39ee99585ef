package models

import "time"

type CommonArea struct {
	Id        int       `json:"id" gorm:"primaryKey"`
	NameEs    string    `json:"nameEs"`
	NameEn    string    `json:"nameEn"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
