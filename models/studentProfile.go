package models

import "time"

type StudentProfile struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     *uint     `json:"userId" gorm:"index"`
	Name       string    `json:"name"`
	Email      string    `json:"email" gorm:"index"`
	University string    `json:"university"`
	Country    string    `json:"country"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
