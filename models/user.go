package models

import "time"

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string    `gorm:"default:Nuevo Usuario" json:"name"`
	Email       string    `gorm:"unique" json:"email"`
	Password    string    `json:"password"`
	PhoneNumber string    `json:"phoneNumber"`
	Avatar      string    `json:"avatar"`
	Role        int       `gorm:"default:3" json:"role"` // 1 staff, 2 dueño, 3 estudiante
	Status      int       `gorm:"default:1" json:"status"`
	GoogleID    string    `json:"googleId"`
}
