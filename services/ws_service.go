package services

import (
	"encoding/json"
	"fmt"
	"log"

	"pueblastay/config"
	"pueblastay/models"

	"github.com/olahol/melody"
)

// NotifyNewInquiry guarda la notificación y la transmite al dashboard
// por websocket para que el staff vea el inquiry sin recargar.
func NotifyNewInquiry(m *melody.Melody, inquiry *models.Inquiry) error {
	notification := models.Notification{
		InquiryID:   inquiry.ID,
		Message:     fmt.Sprintf("Nuevo inquiry de %s", inquiry.Name),
		Description: fmt.Sprintf("Tipo %s · %s", inquiry.Type, inquiry.Email),
	}

	if err := config.DB.Create(&notification).Error; err != nil {
		log.Printf("Error guardando la notificación: %v", err)
		return err
	}

	if m == nil {
		return nil
	}

	payload, err := json.Marshal(map[string]interface{}{
		"event":     "inquiry:new",
		"inquiryId": inquiry.ID,
		"name":      inquiry.Name,
		"type":      inquiry.Type,
	})
	if err != nil {
		return err
	}

	return m.Broadcast(payload)
}
