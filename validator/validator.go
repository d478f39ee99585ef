package validator

import (
	"regexp"

	"pueblastay/errors"
	"pueblastay/models"
)

// ValidateUser valida la información del usuario
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El email no puede estar vacío", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email inválido", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El password no puede estar vacío", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "El password debe tener al menos 6 caracteres", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Teléfono inválido", nil)
	}

	if user.Role < 1 || user.Role > 3 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role inválido", nil)
	}

	return nil
}

// ValidateBooking valida una reserva antes de guardarla
func ValidateBooking(booking *models.Booking) error {
	if booking.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El cuarto es obligatorio", nil)
	}

	if booking.GuestName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El nombre del huésped es obligatorio", nil)
	}

	if booking.GuestEmail != "" && !isValidEmail(booking.GuestEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email del huésped inválido", nil)
	}

	if err := booking.ValidateDates(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDates, "La fecha de salida debe ser posterior a la de entrada", err)
	}

	if err := booking.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Estado de reserva inválido", err)
	}

	return nil
}

// ValidateInquiry valida el formulario público de contacto
func ValidateInquiry(inquiry *models.Inquiry) error {
	if inquiry.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El nombre no puede estar vacío", nil)
	}

	if inquiry.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El email no puede estar vacío", nil)
	}

	if !isValidEmail(inquiry.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email inválido", nil)
	}

	if err := inquiry.ValidateType(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Tipo de inquiry inválido", err)
	}

	if !models.IsValidInquiryStatus(inquiry.Status) {
		return errors.NewAppError(errors.ErrCodeUnknownStatus, "Estado de inquiry desconocido", nil)
	}

	return nil
}

// ValidateProperty valida una propiedad antes de guardarla
func ValidateProperty(property *models.Property) error {
	if property.NameEs == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El nombre en español no puede estar vacío", nil)
	}

	if property.Slug == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "El slug no puede estar vacío", nil)
	}

	return nil
}

// isValidEmail revisa el formato del email
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone revisa el formato del teléfono (10 dígitos, formato mx)
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
