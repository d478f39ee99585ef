package models

import "pueblastay/errors"

// Estados del pipeline de inquiries, en orden de despliegue. rejected y
// archived son estados terminales fuera del orden numerado.
const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusDocuments = "documents"
	InquiryStatusReviewing = "reviewing"
	InquiryStatusApproved  = "approved"
	InquiryStatusPayment   = "payment"
	InquiryStatusConfirmed = "confirmed"

	InquiryStatusRejected = "rejected"
	InquiryStatusArchived = "archived"
)

// InquiryPipeline es el orden canónico de los pasos numerados.
var InquiryPipeline = []string{
	InquiryStatusNew,
	InquiryStatusContacted,
	InquiryStatusDocuments,
	InquiryStatusReviewing,
	InquiryStatusApproved,
	InquiryStatusPayment,
	InquiryStatusConfirmed,
}

// StepIndex regresa el índice 0-based del estado dentro del pipeline,
// o -1 para estados terminales o desconocidos.
func StepIndex(status string) int {
	for i, s := range InquiryPipeline {
		if s == status {
			return i
		}
	}
	return -1
}

// IsTerminalStatus indica si el estado es rejected o archived.
func IsTerminalStatus(status string) bool {
	return status == InquiryStatusRejected || status == InquiryStatusArchived
}

// IsValidInquiryStatus acepta cualquier paso del pipeline o terminal.
func IsValidInquiryStatus(status string) bool {
	return StepIndex(status) >= 0 || IsTerminalStatus(status)
}

// StepComplete indica si el paso i se pinta como completado cuando el
// inquiry está en status. Los terminales no completan ningún paso
// numerado: se pintan aparte.
func StepComplete(status string, step int) bool {
	idx := StepIndex(status)
	if idx < 0 {
		return false
	}
	return step >= 0 && step <= idx
}

// AdvanceInquiry aplica un cambio de estado. El staff puede brincar a
// cualquier paso, incluso hacia atrás (comportamiento observado del
// producto); solo se rechazan nombres de estado desconocidos.
func AdvanceInquiry(inquiry *Inquiry, target string) error {
	if !IsValidInquiryStatus(target) {
		return errors.NewAppError(errors.ErrCodeUnknownStatus, "Estado de inquiry desconocido: "+target, nil)
	}
	inquiry.Status = target
	return nil
}
