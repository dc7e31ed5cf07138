package appointment

import "github.com/navalha-app/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// InitialStatus é o status de todo agendamento recém-criado,
// independente do que o cliente enviar.
func InitialStatus() Status {
	return StatusPending
}

// ParseStatus valida o valor recebido do cliente.
//
// Qualquer status pode ser trocado por qualquer outro via painel
// administrativo. O fluxo esperado da UI é:
//
//	pending   → confirmed | cancelled
//	confirmed → completed
//
// mas a troca não é restrita aqui de propósito.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}
