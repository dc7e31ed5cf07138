package appointment

import (
	"context"

	"github.com/navalha-app/booking-api/internal/models"
)

// ListFilter delimita a listagem administrativa. Datas no formato
// YYYY-MM-DD, intervalo fechado; BarberID vazio = todos.
type ListFilter struct {
	BarberID  string
	StartDate string
	EndDate   string
}

type Repository interface {
	// -------- Reference data --------
	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		id string,
	) (*models.Barber, error)

	// -------- Availability (read) --------
	ListBookedTimes(
		ctx context.Context,
		barberID string,
		date string,
	) ([]string, error)

	// -------- Booking (check-and-insert atômico) --------
	// Devolve httperr.ErrBusiness("slot_taken") quando o horário já
	// tem agendamento não-cancelado para o mesmo barbeiro/data/hora.
	CreateIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change / listing) --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}
