package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/navalha-app/booking-api/internal/audit"
	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
)

type SetStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetStatus(repo domain.Repository, audit *audit.Dispatcher) *SetStatus {
	return &SetStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	barberID string,
	appointmentID string,
	newStatus string,
) (*models.Appointment, error) {

	status, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return nil, err
	}

	ap.Status = string(status)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &barberID,
		Action:   "appointment_status_" + newStatus,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
