package appointment

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/navalha-app/booking-api/internal/audit"
	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
	"github.com/navalha-app/booking-api/internal/timezone"
	"github.com/navalha-app/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ClientName  string
	ClientPhone string

	BarberID  string
	ServiceID string

	Date string // YYYY-MM-DD
	Time string // HH:MM, grade de 30 min

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// Create é a guarda de disponibilidade: a listagem de slots pode
// estar defasada no instante em que dois clientes disputam o mesmo
// horário, então a checagem é refeita dentro da mesma unidade
// transacional que insere a linha (repo.CreateIfSlotFree).
type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo domain.Repository, audit *audit.Dispatcher) *Create {
	return &Create{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Campos obrigatórios / formato
	// --------------------------------------------------
	if strings.TrimSpace(in.ClientName) == "" {
		return nil, httperr.ErrBusiness("missing_client_name")
	}
	if strings.TrimSpace(in.ClientPhone) == "" {
		return nil, httperr.ErrBusiness("missing_client_phone")
	}
	if !validators.IsValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !validators.IsValidClock(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if !validators.IsOnGrid(in.Time) {
		return nil, httperr.ErrBusiness("time_off_grid")
	}

	// --------------------------------------------------
	// Referências (ausência vira 404; falha de banco sobe intacta)
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if err != nil {
		return nil, err
	}
	if service.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	// --------------------------------------------------
	// Check-and-insert atômico (status sempre pending)
	// --------------------------------------------------
	ap := &models.Appointment{
		ID:          uuid.NewString(),
		ClientName:  strings.TrimSpace(in.ClientName),
		ClientPhone: strings.TrimSpace(in.ClientPhone),
		BarberID:    barber.ID,
		ServiceID:   service.ID,
		Date:        in.Date,
		Time:        in.Time,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
		CreatedAt:   timezone.Now(),
	}

	if err := uc.repo.CreateIfSlotFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: &ap.BarberID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
