package appointment

import (
	"context"

	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
	"github.com/navalha-app/booking-api/internal/timezone"
	"github.com/navalha-app/booking-api/internal/validators"
)

type ListInput struct {
	Date     string // opcional; vazio = próximos 7 dias
	BarberID string // opcional
}

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(
	ctx context.Context,
	in ListInput,
) ([]models.Appointment, error) {

	filter := domain.ListFilter{BarberID: in.BarberID}

	if in.Date != "" {
		if !validators.IsValidDate(in.Date) {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		filter.StartDate = in.Date
		filter.EndDate = in.Date
	} else {
		// janela padrão: hoje até daqui a 7 dias
		now := timezone.Now()
		filter.StartDate = now.Format(validators.DateLayout)
		filter.EndDate = now.AddDate(0, 0, 7).Format(validators.DateLayout)
	}

	return uc.repo.ListAppointments(ctx, filter)
}
