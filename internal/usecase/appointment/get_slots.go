package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/navalha-app/booking-api/internal/domain/appointment"
	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
	"github.com/navalha-app/booking-api/internal/timezone"
	"github.com/navalha-app/booking-api/internal/validators"
)

type GetSlotsInput struct {
	BarberID    string
	Date        string // YYYY-MM-DD
	DurationMin int
}

type GetSlots struct {
	repo domain.Repository
}

func NewGetSlots(repo domain.Repository) *GetSlots {
	return &GetSlots{repo: repo}
}

func (uc *GetSlots) Execute(
	ctx context.Context,
	in GetSlotsInput,
) ([]domain.TimeSlot, error) {

	if !validators.IsValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if in.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	sameDay := in.Date == now.Format(validators.DateLayout)

	day, err := time.ParseInLocation(validators.DateLayout, in.Date, now.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	sched, ok := barber.WorkingHours[models.WeekdayKey(day)]
	if !ok {
		// folga: grade vazia, não é erro
		return []domain.TimeSlot{}, nil
	}

	times, err := uc.repo.ListBookedTimes(ctx, barber.ID, in.Date)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(times))
	for _, t := range times {
		booked[t] = true
	}

	slots := domain.GenerateSlots(&sched, in.DurationMin, booked, now, sameDay)
	if slots == nil {
		slots = []domain.TimeSlot{}
	}
	return slots, nil
}
