package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/navalha-app/booking-api/internal/httperr"
	"github.com/navalha-app/booking-api/internal/models"
)

func weekdayOf(t *testing.T, date string) string {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	assert.NoError(t, err)
	return models.WeekdayKey(d)
}

func TestGetSlots_Grid(t *testing.T) {
	repo := newFakeRepo()
	repo.addBarber("b1", models.WorkingHours{
		weekdayOf(t, testDate): {
			Start:  "09:00",
			End:    "18:00",
			Breaks: []models.Break{{Start: "12:00", End: "13:00"}},
		},
	})
	repo.addService("s1", 30)

	// horário já ocupado
	createUC := NewCreate(repo, nil)
	_, err := createUC.Execute(context.Background(), validCreateInput())
	assert.NoError(t, err)

	uc := NewGetSlots(repo)
	slots, err := uc.Execute(context.Background(), GetSlotsInput{
		BarberID:    "b1",
		Date:        testDate,
		DurationMin: 30,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, slots)

	byTime := map[string]bool{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	assert.False(t, byTime["10:00"]) // ocupado
	assert.False(t, byTime["12:00"]) // almoço
	assert.True(t, byTime["11:30"])
	assert.True(t, byTime["17:30"])
}

func TestGetSlots_DayOffIsEmptyNotError(t *testing.T) {
	repo := newFakeRepo()
	// sem expediente no dia pedido
	repo.addBarber("b1", models.WorkingHours{})

	uc := NewGetSlots(repo)
	slots, err := uc.Execute(context.Background(), GetSlotsInput{
		BarberID:    "b1",
		Date:        testDate,
		DurationMin: 30,
	})

	assert.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetSlots_Errors(t *testing.T) {
	repo := newFakeRepo()
	repo.addBarber("b1", fullWeek())

	uc := NewGetSlots(repo)

	_, err := uc.Execute(context.Background(), GetSlotsInput{
		BarberID: "ghost", Date: testDate, DurationMin: 30,
	})
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))

	_, err = uc.Execute(context.Background(), GetSlotsInput{
		BarberID: "b1", Date: "2030-13-40", DurationMin: 30,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = uc.Execute(context.Background(), GetSlotsInput{
		BarberID: "b1", Date: testDate, DurationMin: 0,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))
}

func TestGetSlots_RepositoryFailureIsNotNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.addBarber("b1", fullWeek())
	repo.failWith = errors.New("conexão recusada")

	_, err := NewGetSlots(repo).Execute(context.Background(), GetSlotsInput{
		BarberID: "b1", Date: testDate, DurationMin: 30,
	})
	assert.ErrorIs(t, err, repo.failWith)
	assert.False(t, httperr.IsBusiness(err, "barber_not_found"))
}
