package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navalha-app/booking-api/internal/httperr"
)

func seedAppointment(t *testing.T, repo *fakeRepo) string {
	t.Helper()
	repo.addBarber("b1", fullWeek())
	repo.addService("s1", 30)

	ap, err := NewCreate(repo, nil).Execute(context.Background(), validCreateInput())
	assert.NoError(t, err)
	return ap.ID
}

func TestSetStatus_Updates(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo)

	uc := NewSetStatus(repo, nil)

	ap, err := uc.Execute(context.Background(), "b1", id, "confirmed")
	assert.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)

	stored, err := repo.GetAppointment(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "confirmed", stored.Status)
}

func TestSetStatus_AnyToAnyAllowed(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo)

	uc := NewSetStatus(repo, nil)

	// a troca não é restrita por máquina de estados
	for _, status := range []string{"completed", "pending", "cancelled", "confirmed"} {
		ap, err := uc.Execute(context.Background(), "b1", id, status)
		assert.NoError(t, err)
		assert.Equal(t, status, ap.Status)
	}
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo)

	_, err := NewSetStatus(repo, nil).Execute(context.Background(), "b1", id, "done")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestSetStatus_NotFound(t *testing.T) {
	repo := newFakeRepo()

	_, err := NewSetStatus(repo, nil).Execute(context.Background(), "b1", "ghost", "confirmed")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestSetStatus_RepositoryFailureIsNotNotFound(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo)
	repo.failWith = errors.New("conexão recusada")

	_, err := NewSetStatus(repo, nil).Execute(context.Background(), "b1", id, "confirmed")
	assert.ErrorIs(t, err, repo.failWith)
	assert.False(t, httperr.IsBusiness(err, "appointment_not_found"))
}
