package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("slot_taken")

	assert.True(t, IsBusiness(err, "slot_taken"))
	assert.False(t, IsBusiness(err, "barber_not_found"))
	assert.False(t, IsBusiness(errors.New("slot_taken"), "slot_taken"))
	assert.False(t, IsBusiness(nil, "slot_taken"))
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "idx_appointments_slot"}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create: %w", unique)))

	// só 23505 vira conflito de slot
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("duplicate key")))
	assert.False(t, IsUniqueViolation(nil))
}
