package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2030-05-06"))
	assert.False(t, IsValidDate("06/05/2030"))
	assert.False(t, IsValidDate("2030-5-6"))
	assert.False(t, IsValidDate("2030-13-01"))
	assert.False(t, IsValidDate(""))
}

func TestIsValidClock(t *testing.T) {
	assert.True(t, IsValidClock("09:30"))
	assert.True(t, IsValidClock("00:00"))
	assert.False(t, IsValidClock("9:30"))
	assert.False(t, IsValidClock("24:00"))
	assert.False(t, IsValidClock("09h30"))
}

func TestIsOnGrid(t *testing.T) {
	assert.True(t, IsOnGrid("09:00"))
	assert.True(t, IsOnGrid("09:30"))
	assert.False(t, IsOnGrid("09:15"))
	assert.False(t, IsOnGrid("09:45"))
	assert.False(t, IsOnGrid("bad"))
}
