package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navalha-app/booking-api/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "cancelled", "completed"} {
		got, err := ParseStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, Status(valid), got)
	}

	for _, invalid := range []string{"", "done", "PENDING", "canceled"} {
		_, err := ParseStatus(invalid)
		assert.True(t, httperr.IsBusiness(err, "invalid_status"), "%q", invalid)
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
