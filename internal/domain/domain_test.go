package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remuzel/polarsteps-mcp/internal/domain"
)

func TestNotFoundSentinels(t *testing.T) {
	assert := assert.New(t)

	user := domain.NotFoundUser()
	assert.Equal(int64(-1), user.ID)
	assert.Equal("00000000-0000-4000-8000-000000000000", user.UUID)
	assert.Equal("unknown", user.Username)
	assert.True(user.IsNotFound())

	trip := domain.NotFoundTrip()
	assert.Equal(int64(-1), trip.ID)
	assert.Equal("00000000-0000-4000-8000-000000000000", trip.UUID)
	assert.True(trip.IsNotFound())

	assert.False(domain.User{ID: 12345}.IsNotFound())
	assert.False(domain.Trip{ID: 1000001}.IsNotFound())
}

func TestTripLengthDays(t *testing.T) {
	tests := []struct {
		name      string
		startDate int64
		endDate   int64
		want      int64
	}{
		{name: "one month", startDate: 1672531200, endDate: 1675209600, want: 31},
		{name: "same day", startDate: 1672531200, endDate: 1672531200, want: 0},
		{name: "partial day rounds down", startDate: 1672531200, endDate: 1672531200 + 86399, want: 0},
		{name: "missing start", startDate: 0, endDate: 1675209600, want: 0},
		{name: "missing end", startDate: 1672531200, endDate: 0, want: 0},
		{name: "end before start", startDate: 1675209600, endDate: 1672531200, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := domain.Trip{StartDate: tt.startDate, EndDate: tt.endDate}
			assert.Equal(t, tt.want, trip.LengthDays())
		})
	}
}

func TestTripLabel(t *testing.T) {
	assert.Equal(t, "Europe 2023", domain.Trip{Name: "Europe", DisplayName: "Europe 2023"}.Label())
	assert.Equal(t, "Europe", domain.Trip{Name: "Europe"}.Label())
}
