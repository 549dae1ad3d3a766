package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Validate(t *testing.T) {
	valid := Booking{ID: "b1", ClientName: "Thandi", ServiceIDs: []string{"1"}}
	assert.NoError(t, valid.Validate())

	missingID := Booking{ClientName: "Thandi", ServiceIDs: []string{"1"}}
	assert.ErrorIs(t, missingID.Validate(), ErrInvalidInput)

	blankClient := Booking{ID: "b1", ClientName: " ", ServiceIDs: []string{"1"}}
	assert.ErrorIs(t, blankClient.Validate(), ErrInvalidInput)

	noServices := Booking{ID: "b1", ClientName: "Thandi"}
	assert.ErrorIs(t, noServices.Validate(), ErrNoServices)
}

func TestBooking_HasService(t *testing.T) {
	booking := Booking{ID: "b1", ClientName: "Thandi", ServiceIDs: []string{"1", "3"}}

	assert.True(t, booking.HasService("1"))
	assert.True(t, booking.HasService("3"))
	assert.False(t, booking.HasService("2"))
}
