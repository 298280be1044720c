package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	testCases := []struct {
		phone string
		valid bool
	}{
		{"+966501234567", true},
		{"+63 917 123 4567", true},
		{"0501234567", false},
		{"abc", false},
		{"", false},
		{"+1234", false},
	}

	for _, tc := range testCases {
		t.Run(tc.phone, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidPhone(tc.phone))
		})
	}
}

func TestValidPassport(t *testing.T) {
	assert.True(t, ValidPassport("A1234567"))
	assert.False(t, ValidPassport("a1234567"))
	assert.False(t, ValidPassport("A12"))
	assert.False(t, ValidPassport("A1234567-X"))
}

func TestEnumerations(t *testing.T) {
	assert.True(t, WorkerStatusOnLeave.Valid())
	assert.False(t, WorkerStatus("on_leave").Valid())
	assert.True(t, NationalitySriLankan.Valid())
	assert.False(t, Religion("Christian").Valid())
	assert.True(t, BookingStatusApproved.Terminal())
	assert.False(t, BookingStatusPending.Terminal())
}

func TestAllChoices(t *testing.T) {
	choices := AllChoices()

	assert.Len(t, choices.Professions, len(Professions()))
	assert.Len(t, choices.WorkerStatuses, 3)
	assert.Len(t, choices.BookingStatuses, 3)
	assert.Equal(t, Choice{Value: "On Leave", Label: "On Leave"}, choices.WorkerStatuses[2])
}

func TestValidationError(t *testing.T) {
	verr := NewValidationError("worker", "This worker is not available for booking.")
	verr.Add("phone_number", "Enter a valid phone number.")

	assert.False(t, verr.Empty())
	assert.Equal(t, "validation failed: phone_number: Enter a valid phone number., worker: This worker is not available for booking.", verr.Error())
	assert.False(t, errors.Is(verr, ErrConflict))

	conflict := NewConflictError("passport_number", "worker with this passport number already exists.")
	wrapped := errors.Join(errors.New("create worker"), conflict)
	assert.True(t, errors.Is(wrapped, ErrConflict))

	got, ok := AsValidation(wrapped)
	assert.True(t, ok)
	assert.Contains(t, got.Fields, "passport_number")
}
