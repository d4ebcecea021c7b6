//go:build unit

package errs_test

import (
	"testing"

	"rental-backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestSentinel(t *testing.T) {
	bookingNotFound := errs.Sentinel("booking not found", errs.ErrNotFound)
	vehicleNotFound := errs.Sentinel("vehicle not found", errs.ErrNotFound)
	bookingConflict := errs.Sentinel("vehicle is already booked", errs.ErrConflict)

	t.Run("matches its kind", func(t *testing.T) {
		assert.True(t, errs.Is(bookingNotFound, errs.ErrNotFound))
		assert.True(t, errs.Is(errs.Wrap(bookingNotFound, "load booking"), errs.ErrNotFound))
		assert.False(t, errs.Is(bookingNotFound, errs.ErrConflict))
	})

	t.Run("does not match other sentinels of the same kind", func(t *testing.T) {
		assert.False(t, errs.Is(bookingNotFound, vehicleNotFound))
		assert.False(t, errs.Is(vehicleNotFound, bookingNotFound))
		assert.False(t, errs.Is(bookingNotFound, bookingConflict))
	})

	t.Run("matches itself through wrapping", func(t *testing.T) {
		wrapped := errs.Wrapf(bookingNotFound, "booking %d", 7)
		assert.True(t, errs.Is(wrapped, bookingNotFound))
		assert.False(t, errs.Is(wrapped, vehicleNotFound))
		assert.Equal(t, "booking 7: booking not found", wrapped.Error())
	})

	t.Run("plain marks still collapse to the kind", func(t *testing.T) {
		a := errs.Mark(errs.New("a"), errs.ErrForbidden)
		b := errs.Mark(errs.New("b"), errs.ErrForbidden)
		assert.True(t, errs.Is(a, b))
	})
}

func TestAsValidation(t *testing.T) {
	err := errs.Wrap(errs.NewValidationError(map[string]string{"pickup_date": "is required"}), "create booking")

	fields, ok := errs.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"pickup_date": "is required"}, fields)
	assert.True(t, errs.Is(err, errs.ErrValidation))

	_, ok = errs.AsValidation(errs.New("boom"))
	assert.False(t, ok)
}
