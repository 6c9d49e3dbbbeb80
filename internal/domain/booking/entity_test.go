//go:build unit

package booking_test

import (
	"testing"

	"calendar-booking/internal/domain/booking"
	"calendar-booking/internal/pkg/civil"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(booking.Reservation{}),
	cmpopts.EquateEmpty(),
}

func mustSlot(t *testing.T, date, start, end string) booking.Slot {
	t.Helper()
	d, err := civil.ParseDate(date)
	require.NoError(t, err)
	s, err := civil.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := civil.ParseTimeOfDay(end)
	require.NoError(t, err)
	slot, err := booking.NewSlot(d, s, e)
	require.NoError(t, err)
	return slot
}

func TestNewSlot(t *testing.T) {
	d, _ := civil.ParseDate("2025-09-02")
	ten, _ := civil.ParseTimeOfDay("10:00")
	eleven, _ := civil.ParseTimeOfDay("11:00")

	t.Run("valid range", func(t *testing.T) {
		slot, err := booking.NewSlot(d, ten, eleven)
		require.NoError(t, err)
		assert.Equal(t, d, slot.Day())
		assert.Equal(t, 1, slot.Weekday())
		assert.True(t, slot.StartAt().Before(slot.EndAt()))
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := booking.NewSlot(d, eleven, ten)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)
	})

	t.Run("zero-length interval", func(t *testing.T) {
		_, err := booking.NewSlot(d, ten, ten)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)
	})
}

func TestSlotOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     booking.Slot
		overlaps bool
	}{
		{
			name:     "identical intervals",
			a:        mustSlot(t, "2025-09-02", "10:00", "11:00"),
			b:        mustSlot(t, "2025-09-02", "10:00", "11:00"),
			overlaps: true,
		},
		{
			name:     "partial overlap",
			a:        mustSlot(t, "2025-09-02", "10:00", "11:00"),
			b:        mustSlot(t, "2025-09-02", "10:30", "11:30"),
			overlaps: true,
		},
		{
			name:     "containment",
			a:        mustSlot(t, "2025-09-02", "09:00", "12:00"),
			b:        mustSlot(t, "2025-09-02", "10:00", "11:00"),
			overlaps: true,
		},
		{
			name:     "touching endpoints do not conflict",
			a:        mustSlot(t, "2025-09-02", "10:00", "11:00"),
			b:        mustSlot(t, "2025-09-02", "11:00", "12:00"),
			overlaps: false,
		},
		{
			name:     "disjoint",
			a:        mustSlot(t, "2025-09-02", "10:00", "11:00"),
			b:        mustSlot(t, "2025-09-02", "14:00", "15:00"),
			overlaps: false,
		},
		{
			name:     "same times on different days",
			a:        mustSlot(t, "2025-09-02", "10:00", "11:00"),
			b:        mustSlot(t, "2025-09-03", "10:00", "11:00"),
			overlaps: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestNewReservation(t *testing.T) {
	slot := mustSlot(t, "2025-09-02", "10:00", "11:00")

	t.Run("basic success", func(t *testing.T) {
		actual, err := booking.NewReservation(slot, "山田太郎", "090-0000-0000", 2, 1, nil, nil, false, nil)
		require.NoError(t, err)
		require.NotNil(t, actual)

		expected := booking.ReconstructReservation(
			actual.ID(), slot, "山田太郎", "090-0000-0000", 2, 1, nil, nil, false, nil,
			actual.CreatedAt(), actual.UpdatedAt(),
		)
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Reservation mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		_, err := booking.NewReservation(slot, "", "090-0000-0000", 2, 0, nil, nil, false, nil)
		assert.ErrorIs(t, err, booking.ErrHolderRequired)

		_, err = booking.NewReservation(slot, "山田太郎", "", 2, 0, nil, nil, false, nil)
		assert.ErrorIs(t, err, booking.ErrContactRequired)

		_, err = booking.NewReservation(slot, "山田太郎", "090-0000-0000", -1, 0, nil, nil, false, nil)
		assert.ErrorIs(t, err, booking.ErrNegativePartySize)

		_, err = booking.NewReservation(slot, "山田太郎", "090-0000-0000", 0, -1, nil, nil, false, nil)
		assert.ErrorIs(t, err, booking.ErrNegativePartySize)
	})

	t.Run("closure name is dropped for non-closures", func(t *testing.T) {
		name := "臨時休業"
		r, err := booking.NewReservation(slot, "admin", "admin", 0, 0, nil, nil, false, &name)
		require.NoError(t, err)
		assert.Nil(t, r.ClosureName())
	})

	t.Run("closure marker keeps its name", func(t *testing.T) {
		name := "臨時休業"
		r, err := booking.NewReservation(slot, "admin", "admin", 0, 0, nil, nil, true, &name)
		require.NoError(t, err)
		assert.True(t, r.IsClosure())
		require.NotNil(t, r.ClosureName())
		assert.Equal(t, name, *r.ClosureName())
	})
}

func TestReservationAbsorbClosure(t *testing.T) {
	oldName := "旧休業"
	r, err := booking.NewReservation(mustSlot(t, "2025-09-02", "00:00", "23:59"), "admin", "admin", 0, 0, nil, nil, true, &oldName)
	require.NoError(t, err)

	newSlot := mustSlot(t, "2025-09-02", "09:00", "18:00")
	newName := "新休業"
	r.AbsorbClosure(newSlot, &newName)

	assert.Equal(t, newSlot, r.Slot())
	assert.Equal(t, newName, *r.ClosureName())

	// A nil name keeps the previous label, matching the merge semantics.
	r.AbsorbClosure(newSlot, nil)
	assert.Equal(t, newName, *r.ClosureName())
}
