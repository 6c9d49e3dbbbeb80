package booking

import (
	"errors"
	"time"

	"calendar-booking/internal/pkg/civil"
)

var ErrInvalidTimeRange = errors.New("end time must be after start time")

// Slot is one booked interval: a calendar day plus the combined start and
// end instants anchored to that day. The interval is half-open [start,end).
type Slot struct {
	day   civil.Date
	start time.Time
	end   time.Time
}

func NewSlot(day civil.Date, start, end civil.TimeOfDay) (Slot, error) {
	startAt := day.At(start)
	endAt := day.At(end)
	if !endAt.After(startAt) {
		return Slot{}, ErrInvalidTimeRange
	}
	return Slot{day: day, start: startAt, end: endAt}, nil
}

// SlotFromInstants rebuilds a slot from persisted timestamps.
func SlotFromInstants(day civil.Date, startAt, endAt time.Time) Slot {
	return Slot{day: day, start: startAt, end: endAt}
}

func (s Slot) Day() civil.Date     { return s.day }
func (s Slot) StartAt() time.Time  { return s.start }
func (s Slot) EndAt() time.Time    { return s.end }
func (s Slot) Weekday() int        { return s.day.Weekday() }
func (s Slot) IsZero() bool        { return s == Slot{} }

func (s Slot) StartTime() civil.TimeOfDay { return civil.TimeOfDayOf(s.start) }
func (s Slot) EndTime() civil.TimeOfDay   { return civil.TimeOfDayOf(s.end) }

// Overlaps is the half-open interval intersection test: two slots conflict
// iff NOT (a.end <= b.start OR a.start >= b.end). Touching endpoints do not
// conflict.
func (s Slot) Overlaps(other Slot) bool {
	if !s.day.Equal(other.day) {
		return false
	}
	return s.start.Before(other.end) && other.start.Before(s.end)
}
