package schedule

import (
	"errors"

	"calendar-booking/internal/pkg/civil"

	"github.com/google/uuid"
)

var (
	ErrInvalidWeekday = errors.New("weekday must be between 0 (Monday) and 6 (Sunday)")
	ErrInvalidHours   = errors.New("open time must be before close time")
	ErrEmptyRuleName  = errors.New("closure rule name must not be empty")
)

const NumWeekdays = 7

func ValidWeekday(weekday int) bool {
	return weekday >= 0 && weekday < NumWeekdays
}

// OperatingHours is the permitted booking interval for one weekday.
// At most one record exists per weekday.
type OperatingHours struct {
	weekday int
	open    civil.TimeOfDay
	close   civil.TimeOfDay
}

func NewOperatingHours(weekday int, open, close civil.TimeOfDay) (OperatingHours, error) {
	if !ValidWeekday(weekday) {
		return OperatingHours{}, ErrInvalidWeekday
	}
	if !open.Before(close) {
		return OperatingHours{}, ErrInvalidHours
	}
	return OperatingHours{weekday: weekday, open: open, close: close}, nil
}

func (h OperatingHours) Weekday() int           { return h.weekday }
func (h OperatingHours) Open() civil.TimeOfDay  { return h.open }
func (h OperatingHours) Close() civil.TimeOfDay { return h.close }

// Contains reports whether [start,end) lies fully inside the operating
// interval. Touching the boundaries is allowed.
func (h OperatingHours) Contains(start, end civil.TimeOfDay) bool {
	return !start.Before(h.open) && !h.close.Before(end)
}

// ClosureRule marks a weekday as recurrently closed. Rules are soft-disabled,
// never hard-deleted; only active rules participate in validation.
type ClosureRule struct {
	id      uuid.UUID
	weekday int
	name    string
	active  bool
}

func NewClosureRule(weekday int, name string) (*ClosureRule, error) {
	if !ValidWeekday(weekday) {
		return nil, ErrInvalidWeekday
	}
	if name == "" {
		return nil, ErrEmptyRuleName
	}
	return &ClosureRule{
		id:      uuid.New(),
		weekday: weekday,
		name:    name,
		active:  true,
	}, nil
}

func ReconstructClosureRule(id uuid.UUID, weekday int, name string, active bool) *ClosureRule {
	return &ClosureRule{id: id, weekday: weekday, name: name, active: active}
}

func (r *ClosureRule) ID() uuid.UUID { return r.id }
func (r *ClosureRule) Weekday() int  { return r.weekday }
func (r *ClosureRule) Name() string  { return r.name }
func (r *ClosureRule) Active() bool  { return r.active }

func (r *ClosureRule) Deactivate() {
	r.active = false
}
