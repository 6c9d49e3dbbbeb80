package commands

import (
	"context"
	"time"

	"calendar-booking/internal/domain/booking"
	"calendar-booking/internal/domain/schedule"
	"calendar-booking/internal/pkg/civil"

	"github.com/google/uuid"
)

// Write-side ports. The booking repository doubles as the transaction
// boundary: WithTx carries one transaction through the context so the
// overlap scan's row locks live until commit.
type BookingRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
	FindConflictOnDay(ctx context.Context, day civil.Date, startAt, endAt time.Time, excludeID *uuid.UUID) (*booking.Reservation, error)
	Insert(ctx context.Context, res *booking.Reservation) error
	Update(ctx context.Context, res *booking.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ScheduleReads interface {
	// OperatingHoursFor returns nil when the weekday has no configured hours.
	OperatingHoursFor(ctx context.Context, weekday int) (*schedule.OperatingHours, error)
	ActiveClosureRules(ctx context.Context, weekday int) ([]*schedule.ClosureRule, error)
}

type ScheduleRepository interface {
	ScheduleReads
	UpsertOperatingHours(ctx context.Context, hours schedule.OperatingHours) error
	ReplaceAllOperatingHours(ctx context.Context, items []schedule.OperatingHours) error
	InsertClosureRule(ctx context.Context, rule *schedule.ClosureRule) error
	FindClosureRule(ctx context.Context, id uuid.UUID) (*schedule.ClosureRule, error)
	UpdateClosureRule(ctx context.Context, rule *schedule.ClosureRule) error
}

// DayLock serializes booking decisions per calendar day across all
// processes sharing the store. fn only runs when acquisition succeeded
// within timeout.
type DayLock interface {
	WithLock(ctx context.Context, key string, timeout time.Duration, fn func(ctx context.Context) error) error
}
