//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"calendar-booking/internal/domain/booking"
	"calendar-booking/internal/domain/schedule"
	"calendar-booking/internal/infra"
	"calendar-booking/internal/infra/lock"
	"calendar-booking/internal/pkg/civil"

	"github.com/google/uuid"
)

// In-memory stand-ins for the write-side ports. The booking store reuses the
// domain overlap test so conflict detection matches the SQL predicate.

type fakeBookingRepo struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*booking.Reservation
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{rows: make(map[uuid.UUID]*booking.Reservation)}
}

func (r *fakeBookingRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.rows[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return res, nil
}

func (r *fakeBookingRepo) FindConflictOnDay(
	_ context.Context,
	day civil.Date,
	startAt, endAt time.Time,
	excludeID *uuid.UUID,
) (*booking.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	candidate := booking.SlotFromInstants(day, startAt, endAt)
	for _, res := range r.rows {
		if excludeID != nil && res.ID() == *excludeID {
			continue
		}
		if res.Slot().Overlaps(candidate) {
			return res, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) Insert(_ context.Context, res *booking.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[res.ID()]; ok {
		return infra.WrapRepoErr("reservation already exists", nil, infra.KindDuplicateKey)
	}
	r.rows[res.ID()] = res
	return nil
}

func (r *fakeBookingRepo) Update(_ context.Context, res *booking.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[res.ID()]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.rows[res.ID()] = res
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeBookingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type fakeScheduleRepo struct {
	mu    sync.Mutex
	hours map[int]schedule.OperatingHours
	rules map[uuid.UUID]*schedule.ClosureRule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		hours: make(map[int]schedule.OperatingHours),
		rules: make(map[uuid.UUID]*schedule.ClosureRule),
	}
}

func (r *fakeScheduleRepo) OperatingHoursFor(_ context.Context, weekday int) (*schedule.OperatingHours, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hours[weekday]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (r *fakeScheduleRepo) ActiveClosureRules(_ context.Context, weekday int) ([]*schedule.ClosureRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*schedule.ClosureRule
	for _, rule := range r.rules {
		if rule.Weekday() == weekday && rule.Active() {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) UpsertOperatingHours(_ context.Context, hours schedule.OperatingHours) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hours[hours.Weekday()] = hours
	return nil
}

func (r *fakeScheduleRepo) ReplaceAllOperatingHours(_ context.Context, items []schedule.OperatingHours) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hours = make(map[int]schedule.OperatingHours, len(items))
	for _, h := range items {
		r.hours[h.Weekday()] = h
	}
	return nil
}

func (r *fakeScheduleRepo) InsertClosureRule(_ context.Context, rule *schedule.ClosureRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.ID()] = rule
	return nil
}

func (r *fakeScheduleRepo) FindClosureRule(_ context.Context, id uuid.UUID) (*schedule.ClosureRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rule, ok := r.rules[id]
	if !ok {
		return nil, infra.WrapRepoErr("closure rule not found", nil, infra.KindNotFound)
	}
	return rule, nil
}

func (r *fakeScheduleRepo) UpdateClosureRule(_ context.Context, rule *schedule.ClosureRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rules[rule.ID()]; !ok {
		return infra.WrapRepoErr("closure rule not found", nil, infra.KindNotFound)
	}
	r.rules[rule.ID()] = rule
	return nil
}

// fakeDayLock gives each key a one-slot semaphore so the serialization
// behavior, including acquisition timeouts, is observable in-process.
type fakeDayLock struct {
	mu   sync.Mutex
	sems map[string]chan struct{}
}

func newFakeDayLock() *fakeDayLock {
	return &fakeDayLock{sems: make(map[string]chan struct{})}
}

func (l *fakeDayLock) WithLock(ctx context.Context, key string, timeout time.Duration, fn func(ctx context.Context) error) error {
	l.mu.Lock()
	sem, ok := l.sems[key]
	if !ok {
		sem = make(chan struct{}, 1)
		l.sems[key] = sem
	}
	l.mu.Unlock()

	select {
	case sem <- struct{}{}:
	case <-time.After(timeout):
		return lock.ErrTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-sem }()

	return fn(ctx)
}
