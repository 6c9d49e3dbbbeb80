package queries

import (
	"context"

	"calendar-booking/internal/pkg/civil"

	"github.com/google/uuid"
)

type OperatingHoursView struct {
	Weekday int    `json:"weekday"`
	Open    string `json:"open"`
	Close   string `json:"close"`
}

type ClosureRuleView struct {
	ID      uuid.UUID `json:"id"`
	Weekday int       `json:"weekday"`
	Name    string    `json:"name"`
	Active  bool      `json:"active"`
}

// ClosureOccurrence is one concrete date produced by expanding a recurring
// closure rule over a date range, annotated with that weekday's operating
// hours when configured.
type ClosureOccurrence struct {
	Date  string              `json:"date"`
	Name  string              `json:"name"`
	Hours *OperatingHoursView `json:"hours,omitempty"`
}

type ScheduleQueries interface {
	ListOperatingHours(ctx context.Context) ([]*OperatingHoursView, error)
	GetOperatingHours(ctx context.Context, weekday int) (*OperatingHoursView, error)
	ListClosureRules(ctx context.Context, includeInactive bool) ([]*ClosureRuleView, error)
	ClosureOccurrences(ctx context.Context, from, to civil.Date) ([]ClosureOccurrence, error)
}

type ScheduleViewRepo interface {
	FindAllOperatingHours(ctx context.Context) ([]*OperatingHoursView, error)
	FindOperatingHours(ctx context.Context, weekday int) (*OperatingHoursView, error)
	FindClosureRules(ctx context.Context, activeOnly bool) ([]*ClosureRuleView, error)
}

type scheduleQueriesImpl struct {
	repo ScheduleViewRepo
}

func NewScheduleQueries(repo ScheduleViewRepo) ScheduleQueries {
	return &scheduleQueriesImpl{repo: repo}
}

func (q *scheduleQueriesImpl) ListOperatingHours(ctx context.Context) ([]*OperatingHoursView, error) {
	return q.repo.FindAllOperatingHours(ctx)
}

func (q *scheduleQueriesImpl) GetOperatingHours(ctx context.Context, weekday int) (*OperatingHoursView, error) {
	return q.repo.FindOperatingHours(ctx, weekday)
}

func (q *scheduleQueriesImpl) ListClosureRules(ctx context.Context, includeInactive bool) ([]*ClosureRuleView, error) {
	return q.repo.FindClosureRules(ctx, !includeInactive)
}

// ClosureOccurrences expands the active rules into the concrete dates they
// hit within [from,to], inclusive on both ends.
func (q *scheduleQueriesImpl) ClosureOccurrences(ctx context.Context, from, to civil.Date) ([]ClosureOccurrence, error) {
	rules, err := q.repo.FindClosureRules(ctx, true)
	if err != nil {
		return nil, err
	}
	allHours, err := q.repo.FindAllOperatingHours(ctx)
	if err != nil {
		return nil, err
	}

	byWeekday := make(map[int][]*ClosureRuleView)
	for _, rule := range rules {
		byWeekday[rule.Weekday] = append(byWeekday[rule.Weekday], rule)
	}
	hoursByWeekday := make(map[int]*OperatingHoursView, len(allHours))
	for _, h := range allHours {
		hoursByWeekday[h.Weekday] = h
	}

	occurrences := []ClosureOccurrence{}
	for d := from; !to.Before(d); d = d.AddDays(1) {
		for _, rule := range byWeekday[d.Weekday()] {
			occurrences = append(occurrences, ClosureOccurrence{
				Date:  d.String(),
				Name:  rule.Name,
				Hours: hoursByWeekday[d.Weekday()],
			})
		}
	}
	return occurrences, nil
}
