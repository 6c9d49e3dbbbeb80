package commands

import (
	"context"

	"calendar-booking/internal/domain/schedule"
	"calendar-booking/internal/infra"
	"calendar-booking/internal/pkg/civil"
	"calendar-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDuplicateWeekday    = errs.New("duplicate weekday in operating hours batch")
	ErrClosureRuleNotFound = errs.New("closure rule not found")
)

type OperatingHoursInput struct {
	Weekday int
	Open    civil.TimeOfDay
	Close   civil.TimeOfDay
}

type ScheduleCommands interface {
	UpsertOperatingHours(ctx context.Context, in OperatingHoursInput) (schedule.OperatingHours, error)
	ReplaceOperatingHours(ctx context.Context, items []OperatingHoursInput) ([]schedule.OperatingHours, error)
	SetUnifiedOperatingHours(ctx context.Context, open, closeAt civil.TimeOfDay) ([]schedule.OperatingHours, error)
	CreateClosureRule(ctx context.Context, weekday int, name string) (*schedule.ClosureRule, error)
	DeactivateClosureRule(ctx context.Context, id uuid.UUID) (*schedule.ClosureRule, error)
}

type scheduleUseCaseImpl struct {
	scheduleRepo ScheduleRepository
}

func NewScheduleUseCase(scheduleRepo ScheduleRepository) ScheduleCommands {
	return &scheduleUseCaseImpl{scheduleRepo: scheduleRepo}
}

func (u *scheduleUseCaseImpl) UpsertOperatingHours(ctx context.Context, in OperatingHoursInput) (schedule.OperatingHours, error) {
	hours, err := schedule.NewOperatingHours(in.Weekday, in.Open, in.Close)
	if err != nil {
		return schedule.OperatingHours{}, errs.Mark(err, ErrDomainValidation)
	}
	if err := u.scheduleRepo.UpsertOperatingHours(ctx, hours); err != nil {
		return schedule.OperatingHours{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return hours, nil
}

// ReplaceOperatingHours swaps the whole week's configuration for the given
// entries. Weekdays absent from the batch end up unconfigured.
func (u *scheduleUseCaseImpl) ReplaceOperatingHours(ctx context.Context, items []OperatingHoursInput) ([]schedule.OperatingHours, error) {
	seen := make(map[int]bool, len(items))
	hours := make([]schedule.OperatingHours, 0, len(items))
	for _, in := range items {
		if seen[in.Weekday] {
			return nil, ErrDuplicateWeekday
		}
		seen[in.Weekday] = true

		h, err := schedule.NewOperatingHours(in.Weekday, in.Open, in.Close)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		hours = append(hours, h)
	}

	if err := u.scheduleRepo.ReplaceAllOperatingHours(ctx, hours); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return hours, nil
}

// SetUnifiedOperatingHours applies one open/close window to every weekday.
func (u *scheduleUseCaseImpl) SetUnifiedOperatingHours(ctx context.Context, open, closeAt civil.TimeOfDay) ([]schedule.OperatingHours, error) {
	items := make([]OperatingHoursInput, 0, schedule.NumWeekdays)
	for weekday := 0; weekday < schedule.NumWeekdays; weekday++ {
		items = append(items, OperatingHoursInput{Weekday: weekday, Open: open, Close: closeAt})
	}
	return u.ReplaceOperatingHours(ctx, items)
}

func (u *scheduleUseCaseImpl) CreateClosureRule(ctx context.Context, weekday int, name string) (*schedule.ClosureRule, error) {
	rule, err := schedule.NewClosureRule(weekday, name)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := u.scheduleRepo.InsertClosureRule(ctx, rule); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rule, nil
}

func (u *scheduleUseCaseImpl) DeactivateClosureRule(ctx context.Context, id uuid.UUID) (*schedule.ClosureRule, error) {
	rule, err := u.scheduleRepo.FindClosureRule(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrClosureRuleNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rule.Deactivate()
	if err := u.scheduleRepo.UpdateClosureRule(ctx, rule); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rule, nil
}
