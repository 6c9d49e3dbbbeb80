package commands

import (
	"context"
	"errors"

	"calendar-booking/internal/domain/booking"
	"calendar-booking/internal/domain/schedule"
	"calendar-booking/internal/infra"
	"calendar-booking/internal/infra/lock"
	"calendar-booking/internal/pkg/civil"
	"calendar-booking/internal/pkg/clock"
	"calendar-booking/internal/pkg/config"
	"calendar-booking/internal/pkg/errs"
	"calendar-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrPastDate                = errs.New("booking day is in the past")
	ErrInvalidTimeRange        = errs.New("invalid time range")
	ErrClosedDay               = errs.New("the day is a recurring closure day")
	ErrOutsideOperatingHours   = errs.New("interval is outside operating hours")
	ErrSlotConflict            = errs.New("slot conflicts with an existing reservation")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrLockTimeout             = errs.New("timed out waiting for the day lock")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingInput struct {
	Day         civil.Date
	Start       civil.TimeOfDay
	End         civil.TimeOfDay
	HolderName  string
	Contact     string
	Adults      int
	Children    int
	Notes       *string
	Plan        *string
	IsClosure   bool
	ClosureName *string
}

// UpdateBookingInput carries a partial update; nil fields keep the current
// value.
type UpdateBookingInput struct {
	Day         *civil.Date
	Start       *civil.TimeOfDay
	End         *civil.TimeOfDay
	HolderName  *string
	Contact     *string
	Adults      *int
	Children    *int
	Notes       *string
	Plan        *string
	IsClosure   *bool
	ClosureName *string
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (*booking.Reservation, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateBookingInput) (*booking.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleReads
	dayLock      DayLock
	cfg          config.BookingConfig
	clock        clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleReads,
	dayLock DayLock,
	cfg config.BookingConfig,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		dayLock:      dayLock,
		cfg:          cfg,
		clock:        clock,
	}
}

func dayLockKey(day civil.Date) string {
	return "booking:" + day.String()
}

// Create books a new slot. All booking decisions for one calendar day run
// under that day's lock, and the overlap scan runs inside a transaction so
// its row locks hold until the insert commits.
//
// When the request is a closure marker and the only conflict is another
// closure marker, the existing marker absorbs the new interval instead of
// failing, keeping one closure row per day.
func (u *bookingUseCaseImpl) Create(ctx context.Context, in CreateBookingInput) (*booking.Reservation, error) {
	if in.Day.Before(clock.Today(u.clock)) {
		return nil, ErrPastDate
	}

	slot, err := booking.NewSlot(in.Day, in.Start, in.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeRange)
	}

	res, err := booking.NewReservation(slot, in.HolderName, in.Contact, in.Adults, in.Children,
		in.Notes, in.Plan, in.IsClosure, in.ClosureName)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var created *booking.Reservation
	err = u.withDayLock(ctx, in.Day, func(ctx context.Context) error {
		return u.bookingRepo.WithTx(ctx, func(ctx context.Context) error {
			if err := u.checkIntervalRules(ctx, slot, in.IsClosure); err != nil {
				return err
			}

			conflict, err := u.bookingRepo.FindConflictOnDay(ctx, in.Day, slot.StartAt(), slot.EndAt(), nil)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if conflict != nil {
				if in.IsClosure && conflict.IsClosure() {
					conflict.AbsorbClosure(slot, in.ClosureName)
					if err := u.bookingRepo.Update(ctx, conflict); err != nil {
						return errs.Mark(err, ErrDatabaseOperationFailed)
					}
					created = conflict
					return nil
				}
				return ErrSlotConflict
			}

			if err := u.bookingRepo.Insert(ctx, res); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			created = res
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update revises an existing booking. The effective slot is recomputed from
// the patch, then revalidated against business rules and conflicts under the
// target day's lock. Unlike Create, closure markers get no exemption here.
func (u *bookingUseCaseImpl) Update(ctx context.Context, id uuid.UUID, in UpdateBookingInput) (*booking.Reservation, error) {
	existing, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	day := patch.Coalesce(in.Day, existing.Slot().Day())
	start := patch.Coalesce(in.Start, existing.Slot().StartTime())
	end := patch.Coalesce(in.End, existing.Slot().EndTime())

	if day.Before(clock.Today(u.clock)) {
		return nil, ErrPastDate
	}

	err = u.withDayLock(ctx, day, func(ctx context.Context) error {
		return u.bookingRepo.WithTx(ctx, func(ctx context.Context) error {
			slot, err := booking.NewSlot(day, start, end)
			if err != nil {
				return errs.Mark(err, ErrInvalidTimeRange)
			}

			if err := u.checkIntervalRules(ctx, slot, false); err != nil {
				return err
			}

			excludeID := existing.ID()
			conflict, err := u.bookingRepo.FindConflictOnDay(ctx, day, slot.StartAt(), slot.EndAt(), &excludeID)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if conflict != nil {
				return ErrSlotConflict
			}

			notes := existing.Notes()
			if in.Notes != nil {
				notes = in.Notes
			}
			plan := existing.Plan()
			if in.Plan != nil {
				plan = in.Plan
			}
			closureName := existing.ClosureName()
			if in.ClosureName != nil {
				closureName = in.ClosureName
			}

			err = existing.Revise(
				slot,
				patch.Coalesce(in.HolderName, existing.HolderName()),
				patch.Coalesce(in.Contact, existing.Contact()),
				patch.Coalesce(in.Adults, existing.Adults()),
				patch.Coalesce(in.Children, existing.Children()),
				notes,
				plan,
				patch.Coalesce(in.IsClosure, existing.IsClosure()),
				closureName,
			)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}

			if err := u.bookingRepo.Update(ctx, existing); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (u *bookingUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.bookingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *bookingUseCaseImpl) withDayLock(ctx context.Context, day civil.Date, fn func(ctx context.Context) error) error {
	err := u.dayLock.WithLock(ctx, dayLockKey(day), u.cfg.LockTimeout, fn)
	if errors.Is(err, lock.ErrTimeout) {
		return errs.Mark(err, ErrLockTimeout)
	}
	return err
}

// checkIntervalRules validates the slot against the weekday's closure rules
// and operating hours. Closure markers skip the checks entirely on creation.
func (u *bookingUseCaseImpl) checkIntervalRules(ctx context.Context, slot booking.Slot, skip bool) error {
	if skip {
		return nil
	}

	weekday := slot.Weekday()
	closures, err := u.scheduleRepo.ActiveClosureRules(ctx, weekday)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	hours, err := u.scheduleRepo.OperatingHoursFor(ctx, weekday)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := schedule.Validate(hours, closures, slot.StartTime(), slot.EndTime(), false); err != nil {
		switch {
		case errors.Is(err, schedule.ErrClosedWeekday):
			return errs.Mark(err, ErrClosedDay)
		case errors.Is(err, schedule.ErrOutsideHours):
			return errs.Mark(err, ErrOutsideOperatingHours)
		default:
			return err
		}
	}
	return nil
}
