//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"calendar-booking/internal/domain/schedule"
	"calendar-booking/internal/pkg/civil"
	"calendar-booking/internal/pkg/clock"
	"calendar-booking/internal/pkg/config"
	"calendar-booking/internal/usecase/commands"

	"github.com/google/uuid"

	"github.com/stretchr/testify/suite"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	bookingRepo  *fakeBookingRepo
	scheduleRepo *fakeScheduleRepo
	dayLock      *fakeDayLock
	clock        *clock.MockClock
	uc           commands.BookingCommands
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.bookingRepo = newFakeBookingRepo()
	s.scheduleRepo = newFakeScheduleRepo()
	s.dayLock = newFakeDayLock()
	s.clock = clock.NewMockClock(time.Date(2025, 9, 10, 12, 0, 0, 0, time.Local))
	s.uc = commands.NewBookingUseCase(
		s.bookingRepo,
		s.scheduleRepo,
		s.dayLock,
		config.BookingConfig{LockTimeout: 200 * time.Millisecond},
		s.clock,
	)
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func mustDate(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func mustTOD(t *testing.T, hour, minute int) civil.TimeOfDay {
	t.Helper()
	tod, err := civil.NewTimeOfDay(hour, minute)
	if err != nil {
		t.Fatal(err)
	}
	return tod
}

// validInput books 2025-09-12 (a Friday) from 18:00 to 20:00.
func (s *BookingUseCaseTestSuite) validInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		Day:        mustDate(s.T(), "2025-09-12"),
		Start:      mustTOD(s.T(), 18, 0),
		End:        mustTOD(s.T(), 20, 0),
		HolderName: "山田太郎",
		Contact:    "090-0000-0000",
		Adults:     2,
		Children:   1,
	}
}

func (s *BookingUseCaseTestSuite) setHours(weekday, openH, closeH int) {
	hours, err := schedule.NewOperatingHours(weekday, mustTOD(s.T(), openH, 0), mustTOD(s.T(), closeH, 0))
	s.Require().NoError(err)
	s.Require().NoError(s.scheduleRepo.UpsertOperatingHours(context.Background(), hours))
}

func (s *BookingUseCaseTestSuite) addClosureRule(weekday int) {
	rule, err := schedule.NewClosureRule(weekday, "定休日")
	s.Require().NoError(err)
	s.Require().NoError(s.scheduleRepo.InsertClosureRule(context.Background(), rule))
}

func (s *BookingUseCaseTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("creates a booking inside operating hours", func() {
		s.SetupTest()
		s.setHours(4, 10, 22)

		res, err := s.uc.Create(ctx, s.validInput())

		s.Require().NoError(err)
		s.Equal("山田太郎", res.HolderName())
		s.Equal(1, s.bookingRepo.count())
	})

	s.Run("creates when no operating hours are configured", func() {
		s.SetupTest()

		_, err := s.uc.Create(ctx, s.validInput())

		s.Require().NoError(err)
	})

	s.Run("rejects a past day", func() {
		s.SetupTest()
		in := s.validInput()
		in.Day = mustDate(s.T(), "2025-09-09")

		_, err := s.uc.Create(ctx, in)

		s.Require().ErrorIs(err, commands.ErrPastDate)
		s.Equal(0, s.bookingRepo.count())
	})

	s.Run("accepts today", func() {
		s.SetupTest()
		in := s.validInput()
		in.Day = mustDate(s.T(), "2025-09-10")

		_, err := s.uc.Create(ctx, in)

		s.Require().NoError(err)
	})

	s.Run("rejects end before start", func() {
		s.SetupTest()
		in := s.validInput()
		in.Start = mustTOD(s.T(), 20, 0)
		in.End = mustTOD(s.T(), 18, 0)

		_, err := s.uc.Create(ctx, in)

		s.Require().ErrorIs(err, commands.ErrInvalidTimeRange)
	})

	s.Run("rejects zero-length interval", func() {
		s.SetupTest()
		in := s.validInput()
		in.End = in.Start

		_, err := s.uc.Create(ctx, in)

		s.Require().ErrorIs(err, commands.ErrInvalidTimeRange)
	})

	s.Run("rejects a recurring closure day", func() {
		s.SetupTest()
		s.addClosureRule(4)

		_, err := s.uc.Create(ctx, s.validInput())

		s.Require().ErrorIs(err, commands.ErrClosedDay)
	})

	s.Run("rejects an interval outside operating hours", func() {
		s.SetupTest()
		s.setHours(4, 10, 22)
		in := s.validInput()
		in.Start = mustTOD(s.T(), 9, 0)
		in.End = mustTOD(s.T(), 11, 0)

		_, err := s.uc.Create(ctx, in)

		s.Require().ErrorIs(err, commands.ErrOutsideOperatingHours)
	})

	s.Run("allows touching the operating boundaries", func() {
		s.SetupTest()
		s.setHours(4, 10, 22)
		in := s.validInput()
		in.Start = mustTOD(s.T(), 10, 0)
		in.End = mustTOD(s.T(), 22, 0)

		_, err := s.uc.Create(ctx, in)

		s.Require().NoError(err)
	})

	s.Run("rejects an overlapping slot", func() {
		s.SetupTest()
		_, err := s.uc.Create(ctx, s.validInput())
		s.Require().NoError(err)

		in := s.validInput()
		in.Start = mustTOD(s.T(), 19, 0)
		in.End = mustTOD(s.T(), 21, 0)

		_, err = s.uc.Create(ctx, in)

		s.Require().ErrorIs(err, commands.ErrSlotConflict)
		s.Equal(1, s.bookingRepo.count())
	})

	s.Run("back-to-back slots do not conflict", func() {
		s.SetupTest()
		_, err := s.uc.Create(ctx, s.validInput())
		s.Require().NoError(err)

		in := s.validInput()
		in.Start = mustTOD(s.T(), 20, 0)
		in.End = mustTOD(s.T(), 21, 0)

		_, err = s.uc.Create(ctx, in)

		s.Require().NoError(err)
		s.Equal(2, s.bookingRepo.count())
	})

	s.Run("same interval on another day does not conflict", func() {
		s.SetupTest()
		_, err := s.uc.Create(ctx, s.validInput())
		s.Require().NoError(err)

		in := s.validInput()
		in.Day = mustDate(s.T(), "2025-09-13")

		_, err = s.uc.Create(ctx, in)

		s.Require().NoError(err)
	})

	s.Run("closure marker bypasses closure-day and hours checks", func() {
		s.SetupTest()
		s.addClosureRule(4)
		s.setHours(4, 10, 22)

		in := s.validInput()
		in.Start = mustTOD(s.T(), 0, 0)
		in.End = mustTOD(s.T(), 23, 59)
		in.IsClosure = true
		name := "臨時休業"
		in.ClosureName = &name

		res, err := s.uc.Create(ctx, in)

		s.Require().NoError(err)
		s.True(res.IsClosure())
	})

	s.Run("overlapping closure markers merge into one row", func() {
		s.SetupTest()
		first := s.validInput()
		first.IsClosure = true
		name := "臨時休業"
		first.ClosureName = &name
		created, err := s.uc.Create(ctx, first)
		s.Require().NoError(err)

		second := s.validInput()
		second.Start = mustTOD(s.T(), 19, 0)
		second.End = mustTOD(s.T(), 22, 0)
		second.IsClosure = true

		merged, err := s.uc.Create(ctx, second)

		s.Require().NoError(err)
		s.Equal(created.ID(), merged.ID())
		s.Equal(1, s.bookingRepo.count())
		// The absorbed marker keeps its label when the new request has none.
		s.Require().NotNil(merged.ClosureName())
		s.Equal("臨時休業", *merged.ClosureName())
		s.Equal(mustTOD(s.T(), 19, 0), merged.Slot().StartTime())
	})

	s.Run("closure marker conflicts with a customer booking", func() {
		s.SetupTest()
		_, err := s.uc.Create(ctx, s.validInput())
		s.Require().NoError(err)

		in := s.validInput()
		in.IsClosure = true

		_, err = s.uc.Create(ctx, in)

		s.Require().ErrorIs(err, commands.ErrSlotConflict)
	})
}

func (s *BookingUseCaseTestSuite) TestUpdate() {
	ctx := context.Background()

	s.Run("applies a partial patch", func() {
		s.SetupTest()
		created, err := s.uc.Create(ctx, s.validInput())
		s.Require().NoError(err)

		adults := 4
		updated, err := s.uc.Update(ctx, created.ID(), commands.UpdateBookingInput{Adults: &adults})

		s.Require().NoError(err)
		s.Equal(4, updated.Adults())
		s.Equal("山田太郎", updated.HolderName())
		s.Equal(mustTOD(s.T(), 18, 0), updated.Slot().StartTime())
	})

	s.Run("returns not found for an unknown id", func() {
		s.SetupTest()

		_, err := s.uc.Update(ctx, uuid.New(), commands.UpdateBookingInput{})

		s.Require().ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("shifting within the own window does not self-conflict", func() {
		s.SetupTest()
		created, err := s.uc.Create(ctx, s.validInput())
		s.Require().NoError(err)

		start := mustTOD(s.T(), 18, 30)
		end := mustTOD(s.T(), 20, 30)
		updated, err := s.uc.Update(ctx, created.ID(), commands.UpdateBookingInput{Start: &start, End: &end})

		s.Require().NoError(err)
		s.Equal(start, updated.Slot().StartTime())
	})

	s.Run("rejects moving onto another booking", func() {
		s.SetupTest()
		created, err := s.uc.Create(ctx, s.validInput())
		s.Require().NoError(err)

		other := s.validInput()
		other.Start = mustTOD(s.T(), 20, 0)
		other.End = mustTOD(s.T(), 21, 0)
		_, err = s.uc.Create(ctx, other)
		s.Require().NoError(err)

		start := mustTOD(s.T(), 19, 0)
		end := mustTOD(s.T(), 20, 30)
		_, err = s.uc.Update(ctx, created.ID(), commands.UpdateBookingInput{Start: &start, End: &end})

		s.Require().ErrorIs(err, commands.ErrSlotConflict)
	})

	s.Run("rejects moving to a past day", func() {
		s.SetupTest()
		created, err := s.uc.Create(ctx, s.validInput())
		s.Require().NoError(err)

		day := mustDate(s.T(), "2025-09-01")
		_, err = s.uc.Update(ctx, created.ID(), commands.UpdateBookingInput{Day: &day})

		s.Require().ErrorIs(err, commands.ErrPastDate)
	})

	s.Run("rejects an inverted patched range", func() {
		s.SetupTest()
		created, err := s.uc.Create(ctx, s.validInput())
		s.Require().NoError(err)

		end := mustTOD(s.T(), 17, 0)
		_, err = s.uc.Update(ctx, created.ID(), commands.UpdateBookingInput{End: &end})

		s.Require().ErrorIs(err, commands.ErrInvalidTimeRange)
	})

	s.Run("closure markers get no rule exemption on update", func() {
		s.SetupTest()
		in := s.validInput()
		in.IsClosure = true
		created, err := s.uc.Create(ctx, in)
		s.Require().NoError(err)

		// 2025-09-15 is a Monday; mark Mondays as closed.
		s.addClosureRule(0)
		day := mustDate(s.T(), "2025-09-15")
		_, err = s.uc.Update(ctx, created.ID(), commands.UpdateBookingInput{Day: &day})

		s.Require().ErrorIs(err, commands.ErrClosedDay)
	})

	s.Run("clears closure name when demoting to a regular booking", func() {
		s.SetupTest()
		in := s.validInput()
		in.IsClosure = true
		name := "臨時休業"
		in.ClosureName = &name
		created, err := s.uc.Create(ctx, in)
		s.Require().NoError(err)

		isClosure := false
		updated, err := s.uc.Update(ctx, created.ID(), commands.UpdateBookingInput{IsClosure: &isClosure})

		s.Require().NoError(err)
		s.False(updated.IsClosure())
		s.Nil(updated.ClosureName())
	})
}

func (s *BookingUseCaseTestSuite) TestDelete() {
	ctx := context.Background()

	s.Run("deletes an existing booking", func() {
		s.SetupTest()
		created, err := s.uc.Create(ctx, s.validInput())
		s.Require().NoError(err)

		s.Require().NoError(s.uc.Delete(ctx, created.ID()))
		s.Equal(0, s.bookingRepo.count())
	})

	s.Run("returns not found for an unknown id", func() {
		s.SetupTest()

		err := s.uc.Delete(ctx, uuid.New())

		s.Require().ErrorIs(err, commands.ErrBookingNotFound)
	})
}

// Concurrent requests for the same slot must serialize behind the day lock:
// exactly one wins, the rest observe the conflict.
func (s *BookingUseCaseTestSuite) TestConcurrentCreateSameSlot() {
	ctx := context.Background()
	const attempts = 16

	var wg sync.WaitGroup
	errsCh := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.uc.Create(ctx, s.validInput())
			errsCh <- err
		}()
	}
	wg.Wait()
	close(errsCh)

	var ok, conflicts int
	for err := range errsCh {
		switch {
		case err == nil:
			ok++
		default:
			s.Require().ErrorIs(err, commands.ErrSlotConflict)
			conflicts++
		}
	}
	s.Equal(1, ok)
	s.Equal(attempts-1, conflicts)
	s.Equal(1, s.bookingRepo.count())
}

func (s *BookingUseCaseTestSuite) TestLockTimeout() {
	ctx := context.Background()

	held := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = s.dayLock.WithLock(ctx, "booking:2025-09-12", time.Second, func(context.Context) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	_, err := s.uc.Create(ctx, s.validInput())

	s.Require().ErrorIs(err, commands.ErrLockTimeout)
	s.Equal(0, s.bookingRepo.count())
}
