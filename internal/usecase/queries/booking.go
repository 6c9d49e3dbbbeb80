package queries

import (
	"context"
	"time"

	"calendar-booking/internal/pkg/civil"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID          uuid.UUID `json:"id"`
	Day         string    `json:"day"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	HolderName  string    `json:"holder_name"`
	Contact     string    `json:"contact"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	Notes       *string   `json:"notes,omitempty"`
	Plan        *string   `json:"plan,omitempty"`
	IsClosure   bool      `json:"is_closure"`
	ClosureName *string   `json:"closure_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByDay(ctx context.Context, day civil.Date) ([]*BookingView, error)
	ListBetween(ctx context.Context, from, to civil.Date) ([]*BookingView, error)
	ListClosures(ctx context.Context, from, to civil.Date) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByDay(ctx context.Context, day civil.Date) ([]*BookingView, error)
	FindBetween(ctx context.Context, from, to civil.Date, closuresOnly bool) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByDay(ctx context.Context, day civil.Date) ([]*BookingView, error) {
	return q.repo.FindByDay(ctx, day)
}

func (q *bookingQueriesImpl) ListBetween(ctx context.Context, from, to civil.Date) ([]*BookingView, error) {
	return q.repo.FindBetween(ctx, from, to, false)
}

func (q *bookingQueriesImpl) ListClosures(ctx context.Context, from, to civil.Date) ([]*BookingView, error) {
	return q.repo.FindBetween(ctx, from, to, true)
}
