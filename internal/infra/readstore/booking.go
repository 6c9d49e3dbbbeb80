package readstore

import (
	"context"
	"errors"
	"time"

	"calendar-booking/internal/infra"
	"calendar-booking/internal/pkg/civil"
	"calendar-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingViewColumns = `id, day, start_at, end_at, holder_name, contact, adults, children, notes, plan, is_closure, closure_name, created_at, updated_at`

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `SELECT ` + bookingViewColumns + ` FROM reservations WHERE id = $1`

	view, err := scanBookingView(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByDay(ctx context.Context, day civil.Date) ([]*queries.BookingView, error) {
	query := `SELECT ` + bookingViewColumns + ` FROM reservations WHERE day = $1 ORDER BY start_at`

	rows, err := r.pool.Query(ctx, query, day.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for day", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func (r *BookingReadStore) FindBetween(ctx context.Context, from, to civil.Date, closuresOnly bool) ([]*queries.BookingView, error) {
	query := `
SELECT ` + bookingViewColumns + `
FROM reservations
WHERE day BETWEEN $1 AND $2
  AND (NOT $3 OR is_closure)
ORDER BY day, start_at`

	rows, err := r.pool.Query(ctx, query, from.String(), to.String(), closuresOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings in range", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view queries.BookingView
		day  time.Time
	)
	err := row.Scan(&view.ID, &day, &view.StartAt, &view.EndAt, &view.HolderName, &view.Contact,
		&view.Adults, &view.Children, &view.Notes, &view.Plan, &view.IsClosure, &view.ClosureName,
		&view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, err
	}
	view.Day = civil.DateOf(day).String()
	return &view, nil
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking views", err)
	}
	return views, nil
}
