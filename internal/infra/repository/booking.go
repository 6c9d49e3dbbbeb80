package repository

import (
	"context"
	"time"

	"calendar-booking/internal/domain/booking"
	"calendar-booking/internal/infra"
	"calendar-booking/internal/pkg/civil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `id, day, start_at, end_at, holder_name, contact, adults, children, notes, plan, is_closure, closure_name, created_at, updated_at`

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(r.queryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

// FindConflictOnDay returns the first reservation on day whose interval
// intersects [startAt,endAt), optionally excluding one id. The matched rows
// are locked FOR UPDATE so a concurrent writer outside the day lock cannot
// slip a conflicting row in between the scan and the write; it must run
// inside the critical section's transaction.
func (r *BookingRepository) FindConflictOnDay(
	ctx context.Context,
	day civil.Date,
	startAt, endAt time.Time,
	excludeID *uuid.UUID,
) (*booking.Reservation, error) {
	query := `
SELECT ` + reservationColumns + `
FROM reservations
WHERE day = $1
  AND NOT (end_at <= $2 OR start_at >= $3)
  AND ($4::uuid IS NULL OR id <> $4)
ORDER BY start_at
LIMIT 1
FOR UPDATE`

	res, err := scanReservation(r.queryRow(ctx, query, day.String(), startAt, endAt, excludeID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to scan for conflicting reservations", err)
	}
	return res, nil
}

func (r *BookingRepository) Insert(ctx context.Context, res *booking.Reservation) error {
	stmt := `
INSERT INTO reservations (id, day, start_at, end_at, holder_name, contact, adults, children, notes, plan, is_closure, closure_name)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.exec(ctx, stmt,
		res.ID(),
		res.Slot().Day().String(),
		res.Slot().StartAt(),
		res.Slot().EndAt(),
		res.HolderName(),
		res.Contact(),
		res.Adults(),
		res.Children(),
		res.Notes(),
		res.Plan(),
		res.IsClosure(),
		res.ClosureName(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("reservation already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, res *booking.Reservation) error {
	stmt := `
UPDATE reservations
SET day = $2, start_at = $3, end_at = $4, holder_name = $5, contact = $6,
    adults = $7, children = $8, notes = $9, plan = $10, is_closure = $11,
    closure_name = $12, updated_at = now()
WHERE id = $1`

	tag, err := r.exec(ctx, stmt,
		res.ID(),
		res.Slot().Day().String(),
		res.Slot().StartAt(),
		res.Slot().EndAt(),
		res.HolderName(),
		res.Contact(),
		res.Adults(),
		res.Children(),
		res.Notes(),
		res.Plan(),
		res.IsClosure(),
		res.ClosureName(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanReservation(row pgx.Row) (*booking.Reservation, error) {
	var (
		id          uuid.UUID
		day         time.Time
		startAt     time.Time
		endAt       time.Time
		holderName  string
		contact     string
		adults      int
		children    int
		notes       *string
		plan        *string
		isClosure   bool
		closureName *string
		createdAt   time.Time
		updatedAt   time.Time
	)
	err := row.Scan(&id, &day, &startAt, &endAt, &holderName, &contact, &adults, &children,
		&notes, &plan, &isClosure, &closureName, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	slot := booking.SlotFromInstants(civil.DateOf(day), startAt, endAt)
	return booking.ReconstructReservation(
		id, slot, holderName, contact, adults, children,
		notes, plan, isClosure, closureName, createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *BookingRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
