package repository

import (
	"context"

	"calendar-booking/internal/domain/schedule"
	"calendar-booking/internal/infra"
	"calendar-booking/internal/pkg/civil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operating hours are persisted as minutes-of-day so the columns order and
// compare naturally.
type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

func (r *ScheduleRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// OperatingHoursFor returns the weekday's hours, or nil when the weekday has
// no configured hours.
func (r *ScheduleRepository) OperatingHoursFor(ctx context.Context, weekday int) (*schedule.OperatingHours, error) {
	query := `SELECT weekday, open_min, close_min FROM operating_hours WHERE weekday = $1`

	hours, err := scanOperatingHours(r.queryRow(ctx, query, weekday))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find operating hours", err)
	}
	return &hours, nil
}

func (r *ScheduleRepository) ActiveClosureRules(ctx context.Context, weekday int) ([]*schedule.ClosureRule, error) {
	query := `SELECT id, weekday, name, active FROM closure_rules WHERE weekday = $1 AND active`

	rows, err := r.query(ctx, query, weekday)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active closure rules", err)
	}
	defer rows.Close()

	return collectClosureRules(rows)
}

func (r *ScheduleRepository) UpsertOperatingHours(ctx context.Context, hours schedule.OperatingHours) error {
	stmt := `
INSERT INTO operating_hours (weekday, open_min, close_min)
VALUES ($1, $2, $3)
ON CONFLICT (weekday) DO UPDATE SET open_min = EXCLUDED.open_min, close_min = EXCLUDED.close_min, updated_at = now()`

	_, err := r.exec(ctx, stmt, hours.Weekday(), hours.Open().Minutes(), hours.Close().Minutes())
	if err != nil {
		return infra.WrapRepoErr("failed to upsert operating hours", err)
	}
	return nil
}

// ReplaceAllOperatingHours swaps the whole week's configuration in one
// transaction, used by the batch and unified administrative operations.
func (r *ScheduleRepository) ReplaceAllOperatingHours(ctx context.Context, items []schedule.OperatingHours) error {
	return r.WithTx(ctx, func(ctx context.Context) error {
		if _, err := r.exec(ctx, `DELETE FROM operating_hours`); err != nil {
			return infra.WrapRepoErr("failed to clear operating hours", err)
		}
		for _, hours := range items {
			if err := r.UpsertOperatingHours(ctx, hours); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ScheduleRepository) InsertClosureRule(ctx context.Context, rule *schedule.ClosureRule) error {
	stmt := `INSERT INTO closure_rules (id, weekday, name, active) VALUES ($1, $2, $3, $4)`

	_, err := r.exec(ctx, stmt, rule.ID(), rule.Weekday(), rule.Name(), rule.Active())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("closure rule already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert closure rule", err)
	}
	return nil
}

func (r *ScheduleRepository) FindClosureRule(ctx context.Context, id uuid.UUID) (*schedule.ClosureRule, error) {
	query := `SELECT id, weekday, name, active FROM closure_rules WHERE id = $1`

	rule, err := scanClosureRule(r.queryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("closure rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find closure rule", err)
	}
	return rule, nil
}

func (r *ScheduleRepository) UpdateClosureRule(ctx context.Context, rule *schedule.ClosureRule) error {
	stmt := `UPDATE closure_rules SET name = $2, active = $3, updated_at = now() WHERE id = $1`

	tag, err := r.exec(ctx, stmt, rule.ID(), rule.Name(), rule.Active())
	if err != nil {
		return infra.WrapRepoErr("failed to update closure rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("closure rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanOperatingHours(row pgx.Row) (schedule.OperatingHours, error) {
	var weekday, openMin, closeMin int
	if err := row.Scan(&weekday, &openMin, &closeMin); err != nil {
		return schedule.OperatingHours{}, err
	}
	return operatingHoursFromRow(weekday, openMin, closeMin)
}

func operatingHoursFromRow(weekday, openMin, closeMin int) (schedule.OperatingHours, error) {
	open, err := civil.NewTimeOfDay(openMin/60, openMin%60)
	if err != nil {
		return schedule.OperatingHours{}, err
	}
	closeAt, err := civil.NewTimeOfDay(closeMin/60, closeMin%60)
	if err != nil {
		return schedule.OperatingHours{}, err
	}
	return schedule.NewOperatingHours(weekday, open, closeAt)
}

func scanClosureRule(row pgx.Row) (*schedule.ClosureRule, error) {
	var (
		id      uuid.UUID
		weekday int
		name    string
		active  bool
	)
	if err := row.Scan(&id, &weekday, &name, &active); err != nil {
		return nil, err
	}
	return schedule.ReconstructClosureRule(id, weekday, name, active), nil
}

func collectClosureRules(rows pgx.Rows) ([]*schedule.ClosureRule, error) {
	var rules []*schedule.ClosureRule
	for rows.Next() {
		rule, err := scanClosureRule(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan closure rule", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read closure rules", err)
	}
	return rules, nil
}

func (r *ScheduleRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *ScheduleRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}

func (r *ScheduleRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
