package readstore

import (
	"context"
	"errors"
	"fmt"

	"calendar-booking/internal/infra"
	"calendar-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleReadStore struct {
	pool *pgxpool.Pool
}

func NewScheduleReadStore(pool *pgxpool.Pool) *ScheduleReadStore {
	return &ScheduleReadStore{pool: pool}
}

func (r *ScheduleReadStore) FindAllOperatingHours(ctx context.Context) ([]*queries.OperatingHoursView, error) {
	query := `SELECT weekday, open_min, close_min FROM operating_hours ORDER BY weekday`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list operating hours", err)
	}
	defer rows.Close()

	views := []*queries.OperatingHoursView{}
	for rows.Next() {
		view, err := scanOperatingHoursView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan operating hours view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read operating hours views", err)
	}
	return views, nil
}

func (r *ScheduleReadStore) FindOperatingHours(ctx context.Context, weekday int) (*queries.OperatingHoursView, error) {
	query := `SELECT weekday, open_min, close_min FROM operating_hours WHERE weekday = $1`

	view, err := scanOperatingHoursView(r.pool.QueryRow(ctx, query, weekday))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("operating hours not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find operating hours", err)
	}
	return view, nil
}

func (r *ScheduleReadStore) FindClosureRules(ctx context.Context, activeOnly bool) ([]*queries.ClosureRuleView, error) {
	query := `SELECT id, weekday, name, active FROM closure_rules WHERE NOT $1 OR active ORDER BY weekday, name`

	rows, err := r.pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list closure rules", err)
	}
	defer rows.Close()

	views := []*queries.ClosureRuleView{}
	for rows.Next() {
		var view queries.ClosureRuleView
		if err := rows.Scan(&view.ID, &view.Weekday, &view.Name, &view.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan closure rule view", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read closure rule views", err)
	}
	return views, nil
}

func scanOperatingHoursView(row pgx.Row) (*queries.OperatingHoursView, error) {
	var weekday, openMin, closeMin int
	if err := row.Scan(&weekday, &openMin, &closeMin); err != nil {
		return nil, err
	}
	return &queries.OperatingHoursView{
		Weekday: weekday,
		Open:    minutesToClock(openMin),
		Close:   minutesToClock(closeMin),
	}, nil
}

func minutesToClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
