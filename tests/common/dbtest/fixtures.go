//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedOperatingHours configures the same window for every weekday so booking
// tests start from a fully open week.
func SeedOperatingHours(t *testing.T, db DBLike, openMin, closeMin int) {
	t.Helper()

	ctx := context.Background()
	for weekday := 0; weekday < 7; weekday++ {
		_, err := db.Exec(ctx, `
			INSERT INTO operating_hours (weekday, open_min, close_min) VALUES ($1, $2, $3)
			ON CONFLICT (weekday) DO UPDATE SET open_min = EXCLUDED.open_min, close_min = EXCLUDED.close_min`,
			weekday, openMin, closeMin)
		require.NoError(t, err)
	}
}

func CreateClosureRule(t *testing.T, db DBLike, weekday int, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO closure_rules (id, weekday, name, active) VALUES ($1, $2, $3, true)",
		id, weekday, name)
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(_ *pgxpool.Pool) error {
	// The schedule tables start empty: unconfigured weekdays are open-ended
	// and tests seed hours explicitly when they need them.
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
