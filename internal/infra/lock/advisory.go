// Package lock provides a named, cross-process mutual-exclusion primitive on
// top of Postgres session advisory locks. The booking engine keys it by
// calendar day so booking decisions for one day are serialized across the
// whole fleet while other days proceed in parallel.
package lock

import (
	"context"
	"errors"
	"hash/fnv"
	"time"

	"calendar-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrTimeout = errors.New("lock acquisition timed out")

const pollInterval = 50 * time.Millisecond

type AdvisoryLock struct {
	pool *pgxpool.Pool
}

func NewAdvisoryLock(pool *pgxpool.Pool) *AdvisoryLock {
	return &AdvisoryLock{pool: pool}
}

// WithLock runs fn while holding the advisory lock for key, waiting up to
// timeout for acquisition. On timeout or cancellation fn is never invoked
// and ErrTimeout (or the context error) is returned. The lock is released
// on every exit path of fn, including panics; if the process dies the
// session-level lock is released with its connection.
func (l *AdvisoryLock) WithLock(ctx context.Context, key string, timeout time.Duration, fn func(ctx context.Context) error) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to acquire connection for advisory lock")
	}
	defer conn.Release()

	id := keyID(key)
	deadline := time.Now().Add(timeout)

	for {
		var acquired bool
		if err := conn.QueryRow(ctx, `SELECT pg_try_advisory_lock($1)`, id).Scan(&acquired); err != nil {
			return errs.Wrap(err, "failed to try advisory lock")
		}
		if acquired {
			break
		}
		if !time.Now().Before(deadline) {
			return ErrTimeout
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}

	defer func() {
		// Release must survive caller cancellation, otherwise the lock is
		// held until the pooled connection is torn down.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_, _ = conn.Exec(releaseCtx, `SELECT pg_advisory_unlock($1)`, id)
	}()

	return fn(ctx)
}

// keyID folds the textual lock key into the bigint keyspace of
// pg_advisory_lock. Distinct day keys hash to distinct ids for any
// realistic horizon.
func keyID(key string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return int64(h.Sum64())
}
