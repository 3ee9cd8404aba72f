package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AdvisoryLocker provides per-key mutual exclusion across processes using
// PostgreSQL session-level advisory locks. Each held lock pins one pooled
// connection until it is released.
type AdvisoryLocker struct {
	pool      *pgxpool.Pool
	namespace string
	log       *slog.Logger
}

// NewAdvisoryLocker creates a locker whose keys are prefixed with namespace.
func NewAdvisoryLocker(pool *pgxpool.Pool, namespace string, logger *slog.Logger) *AdvisoryLocker {
	return &AdvisoryLocker{
		pool:      pool,
		namespace: namespace,
		log:       logger.With("component", "advisory_lock"),
	}
}

// TryLock attempts to take the lock for key without waiting. When the lock is
// held elsewhere it returns ok=false and a nil unlock func.
func (l *AdvisoryLocker) TryLock(ctx context.Context, key string) (unlock func(), ok bool, err error) {
	lockKey := l.namespace + ":" + key

	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("acquire lock connection: %w", err)
	}

	var got bool
	if err := conn.QueryRow(ctx,
		`SELECT pg_try_advisory_lock(hashtextextended($1, 0))`, lockKey,
	).Scan(&got); err != nil {
		conn.Release()
		return nil, false, fmt.Errorf("try advisory lock %s: %w", lockKey, err)
	}
	if !got {
		conn.Release()
		return nil, false, nil
	}

	unlock = func() {
		// The caller's context may already be cancelled; unlocking must still happen.
		ctx := context.Background()
		var released bool
		err := conn.QueryRow(ctx,
			`SELECT pg_advisory_unlock(hashtextextended($1, 0))`, lockKey,
		).Scan(&released)
		if err == nil && released {
			conn.Release()
			return
		}

		// A session that may still hold the lock must not go back to the pool.
		// Closing it ends the session, which drops its advisory locks.
		l.log.ErrorContext(ctx, "advisory unlock failed, closing connection",
			slog.String("key", lockKey),
			slog.Bool("released", released),
			slog.Any("error", err),
		)
		_ = conn.Conn().Close(ctx)
		conn.Release()
	}
	return unlock, true, nil
}
