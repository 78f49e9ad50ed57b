package aiusage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles assistant_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// UseMessage atomically checks the monthly quota and deducts one message.
// It resets the counter to DefaultMessages when last_reset_month is behind
// the current month. Returns ErrQuotaExhausted when 0 rows are updated
// (quota exhausted or visitor absent).
func (s *Store) UseMessage(ctx context.Context, visitorID string) error {
	now := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE assistant_usage SET
			messages_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE messages_remaining - 1 END,
			last_reset_month = $1
		WHERE visitor_id = $3 AND (last_reset_month < $1 OR messages_remaining > 0)
	`, now, DefaultMessages, visitorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// EnsureVisitor inserts a new assistant_usage row with the default
// allowance. An existing row is silently kept (ON CONFLICT DO NOTHING).
func (s *Store) EnsureVisitor(ctx context.Context, visitorID string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO assistant_usage (visitor_id, messages_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (visitor_id) DO NOTHING
	`, visitorID, DefaultMessages, time.Now().Format("2006-01"))
	return err
}
