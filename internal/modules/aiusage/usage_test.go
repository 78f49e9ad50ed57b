// README: Assistant-usage module tests (lazy monthly reset and quota boundary).
package aiusage

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestUseMessageCrossMonthReset verifies that a visitor with 0 messages left
// from a previous month is reset and the request succeeds.
func TestUseMessageCrossMonthReset(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	if _, err := db.Exec(ctx, "INSERT INTO assistant_usage VALUES ('visitor_reset', 0, '2000-01')"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.UseMessage(ctx, "visitor_reset"); err != nil {
		t.Fatalf("UseMessage after cross-month reset: %v", err)
	}

	var remaining int
	if err := db.QueryRow(ctx, "SELECT messages_remaining FROM assistant_usage WHERE visitor_id = 'visitor_reset'").Scan(&remaining); err != nil {
		t.Fatalf("query: %v", err)
	}
	if remaining != DefaultMessages-1 {
		t.Fatalf("expected %d messages remaining, got %d", DefaultMessages-1, remaining)
	}
}

// TestUseMessageQuotaExhausted verifies that a visitor with 0 messages in the
// current month is blocked.
func TestUseMessageQuotaExhausted(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	if _, err := db.Exec(ctx, "INSERT INTO assistant_usage (visitor_id, messages_remaining, last_reset_month) VALUES ('visitor_zero', 0, TO_CHAR(NOW(), 'YYYY-MM'))"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.UseMessage(ctx, "visitor_zero"); err != ErrQuotaExhausted {
		t.Fatalf("expected ErrQuotaExhausted, got %v", err)
	}
}

// TestUseMessageNewVisitor verifies that a visitor absent from the table is
// initialised on first call.
func TestUseMessageNewVisitor(t *testing.T) {
	svc, db := setupTestService(t)
	ctx := context.Background()

	if err := svc.UseMessage(ctx, "visitor_new"); err != nil {
		t.Fatalf("UseMessage for new visitor: %v", err)
	}

	var remaining int
	if err := db.QueryRow(ctx, "SELECT messages_remaining FROM assistant_usage WHERE visitor_id = 'visitor_new'").Scan(&remaining); err != nil {
		t.Fatalf("query: %v", err)
	}
	if remaining != DefaultMessages-1 {
		t.Fatalf("expected %d messages remaining after first use, got %d", DefaultMessages-1, remaining)
	}
}

// setupTestService creates a real postgres-backed Service. It skips the test
// when TGT_TEST_DSN is not set.
func setupTestService(t *testing.T) (*Service, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TGT_TEST_DSN")
	if dsn == "" {
		t.Skip("TGT_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS assistant_usage (
			visitor_id TEXT PRIMARY KEY,
			messages_remaining INT NOT NULL DEFAULT 30,
			last_reset_month TEXT NOT NULL DEFAULT to_char(now(), 'YYYY-MM')
		)
	`); err != nil {
		t.Fatalf("ensure assistant_usage table: %v", err)
	}

	if _, err := db.Exec(ctx, "TRUNCATE TABLE assistant_usage"); err != nil {
		t.Fatalf("truncate assistant_usage: %v", err)
	}

	return NewService(NewStore(db)), db
}
