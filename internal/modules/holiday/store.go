// README: Holiday store backed by PostgreSQL; loaded once at startup.
package holiday

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Load(ctx context.Context) ([]Holiday, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, COALESCE(fixed_date, ''), COALESCE(month_day, ''), surcharge
		FROM public_holidays
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []Holiday
	for rows.Next() {
		var h Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.MonthDay, &h.Surcharge); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
