package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/booking"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/storage"
)

// SQLLedger writes bookings into the bookings table.
type SQLLedger struct {
	db storage.DB
}

// NewSQLLedger creates a ledger over an already migrated database.
func NewSQLLedger(db storage.DB) *SQLLedger {
	return &SQLLedger{db: db}
}

// Append implements booking.Ledger.
func (l *SQLLedger) Append(ctx context.Context, r booking.Record) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO bookings (id, category, destination, description, price, members, total_price, booked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.ID.String(), r.Category, r.Destination, r.Description, r.Price, r.Members, r.TotalPrice, r.BookedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// List implements Ledger.
func (l *SQLLedger) List(ctx context.Context) ([]booking.Record, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, category, destination, description, price, members, total_price, booked_at
		FROM bookings
		ORDER BY booked_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var records []booking.Record
	for rows.Next() {
		var r booking.Record
		var id string
		if err := rows.Scan(&id, &r.Category, &r.Destination, &r.Description,
			&r.Price, &r.Members, &r.TotalPrice, &r.BookedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("booking id %q: %w", id, err)
		}
		r.BookedAt = r.BookedAt.UTC()
		records = append(records, r)
	}
	return records, rows.Err()
}
