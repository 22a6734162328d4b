// Package ledger persists completed bookings to an append-only sink.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/booking"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/config"
)

// ErrNoDatabase is returned when the sql driver is selected without a connection.
var ErrNoDatabase = errors.New("sql ledger needs a database connection")

// Ledger appends booking records and reads them back in booking order.
type Ledger interface {
	booking.Ledger
	List(ctx context.Context) ([]booking.Record, error)
}

// Open returns the ledger selected by cfg. db is only used by the sql driver.
func Open(cfg config.LedgerConfig, db *sql.DB) (Ledger, error) {
	switch cfg.Driver {
	case "csv", "":
		return NewCSVLedger(cfg.Path), nil
	case "sql":
		if db == nil {
			return nil, ErrNoDatabase
		}
		return NewSQLLedger(db), nil
	default:
		return nil, fmt.Errorf("unsupported ledger driver: %s", cfg.Driver)
	}
}
