package ledger

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/booking"
)

// Header is the column layout of a CSV ledger. It never changes between appends.
var Header = []string{
	"booking_id", "category", "destination", "description",
	"price", "members", "total_price", "booked_at",
}

// CSVLedger appends bookings to a CSV file, writing Header only into a new or empty file.
type CSVLedger struct {
	mu   sync.Mutex
	path string
}

// NewCSVLedger creates a ledger backed by path. The file is created on first append.
func NewCSVLedger(path string) *CSVLedger {
	return &CSVLedger{path: path}
}

// Path returns the backing file path.
func (l *CSVLedger) Path() string {
	return l.path
}

// Append implements booking.Ledger. Appends are serialized.
func (l *CSVLedger) Append(ctx context.Context, r booking.Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat ledger: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("write ledger header: %w", err)
		}
	}
	if err := w.Write(encodeRecord(r)); err != nil {
		return fmt.Errorf("write booking: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush ledger: %w", err)
	}
	return f.Sync()
}

// List implements Ledger. A missing file is an empty ledger.
func (l *CSVLedger) List(ctx context.Context) ([]booking.Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(Header)

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read ledger header: %w", err)
	}

	var records []booking.Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read ledger: %w", err)
		}
		r, err := decodeRecord(row)
		if err != nil {
			return nil, fmt.Errorf("ledger line %d: %w", line, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func encodeRecord(r booking.Record) []string {
	return []string{
		r.ID.String(),
		r.Category,
		r.Destination,
		r.Description,
		strconv.Itoa(r.Price),
		strconv.Itoa(r.Members),
		strconv.Itoa(r.TotalPrice),
		r.BookedAt.UTC().Format(time.RFC3339),
	}
}

func decodeRecord(row []string) (booking.Record, error) {
	id, err := uuid.Parse(row[0])
	if err != nil {
		return booking.Record{}, fmt.Errorf("booking_id: %w", err)
	}

	ints := make([]int, 3)
	for i, col := range []int{4, 5, 6} {
		n, err := strconv.Atoi(row[col])
		if err != nil {
			return booking.Record{}, fmt.Errorf("%s: %w", Header[col], err)
		}
		ints[i] = n
	}

	bookedAt, err := time.Parse(time.RFC3339, row[7])
	if err != nil {
		return booking.Record{}, fmt.Errorf("booked_at: %w", err)
	}

	return booking.Record{
		ID:          id,
		Category:    row[1],
		Destination: row[2],
		Description: row[3],
		Price:       ints[0],
		Members:     ints[1],
		TotalPrice:  ints[2],
		BookedAt:    bookedAt,
	}, nil
}
