package commands

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/oyeadiiiiii/Travel-ChatBOt/cmd/concierge/ui"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/config"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/ledger"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/storage"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List confirmed bookings",
	Args:  cobra.NoArgs,
	RunE:  runBookings,
}

var bookingsExportCmd = &cobra.Command{
	Use:   "export <file.csv>",
	Short: "Copy every confirmed booking into a CSV ledger file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookingsExport,
}

func init() {
	bookingsCmd.AddCommand(bookingsExportCmd)
	rootCmd.AddCommand(bookingsCmd)
}

// openLedger opens only the configured ledger, without loading the catalog.
func openLedger(ctx context.Context, cfg *config.Config) (ledger.Ledger, func(), error) {
	var db *sql.DB
	if cfg.Ledger.Driver == "sql" {
		var err error
		db, err = storage.OpenAndMigrate(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
	}

	closeFn := func() {
		if db != nil {
			db.Close()
		}
	}

	l, err := ledger.Open(cfg.Ledger, db)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return l, closeFn, nil
}

func runBookings(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	l, closeFn, err := openLedger(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	records, err := l.List(ctx)
	if err != nil {
		return fmt.Errorf("list bookings: %w", err)
	}
	if len(records) == 0 {
		ui.Info("No bookings yet.")
		return nil
	}

	ui.Section(fmt.Sprintf("Bookings (%d)", len(records)))
	rows := make([][]string, len(records))
	total := 0
	for i, r := range records {
		rows[i] = []string{
			r.ID.String()[:8],
			r.BookedAt.Local().Format("2006-01-02 15:04"),
			r.Destination,
			r.Category,
			strconv.Itoa(r.Members),
			cfg.Dialogue.CurrencySymbol + strconv.Itoa(r.TotalPrice),
		}
		total += r.TotalPrice
	}
	ui.Table([]string{"ID", "Booked", "Destination", "Type", "Travellers", "Total"}, rows)
	ui.Newline()
	ui.KeyValue("Revenue", cfg.Dialogue.CurrencySymbol+strconv.Itoa(total))
	return nil
}

// samePath reports whether a and b name the same file, after cleaning and
// following links when both exist.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	return errA == nil && errB == nil && os.SameFile(infoA, infoB)
}

func runBookingsExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src, closeFn, err := openLedger(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	records, err := src.List(ctx)
	if err != nil {
		return fmt.Errorf("list bookings: %w", err)
	}

	dst := ledger.NewCSVLedger(args[0])
	if cfg.Ledger.Driver != "sql" && samePath(cfg.Ledger.Path, dst.Path()) {
		return fmt.Errorf("export target is the active ledger: %s", dst.Path())
	}

	bar := ui.NewProgressBar(int64(len(records)), "Exporting")
	for _, r := range records {
		if err := dst.Append(ctx, r); err != nil {
			return fmt.Errorf("export booking %s: %w", r.ID, err)
		}
		bar.Add(1)
	}
	bar.Finish()

	ui.Success("Exported %d bookings to %s", len(records), dst.Path())
	return nil
}
