package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oyeadiiiiii/Travel-ChatBOt/cmd/concierge/ui"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/app"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/catalog"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/storage"
)

var seedFrom string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the file catalog into the SQL store",
	Long: `Seed reads packages and FAQs from the CSV or YAML catalog, applies any
pending schema migrations and replaces the packages and faqs tables.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFrom, "from", "csv", "catalog files to read (csv or yaml)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if seedFrom != "csv" && seedFrom != "yaml" {
		return fmt.Errorf("--from must be csv or yaml, got %q", seedFrom)
	}
	catalogCfg := cfg.Catalog
	catalogCfg.Driver = seedFrom

	src, err := app.NewCatalogSource(catalogCfg, nil)
	if err != nil {
		return err
	}
	c, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	db, err := storage.OpenAndMigrate(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	packages, faqs := len(c.Packages()), len(c.FAQs())
	progress := ui.NewMultiProgress()
	progress.AddBar("packages", int64(packages))
	progress.AddBar("faqs", int64(faqs))

	err = catalog.Seed(ctx, db, c, func(table string, done, total int) {
		progress.SetCurrent(table, int64(done))
	})
	progress.Wait()
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	ui.Success("Seeded %d packages and %d FAQs into %s", packages, faqs, cfg.Database.Driver)
	return nil
}
