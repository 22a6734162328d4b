package commands

import (
	"context"
	"fmt"

	"github.com/oyeadiiiiii/Travel-ChatBOt/cmd/concierge/ui"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/app"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/config"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.Observability.LogLevel = "debug"
	}
	return cfg, nil
}

// buildApp loads config and wires the app behind a spinner.
func buildApp(ctx context.Context) (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	spinner := ui.NewSpinner("Loading catalog...")
	spinner.Start()
	a, err := app.Build(ctx, cfg, app.NewLogger(cfg))
	spinner.Stop()

	if err != nil {
		return nil, fmt.Errorf("start concierge: %w", err)
	}
	return a, nil
}
