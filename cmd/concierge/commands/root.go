package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oyeadiiiiii/Travel-ChatBOt/cmd/concierge/ui"
)

// Version is overridden at build time with -ldflags.
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "concierge",
	Short: "Travel Concierge - chat, browse and book travel packages",
	Long: `Travel Concierge answers travel FAQs, recommends packages from the catalog
and walks you through booking a package in a short conversation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ui.InitUI(noColor, verbose)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
