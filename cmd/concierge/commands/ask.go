package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oyeadiiiiii/Travel-ChatBOt/cmd/concierge/ui"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer one question from the FAQ",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	answer, err := a.Resolver.Resolve(ctx, strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	fmt.Println(ui.BotReply(answer))
	return nil
}
