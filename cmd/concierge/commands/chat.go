package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oyeadiiiiii/Travel-ChatBOt/cmd/concierge/ui"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/dialogue"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive conversation",
	Long:  "Chat with the concierge: ask questions, get recommendations and book a package.",
	Args:  cobra.NoArgs,
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	ui.Box("Travel Concierge", "Ask about trips, get recommendations or book a package.\nSay 'bye' any time to leave.")
	fmt.Fprintf(os.Stdout, "\n%s\n\n", ui.BotReply("Hi! Ready to plan your next trip?"))

	conv := a.Router.NewConversation()
	err = dialogue.Run(ctx, conv, os.Stdin, os.Stdout, dialogue.RunOptions{
		Prompt: ui.UserPrompt(),
		Format: func(r dialogue.Reply) string { return ui.BotReply(r.Text) },
	})
	if err != nil {
		return fmt.Errorf("conversation: %w", err)
	}
	return nil
}
