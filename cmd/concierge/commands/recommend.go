package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oyeadiiiiii/Travel-ChatBOt/cmd/concierge/ui"
	"github.com/oyeadiiiiii/Travel-ChatBOt/internal/recommend"
)

var recommendTop int

var recommendCmd = &cobra.Command{
	Use:   "recommend <query>",
	Short: "List the packages that best match a query",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendTop, "top", "n", 0, "number of packages to show (defaults to dialogue.top_k)")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	topK := recommendTop
	if topK < 1 {
		topK = a.Config.Dialogue.TopK
	}

	query := strings.Join(args, " ")
	packages := a.Recommender.Recommend(query, topK)
	if len(packages) == 0 {
		ui.Warning("Sorry, no matching package found.")
		return nil
	}

	if hint, ok := recommend.ExtractCategory(query); ok {
		ui.Info("Showing %s packages", hint)
	}

	rows := make([][]string, len(packages))
	for i, p := range packages {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			p.Destination,
			p.Category,
			p.Description,
			a.Config.Dialogue.CurrencySymbol + strconv.Itoa(p.Price),
		}
	}
	ui.Table([]string{"#", "Destination", "Type", "Description", "Price"}, rows)
	return nil
}
