package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/4rankng/tradeassist/internal/display"
	"github.com/4rankng/tradeassist/internal/websearch"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		maxResults int
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search the web for research material",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			results, err := websearch.NewProvider().WithMaxResults(maxResults).Search(query)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(results)
			}

			for i, r := range results {
				fmt.Printf("%d. %s\n", i+1, r.Title)
				fmt.Println(display.Muted("   " + r.URL))
				if r.Snippet != "" {
					fmt.Println("   " + r.Snippet)
				}
			}
			fmt.Println(display.Countf("%d results", len(results)))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxResults, "max", 10, "Maximum results to return")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON")

	return cmd
}
