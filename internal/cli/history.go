package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/4rankng/tradeassist/internal/display"
	"github.com/4rankng/tradeassist/internal/history"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent classifier and price invocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(a.cfg.HistoryDBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			recent, err := store.Recent(limit)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(recent)
			}

			rows := make([][]string, 0, len(recent))
			for _, inv := range recent {
				rows = append(rows, []string{
					inv.CreatedAt.Format("2006-01-02 15:04"),
					inv.Ticker,
					inv.Token,
					inv.Model,
					strconv.Itoa(inv.Days),
					strconv.Itoa(inv.Agents),
				})
			}

			fmt.Print(display.Table(
				[]string{"TIME", "TICKER", "TOKEN", "MODEL", "DAYS", "AGENTS"}, rows))
			fmt.Println(display.Countf("%d invocations", len(recent)))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum rows to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON")

	return cmd
}
