package cli

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/4rankng/tradeassist/internal/dataflows"
	"github.com/4rankng/tradeassist/internal/display"
	"github.com/4rankng/tradeassist/internal/watchlist"
)

func newWatchlistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "watchlist",
		Aliases: []string{"wl"},
		Short:   "Manage the ticker watchlist",
	}

	cmd.AddCommand(newWatchlistShowCmd(a))
	cmd.AddCommand(newWatchlistAddCmd(a))
	cmd.AddCommand(newWatchlistRemoveCmd(a))
	cmd.AddCommand(newWatchlistReevalCmd(a))

	return cmd
}

func newWatchlistShowCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show all watchlist entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := watchlist.NewStore(a.cfg.WatchlistPath).Load()
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.Ticker,
					strconv.FormatFloat(e.BuyScore, 'f', 1, 64),
					e.Classification,
					e.RecommendedAction,
					e.Price.StringFixed(2),
					e.Notes,
				})
			}

			fmt.Println(display.Header("👀 Watchlist"))
			fmt.Print(display.Table(
				[]string{"TICKER", "SCORE", "CLASS", "ACTION", "PRICE", "NOTES"}, rows))
			fmt.Println(display.Countf("%d entries", len(entries)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON")

	return cmd
}

func newWatchlistAddCmd(a *app) *cobra.Command {
	var (
		score float64
		notes string
	)

	cmd := &cobra.Command{
		Use:   "add TICKER",
		Short: "Add or update a watchlist entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticker := dataflows.NormalizeSymbol(args[0])
			if err := dataflows.ValidateSymbol(ticker); err != nil {
				return err
			}

			classification, action := watchlist.Classify(score)
			entry := watchlist.Entry{
				Ticker:            ticker,
				BuyScore:          score,
				Classification:    classification,
				RecommendedAction: action,
				Notes:             notes,
			}

			if quote, err := dataflows.NewYahooClient(a.cfg).GetQuote(ticker); err == nil {
				entry.Price = quote.Price
			} else {
				fmt.Println(display.Muted(fmt.Sprintf("quote unavailable for %s: %v", ticker, err)))
			}

			if err := watchlist.NewStore(a.cfg.WatchlistPath).Add(entry); err != nil {
				return err
			}

			fmt.Println(display.Success(fmt.Sprintf("✅ %s added (%s, %s)",
				ticker, entry.Classification, entry.RecommendedAction)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&score, "score", 5.0, "Buy score from 0 to 10")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form note stored with the entry")

	return cmd
}

func newWatchlistRemoveCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove TICKER",
		Short: "Remove a watchlist entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticker := dataflows.NormalizeSymbol(args[0])

			if !yes {
				confirmed := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Remove %s from the watchlist?", ticker),
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println(display.Muted("aborted"))
					return nil
				}
			}

			if err := watchlist.NewStore(a.cfg.WatchlistPath).Remove(ticker); err != nil {
				return err
			}

			fmt.Println(display.Success(fmt.Sprintf("✅ %s removed", ticker)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newWatchlistReevalCmd(a *app) *cobra.Command {
	var noPrices bool

	cmd := &cobra.Command{
		Use:   "reeval",
		Short: "Reclassify every entry and refresh prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			var quoter watchlist.Quoter
			if !noPrices {
				quoter = dataflows.NewYahooClient(a.cfg)
			}

			entries, err := watchlist.NewStore(a.cfg.WatchlistPath).Reevaluate(quoter)
			if err != nil {
				return err
			}

			for _, e := range entries {
				fmt.Println(display.KeyValue(e.Ticker,
					fmt.Sprintf("%.1f  %s  %s", e.BuyScore, e.Classification, e.RecommendedAction)))
			}
			fmt.Println(display.Success(fmt.Sprintf("✅ Reevaluated %d entries", len(entries))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noPrices, "no-prices", false, "Skip price refresh, only reclassify")

	return cmd
}
