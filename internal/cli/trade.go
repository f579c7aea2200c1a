package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/4rankng/tradeassist/internal/dataflows"
	"github.com/4rankng/tradeassist/internal/display"
	"github.com/4rankng/tradeassist/internal/tradelog"
)

func newTradeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Record and review trades",
	}

	cmd.AddCommand(newTradeLogCmd(a))
	cmd.AddCommand(newTradeListCmd(a))
	cmd.AddCommand(newTradePositionsCmd(a))

	return cmd
}

func newTradeLogCmd(a *app) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "log TICKER SIDE QUANTITY PRICE",
		Short: "Append one trade to the trade log",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := decimal.NewFromString(args[2])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[2], err)
			}
			price, err := decimal.NewFromString(args[3])
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", args[3], err)
			}

			logFile := tradelog.NewLog(a.cfg.TradeLogPath)
			saved, err := logFile.Append(tradelog.Record{
				Ticker:   dataflows.NormalizeSymbol(args[0]),
				Side:     tradelog.Side(strings.ToLower(args[1])),
				Quantity: quantity,
				Price:    price,
				Notes:    notes,
			})
			if err != nil {
				return err
			}

			fmt.Println(display.Success(fmt.Sprintf("✅ Logged %s %s %s @ %s",
				saved.Side, saved.Quantity.String(), saved.Ticker, saved.Price.StringFixed(2))))
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Free-form note stored with the trade")

	return cmd
}

func newTradeListCmd(a *app) *cobra.Command {
	var (
		ticker string
		since  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged trades",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := tradelog.Filter{Ticker: ticker}
			if since != "" {
				t, err := dataflows.ParseDate(since)
				if err != nil {
					return err
				}
				filter.Since = t
			}

			records, err := tradelog.NewLog(a.cfg.TradeLogPath).List(filter)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(records)
			}

			rows := make([][]string, 0, len(records))
			for _, r := range records {
				rows = append(rows, []string{
					r.Timestamp.Format("2006-01-02 15:04"),
					r.Ticker,
					string(r.Side),
					r.Quantity.String(),
					r.Price.StringFixed(2),
					r.Notes,
				})
			}

			fmt.Print(display.Table(
				[]string{"TIME", "TICKER", "SIDE", "QTY", "PRICE", "NOTES"}, rows))
			fmt.Println(display.Countf("%d trades", len(records)))
			return nil
		},
	}

	cmd.Flags().StringVar(&ticker, "ticker", "", "Only trades for this ticker")
	cmd.Flags().StringVar(&since, "since", "", "Only trades on or after this date (2006-01-02)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON")

	return cmd
}

func newTradePositionsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Show net position per ticker",
		RunE: func(cmd *cobra.Command, args []string) error {
			positions, err := tradelog.NewLog(a.cfg.TradeLogPath).Positions(tradelog.Filter{})
			if err != nil {
				return err
			}

			tickers := make([]string, 0, len(positions))
			for t := range positions {
				tickers = append(tickers, t)
			}
			sort.Strings(tickers)

			if asJSON {
				ordered := make([]*tradelog.Position, 0, len(tickers))
				for _, t := range tickers {
					ordered = append(ordered, positions[t])
				}
				return printJSON(ordered)
			}

			rows := make([][]string, 0, len(tickers))
			for _, t := range tickers {
				p := positions[t]
				rows = append(rows, []string{
					p.Ticker,
					p.NetQty.String(),
					p.GrossCost.StringFixed(2),
					fmt.Sprintf("%d", p.Trades),
				})
			}

			fmt.Print(display.Table([]string{"TICKER", "NET QTY", "GROSS COST", "TRADES"}, rows))
			fmt.Println(display.Countf("%d positions", len(rows)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON")

	return cmd
}
