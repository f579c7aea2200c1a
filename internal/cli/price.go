package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/4rankng/tradeassist/internal/dataflows"
	"github.com/4rankng/tradeassist/internal/display"
	"github.com/4rankng/tradeassist/internal/history"
)

func newPriceCmd(a *app) *cobra.Command {
	var (
		days   int
		save   bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "price TICKER",
		Short: "Fetch a quote or daily price history for a ticker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := dataflows.NormalizeSymbol(args[0])
			if err := dataflows.ValidateSymbol(symbol); err != nil {
				return err
			}

			client := dataflows.NewYahooClient(a.cfg)

			if days <= 0 {
				quote, err := client.GetQuote(symbol)
				if err != nil {
					return fmt.Errorf("fetch quote for %s: %w", symbol, err)
				}

				a.recordInvocation(history.Invocation{Ticker: symbol, Token: "quote"})

				if asJSON {
					return printJSON(quote)
				}

				fmt.Println(display.Header(fmt.Sprintf("📈 %s", quote.Symbol)))
				if quote.Name != "" {
					fmt.Println(display.KeyValue("Name", quote.Name))
				}
				fmt.Println(display.KeyValue("Price", fmt.Sprintf("%s %s", quote.Price.StringFixed(2), quote.Currency)))
				fmt.Println(display.KeyValue("Open", quote.Open.StringFixed(2)))
				fmt.Println(display.KeyValue("High", quote.High.StringFixed(2)))
				fmt.Println(display.KeyValue("Low", quote.Low.StringFixed(2)))
				fmt.Println(display.KeyValue("Volume", fmt.Sprintf("%d", quote.Volume)))
				if quote.Exchange != "" {
					fmt.Println(display.Muted(quote.Exchange))
				}
				return nil
			}

			bars, err := client.GetHistoryWindow(symbol, days)
			if err != nil {
				return fmt.Errorf("fetch history for %s: %w", symbol, err)
			}
			if len(bars) == 0 {
				return fmt.Errorf("no price history returned for %s", symbol)
			}

			a.recordInvocation(history.Invocation{Ticker: symbol, Token: fmt.Sprintf("%dd", days)})

			if save {
				store := dataflows.NewPriceStore(a.cfg.PricesDir)
				if err := store.Write(symbol, bars); err != nil {
					return fmt.Errorf("save history for %s: %w", symbol, err)
				}
				fmt.Println(display.Success(fmt.Sprintf("✅ Saved %d bars for %s", len(bars), symbol)))
			}

			if asJSON {
				return printJSON(bars)
			}

			rows := make([][]string, 0, len(bars))
			for _, bar := range bars {
				rows = append(rows, []string{
					bar.Date.Format("2006-01-02"),
					bar.Open.StringFixed(2),
					bar.High.StringFixed(2),
					bar.Low.StringFixed(2),
					bar.Close.StringFixed(2),
					fmt.Sprintf("%d", bar.Volume),
				})
			}

			fmt.Println(display.Header(fmt.Sprintf("📊 %s (%s)", symbol,
				dataflows.FormatDateRange(bars[0].Date, bars[len(bars)-1].Date))))
			fmt.Print(display.Table(
				[]string{"DATE", "OPEN", "HIGH", "LOW", "CLOSE", "VOLUME"}, rows))
			fmt.Println(display.Countf("%d bars", len(bars)))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Fetch this many days of daily history instead of a quote")
	cmd.Flags().BoolVar(&save, "save", false, "Write fetched history to the per-ticker CSV store")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON")

	cmd.AddCommand(newPriceShowCmd(a))

	return cmd
}

// newPriceShowCmd reads previously saved history without hitting the network.
func newPriceShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show TICKER",
		Short: "Show previously saved price history from the local CSV store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := dataflows.NormalizeSymbol(args[0])
			store := dataflows.NewPriceStore(a.cfg.PricesDir)

			bars, err := store.Read(symbol)
			if err != nil {
				return fmt.Errorf("read saved history for %s: %w", symbol, err)
			}

			rows := make([][]string, 0, len(bars))
			for _, bar := range bars {
				rows = append(rows, []string{
					bar.Date.Format("2006-01-02"),
					bar.Open.StringFixed(2),
					bar.Close.StringFixed(2),
					fmt.Sprintf("%d", bar.Volume),
				})
			}

			fmt.Println(display.Header(strings.ToUpper(symbol)))
			fmt.Print(display.Table([]string{"DATE", "OPEN", "CLOSE", "VOLUME"}, rows))
			fmt.Println(display.Countf("%d bars", len(bars)))
			return nil
		},
	}
}
