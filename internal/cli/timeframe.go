package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/4rankng/tradeassist/internal/display"
	"github.com/4rankng/tradeassist/internal/history"
	"github.com/4rankng/tradeassist/internal/timeframe"
)

const timeframeUsage = "usage: tradeassist timeframe <number><unit>  (unit: d, w, m, y; e.g. 3d, 2w, 6m, 1y)"

func newTimeframeCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "timeframe TOKEN",
		Short: "Classify a timeframe token into a trading model",
		Long: `Classify a holding-period token such as "3d" or "2w" into one of the
trading models (scalping, swing, position, investment) and report the
analyst-agent count and approximate day count for that horizon.`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				fmt.Println(timeframeUsage)
				os.Exit(1)
			}

			c, err := timeframe.Parse(args[0])
			if err != nil {
				fmt.Println(display.Error(err.Error()))
				fmt.Println(timeframeUsage)
				os.Exit(1)
			}

			a.recordInvocation(history.Invocation{
				Token:  c.Input,
				Model:  string(c.Model),
				Days:   c.Days,
				Agents: c.Agents,
			})

			if asJSON {
				if err := printJSON(c); err != nil {
					fmt.Println(display.Error(err.Error()))
					os.Exit(1)
				}
				return
			}

			fmt.Println(display.KeyValue("Timeframe", c.Input))
			fmt.Println(display.KeyValue("Model", fmt.Sprintf("%s (%s)", c.ModelName, c.Model)))
			fmt.Println(display.KeyValue("Agents", strconv.Itoa(c.Agents)))
			fmt.Println(display.KeyValue("Days", strconv.Itoa(c.Days)))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the classification as JSON")

	return cmd
}
