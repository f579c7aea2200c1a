// Package cli wires the assistant's subcommands together.
package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/4rankng/tradeassist/config"
	"github.com/4rankng/tradeassist/internal/history"
)

// app carries the resolved configuration into every command.
type app struct {
	cfg *config.Config
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{}

	var configPath string

	rootCmd := &cobra.Command{
		Use:   "tradeassist",
		Short: "Personal trading and research assistant",
		Long: `tradeassist is a set of small utilities supporting a personal
trading/research workflow: quotes and price history, a trade log, a
watchlist, news articles, skills metadata, web search, and a bridge to
an external messaging client.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.ManagerOption
			if configPath != "" {
				opts = append(opts, config.WithConfigPath(configPath))
			}
			mgr, err := config.NewManager(opts...)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			cfg := mgr.Get()
			a.cfg = &cfg

			if err := config.LoadEnv(cfg.ProjectDir); err != nil {
				log.Printf("env load failed: %v", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("create directories: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file path")

	rootCmd.AddCommand(newTimeframeCmd(a))
	rootCmd.AddCommand(newPriceCmd(a))
	rootCmd.AddCommand(newTradeCmd(a))
	rootCmd.AddCommand(newWatchlistCmd(a))
	rootCmd.AddCommand(newNewsCmd(a))
	rootCmd.AddCommand(newSkillsCmd(a))
	rootCmd.AddCommand(newBridgeCmd(a))
	rootCmd.AddCommand(newSearchCmd(a))
	rootCmd.AddCommand(newHistoryCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("tradeassist v1.0.0")
		},
	}
}

// recordInvocation appends to the sqlite history when enabled. History
// failures never fail the command that triggered them.
func (a *app) recordInvocation(inv history.Invocation) {
	if !a.cfg.HistoryEnabled {
		return
	}

	store, err := history.Open(a.cfg.HistoryDBPath)
	if err != nil {
		log.Printf("history: %v", err)
		return
	}
	defer store.Close()

	if _, err := store.Append(inv); err != nil {
		log.Printf("history: %v", err)
	}
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
