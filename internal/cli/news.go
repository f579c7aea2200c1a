package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/4rankng/tradeassist/internal/display"
	"github.com/4rankng/tradeassist/internal/news"
)

func newNewsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Collect and review market news articles",
	}

	cmd.AddCommand(newNewsListCmd(a))
	cmd.AddCommand(newNewsFetchCmd(a))
	cmd.AddCommand(newNewsUpdateCmd(a))

	return cmd
}

func newNewsListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored articles, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			articles, err := news.NewStore(a.cfg.NewsDir).List()
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(articles)
			}

			rows := make([][]string, 0, len(articles))
			for _, art := range articles {
				published := ""
				if !art.Published.IsZero() {
					published = art.Published.Format("2006-01-02")
				}
				rows = append(rows, []string{
					published,
					art.Title,
					art.Source,
					strings.Join(art.Tickers, ","),
				})
			}

			fmt.Println(display.Header("📰 News"))
			fmt.Print(display.Table([]string{"DATE", "TITLE", "SOURCE", "TICKERS"}, rows))
			fmt.Println(display.Countf("%d articles", len(articles)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON")

	return cmd
}

func newNewsFetchCmd(a *app) *cobra.Command {
	var (
		feed     bool
		maxItems int
		tickers  []string
	)

	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "Fetch an article page (or an RSS feed with --feed) and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher := news.NewFetcher()
			store := news.NewStore(a.cfg.NewsDir)

			if feed {
				articles, err := fetcher.FetchFeed(args[0], maxItems)
				if err != nil {
					return fmt.Errorf("fetch feed: %w", err)
				}
				for _, art := range articles {
					art.Tickers = append(art.Tickers, tickers...)
					if err := store.Save(art); err != nil {
						return err
					}
					fmt.Println(display.KeyValue("Saved", art.Title))
				}
				fmt.Println(display.Success(fmt.Sprintf("✅ %d feed items stored", len(articles))))
				return nil
			}

			article, err := fetcher.FetchURL(args[0])
			if err != nil {
				return fmt.Errorf("fetch article: %w", err)
			}
			article.Tickers = append(article.Tickers, tickers...)
			if err := store.Save(article); err != nil {
				return err
			}

			fmt.Println(display.Success("✅ " + article.Title))
			fmt.Println(display.Muted(article.URL))
			return nil
		},
	}

	cmd.Flags().BoolVar(&feed, "feed", false, "Treat the URL as an RSS/Atom feed")
	cmd.Flags().IntVar(&maxItems, "max", 10, "Maximum feed items to store")
	cmd.Flags().StringSliceVar(&tickers, "tickers", nil, "Tickers to tag the stored articles with")

	return cmd
}

func newNewsUpdateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Re-fetch every stored article by its URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, failed, err := news.NewStore(a.cfg.NewsDir).Update(news.NewFetcher())
			if err != nil {
				return err
			}
			if failed > 0 {
				fmt.Println(display.Muted(fmt.Sprintf("%d articles failed to refresh", failed)))
			}
			fmt.Println(display.Success(fmt.Sprintf("✅ %d articles refreshed", updated)))
			return nil
		},
	}
}
