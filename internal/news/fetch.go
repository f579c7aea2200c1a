package news

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"
)

const fetchUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher retrieves article content over HTTP and from RSS feeds.
type Fetcher struct {
	client *resty.Client
	feeds  *gofeed.Parser
}

func NewFetcher() *Fetcher {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", fetchUserAgent)

	return &Fetcher{
		client: client,
		feeds:  gofeed.NewParser(),
	}
}

// FetchURL downloads a page and extracts a title plus readable paragraph
// text into a Markdown body.
func (f *Fetcher) FetchURL(pageURL string) (*Article, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid article url: %s", pageURL)
	}

	resp, err := f.client.R().Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && og != "" {
		title = strings.TrimSpace(og)
	}

	var paragraphs []string
	doc.Find("article p, main p, p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) >= 40 {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < 40
	})

	if len(paragraphs) == 0 {
		return nil, fmt.Errorf("no readable content at %s", pageURL)
	}

	return &Article{
		Frontmatter: Frontmatter{
			Title:     title,
			URL:       pageURL,
			Source:    parsed.Host,
			Published: time.Now(),
		},
		Body: strings.Join(paragraphs, "\n\n"),
	}, nil
}

// FetchFeed pulls up to maxItems articles from an RSS/Atom feed. Items
// carry the feed entry description as body; FetchURL can replace it with
// full content later.
func (f *Fetcher) FetchFeed(feedURL string, maxItems int) ([]*Article, error) {
	if maxItems <= 0 {
		maxItems = 10
	}

	feed, err := f.feeds.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	var articles []*Article
	for _, item := range feed.Items {
		if len(articles) >= maxItems {
			break
		}
		if item.Link == "" {
			continue
		}

		published := time.Now()
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		}

		articles = append(articles, &Article{
			Frontmatter: Frontmatter{
				Title:     item.Title,
				URL:       item.Link,
				Source:    feed.Title,
				Published: published,
			},
			Body: strings.TrimSpace(item.Description),
		})
	}

	return articles, nil
}
