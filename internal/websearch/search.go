// Package websearch queries the DuckDuckGo HTML endpoint and returns
// plain result records for research commands.
package websearch

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const searchEndpoint = "https://html.duckduckgo.com/html/"

// Result is one search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

// Provider performs web searches.
type Provider struct {
	client     *resty.Client
	maxResults int
}

func NewProvider() *Provider {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0 (compatible; tradeassist/1.0)")

	return &Provider{
		client:     client,
		maxResults: 10,
	}
}

// WithMaxResults caps how many results Search returns.
func (p *Provider) WithMaxResults(n int) *Provider {
	if n > 0 {
		p.maxResults = n
	}
	return p
}

// Search runs the query and parses the result page.
func (p *Provider) Search(query string) ([]Result, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, fmt.Errorf("search query must be at least 2 characters")
	}

	resp, err := p.client.R().
		SetQueryParam("q", query).
		Get(searchEndpoint)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("search request: status %d", resp.StatusCode())
	}

	return parseResults(resp.String(), p.maxResults)
}

// parseResults extracts result records from a DuckDuckGo HTML page.
func parseResults(html string, maxResults int) ([]Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse search page: %w", err)
	}

	var results []Result
	doc.Find(".result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		link := sel.Find("a.result__a").First()
		href, ok := link.Attr("href")
		if !ok {
			return true
		}

		resultURL := unwrapRedirect(href)
		title := strings.TrimSpace(link.Text())
		snippet := strings.TrimSpace(sel.Find(".result__snippet").First().Text())

		if title == "" || resultURL == "" {
			return true
		}

		source := ""
		if parsed, err := url.Parse(resultURL); err == nil {
			source = parsed.Host
		}

		results = append(results, Result{
			Title:   title,
			URL:     resultURL,
			Snippet: snippet,
			Source:  source,
		})
		return len(results) < maxResults
	})

	return results, nil
}

// unwrapRedirect decodes DuckDuckGo's /l/?uddg=<target> redirect links.
func unwrapRedirect(href string) string {
	if !strings.Contains(href, "uddg=") {
		return href
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
