// Package news stores research articles as Markdown files with YAML
// frontmatter and keeps them fresh by re-fetching each article's URL.
package news

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML block at the top of every article file.
// The url field is the one hard requirement; update runs re-fetch by it.
type Frontmatter struct {
	Title     string    `yaml:"title"`
	URL       string    `yaml:"url"`
	Source    string    `yaml:"source,omitempty"`
	Published time.Time `yaml:"published,omitempty"`
	Tickers   []string  `yaml:"tickers,omitempty"`
}

// Article is one stored news article.
type Article struct {
	Frontmatter
	Body string
	Path string
}

// ParseArticle splits Markdown content into frontmatter and body.
func ParseArticle(content string) (*Article, error) {
	if !strings.HasPrefix(content, "---") {
		return nil, fmt.Errorf("missing frontmatter block")
	}

	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return nil, fmt.Errorf("unterminated frontmatter block")
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if fm.URL == "" {
		return nil, fmt.Errorf("frontmatter has no url")
	}

	return &Article{
		Frontmatter: fm,
		Body:        strings.TrimSpace(parts[2]),
	}, nil
}

// Render serializes the article back to Markdown with frontmatter.
func (a *Article) Render() ([]byte, error) {
	fm, err := yaml.Marshal(&a.Frontmatter)
	if err != nil {
		return nil, fmt.Errorf("encode frontmatter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(fm)
	sb.WriteString("---\n\n")
	sb.WriteString(a.Body)
	sb.WriteString("\n")
	return []byte(sb.String()), nil
}

// Slug derives a filesystem-safe file stem from the article title,
// falling back to the URL host when the title is empty.
func (a *Article) Slug() string {
	base := a.Title
	if base == "" {
		base = a.URL
	}

	var sb strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && sb.Len() > 0 {
				sb.WriteRune('-')
				lastDash = true
			}
		}
	}

	slug := strings.Trim(sb.String(), "-")
	if len(slug) > 80 {
		slug = slug[:80]
	}
	if slug == "" {
		slug = "article"
	}
	return slug
}
