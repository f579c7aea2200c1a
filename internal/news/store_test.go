package news

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleArticle = `---
title: Apple Earnings Beat Expectations
url: https://example.com/apple-earnings
source: example.com
published: 2024-03-01T10:00:00Z
tickers:
  - AAPL
---

Apple reported quarterly revenue ahead of consensus.
`

func TestParseArticle(t *testing.T) {
	article, err := ParseArticle(sampleArticle)
	require.NoError(t, err)

	assert.Equal(t, "Apple Earnings Beat Expectations", article.Title)
	assert.Equal(t, "https://example.com/apple-earnings", article.URL)
	assert.Equal(t, []string{"AAPL"}, article.Tickers)
	assert.Equal(t, "Apple reported quarterly revenue ahead of consensus.", article.Body)
	assert.Equal(t, 2024, article.Published.Year())
}

func TestParseArticleErrors(t *testing.T) {
	_, err := ParseArticle("no frontmatter here")
	assert.Error(t, err)

	_, err = ParseArticle("---\ntitle: x\n")
	assert.Error(t, err)

	// Frontmatter without a url is rejected: update keys off it.
	_, err = ParseArticle("---\ntitle: x\n---\nbody")
	assert.Error(t, err)
}

func TestArticleRenderRoundTrip(t *testing.T) {
	original, err := ParseArticle(sampleArticle)
	require.NoError(t, err)

	data, err := original.Render()
	require.NoError(t, err)

	parsed, err := ParseArticle(string(data))
	require.NoError(t, err)
	assert.Equal(t, original.Frontmatter, parsed.Frontmatter)
	assert.Equal(t, original.Body, parsed.Body)
}

func TestSlug(t *testing.T) {
	a := &Article{Frontmatter: Frontmatter{Title: "Fed Holds Rates: What It Means (2024)"}}
	assert.Equal(t, "fed-holds-rates-what-it-means-2024", a.Slug())

	empty := &Article{Frontmatter: Frontmatter{URL: "https://example.com/x"}}
	assert.NotEmpty(t, empty.Slug())
}

func TestStoreListSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.md"), []byte(sampleArticle), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.md"), []byte("not an article"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	articles, err := NewStore(dir).List()
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "https://example.com/apple-earnings", articles[0].URL)
}

func TestStoreListMissingDir(t *testing.T) {
	articles, err := NewStore(filepath.Join(t.TempDir(), "missing")).List()
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestStoreSaveAndGet(t *testing.T) {
	store := NewStore(t.TempDir())

	article := &Article{
		Frontmatter: Frontmatter{
			Title:     "Chip Demand Outlook",
			URL:       "https://example.com/chips",
			Source:    "example.com",
			Published: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		Body: "Semiconductor demand remains strong.",
	}
	require.NoError(t, store.Save(article))
	assert.FileExists(t, article.Path)

	got, err := store.Get("https://example.com/chips")
	require.NoError(t, err)
	assert.Equal(t, "Chip Demand Outlook", got.Title)

	_, err = store.Get("https://example.com/unknown")
	assert.Error(t, err)
}

func TestStoreListNewestFirst(t *testing.T) {
	store := NewStore(t.TempDir())

	older := &Article{Frontmatter: Frontmatter{
		Title: "Older", URL: "https://example.com/older",
		Published: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
	newer := &Article{Frontmatter: Frontmatter{
		Title: "Newer", URL: "https://example.com/newer",
		Published: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}}
	require.NoError(t, store.Save(older))
	require.NoError(t, store.Save(newer))

	articles, err := store.List()
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Newer", articles[0].Title)
}
