package watchlist

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4rankng/tradeassist/internal/dataflows"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "watchlist.json"))
}

func TestStoreAddGetRemove(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Add(Entry{
		Ticker:   "aapl",
		BuyScore: 7.2,
		Notes:    "earnings next week",
	}))
	require.NoError(t, store.Add(Entry{Ticker: "MSFT", BuyScore: 5.0}))

	entry, err := store.Get("AAPL")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "AAPL", entry.Ticker)
	assert.Equal(t, 7.2, entry.BuyScore)

	// Re-adding the same ticker replaces, not duplicates.
	require.NoError(t, store.Add(Entry{Ticker: "AAPL", BuyScore: 8.5}))
	entries, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, store.Remove("aapl"))
	entry, err = store.Get("AAPL")
	require.NoError(t, err)
	assert.Nil(t, entry)

	assert.Error(t, store.Remove("AAPL"))
}

func TestStoreMissingFileIsEmpty(t *testing.T) {
	entries, err := testStore(t).Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		score          float64
		classification string
		action         string
	}{
		{9.1, "strong_buy", "buy now"},
		{8.0, "strong_buy", "buy now"},
		{7.0, "buy", "buy on dip"},
		{6.5, "buy", "buy on dip"},
		{5.0, "hold", "hold / monitor"},
		{4.0, "hold", "hold / monitor"},
		{2.0, "avoid", "avoid / review thesis"},
		{0, "avoid", "avoid / review thesis"},
	}

	for _, tt := range tests {
		c, a := Classify(tt.score)
		assert.Equal(t, tt.classification, c, "score %.1f", tt.score)
		assert.Equal(t, tt.action, a, "score %.1f", tt.score)
	}
}

type stubQuoter struct {
	prices map[string]float64
}

func (s *stubQuoter) GetQuote(symbol string) (*dataflows.Quote, error) {
	price, ok := s.prices[symbol]
	if !ok {
		return nil, fmt.Errorf("no quote for %s", symbol)
	}
	return &dataflows.Quote{Symbol: symbol, Price: decimal.NewFromFloat(price)}, nil
}

func TestReevaluate(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Add(Entry{Ticker: "AAPL", BuyScore: 8.4, Price: decimal.NewFromInt(100)}))
	require.NoError(t, store.Add(Entry{Ticker: "XXXX", BuyScore: 3.1, Price: decimal.NewFromInt(50)}))

	quoter := &stubQuoter{prices: map[string]float64{"AAPL": 190.25}}
	entries, err := store.Reevaluate(quoter)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	aapl, err := store.Get("AAPL")
	require.NoError(t, err)
	assert.Equal(t, "strong_buy", aapl.Classification)
	assert.Equal(t, "buy now", aapl.RecommendedAction)
	assert.True(t, aapl.Price.Equal(decimal.NewFromFloat(190.25)))

	// Quote failure keeps the stored price but still reclassifies.
	xxxx, err := store.Get("XXXX")
	require.NoError(t, err)
	assert.Equal(t, "avoid", xxxx.Classification)
	assert.True(t, xxxx.Price.Equal(decimal.NewFromInt(50)))
}

func TestReevaluateWithoutQuoter(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Add(Entry{Ticker: "AAPL", BuyScore: 6.9}))

	entries, err := store.Reevaluate(nil)
	require.NoError(t, err)
	assert.Equal(t, "buy", entries[0].Classification)
}
