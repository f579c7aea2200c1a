package tradelog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLog(t *testing.T) *Log {
	t.Helper()
	return NewLog(filepath.Join(t.TempDir(), "trade_log.csv"))
}

func record(ticker string, side Side, qty, price float64, ts time.Time) Record {
	return Record{
		Timestamp: ts,
		Ticker:    ticker,
		Side:      side,
		Quantity:  decimal.NewFromFloat(qty),
		Price:     decimal.NewFromFloat(price),
	}
}

func TestAppendAndList(t *testing.T) {
	log := testLog(t)
	now := time.Now().Truncate(time.Second)

	saved, err := log.Append(record("aapl", SideBuy, 10, 185.5, now))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "AAPL", saved.Ticker)

	_, err = log.Append(record("MSFT", SideBuy, 5, 410, now.Add(time.Minute)))
	require.NoError(t, err)

	records, err := log.List(Filter{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "AAPL", records[0].Ticker)
	assert.True(t, records[0].Quantity.Equal(decimal.NewFromInt(10)))
}

func TestListFilters(t *testing.T) {
	log := testLog(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := log.Append(record("AAPL", SideBuy, 10, 185, base))
	require.NoError(t, err)
	_, err = log.Append(record("MSFT", SideBuy, 5, 410, base.Add(24*time.Hour)))
	require.NoError(t, err)
	_, err = log.Append(record("AAPL", SideSell, 4, 190, base.Add(48*time.Hour)))
	require.NoError(t, err)

	byTicker, err := log.List(Filter{Ticker: "aapl"})
	require.NoError(t, err)
	assert.Len(t, byTicker, 2)

	since, err := log.List(Filter{Since: base.Add(12 * time.Hour)})
	require.NoError(t, err)
	assert.Len(t, since, 2)

	both, err := log.List(Filter{Ticker: "AAPL", Since: base.Add(12 * time.Hour)})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, SideSell, both[0].Side)
}

func TestPositions(t *testing.T) {
	log := testLog(t)
	now := time.Now()

	_, err := log.Append(record("AAPL", SideBuy, 10, 100, now))
	require.NoError(t, err)
	_, err = log.Append(record("AAPL", SideSell, 4, 120, now))
	require.NoError(t, err)
	_, err = log.Append(record("MSFT", SideBuy, 2, 400, now))
	require.NoError(t, err)

	positions, err := log.Positions(Filter{})
	require.NoError(t, err)
	require.Len(t, positions, 2)

	aapl := positions["AAPL"]
	assert.True(t, aapl.NetQty.Equal(decimal.NewFromInt(6)))
	assert.True(t, aapl.GrossCost.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, 2, aapl.Trades)
}

func TestAppendValidation(t *testing.T) {
	log := testLog(t)
	now := time.Now()

	_, err := log.Append(record("", SideBuy, 1, 1, now))
	assert.Error(t, err)

	_, err = log.Append(record("AAPL", Side("short"), 1, 1, now))
	assert.Error(t, err)

	_, err = log.Append(record("AAPL", SideBuy, 0, 1, now))
	assert.Error(t, err)
}

func TestListMissingFile(t *testing.T) {
	records, err := testLog(t).List(Filter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}
