package dataflows

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"

	"github.com/4rankng/tradeassist/config"
)

// YahooClient fetches quotes and historical bars from Yahoo Finance.
type YahooClient struct {
	cache *CacheManager
	retry *RetryConfig
}

func NewYahooClient(cfg *config.Config) *YahooClient {
	cacheDir := filepath.Join(cfg.DataCacheDir, "yahoo_finance")
	return &YahooClient{
		cache: NewCacheManager(cacheDir, 24*time.Hour, cfg.CacheEnabled),
		retry: DefaultRetryConfig(),
	}
}

// GetQuote returns the current quote for a symbol.
func (yc *YahooClient) GetQuote(symbol string) (*Quote, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	symbol = NormalizeSymbol(symbol)

	var cached Quote
	if yc.cache.Get("yahoo", "quote", symbol, &cached) {
		return &cached, nil
	}

	var result *Quote
	err := WithRetry(yc.retry, func() error {
		q, err := quote.Get(symbol)
		if err != nil {
			return fmt.Errorf("get quote for %s: %w", symbol, err)
		}

		result = &Quote{
			Symbol:    symbol,
			Name:      q.ShortName,
			Price:     decimal.NewFromFloat(q.RegularMarketPrice),
			Open:      decimal.NewFromFloat(q.RegularMarketOpen),
			High:      decimal.NewFromFloat(q.RegularMarketDayHigh),
			Low:       decimal.NewFromFloat(q.RegularMarketDayLow),
			Volume:    int64(q.RegularMarketVolume),
			Exchange:  q.FullExchangeName,
			Currency:  q.CurrencyID,
			FetchedAt: time.Now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	yc.cache.Set("yahoo", "quote", symbol, result)
	return result, nil
}

// GetHistory returns daily bars for symbol between start and end.
func (yc *YahooClient) GetHistory(symbol string, start, end time.Time) ([]*Bar, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	symbol = NormalizeSymbol(symbol)

	cacheKey := map[string]interface{}{
		"symbol": symbol,
		"start":  start.Format("2006-01-02"),
		"end":    end.Format("2006-01-02"),
	}

	var cached []*Bar
	if yc.cache.Get("yahoo", "history", cacheKey, &cached) {
		return cached, nil
	}

	var result []*Bar
	err := WithRetry(yc.retry, func() error {
		params := &chart.Params{
			Symbol:   symbol,
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Interval: datetime.OneDay,
		}

		iter := chart.Get(params)

		result = make([]*Bar, 0)
		for iter.Next() {
			b := iter.Bar()
			result = append(result, &Bar{
				Symbol:    symbol,
				Date:      time.Unix(int64(b.Timestamp), 0),
				Open:      b.Open,
				High:      b.High,
				Low:       b.Low,
				Close:     b.Close,
				AdjClose:  b.AdjClose,
				Volume:    int64(b.Volume),
				FetchedAt: time.Now(),
			})
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("get history for %s: %w", symbol, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	yc.cache.Set("yahoo", "history", cacheKey, result)
	return result, nil
}

// GetHistoryWindow returns daily bars for the trailing window of days.
func (yc *YahooClient) GetHistoryWindow(symbol string, days int) ([]*Bar, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)
	return yc.GetHistory(symbol, start, end)
}
