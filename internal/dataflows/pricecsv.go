package dataflows

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

var priceCSVHeader = []string{"date", "open", "high", "low", "close", "volume"}

// PriceStore persists per-ticker daily price history as CSV files,
// one file per symbol under the prices directory.
type PriceStore struct {
	dir string
}

func NewPriceStore(dir string) *PriceStore {
	return &PriceStore{dir: dir}
}

func (ps *PriceStore) pathFor(symbol string) string {
	return filepath.Join(ps.dir, NormalizeSymbol(symbol)+".csv")
}

// Write replaces the history file for symbol with the given bars.
func (ps *PriceStore) Write(symbol string, bars []*Bar) error {
	if err := os.MkdirAll(ps.dir, 0o755); err != nil {
		return fmt.Errorf("create prices dir: %w", err)
	}

	file, err := os.Create(ps.pathFor(symbol))
	if err != nil {
		return fmt.Errorf("create price csv: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(priceCSVHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, bar := range bars {
		row := []string{
			bar.Date.Format("2006-01-02"),
			bar.Open.String(),
			bar.High.String(),
			bar.Low.String(),
			bar.Close.String(),
			strconv.FormatInt(bar.Volume, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return nil
}

// Read loads the stored history for symbol. Rows that do not parse are
// skipped rather than failing the whole file.
func (ps *PriceStore) Read(symbol string) ([]*Bar, error) {
	file, err := os.Open(ps.pathFor(symbol))
	if err != nil {
		return nil, fmt.Errorf("open price csv for %s: %w", NormalizeSymbol(symbol), err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read price csv: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	symbol = NormalizeSymbol(symbol)
	bars := make([]*Bar, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 6 {
			continue
		}

		date, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			continue
		}
		open, err1 := decimal.NewFromString(record[1])
		high, err2 := decimal.NewFromString(record[2])
		low, err3 := decimal.NewFromString(record[3])
		closePx, err4 := decimal.NewFromString(record[4])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		volume, _ := strconv.ParseInt(record[5], 10, 64)

		bars = append(bars, &Bar{
			Symbol: symbol,
			Date:   date,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePx,
			Volume: volume,
		})
	}

	return bars, nil
}
