// Package tradelog appends and filters the CSV trade log the assistant
// scripts share.
package tradelog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var csvHeader = []string{"id", "timestamp", "ticker", "side", "quantity", "price", "notes"}

// Side is the direction of a trade.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Record is one logged trade.
type Record struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Ticker    string          `json:"ticker"`
	Side      Side            `json:"side"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Notes     string          `json:"notes"`
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Ticker string
	Since  time.Time
}

// Log is the CSV-backed trade log.
type Log struct {
	path string
}

func NewLog(path string) *Log {
	return &Log{path: path}
}

func (l *Log) Path() string {
	return l.path
}

// Append writes one record, creating the file with its header first when
// needed. The record ID and timestamp are filled in when empty.
func (l *Log) Append(record Record) (*Record, error) {
	if err := validate(&record); err != nil {
		return nil, err
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return nil, fmt.Errorf("create trade log dir: %w", err)
	}

	_, statErr := os.Stat(l.path)
	isNew := os.IsNotExist(statErr)

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open trade log: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if isNew {
		if err := writer.Write(csvHeader); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	row := []string{
		record.ID,
		record.Timestamp.Format(time.RFC3339),
		record.Ticker,
		string(record.Side),
		record.Quantity.String(),
		record.Price.String(),
		record.Notes,
	}
	if err := writer.Write(row); err != nil {
		return nil, fmt.Errorf("write record: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush trade log: %w", err)
	}

	return &record, nil
}

// List returns records matching the filter, in file order. A missing log
// file is an empty log.
func (l *Log) List(filter Filter) ([]Record, error) {
	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open trade log: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read trade log: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	ticker := strings.TrimSpace(strings.ToUpper(filter.Ticker))

	var records []Record
	for _, row := range rows[1:] {
		if len(row) < 7 {
			continue
		}
		ts, err := time.Parse(time.RFC3339, row[1])
		if err != nil {
			continue
		}
		quantity, err := decimal.NewFromString(row[4])
		if err != nil {
			continue
		}
		price, err := decimal.NewFromString(row[5])
		if err != nil {
			continue
		}

		record := Record{
			ID:        row[0],
			Timestamp: ts,
			Ticker:    row[2],
			Side:      Side(row[3]),
			Quantity:  quantity,
			Price:     price,
			Notes:     row[6],
		}

		if ticker != "" && strings.ToUpper(record.Ticker) != ticker {
			continue
		}
		if !filter.Since.IsZero() && record.Timestamp.Before(filter.Since) {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// Position summarizes net exposure for one ticker.
type Position struct {
	Ticker    string          `json:"ticker"`
	NetQty    decimal.Decimal `json:"net_quantity"`
	GrossCost decimal.Decimal `json:"gross_cost"`
	Trades    int             `json:"trades"`
}

// Positions aggregates the filtered records per ticker. Sells subtract
// from net quantity; gross cost sums buy-side notional only.
func (l *Log) Positions(filter Filter) (map[string]*Position, error) {
	records, err := l.List(filter)
	if err != nil {
		return nil, err
	}

	positions := make(map[string]*Position)
	for _, r := range records {
		key := strings.ToUpper(r.Ticker)
		pos, ok := positions[key]
		if !ok {
			pos = &Position{Ticker: key}
			positions[key] = pos
		}

		pos.Trades++
		if r.Side == SideSell {
			pos.NetQty = pos.NetQty.Sub(r.Quantity)
		} else {
			pos.NetQty = pos.NetQty.Add(r.Quantity)
			pos.GrossCost = pos.GrossCost.Add(r.Quantity.Mul(r.Price))
		}
	}

	return positions, nil
}

func validate(record *Record) error {
	record.Ticker = strings.TrimSpace(strings.ToUpper(record.Ticker))
	if record.Ticker == "" {
		return fmt.Errorf("ticker is required")
	}
	switch record.Side {
	case SideBuy, SideSell:
	default:
		return fmt.Errorf("side must be %q or %q, got %q", SideBuy, SideSell, record.Side)
	}
	if record.Quantity.Sign() <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if record.Price.Sign() < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	return nil
}
