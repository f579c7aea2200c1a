// Package watchlist manages the JSON watchlist store and the score-based
// reevaluation of each entry's classification and recommended action.
package watchlist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Entry is one watched ticker. The JSON shape is shared with the other
// assistant scripts that read the watchlist file.
type Entry struct {
	Ticker            string          `json:"ticker"`
	BuyScore          float64         `json:"buy_score"`
	Classification    string          `json:"classification"`
	RecommendedAction string          `json:"recommended_action"`
	Price             decimal.Decimal `json:"price"`
	Notes             string          `json:"notes"`
}

// Store reads and writes the watchlist JSON file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns all entries. A missing file is an empty watchlist.
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read watchlist: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse watchlist: %w", err)
	}
	return entries, nil
}

// Save writes all entries atomically, sorted by ticker.
func (s *Store) Save(entries []Entry) error {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Ticker < entries[j].Ticker
	})

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode watchlist: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create watchlist dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(s.path), "watchlist-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp watchlist: %w", err)
	}
	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		_ = os.Remove(tmpFile.Name())
		return fmt.Errorf("write watchlist: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpFile.Name())
		return fmt.Errorf("close temp watchlist: %w", err)
	}
	return os.Rename(tmpFile.Name(), s.path)
}

// Get returns the entry for ticker, or nil when not watched.
func (s *Store) Get(ticker string) (*Entry, error) {
	entries, err := s.Load()
	if err != nil {
		return nil, err
	}

	ticker = normalizeTicker(ticker)
	for i := range entries {
		if normalizeTicker(entries[i].Ticker) == ticker {
			return &entries[i], nil
		}
	}
	return nil, nil
}

// Add inserts or replaces the entry for its ticker.
func (s *Store) Add(entry Entry) error {
	entry.Ticker = normalizeTicker(entry.Ticker)
	if entry.Ticker == "" {
		return fmt.Errorf("ticker is required")
	}

	entries, err := s.Load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range entries {
		if normalizeTicker(entries[i].Ticker) == entry.Ticker {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	return s.Save(entries)
}

// Remove deletes the entry for ticker. Removing an unwatched ticker is
// an error so the caller can report it.
func (s *Store) Remove(ticker string) error {
	entries, err := s.Load()
	if err != nil {
		return err
	}

	ticker = normalizeTicker(ticker)
	kept := entries[:0]
	found := false
	for _, e := range entries {
		if normalizeTicker(e.Ticker) == ticker {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return fmt.Errorf("ticker %s is not on the watchlist", ticker)
	}

	return s.Save(kept)
}

func normalizeTicker(ticker string) string {
	return strings.TrimSpace(strings.ToUpper(ticker))
}
