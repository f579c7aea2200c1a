package watchlist

import (
	"log"

	"github.com/4rankng/tradeassist/internal/dataflows"
)

// Quoter provides current prices during reevaluation.
type Quoter interface {
	GetQuote(symbol string) (*dataflows.Quote, error)
}

// Score bands, evaluated top to bottom. First band whose floor the score
// reaches wins.
type band struct {
	minScore       float64
	classification string
	action         string
}

var bands = []band{
	{minScore: 8.0, classification: "strong_buy", action: "buy now"},
	{minScore: 6.5, classification: "buy", action: "buy on dip"},
	{minScore: 4.0, classification: "hold", action: "hold / monitor"},
	{minScore: 0, classification: "avoid", action: "avoid / review thesis"},
}

// Classify maps a buy score to its classification and recommended action.
func Classify(buyScore float64) (classification, action string) {
	for _, b := range bands {
		if buyScore >= b.minScore {
			return b.classification, b.action
		}
	}
	last := bands[len(bands)-1]
	return last.classification, last.action
}

// Reevaluate recomputes classification and recommended action for every
// entry from its buy score, and refreshes prices when a quoter is given.
// A failed quote leaves the stored price untouched; reevaluation of the
// rest proceeds.
func (s *Store) Reevaluate(quoter Quoter) ([]Entry, error) {
	entries, err := s.Load()
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Classification, entries[i].RecommendedAction = Classify(entries[i].BuyScore)

		if quoter == nil {
			continue
		}
		q, err := quoter.GetQuote(entries[i].Ticker)
		if err != nil {
			log.Printf("watchlist: price refresh failed for %s: %v", entries[i].Ticker, err)
			continue
		}
		entries[i].Price = q.Price
	}

	if err := s.Save(entries); err != nil {
		return nil, err
	}
	return entries, nil
}
