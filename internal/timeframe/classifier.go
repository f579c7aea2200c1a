// Package timeframe maps short timeframe tokens like "3d" or "2w" to a
// trading model, a canonical day count, and the persona count the agent
// workflow spawns for that model.
package timeframe

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Model identifies a trading-style category.
type Model string

const (
	ModelScalping   Model = "scalping"
	ModelSwing      Model = "swing"
	ModelPosition   Model = "position"
	ModelInvestment Model = "investment"
)

// Unit day multipliers. Approximate on purpose, not calendar-aware.
var unitDays = map[string]int{
	"d": 1,
	"w": 7,
	"m": 30,
	"y": 365,
}

var tokenPattern = regexp.MustCompile(`^(\d+(\.\d+)?)([dwmy])$`)

// Classification is the immutable result of parsing a timeframe token.
type Classification struct {
	Model     Model   `json:"model"`
	ModelName string  `json:"model_name"`
	Agents    int     `json:"agents"`
	Days      int     `json:"days"`
	Input     string  `json:"input"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
}

// InvalidFormatError reports a token that does not match <number><unit>
// with unit in d/w/m/y. The offending input is kept verbatim.
type InvalidFormatError struct {
	Input string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid timeframe format: %q (expected <number><unit>, unit one of d/w/m/y)", e.Input)
}

// rule is one entry of the ordered decision list. The unit check
// short-circuits before the day-count fallback, so a rule can claim a
// token whose day count alone would fall through to a later rule.
type rule struct {
	unit      string
	maxDays   int
	model     Model
	modelName string
	agents    int
}

// Evaluated top to bottom. The order is load-bearing: "0.5w" (3 days)
// classifies as scalping because rule one sees days <= 7 first, even
// though the token is week-denominated. Downstream consumers key off the
// model tag, so the ordering must not be rearranged into a pure
// day-count lookup.
var rules = []rule{
	{unit: "d", maxDays: 7, model: ModelScalping, modelName: "Scalping/Day Trading", agents: 6},
	{unit: "w", maxDays: 30, model: ModelSwing, modelName: "Swing Trading", agents: 10},
	{unit: "m", maxDays: 180, model: ModelPosition, modelName: "Position Trading", agents: 7},
	{unit: "", maxDays: -1, model: ModelInvestment, modelName: "Investment", agents: 5},
}

// Parse classifies a timeframe token. It is a pure function: same token,
// same result, no I/O. A malformed token yields *InvalidFormatError.
func Parse(token string) (*Classification, error) {
	normalized := strings.ToLower(strings.TrimSpace(token))

	m := tokenPattern.FindStringSubmatch(normalized)
	if m == nil {
		return nil, &InvalidFormatError{Input: token}
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, &InvalidFormatError{Input: token}
	}
	unit := m[3]

	// Truncation, not rounding: "1.9d" is 1 day.
	days := int(value * float64(unitDays[unit]))

	for _, r := range rules {
		if r.unit != "" && unit == r.unit {
			return result(r, token, value, unit, days), nil
		}
		if r.maxDays >= 0 && days <= r.maxDays {
			return result(r, token, value, unit, days), nil
		}
		if r.unit == "" {
			return result(r, token, value, unit, days), nil
		}
	}

	// Unreachable: the last rule always matches.
	return nil, &InvalidFormatError{Input: token}
}

func result(r rule, input string, value float64, unit string, days int) *Classification {
	return &Classification{
		Model:     r.model,
		ModelName: r.modelName,
		Agents:    r.agents,
		Days:      days,
		Input:     input,
		Value:     value,
		Unit:      unit,
	}
}
