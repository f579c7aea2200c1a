package timeframe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidTokens(t *testing.T) {
	tests := []struct {
		token  string
		model  Model
		agents int
		days   int
	}{
		{"3d", ModelScalping, 6, 3},
		{"7d", ModelScalping, 6, 7},   // boundary: exactly 7 days
		{"30d", ModelScalping, 6, 30}, // unit short-circuit: d always scalping
		{"2w", ModelSwing, 10, 14},
		{"4w", ModelSwing, 10, 28},
		{"52w", ModelSwing, 10, 364}, // unit short-circuit: w always swing
		{"1m", ModelPosition, 7, 30},
		{"6m", ModelPosition, 7, 180}, // boundary: exactly 180 days
		{"12m", ModelPosition, 7, 360},
		{"1y", ModelInvestment, 5, 365},
		{"10y", ModelInvestment, 5, 3650},
		{"0d", ModelScalping, 6, 0},
		{"1.9d", ModelScalping, 6, 1}, // truncation, not rounding
		{" 2W ", ModelSwing, 10, 14},  // trim + lowercase before matching
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			c, err := Parse(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.model, c.Model)
			assert.Equal(t, tt.agents, c.Agents)
			assert.Equal(t, tt.days, c.Days)
			assert.Equal(t, tt.token, c.Input)
		})
	}
}

// Rule one is checked before the day-count fallback of later rules, so a
// sub-week week-denominated token still lands in scalping.
func TestParseUnitShortCircuitPrecedence(t *testing.T) {
	c, err := Parse("0.5w")
	require.NoError(t, err)

	assert.Equal(t, ModelScalping, c.Model)
	assert.Equal(t, 6, c.Agents)
	assert.Equal(t, 3, c.Days)
	assert.Equal(t, "w", c.Unit)
}

func TestParseDeterministic(t *testing.T) {
	first, err := Parse("6m")
	require.NoError(t, err)
	second, err := Parse("6m")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseInvalidTokens(t *testing.T) {
	for _, token := range []string{"abc", "5", "3x", "", "d", "1.2.3d", "-1d", "3 d"} {
		t.Run("invalid_"+token, func(t *testing.T) {
			c, err := Parse(token)
			require.Nil(t, c)
			require.Error(t, err)

			var ferr *InvalidFormatError
			require.True(t, errors.As(err, &ferr))
			assert.Equal(t, token, ferr.Input)
			assert.Contains(t, err.Error(), token)
		})
	}
}

func TestParseDayConversion(t *testing.T) {
	tests := []struct {
		token string
		days  int
	}{
		{"1d", 1},
		{"1w", 7},
		{"1m", 30},
		{"1y", 365},
		{"2.5m", 75},
		{"0.9y", 328}, // floor(0.9 * 365) = floor(328.5)
	}

	for _, tt := range tests {
		c, err := Parse(tt.token)
		require.NoError(t, err)
		assert.Equal(t, tt.days, c.Days, "token %s", tt.token)
	}
}
