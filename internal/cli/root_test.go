package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	root := NewRootCmd()
	require.NotNil(t, root)
	assert.Equal(t, "tradeassist", root.Name())

	want := []string{
		"timeframe", "price", "trade", "watchlist",
		"news", "skills", "bridge", "search", "history", "version",
	}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing subcommand %s", name)
	}
}

func TestTradeSubcommands(t *testing.T) {
	root := NewRootCmd()
	trade, _, err := root.Find([]string{"trade", "log"})
	require.NoError(t, err)
	assert.Equal(t, "log", trade.Name())

	wl, _, err := root.Find([]string{"watchlist", "reeval"})
	require.NoError(t, err)
	assert.Equal(t, "reeval", wl.Name())
}
