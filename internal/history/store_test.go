package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndRecent(t *testing.T) {
	store := testStore(t)
	base := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	_, err := store.Append(Invocation{
		CreatedAt: base,
		Ticker:    "AAPL",
		Token:     "2w",
		Model:     "swing",
		Days:      14,
		Agents:    10,
	})
	require.NoError(t, err)

	saved, err := store.Append(Invocation{
		CreatedAt: base.Add(time.Hour),
		Token:     "1y",
		Model:     "investment",
		Days:      365,
		Agents:    5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	recent, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// Most recent first.
	assert.Equal(t, "investment", recent[0].Model)
	assert.Equal(t, "AAPL", recent[1].Ticker)
}

func TestRecentLimit(t *testing.T) {
	store := testStore(t)
	base := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := store.Append(Invocation{
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Token:     "3d",
			Model:     "scalping",
		})
		require.NoError(t, err)
	}

	recent, err := store.Recent(3)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}

func TestRecentEmpty(t *testing.T) {
	recent, err := testStore(t).Recent(10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
