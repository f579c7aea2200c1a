package websearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultPage = `
<html><body>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fapple&amp;rut=abc">Apple shares rally</a>
  <a class="result__snippet" href="#">Apple stock climbed after earnings.</a>
</div>
<div class="result">
  <a class="result__a" href="https://news.example.org/markets">Markets open higher</a>
  <a class="result__snippet" href="#">Broad rally across sectors.</a>
</div>
<div class="result">
  <a class="result__a" href="https://example.net/no-snippet">No snippet result</a>
</div>
</body></html>`

func TestParseResults(t *testing.T) {
	results, err := parseResults(resultPage, 10)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Redirect links are unwrapped to the target URL.
	assert.Equal(t, "Apple shares rally", results[0].Title)
	assert.Equal(t, "https://example.com/apple", results[0].URL)
	assert.Equal(t, "example.com", results[0].Source)
	assert.Equal(t, "Apple stock climbed after earnings.", results[0].Snippet)

	assert.Equal(t, "news.example.org", results[1].Source)
	assert.Empty(t, results[2].Snippet)
}

func TestParseResultsMaxCap(t *testing.T) {
	results, err := parseResults(resultPage, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestParseResultsEmptyPage(t *testing.T) {
	results, err := parseResults("<html><body></body></html>", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchRejectsShortQuery(t *testing.T) {
	_, err := NewProvider().Search(" a ")
	assert.Error(t, err)
}

func TestUnwrapRedirect(t *testing.T) {
	assert.Equal(t, "https://example.com/x",
		unwrapRedirect("//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fx&rut=abc"))
	assert.Equal(t, "https://plain.example.com", unwrapRedirect("https://plain.example.com"))
}
