package scraper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-linkedin-scraper/internal/browser/static"
	"go-linkedin-scraper/internal/scraper"
)

const pane = "https://example.test/pane"

func serve(t *testing.T, body string) *static.Driver {
	t.Helper()
	d := static.New(map[string]string{pane: body})
	require.NoError(t, d.Navigate(pane))
	return d
}

func TestChain_FirstAcceptedWins(t *testing.T) {
	d := serve(t, `<html><body>
<h1 class="a">   </h1>
<h2 class="b">  Fallback Title  </h2>
<h3 class="c">Third</h3>
</body></html>`)

	chain := scraper.Chain{
		{Selector: "h1.missing", Wait: time.Second},
		{Selector: "h1.a"},
		{Selector: "h2.b"},
		{Selector: "h3.c"},
	}
	got, err := chain.Resolve(d)
	require.NoError(t, err)
	assert.Equal(t, "Fallback Title", got)
}

func TestChain_Exhausted(t *testing.T) {
	d := serve(t, `<html><body><p class="short">too short</p></body></html>`)

	chain := scraper.Chain{
		{Selector: "p.short", Accept: scraper.LongerThan(20)},
		{Selector: "div.gone"},
	}
	_, err := chain.Resolve(d)
	assert.ErrorIs(t, err, scraper.ErrExhausted)
	assert.ErrorContains(t, err, "p.short: text rejected")

	assert.Equal(t, scraper.Degraded(), chain.Field(d))
	assert.Equal(t, scraper.Unknown, chain.Field(d).Value)
}

func TestChain_Field(t *testing.T) {
	d := serve(t, `<html><body><span class="co">Acme</span></body></html>`)
	assert.Equal(t, scraper.Found("Acme"), scraper.Chain{{Selector: "span.co"}}.Field(d))
}

func TestLongerThan(t *testing.T) {
	accept := scraper.LongerThan(3)
	assert.False(t, accept("abc"))
	assert.True(t, accept("abcd"))
	// counts characters, not bytes
	assert.False(t, accept("äöü"))
}
