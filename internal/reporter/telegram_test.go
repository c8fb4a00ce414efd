package reporter

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-linkedin-scraper/internal/scraper"
)

func TestFormatSummary(t *testing.T) {
	run := Run{ID: "run-1", Keyword: "Go <Backend>", Output: "/tmp/jobs.csv"}
	stats := scraper.RunStats{Pages: 3, Seen: 75, Written: 72, Skipped: 3}

	text := FormatSummary(run, stats)
	assert.Contains(t, text, "Go &lt;Backend&gt;")
	assert.Contains(t, text, "Pages: 3")
	assert.Contains(t, text, "Written: 72 / 75")
	assert.Contains(t, text, "Skipped: 3")
	assert.Contains(t, text, "<code>run-1</code>")
}

func TestFormatError(t *testing.T) {
	text := FormatError(Run{ID: "run-2", Keyword: "Go"}, errors.New("login failed: url~/feed"))
	assert.Contains(t, text, "scrape failed")
	assert.Contains(t, text, "login failed: url~/feed")
}

func TestTelegramReporter_SendSummary(t *testing.T) {
	var sentText, sentMode string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"scraper","username":"scraper_bot"}}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			assert.NoError(t, r.ParseForm())
			sentText = r.Form.Get("text")
			sentMode = r.Form.Get("parse_mode")
			w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"}}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	rep, err := NewTelegramReporterWithEndpoint("token", 42, server.URL+"/bot%s/%s")
	require.NoError(t, err)

	err = rep.SendSummary(Run{ID: "abc", Keyword: "Go"}, scraper.RunStats{Pages: 1, Seen: 2, Written: 2})
	require.NoError(t, err)
	assert.Equal(t, "HTML", sentMode)
	assert.Contains(t, sentText, "Written: 2 / 2")
}
