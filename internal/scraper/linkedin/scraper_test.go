package linkedin

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-linkedin-scraper/internal/browser"
	"go-linkedin-scraper/internal/browser/static"
	"go-linkedin-scraper/internal/logger"
	"go-linkedin-scraper/internal/scraper"
	"go-linkedin-scraper/internal/scraper/linkedin/linkedintest"
	"go-linkedin-scraper/internal/sink"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// mixedSite has three pages with one unclickable card and one card whose
// description never renders.
func mixedSite() linkedintest.Site {
	broken := completeJob("102", "Broken Card")
	broken.FailClick = true
	empty := completeJob("201", "Empty Description")
	empty.Descriptions = nil

	return linkedintest.Site{
		Keyword: testConfig().Keyword,
		Pages: [][]linkedintest.Job{
			{completeJob("101", "Backend Engineer"), broken, completeJob("103", "Platform Engineer")},
			{empty, completeJob("202", "SRE")},
			{completeJob("301", "Data Engineer")},
		},
	}
}

func TestLinkedInScraper_Run(t *testing.T) {
	site := mixedSite()
	d := static.New(site.Documents())
	out := &memorySink{}
	log, logs := observedLogger()

	s := NewLinkedInScraper(testConfig(), d, out, log, WithSleep(noSleep), WithClock(clock))
	stats, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, scraper.RunStats{Pages: 3, Seen: 6, Written: 4, Skipped: 2}, stats)

	var titles []string
	for _, rec := range out.records {
		titles = append(titles, rec.Title)
		assert.Equal(t, fixedNow, rec.Timestamp)
		for i, v := range rec.Row() {
			assert.NotEmpty(t, v, "column %s of %s", scraper.Columns[i], rec.Title)
		}
	}
	assert.Equal(t, []string{"Backend Engineer", "Platform Engineer", "SRE", "Data Engineer"}, titles)
	assert.Equal(t, linkedintest.BaseURL+"/jobs/view/202/", out.records[2].JobLink)

	assert.Equal(t, 2, logs.FilterMessageSnippet("Skipped job").Len())
	assert.Equal(t, 1, logs.FilterMessage("🏁 Pagination ended or button not found.").Len())
	assert.True(t, out.closed)
	assert.True(t, d.Closed())
}

func TestLinkedInScraper_SinkFailureSkipsEntry(t *testing.T) {
	site := linkedintest.Site{
		Keyword: testConfig().Keyword,
		Pages:   [][]linkedintest.Job{{completeJob("1", "First"), completeJob("2", "Second"), completeJob("3", "Third")}},
	}
	d := static.New(site.Documents())
	out := &memorySink{failOn: "Second"}

	stats, err := NewLinkedInScraper(testConfig(), d, out, logger.Nop(), WithSleep(noSleep)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, scraper.RunStats{Pages: 1, Seen: 3, Written: 2, Skipped: 1}, stats)
	require.Len(t, out.records, 2)
	assert.Equal(t, "First", out.records[0].Title)
	assert.Equal(t, "Third", out.records[1].Title)
}

// unreadableList serves the static site but fails listing cards on failURL.
type unreadableList struct {
	*static.Driver
	failURL string
}

func (d *unreadableList) WaitFor(selector string, timeout time.Duration) (browser.Element, error) {
	el, err := d.Driver.WaitFor(selector, timeout)
	if err != nil || selector != resultsList || d.URL() != d.failURL {
		return el, err
	}
	return detachedList{el}, nil
}

type detachedList struct{ browser.Element }

func (detachedList) Find(string) ([]browser.Element, error) {
	return nil, errors.New("list detached")
}

func TestLinkedInScraper_UnreadableLaterPageStops(t *testing.T) {
	site := mixedSite()
	d := &unreadableList{Driver: static.New(site.Documents()), failURL: site.SearchPageURL(2)}
	out := &memorySink{}
	log, logs := observedLogger()

	stats, err := NewLinkedInScraper(testConfig(), d, out, log, WithSleep(noSleep)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, scraper.RunStats{Pages: 1, Seen: 3, Written: 2, Skipped: 1}, stats)
	assert.Len(t, out.records, 2)
	assert.Equal(t, 1, logs.FilterMessageSnippet("Could not list cards on page 2").Len())
	assert.True(t, out.closed)
	assert.True(t, d.Closed())
}

func TestLinkedInScraper_UnreadableFirstPageFails(t *testing.T) {
	site := mixedSite()
	d := &unreadableList{Driver: static.New(site.Documents()), failURL: site.SearchPageURL(1)}
	out := &memorySink{}

	stats, err := NewLinkedInScraper(testConfig(), d, out, logger.Nop(), WithSleep(noSleep)).Run(context.Background())
	assert.ErrorContains(t, err, "list detached")
	assert.Zero(t, stats)
	assert.True(t, out.closed)
	assert.True(t, d.Closed())
}

func TestLinkedInScraper_LoginFailure(t *testing.T) {
	site := mixedSite()
	site.RejectLogin = true
	d := static.New(site.Documents())
	out := &memorySink{}

	stats, err := NewLinkedInScraper(testConfig(), d, out, logger.Nop(), WithSleep(noSleep)).Run(context.Background())
	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.Zero(t, stats)
	assert.Empty(t, out.records)
	assert.True(t, out.closed)
	assert.True(t, d.Closed())
	assert.NotContains(t, d.Visited(), site.SearchPageURL(1))
}

func TestLinkedInScraper_ResultsMissing(t *testing.T) {
	site := linkedintest.Site{Keyword: testConfig().Keyword, NoResults: true}
	d := static.New(site.Documents())
	out := &memorySink{}

	stats, err := NewLinkedInScraper(testConfig(), d, out, logger.Nop(), WithSleep(noSleep)).Run(context.Background())
	assert.ErrorIs(t, err, ErrResultsNotFound)
	// the search page loaded; only the results container is missing
	assert.ErrorIs(t, err, browser.ErrTimeout)
	assert.NotErrorIs(t, err, static.ErrNoPage)
	assert.Equal(t, site.SearchPageURL(1), d.URL())
	assert.Zero(t, stats)
	assert.True(t, out.closed)
	assert.True(t, d.Closed())
}

func TestLinkedInScraper_Cancelled(t *testing.T) {
	site := mixedSite()
	d := static.New(site.Documents())
	out := &memorySink{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := NewLinkedInScraper(testConfig(), d, out, logger.Nop(), WithSleep(noSleep)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stats.Written)
	assert.True(t, out.closed)
	assert.True(t, d.Closed())
}

func TestLinkedInScraper_ScreenshotsOnSkip(t *testing.T) {
	site := mixedSite()
	d := static.New(site.Documents())

	shots, err := browser.NewScreenShotDebugger(t.TempDir(), d, logger.Nop())
	require.NoError(t, err)

	_, err = NewLinkedInScraper(testConfig(), d, &memorySink{}, logger.Nop(),
		WithSleep(noSleep), WithScreenshots(shots)).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, d.Screenshots(), 2)
	assert.Contains(t, filepath.Base(d.Screenshots()[0]), "skipped-p1-j2")
	assert.Contains(t, filepath.Base(d.Screenshots()[1]), "skipped-p2-j1")
}

func TestLinkedInScraper_WritesCSV(t *testing.T) {
	site := mixedSite()
	d := static.New(site.Documents())

	path := filepath.Join(t.TempDir(), "out", "jobs.csv")
	out, err := sink.OpenCSV(path)
	require.NoError(t, err)

	_, err = NewLinkedInScraper(testConfig(), d, out, logger.Nop(), WithSleep(noSleep), WithClock(clock)).Run(context.Background())
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, scraper.Columns, rows[0])
	assert.Equal(t, []string{
		"Backend Engineer", "Acme Corp", "Berlin, Germany · Over 100 applicants", "2 days ago",
		"Remote", "Full-time", "Easy Apply", linkedintest.BaseURL + "/jobs/view/101/",
		"We are hiring a Backend Engineer to build our data pipelines.", "2026-03-14T09:30:00Z",
	}, rows[1])
}
