package linkedin

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go-linkedin-scraper/internal/browser/static"
	"go-linkedin-scraper/internal/config"
	"go-linkedin-scraper/internal/scraper"
	"go-linkedin-scraper/internal/scraper/linkedin/linkedintest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() *config.Config {
	return &config.Config{
		Username:    "me@example.com",
		Password:    "s3cret!",
		Keyword:     "Go Developer",
		BaseURL:     linkedintest.BaseURL,
		PageTimeout: 30 * time.Second,
		PaneTimeout: 10 * time.Second,
	}
}

func observedLogger() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

// completeJob returns a job whose every field resolves.
func completeJob(id, title string) linkedintest.Job {
	return linkedintest.Job{
		ID:           id,
		Title:        title,
		Company:      "Acme Corp",
		Fragments:    []string{"Berlin, Germany", "2 days ago", "Over 100 applicants"},
		Pills:        []string{"Full-time", "Remote"},
		Apply:        "Easy Apply",
		Descriptions: []string{fmt.Sprintf("We are hiring a %s to build our data pipelines.", title)},
	}
}

// openDetail serves site and navigates straight to job's detail pane.
func openDetail(t *testing.T, site linkedintest.Site, job linkedintest.Job) *static.Driver {
	t.Helper()
	d := static.New(site.Documents())
	if err := d.Navigate(site.DetailURL(job)); err != nil {
		t.Fatalf("navigate to detail: %v", err)
	}
	return d
}

type pauses struct {
	got []time.Duration
}

func (p *pauses) sleep(d time.Duration) { p.got = append(p.got, d) }

func noSleep(time.Duration) {}

// memorySink keeps written records in memory.
type memorySink struct {
	records []scraper.Record
	failOn  string
	closed  bool
}

func (m *memorySink) Write(_ context.Context, rec scraper.Record) error {
	if m.failOn != "" && rec.Title == m.failOn {
		return fmt.Errorf("disk full")
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *memorySink) Close() error {
	m.closed = true
	return nil
}
