package linkedin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"go-linkedin-scraper/internal/browser"
	"go-linkedin-scraper/internal/config"
	"go-linkedin-scraper/internal/scraper"
)

// LinkedInScraper logs in once and walks every result page of one search,
// writing a row per job it can read.
type LinkedInScraper struct {
	cfg    *config.Config
	driver browser.Driver
	sink   scraper.Sink
	log    *zap.SugaredLogger

	auth      *Authenticator
	nav       *Navigator
	extractor *Extractor
	shots     *browser.ScreenShotDebugger
	sleep     func(time.Duration)
	now       func() time.Time
}

type Option func(*LinkedInScraper)

// WithSleep replaces every pause (typing, scrolling, settling) with fn.
func WithSleep(fn func(time.Duration)) Option {
	return func(s *LinkedInScraper) { s.sleep = fn }
}

// WithClock sets the source of record timestamps.
func WithClock(fn func() time.Time) Option {
	return func(s *LinkedInScraper) { s.now = fn }
}

// WithScreenshots captures the page on fatal errors and skipped jobs.
func WithScreenshots(d *browser.ScreenShotDebugger) Option {
	return func(s *LinkedInScraper) { s.shots = d }
}

// NewLinkedInScraper takes ownership of driver and sink: Run releases both.
func NewLinkedInScraper(cfg *config.Config, driver browser.Driver, sink scraper.Sink, log *zap.SugaredLogger, opts ...Option) *LinkedInScraper {
	s := &LinkedInScraper{
		cfg:    cfg,
		driver: driver,
		sink:   sink,
		log:    log,
		sleep:  time.Sleep,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.auth = NewAuthenticator(driver, cfg.BaseURL, cfg.PageTimeout)
	s.auth.sleep = s.sleep
	s.nav = NewNavigator(driver, cfg.BaseURL, cfg.PageTimeout, log)
	s.nav.sleep = s.sleep
	s.extractor = NewExtractor(driver, cfg.BaseURL, cfg.PaneTimeout, log)
	return s
}

func (s *LinkedInScraper) Name() string {
	return "LinkedIn"
}

// Run scrapes until pagination ends. Only a failed login, a first page whose
// results cannot be read, or cancellation of ctx return an error; failures on
// a single job are logged and skipped, and an unreadable later page ends the
// run normally. The sink and driver are always closed.
func (s *LinkedInScraper) Run(ctx context.Context) (stats scraper.RunStats, err error) {
	defer func() {
		if cerr := s.cleanup(); cerr != nil {
			s.log.Warnf("⚠️ Cleanup failed: %v", cerr)
			if err == nil {
				err = cerr
			}
		}
		s.log.Info("🛑 Done.")
	}()

	s.log.Info("🔐 Logging in…")
	if err := s.auth.Login(s.cfg.Username, s.cfg.Password); err != nil {
		s.capture("login-failed", "🚨 LinkedIn: login did not reach the feed")
		return stats, err
	}
	s.log.Info("✅ Logged in")

	s.log.Info("🌐 Navigating to jobs…")
	if err := s.nav.Open(s.cfg.Keyword); err != nil {
		s.capture("results-missing", "🚨 LinkedIn: job list did not render")
		return stats, err
	}
	s.log.Info("📋 Job list ready")

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		page := s.nav.Page()
		s.log.Infof("➡️  Scraping page %d…", page)
		cards, err := s.nav.Entries()
		if err != nil {
			if page == 1 {
				return stats, err
			}
			// rows from earlier pages are already written
			s.log.Warnf("⚠️ Could not list cards on page %d, stopping: %v", page, err)
			s.capture(fmt.Sprintf("listing-failed-p%d", page), "Job list unreadable")
			return stats, nil
		}
		stats.Pages++
		s.log.Infof("🔍 Found %d cards on page %d", len(cards), page)

		for i, card := range cards {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			stats.Seen++
			rec, err := s.processEntry(ctx, card)
			if err != nil {
				stats.Skipped++
				s.log.Warnf("⚠️ Page %d • Skipped job #%d: %v", page, i+1, err)
				s.capture(fmt.Sprintf("skipped-p%d-j%d", page, i+1), "Skipped job detail pane")
				continue
			}
			stats.Written++
			s.log.Infof("✅ Page %d • Job #%d → %s", page, i+1, rec.Title)
		}

		more, err := s.nav.Next()
		if err != nil {
			s.log.Warnf("⚠️ Could not reach page %d: %v", page+1, err)
		}
		if !more {
			s.log.Info("🏁 Pagination ended or button not found.")
			return stats, nil
		}
	}
}

// processEntry selects one card, extracts the detail pane and writes the row.
func (s *LinkedInScraper) processEntry(ctx context.Context, card browser.Element) (scraper.Record, error) {
	if err := card.ScrollIntoView(); err != nil {
		return scraper.Record{}, fmt.Errorf("scroll into view: %w", err)
	}
	if err := card.Click(); err != nil {
		return scraper.Record{}, fmt.Errorf("select card: %w", err)
	}
	s.sleep(settleDelay)

	rec, err := s.extractor.Extract()
	if err != nil {
		return scraper.Record{}, err
	}
	rec.Timestamp = s.now()

	if err := s.sink.Write(ctx, rec); err != nil {
		return scraper.Record{}, fmt.Errorf("write row: %w", err)
	}
	return rec, nil
}

func (s *LinkedInScraper) capture(name, message string) {
	if s.shots != nil {
		s.shots.CaptureAndLog(name, message)
	}
}

func (s *LinkedInScraper) cleanup() error {
	var errs []error
	if err := s.sink.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing sink: %w", err))
	}
	if err := s.driver.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing browser: %w", err))
	}
	return errors.Join(errs...)
}
