package linkedin

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-linkedin-scraper/internal/browser"
	"go-linkedin-scraper/internal/filter"
	"go-linkedin-scraper/internal/scraper"
)

// ErrDescriptionNotFound means no description candidate had enough text.
// It is the only field failure that drops the record.
var ErrDescriptionNotFound = errors.New("could not locate job description")

// Extractor reads the detail pane of the selected card.
type Extractor struct {
	driver  browser.Driver
	baseURL string
	log     *zap.SugaredLogger

	title       scraper.Chain
	company     scraper.Chain
	description scraper.Chain
	paneTimeout time.Duration
}

func NewExtractor(driver browser.Driver, baseURL string, paneTimeout time.Duration, log *zap.SugaredLogger) *Extractor {
	e := &Extractor{
		driver:      driver,
		baseURL:     baseURL,
		log:         log,
		paneTimeout: paneTimeout,
		title: scraper.Chain{
			{Selector: titlePrimary, Wait: paneTimeout},
			{Selector: titleFallback},
		},
		company: scraper.Chain{
			{Selector: companyPrimary},
			{Selector: companyFallback},
		},
	}
	for _, sel := range descriptionSelectors {
		e.description = append(e.description, scraper.Strategy{
			Selector: sel,
			Wait:     paneTimeout,
			Accept:   scraper.LongerThan(minDescriptionLength),
		})
	}
	return e
}

// Extract builds a Record from the open detail pane. Every field except the
// description degrades to its default on failure; a missing description
// returns ErrDescriptionNotFound and no record.
func (e *Extractor) Extract() (scraper.Record, error) {
	rec := scraper.NewRecord()
	rec.JobLink = CanonicalJobLink(e.baseURL, e.driver.URL())

	if f := e.title.Field(e.driver); f.Resolved {
		rec.Title = f.Value
	} else {
		e.log.Warn("⚠️ Job title not found")
	}

	if f := e.company.Field(e.driver); f.Resolved {
		rec.Company = f.Value
	} else {
		e.log.Warn("⚠️ Company name not found")
	}

	location, posted := e.primaryDescription()
	rec.Location, rec.PostedTime = location.Value, posted.Value

	tags := e.tags()
	rec.LocationType, rec.ContractType = tags.LocationType.Value, tags.ContractType.Value

	rec.ApplicationType = e.applicationType()

	desc, err := e.description.Resolve(e.driver)
	if err != nil {
		return scraper.Record{}, fmt.Errorf("%w: %w", ErrDescriptionNotFound, err)
	}
	rec.Description = desc
	return rec, nil
}

func (e *Extractor) primaryDescription() (location, posted scraper.Field) {
	region, err := e.driver.WaitFor(primaryDesc, e.paneTimeout)
	if err != nil {
		e.log.Warn("⚠️ Description container not found")
		return scraper.Degraded(), scraper.Degraded()
	}
	spans, err := region.Find(primaryDescSpans)
	if err != nil {
		e.log.Warnf("⚠️ Description fragments unreadable: %v", err)
		return scraper.Degraded(), scraper.Degraded()
	}
	return filter.SplitPrimaryDescription(texts(spans))
}

func (e *Extractor) tags() filter.Tags {
	els, err := e.driver.Find(pills)
	if err != nil {
		e.log.Warn("⚠️ Pills not found")
		return filter.ClassifyPills(nil)
	}
	return filter.ClassifyPills(texts(els))
}

func (e *Extractor) applicationType() string {
	btn, err := browser.First(e.driver, applyButton)
	if err != nil {
		return scraper.NotEasyApply
	}
	label, err := btn.Text()
	if err != nil {
		return scraper.NotEasyApply
	}
	return filter.ApplicationType(label)
}

// texts reads the trimmed text of each element, skipping unreadable ones.
func texts(els []browser.Element) []string {
	out := make([]string, 0, len(els))
	for _, el := range els {
		t, err := el.Text()
		if err != nil {
			continue
		}
		out = append(out, strings.TrimSpace(t))
	}
	return out
}
