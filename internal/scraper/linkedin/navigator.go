package linkedin

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-linkedin-scraper/internal/browser"
)

// ErrResultsNotFound means the results list never rendered.
var ErrResultsNotFound = errors.New("job results list not found")

// Navigator owns the search results view and the page cursor.
type Navigator struct {
	driver  browser.Driver
	baseURL string
	timeout time.Duration
	sleep   func(time.Duration)
	log     *zap.SugaredLogger

	list browser.Element
	page int
}

func NewNavigator(driver browser.Driver, baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Navigator {
	return &Navigator{driver: driver, baseURL: baseURL, timeout: timeout, sleep: time.Sleep, log: log}
}

// SearchURL builds the job search URL for keyword.
func SearchURL(baseURL, keyword string) string {
	return baseURL + "/jobs/search/?keywords=" + url.QueryEscape(keyword)
}

// Open runs the search and waits for the results list. The cursor starts at 1.
func (n *Navigator) Open(keyword string) error {
	searchURL := SearchURL(n.baseURL, keyword)
	n.log.Debugf("  🌐 Visiting Job Search: %s", searchURL)
	if err := n.driver.Navigate(searchURL); err != nil {
		return fmt.Errorf("%w: %w", ErrResultsNotFound, err)
	}
	if err := n.acquireList(); err != nil {
		return err
	}
	n.page = 1
	return nil
}

// Page returns the current page number.
func (n *Navigator) Page() int { return n.page }

// Entries scrolls the list to force lazy rendering, then returns the cards
// currently rendered, in document order.
func (n *Navigator) Entries() ([]browser.Element, error) {
	for i := 0; i < scrollSteps; i++ {
		if err := n.list.ScrollBy(scrollDelta); err != nil {
			n.log.Warnf("⚠️ Scroll step %d failed: %v", i+1, err)
		}
		n.sleep(scrollPause)
	}
	cards, err := n.list.Find(resultCard)
	if err != nil {
		return nil, fmt.Errorf("listing cards on page %d: %w", n.page, err)
	}
	return cards, nil
}

// Next activates the control labelled page+1. It returns false when there
// is no such control, which ends pagination normally. A non-nil error with
// false means the control was found but the next page could not be reached.
func (n *Navigator) Next() (bool, error) {
	want := strconv.Itoa(n.page + 1)
	button, err := n.pageButton(want)
	if err != nil || button == nil {
		return false, err
	}

	if err := button.Click(); err != nil {
		return false, fmt.Errorf("clicking page %s: %w", want, err)
	}
	n.page++
	n.sleep(pageTurnPause)
	// the previous list handle may be stale after the transition
	if err := n.acquireList(); err != nil {
		return false, err
	}
	return true, nil
}

// pageButton finds the button labelled want, looking in the pagination
// lists first and then anywhere on the page. Nil means there is none.
func (n *Navigator) pageButton(want string) (browser.Element, error) {
	for _, selector := range []string{pageButtons, pageButtonsAnywhere} {
		buttons, err := n.driver.Find(selector)
		if err != nil {
			return nil, fmt.Errorf("listing pagination: %w", err)
		}
		for _, b := range buttons {
			label, err := b.Text()
			if err == nil && strings.TrimSpace(label) == want {
				return b, nil
			}
		}
	}
	return nil, nil
}

func (n *Navigator) acquireList() error {
	list, err := n.driver.WaitFor(resultsList, n.timeout)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResultsNotFound, err)
	}
	n.list = list
	return nil
}
