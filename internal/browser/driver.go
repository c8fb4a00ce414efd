package browser

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a lookup that expects at least one match finds none.
	ErrNotFound = errors.New("element not found")
	// ErrTimeout is returned when a bounded wait elapses before its condition holds.
	ErrTimeout = errors.New("timed out waiting")
)

// Element is a handle to one rendered DOM node.
type Element interface {
	// Find returns the descendants matching selector. Zero matches is not an error.
	Find(selector string) ([]Element, error)
	Text() (string, error)
	Click() error
	// Type sends text to the element as keyboard input.
	Type(text string) error
	ScrollBy(dy int) error
	ScrollIntoView() error
}

// Driver is the browsing surface the scraper drives. Every call may fail.
type Driver interface {
	Navigate(url string) error
	// WaitFor blocks until the first element matching selector is attached
	// or timeout elapses, in which case the error wraps ErrTimeout.
	WaitFor(selector string, timeout time.Duration) (Element, error)
	// Find returns every element matching selector. Zero matches is not an error.
	Find(selector string) ([]Element, error)
	URL() string
	// WaitForURL blocks until the current URL contains fragment.
	WaitForURL(fragment string, timeout time.Duration) error
	Screenshot(path string) error
	Close() error
}

// First returns the first element matching selector, or ErrNotFound.
func First(d Driver, selector string) (Element, error) {
	els, err := d.Find(selector)
	if err != nil {
		return nil, err
	}
	if len(els) == 0 {
		return nil, ErrNotFound
	}
	return els[0], nil
}
