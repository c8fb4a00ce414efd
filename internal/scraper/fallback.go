package scraper

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go-linkedin-scraper/internal/browser"
)

// ErrExhausted is returned when no strategy in a Chain produced a value.
var ErrExhausted = errors.New("all selectors exhausted")

// Strategy is one way of locating a field: a selector, how long to wait for
// it, and a predicate the trimmed text must satisfy.
type Strategy struct {
	Selector string
	// Wait bounds how long to wait for the element. Zero means a single lookup.
	Wait time.Duration
	// Accept validates the trimmed text. Nil accepts any non-empty text.
	Accept func(text string) bool
}

// Chain is an ordered list of strategies tried until one succeeds.
type Chain []Strategy

// Resolve returns the trimmed text of the first element whose strategy accepts it.
func (c Chain) Resolve(d browser.Driver) (string, error) {
	var failures []string
	for _, s := range c {
		text, err := s.text(d)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", s.Selector, err))
			continue
		}
		if !s.accepts(text) {
			failures = append(failures, fmt.Sprintf("%s: text rejected", s.Selector))
			continue
		}
		return text, nil
	}
	return "", fmt.Errorf("%w (%s)", ErrExhausted, strings.Join(failures, "; "))
}

// Field resolves the chain into a Field, degrading to Unknown on exhaustion.
func (c Chain) Field(d browser.Driver) Field {
	text, err := c.Resolve(d)
	if err != nil {
		return Degraded()
	}
	return Found(text)
}

func (s Strategy) text(d browser.Driver) (string, error) {
	var (
		el  browser.Element
		err error
	)
	if s.Wait > 0 {
		el, err = d.WaitFor(s.Selector, s.Wait)
	} else {
		el, err = browser.First(d, s.Selector)
	}
	if err != nil {
		return "", err
	}
	text, err := el.Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s Strategy) accepts(text string) bool {
	if s.Accept == nil {
		return text != ""
	}
	return s.Accept(text)
}

// LongerThan accepts text with more than n characters.
func LongerThan(n int) func(string) bool {
	return func(text string) bool {
		return utf8.RuneCountInString(text) > n
	}
}
