// Package static implements browser.Driver over fixed HTML documents parsed
// with goquery. Clicking an element (or a descendant of one) that carries a
// data-navigate attribute loads the document registered for that URL, which
// is enough to replay login, card selection and pagination without a browser.
// An element carrying data-fail-click returns an error when clicked.
package static

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"go-linkedin-scraper/internal/browser"
)

// ErrNoPage is returned when navigating to a URL with no registered document.
var ErrNoPage = errors.New("static: no document for url")

type Driver struct {
	pages   map[string]string
	current string
	doc     *goquery.Document

	typed       map[string]string
	scrolls     int
	visited     []string
	screenshots []string
	closed      bool
}

// New returns a driver serving pages, keyed by absolute URL.
func New(pages map[string]string) *Driver {
	return &Driver{
		pages: pages,
		typed: make(map[string]string),
	}
}

func (d *Driver) Navigate(url string) error {
	body, ok := d.pages[url]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoPage, url)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("static: parse %s: %w", url, err)
	}
	d.doc = doc
	d.current = url
	d.visited = append(d.visited, url)
	return nil
}

func (d *Driver) WaitFor(selector string, timeout time.Duration) (browser.Element, error) {
	if d.doc == nil {
		return nil, fmt.Errorf("%w: %s", browser.ErrTimeout, selector)
	}
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("%w: %s after %s", browser.ErrTimeout, selector, timeout)
	}
	return &element{d: d, sel: sel}, nil
}

func (d *Driver) Find(selector string) ([]browser.Element, error) {
	if d.doc == nil {
		return nil, nil
	}
	return d.wrap(d.doc.Find(selector)), nil
}

func (d *Driver) URL() string {
	return d.current
}

func (d *Driver) WaitForURL(fragment string, timeout time.Duration) error {
	if !strings.Contains(d.current, fragment) {
		return fmt.Errorf("%w: url~%s after %s (at %s)", browser.ErrTimeout, fragment, timeout, d.current)
	}
	return nil
}

func (d *Driver) Screenshot(path string) error {
	d.screenshots = append(d.screenshots, path)
	return nil
}

func (d *Driver) Close() error {
	d.closed = true
	return nil
}

// Typed returns everything typed into the element with the given id.
func (d *Driver) Typed(id string) string { return d.typed[id] }

// Scrolls counts ScrollBy calls.
func (d *Driver) Scrolls() int { return d.scrolls }

// Visited lists every URL navigated to, in order.
func (d *Driver) Visited() []string { return d.visited }

func (d *Driver) Screenshots() []string { return d.screenshots }

func (d *Driver) Closed() bool { return d.closed }

func (d *Driver) wrap(sel *goquery.Selection) []browser.Element {
	els := make([]browser.Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		els = append(els, &element{d: d, sel: s})
	})
	return els
}

type element struct {
	d   *Driver
	sel *goquery.Selection
}

func (e *element) Find(selector string) ([]browser.Element, error) {
	return e.d.wrap(e.sel.Find(selector)), nil
}

func (e *element) Text() (string, error) {
	return e.sel.Text(), nil
}

func (e *element) Click() error {
	if _, failing := e.sel.Attr("data-fail-click"); failing {
		return errors.New("static: element is not clickable")
	}
	target, ok := e.sel.Closest("[data-navigate]").Attr("data-navigate")
	if !ok {
		return nil
	}
	return e.d.Navigate(target)
}

func (e *element) Type(text string) error {
	id, _ := e.sel.Attr("id")
	e.d.typed[id] += text
	return nil
}

func (e *element) ScrollBy(dy int) error {
	e.d.scrolls++
	return nil
}

func (e *element) ScrollIntoView() error {
	return nil
}
