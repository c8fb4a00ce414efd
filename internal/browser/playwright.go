package browser

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Options configures the Chromium instance.
type Options struct {
	Headless bool
	// ActionTimeout bounds clicks, typing and text reads.
	ActionTimeout time.Duration
	// NavigationTimeout bounds page loads.
	NavigationTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.ActionTimeout <= 0 {
		o.ActionTimeout = 10 * time.Second
	}
	if o.NavigationTimeout <= 0 {
		o.NavigationTimeout = 30 * time.Second
	}
	return o
}

type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
}

func NewPlaywright(opts Options) (*PlaywrightManager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args:     []string{"--start-maximized"},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch chromium: %w", err)
	}

	return &PlaywrightManager{pw: pw, browser: browser, opts: opts.withDefaults()}, nil
}

// NewDriver opens a fresh context and page. Closing the returned driver
// also shuts the manager down.
func (pm *PlaywrightManager) NewDriver() (*PageDriver, error) {
	browserCtx, err := pm.browser.NewContext(playwright.BrowserNewContextOptions{
		//window size follows --start-maximized
		NoViewport: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		browserCtx.Close()
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	page.SetDefaultTimeout(float64(pm.opts.ActionTimeout.Milliseconds()))

	return &PageDriver{manager: pm, page: page, navTimeout: pm.opts.NavigationTimeout}, nil
}

func (pm *PlaywrightManager) Close() error {
	var errs []error
	if pm.browser != nil {
		errs = append(errs, pm.browser.Close())
	}
	if pm.pw != nil {
		errs = append(errs, pm.pw.Stop())
	}
	return errors.Join(errs...)
}

// PageDriver implements Driver on a single playwright page.
type PageDriver struct {
	manager    *PlaywrightManager
	page       playwright.Page
	navTimeout time.Duration
}

func (d *PageDriver) Navigate(url string) error {
	if _, err := d.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(d.navTimeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("failed to load %s: %w", url, err)
	}
	return nil
}

func (d *PageDriver) WaitFor(selector string, timeout time.Duration) (Element, error) {
	loc := d.page.Locator(selector).First()
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return nil, wrapWait(selector, err)
	}
	return &locatorElement{loc: loc}, nil
}

func (d *PageDriver) Find(selector string) ([]Element, error) {
	return all(d.page.Locator(selector))
}

func (d *PageDriver) URL() string {
	return d.page.URL()
}

func (d *PageDriver) WaitForURL(fragment string, timeout time.Duration) error {
	pattern := regexp.MustCompile(regexp.QuoteMeta(fragment))
	err := d.page.WaitForURL(pattern, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return wrapWait("url~"+fragment, err)
	}
	return nil
}

func (d *PageDriver) Screenshot(path string) error {
	_, err := d.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

// Close releases the page, its context and the browser process.
func (d *PageDriver) Close() error {
	var errs []error
	if d.page != nil {
		errs = append(errs, d.page.Context().Close())
	}
	if d.manager != nil {
		errs = append(errs, d.manager.Close())
	}
	return errors.Join(errs...)
}

type locatorElement struct {
	loc playwright.Locator
}

func (e *locatorElement) Find(selector string) ([]Element, error) {
	return all(e.loc.Locator(selector))
}

func (e *locatorElement) Text() (string, error) {
	return e.loc.InnerText()
}

func (e *locatorElement) Click() error {
	return e.loc.Click()
}

func (e *locatorElement) Type(text string) error {
	return e.loc.PressSequentially(text)
}

func (e *locatorElement) ScrollBy(dy int) error {
	_, err := e.loc.Evaluate("(el, dy) => el.scrollBy(0, dy)", dy)
	return err
}

func (e *locatorElement) ScrollIntoView() error {
	_, err := e.loc.Evaluate("el => el.scrollIntoView(true)", nil)
	return err
}

func all(loc playwright.Locator) ([]Element, error) {
	locs, err := loc.All()
	if err != nil {
		return nil, err
	}
	els := make([]Element, len(locs))
	for i, l := range locs {
		els[i] = &locatorElement{loc: l}
	}
	return els, nil
}

func wrapWait(what string, err error) error {
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: %s", ErrTimeout, what)
	}
	return fmt.Errorf("waiting for %s: %w", what, err)
}
