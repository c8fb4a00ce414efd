package linkedin

import (
	"errors"
	"fmt"
	"time"

	"go-linkedin-scraper/internal/browser"
)

// ErrLoginFailed means the post-login feed never appeared.
var ErrLoginFailed = errors.New("login failed")

// Authenticator signs in through the login form.
type Authenticator struct {
	driver  browser.Driver
	baseURL string
	timeout time.Duration
	sleep   func(time.Duration)
}

func NewAuthenticator(driver browser.Driver, baseURL string, timeout time.Duration) *Authenticator {
	return &Authenticator{driver: driver, baseURL: baseURL, timeout: timeout, sleep: time.Sleep}
}

// Login types the credentials like a person would, submits, and waits for
// the feed URL. Every failure wraps ErrLoginFailed.
func (a *Authenticator) Login(username, password string) error {
	if err := a.driver.Navigate(a.baseURL + "/login"); err != nil {
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	fields := []struct {
		selector string
		value    string
	}{
		{usernameInput, username},
		{passwordInput, password},
	}
	for _, f := range fields {
		el, err := a.driver.WaitFor(f.selector, a.timeout)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLoginFailed, err)
		}
		if err := browser.HumanType(el, f.value, a.sleep); err != nil {
			return fmt.Errorf("%w: typing into %s: %v", ErrLoginFailed, f.selector, err)
		}
	}

	submit, err := browser.First(a.driver, submitButton)
	if err != nil {
		return fmt.Errorf("%w: submit button: %v", ErrLoginFailed, err)
	}
	if err := submit.Click(); err != nil {
		return fmt.Errorf("%w: submit: %v", ErrLoginFailed, err)
	}

	if err := a.driver.WaitForURL(feedURLMarker, a.timeout); err != nil {
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	return nil
}
