package linkedin

import "time"

// Login page.
const (
	usernameInput = "#username"
	passwordInput = "#password"
	submitButton  = "button[type='submit']"
	feedURLMarker = "/feed"
)

// Search results.
const (
	resultsList = "div.scaffold-layout__list"
	resultCard  = "li.scaffold-layout__list-item"
	// pageButtons are the numbered pagination controls; the wanted one is matched by label.
	pageButtons = "ul.artdeco-pagination__pages button, ul.jobs-search-pagination__pages button"
	// pageButtonsAnywhere catches numbered buttons rendered outside those lists.
	pageButtonsAnywhere = "button:has(span)"
)

// Detail pane.
const (
	titlePrimary     = "h1.t-24.t-bold, h1.jobs-unified-top-card__job-title"
	titleFallback    = ".job-details-jobs-unified-top-card__job-title"
	companyPrimary   = "div.job-details-jobs-unified-top-card__company-name a, span.jobs-unified-top-card__company-name a"
	companyFallback  = "span.jobs-unified-top-card__company-name"
	primaryDesc      = "div.job-details-jobs-unified-top-card__primary-description-container, div.jobs-unified-top-card__primary-description"
	primaryDescSpans = "span.tvm__text, span.jobs-unified-top-card__bullet"
	pills            = "button.job-details-preferences-and-skills span.ui-label, li.jobs-unified-top-card__job-insight span"
	applyButton      = "button.jobs-apply-button, button.jobs-apply-button--top-card"
)

// descriptionSelectors are tried in order; the first with enough text wins.
var descriptionSelectors = []string{
	"div.jobs-search__job-details--container .jobs-description-content__text",
	"article.jobs-description__main",
	"[class*='jobs-description-content']",
}

// minDescriptionLength is exclusive: the description must be longer.
const minDescriptionLength = 20

// Pacing.
const (
	scrollSteps   = 8
	scrollDelta   = 400
	scrollPause   = 300 * time.Millisecond
	settleDelay   = 2 * time.Second
	pageTurnPause = 1 * time.Second
)
