package filter

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"go-linkedin-scraper/internal/scraper"
)

// normalizeText folds case and maps compatibility characters (non-breaking
// spaces, ligatures) so page text compares against the plain vocabularies.
func normalizeText(s string) string {
	return cases.Fold().String(norm.NFKC.String(strings.TrimSpace(s)))
}

// IsTimingFragment reports whether a fragment describes when the job was posted.
func IsTimingFragment(fragment string) bool {
	text := normalizeText(fragment)
	for _, unit := range timingUnits {
		if strings.Contains(text, unit) {
			return true
		}
	}
	return false
}

// SplitPrimaryDescription separates the posted-time fragment from the
// location fragments. Only the first timing fragment is kept; the others are
// dropped. Non-timing fragments are joined in order. Blank fragments are
// ignored, and an empty side degrades to Unknown.
func SplitPrimaryDescription(fragments []string) (location, posted scraper.Field) {
	location, posted = scraper.Degraded(), scraper.Degraded()
	var parts []string
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if IsTimingFragment(f) {
			if !posted.Resolved {
				posted = scraper.Found(f)
			}
			continue
		}
		parts = append(parts, f)
	}
	if len(parts) > 0 {
		location = scraper.Found(strings.Join(parts, locationSeparator))
	}
	return location, posted
}

// Tags holds the pill-derived classification of a job.
type Tags struct {
	LocationType scraper.Field
	ContractType scraper.Field
}

// ClassifyPills matches each pill against the location-type and
// contract-type vocabularies. The last match per vocabulary wins and
// unrecognised pills are ignored.
func ClassifyPills(pills []string) Tags {
	tags := Tags{LocationType: scraper.Degraded(), ContractType: scraper.Degraded()}
	for _, p := range pills {
		text := normalizeText(p)
		switch {
		case slices.Contains(locationTypes, text):
			tags.LocationType = scraper.Found(capitalize(text))
		case slices.Contains(contractTypes, text):
			tags.ContractType = scraper.Found(capitalize(text))
		}
	}
	return tags
}

// ApplicationType classifies the apply button label. An empty label means
// the button was absent.
func ApplicationType(label string) string {
	if strings.Contains(normalizeText(label), easyApplyLabel) {
		return scraper.EasyApply
	}
	return scraper.NotEasyApply
}

// capitalize upper-cases the first letter and lower-cases the rest ("on-site" -> "On-site").
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
