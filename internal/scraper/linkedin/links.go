package linkedin

import (
	"net/url"
	"strings"

	"go-linkedin-scraper/internal/scraper"
)

// CanonicalJobLink turns the URL shown while a card is selected into a stable
// link for the posting. Search URLs carry the selected job as currentJobId;
// any other URL just loses its tracking query and fragment.
func CanonicalJobLink(baseURL, current string) string {
	if current == "" {
		return scraper.Unknown
	}
	u, err := url.Parse(current)
	if err != nil {
		return current
	}
	if id := u.Query().Get("currentJobId"); id != "" {
		return baseURL + "/jobs/view/" + url.PathEscape(id) + "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimSpace(u.String())
}
