// Package linkedintest builds static LinkedIn-shaped documents for tests:
// a login form, a feed, and search result pages whose cards open a detail
// pane. Serve them with the static browser driver.
package linkedintest

import (
	"fmt"
	"html"
	"net/url"
	"strings"
)

const BaseURL = "https://www.linkedin.test"

// Job describes one card and its detail pane. Empty fields are omitted
// from the markup.
type Job struct {
	ID    string
	Title string
	// TitleFallback renders the title only under the secondary selector.
	TitleFallback bool
	Company       string
	// CompanyPlain renders the company without the inner link.
	CompanyPlain bool
	// Fragments are the primary description spans. Nil omits the region.
	Fragments []string
	Pills     []string
	Apply     string
	// Descriptions fills the description candidates in order; an empty
	// entry omits that candidate.
	Descriptions []string
	FailClick    bool
}

// Site is a login flow plus paginated search results.
type Site struct {
	Keyword string
	Pages   [][]Job
	// RejectLogin sends the submit button to a checkpoint instead of the feed.
	RejectLogin bool
	// NoResults renders the search page without the results list.
	NoResults bool
	// LoosePagination renders the page buttons outside the pagination lists.
	LoosePagination bool
}

func LoginURL() string { return BaseURL + "/login" }

func FeedURL() string { return BaseURL + "/feed/" }

func CheckpointURL() string { return BaseURL + "/checkpoint/challenge" }

// SearchPageURL is the URL of result page n (1-based).
func (s Site) SearchPageURL(n int) string {
	u := BaseURL + "/jobs/search/?keywords=" + url.QueryEscape(s.Keyword)
	if n > 1 {
		u += fmt.Sprintf("&start=%d", (n-1)*25)
	}
	return u
}

// DetailURL is the URL shown while job is selected. Job IDs must be unique across pages.
func (s Site) DetailURL(job Job) string {
	return BaseURL + "/jobs/search/?currentJobId=" + job.ID + "&keywords=" + url.QueryEscape(s.Keyword)
}

// Documents returns every page of the site keyed by URL.
func (s Site) Documents() map[string]string {
	docs := map[string]string{
		LoginURL():      s.loginPage(),
		FeedURL():       `<html><body><nav id="global-nav">feed</nav></body></html>`,
		CheckpointURL(): `<html><body><h1>Let's do a quick security check</h1></body></html>`,
	}
	if len(s.Pages) == 0 || s.NoResults {
		docs[s.SearchPageURL(1)] = `<html><body><main>No matching jobs found.</main></body></html>`
		return docs
	}
	for i, jobs := range s.Pages {
		n := i + 1
		docs[s.SearchPageURL(n)] = s.resultsPage(n, nil)
		for j := range jobs {
			job := jobs[j]
			docs[s.DetailURL(job)] = s.resultsPage(n, &job)
		}
	}
	return docs
}

func (s Site) loginPage() string {
	target := FeedURL()
	if s.RejectLogin {
		target = CheckpointURL()
	}
	return fmt.Sprintf(`<html><body><form>
<input id="username" type="text">
<input id="password" type="password">
<button type="submit" data-navigate="%s">Sign in</button>
</form></body></html>`, target)
}

func (s Site) resultsPage(n int, selected *Job) string {
	var b strings.Builder
	b.WriteString("<html><body>\n<div class=\"scaffold-layout__list\"><ul>\n")
	for _, job := range s.Pages[n-1] {
		attrs := fmt.Sprintf(`data-navigate="%s"`, html.EscapeString(s.DetailURL(job)))
		if job.FailClick {
			attrs += " data-fail-click"
		}
		fmt.Fprintf(&b, "<li class=\"scaffold-layout__list-item\" %s><a>%s</a></li>\n", attrs, html.EscapeString(job.Title))
	}
	b.WriteString("</ul></div>\n")

	if s.LoosePagination {
		b.WriteString("<div class=\"jobs-search-results-list__pagination\">\n")
		for p := 1; p <= len(s.Pages); p++ {
			fmt.Fprintf(&b, "<button data-navigate=\"%s\"><span> %d </span></button>\n", html.EscapeString(s.SearchPageURL(p)), p)
		}
		b.WriteString("</div>\n")
	} else {
		b.WriteString("<ul class=\"artdeco-pagination__pages\">\n")
		for p := 1; p <= len(s.Pages); p++ {
			fmt.Fprintf(&b, "<li><button data-navigate=\"%s\"><span>%d</span></button></li>\n", html.EscapeString(s.SearchPageURL(p)), p)
		}
		b.WriteString("</ul>\n")
	}

	if selected != nil {
		b.WriteString(detailPane(*selected))
	}
	b.WriteString("</body></html>")
	return b.String()
}

func detailPane(job Job) string {
	var b strings.Builder
	b.WriteString("<div class=\"jobs-search__job-details--container\">\n")

	if job.Title != "" {
		if job.TitleFallback {
			fmt.Fprintf(&b, "<h2 class=\"job-details-jobs-unified-top-card__job-title\">%s</h2>\n", html.EscapeString(job.Title))
		} else {
			fmt.Fprintf(&b, "<h1 class=\"t-24 t-bold\">%s</h1>\n", html.EscapeString(job.Title))
		}
	}

	if job.Company != "" {
		if job.CompanyPlain {
			fmt.Fprintf(&b, "<span class=\"jobs-unified-top-card__company-name\">%s</span>\n", html.EscapeString(job.Company))
		} else {
			fmt.Fprintf(&b, "<div class=\"job-details-jobs-unified-top-card__company-name\"><a>%s</a></div>\n", html.EscapeString(job.Company))
		}
	}

	if job.Fragments != nil {
		b.WriteString("<div class=\"job-details-jobs-unified-top-card__primary-description-container\">\n")
		for _, f := range job.Fragments {
			fmt.Fprintf(&b, "<span class=\"tvm__text\">%s</span>\n", html.EscapeString(f))
		}
		b.WriteString("</div>\n")
	}

	if len(job.Pills) > 0 {
		b.WriteString("<button class=\"job-details-preferences-and-skills\">\n")
		for _, p := range job.Pills {
			fmt.Fprintf(&b, "<span class=\"ui-label\">%s</span>\n", html.EscapeString(p))
		}
		b.WriteString("</button>\n")
	}

	if job.Apply != "" {
		fmt.Fprintf(&b, "<button class=\"jobs-apply-button\"><span>%s</span></button>\n", html.EscapeString(job.Apply))
	}

	candidates := []string{
		"<div class=\"jobs-description-content__text\">%s</div>\n",
		"<article class=\"jobs-description__main\">%s</article>\n",
		"<section class=\"jobs-description-content--legacy\">%s</section>\n",
	}
	// the catch-all third selector must not see the earlier candidates first
	for _, i := range []int{2, 0, 1} {
		if i >= len(job.Descriptions) || job.Descriptions[i] == "" {
			continue
		}
		fmt.Fprintf(&b, candidates[i], html.EscapeString(job.Descriptions[i]))
	}

	b.WriteString("</div>\n")
	return b.String()
}
