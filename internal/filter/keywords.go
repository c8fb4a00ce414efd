package filter

// timingUnits mark a primary-description fragment as the posting age ("3 weeks ago", "Reposted 2 days ago").
var timingUnits = []string{"hour", "minute", "day", "week", "month", "posted"}

// locationTypes and contractTypes are disjoint pill vocabularies, lowercased.
var (
	locationTypes = []string{"remote", "hybrid", "on-site"}
	contractTypes = []string{"full-time", "part-time", "internship", "contract", "temporary", "volunteer"}
)

const (
	easyApplyLabel = "easy apply"

	// locationSeparator joins non-timing fragments.
	locationSeparator = " · "
)
