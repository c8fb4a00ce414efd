// Types shared by the extraction loop and the row sinks.

package scraper

import (
	"context"
	"time"
)

// Unknown marks a field that could not be resolved. It is never the empty string.
const Unknown = "N/A"

const (
	EasyApply    = "Easy Apply"
	NotEasyApply = "Not Easy Apply"
)

// Columns is the fixed column order of every output row.
var Columns = []string{
	"job_title", "company_name", "location", "posted_time",
	"location_type", "contract_type", "application_type",
	"job_link", "description", "timestamp",
}

// Record is one extracted job posting. Every field is always populated.
type Record struct {
	Title           string
	Company         string
	Location        string
	PostedTime      string
	LocationType    string
	ContractType    string
	ApplicationType string
	JobLink         string
	Description     string
	Timestamp       time.Time
}

// NewRecord returns a Record with every field set to its default.
func NewRecord() Record {
	return Record{
		Title:           Unknown,
		Company:         Unknown,
		Location:        Unknown,
		PostedTime:      Unknown,
		LocationType:    Unknown,
		ContractType:    Unknown,
		ApplicationType: NotEasyApply,
		JobLink:         Unknown,
		Description:     Unknown,
	}
}

// Row renders the record in Columns order. A zero Timestamp renders as Unknown.
func (r Record) Row() []string {
	ts := Unknown
	if !r.Timestamp.IsZero() {
		ts = r.Timestamp.Format(time.RFC3339)
	}
	return []string{
		orUnknown(r.Title), orUnknown(r.Company), orUnknown(r.Location), orUnknown(r.PostedTime),
		orUnknown(r.LocationType), orUnknown(r.ContractType), orUnknown(r.ApplicationType),
		orUnknown(r.JobLink), orUnknown(r.Description), ts,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}

// Field is the outcome of resolving one record field: either a value read
// from the page or the Unknown sentinel.
type Field struct {
	Value    string
	Resolved bool
}

func Found(v string) Field { return Field{Value: v, Resolved: true} }

func Degraded() Field { return Field{Value: Unknown} }

// Sink persists records as they are extracted.
type Sink interface {
	Write(ctx context.Context, rec Record) error
	Close() error
}

// RunStats summarises one scraping run.
type RunStats struct {
	Pages   int
	Seen    int
	Written int
	Skipped int
}

// Scraper defines the interface that all platform scrapers must implement
type Scraper interface {
	Run(ctx context.Context) (RunStats, error)

	//Name is the platform name
	Name() string
}
