package cheat

import (
	"strings"

	"github.com/gubarz/cheatpick/internal/template"
)

// Record represents a single command template from the catalog
type Record struct {
	Name             string   // Section name (## heading)
	Title            string   // File title (# heading)
	Tags             []string // File and section tags
	Command          string   // Raw template with <placeholder> tokens
	PrintableCommand string   // Display form of Command
	SourceFile       string   // File the record was loaded from
}

// Placeholders returns the distinct placeholder names in first-occurrence order
func (r *Record) Placeholders() []string {
	return template.Placeholders(r.Command)
}

// TagString returns the tags joined for display and matching
func (r *Record) TagString() string {
	return strings.Join(r.Tags, ", ")
}

// DisplayTitle returns the tags when present, otherwise the title
func (r *Record) DisplayTitle() string {
	if len(r.Tags) > 0 {
		return r.TagString()
	}
	return r.Title
}

// IsInternal reports whether the command is marked internal with a leading '>'
func (r *Record) IsInternal() bool {
	return strings.HasPrefix(r.Command, ">")
}

// Catalog is the ordered, read-only collection of records for a session
type Catalog struct {
	records []*Record
}

// NewCatalog creates a catalog over records. The slice is copied so later
// changes by the caller are not observed.
func NewCatalog(records []*Record) *Catalog {
	cp := make([]*Record, len(records))
	copy(cp, records)
	return &Catalog{records: cp}
}

// Records returns the records in catalog order
func (c *Catalog) Records() []*Record {
	if c == nil {
		return nil
	}
	return c.records
}

// Len returns the number of records
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}
