package search

import (
	"strings"

	"github.com/gubarz/cheatpick/internal/cheat"
)

// internalPrefix marks internal commands, both in a query and in a record
const internalPrefix = ">"

// Match reports whether record matches query. Every space separated token must
// appear, case-insensitively, in the title, name, tags or command. A query
// starting with '>' only matches internal commands.
func Match(record *cheat.Record, query string) bool {
	if query == "" {
		return true
	}
	if strings.HasPrefix(query, internalPrefix) && !strings.HasPrefix(record.Command, internalPrefix) {
		return false
	}

	fields := [...]string{
		strings.ToLower(record.Title),
		strings.ToLower(record.Name),
		strings.ToLower(record.TagString()),
		strings.ToLower(record.Command),
	}
	// Split on single spaces: repeated spaces give empty tokens, which match.
	for _, token := range strings.Split(strings.ToLower(query), " ") {
		if !containsAny(fields[:], token) {
			return false
		}
	}
	return true
}

func containsAny(fields []string, token string) bool {
	for _, f := range fields {
		if strings.Contains(f, token) {
			return true
		}
	}
	return false
}

// Filter returns the records matching query, in catalog order
func Filter(records []*cheat.Record, query string) []*cheat.Record {
	if query == "" {
		return records
	}
	result := make([]*cheat.Record, 0, len(records))
	for _, r := range records {
		if Match(r, query) {
			result = append(result, r)
		}
	}
	return result
}

// CompletionCandidates returns the commands of records, the candidates for
// prefix completion in the search box
func CompletionCandidates(records []*cheat.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Command
	}
	return out
}
