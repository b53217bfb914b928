package triage

import (
	"strings"

	"github.com/healthsift/healthsift/internal/model"
)

// Advisor surfaces static cautionary texts for queries that mention known
// risk keywords.
type Advisor struct {
	table []model.Advisory
}

// NewAdvisor creates an advisor from the configured keyword table.
func NewAdvisor(config model.TriageConfig) *Advisor {
	return &Advisor{table: config.Advisories}
}

// Advisories returns the advisory text for every table entry whose keyword is
// a substring of the lowercased query, in table order. Overlapping keywords
// (e.g. "headache" inside "severe headache") each match independently; no
// deduplication is applied. An empty result is not an error.
func (a *Advisor) Advisories(query string) []string {
	q := strings.ToLower(query)

	var matched []string
	for _, entry := range a.table {
		if strings.Contains(q, entry.Keyword) {
			matched = append(matched, entry.Text)
		}
	}
	return matched
}
