// Package triage derives local, synchronous signals from the raw question
// text: a coarse severity level and zero or more static risk advisories.
// Neither depends on any network call.
package triage

import (
	"strings"

	"github.com/healthsift/healthsift/internal/model"
)

// Classifier maps free-text queries to a severity level by ordered keyword
// matching. Immediate keywords are checked before Urgent ones, so a query
// containing both classifies as Immediate.
type Classifier struct {
	rules []severityRule
}

type severityRule struct {
	level    model.SeverityLevel
	keywords []string
}

// NewClassifier creates a classifier from the configured keyword tables.
func NewClassifier(config model.TriageConfig) *Classifier {
	return &Classifier{
		rules: []severityRule{
			{model.SeverityImmediate, config.ImmediateKeywords},
			{model.SeverityUrgent, config.UrgentKeywords},
		},
	}
}

// Classify returns the severity level for a query. It is total: every input,
// including the empty string, maps to exactly one level, defaulting to
// Routine when no keyword matches.
func (c *Classifier) Classify(query string) model.SeverityLevel {
	q := strings.ToLower(query)
	for _, rule := range c.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(q, keyword) {
				return rule.level
			}
		}
	}
	return model.SeverityRoutine
}
