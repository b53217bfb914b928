package model

// SourceRecord represents a single retrieved search result enriched with a
// heuristic trust score. Records are immutable after creation.
type SourceRecord struct {
	Title      string  `json:"title"`                 // Result title from the search API
	Link       string  `json:"link"`                  // Full URL of the source
	Snippet    string  `json:"snippet"`               // Text excerpt from the source
	TrustScore float64 `json:"trust_score"`           // Heuristic credibility score in [1.0, 5.0]
}

// SeverityLevel is the coarse triage label derived from keyword presence
// in a query.
type SeverityLevel string

const (
	SeverityImmediate SeverityLevel = "immediate" // Emergency symptoms, seek care now
	SeverityUrgent    SeverityLevel = "urgent"    // Should be seen soon
	SeverityRoutine   SeverityLevel = "routine"   // Default when no keyword matches
)

// Label returns the user-facing form of the severity level.
func (s SeverityLevel) Label() string {
	switch s {
	case SeverityImmediate:
		return "Immediate"
	case SeverityUrgent:
		return "Urgent"
	case SeverityRoutine:
		return "Routine"
	default:
		return string(s)
	}
}

// HistoryEntry is one answered question in the session history. The history
// is append-only, owned by the session, and discarded when the session ends.
type HistoryEntry struct {
	Question string         `json:"question"`
	Answer   string         `json:"answer"`
	Sources  []SourceRecord `json:"sources,omitempty"`
	Severity SeverityLevel  `json:"severity"`
}
