package trust

import (
	"net/url"
	"strings"

	"github.com/healthsift/healthsift/internal/model"
)

// Score bounds for the trust heuristic.
const (
	MinScore = 1.0
	MaxScore = 5.0
)

// Scorer maps a source URL and snippet to a bounded trust score. The tier
// cascade is ordered most-authoritative first and the first match wins, so
// specific health authorities are recognized before the broad gov/edu
// substrings that would also match them.
type Scorer struct {
	config model.TrustConfig
}

// NewScorer creates a scorer with the given tier configuration.
func NewScorer(config model.TrustConfig) *Scorer {
	return &Scorer{config: config}
}

// Score computes the trust score for a link/snippet pair. It is pure and
// total: malformed links fall through to the default tier rather than
// erroring. The result is always within [MinScore, MaxScore].
func (s *Scorer) Score(link, snippet string) float64 {
	base := s.baseScore(hostOf(link))

	if s.hasRecentYear(snippet) {
		base += 0.5
	}

	if base > MaxScore {
		base = MaxScore
	}
	return base
}

// baseScore runs the tier cascade against the host.
func (s *Scorer) baseScore(host string) float64 {
	switch {
	case containsAny(host, s.config.TopTierDomains):
		return 5.0
	case containsAny(host, s.config.GovEduDomains):
		return 4.5
	case containsAny(host, s.config.ConsumerDomains):
		return 4.0
	case containsAny(host, s.config.LiteratureDomains):
		return 3.5
	default:
		return 3.0
	}
}

// hasRecentYear reports whether the snippet mentions any configured recency
// year. The bonus is applied at most once regardless of how many match.
func (s *Scorer) hasRecentYear(snippet string) bool {
	for _, year := range s.config.RecencyYears {
		if strings.Contains(snippet, year) {
			return true
		}
	}
	return false
}

// hostOf extracts the lowercased host of a URL. An unparseable URL yields an
// empty host, which matches no tier and falls to the default score.
func hostOf(link string) string {
	parsed, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Host)
}

func containsAny(host string, domains []string) bool {
	if host == "" {
		return false
	}
	for _, d := range domains {
		if strings.Contains(host, d) {
			return true
		}
	}
	return false
}
