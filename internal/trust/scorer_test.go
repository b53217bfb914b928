package trust

import (
	"testing"

	"github.com/healthsift/healthsift/internal/model"
)

func newTestScorer() *Scorer {
	return NewScorer(model.DefaultConfig().Trust)
}

func TestScorer_TierCascade(t *testing.T) {
	scorer := newTestScorer()

	tests := []struct {
		name string
		link string
		want float64
	}{
		{"top tier NHS", "https://www.nhs.uk/conditions/chest-pain/", 5.0},
		{"top tier CDC", "https://www.cdc.gov/flu/symptoms", 5.0},
		{"top tier WHO", "https://www.who.int/news-room/fact-sheets", 5.0},
		{"top tier clinic", "https://my.clevelandclinic.org/health", 5.0},
		{"nih is gov tier", "https://www.nih.gov/health-information", 4.5},
		{"harvard health", "https://www.health.harvard.edu/blog", 4.5},
		{"consumer webmd", "https://www.webmd.com/cold-and-flu", 4.0},
		// pubmed.ncbi.nlm.nih.gov contains "gov", so the gov/edu tier wins
		// before the literature tier is ever consulted.
		{"pubmed host hits gov tier first", "https://pubmed.ncbi.nlm.nih.gov/12345/", 4.5},
		{"bare pubmed mirror", "https://pubmed.example.org/12345/", 3.5},
		{"unknown site", "https://example.com/health", 3.0},
		{"malformed URL", "::not-a-url::", 3.0},
		{"empty link", "", 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.link, "no years here")
			if got != tt.want {
				t.Errorf("Score(%q) = %v, want %v", tt.link, got, tt.want)
			}
		})
	}
}

func TestScorer_RecencyBonus(t *testing.T) {
	scorer := newTestScorer()

	// One qualifying year adds exactly 0.5.
	base := scorer.Score("https://example.com", "old text")
	boosted := scorer.Score("https://example.com", "updated in 2023")
	if boosted != base+0.5 {
		t.Errorf("expected +0.5 bonus, base=%v boosted=%v", base, boosted)
	}

	// Multiple qualifying years still add 0.5 only once.
	multi := scorer.Score("https://example.com", "revised 2023, confirmed 2024")
	if multi != boosted {
		t.Errorf("bonus applied more than once: single=%v multi=%v", boosted, multi)
	}
}

func TestScorer_BonusClampedAtMax(t *testing.T) {
	scorer := newTestScorer()

	// Top tier plus recency bonus must not exceed the maximum.
	got := scorer.Score("https://www.nhs.uk/conditions/", "guidance updated 2024")
	if got != MaxScore {
		t.Errorf("Score = %v, want clamp at %v", got, MaxScore)
	}
}

func TestScorer_Bounds(t *testing.T) {
	scorer := newTestScorer()

	links := []string{
		"https://www.nhs.uk/a", "https://www.nih.gov/b", "https://webmd.com/c",
		"https://pubmed.example.org/d", "https://random.blog/e", "", ":::",
	}
	snippets := []string{"", "2022 2023 2024", "nothing", "year 1999"}

	for _, link := range links {
		for _, snippet := range snippets {
			got := scorer.Score(link, snippet)
			if got < MinScore || got > MaxScore {
				t.Errorf("Score(%q, %q) = %v out of [%v, %v]", link, snippet, got, MinScore, MaxScore)
			}
		}
	}
}

func TestScorer_TierMonotonicity(t *testing.T) {
	scorer := newTestScorer()

	const snippet = "constant snippet"
	top := scorer.Score("https://www.who.int/page", snippet)
	govEdu := scorer.Score("https://medicine.university.edu/page", snippet)
	fallback := scorer.Score("https://someblog.example.com/page", snippet)

	if top < govEdu {
		t.Errorf("top tier %v < gov/edu tier %v", top, govEdu)
	}
	if govEdu < fallback {
		t.Errorf("gov/edu tier %v < default tier %v", govEdu, fallback)
	}
}

func TestScorer_EmptyConfigFallsToDefault(t *testing.T) {
	scorer := NewScorer(model.TrustConfig{})

	if got := scorer.Score("https://www.nhs.uk/", "2024"); got != 3.0 {
		t.Errorf("Score with empty tiers = %v, want 3.0", got)
	}
}
