// Package session orchestrates one interactive assistant session: triage,
// retrieval, answer composition, social fact-checking, and the append-only
// question history. The session owns all cross-call state; the components it
// drives are stateless.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/healthsift/healthsift/internal/compose"
	"github.com/healthsift/healthsift/internal/llm"
	"github.com/healthsift/healthsift/internal/model"
	"github.com/healthsift/healthsift/internal/search"
	"github.com/healthsift/healthsift/internal/triage"
	"github.com/healthsift/healthsift/internal/trust"
)

// ErrNoQuestion is returned by CheckSocial when no question has been asked
// yet in this session.
var ErrNoQuestion = fmt.Errorf("no question asked yet in this session")

// SocialRetriever retrieves penalized social records, per platform.
type SocialRetriever interface {
	Search(ctx context.Context, query string, perSite int) []model.SourceRecord
}

// Session holds the per-session state and the wired components.
type Session struct {
	classifier *triage.Classifier
	advisor    *triage.Advisor
	composer   *compose.Composer
	social     SocialRetriever
	checker    *compose.FactChecker
	perSite    int

	history      []model.HistoryEntry
	lastQuestion string
}

// New wires a session from configuration. The completion provider is
// constructed eagerly so a misconfigured provider fails here, at startup.
func New(cfg *model.Config) (*Session, error) {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("create completion provider: %w", err)
	}

	scorer := trust.NewScorer(cfg.Trust)
	client := search.NewClient(cfg.Search.APIKey, cfg.Search.BaseURL, cfg.Search.Timeout)
	medical := search.NewMedicalClient(client, scorer, cfg.Search)
	social := search.NewSocialClient(client, scorer, cfg.Search)

	return &Session{
		classifier: triage.NewClassifier(cfg.Triage),
		advisor:    triage.NewAdvisor(cfg.Triage),
		composer:   compose.NewComposer(medical, provider, cfg.Search.MaxResults),
		social:     social,
		checker:    compose.NewFactChecker(provider),
		perSite:    cfg.Search.ResultsPerSite,
	}, nil
}

// AskResult bundles everything rendered for one answered question.
type AskResult struct {
	Severity   model.SeverityLevel
	Advisories []string
	Answer     string
	Sources    []model.SourceRecord
}

// Ask answers one question and appends it to the history. Severity and
// advisories are derived from the bare question; the demographics prefix
// scopes only the retrieval and the model prompt.
func (s *Session) Ask(ctx context.Context, question, demographics string) AskResult {
	answer, sources := s.composer.Compose(ctx, question, demographics)

	result := AskResult{
		Severity:   s.classifier.Classify(question),
		Advisories: s.advisor.Advisories(question),
		Answer:     answer,
		Sources:    sources,
	}

	s.lastQuestion = question
	s.history = append(s.history, model.HistoryEntry{
		Question: question,
		Answer:   answer,
		Sources:  sources,
		Severity: result.Severity,
	})

	return result
}

// CheckedPost is one social record with its fact-check text.
type CheckedPost struct {
	Source    model.SourceRecord
	FactCheck string
}

// CheckResult bundles the social fact-check output for one query.
type CheckResult struct {
	Query      string
	Severity   model.SeverityLevel
	Advisories []string
	Posts      []CheckedPost
}

// CheckSocial fact-checks social posts for the last asked question.
func (s *Session) CheckSocial(ctx context.Context) (CheckResult, error) {
	if s.lastQuestion == "" {
		return CheckResult{}, ErrNoQuestion
	}
	return s.CheckQuery(ctx, s.lastQuestion), nil
}

// CheckQuery fact-checks social posts for an explicit query. Each snippet is
// verified with its own model call, strictly sequentially; a failed
// verification surfaces inline on its post without affecting the others.
func (s *Session) CheckQuery(ctx context.Context, query string) CheckResult {
	result := CheckResult{
		Query:      query,
		Severity:   s.classifier.Classify(query),
		Advisories: s.advisor.Advisories(query),
	}

	for _, record := range s.social.Search(ctx, query, s.perSite) {
		result.Posts = append(result.Posts, CheckedPost{
			Source:    record,
			FactCheck: s.checker.Verify(ctx, record.Snippet),
		})
	}

	return result
}

// History returns the session history, oldest first.
func (s *Session) History() []model.HistoryEntry {
	return s.history
}

// LastQuestion returns the most recently asked question, or "".
func (s *Session) LastQuestion() string {
	return s.lastQuestion
}

// DemographicsPrefix formats the optional sidebar demographics into the
// question prefix. Both fields empty means no prefix at all.
func DemographicsPrefix(age, gender string) string {
	if age == "" && gender == "" {
		return ""
	}
	return fmt.Sprintf("For a %s-year-old %s, ", age, strings.ToLower(gender))
}
