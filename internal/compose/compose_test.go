package compose

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/healthsift/healthsift/internal/llm"
	"github.com/healthsift/healthsift/internal/model"
)

// stubRetriever returns canned records and captures the query it was given.
type stubRetriever struct {
	records   []model.SourceRecord
	lastQuery string
}

func (s *stubRetriever) Search(ctx context.Context, query string, maxResults int) []model.SourceRecord {
	s.lastQuery = query
	return s.records
}

// stubProvider returns a fixed completion or error and captures the prompt.
type stubProvider struct {
	text       string
	err        error
	lastPrompt string
	calls      int
}

func (s *stubProvider) Name() string                         { return "stub" }
func (s *stubProvider) IsAvailable(ctx context.Context) bool { return true }

func (s *stubProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.calls++
	s.lastPrompt = req.Prompt
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{Text: s.text, Model: "stub"}, nil
}

func TestComposer_Compose(t *testing.T) {
	retriever := &stubRetriever{records: []model.SourceRecord{
		{Title: "Chest pain", Link: "https://www.nhs.uk/cp", Snippet: "Call 999 if severe.", TrustScore: 5.0},
		{Title: "Angina", Link: "https://www.mayoclinic.org/a", Snippet: "A type of chest pain.", TrustScore: 5.0},
	}}
	provider := &stubProvider{text: "Chest pain can have many causes. Talk to a doctor to be sure."}

	composer := NewComposer(retriever, provider, 5)
	answer, sources := composer.Compose(context.Background(), "what causes chest pain", "")

	if !strings.HasPrefix(answer, "Chest pain can have many causes.") {
		t.Errorf("unexpected answer: %q", answer)
	}
	if !strings.Contains(answer, "**Disclaimer:** Always consult your healthcare provider.") {
		t.Errorf("disclaimer missing from answer: %q", answer)
	}
	if len(sources) != 2 {
		t.Errorf("expected 2 sources, got %d", len(sources))
	}

	// Prompt embeds each source's title and snippet and the safety phrase.
	for _, want := range []string{
		"- **Chest pain**: Call 999 if severe.",
		"- **Angina**: A type of chest pain.",
		`End with: "Talk to a doctor to be sure."`,
		"Question: what causes chest pain",
	} {
		if !strings.Contains(provider.lastPrompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, provider.lastPrompt)
		}
	}
}

func TestComposer_DemographicsPrefix(t *testing.T) {
	retriever := &stubRetriever{records: []model.SourceRecord{{Title: "T", Snippet: "S"}}}
	provider := &stubProvider{text: "answer"}

	composer := NewComposer(retriever, provider, 5)
	composer.Compose(context.Background(), "is ibuprofen safe", "For a 70-year-old female, ")

	if retriever.lastQuery != "For a 70-year-old female, is ibuprofen safe" {
		t.Errorf("search query = %q", retriever.lastQuery)
	}
	if !strings.Contains(provider.lastPrompt, "Question: For a 70-year-old female, is ibuprofen safe") {
		t.Errorf("prompt not demographic-prefixed:\n%s", provider.lastPrompt)
	}
}

func TestComposer_ZeroSourcesShortCircuits(t *testing.T) {
	retriever := &stubRetriever{}
	provider := &stubProvider{text: "should not be called"}

	composer := NewComposer(retriever, provider, 5)
	answer, sources := composer.Compose(context.Background(), "anything", "")

	if answer != FallbackAnswer {
		t.Errorf("answer = %q, want fallback", answer)
	}
	if len(sources) != 0 {
		t.Errorf("expected empty sources, got %v", sources)
	}
	if provider.calls != 0 {
		t.Errorf("model called %d times despite zero sources", provider.calls)
	}
}

func TestComposer_CompletionFailureIsInline(t *testing.T) {
	retriever := &stubRetriever{records: []model.SourceRecord{{Title: "T", Snippet: "S"}}}
	provider := &stubProvider{err: fmt.Errorf("rate limited")}

	composer := NewComposer(retriever, provider, 5)
	answer, sources := composer.Compose(context.Background(), "q", "")

	if !strings.Contains(answer, "Completion API error") || !strings.Contains(answer, "rate limited") {
		t.Errorf("expected inline error containing the cause, got %q", answer)
	}
	if len(sources) != 0 {
		t.Errorf("expected empty sources on failure, got %v", sources)
	}
}

func TestFactChecker_Verify(t *testing.T) {
	provider := &stubProvider{text: "- Valid claims: hydration helps."}
	checker := NewFactChecker(provider)

	got := checker.Verify(context.Background(), "drinking water cures flu")
	if got != "- Valid claims: hydration helps." {
		t.Errorf("unexpected critique: %q", got)
	}

	for _, want := range []string{
		`"drinking water cures flu"`,
		"NHS, WHO, CDC",
		"Misinformation",
		"Social media content may not be fully reliable. Consult a healthcare provider.",
	} {
		if !strings.Contains(provider.lastPrompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, provider.lastPrompt)
		}
	}
}

func TestFactChecker_FailureIsolatedPerSnippet(t *testing.T) {
	provider := &stubProvider{err: fmt.Errorf("boom")}
	checker := NewFactChecker(provider)

	got := checker.Verify(context.Background(), "snippet")
	if !strings.Contains(got, "Error verifying this post") || !strings.Contains(got, "boom") {
		t.Errorf("expected inline per-snippet error, got %q", got)
	}

	// A second snippet still gets its own call.
	checker.Verify(context.Background(), "another")
	if provider.calls != 2 {
		t.Errorf("expected 2 independent calls, got %d", provider.calls)
	}
}
