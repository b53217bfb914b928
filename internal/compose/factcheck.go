package compose

import (
	"context"
	"fmt"

	"github.com/healthsift/healthsift/internal/llm"
)

// FactChecker verifies social-media snippets against the completion model,
// one model call per snippet.
type FactChecker struct {
	provider llm.Provider
}

// NewFactChecker creates a fact checker over the given completion provider.
func NewFactChecker(provider llm.Provider) *FactChecker {
	return &FactChecker{provider: provider}
}

// Verify fact-checks a single snippet and returns the critique text. A
// completion failure yields an inline error string for this snippet only, so
// the caller's remaining snippets are unaffected.
func (f *FactChecker) Verify(ctx context.Context, snippet string) string {
	resp, err := f.provider.Complete(ctx, llm.CompletionRequest{
		Prompt: verifyPrompt(snippet),
	})
	if err != nil {
		return fmt.Sprintf("Error verifying this post: %v", err)
	}
	return resp.Text
}

// verifyPrompt instructs the model to sort the snippet's content into three
// labeled groups, citing the named reference authorities, and to close with a
// fixed reliability disclaimer.
func verifyPrompt(snippet string) string {
	return fmt.Sprintf(`Below is a social media post snippet from a health-related discussion. Verify the medical information presented in it.
Use trusted guidelines (e.g., NHS, WHO, CDC) and specify what is correct or incorrect.

Post:
"%s"

Respond clearly with bullet points:
- Valid claims
- Misinformation
- Any advice or warning

Always end with: "Social media content may not be fully reliable. Consult a healthcare provider."`, snippet)
}
