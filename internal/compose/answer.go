// Package compose assembles prompts from retrieved snippets and invokes the
// completion model: full answers for medical questions, and per-snippet
// fact-checks for social posts. Completion failures never escape as errors;
// each call site converts them to user-visible inline text.
package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/healthsift/healthsift/internal/llm"
	"github.com/healthsift/healthsift/internal/model"
)

// FallbackAnswer is returned verbatim when retrieval yields no sources; no
// model call is made in that case.
const FallbackAnswer = "Sorry, no reliable sources available now."

// disclaimer is appended to every model-generated answer.
const disclaimer = "\n\n**Disclaimer:** Always consult your healthcare provider."

// Retriever retrieves scored source records for a query.
type Retriever interface {
	Search(ctx context.Context, query string, maxResults int) []model.SourceRecord
}

// Composer answers medical questions from retrieved snippets.
type Composer struct {
	retriever  Retriever
	provider   llm.Provider
	maxResults int
}

// NewComposer creates a composer over the given retriever and completion
// provider.
func NewComposer(retriever Retriever, provider llm.Provider, maxResults int) *Composer {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &Composer{
		retriever:  retriever,
		provider:   provider,
		maxResults: maxResults,
	}
}

// Compose answers a question from up to maxResults retrieved sources. The
// optional demographics prefix ("For a 34-year-old male, ") scopes both the
// search and the prompt. Zero sources short-circuits to FallbackAnswer
// without a model call; a completion failure is converted to an inline error
// string with empty sources, never propagated.
func (c *Composer) Compose(ctx context.Context, question, demographics string) (string, []model.SourceRecord) {
	fullQuery := demographics + question

	sources := c.retriever.Search(ctx, fullQuery, c.maxResults)
	if len(sources) == 0 {
		return FallbackAnswer, nil
	}

	resp, err := c.provider.Complete(ctx, llm.CompletionRequest{
		Prompt: answerPrompt(fullQuery, sources),
	})
	if err != nil {
		return fmt.Sprintf("Completion API error: %v", err), nil
	}

	return resp.Text + disclaimer, sources
}

// answerPrompt embeds each source's title and snippet and instructs the model
// to cover both common and serious conditions, closing with a fixed safety
// phrase.
func answerPrompt(question string, sources []model.SourceRecord) string {
	var context strings.Builder
	for _, s := range sources {
		fmt.Fprintf(&context, "- **%s**: %s\n", s.Title, s.Snippet)
	}

	return fmt.Sprintf(`Answer clearly using snippets below.
Mention both common and serious conditions if symptoms provided.
End with: "Talk to a doctor to be sure."

Snippets:
%s
Question: %s

Answer:`, context.String(), question)
}
