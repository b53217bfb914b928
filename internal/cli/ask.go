package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/healthsift/healthsift/internal/session"
	"github.com/spf13/cobra"
)

var (
	askAge      string
	askGender   string
	maxResults  int
	askTimeout  time.Duration
	llmProvider string
	llmModel    string
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a medical question and get a sourced answer",
	Long: `Ask retrieves snippets from trusted medical sites, scores each
source's credibility, and composes an answer with the completion
model. Alongside the answer you get:
- a severity level (Immediate / Urgent / Routine)
- proactive advisories for known risk keywords
- every source with its trust score

Example:
  healthsift ask "what causes chest pain"
  healthsift ask "is ibuprofen safe long term" --age 70 --gender female
  healthsift ask "persistent cough" --llm-provider ollama --llm-model llama3.1:8b`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askAge, "age", "", "your age (optional, prefixed onto the question)")
	askCmd.Flags().StringVar(&askGender, "gender", "", "your gender (optional, prefixed onto the question)")
	askCmd.Flags().IntVar(&maxResults, "max-results", 5, "maximum number of sources to retrieve")
	askCmd.Flags().DurationVar(&askTimeout, "timeout", 2*time.Minute, "overall timeout for the question")
	askCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "completion provider (openai, anthropic, ollama)")
	askCmd.Flags().StringVar(&llmModel, "llm-model", "", "completion model name")
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	cfg := buildConfig()
	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	if maxResults > 0 {
		cfg.Search.MaxResults = maxResults
	}

	// Fail fast on missing credentials
	if err := cfg.ValidateSearch(); err != nil {
		return err
	}
	if err := resolveLLMKey(cfg); err != nil {
		return err
	}

	s, err := session.New(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Question: %s\n", question)
		fmt.Fprintf(os.Stderr, "Provider: %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
		fmt.Fprintln(os.Stderr)
	}

	result := s.Ask(ctx, question, session.DemographicsPrefix(askAge, askGender))
	renderAskResult(result)

	return nil
}
