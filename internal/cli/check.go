package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/healthsift/healthsift/internal/session"
	"github.com/spf13/cobra"
)

var checkTimeout time.Duration

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <query>",
	Short: "Fact-check social media posts about a medical topic",
	Long: `Check retrieves posts from social platforms (Reddit,
HealthUnlocked) matching the query, penalizes their trust scores, and
fact-checks each post snippet against trusted guidelines with the
completion model.

Example:
  healthsift check "garlic cures covid"
  healthsift check "apple cider vinegar weight loss" --llm-provider ollama`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 3*time.Minute, "overall timeout for the fact-check")
	checkCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "completion provider (openai, anthropic, ollama)")
	checkCmd.Flags().StringVar(&llmModel, "llm-model", "", "completion model name")
}

func runCheck(cmd *cobra.Command, args []string) error {
	query := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	cfg := buildConfig()
	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	if err := cfg.ValidateSocial(); err != nil {
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
		fmt.Fprintf(os.Stderr, "Fact-checking: %s\n", query)
		fmt.Fprintln(os.Stderr)
	}

	renderCheckResult(s.CheckQuery(ctx, query))

	return nil
}
