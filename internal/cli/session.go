package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/healthsift/healthsift/internal/feedback"
	"github.com/healthsift/healthsift/internal/model"
	"github.com/healthsift/healthsift/internal/session"
	"github.com/spf13/cobra"
)

var (
	sessionAge    string
	sessionGender string
)

// sessionCmd represents the session command
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive question-and-answer session",
	Long: `Session starts an interactive loop where each line is treated as a
medical question. The session keeps a history of everything asked and
remembers the last question for social media fact-checking.

Commands inside the session:
  /check               fact-check social posts for the last question
  /history             show the session history, newest first
  /feedback <1-5> [comment]
                       submit a rating and optional comment
  /quit                end the session

Example:
  healthsift session
  healthsift session --age 45 --gender male`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.Flags().StringVar(&sessionAge, "age", "", "your age (optional, prefixed onto every question)")
	sessionCmd.Flags().StringVar(&sessionGender, "gender", "", "your gender (optional, prefixed onto every question)")
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()

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

	demographics := session.DemographicsPrefix(sessionAge, sessionGender)
	ctx := context.Background()

	fmt.Println("🩺 HealthSift interactive session. Type a medical question, or /quit to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "/quit" || line == "/exit":
			return scanner.Err()

		case line == "/check":
			result, err := s.CheckSocial(ctx)
			if err != nil {
				fmt.Println("Ask a question first to populate social media analysis.")
				continue
			}
			renderCheckResult(result)

		case line == "/history":
			renderHistory(s.History())

		case strings.HasPrefix(line, "/feedback"):
			if err := submitFeedback(ctx, cfg, strings.TrimSpace(strings.TrimPrefix(line, "/feedback"))); err != nil {
				fmt.Printf("Feedback failed: %v\n", err)
			} else {
				fmt.Println("✅ Thank you for your feedback!")
			}

		case strings.HasPrefix(line, "/"):
			fmt.Printf("Unknown command: %s\n", line)

		default:
			renderAskResult(s.Ask(ctx, line, demographics))
		}
		fmt.Println()
	}

	return scanner.Err()
}

// submitFeedback parses "<rating> [comment]" and appends a feedback row.
func submitFeedback(ctx context.Context, cfg *model.Config, input string) error {
	rating, comment := splitFeedback(input)
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}

	if err := cfg.ValidateFeedback(); err != nil {
		return err
	}

	sink := feedback.NewSheetSink(cfg.Feedback)
	return sink.AppendRow(ctx, []string{strings.Repeat("⭐", rating), comment})
}

func splitFeedback(input string) (int, string) {
	fields := strings.SplitN(input, " ", 2)
	if len(fields) == 0 || fields[0] == "" {
		return 0, ""
	}
	rating := 0
	fmt.Sscanf(fields[0], "%d", &rating)
	comment := ""
	if len(fields) == 2 {
		comment = strings.TrimSpace(fields[1])
	}
	return rating, comment
}
