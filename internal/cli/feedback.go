package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/healthsift/healthsift/internal/feedback"
	"github.com/spf13/cobra"
)

var (
	feedbackRating  int
	feedbackComment string
	feedbackTimeout time.Duration
)

// feedbackCmd represents the feedback command
var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Submit a rating and comment to the feedback sheet",
	Long: `Feedback appends a rating row to the configured Google Sheet.
The rating is rendered as stars, the same way the sheet shows it.

Example:
  healthsift feedback --rating 5
  healthsift feedback --rating 3 --comment "sources could be fresher"`,
	Args: cobra.NoArgs,
	RunE: runFeedback,
}

func init() {
	rootCmd.AddCommand(feedbackCmd)

	feedbackCmd.Flags().IntVar(&feedbackRating, "rating", 5, "rating from 1 to 5")
	feedbackCmd.Flags().StringVar(&feedbackComment, "comment", "", "free-form feedback text")
	feedbackCmd.Flags().DurationVar(&feedbackTimeout, "timeout", 30*time.Second, "timeout for the sheet append")
}

func runFeedback(cmd *cobra.Command, args []string) error {
	if feedbackRating < 1 || feedbackRating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", feedbackRating)
	}

	cfg := buildConfig()
	if err := cfg.ValidateFeedback(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), feedbackTimeout)
	defer cancel()

	sink := feedback.NewSheetSink(cfg.Feedback)
	if err := sink.AppendRow(ctx, []string{strings.Repeat("⭐", feedbackRating), feedbackComment}); err != nil {
		return fmt.Errorf("submit feedback: %w", err)
	}

	fmt.Println("✅ Thank you for your feedback!")
	return nil
}
