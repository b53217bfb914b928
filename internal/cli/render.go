package cli

import (
	"fmt"
	"strings"

	"github.com/healthsift/healthsift/internal/model"
	"github.com/healthsift/healthsift/internal/session"
)

// stars renders a trust score as filled stars, truncating the fraction.
func stars(score float64) string {
	n := int(score)
	if n < 0 {
		n = 0
	}
	return strings.Repeat("⭐", n)
}

func renderAskResult(result session.AskResult) {
	fmt.Printf("🚨 Severity Level: %s\n\n", result.Severity.Label())

	fmt.Println("✅ Answer")
	fmt.Println(result.Answer)

	if len(result.Advisories) > 0 {
		fmt.Println()
		fmt.Println("⚠️  Proactive Health Advisory")
		for _, adv := range result.Advisories {
			fmt.Printf("  - %s\n", adv)
		}
	}

	if len(result.Sources) > 0 {
		fmt.Println()
		fmt.Println("📚 Sources with Trust Scores")
		for _, src := range result.Sources {
			fmt.Printf("  - %s (%s)\n    %s\n    > %s\n", src.Title, stars(src.TrustScore), src.Link, src.Snippet)
		}
	}
}

func renderCheckResult(result session.CheckResult) {
	fmt.Printf("🚨 Severity Level: %s\n", result.Severity.Label())

	if len(result.Advisories) > 0 {
		fmt.Println()
		fmt.Println("⚠️  Proactive Health Advisory")
		for _, adv := range result.Advisories {
			fmt.Printf("  - %s\n", adv)
		}
	}

	if len(result.Posts) == 0 {
		fmt.Println()
		fmt.Println("No relevant social media posts found.")
		return
	}

	fmt.Println()
	fmt.Println("🧾 Verified Posts from Social Media")
	for i, post := range result.Posts {
		fmt.Printf("\nPost %d: %s (%s)\n", i+1, post.Source.Title, stars(post.Source.TrustScore))
		fmt.Printf("  %s\n", post.Source.Link)
		fmt.Printf("  > %s\n", post.Source.Snippet)
		fmt.Println("  🔍 Fact-Check Result:")
		fmt.Println(indent(post.FactCheck, "  "))
	}
}

func renderHistory(entries []model.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Println("No questions asked yet.")
		return
	}

	// Newest first
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		fmt.Printf("Q%d: %s (%s)\n", len(entries)-i, entry.Question, entry.Severity.Label())
		fmt.Println(entry.Answer)
		fmt.Println("---")
	}
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
