package summary

import (
	"fmt"
	"strings"

	"github.com/hrygo/restly/analyzer"
	"github.com/hrygo/restly/internal/metrics"
)

// FallbackSummarize renders a template-based summary from the metrics alone.
// It backs the dashboard when no LLM API key is configured and never fails.
func FallbackSummarize(input analyzer.AIInput) *Response {
	m := input.ProductivityMetrics

	var b strings.Builder
	fmt.Fprintf(&b, "# Daily Summary for %s\n\n", input.Date)

	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "Today you worked for %d minutes with a %.1f%% break compliance rate.\n", m.TotalWorkMinutes, m.BreakComplianceRate)
	if m.DeepWorkSessions > 0 {
		fmt.Fprintf(&b, "You completed %d deep work session(s) - great for focused productivity!\n", m.DeepWorkSessions)
	} else {
		b.WriteString("Consider using deep work sessions for better focus.\n")
	}

	if len(input.Insights) > 0 {
		b.WriteString("\n## Key Insights\n")
		insights := input.Insights
		if len(insights) > 3 {
			insights = insights[:3]
		}
		for _, insight := range insights {
			fmt.Fprintf(&b, "- %s\n", insight)
		}
	}

	b.WriteString("\n## Recommendations\n")
	if m.BreakComplianceRate > 80 {
		b.WriteString("- Excellent break compliance! Keep it up!\n")
	} else {
		b.WriteString("- Try to improve break compliance for better eye health\n")
	}
	if input.BehaviorPatterns.CommandsUsed > 2 {
		b.WriteString("- You're making good use of Restly's features\n")
	} else {
		b.WriteString("- Explore Restly's voice commands for easier control\n")
	}
	b.WriteString("- Take regular 20-second breaks to look at something 20 feet away (20-20-20 rule)\n")

	b.WriteString("\n*This summary was generated locally. For AI analysis, configure an API key.*\n")

	metrics.SummaryRequests.WithLabelValues("fallback").Inc()
	return &Response{
		Summary: b.String(),
		Source:  "fallback_template",
	}
}
