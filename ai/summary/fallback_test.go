package summary

import (
	"strings"
	"testing"

	"github.com/hrygo/restly/analyzer"
)

func TestFallbackSummarize(t *testing.T) {
	tests := []struct {
		name         string
		input        analyzer.AIInput
		wantContains []string
		wantAbsent   []string
	}{
		{
			name: "productive day",
			input: analyzer.AIInput{
				Date: "2026-08-28",
				ProductivityMetrics: analyzer.ProductivityMetrics{
					TotalWorkMinutes:    420,
					BreakComplianceRate: 92.5,
					DeepWorkSessions:    3,
				},
				BehaviorPatterns: analyzer.BehaviorPatterns{CommandsUsed: 4},
				Insights:         []string{"insight one", "insight two"},
			},
			wantContains: []string{
				"Daily Summary for 2026-08-28",
				"worked for 420 minutes with a 92.5% break compliance rate",
				"3 deep work session(s)",
				"Excellent break compliance!",
				"good use of Restly's features",
				"- insight one",
				"20-20-20 rule",
			},
		},
		{
			name: "quiet day",
			input: analyzer.AIInput{
				Date: "2026-08-29",
				ProductivityMetrics: analyzer.ProductivityMetrics{
					TotalWorkMinutes:    0,
					BreakComplianceRate: 0,
				},
			},
			wantContains: []string{
				"Consider using deep work sessions",
				"Try to improve break compliance",
				"Explore Restly's voice commands",
			},
			wantAbsent: []string{"## Key Insights"},
		},
		{
			name: "insights capped at three",
			input: analyzer.AIInput{
				Date:     "2026-08-30",
				Insights: []string{"one", "two", "three", "four"},
			},
			wantContains: []string{"- one", "- two", "- three"},
			wantAbsent:   []string{"- four"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := FallbackSummarize(tt.input)
			if resp.Source != "fallback_template" {
				t.Errorf("Source = %q, want %q", resp.Source, "fallback_template")
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(resp.Summary, want) {
					t.Errorf("summary missing %q:\n%s", want, resp.Summary)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(resp.Summary, absent) {
					t.Errorf("summary should not contain %q:\n%s", absent, resp.Summary)
				}
			}
		})
	}
}
