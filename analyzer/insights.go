package analyzer

import (
	"fmt"
	"sort"
	"strings"
)

// insightRule inspects the reduced metrics and may contribute one message.
// Rules are evaluated in declaration order and are independent of each
// other; co-occurring conditions all fire. Rule order is a contract: the
// insight list is presented to users and to the AI summarizer as-is.
type insightRule func(a *DailyAnalysis) (string, bool)

var insightRules = []insightRule{
	// Compliance rules share the one computed value, so low and high can
	// never fire together.
	func(a *DailyAnalysis) (string, bool) {
		if a.BreakCompliance < 50 {
			return "Low break compliance detected - consider adjusting break duration or frequency", true
		}
		if a.BreakCompliance > 90 {
			return "Excellent break compliance! You're taking good care of your eyes", true
		}
		return "", false
	},
	func(a *DailyAnalysis) (string, bool) {
		if a.DeepWorkSessions > 0 {
			return fmt.Sprintf("Used %d deep work session(s) - great for focused productivity", a.DeepWorkSessions), true
		}
		return "", false
	},
	func(a *DailyAnalysis) (string, bool) {
		// Vacuously false on a day with no suggested breaks.
		if float64(a.RescheduleCount) > float64(a.TotalBreaks)*0.3 && a.TotalBreaks > 0 {
			return "Frequent break rescheduling detected - consider adjusting default intervals", true
		}
		return "", false
	},
	func(a *DailyAnalysis) (string, bool) {
		if a.PauseEvents > 3 {
			return "Multiple pause/resume events - consider if current settings match your workflow", true
		}
		return "", false
	},
	func(a *DailyAnalysis) (string, bool) {
		if a.CommandsUsed > 5 {
			return "Active user of voice commands - you're making the most of Restly's features!", true
		}
		return "", false
	},
	peakHoursInsight,
}

func generateInsights(a *DailyAnalysis) []string {
	insights := []string{}
	for _, rule := range insightRules {
		if message, ok := rule(a); ok {
			insights = append(insights, message)
		}
	}
	return insights
}

// peakHoursInsight renders the top 3 hours by event count, descending, with
// ties broken by ascending hour number for determinism.
func peakHoursInsight(a *DailyAnalysis) (string, bool) {
	if len(a.HourlyActivity) == 0 {
		return "", false
	}

	type hourCount struct {
		hour  int
		count int
	}
	hours := make([]hourCount, 0, len(a.HourlyActivity))
	for hour, count := range a.HourlyActivity {
		hours = append(hours, hourCount{hour, count})
	}
	sort.Slice(hours, func(i, j int) bool {
		if hours[i].count != hours[j].count {
			return hours[i].count > hours[j].count
		}
		return hours[i].hour < hours[j].hour
	})

	if len(hours) > 3 {
		hours = hours[:3]
	}
	labels := make([]string, len(hours))
	for i, hc := range hours {
		labels[i] = fmt.Sprintf("%02d:00", hc.hour)
	}
	return "Most active hours: " + strings.Join(labels, ", "), true
}
