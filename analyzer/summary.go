package analyzer

import (
	"sort"
	"time"

	"github.com/hrygo/restly/store/activitylog"
)

// DailySummary wraps a DailyAnalysis with log-level metadata for one date.
type DailySummary struct {
	Date                string        `json:"date"`
	TotalActivities     int           `json:"total_activities"`
	ActiveDurationHours float64       `json:"active_duration_hours"`
	Analysis            DailyAnalysis `json:"analysis"`
	GeneratedAt         time.Time     `json:"generated_at"`
}

// ProductivityMetrics is the metric block of the AI-facing document.
type ProductivityMetrics struct {
	TotalWorkMinutes     int     `json:"total_work_minutes"`
	BreakComplianceRate  float64 `json:"break_compliance_rate"`
	DeepWorkSessions     int     `json:"deep_work_sessions"`
	TotalBreaksTaken     int     `json:"total_breaks_taken"`
	TotalBreaksSuggested int     `json:"total_breaks_suggested"`
}

// BehaviorPatterns is the behavior block of the AI-facing document.
type BehaviorPatterns struct {
	CommandsUsed       int    `json:"commands_used"`
	PauseResumeEvents  int    `json:"pause_resume_events"`
	BreakReschedules   int    `json:"break_reschedules"`
	PreferredBreakType string `json:"preferred_break_type"`
	PeakActivityHours  []int  `json:"peak_activity_hours"`
}

// AIInput is the condensed projection of a DailySummary handed to the
// external summarizer. It carries no raw events, only derived fields.
type AIInput struct {
	Date                  string              `json:"date"`
	ProductivityMetrics   ProductivityMetrics `json:"productivity_metrics"`
	BehaviorPatterns      BehaviorPatterns    `json:"behavior_patterns"`
	Insights              []string            `json:"insights"`
	RecommendationsNeeded []string            `json:"recommendations_needed"`
}

// PreferredBreakTypeNone is the sentinel for a day with no tracked breaks.
const PreferredBreakTypeNone = "none"

// recommendationCategories is the fixed list of recommendation categories
// requested from the summarizer, independent of the day's data.
var recommendationCategories = []string{
	"break_frequency",
	"work_session_optimization",
	"eye_health_habits",
	"productivity_improvements",
}

// BuildSummary combines the decoded event sequence and its analysis into a
// DailySummary for the given date.
func BuildSummary(date time.Time, events []activitylog.Event, analysis DailyAnalysis) DailySummary {
	return DailySummary{
		Date:                date.Format(activitylog.DateLayout),
		TotalActivities:     len(events),
		ActiveDurationHours: activeDurationHours(events),
		Analysis:            analysis,
		GeneratedAt:         time.Now(),
	}
}

// activeDurationHours is the spread between the chronologically earliest and
// latest parseable timestamps, in hours rounded to 1 decimal. Fewer than two
// parseable timestamps yield 0.
func activeDurationHours(events []activitylog.Event) float64 {
	var first, last time.Time
	parsed := 0
	for i := range events {
		t, ok := events[i].Time()
		if !ok {
			continue
		}
		if parsed == 0 {
			first, last = t, t
		} else {
			if t.Before(first) {
				first = t
			}
			if t.After(last) {
				last = t
			}
		}
		parsed++
	}
	if parsed < 2 {
		return 0
	}
	return round1(last.Sub(first).Hours())
}

// BuildAIInput condenses a DailySummary into the summarizer contract.
func BuildAIInput(summary DailySummary) AIInput {
	analysis := summary.Analysis

	hours := make([]int, 0, len(analysis.HourlyActivity))
	for hour := range analysis.HourlyActivity {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	return AIInput{
		Date: summary.Date,
		ProductivityMetrics: ProductivityMetrics{
			TotalWorkMinutes:     analysis.TotalWorkMinutes,
			BreakComplianceRate:  analysis.BreakCompliance,
			DeepWorkSessions:     analysis.DeepWorkSessions,
			TotalBreaksTaken:     analysis.BreaksCompleted,
			TotalBreaksSuggested: analysis.TotalBreaks,
		},
		BehaviorPatterns: BehaviorPatterns{
			CommandsUsed:       analysis.CommandsUsed,
			PauseResumeEvents:  analysis.PauseEvents,
			BreakReschedules:   analysis.RescheduleCount,
			PreferredBreakType: preferredBreakType(analysis.BreakTypes),
			PeakActivityHours:  hours,
		},
		Insights:              analysis.Insights,
		RecommendationsNeeded: append([]string(nil), recommendationCategories...),
	}
}

// preferredBreakType picks the break type with the highest count. Ties go to
// eye_care (declaration order, stable max scan); a day with no tracked
// breaks yields the "none" sentinel.
func preferredBreakType(counts BreakTypeCounts) string {
	if counts.EyeCare == 0 && counts.CustomMessage == 0 {
		return PreferredBreakTypeNone
	}
	if counts.CustomMessage > counts.EyeCare {
		return activitylog.BreakTypeCustomMessage
	}
	return activitylog.BreakTypeEyeCare
}
