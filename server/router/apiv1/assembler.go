package apiv1

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/yuin/goldmark"

	"github.com/hrygo/restly/analyzer"
)

// DashboardData is the presentation document the frontend renders. It is a
// projection of the day's summary: already zero-filled, labeled, and scored,
// so the page never re-derives anything.
type DashboardData struct {
	Date             string                    `json:"date"`
	Timestamp        time.Time                 `json:"timestamp"`
	Metrics          DashboardMetrics          `json:"metrics"`
	Scores           DashboardScores           `json:"scores"`
	Rings            analyzer.Rings            `json:"rings"`
	HourlyActivity   []HourBucket              `json:"hourly_activity"`
	Insights         []string                  `json:"insights"`
	AISummary        string                    `json:"ai_summary"`
	BreakTypes       analyzer.BreakTypeCounts  `json:"break_types"`
	BehaviorPatterns analyzer.BehaviorPatterns `json:"behavior_patterns"`
}

type DashboardMetrics struct {
	WorkMinutes      int     `json:"work_minutes"`
	WorkHours        float64 `json:"work_hours"`
	BreakCompliance  float64 `json:"break_compliance"`
	DeepWorkSessions int     `json:"deep_work_sessions"`
	TotalBreaks      int     `json:"total_breaks"`
	BreaksCompleted  int     `json:"breaks_completed"`
	CommandsUsed     int     `json:"commands_used"`
	PauseEvents      int     `json:"pause_events"`
}

type DashboardScores struct {
	WorkScore    float64 `json:"work_score"`
	BreakScore   float64 `json:"break_score"`
	FocusScore   float64 `json:"focus_score"`
	OverallScore float64 `json:"overall_score"`
}

// HourBucket is one bar of the 24-hour activity chart.
type HourBucket struct {
	Hour          int    `json:"hour"`
	ActivityCount int    `json:"activity_count"`
	Label         string `json:"label"`
}

// RangeData is the multi-day response of /api/range, most recent day first.
type RangeData struct {
	DateRange string                  `json:"date_range"`
	Days      []analyzer.DailySummary `json:"days"`
}

func assembleDashboard(summaryDoc analyzer.DailySummary, scores analyzer.ScoreModel, aiSummary string) DashboardData {
	a := summaryDoc.Analysis
	aiInput := analyzer.BuildAIInput(summaryDoc)

	hourly := make([]HourBucket, 24)
	for hour := 0; hour < 24; hour++ {
		hourly[hour] = HourBucket{
			Hour:          hour,
			ActivityCount: a.HourlyActivity[hour],
			Label:         fmt.Sprintf("%02d:00", hour),
		}
	}

	return DashboardData{
		Date:      summaryDoc.Date,
		Timestamp: summaryDoc.GeneratedAt,
		Metrics: DashboardMetrics{
			WorkMinutes:      a.TotalWorkMinutes,
			WorkHours:        math.Round(float64(a.TotalWorkMinutes)/60*10) / 10,
			BreakCompliance:  a.BreakCompliance,
			DeepWorkSessions: a.DeepWorkSessions,
			TotalBreaks:      a.TotalBreaks,
			BreaksCompleted:  a.BreaksCompleted,
			CommandsUsed:     a.CommandsUsed,
			PauseEvents:      a.PauseEvents,
		},
		Scores: DashboardScores{
			WorkScore:    scores.WorkScore,
			BreakScore:   scores.BreakScore,
			FocusScore:   scores.FocusScore,
			OverallScore: scores.OverallScore,
		},
		Rings:            scores.Rings,
		HourlyActivity:   hourly,
		Insights:         a.Insights,
		AISummary:        aiSummary,
		BreakTypes:       a.BreakTypes,
		BehaviorPatterns: aiInput.BehaviorPatterns,
	}
}

// renderSummaryHTML converts the markdown summary into a standalone HTML
// fragment for format=html requests.
func renderSummaryHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
