package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTypicalDay(t *testing.T) {
	analysis := DailyAnalysis{
		TotalBreaks:      1,
		BreaksCompleted:  1,
		TotalWorkMinutes: 50,
		BreakCompliance:  100.0,
		DeepWorkSessions: 1,
	}

	model := Score(analysis)

	assert.Equal(t, 10.4, model.WorkScore)
	assert.Equal(t, 100.0, model.BreakScore)
	assert.Equal(t, 25.0, model.FocusScore)
	assert.Equal(t, 45.1, model.OverallScore)
}

func TestScoreBounds(t *testing.T) {
	tests := []struct {
		name     string
		analysis DailyAnalysis
	}{
		{"zero day", DailyAnalysis{}},
		{"overworked day", DailyAnalysis{TotalWorkMinutes: 2000, BreakCompliance: 100, DeepWorkSessions: 50}},
		{"exact goals", DailyAnalysis{TotalWorkMinutes: 480, BreakCompliance: 100, DeepWorkSessions: 4}},
		{"partial day", DailyAnalysis{TotalWorkMinutes: 123, BreakCompliance: 33.3, DeepWorkSessions: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := Score(tt.analysis)
			for name, score := range map[string]float64{
				"work_score":    model.WorkScore,
				"break_score":   model.BreakScore,
				"focus_score":   model.FocusScore,
				"overall_score": model.OverallScore,
			} {
				assert.GreaterOrEqual(t, score, 0.0, name)
				assert.LessOrEqual(t, score, 100.0, name)
			}
		})
	}
}

func TestScoreSaturation(t *testing.T) {
	model := Score(DailyAnalysis{TotalWorkMinutes: 960, DeepWorkSessions: 8, BreakCompliance: 100})

	assert.Equal(t, 100.0, model.WorkScore, "work score saturates at the 480-minute goal")
	assert.Equal(t, 100.0, model.FocusScore, "focus score saturates at 4 sessions")
	assert.Equal(t, 100.0, model.OverallScore)
}

func TestScoreRings(t *testing.T) {
	analysis := DailyAnalysis{
		TotalBreaks:      6,
		BreaksCompleted:  4,
		TotalWorkMinutes: 240,
		BreakCompliance:  66.7,
		DeepWorkSessions: 2,
	}

	model := Score(analysis)

	assert.Equal(t, Ring{Current: 240, Goal: 480, Percentage: 50.0, Color: "#74B9FF"}, model.Rings.Work)
	assert.Equal(t, Ring{Current: 4, Goal: 6, Percentage: 66.7, Color: "#FFEAA7"}, model.Rings.Breaks)
	assert.Equal(t, Ring{Current: 2, Goal: 4, Percentage: 50.0, Color: "#A29BFE"}, model.Rings.Focus)
}

func TestScoreBreaksRingGoalNeverZero(t *testing.T) {
	model := Score(DailyAnalysis{})
	assert.Equal(t, 1, model.Rings.Breaks.Goal, "breaks ring goal floors at 1 when no breaks were suggested")
	assert.Equal(t, 0, model.Rings.Breaks.Current)
}
