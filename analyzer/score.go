package analyzer

// Daily goals behind the activity rings.
const (
	// WorkGoalMinutes is the fixed daily work goal: 8 hours.
	WorkGoalMinutes = 480
	// FocusGoalSessions saturates the focus score: 4 deep work sessions.
	FocusGoalSessions = 4
)

// Ring colors match the dashboard palette.
const (
	workRingColor  = "#74B9FF"
	breakRingColor = "#FFEAA7"
	focusRingColor = "#A29BFE"
)

// Ring is a bounded presentation of one metric against its daily goal,
// modeled after circular progress indicators.
type Ring struct {
	Current    int     `json:"current"`
	Goal       int     `json:"goal"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// Rings groups the three activity rings.
type Rings struct {
	Work   Ring `json:"work"`
	Breaks Ring `json:"breaks"`
	Focus  Ring `json:"focus"`
}

// ScoreModel holds the normalized 0-100 scores and their ring descriptors.
type ScoreModel struct {
	WorkScore    float64 `json:"work_score"`
	BreakScore   float64 `json:"break_score"`
	FocusScore   float64 `json:"focus_score"`
	OverallScore float64 `json:"overall_score"`
	Rings        Rings   `json:"rings"`
}

// Score maps a DailyAnalysis onto the scoring model. Scores are computed at
// full precision and rounded to 1 decimal only when published; the overall
// score is the unweighted mean of the three components.
func Score(analysis DailyAnalysis) ScoreModel {
	workScore := float64(analysis.TotalWorkMinutes) / WorkGoalMinutes * 100
	if workScore > 100 {
		workScore = 100
	}

	// Break compliance is already a 0-100 rate; passthrough.
	breakScore := analysis.BreakCompliance

	focusScore := float64(analysis.DeepWorkSessions) * 25
	if focusScore > 100 {
		focusScore = 100
	}

	overallScore := (workScore + breakScore + focusScore) / 3

	breaksGoal := analysis.TotalBreaks
	if breaksGoal < 1 {
		// Avoid a zero ring goal on a day with no suggested breaks.
		breaksGoal = 1
	}

	return ScoreModel{
		WorkScore:    round1(workScore),
		BreakScore:   round1(breakScore),
		FocusScore:   round1(focusScore),
		OverallScore: round1(overallScore),
		Rings: Rings{
			Work: Ring{
				Current:    analysis.TotalWorkMinutes,
				Goal:       WorkGoalMinutes,
				Percentage: round1(workScore),
				Color:      workRingColor,
			},
			Breaks: Ring{
				Current:    analysis.BreaksCompleted,
				Goal:       breaksGoal,
				Percentage: round1(breakScore),
				Color:      breakRingColor,
			},
			Focus: Ring{
				Current:    analysis.DeepWorkSessions,
				Goal:       FocusGoalSessions,
				Percentage: round1(focusScore),
				Color:      focusRingColor,
			},
		},
	}
}
