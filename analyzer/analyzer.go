package analyzer

import (
	"github.com/hrygo/restly/store/activitylog"
)

// Reduce consumes the ordered event sequence for one day and produces its
// DailyAnalysis. Single pass; counters are order-independent, only the
// work-minutes snapshot depends on position (see workMinutesFromLastEvent).
//
// An empty input yields the defined base case: all counters zero, empty
// maps, no insights. It is not an error.
func Reduce(events []activitylog.Event) DailyAnalysis {
	analysis := DailyAnalysis{
		HourlyActivity: HourlyActivity{},
		Insights:       []string{},
	}
	if len(events) == 0 {
		return analysis
	}

	analysis.TotalWorkMinutes = workMinutesFromLastEvent(events)

	for i := range events {
		event := &events[i]

		// Hourly bucketing wants a parseable timestamp; events without one
		// still count toward their event-type counter.
		if t, ok := event.Time(); ok {
			analysis.HourlyActivity[t.Hour()]++
		}

		switch event.EventType {
		case activitylog.EventBreakShown:
			analysis.TotalBreaks++
			switch event.DataString("break_type") {
			case activitylog.BreakTypeEyeCare:
				analysis.BreakTypes.EyeCare++
			case activitylog.BreakTypeCustomMessage:
				analysis.BreakTypes.CustomMessage++
			}

		case activitylog.EventBreakCompleted:
			analysis.BreaksCompleted++

		case activitylog.EventSessionStarted:
			if event.DataString("session_type") == activitylog.SessionTypeDeepWork {
				analysis.DeepWorkSessions++
			}

		case activitylog.EventCommandReceived:
			analysis.CommandsUsed++

		case activitylog.EventPauseToggled:
			analysis.PauseEvents++

		case activitylog.EventBreakRescheduled:
			analysis.RescheduleCount++
		}
	}

	analysis.BreakCompliance = BreakCompliance(analysis.TotalBreaks, analysis.BreaksCompleted)
	analysis.Insights = generateInsights(&analysis)

	return analysis
}

// workMinutesFromLastEvent reads total_work_minutes_today from the literal
// last event in append order, matching the desktop client, which snapshots
// its cumulative counter on every write. Events earlier in the log are
// never consulted; a final event without a system_state yields 0.
func workMinutesFromLastEvent(events []activitylog.Event) int {
	last := events[len(events)-1]
	if last.SystemState == nil {
		return 0
	}
	return last.SystemState.TotalWorkMinutesToday
}
