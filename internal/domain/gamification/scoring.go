package gamification

import (
	"github.com/shopspring/decimal"
)

// Scoring constants. Targets fall back to the defaults when no
// objective was assigned, so a day can always be scored.
var (
	defaultTargetHours  = decimal.RequireFromString("8.00")
	dailyStarAward      = decimal.RequireFromString("0.25")
	overtimeBonusStars  = decimal.RequireFromString("0.50")
	overtimeBonusFloor  = decimal.NewFromInt(32)
	pointsPerExtraHour  = decimal.NewFromInt(10)
	levelExpertStars    = decimal.NewFromInt(50)
	levelAdvancedStars  = decimal.NewFromInt(20)
	levelIntermedStars  = decimal.NewFromInt(10)
)

const defaultTargetSubtasks = 2

// Targets are the resolved daily goals a day is scored against.
type Targets struct {
	Subtasks int
	Hours    decimal.Decimal
}

// DefaultTargets returns the built-in fallback used when an employee
// has no admin-assigned objective for the date.
func DefaultTargets() Targets {
	return Targets{
		Subtasks: defaultTargetSubtasks,
		Hours:    defaultTargetHours,
	}
}

// ResolveTargets picks the objective's targets when one exists,
// otherwise the defaults.
func ResolveTargets(objective *DailyObjective) Targets {
	if objective == nil {
		return DefaultTargets()
	}
	return Targets{
		Subtasks: objective.TargetSubtasks,
		Hours:    objective.TargetHours,
	}
}

// Outcome is the raw input of one day: what was reported by the
// task/attendance collaborators.
type Outcome struct {
	CompletedSubtasks int
	WorkedHours       decimal.Decimal
}

// DailyScore is the derived result of scoring one day.
type DailyScore struct {
	SubtasksGoalAchieved bool
	HoursGoalAchieved    bool
	AllGoalsAchieved     bool
	OvertimeHours        decimal.Decimal
	DailyStarsEarned     decimal.Decimal
	BonusPoints          int
}

// ScoreDay scores an outcome against resolved targets. Pure function:
// calling it twice with the same inputs yields the same score.
//
// The daily star is flat: 0.25 when both goals are met, 0.00 otherwise,
// with no partial credit. Points are 1 per completed sub-task plus 10
// per full overtime hour (truncated).
func ScoreDay(outcome Outcome, targets Targets) DailyScore {
	score := DailyScore{
		SubtasksGoalAchieved: outcome.CompletedSubtasks >= targets.Subtasks,
		HoursGoalAchieved:    outcome.WorkedHours.GreaterThanOrEqual(targets.Hours),
	}
	score.AllGoalsAchieved = score.SubtasksGoalAchieved && score.HoursGoalAchieved

	if outcome.WorkedHours.GreaterThan(targets.Hours) {
		score.OvertimeHours = outcome.WorkedHours.Sub(targets.Hours)
	} else {
		score.OvertimeHours = decimal.Zero.Round(2)
	}

	if score.AllGoalsAchieved {
		score.DailyStarsEarned = dailyStarAward
	} else {
		score.DailyStarsEarned = decimal.Zero.Round(2)
	}

	overtimePoints := int(score.OvertimeHours.Mul(pointsPerExtraHour).IntPart())
	score.BonusPoints = outcome.CompletedSubtasks + overtimePoints

	return score
}

// MonthlyTotals is the re-derived aggregate of one employee-month.
type MonthlyTotals struct {
	TotalWorkedHours       decimal.Decimal
	TotalOvertimeHours     decimal.Decimal
	TotalCompletedSubtasks int
	DaysWithAllGoals       int
	RegularityStars        decimal.Decimal
	OvertimeBonusStars     decimal.Decimal
	TotalMonthlyStars      decimal.Decimal
	TotalMonthlyPoints     int
}

// AggregateMonth re-derives a month from its daily rows. Regularity
// stars mirror the daily award (0.25 per all-goals day) computed from
// scratch, never incremented. The overtime bonus is 0.50 only when the
// month's overtime is strictly above 32 hours.
func AggregateMonth(days []DailyPerformance) MonthlyTotals {
	totals := MonthlyTotals{
		TotalWorkedHours:   decimal.Zero.Round(2),
		TotalOvertimeHours: decimal.Zero.Round(2),
	}

	for _, day := range days {
		totals.TotalWorkedHours = totals.TotalWorkedHours.Add(day.WorkedHours)
		totals.TotalOvertimeHours = totals.TotalOvertimeHours.Add(day.OvertimeHours)
		totals.TotalCompletedSubtasks += day.CompletedSubtasks
		totals.TotalMonthlyPoints += day.BonusPoints
		if day.AllGoalsAchieved {
			totals.DaysWithAllGoals++
		}
	}

	totals.RegularityStars = dailyStarAward.Mul(decimal.NewFromInt(int64(totals.DaysWithAllGoals)))

	if totals.TotalOvertimeHours.GreaterThan(overtimeBonusFloor) {
		totals.OvertimeBonusStars = overtimeBonusStars
	} else {
		totals.OvertimeBonusStars = decimal.Zero.Round(2)
	}

	totals.TotalMonthlyStars = totals.RegularityStars.Add(totals.OvertimeBonusStars)

	return totals
}

// Level labels, ordered high to low.
const (
	LevelExpert       = "Expert"
	LevelAdvanced     = "Avancé"
	LevelIntermediate = "Intermédiaire"
	LevelBeginner     = "Débutant"
)

// ComputeLevel classifies total stars into a level label. First match
// wins, evaluated high to low.
func ComputeLevel(totalStars decimal.Decimal) string {
	switch {
	case totalStars.GreaterThanOrEqual(levelExpertStars):
		return LevelExpert
	case totalStars.GreaterThanOrEqual(levelAdvancedStars):
		return LevelAdvanced
	case totalStars.GreaterThanOrEqual(levelIntermedStars):
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// Eligible reports whether current stats satisfy a badge's thresholds.
// RequiredMonths is deliberately not part of the rule.
func Eligible(stats EmployeeStats, badge Badge) bool {
	return stats.TotalStars.GreaterThanOrEqual(badge.RequiredStars) &&
		stats.TotalPoints >= badge.RequiredPoints
}
