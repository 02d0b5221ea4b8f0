package gamification

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestResolveTargets_Defaults(t *testing.T) {
	targets := ResolveTargets(nil)
	assert.Equal(t, 2, targets.Subtasks)
	assert.True(t, targets.Hours.Equal(dec("8.00")))
}

func TestResolveTargets_FromObjective(t *testing.T) {
	obj := &DailyObjective{
		EmployeeID:     "emp-1",
		Date:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		TargetSubtasks: 10,
		TargetHours:    dec("6.50"),
	}
	targets := ResolveTargets(obj)
	assert.Equal(t, 10, targets.Subtasks)
	assert.True(t, targets.Hours.Equal(dec("6.50")))
}

func TestScoreDay_FullGoalDay(t *testing.T) {
	// objective 10 subtasks / 8h; outcome 10 subtasks / 10h
	targets := Targets{Subtasks: 10, Hours: dec("8.00")}
	score := ScoreDay(Outcome{CompletedSubtasks: 10, WorkedHours: dec("10.00")}, targets)

	assert.True(t, score.SubtasksGoalAchieved)
	assert.True(t, score.HoursGoalAchieved)
	assert.True(t, score.AllGoalsAchieved)
	assert.True(t, score.OvertimeHours.Equal(dec("2.00")), "overtime = %s", score.OvertimeHours)
	assert.True(t, score.DailyStarsEarned.Equal(dec("0.25")))
	assert.Equal(t, 30, score.BonusPoints) // 10 subtasks + 2h overtime * 10
}

func TestScoreDay_PartialGoalDay(t *testing.T) {
	targets := Targets{Subtasks: 10, Hours: dec("8.00")}
	score := ScoreDay(Outcome{CompletedSubtasks: 5, WorkedHours: dec("6.00")}, targets)

	assert.False(t, score.SubtasksGoalAchieved)
	assert.False(t, score.HoursGoalAchieved)
	assert.False(t, score.AllGoalsAchieved)
	assert.True(t, score.OvertimeHours.IsZero())
	assert.True(t, score.DailyStarsEarned.IsZero())
	assert.Equal(t, 5, score.BonusPoints)
}

func TestScoreDay_NoPartialStarCredit(t *testing.T) {
	targets := Targets{Subtasks: 10, Hours: dec("8.00")}

	// Hours met, subtasks one short: still zero stars
	score := ScoreDay(Outcome{CompletedSubtasks: 9, WorkedHours: dec("9.00")}, targets)
	assert.True(t, score.HoursGoalAchieved)
	assert.False(t, score.AllGoalsAchieved)
	assert.True(t, score.DailyStarsEarned.IsZero())

	// Subtasks met, hours a minute short: still zero stars
	score = ScoreDay(Outcome{CompletedSubtasks: 10, WorkedHours: dec("7.99")}, targets)
	assert.True(t, score.SubtasksGoalAchieved)
	assert.False(t, score.AllGoalsAchieved)
	assert.True(t, score.DailyStarsEarned.IsZero())
}

func TestScoreDay_StarIsAlwaysQuarterOrZero(t *testing.T) {
	targets := DefaultTargets()
	outcomes := []Outcome{
		{CompletedSubtasks: 0, WorkedHours: dec("0")},
		{CompletedSubtasks: 2, WorkedHours: dec("8.00")},
		{CompletedSubtasks: 50, WorkedHours: dec("24.00")},
		{CompletedSubtasks: 1, WorkedHours: dec("23.00")},
	}
	for _, outcome := range outcomes {
		score := ScoreDay(outcome, targets)
		ok := score.DailyStarsEarned.Equal(dec("0.25")) || score.DailyStarsEarned.IsZero()
		assert.True(t, ok, "stars = %s for outcome %+v", score.DailyStarsEarned, outcome)
	}
}

func TestScoreDay_OvertimePointsTruncated(t *testing.T) {
	targets := Targets{Subtasks: 0, Hours: dec("8.00")}
	// 1.99h overtime -> 19 points, not 20
	score := ScoreDay(Outcome{CompletedSubtasks: 3, WorkedHours: dec("9.99")}, targets)
	assert.Equal(t, 3+19, score.BonusPoints)
}

func TestScoreDay_Idempotent(t *testing.T) {
	targets := Targets{Subtasks: 4, Hours: dec("7.50")}
	outcome := Outcome{CompletedSubtasks: 6, WorkedHours: dec("9.25")}

	first := ScoreDay(outcome, targets)
	second := ScoreDay(outcome, targets)
	assert.Equal(t, first, second)
}

func perfectDay(date time.Time, overtime string) DailyPerformance {
	return DailyPerformance{
		EmployeeID:        "emp-1",
		Date:              date,
		CompletedSubtasks: 10,
		WorkedHours:       dec("8.00").Add(dec(overtime)),
		OvertimeHours:     dec(overtime),
		AllGoalsAchieved:  true,
		DailyStarsEarned:  dec("0.25"),
		BonusPoints:       10 + int(dec(overtime).Mul(decimal.NewFromInt(10)).IntPart()),
	}
}

func TestAggregateMonth_TwentyPerfectDays(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	var days []DailyPerformance
	for i := 0; i < 20; i++ {
		days = append(days, perfectDay(base.AddDate(0, 0, i), "2.00"))
	}

	totals := AggregateMonth(days)
	assert.True(t, totals.TotalOvertimeHours.Equal(dec("40.00")))
	assert.Equal(t, 20, totals.DaysWithAllGoals)
	assert.True(t, totals.RegularityStars.Equal(dec("5.00")))
	assert.True(t, totals.OvertimeBonusStars.Equal(dec("0.50")), "40h > 32h threshold")
	assert.True(t, totals.TotalMonthlyStars.Equal(dec("5.50")))
	assert.Equal(t, 20*30, totals.TotalMonthlyPoints)
}

func TestAggregateMonth_OvertimeBonusIsStrict(t *testing.T) {
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	// Exactly 32h of overtime: no bonus
	var days []DailyPerformance
	for i := 0; i < 16; i++ {
		days = append(days, perfectDay(base.AddDate(0, 0, i), "2.00"))
	}
	totals := AggregateMonth(days)
	assert.True(t, totals.TotalOvertimeHours.Equal(dec("32.00")))
	assert.True(t, totals.OvertimeBonusStars.IsZero())

	// One more minute-equivalent tips it over
	days = append(days, perfectDay(base.AddDate(0, 0, 16), "0.01"))
	totals = AggregateMonth(days)
	assert.True(t, totals.OvertimeBonusStars.Equal(dec("0.50")))
}

func TestAggregateMonth_EmptyMonth(t *testing.T) {
	totals := AggregateMonth(nil)
	assert.True(t, totals.TotalWorkedHours.IsZero())
	assert.True(t, totals.TotalMonthlyStars.IsZero())
	assert.Equal(t, 0, totals.TotalMonthlyPoints)
	assert.Equal(t, 0, totals.DaysWithAllGoals)
}

func TestAggregateMonth_Idempotent(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	days := []DailyPerformance{
		perfectDay(base, "1.00"),
		perfectDay(base.AddDate(0, 0, 1), "0.00"),
	}
	assert.Equal(t, AggregateMonth(days), AggregateMonth(days))
}

func TestComputeLevel(t *testing.T) {
	cases := []struct {
		stars string
		want  string
	}{
		{"0", LevelBeginner},
		{"9.75", LevelBeginner},
		{"10", LevelIntermediate},
		{"19.75", LevelIntermediate},
		{"20", LevelAdvanced},
		{"49.75", LevelAdvanced},
		{"50", LevelExpert},
		{"120.25", LevelExpert},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ComputeLevel(dec(c.stars)), "stars = %s", c.stars)
	}
}

func TestEligible(t *testing.T) {
	badge := Badge{
		Name:           "Gold",
		RequiredStars:  dec("10.00"),
		RequiredPoints: 500,
		RequiredMonths: 6, // stored but never part of the rule
	}

	stats := EmployeeStats{TotalStars: dec("10.00"), TotalPoints: 500}
	assert.True(t, Eligible(stats, badge))

	stats = EmployeeStats{TotalStars: dec("9.99"), TotalPoints: 10000}
	assert.False(t, Eligible(stats, badge))

	stats = EmployeeStats{TotalStars: dec("50.00"), TotalPoints: 499}
	assert.False(t, Eligible(stats, badge))
}
