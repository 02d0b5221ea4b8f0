package gamification

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyObjective is an admin-set daily target for one employee.
// Unique per (employee, date).
type DailyObjective struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	TargetSubtasks int
	TargetHours    decimal.Decimal
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DailyPerformance holds one scored day. All derived fields come from
// ScoreDay and are never set independently. Unique per (employee, date).
type DailyPerformance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	ObjectiveID *string

	CompletedSubtasks int
	WorkedHours       decimal.Decimal
	OvertimeHours     decimal.Decimal

	SubtasksGoalAchieved bool
	HoursGoalAchieved    bool
	AllGoalsAchieved     bool

	DailyStarsEarned decimal.Decimal
	BonusPoints      int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthlyPerformance is the re-aggregation of a month's daily rows.
// Unique per (employee, year, month).
type MonthlyPerformance struct {
	ID         string
	EmployeeID string
	Year       int
	Month      int

	TotalWorkedHours       decimal.Decimal
	TotalOvertimeHours     decimal.Decimal
	TotalCompletedSubtasks int
	DaysWithAllGoals       int

	RegularityStars    decimal.Decimal
	OvertimeBonusStars decimal.Decimal
	TotalMonthlyStars  decimal.Decimal
	TotalMonthlyPoints int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type BadgeType string

const (
	BadgeTypePerformance BadgeType = "performance"
	BadgeTypeRegularity  BadgeType = "regularity"
	BadgeTypeOvertime    BadgeType = "overtime"
	BadgeTypePrestige    BadgeType = "prestige"
	BadgeTypeSpecial     BadgeType = "special"
)

// Badge is a catalog entry, independent of any employee.
type Badge struct {
	ID          string
	Name        string
	Description string
	BadgeType   BadgeType
	Icon        string
	Color       string

	RequiredStars  decimal.Decimal
	RequiredPoints int
	// RequiredMonths is stored for the catalog but not enforced by the
	// award rule.
	RequiredMonths int

	SalaryIncreasePercentage decimal.Decimal

	IsActive  bool
	CreatedAt time.Time
}

// EmployeeBadge records one earned badge with the stats snapshot at the
// time of earning. Unique per (employee, badge); immutable.
type EmployeeBadge struct {
	ID              string
	EmployeeID      string
	BadgeID         string
	EarnedDate      time.Time
	StarsAtEarning  decimal.Decimal
	PointsAtEarning int

	// DTO
	BadgeName *string
}

// EmployeeStats caches the full-history recompute for one employee.
type EmployeeStats struct {
	EmployeeID string

	TotalStars  decimal.Decimal
	TotalPoints int
	TotalBadges int

	TotalCompletedSubtasks int
	TotalWorkedHours       decimal.Decimal
	TotalOvertimeHours     decimal.Decimal

	CurrentRank  int
	CurrentLevel string

	TotalSalaryIncrease decimal.Decimal

	LastUpdated time.Time

	// DTO
	EmployeeName *string
}

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	EmployeeID   string
	EmployeeName string
	TotalStars   decimal.Decimal
	TotalPoints  int
	TotalBadges  int
	Level        string
}
