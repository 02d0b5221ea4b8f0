package gamification

import (
	"context"
	"time"
)

// ObjectiveRepository defines data access for daily objectives.
type ObjectiveRepository interface {
	// Create creates an objective; the (employee_id, date) unique
	// constraint rejects duplicates.
	Create(ctx context.Context, objective DailyObjective) (DailyObjective, error)

	// GetByEmployeeAndDate retrieves the objective for an employee on a
	// date. Returns nil when none is assigned.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*DailyObjective, error)

	// ListByEmployee retrieves objectives for an employee inside a date range
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]DailyObjective, error)
}

// PerformanceRepository defines data access for daily and monthly
// performance rows. Upserts are keyed on the unique constraints so
// concurrent recomputation of the same row degrades to last-write-wins
// of identical derived values.
type PerformanceRepository interface {
	// UpsertDaily inserts or replaces the (employee, date) row
	UpsertDaily(ctx context.Context, performance DailyPerformance) (DailyPerformance, error)

	// GetDaily retrieves the (employee, date) row. Returns nil when the
	// day was never scored.
	GetDaily(ctx context.Context, employeeID string, date time.Time) (*DailyPerformance, error)

	// ListDailyByMonth retrieves all daily rows of one employee-month
	ListDailyByMonth(ctx context.Context, employeeID string, year, month int) ([]DailyPerformance, error)

	// ListDailyByEmployee retrieves the full daily history of an employee
	ListDailyByEmployee(ctx context.Context, employeeID string) ([]DailyPerformance, error)

	// UpsertMonthly inserts or replaces the (employee, year, month) row
	UpsertMonthly(ctx context.Context, performance MonthlyPerformance) (MonthlyPerformance, error)

	// GetMonthly retrieves the (employee, year, month) row
	GetMonthly(ctx context.Context, employeeID string, year, month int) (MonthlyPerformance, error)

	// ListEmployeeIDsWithDailyOn lists employees that have a scored day
	// on the given date; feeds the nightly recompute job.
	ListEmployeeIDsWithDailyOn(ctx context.Context, date time.Time) ([]string, error)
}

// BadgeRepository defines data access for the badge catalog and earned
// badges.
type BadgeRepository interface {
	// CreateBadge adds a catalog entry
	CreateBadge(ctx context.Context, badge Badge) (Badge, error)

	// GetBadge retrieves a catalog entry by id
	GetBadge(ctx context.Context, id string) (Badge, error)

	// UpdateBadge replaces a catalog entry's mutable fields
	UpdateBadge(ctx context.Context, badge Badge) (Badge, error)

	// ListActiveBadges retrieves active catalog entries ordered by
	// required stars then points
	ListActiveBadges(ctx context.Context) ([]Badge, error)

	// ListBadges retrieves the full catalog
	ListBadges(ctx context.Context) ([]Badge, error)

	// AwardBadge inserts an EmployeeBadge. The (employee_id, badge_id)
	// unique constraint is the at-most-once guarantee: a duplicate
	// insert reports awarded=false with no error.
	AwardBadge(ctx context.Context, earned EmployeeBadge) (awarded bool, err error)

	// ListEarnedByEmployee retrieves an employee's earned badges
	ListEarnedByEmployee(ctx context.Context, employeeID string) ([]EmployeeBadge, error)

	// SumSalaryIncreaseByEmployee sums salary_increase_percentage over
	// the employee's earned badges
	SumSalaryIncreaseByEmployee(ctx context.Context, employeeID string) (string, error)
}

// StatsRepository defines data access for the cached employee stats.
type StatsRepository interface {
	// Upsert inserts or replaces the one-to-one stats row
	Upsert(ctx context.Context, stats EmployeeStats) (EmployeeStats, error)

	// GetByEmployee retrieves the stats row for an employee
	GetByEmployee(ctx context.Context, employeeID string) (EmployeeStats, error)

	// Leaderboard retrieves the top rows ordered by stars then points
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
