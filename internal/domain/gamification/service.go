package gamification

import (
	"context"
)

// GamificationService exposes the scoring engine operations.
// Recompute operations are idempotent full re-derivations; they degrade
// to defaults or zero-valued results on missing upstream data instead
// of failing.
type GamificationService interface {
	// SetObjective creates the admin-assigned daily target for an
	// employee. Fails with ErrObjectiveExists on a duplicate date.
	SetObjective(ctx context.Context, createdBy string, req SetObjectiveRequest) (ObjectiveResponse, error)

	// GetMyObjectives lists an employee's objectives in a date range
	GetMyObjectives(ctx context.Context, employeeID string, from, to string) ([]ObjectiveResponse, error)

	// RecordDailyOutcome upserts and scores the (employee, date) day.
	// Worked hours come from the request override or the day's
	// completed work sessions.
	RecordDailyOutcome(ctx context.Context, req RecordDailyOutcomeRequest) (DailyPerformanceResponse, error)

	// RecomputeMonth re-aggregates one employee-month from its daily rows
	RecomputeMonth(ctx context.Context, req RecomputeMonthRequest) (MonthlyPerformanceResponse, error)

	// GetMonthly returns one stored employee-month aggregate
	GetMonthly(ctx context.Context, employeeID string, year, month int) (MonthlyPerformanceResponse, error)

	// RecomputeStats recomputes all-time stats from full history, then
	// checks and awards newly earned badges.
	RecomputeStats(ctx context.Context, employeeID string) (StatsResponse, error)

	// GetMyStats returns the cached stats row of an employee
	GetMyStats(ctx context.Context, employeeID string) (StatsResponse, error)

	// Leaderboard returns the ranked top employees
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntryResponse, error)

	// CreateBadge adds a badge catalog entry
	CreateBadge(ctx context.Context, req CreateBadgeRequest) (BadgeResponse, error)

	// UpdateBadge edits a badge catalog entry
	UpdateBadge(ctx context.Context, badgeID string, req UpdateBadgeRequest) (BadgeResponse, error)

	// ListBadges returns the badge catalog
	ListBadges(ctx context.Context) ([]BadgeResponse, error)

	// GetMyBadges returns an employee's earned badges
	GetMyBadges(ctx context.Context, employeeID string) ([]EarnedBadgeResponse, error)
}
