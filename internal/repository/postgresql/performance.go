package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/segus-engineering/ops-backend-go/internal/domain/gamification"
	"github.com/segus-engineering/ops-backend-go/internal/pkg/database"
)

type performanceRepositoryImpl struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) gamification.PerformanceRepository {
	return &performanceRepositoryImpl{db: db}
}

const dailyPerformanceColumns = `
	id, employee_id, date, objective_id,
	completed_subtasks, worked_hours, overtime_hours,
	subtasks_goal_achieved, hours_goal_achieved, all_goals_achieved,
	daily_stars_earned, bonus_points, created_at, updated_at
`

func scanDailyPerformance(row pgx.Row) (gamification.DailyPerformance, error) {
	var p gamification.DailyPerformance
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Date, &p.ObjectiveID,
		&p.CompletedSubtasks, &p.WorkedHours, &p.OvertimeHours,
		&p.SubtasksGoalAchieved, &p.HoursGoalAchieved, &p.AllGoalsAchieved,
		&p.DailyStarsEarned, &p.BonusPoints, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// UpsertDaily implements gamification.PerformanceRepository.
func (r *performanceRepositoryImpl) UpsertDaily(ctx context.Context, performance gamification.DailyPerformance) (gamification.DailyPerformance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_performances (
			employee_id, date, objective_id,
			completed_subtasks, worked_hours, overtime_hours,
			subtasks_goal_achieved, hours_goal_achieved, all_goals_achieved,
			daily_stars_earned, bonus_points
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			objective_id = EXCLUDED.objective_id,
			completed_subtasks = EXCLUDED.completed_subtasks,
			worked_hours = EXCLUDED.worked_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			subtasks_goal_achieved = EXCLUDED.subtasks_goal_achieved,
			hours_goal_achieved = EXCLUDED.hours_goal_achieved,
			all_goals_achieved = EXCLUDED.all_goals_achieved,
			daily_stars_earned = EXCLUDED.daily_stars_earned,
			bonus_points = EXCLUDED.bonus_points,
			updated_at = NOW()
		RETURNING ` + dailyPerformanceColumns

	row := q.QueryRow(ctx, query,
		performance.EmployeeID, performance.Date, performance.ObjectiveID,
		performance.CompletedSubtasks, performance.WorkedHours, performance.OvertimeHours,
		performance.SubtasksGoalAchieved, performance.HoursGoalAchieved, performance.AllGoalsAchieved,
		performance.DailyStarsEarned, performance.BonusPoints,
	)
	upserted, err := scanDailyPerformance(row)
	if err != nil {
		return gamification.DailyPerformance{}, fmt.Errorf("failed to upsert daily performance: %w", err)
	}
	return upserted, nil
}

// GetDaily implements gamification.PerformanceRepository.
func (r *performanceRepositoryImpl) GetDaily(ctx context.Context, employeeID string, date time.Time) (*gamification.DailyPerformance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dailyPerformanceColumns + `
		FROM daily_performances
		WHERE employee_id = $1 AND date = $2::date
	`

	p, err := scanDailyPerformance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily performance: %w", err)
	}
	return &p, nil
}

func (r *performanceRepositoryImpl) listDaily(ctx context.Context, query string, args ...interface{}) ([]gamification.DailyPerformance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var performances []gamification.DailyPerformance
	for rows.Next() {
		p, err := scanDailyPerformance(rows)
		if err != nil {
			return nil, err
		}
		performances = append(performances, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return performances, nil
}

// ListDailyByMonth implements gamification.PerformanceRepository.
func (r *performanceRepositoryImpl) ListDailyByMonth(ctx context.Context, employeeID string, year, month int) ([]gamification.DailyPerformance, error) {
	query := `
		SELECT ` + dailyPerformanceColumns + `
		FROM daily_performances
		WHERE employee_id = $1
			AND EXTRACT(YEAR FROM date) = $2
			AND EXTRACT(MONTH FROM date) = $3
		ORDER BY date ASC
	`
	return r.listDaily(ctx, query, employeeID, year, month)
}

// ListDailyByEmployee implements gamification.PerformanceRepository.
func (r *performanceRepositoryImpl) ListDailyByEmployee(ctx context.Context, employeeID string) ([]gamification.DailyPerformance, error) {
	query := `
		SELECT ` + dailyPerformanceColumns + `
		FROM daily_performances
		WHERE employee_id = $1
		ORDER BY date ASC
	`
	return r.listDaily(ctx, query, employeeID)
}

const monthlyPerformanceColumns = `
	id, employee_id, year, month,
	total_worked_hours, total_overtime_hours, total_completed_subtasks, days_with_all_goals,
	regularity_stars, overtime_bonus_stars, total_monthly_stars, total_monthly_points,
	created_at, updated_at
`

func scanMonthlyPerformance(row pgx.Row) (gamification.MonthlyPerformance, error) {
	var p gamification.MonthlyPerformance
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Year, &p.Month,
		&p.TotalWorkedHours, &p.TotalOvertimeHours, &p.TotalCompletedSubtasks, &p.DaysWithAllGoals,
		&p.RegularityStars, &p.OvertimeBonusStars, &p.TotalMonthlyStars, &p.TotalMonthlyPoints,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// UpsertMonthly implements gamification.PerformanceRepository.
func (r *performanceRepositoryImpl) UpsertMonthly(ctx context.Context, performance gamification.MonthlyPerformance) (gamification.MonthlyPerformance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_performances (
			employee_id, year, month,
			total_worked_hours, total_overtime_hours, total_completed_subtasks, days_with_all_goals,
			regularity_stars, overtime_bonus_stars, total_monthly_stars, total_monthly_points
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id, year, month) DO UPDATE SET
			total_worked_hours = EXCLUDED.total_worked_hours,
			total_overtime_hours = EXCLUDED.total_overtime_hours,
			total_completed_subtasks = EXCLUDED.total_completed_subtasks,
			days_with_all_goals = EXCLUDED.days_with_all_goals,
			regularity_stars = EXCLUDED.regularity_stars,
			overtime_bonus_stars = EXCLUDED.overtime_bonus_stars,
			total_monthly_stars = EXCLUDED.total_monthly_stars,
			total_monthly_points = EXCLUDED.total_monthly_points,
			updated_at = NOW()
		RETURNING ` + monthlyPerformanceColumns

	row := q.QueryRow(ctx, query,
		performance.EmployeeID, performance.Year, performance.Month,
		performance.TotalWorkedHours, performance.TotalOvertimeHours,
		performance.TotalCompletedSubtasks, performance.DaysWithAllGoals,
		performance.RegularityStars, performance.OvertimeBonusStars,
		performance.TotalMonthlyStars, performance.TotalMonthlyPoints,
	)
	upserted, err := scanMonthlyPerformance(row)
	if err != nil {
		return gamification.MonthlyPerformance{}, fmt.Errorf("failed to upsert monthly performance: %w", err)
	}
	return upserted, nil
}

// GetMonthly implements gamification.PerformanceRepository.
func (r *performanceRepositoryImpl) GetMonthly(ctx context.Context, employeeID string, year, month int) (gamification.MonthlyPerformance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + monthlyPerformanceColumns + `
		FROM monthly_performances
		WHERE employee_id = $1 AND year = $2 AND month = $3
	`

	p, err := scanMonthlyPerformance(q.QueryRow(ctx, query, employeeID, year, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return gamification.MonthlyPerformance{}, gamification.ErrPerformanceNotFound
		}
		return gamification.MonthlyPerformance{}, fmt.Errorf("failed to get monthly performance: %w", err)
	}
	return p, nil
}

// ListEmployeeIDsWithDailyOn implements gamification.PerformanceRepository.
func (r *performanceRepositoryImpl) ListEmployeeIDsWithDailyOn(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT employee_id
		FROM daily_performances
		WHERE date = $1::date
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
