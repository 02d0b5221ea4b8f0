package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/segus-engineering/ops-backend-go/internal/domain/gamification"
	"github.com/segus-engineering/ops-backend-go/internal/pkg/database"
)

type statsRepositoryImpl struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) gamification.StatsRepository {
	return &statsRepositoryImpl{db: db}
}

const statsColumns = `
	employee_id, total_stars, total_points, total_badges,
	total_completed_subtasks, total_worked_hours, total_overtime_hours,
	current_rank, current_level, total_salary_increase, last_updated
`

func scanStats(row pgx.Row) (gamification.EmployeeStats, error) {
	var s gamification.EmployeeStats
	err := row.Scan(
		&s.EmployeeID, &s.TotalStars, &s.TotalPoints, &s.TotalBadges,
		&s.TotalCompletedSubtasks, &s.TotalWorkedHours, &s.TotalOvertimeHours,
		&s.CurrentRank, &s.CurrentLevel, &s.TotalSalaryIncrease, &s.LastUpdated,
	)
	return s, err
}

// Upsert implements gamification.StatsRepository. The rank is refreshed
// for all rows after the write so a single recompute cannot leave stale
// neighbours.
func (r *statsRepositoryImpl) Upsert(ctx context.Context, stats gamification.EmployeeStats) (gamification.EmployeeStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_stats (
			employee_id, total_stars, total_points, total_badges,
			total_completed_subtasks, total_worked_hours, total_overtime_hours,
			current_level, total_salary_increase, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (employee_id) DO UPDATE SET
			total_stars = EXCLUDED.total_stars,
			total_points = EXCLUDED.total_points,
			total_badges = EXCLUDED.total_badges,
			total_completed_subtasks = EXCLUDED.total_completed_subtasks,
			total_worked_hours = EXCLUDED.total_worked_hours,
			total_overtime_hours = EXCLUDED.total_overtime_hours,
			current_level = EXCLUDED.current_level,
			total_salary_increase = EXCLUDED.total_salary_increase,
			last_updated = NOW()
		RETURNING ` + statsColumns

	upserted, err := scanStats(q.QueryRow(ctx, query,
		stats.EmployeeID, stats.TotalStars, stats.TotalPoints, stats.TotalBadges,
		stats.TotalCompletedSubtasks, stats.TotalWorkedHours, stats.TotalOvertimeHours,
		stats.CurrentLevel, stats.TotalSalaryIncrease,
	))
	if err != nil {
		return gamification.EmployeeStats{}, fmt.Errorf("failed to upsert employee stats: %w", err)
	}

	rankQuery := `
		UPDATE employee_stats es
		SET current_rank = ranked.rank
		FROM (
			SELECT employee_id,
				RANK() OVER (ORDER BY total_stars DESC, total_points DESC) AS rank
			FROM employee_stats
		) ranked
		WHERE es.employee_id = ranked.employee_id
	`
	if _, err := q.Exec(ctx, rankQuery); err != nil {
		return gamification.EmployeeStats{}, fmt.Errorf("failed to refresh ranks: %w", err)
	}

	return upserted, nil
}

// GetByEmployee implements gamification.StatsRepository.
func (r *statsRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) (gamification.EmployeeStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT es.employee_id, es.total_stars, es.total_points, es.total_badges,
			es.total_completed_subtasks, es.total_worked_hours, es.total_overtime_hours,
			es.current_rank, es.current_level, es.total_salary_increase, es.last_updated,
			e.full_name
		FROM employee_stats es
		JOIN employees e ON e.id = es.employee_id
		WHERE es.employee_id = $1
	`

	var s gamification.EmployeeStats
	var employeeName string
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&s.EmployeeID, &s.TotalStars, &s.TotalPoints, &s.TotalBadges,
		&s.TotalCompletedSubtasks, &s.TotalWorkedHours, &s.TotalOvertimeHours,
		&s.CurrentRank, &s.CurrentLevel, &s.TotalSalaryIncrease, &s.LastUpdated,
		&employeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return gamification.EmployeeStats{}, gamification.ErrStatsNotFound
		}
		return gamification.EmployeeStats{}, fmt.Errorf("failed to get stats for employee %s: %w", employeeID, err)
	}

	s.EmployeeName = &employeeName
	return s, nil
}

// Leaderboard implements gamification.StatsRepository.
func (r *statsRepositoryImpl) Leaderboard(ctx context.Context, limit int) ([]gamification.LeaderboardEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT es.employee_id, e.full_name, es.total_stars, es.total_points,
			es.total_badges, es.current_level
		FROM employee_stats es
		JOIN employees e ON e.id = es.employee_id
		WHERE e.is_active = TRUE
		ORDER BY es.total_stars DESC, es.total_points DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []gamification.LeaderboardEntry
	for rows.Next() {
		var entry gamification.LeaderboardEntry
		err := rows.Scan(
			&entry.EmployeeID, &entry.EmployeeName, &entry.TotalStars,
			&entry.TotalPoints, &entry.TotalBadges, &entry.Level,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
