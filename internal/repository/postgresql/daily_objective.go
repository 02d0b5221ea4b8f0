package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/segus-engineering/ops-backend-go/internal/domain/gamification"
	"github.com/segus-engineering/ops-backend-go/internal/pkg/database"
)

type objectiveRepositoryImpl struct {
	db *database.DB
}

func NewObjectiveRepository(db *database.DB) gamification.ObjectiveRepository {
	return &objectiveRepositoryImpl{db: db}
}

// Create implements gamification.ObjectiveRepository.
func (r *objectiveRepositoryImpl) Create(ctx context.Context, objective gamification.DailyObjective) (gamification.DailyObjective, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_objectives (employee_id, date, target_subtasks, target_hours, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, date, target_subtasks, target_hours, created_by, created_at, updated_at
	`

	var created gamification.DailyObjective
	err := q.QueryRow(ctx, query,
		objective.EmployeeID, objective.Date, objective.TargetSubtasks,
		objective.TargetHours, objective.CreatedBy,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.TargetSubtasks,
		&created.TargetHours, &created.CreatedBy, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return gamification.DailyObjective{}, fmt.Errorf("failed to create daily objective: %w", err)
	}
	return created, nil
}

// GetByEmployeeAndDate implements gamification.ObjectiveRepository.
func (r *objectiveRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*gamification.DailyObjective, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, target_subtasks, target_hours, created_by, created_at, updated_at
		FROM daily_objectives
		WHERE employee_id = $1 AND date = $2::date
	`

	var obj gamification.DailyObjective
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&obj.ID, &obj.EmployeeID, &obj.Date, &obj.TargetSubtasks,
		&obj.TargetHours, &obj.CreatedBy, &obj.CreatedAt, &obj.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily objective: %w", err)
	}
	return &obj, nil
}

// ListByEmployee implements gamification.ObjectiveRepository.
func (r *objectiveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]gamification.DailyObjective, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, target_subtasks, target_hours, created_by, created_at, updated_at
		FROM daily_objectives
		WHERE employee_id = $1 AND date >= $2::date AND date <= $3::date
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var objectives []gamification.DailyObjective
	for rows.Next() {
		var obj gamification.DailyObjective
		err := rows.Scan(
			&obj.ID, &obj.EmployeeID, &obj.Date, &obj.TargetSubtasks,
			&obj.TargetHours, &obj.CreatedBy, &obj.CreatedAt, &obj.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		objectives = append(objectives, obj)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return objectives, nil
}
