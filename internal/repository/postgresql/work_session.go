package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/segus-engineering/ops-backend-go/internal/domain/worksession"
	"github.com/segus-engineering/ops-backend-go/internal/pkg/database"
)

// Durations are stored as whole seconds (BIGINT) so pause accounting
// survives round-trips without interval parsing.
type workSessionRepositoryImpl struct {
	db *database.DB
}

func NewWorkSessionRepository(db *database.DB) worksession.WorkSessionRepository {
	return &workSessionRepositoryImpl{db: db}
}

const workSessionColumns = `
	ws.id, ws.employee_id, ws.start_time, ws.end_time, ws.status,
	ws.pause_start_time, ws.total_pause_seconds, ws.total_work_seconds,
	ws.notes, ws.auto_closed, ws.created_at, ws.updated_at
`

func scanWorkSession(row pgx.Row) (worksession.WorkSession, error) {
	var s worksession.WorkSession
	var pauseSeconds int64
	var workSeconds *int64

	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.StartTime, &s.EndTime, &s.Status,
		&s.PauseStartTime, &pauseSeconds, &workSeconds,
		&s.Notes, &s.AutoClosed, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return worksession.WorkSession{}, err
	}

	s.TotalPauseTime = time.Duration(pauseSeconds) * time.Second
	if workSeconds != nil {
		d := time.Duration(*workSeconds) * time.Second
		s.TotalWorkTime = &d
	}
	return s, nil
}

func workSeconds(s worksession.WorkSession) *int64 {
	if s.TotalWorkTime == nil {
		return nil
	}
	v := int64(s.TotalWorkTime.Seconds())
	return &v
}

// Create implements worksession.WorkSessionRepository.
func (r *workSessionRepositoryImpl) Create(ctx context.Context, session worksession.WorkSession) (worksession.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_sessions (
			employee_id, start_time, status, total_pause_seconds, notes, auto_closed
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, start_time, end_time, status,
			pause_start_time, total_pause_seconds, total_work_seconds,
			notes, auto_closed, created_at, updated_at
	`

	row := q.QueryRow(ctx, query,
		session.EmployeeID, session.StartTime, session.Status,
		int64(session.TotalPauseTime.Seconds()), session.Notes, session.AutoClosed,
	)
	created, err := scanWorkSession(row)
	if err != nil {
		return worksession.WorkSession{}, fmt.Errorf("failed to create work session: %w", err)
	}
	return created, nil
}

// GetByID implements worksession.WorkSessionRepository.
func (r *workSessionRepositoryImpl) GetByID(ctx context.Context, id string) (worksession.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workSessionColumns + `, e.full_name
		FROM work_sessions ws
		JOIN employees e ON e.id = ws.employee_id
		WHERE ws.id = $1
	`

	var s worksession.WorkSession
	var pauseSeconds int64
	var totalWorkSeconds *int64
	var employeeName string
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.EmployeeID, &s.StartTime, &s.EndTime, &s.Status,
		&s.PauseStartTime, &pauseSeconds, &totalWorkSeconds,
		&s.Notes, &s.AutoClosed, &s.CreatedAt, &s.UpdatedAt,
		&employeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worksession.WorkSession{}, worksession.ErrSessionNotFound
		}
		return worksession.WorkSession{}, fmt.Errorf("failed to get work session %s: %w", id, err)
	}

	s.TotalPauseTime = time.Duration(pauseSeconds) * time.Second
	if totalWorkSeconds != nil {
		d := time.Duration(*totalWorkSeconds) * time.Second
		s.TotalWorkTime = &d
	}
	s.EmployeeName = &employeeName
	return s, nil
}

// GetOpenByEmployee implements worksession.WorkSessionRepository.
func (r *workSessionRepositoryImpl) GetOpenByEmployee(ctx context.Context, employeeID string) (*worksession.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workSessionColumns + `
		FROM work_sessions ws
		WHERE ws.employee_id = $1 AND ws.status IN ('active', 'paused')
		ORDER BY ws.start_time DESC
		LIMIT 1
	`

	session, err := scanWorkSession(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open session for employee %s: %w", employeeID, err)
	}
	return &session, nil
}

// Update implements worksession.WorkSessionRepository.
func (r *workSessionRepositoryImpl) Update(ctx context.Context, session worksession.WorkSession) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_sessions
		SET end_time = $1, status = $2, pause_start_time = $3,
			total_pause_seconds = $4, total_work_seconds = $5,
			notes = $6, auto_closed = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		session.EndTime, session.Status, session.PauseStartTime,
		int64(session.TotalPauseTime.Seconds()), workSeconds(session),
		session.Notes, session.AutoClosed, session.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worksession.ErrSessionNotFound
		}
		return fmt.Errorf("failed to update work session %s: %w", session.ID, err)
	}

	return nil
}

func buildSessionFilter(filter worksession.SessionFilter, args []interface{}) (string, []interface{}) {
	var conditions []string

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("ws.employee_id = $%d", len(args)))
	}
	if filter.Status != nil && *filter.Status != "" {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("ws.status = $%d", len(args)))
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("ws.start_time::date >= $%d", len(args)))
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("ws.start_time::date <= $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " AND " + strings.Join(conditions, " AND "), args
}

func (r *workSessionRepositoryImpl) list(ctx context.Context, baseCondition string, baseArgs []interface{}, filter worksession.SessionFilter) ([]worksession.WorkSession, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args := buildSessionFilter(filter, baseArgs)

	countQuery := `
		SELECT COUNT(*)
		FROM work_sessions ws
		WHERE ` + baseCondition + where

	var totalCount int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count work sessions: %w", err)
	}

	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := `
		SELECT ` + workSessionColumns + `, e.full_name
		FROM work_sessions ws
		JOIN employees e ON e.id = ws.employee_id
		WHERE ` + baseCondition + where + `
		ORDER BY ws.start_time ` + sortOrder + `
		LIMIT $` + fmt.Sprint(len(args)-1) + ` OFFSET $` + fmt.Sprint(len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var sessions []worksession.WorkSession
	for rows.Next() {
		var s worksession.WorkSession
		var pauseSeconds int64
		var totalWorkSeconds *int64
		var employeeName string
		err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.StartTime, &s.EndTime, &s.Status,
			&s.PauseStartTime, &pauseSeconds, &totalWorkSeconds,
			&s.Notes, &s.AutoClosed, &s.CreatedAt, &s.UpdatedAt,
			&employeeName,
		)
		if err != nil {
			return nil, 0, err
		}
		s.TotalPauseTime = time.Duration(pauseSeconds) * time.Second
		if totalWorkSeconds != nil {
			d := time.Duration(*totalWorkSeconds) * time.Second
			s.TotalWorkTime = &d
		}
		s.EmployeeName = &employeeName
		sessions = append(sessions, s)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return sessions, totalCount, nil
}

// ListByEmployee implements worksession.WorkSessionRepository.
func (r *workSessionRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter worksession.SessionFilter) ([]worksession.WorkSession, int64, error) {
	return r.list(ctx, "ws.employee_id = $1", []interface{}{employeeID}, filter)
}

// List implements worksession.WorkSessionRepository.
func (r *workSessionRepositoryImpl) List(ctx context.Context, filter worksession.SessionFilter) ([]worksession.WorkSession, int64, error) {
	return r.list(ctx, "TRUE", nil, filter)
}

// GetStaleOpen implements worksession.WorkSessionRepository.
func (r *workSessionRepositoryImpl) GetStaleOpen(ctx context.Context, cutoff time.Time) ([]worksession.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workSessionColumns + `
		FROM work_sessions ws
		WHERE ws.status IN ('active', 'paused') AND ws.start_time < $1
		ORDER BY ws.start_time ASC
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []worksession.WorkSession
	for rows.Next() {
		var s worksession.WorkSession
		var pauseSeconds int64
		var totalWorkSeconds *int64
		err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.StartTime, &s.EndTime, &s.Status,
			&s.PauseStartTime, &pauseSeconds, &totalWorkSeconds,
			&s.Notes, &s.AutoClosed, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		s.TotalPauseTime = time.Duration(pauseSeconds) * time.Second
		if totalWorkSeconds != nil {
			d := time.Duration(*totalWorkSeconds) * time.Second
			s.TotalWorkTime = &d
		}
		sessions = append(sessions, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// SumWorkedHoursByDate implements worksession.WorkSessionRepository.
func (r *workSessionRepositoryImpl) SumWorkedHoursByDate(ctx context.Context, employeeID string, date time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(total_work_seconds), 0)
		FROM work_sessions
		WHERE employee_id = $1 AND status = 'completed' AND start_time::date = $2::date
	`

	var totalSeconds int64
	err := q.QueryRow(ctx, query, employeeID, date).Scan(&totalSeconds)
	if err != nil {
		return 0, fmt.Errorf("failed to sum worked hours for employee %s: %w", employeeID, err)
	}

	return float64(totalSeconds) / 3600.0, nil
}
