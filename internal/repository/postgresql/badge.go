package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/segus-engineering/ops-backend-go/internal/domain/gamification"
	"github.com/segus-engineering/ops-backend-go/internal/pkg/database"
)

type badgeRepositoryImpl struct {
	db *database.DB
}

func NewBadgeRepository(db *database.DB) gamification.BadgeRepository {
	return &badgeRepositoryImpl{db: db}
}

const badgeColumns = `
	id, name, description, badge_type, icon, color,
	required_stars, required_points, required_months,
	salary_increase_percentage, is_active, created_at
`

func scanBadge(row pgx.Row) (gamification.Badge, error) {
	var b gamification.Badge
	err := row.Scan(
		&b.ID, &b.Name, &b.Description, &b.BadgeType, &b.Icon, &b.Color,
		&b.RequiredStars, &b.RequiredPoints, &b.RequiredMonths,
		&b.SalaryIncreasePercentage, &b.IsActive, &b.CreatedAt,
	)
	return b, err
}

// CreateBadge implements gamification.BadgeRepository.
func (r *badgeRepositoryImpl) CreateBadge(ctx context.Context, badge gamification.Badge) (gamification.Badge, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO badges (
			name, description, badge_type, icon, color,
			required_stars, required_points, required_months,
			salary_increase_percentage, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + badgeColumns

	row := q.QueryRow(ctx, query,
		badge.Name, badge.Description, badge.BadgeType, badge.Icon, badge.Color,
		badge.RequiredStars, badge.RequiredPoints, badge.RequiredMonths,
		badge.SalaryIncreasePercentage, badge.IsActive,
	)
	created, err := scanBadge(row)
	if err != nil {
		return gamification.Badge{}, fmt.Errorf("failed to create badge: %w", err)
	}
	return created, nil
}

// GetBadge implements gamification.BadgeRepository.
func (r *badgeRepositoryImpl) GetBadge(ctx context.Context, id string) (gamification.Badge, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + badgeColumns + ` FROM badges WHERE id = $1`

	b, err := scanBadge(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return gamification.Badge{}, gamification.ErrBadgeNotFound
		}
		return gamification.Badge{}, fmt.Errorf("failed to get badge %s: %w", id, err)
	}
	return b, nil
}

// UpdateBadge implements gamification.BadgeRepository.
func (r *badgeRepositoryImpl) UpdateBadge(ctx context.Context, badge gamification.Badge) (gamification.Badge, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE badges
		SET name = $1, description = $2, icon = $3, color = $4,
			required_stars = $5, required_points = $6, required_months = $7,
			salary_increase_percentage = $8, is_active = $9
		WHERE id = $10
		RETURNING ` + badgeColumns

	row := q.QueryRow(ctx, query,
		badge.Name, badge.Description, badge.Icon, badge.Color,
		badge.RequiredStars, badge.RequiredPoints, badge.RequiredMonths,
		badge.SalaryIncreasePercentage, badge.IsActive, badge.ID,
	)
	updated, err := scanBadge(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return gamification.Badge{}, gamification.ErrBadgeNotFound
		}
		return gamification.Badge{}, fmt.Errorf("failed to update badge %s: %w", badge.ID, err)
	}
	return updated, nil
}

func (r *badgeRepositoryImpl) listBadges(ctx context.Context, query string) ([]gamification.Badge, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var badges []gamification.Badge
	for rows.Next() {
		b, err := scanBadge(rows)
		if err != nil {
			return nil, err
		}
		badges = append(badges, b)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return badges, nil
}

// ListActiveBadges implements gamification.BadgeRepository.
func (r *badgeRepositoryImpl) ListActiveBadges(ctx context.Context) ([]gamification.Badge, error) {
	query := `
		SELECT ` + badgeColumns + `
		FROM badges
		WHERE is_active = TRUE
		ORDER BY required_stars ASC, required_points ASC
	`
	return r.listBadges(ctx, query)
}

// ListBadges implements gamification.BadgeRepository.
func (r *badgeRepositoryImpl) ListBadges(ctx context.Context) ([]gamification.Badge, error) {
	query := `
		SELECT ` + badgeColumns + `
		FROM badges
		ORDER BY required_stars ASC, required_points ASC
	`
	return r.listBadges(ctx, query)
}

// AwardBadge implements gamification.BadgeRepository. The unique
// constraint on (employee_id, badge_id) makes the award idempotent:
// a second insert hits ON CONFLICT DO NOTHING and reports awarded=false.
func (r *badgeRepositoryImpl) AwardBadge(ctx context.Context, earned gamification.EmployeeBadge) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_badges (employee_id, badge_id, earned_date, stars_at_earning, points_at_earning)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, badge_id) DO NOTHING
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		earned.EmployeeID, earned.BadgeID, earned.EarnedDate,
		earned.StarsAtEarning, earned.PointsAtEarning,
	).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to award badge: %w", err)
	}

	return true, nil
}

// ListEarnedByEmployee implements gamification.BadgeRepository.
func (r *badgeRepositoryImpl) ListEarnedByEmployee(ctx context.Context, employeeID string) ([]gamification.EmployeeBadge, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT eb.id, eb.employee_id, eb.badge_id, eb.earned_date,
			eb.stars_at_earning, eb.points_at_earning, b.name
		FROM employee_badges eb
		JOIN badges b ON b.id = eb.badge_id
		WHERE eb.employee_id = $1
		ORDER BY eb.earned_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var earned []gamification.EmployeeBadge
	for rows.Next() {
		var eb gamification.EmployeeBadge
		var badgeName string
		err := rows.Scan(
			&eb.ID, &eb.EmployeeID, &eb.BadgeID, &eb.EarnedDate,
			&eb.StarsAtEarning, &eb.PointsAtEarning, &badgeName,
		)
		if err != nil {
			return nil, err
		}
		eb.BadgeName = &badgeName
		earned = append(earned, eb)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return earned, nil
}

// SumSalaryIncreaseByEmployee implements gamification.BadgeRepository.
func (r *badgeRepositoryImpl) SumSalaryIncreaseByEmployee(ctx context.Context, employeeID string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(b.salary_increase_percentage), 0)
		FROM employee_badges eb
		JOIN badges b ON b.id = eb.badge_id
		WHERE eb.employee_id = $1
	`

	var total string
	err := q.QueryRow(ctx, query, employeeID).Scan(&total)
	if err != nil {
		return "", fmt.Errorf("failed to sum salary increase for employee %s: %w", employeeID, err)
	}

	return total, nil
}
