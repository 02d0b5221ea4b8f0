package gamification

import (
	"github.com/shopspring/decimal"

	"github.com/segus-engineering/ops-backend-go/internal/pkg/validator"
)

// ========================================
// OBJECTIVE DTOs
// ========================================

type SetObjectiveRequest struct {
	EmployeeID     string `json:"employee_id"`
	Date           string `json:"date"` // YYYY-MM-DD, defaults to today
	TargetSubtasks int    `json:"target_subtasks"`
	TargetHours    string `json:"target_hours"` // decimal, defaults to 8.00
}

func (r *SetObjectiveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.TargetSubtasks < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "target_subtasks",
			Message: "target_subtasks must not be negative",
		})
	}

	if r.TargetHours != "" {
		hours, ok := validator.IsNonNegativeDecimal(r.TargetHours)
		if !ok || !validator.IsValidHours(hours) {
			errs = append(errs, validator.ValidationError{
				Field:   "target_hours",
				Message: "target_hours must be a decimal between 0 and 24",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ObjectiveResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	Date           string `json:"date"`
	TargetSubtasks int    `json:"target_subtasks"`
	TargetHours    string `json:"target_hours"`
	CreatedBy      string `json:"created_by"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// ========================================
// PERFORMANCE DTOs
// ========================================

type RecordDailyOutcomeRequest struct {
	EmployeeID        string `json:"employee_id"`
	Date              string `json:"date"` // YYYY-MM-DD
	CompletedSubtasks int    `json:"completed_subtasks"`
	// WorkedHours overrides the hours derived from completed work
	// sessions when provided.
	WorkedHours *string `json:"worked_hours,omitempty"`
}

func (r *RecordDailyOutcomeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.CompletedSubtasks < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "completed_subtasks",
			Message: "completed_subtasks must not be negative",
		})
	}

	if r.WorkedHours != nil {
		hours, ok := validator.IsNonNegativeDecimal(*r.WorkedHours)
		if !ok || !validator.IsValidHours(hours) {
			errs = append(errs, validator.ValidationError{
				Field:   "worked_hours",
				Message: "worked_hours must be a decimal between 0 and 24",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyPerformanceResponse struct {
	ID                   string  `json:"id"`
	EmployeeID           string  `json:"employee_id"`
	Date                 string  `json:"date"`
	ObjectiveID          *string `json:"objective_id,omitempty"`
	CompletedSubtasks    int     `json:"completed_subtasks"`
	WorkedHours          string  `json:"worked_hours"`
	OvertimeHours        string  `json:"overtime_hours"`
	SubtasksGoalAchieved bool    `json:"subtasks_goal_achieved"`
	HoursGoalAchieved    bool    `json:"hours_goal_achieved"`
	AllGoalsAchieved     bool    `json:"all_goals_achieved"`
	DailyStarsEarned     string  `json:"daily_stars_earned"`
	BonusPoints          int     `json:"bonus_points"`
}

type RecomputeMonthRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *RecomputeMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "year/month must form a valid calendar period",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyPerformanceResponse struct {
	ID                     string `json:"id"`
	EmployeeID             string `json:"employee_id"`
	Year                   int    `json:"year"`
	Month                  int    `json:"month"`
	TotalWorkedHours       string `json:"total_worked_hours"`
	TotalOvertimeHours     string `json:"total_overtime_hours"`
	TotalCompletedSubtasks int    `json:"total_completed_subtasks"`
	DaysWithAllGoals       int    `json:"days_with_all_goals"`
	RegularityStars        string `json:"regularity_stars"`
	OvertimeBonusStars     string `json:"overtime_bonus_stars"`
	TotalMonthlyStars      string `json:"total_monthly_stars"`
	TotalMonthlyPoints     int    `json:"total_monthly_points"`
}

// ========================================
// BADGE DTOs
// ========================================

type CreateBadgeRequest struct {
	Name                     string `json:"name"`
	Description              string `json:"description"`
	BadgeType                string `json:"badge_type"`
	Icon                     string `json:"icon"`
	Color                    string `json:"color"`
	RequiredStars            string `json:"required_stars"`
	RequiredPoints           int    `json:"required_points"`
	RequiredMonths           int    `json:"required_months"`
	SalaryIncreasePercentage string `json:"salary_increase_percentage"`
}

func (r *CreateBadgeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	validTypes := []string{
		string(BadgeTypePerformance),
		string(BadgeTypeRegularity),
		string(BadgeTypeOvertime),
		string(BadgeTypePrestige),
		string(BadgeTypeSpecial),
	}
	if !validator.IsInSlice(r.BadgeType, validTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "badge_type",
			Message: "badge_type must be one of: performance, regularity, overtime, prestige, special",
		})
	}

	if r.RequiredStars != "" {
		if _, ok := validator.IsNonNegativeDecimal(r.RequiredStars); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "required_stars",
				Message: "required_stars must be a non-negative decimal",
			})
		}
	}

	if r.RequiredPoints < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "required_points",
			Message: "required_points must not be negative",
		})
	}

	if r.RequiredMonths < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "required_months",
			Message: "required_months must not be negative",
		})
	}

	if r.SalaryIncreasePercentage != "" {
		if _, ok := validator.IsNonNegativeDecimal(r.SalaryIncreasePercentage); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "salary_increase_percentage",
				Message: "salary_increase_percentage must be a non-negative decimal",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBadgeRequest struct {
	Name                     *string `json:"name,omitempty"`
	Description              *string `json:"description,omitempty"`
	Icon                     *string `json:"icon,omitempty"`
	Color                    *string `json:"color,omitempty"`
	RequiredStars            *string `json:"required_stars,omitempty"`
	RequiredPoints           *int    `json:"required_points,omitempty"`
	RequiredMonths           *int    `json:"required_months,omitempty"`
	SalaryIncreasePercentage *string `json:"salary_increase_percentage,omitempty"`
	IsActive                 *bool   `json:"is_active,omitempty"`
}

func (r *UpdateBadgeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.RequiredStars != nil {
		if _, ok := validator.IsNonNegativeDecimal(*r.RequiredStars); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "required_stars",
				Message: "required_stars must be a non-negative decimal",
			})
		}
	}

	if r.RequiredPoints != nil && *r.RequiredPoints < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "required_points",
			Message: "required_points must not be negative",
		})
	}

	if r.RequiredMonths != nil && *r.RequiredMonths < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "required_months",
			Message: "required_months must not be negative",
		})
	}

	if r.SalaryIncreasePercentage != nil {
		if _, ok := validator.IsNonNegativeDecimal(*r.SalaryIncreasePercentage); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "salary_increase_percentage",
				Message: "salary_increase_percentage must be a non-negative decimal",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BadgeResponse struct {
	ID                       string `json:"id"`
	Name                     string `json:"name"`
	Description              string `json:"description"`
	BadgeType                string `json:"badge_type"`
	Icon                     string `json:"icon"`
	Color                    string `json:"color"`
	RequiredStars            string `json:"required_stars"`
	RequiredPoints           int    `json:"required_points"`
	RequiredMonths           int    `json:"required_months"`
	SalaryIncreasePercentage string `json:"salary_increase_percentage"`
	IsActive                 bool   `json:"is_active"`
}

type EarnedBadgeResponse struct {
	ID              string `json:"id"`
	BadgeID         string `json:"badge_id"`
	BadgeName       string `json:"badge_name,omitempty"`
	EarnedDate      string `json:"earned_date"`
	StarsAtEarning  string `json:"stars_at_earning"`
	PointsAtEarning int    `json:"points_at_earning"`
}

// ========================================
// STATS DTOs
// ========================================

type StatsResponse struct {
	EmployeeID             string                `json:"employee_id"`
	EmployeeName           *string               `json:"employee_name,omitempty"`
	TotalStars             string                `json:"total_stars"`
	TotalPoints            int                   `json:"total_points"`
	TotalBadges            int                   `json:"total_badges"`
	TotalCompletedSubtasks int                   `json:"total_completed_subtasks"`
	TotalWorkedHours       string                `json:"total_worked_hours"`
	TotalOvertimeHours     string                `json:"total_overtime_hours"`
	CurrentRank            int                   `json:"current_rank"`
	CurrentLevel           string                `json:"current_level"`
	TotalSalaryIncrease    string                `json:"total_salary_increase"`
	LastUpdated            string                `json:"last_updated"`
	NewlyAwardedBadges     []EarnedBadgeResponse `json:"newly_awarded_badges,omitempty"`
}

type LeaderboardEntryResponse struct {
	Rank        int    `json:"rank"`
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	TotalStars  string `json:"total_stars"`
	TotalPoints int    `json:"total_points"`
	TotalBadges int    `json:"total_badges"`
	Level       string `json:"level"`
}

// FormatStars renders a star decimal with the 2-place quantization the
// scoring rules guarantee.
func FormatStars(d decimal.Decimal) string {
	return d.StringFixed(2)
}
