package gamification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/segus-engineering/ops-backend-go/internal/domain/employee"
	"github.com/segus-engineering/ops-backend-go/internal/domain/gamification"
	"github.com/segus-engineering/ops-backend-go/internal/domain/notification"
	"github.com/segus-engineering/ops-backend-go/internal/domain/worksession"
	"github.com/segus-engineering/ops-backend-go/internal/pkg/database"
	"github.com/segus-engineering/ops-backend-go/internal/pkg/validator"
)

type GamificationServiceImpl struct {
	db                    *database.DB
	objectiveRepository   gamification.ObjectiveRepository
	performanceRepository gamification.PerformanceRepository
	badgeRepository       gamification.BadgeRepository
	statsRepository       gamification.StatsRepository
	sessionRepository     worksession.WorkSessionRepository
	employeeRepository    employee.EmployeeRepository
	notificationService   notification.Service
	logger                *slog.Logger
}

func NewGamificationService(
	db *database.DB,
	objectiveRepository gamification.ObjectiveRepository,
	performanceRepository gamification.PerformanceRepository,
	badgeRepository gamification.BadgeRepository,
	statsRepository gamification.StatsRepository,
	sessionRepository worksession.WorkSessionRepository,
	employeeRepository employee.EmployeeRepository,
	notificationService notification.Service,
	logger *slog.Logger,
) gamification.GamificationService {
	return &GamificationServiceImpl{
		db:                    db,
		objectiveRepository:   objectiveRepository,
		performanceRepository: performanceRepository,
		badgeRepository:       badgeRepository,
		statsRepository:       statsRepository,
		sessionRepository:     sessionRepository,
		employeeRepository:    employeeRepository,
		notificationService:   notificationService,
		logger:                logger,
	}
}

// SetObjective implements gamification.GamificationService.
func (s *GamificationServiceImpl) SetObjective(ctx context.Context, createdBy string, req gamification.SetObjectiveRequest) (gamification.ObjectiveResponse, error) {
	if err := req.Validate(); err != nil {
		return gamification.ObjectiveResponse{}, err
	}

	emp, err := s.employeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return gamification.ObjectiveResponse{}, err
	}

	date := time.Now().Truncate(24 * time.Hour)
	if req.Date != "" {
		date, _ = time.Parse("2006-01-02", req.Date)
	}

	existing, err := s.objectiveRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return gamification.ObjectiveResponse{}, err
	}
	if existing != nil {
		return gamification.ObjectiveResponse{}, gamification.ErrObjectiveExists
	}

	// A zero sub-task target is a valid hours-only objective; the
	// built-in targets only apply to days with no objective at all.
	targetHours := gamification.DefaultTargets().Hours
	if req.TargetHours != "" {
		targetHours, _ = decimal.NewFromString(req.TargetHours)
	}

	created, err := s.objectiveRepository.Create(ctx, gamification.DailyObjective{
		EmployeeID:     req.EmployeeID,
		Date:           date,
		TargetSubtasks: req.TargetSubtasks,
		TargetHours:    targetHours,
		CreatedBy:      createdBy,
	})
	if err != nil {
		return gamification.ObjectiveResponse{}, fmt.Errorf("failed to set objective: %w", err)
	}

	s.queueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: emp.ID,
		SenderID:    &createdBy,
		Type:        notification.TypeObjectiveAssigned,
		Title:       "New daily objective",
		Message:     fmt.Sprintf("Your objective for %s: %d sub-tasks, %s hours", created.Date.Format("2006-01-02"), created.TargetSubtasks, created.TargetHours.StringFixed(2)),
		Data: map[string]interface{}{
			"objective_id": created.ID,
			"date":         created.Date.Format("2006-01-02"),
		},
	})

	return toObjectiveResponse(created), nil
}

// GetMyObjectives implements gamification.GamificationService.
func (s *GamificationServiceImpl) GetMyObjectives(ctx context.Context, employeeID string, from, to string) ([]gamification.ObjectiveResponse, error) {
	toDate := time.Now()
	fromDate := toDate.AddDate(0, -1, 0)

	if from != "" {
		parsed, ok := validatorDate(from)
		if !ok {
			return nil, invalidDateError("from")
		}
		fromDate = parsed
	}
	if to != "" {
		parsed, ok := validatorDate(to)
		if !ok {
			return nil, invalidDateError("to")
		}
		toDate = parsed
	}

	objectives, err := s.objectiveRepository.ListByEmployee(ctx, employeeID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}

	responses := make([]gamification.ObjectiveResponse, 0, len(objectives))
	for _, obj := range objectives {
		responses = append(responses, toObjectiveResponse(obj))
	}
	return responses, nil
}

// RecordDailyOutcome implements gamification.GamificationService.
func (s *GamificationServiceImpl) RecordDailyOutcome(ctx context.Context, req gamification.RecordDailyOutcomeRequest) (gamification.DailyPerformanceResponse, error) {
	if err := req.Validate(); err != nil {
		return gamification.DailyPerformanceResponse{}, err
	}

	emp, err := s.employeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return gamification.DailyPerformanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	objective, err := s.objectiveRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return gamification.DailyPerformanceResponse{}, err
	}
	targets := gamification.ResolveTargets(objective)

	var workedHours decimal.Decimal
	if req.WorkedHours != nil {
		workedHours, _ = decimal.NewFromString(*req.WorkedHours)
	} else {
		hours, err := s.sessionRepository.SumWorkedHoursByDate(ctx, req.EmployeeID, date)
		if err != nil {
			return gamification.DailyPerformanceResponse{}, err
		}
		workedHours = decimal.NewFromFloat(hours).Round(2)
	}

	score := gamification.ScoreDay(gamification.Outcome{
		CompletedSubtasks: req.CompletedSubtasks,
		WorkedHours:       workedHours,
	}, targets)

	performance := gamification.DailyPerformance{
		EmployeeID:           req.EmployeeID,
		Date:                 date,
		CompletedSubtasks:    req.CompletedSubtasks,
		WorkedHours:          workedHours,
		OvertimeHours:        score.OvertimeHours,
		SubtasksGoalAchieved: score.SubtasksGoalAchieved,
		HoursGoalAchieved:    score.HoursGoalAchieved,
		AllGoalsAchieved:     score.AllGoalsAchieved,
		DailyStarsEarned:     score.DailyStarsEarned,
		BonusPoints:          score.BonusPoints,
	}
	if objective != nil {
		performance.ObjectiveID = &objective.ID
	}

	upserted, err := s.performanceRepository.UpsertDaily(ctx, performance)
	if err != nil {
		return gamification.DailyPerformanceResponse{}, fmt.Errorf("failed to record daily outcome: %w", err)
	}

	if upserted.AllGoalsAchieved {
		s.queueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: emp.ID,
			Type:        notification.TypeObjectiveMet,
			Title:       "Daily objective achieved",
			Message:     fmt.Sprintf("You met all goals on %s and earned %s star", req.Date, gamification.FormatStars(upserted.DailyStarsEarned)),
			Data: map[string]interface{}{
				"date":         req.Date,
				"stars_earned": gamification.FormatStars(upserted.DailyStarsEarned),
				"bonus_points": upserted.BonusPoints,
			},
		})
	}

	return toDailyPerformanceResponse(upserted), nil
}

// RecomputeMonth implements gamification.GamificationService.
func (s *GamificationServiceImpl) RecomputeMonth(ctx context.Context, req gamification.RecomputeMonthRequest) (gamification.MonthlyPerformanceResponse, error) {
	if err := req.Validate(); err != nil {
		return gamification.MonthlyPerformanceResponse{}, err
	}

	if _, err := s.employeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return gamification.MonthlyPerformanceResponse{}, err
	}

	days, err := s.performanceRepository.ListDailyByMonth(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return gamification.MonthlyPerformanceResponse{}, err
	}

	totals := gamification.AggregateMonth(days)

	upserted, err := s.performanceRepository.UpsertMonthly(ctx, gamification.MonthlyPerformance{
		EmployeeID:             req.EmployeeID,
		Year:                   req.Year,
		Month:                  req.Month,
		TotalWorkedHours:       totals.TotalWorkedHours,
		TotalOvertimeHours:     totals.TotalOvertimeHours,
		TotalCompletedSubtasks: totals.TotalCompletedSubtasks,
		DaysWithAllGoals:       totals.DaysWithAllGoals,
		RegularityStars:        totals.RegularityStars,
		OvertimeBonusStars:     totals.OvertimeBonusStars,
		TotalMonthlyStars:      totals.TotalMonthlyStars,
		TotalMonthlyPoints:     totals.TotalMonthlyPoints,
	})
	if err != nil {
		return gamification.MonthlyPerformanceResponse{}, fmt.Errorf("failed to recompute month: %w", err)
	}

	return toMonthlyPerformanceResponse(upserted), nil
}

// GetMonthly implements gamification.GamificationService.
func (s *GamificationServiceImpl) GetMonthly(ctx context.Context, employeeID string, year, month int) (gamification.MonthlyPerformanceResponse, error) {
	monthly, err := s.performanceRepository.GetMonthly(ctx, employeeID, year, month)
	if err != nil {
		return gamification.MonthlyPerformanceResponse{}, err
	}
	return toMonthlyPerformanceResponse(monthly), nil
}

// RecomputeStats implements gamification.GamificationService.
// Stats are always re-derived by summing the full daily history;
// nothing is incremented in place. Monthly overtime bonuses live on
// the monthly rows only and never feed the all-time star total.
func (s *GamificationServiceImpl) RecomputeStats(ctx context.Context, employeeID string) (gamification.StatsResponse, error) {
	if _, err := s.employeeRepository.GetByID(ctx, employeeID); err != nil {
		return gamification.StatsResponse{}, err
	}

	days, err := s.performanceRepository.ListDailyByEmployee(ctx, employeeID)
	if err != nil {
		return gamification.StatsResponse{}, err
	}

	stats := gamification.EmployeeStats{
		EmployeeID:         employeeID,
		TotalStars:         decimal.Zero.Round(2),
		TotalWorkedHours:   decimal.Zero.Round(2),
		TotalOvertimeHours: decimal.Zero.Round(2),
	}
	for _, day := range days {
		stats.TotalStars = stats.TotalStars.Add(day.DailyStarsEarned)
		stats.TotalPoints += day.BonusPoints
		stats.TotalCompletedSubtasks += day.CompletedSubtasks
		stats.TotalWorkedHours = stats.TotalWorkedHours.Add(day.WorkedHours)
		stats.TotalOvertimeHours = stats.TotalOvertimeHours.Add(day.OvertimeHours)
	}

	earned, err := s.badgeRepository.ListEarnedByEmployee(ctx, employeeID)
	if err != nil {
		return gamification.StatsResponse{}, err
	}
	stats.TotalBadges = len(earned)

	salaryIncrease, err := s.badgeRepository.SumSalaryIncreaseByEmployee(ctx, employeeID)
	if err != nil {
		return gamification.StatsResponse{}, err
	}
	stats.TotalSalaryIncrease, _ = decimal.NewFromString(salaryIncrease)

	stats.CurrentLevel = gamification.ComputeLevel(stats.TotalStars)

	upserted, err := s.statsRepository.Upsert(ctx, stats)
	if err != nil {
		return gamification.StatsResponse{}, fmt.Errorf("failed to upsert stats: %w", err)
	}

	newlyAwarded, err := s.checkAndAwardBadges(ctx, upserted)
	if err != nil {
		return gamification.StatsResponse{}, err
	}

	if len(newlyAwarded) > 0 {
		// New badges change the badge count and pay impact; fold them in.
		upserted.TotalBadges += len(newlyAwarded)
		salaryIncrease, err = s.badgeRepository.SumSalaryIncreaseByEmployee(ctx, employeeID)
		if err != nil {
			return gamification.StatsResponse{}, err
		}
		upserted.TotalSalaryIncrease, _ = decimal.NewFromString(salaryIncrease)
		upserted, err = s.statsRepository.Upsert(ctx, upserted)
		if err != nil {
			return gamification.StatsResponse{}, fmt.Errorf("failed to upsert stats: %w", err)
		}
	}

	resp := toStatsResponse(upserted)
	resp.NewlyAwardedBadges = newlyAwarded
	return resp, nil
}

// checkAndAwardBadges awards every active badge the stats now satisfy.
// The unique constraint behind AwardBadge keeps re-runs from
// double-awarding.
func (s *GamificationServiceImpl) checkAndAwardBadges(ctx context.Context, stats gamification.EmployeeStats) ([]gamification.EarnedBadgeResponse, error) {
	badges, err := s.badgeRepository.ListActiveBadges(ctx)
	if err != nil {
		return nil, err
	}

	var newlyAwarded []gamification.EarnedBadgeResponse
	for _, badge := range badges {
		if !gamification.Eligible(stats, badge) {
			continue
		}

		earnedDate := time.Now()
		awarded, err := s.badgeRepository.AwardBadge(ctx, gamification.EmployeeBadge{
			EmployeeID:      stats.EmployeeID,
			BadgeID:         badge.ID,
			EarnedDate:      earnedDate,
			StarsAtEarning:  stats.TotalStars,
			PointsAtEarning: stats.TotalPoints,
		})
		if err != nil {
			return nil, err
		}
		if !awarded {
			continue
		}

		newlyAwarded = append(newlyAwarded, gamification.EarnedBadgeResponse{
			BadgeID:         badge.ID,
			BadgeName:       badge.Name,
			EarnedDate:      earnedDate.Format("2006-01-02"),
			StarsAtEarning:  gamification.FormatStars(stats.TotalStars),
			PointsAtEarning: stats.TotalPoints,
		})

		s.queueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: stats.EmployeeID,
			Type:        notification.TypeBadgeAwarded,
			Title:       "Badge earned",
			Message:     fmt.Sprintf("You earned the %s badge", badge.Name),
			Data: map[string]interface{}{
				"badge_id":   badge.ID,
				"badge_name": badge.Name,
			},
		})
	}

	return newlyAwarded, nil
}

// GetMyStats implements gamification.GamificationService.
func (s *GamificationServiceImpl) GetMyStats(ctx context.Context, employeeID string) (gamification.StatsResponse, error) {
	stats, err := s.statsRepository.GetByEmployee(ctx, employeeID)
	if err != nil {
		return gamification.StatsResponse{}, err
	}
	return toStatsResponse(stats), nil
}

// Leaderboard implements gamification.GamificationService.
func (s *GamificationServiceImpl) Leaderboard(ctx context.Context, limit int) ([]gamification.LeaderboardEntryResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	entries, err := s.statsRepository.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	responses := make([]gamification.LeaderboardEntryResponse, 0, len(entries))
	for i, entry := range entries {
		responses = append(responses, gamification.LeaderboardEntryResponse{
			Rank:        i + 1,
			EmployeeID:  entry.EmployeeID,
			Name:        entry.EmployeeName,
			TotalStars:  gamification.FormatStars(entry.TotalStars),
			TotalPoints: entry.TotalPoints,
			TotalBadges: entry.TotalBadges,
			Level:       entry.Level,
		})
	}
	return responses, nil
}

// CreateBadge implements gamification.GamificationService.
func (s *GamificationServiceImpl) CreateBadge(ctx context.Context, req gamification.CreateBadgeRequest) (gamification.BadgeResponse, error) {
	if err := req.Validate(); err != nil {
		return gamification.BadgeResponse{}, err
	}

	existing, err := s.badgeRepository.ListBadges(ctx)
	if err != nil {
		return gamification.BadgeResponse{}, err
	}
	for _, badge := range existing {
		if badge.Name == req.Name {
			return gamification.BadgeResponse{}, gamification.ErrBadgeNameExists
		}
	}

	requiredStars := decimal.Zero
	if req.RequiredStars != "" {
		requiredStars, _ = decimal.NewFromString(req.RequiredStars)
	}
	salaryIncrease := decimal.Zero
	if req.SalaryIncreasePercentage != "" {
		salaryIncrease, _ = decimal.NewFromString(req.SalaryIncreasePercentage)
	}

	created, err := s.badgeRepository.CreateBadge(ctx, gamification.Badge{
		Name:                     req.Name,
		Description:              req.Description,
		BadgeType:                gamification.BadgeType(req.BadgeType),
		Icon:                     req.Icon,
		Color:                    req.Color,
		RequiredStars:            requiredStars,
		RequiredPoints:           req.RequiredPoints,
		RequiredMonths:           req.RequiredMonths,
		SalaryIncreasePercentage: salaryIncrease,
		IsActive:                 true,
	})
	if err != nil {
		return gamification.BadgeResponse{}, fmt.Errorf("failed to create badge: %w", err)
	}

	return toBadgeResponse(created), nil
}

// UpdateBadge implements gamification.GamificationService.
func (s *GamificationServiceImpl) UpdateBadge(ctx context.Context, badgeID string, req gamification.UpdateBadgeRequest) (gamification.BadgeResponse, error) {
	if err := req.Validate(); err != nil {
		return gamification.BadgeResponse{}, err
	}

	badge, err := s.badgeRepository.GetBadge(ctx, badgeID)
	if err != nil {
		return gamification.BadgeResponse{}, err
	}

	if req.Name != nil && *req.Name != badge.Name {
		existing, err := s.badgeRepository.ListBadges(ctx)
		if err != nil {
			return gamification.BadgeResponse{}, err
		}
		for _, other := range existing {
			if other.Name == *req.Name && other.ID != badgeID {
				return gamification.BadgeResponse{}, gamification.ErrBadgeNameExists
			}
		}
		badge.Name = *req.Name
	}
	if req.Description != nil {
		badge.Description = *req.Description
	}
	if req.Icon != nil {
		badge.Icon = *req.Icon
	}
	if req.Color != nil {
		badge.Color = *req.Color
	}
	if req.RequiredStars != nil {
		badge.RequiredStars, _ = decimal.NewFromString(*req.RequiredStars)
	}
	if req.RequiredPoints != nil {
		badge.RequiredPoints = *req.RequiredPoints
	}
	if req.RequiredMonths != nil {
		badge.RequiredMonths = *req.RequiredMonths
	}
	if req.SalaryIncreasePercentage != nil {
		badge.SalaryIncreasePercentage, _ = decimal.NewFromString(*req.SalaryIncreasePercentage)
	}
	if req.IsActive != nil {
		badge.IsActive = *req.IsActive
	}

	updated, err := s.badgeRepository.UpdateBadge(ctx, badge)
	if err != nil {
		return gamification.BadgeResponse{}, fmt.Errorf("failed to update badge: %w", err)
	}

	return toBadgeResponse(updated), nil
}

// ListBadges implements gamification.GamificationService.
func (s *GamificationServiceImpl) ListBadges(ctx context.Context) ([]gamification.BadgeResponse, error) {
	badges, err := s.badgeRepository.ListBadges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}

	responses := make([]gamification.BadgeResponse, 0, len(badges))
	for _, badge := range badges {
		responses = append(responses, toBadgeResponse(badge))
	}
	return responses, nil
}

// GetMyBadges implements gamification.GamificationService.
func (s *GamificationServiceImpl) GetMyBadges(ctx context.Context, employeeID string) ([]gamification.EarnedBadgeResponse, error) {
	earned, err := s.badgeRepository.ListEarnedByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list earned badges: %w", err)
	}

	responses := make([]gamification.EarnedBadgeResponse, 0, len(earned))
	for _, eb := range earned {
		resp := gamification.EarnedBadgeResponse{
			ID:              eb.ID,
			BadgeID:         eb.BadgeID,
			EarnedDate:      eb.EarnedDate.Format("2006-01-02"),
			StarsAtEarning:  gamification.FormatStars(eb.StarsAtEarning),
			PointsAtEarning: eb.PointsAtEarning,
		}
		if eb.BadgeName != nil {
			resp.BadgeName = *eb.BadgeName
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *GamificationServiceImpl) queueNotification(ctx context.Context, req notification.CreateNotificationRequest) {
	if s.notificationService == nil {
		return
	}
	if err := s.notificationService.QueueNotification(ctx, req); err != nil {
		s.logger.Warn("failed to queue notification", "type", req.Type, "recipient_id", req.RecipientID, "error", err)
	}
}

func validatorDate(s string) (time.Time, bool) {
	return validator.IsValidDate(s)
}

func invalidDateError(field string) error {
	return validator.ValidationErrors{{
		Field:   field,
		Message: field + " must be in YYYY-MM-DD format",
	}}
}

func toObjectiveResponse(obj gamification.DailyObjective) gamification.ObjectiveResponse {
	return gamification.ObjectiveResponse{
		ID:             obj.ID,
		EmployeeID:     obj.EmployeeID,
		Date:           obj.Date.Format("2006-01-02"),
		TargetSubtasks: obj.TargetSubtasks,
		TargetHours:    obj.TargetHours.StringFixed(2),
		CreatedBy:      obj.CreatedBy,
		CreatedAt:      obj.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      obj.UpdatedAt.Format(time.RFC3339),
	}
}

func toDailyPerformanceResponse(p gamification.DailyPerformance) gamification.DailyPerformanceResponse {
	return gamification.DailyPerformanceResponse{
		ID:                   p.ID,
		EmployeeID:           p.EmployeeID,
		Date:                 p.Date.Format("2006-01-02"),
		ObjectiveID:          p.ObjectiveID,
		CompletedSubtasks:    p.CompletedSubtasks,
		WorkedHours:          p.WorkedHours.StringFixed(2),
		OvertimeHours:        p.OvertimeHours.StringFixed(2),
		SubtasksGoalAchieved: p.SubtasksGoalAchieved,
		HoursGoalAchieved:    p.HoursGoalAchieved,
		AllGoalsAchieved:     p.AllGoalsAchieved,
		DailyStarsEarned:     gamification.FormatStars(p.DailyStarsEarned),
		BonusPoints:          p.BonusPoints,
	}
}

func toMonthlyPerformanceResponse(p gamification.MonthlyPerformance) gamification.MonthlyPerformanceResponse {
	return gamification.MonthlyPerformanceResponse{
		ID:                     p.ID,
		EmployeeID:             p.EmployeeID,
		Year:                   p.Year,
		Month:                  p.Month,
		TotalWorkedHours:       p.TotalWorkedHours.StringFixed(2),
		TotalOvertimeHours:     p.TotalOvertimeHours.StringFixed(2),
		TotalCompletedSubtasks: p.TotalCompletedSubtasks,
		DaysWithAllGoals:       p.DaysWithAllGoals,
		RegularityStars:        gamification.FormatStars(p.RegularityStars),
		OvertimeBonusStars:     gamification.FormatStars(p.OvertimeBonusStars),
		TotalMonthlyStars:      gamification.FormatStars(p.TotalMonthlyStars),
		TotalMonthlyPoints:     p.TotalMonthlyPoints,
	}
}

func toBadgeResponse(b gamification.Badge) gamification.BadgeResponse {
	return gamification.BadgeResponse{
		ID:                       b.ID,
		Name:                     b.Name,
		Description:              b.Description,
		BadgeType:                string(b.BadgeType),
		Icon:                     b.Icon,
		Color:                    b.Color,
		RequiredStars:            gamification.FormatStars(b.RequiredStars),
		RequiredPoints:           b.RequiredPoints,
		RequiredMonths:           b.RequiredMonths,
		SalaryIncreasePercentage: b.SalaryIncreasePercentage.StringFixed(2),
		IsActive:                 b.IsActive,
	}
}

func toStatsResponse(stats gamification.EmployeeStats) gamification.StatsResponse {
	return gamification.StatsResponse{
		EmployeeID:             stats.EmployeeID,
		EmployeeName:           stats.EmployeeName,
		TotalStars:             gamification.FormatStars(stats.TotalStars),
		TotalPoints:            stats.TotalPoints,
		TotalBadges:            stats.TotalBadges,
		TotalCompletedSubtasks: stats.TotalCompletedSubtasks,
		TotalWorkedHours:       stats.TotalWorkedHours.StringFixed(2),
		TotalOvertimeHours:     stats.TotalOvertimeHours.StringFixed(2),
		CurrentRank:            stats.CurrentRank,
		CurrentLevel:           stats.CurrentLevel,
		TotalSalaryIncrease:    stats.TotalSalaryIncrease.StringFixed(2),
		LastUpdated:            stats.LastUpdated.Format(time.RFC3339),
	}
}
