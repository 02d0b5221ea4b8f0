package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/segus-engineering/ops-backend-go/internal/domain/gamification"
	"github.com/segus-engineering/ops-backend-go/internal/domain/notification"
	"github.com/segus-engineering/ops-backend-go/internal/domain/worksession"
)

// SessionJobs bundles the background housekeeping of the scoring
// engine: closing forgotten work sessions and refreshing derived
// aggregates.
type SessionJobs struct {
	sessionRepository   worksession.WorkSessionRepository
	performanceRepo     gamification.PerformanceRepository
	gamificationService gamification.GamificationService
	notificationService notification.Service
	staleAfter          time.Duration
	logger              *slog.Logger
}

func NewSessionJobs(
	sessionRepository worksession.WorkSessionRepository,
	performanceRepo gamification.PerformanceRepository,
	gamificationService gamification.GamificationService,
	notificationService notification.Service,
	staleAfter time.Duration,
	logger *slog.Logger,
) *SessionJobs {
	return &SessionJobs{
		sessionRepository:   sessionRepository,
		performanceRepo:     performanceRepo,
		gamificationService: gamificationService,
		notificationService: notificationService,
		staleAfter:          staleAfter,
		logger:              logger,
	}
}

// Register adds the jobs to the scheduler.
func (j *SessionJobs) Register(s *Scheduler) {
	s.AddJob("auto_close_stale_work_sessions", 1*time.Hour, j.AutoCloseStaleSessions)
	s.AddJob("nightly_recompute", 24*time.Hour, j.NightlyRecompute)
}

// AutoCloseStaleSessions ends open sessions older than the configured
// cutoff. A forgotten timer otherwise keeps the single-open-session
// invariant locked for its employee forever.
func (j *SessionJobs) AutoCloseStaleSessions(ctx context.Context) error {
	cutoff := time.Now().Add(-j.staleAfter)

	stale, err := j.sessionRepository.GetStaleOpen(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list stale sessions: %w", err)
	}

	for _, session := range stale {
		now := time.Now()
		if err := session.End(now); err != nil {
			j.logger.Error("failed to end stale session", "session_id", session.ID, "error", err)
			continue
		}
		session.AutoClosed = true

		if err := j.sessionRepository.Update(ctx, session); err != nil {
			j.logger.Error("failed to persist auto-closed session", "session_id", session.ID, "error", err)
			continue
		}

		j.logger.Info("auto-closed stale work session",
			"session_id", session.ID, "employee_id", session.EmployeeID, "started_at", session.StartTime)

		if j.notificationService != nil {
			_ = j.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
				RecipientID: session.EmployeeID,
				Type:        notification.TypeSessionAutoClosed,
				Title:       "Work session auto-closed",
				Message:     fmt.Sprintf("Your session started on %s was closed automatically after %s", session.StartTime.Format("2006-01-02 15:04"), session.DurationFormatted()),
				Data: map[string]interface{}{
					"session_id": session.ID,
					"start_time": session.StartTime.Format(time.RFC3339),
				},
			})
		}
	}

	return nil
}

// NightlyRecompute re-aggregates yesterday's scored employees: their
// month and their all-time stats, including badge checks.
func (j *SessionJobs) NightlyRecompute(ctx context.Context) error {
	yesterday := time.Now().AddDate(0, 0, -1)

	employeeIDs, err := j.performanceRepo.ListEmployeeIDsWithDailyOn(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to list employees for recompute: %w", err)
	}

	for _, employeeID := range employeeIDs {
		_, err := j.gamificationService.RecomputeMonth(ctx, gamification.RecomputeMonthRequest{
			EmployeeID: employeeID,
			Year:       yesterday.Year(),
			Month:      int(yesterday.Month()),
		})
		if err != nil {
			j.logger.Error("failed to recompute month", "employee_id", employeeID, "error", err)
			continue
		}

		if _, err := j.gamificationService.RecomputeStats(ctx, employeeID); err != nil {
			j.logger.Error("failed to recompute stats", "employee_id", employeeID, "error", err)
		}
	}

	j.logger.Info("nightly recompute finished", "employee_count", len(employeeIDs))
	return nil
}
