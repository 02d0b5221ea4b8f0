package worksession

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/segus-engineering/ops-backend-go/internal/domain/employee"
	"github.com/segus-engineering/ops-backend-go/internal/domain/worksession"
	"github.com/segus-engineering/ops-backend-go/internal/pkg/database"
	"github.com/segus-engineering/ops-backend-go/internal/repository/postgresql"
)

type WorkSessionServiceImpl struct {
	db                 *database.DB
	sessionRepository  worksession.WorkSessionRepository
	employeeRepository employee.EmployeeRepository
}

func NewWorkSessionService(
	db *database.DB,
	sessionRepository worksession.WorkSessionRepository,
	employeeRepository employee.EmployeeRepository,
) worksession.WorkSessionService {
	return &WorkSessionServiceImpl{
		db:                 db,
		sessionRepository:  sessionRepository,
		employeeRepository: employeeRepository,
	}
}

// Start implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) Start(ctx context.Context, employeeID string, req worksession.StartSessionRequest) (worksession.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return worksession.SessionResponse{}, err
	}

	emp, err := s.employeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return worksession.SessionResponse{}, err
	}
	if !emp.IsActive {
		return worksession.SessionResponse{}, employee.ErrEmployeeInactive
	}

	var created worksession.WorkSession
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		open, err := s.sessionRepository.GetOpenByEmployee(txCtx, employeeID)
		if err != nil {
			return err
		}
		if open != nil {
			return worksession.ErrSessionAlreadyOpen
		}

		created, err = s.sessionRepository.Create(txCtx, worksession.WorkSession{
			EmployeeID: employeeID,
			StartTime:  time.Now(),
			Status:     worksession.StatusActive,
			Notes:      req.Notes,
		})
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}
		return nil
	})
	if err != nil {
		return worksession.SessionResponse{}, err
	}

	created.EmployeeName = &emp.FullName
	return toSessionResponse(created), nil
}

// transition loads a session, checks ownership, applies fn and persists
// the result, all inside one transaction.
func (s *WorkSessionServiceImpl) transition(ctx context.Context, employeeID, sessionID string, fn func(session *worksession.WorkSession) error) (worksession.SessionResponse, error) {
	var updated worksession.WorkSession
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		session, err := s.sessionRepository.GetByID(txCtx, sessionID)
		if err != nil {
			return err
		}
		if session.EmployeeID != employeeID {
			return worksession.ErrNotSessionOwner
		}

		if err := fn(&session); err != nil {
			return err
		}

		if err := s.sessionRepository.Update(txCtx, session); err != nil {
			return err
		}
		updated = session
		return nil
	})
	if err != nil {
		return worksession.SessionResponse{}, err
	}
	return toSessionResponse(updated), nil
}

// Pause implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) Pause(ctx context.Context, employeeID string, sessionID string) (worksession.SessionResponse, error) {
	return s.transition(ctx, employeeID, sessionID, func(session *worksession.WorkSession) error {
		return session.Pause(time.Now())
	})
}

// Resume implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) Resume(ctx context.Context, employeeID string, sessionID string) (worksession.SessionResponse, error) {
	return s.transition(ctx, employeeID, sessionID, func(session *worksession.WorkSession) error {
		return session.Resume(time.Now())
	})
}

// End implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) End(ctx context.Context, employeeID string, sessionID string) (worksession.SessionResponse, error) {
	return s.transition(ctx, employeeID, sessionID, func(session *worksession.WorkSession) error {
		return session.End(time.Now())
	})
}

// Get implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) Get(ctx context.Context, employeeID string, isAdmin bool, sessionID string) (worksession.SessionResponse, error) {
	session, err := s.sessionRepository.GetByID(ctx, sessionID)
	if err != nil {
		return worksession.SessionResponse{}, err
	}
	if !isAdmin && session.EmployeeID != employeeID {
		return worksession.SessionResponse{}, worksession.ErrNotSessionOwner
	}
	return toSessionResponse(session), nil
}

// GetMySessions implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) GetMySessions(ctx context.Context, employeeID string, filter worksession.SessionFilter) (worksession.ListSessionResponse, error) {
	if err := filter.Validate(); err != nil {
		return worksession.ListSessionResponse{}, err
	}

	sessions, totalCount, err := s.sessionRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return worksession.ListSessionResponse{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	return toListSessionResponse(sessions, totalCount, filter), nil
}

// List implements worksession.WorkSessionService.
func (s *WorkSessionServiceImpl) List(ctx context.Context, filter worksession.SessionFilter) (worksession.ListSessionResponse, error) {
	if err := filter.Validate(); err != nil {
		return worksession.ListSessionResponse{}, err
	}

	sessions, totalCount, err := s.sessionRepository.List(ctx, filter)
	if err != nil {
		return worksession.ListSessionResponse{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	return toListSessionResponse(sessions, totalCount, filter), nil
}

func toSessionResponse(session worksession.WorkSession) worksession.SessionResponse {
	resp := worksession.SessionResponse{
		ID:                session.ID,
		EmployeeID:        session.EmployeeID,
		EmployeeName:      session.EmployeeName,
		StartTime:         session.StartTime.Format(time.RFC3339),
		Status:            string(session.Status),
		TotalPauseMinutes: int(session.TotalPauseTime.Minutes()),
		DurationFormatted: session.DurationFormatted(),
		Notes:             session.Notes,
		AutoClosed:        session.AutoClosed,
		CreatedAt:         session.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         session.UpdatedAt.Format(time.RFC3339),
	}

	if session.EndTime != nil {
		endTime := session.EndTime.Format(time.RFC3339)
		resp.EndTime = &endTime
	}
	if session.PauseStartTime != nil {
		pauseStart := session.PauseStartTime.Format(time.RFC3339)
		resp.PauseStartTime = &pauseStart
	}
	if session.TotalWorkTime != nil {
		workMinutes := int(session.TotalWorkTime.Minutes())
		resp.TotalWorkMinutes = &workMinutes
	}

	return resp
}

func toListSessionResponse(sessions []worksession.WorkSession, totalCount int64, filter worksession.SessionFilter) worksession.ListSessionResponse {
	responses := make([]worksession.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, toSessionResponse(session))
	}

	totalPages := int(totalCount) / filter.Limit
	if int(totalCount)%filter.Limit > 0 {
		totalPages++
	}

	return worksession.ListSessionResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Sessions:   responses,
	}
}
