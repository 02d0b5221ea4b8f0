package worksession

import (
	"context"
	"time"
)

// WorkSessionRepository defines data access methods for work sessions.
type WorkSessionRepository interface {
	// Create creates a new work session
	Create(ctx context.Context, session WorkSession) (WorkSession, error)

	// GetByID retrieves a session by ID
	GetByID(ctx context.Context, id string) (WorkSession, error)

	// GetOpenByEmployee retrieves the employee's session in
	// {active, paused}, if any. Used to enforce the single-open-session
	// invariant. Returns nil when no open session exists.
	GetOpenByEmployee(ctx context.Context, employeeID string) (*WorkSession, error)

	// Update persists a session's mutable fields (status, pause
	// bookkeeping, end time, notes)
	Update(ctx context.Context, session WorkSession) error

	// ListByEmployee retrieves sessions for one employee with filters and pagination
	ListByEmployee(ctx context.Context, employeeID string, filter SessionFilter) ([]WorkSession, int64, error)

	// List retrieves sessions across employees with filters and pagination
	List(ctx context.Context, filter SessionFilter) ([]WorkSession, int64, error)

	// GetStaleOpen retrieves open sessions started before the cutoff,
	// for the auto-close job.
	GetStaleOpen(ctx context.Context, cutoff time.Time) ([]WorkSession, error)

	// SumWorkedHoursByDate sums completed-session net work time, in
	// hours, for an employee on a local calendar date. Feeds the daily
	// outcome's worked-hours input.
	SumWorkedHoursByDate(ctx context.Context, employeeID string, date time.Time) (float64, error)
}
