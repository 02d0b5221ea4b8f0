package worksession

import (
	"context"
)

// WorkSessionService exposes the work-time accounting operations.
// Transitions are transactional: the read-modify-write on a session is
// serialized so two concurrent starts cannot both succeed.
type WorkSessionService interface {
	// Start opens a new active session for the employee.
	// Fails with ErrSessionAlreadyOpen when one is already open.
	Start(ctx context.Context, employeeID string, req StartSessionRequest) (SessionResponse, error)

	// Pause pauses the given session. Pausing a paused session is a no-op.
	Pause(ctx context.Context, employeeID string, sessionID string) (SessionResponse, error)

	// Resume resumes a paused session, accumulating the pause interval.
	Resume(ctx context.Context, employeeID string, sessionID string) (SessionResponse, error)

	// End completes the session and computes its final net duration.
	End(ctx context.Context, employeeID string, sessionID string) (SessionResponse, error)

	// Get retrieves one session. Admins can read any session, employees
	// only their own.
	Get(ctx context.Context, employeeID string, isAdmin bool, sessionID string) (SessionResponse, error)

	// GetMySessions lists the employee's sessions
	GetMySessions(ctx context.Context, employeeID string, filter SessionFilter) (ListSessionResponse, error)

	// List lists sessions across employees (admin)
	List(ctx context.Context, filter SessionFilter) (ListSessionResponse, error)
}
