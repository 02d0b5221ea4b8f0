package worksession

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// WorkSession is one continuous clocked work period for an employee,
// inclusive of zero or more pause intervals. Transitions are only
// performed through Pause/Resume/End so the pause bookkeeping cannot
// drift from the status.
type WorkSession struct {
	ID             string
	EmployeeID     string
	StartTime      time.Time
	EndTime        *time.Time
	Status         Status
	PauseStartTime *time.Time
	TotalPauseTime time.Duration
	TotalWorkTime  *time.Duration
	Notes          *string
	AutoClosed     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	EmployeeName *string
}

// IsOpen reports whether the session still counts against the
// one-open-session-per-employee invariant.
func (s *WorkSession) IsOpen() bool {
	return s.Status == StatusActive || s.Status == StatusPaused
}

// Pause moves an active session into paused state. Pausing an already
// paused session is a no-op; pausing a completed session is an error.
func (s *WorkSession) Pause(now time.Time) error {
	switch s.Status {
	case StatusCompleted:
		return ErrSessionCompleted
	case StatusPaused:
		return nil
	}
	s.Status = StatusPaused
	if s.PauseStartTime == nil {
		t := now
		s.PauseStartTime = &t
	}
	return nil
}

// Resume closes the current pause interval, folding its elapsed time
// into the cumulative pause total.
func (s *WorkSession) Resume(now time.Time) error {
	if s.Status == StatusCompleted {
		return ErrSessionCompleted
	}
	if s.Status != StatusPaused {
		return ErrSessionNotPaused
	}
	if s.PauseStartTime != nil {
		s.TotalPauseTime += now.Sub(*s.PauseStartTime)
		s.PauseStartTime = nil
	}
	s.Status = StatusActive
	return nil
}

// End completes the session from either open state. A still-open pause
// is closed first so its time counts as pause, not work. Net work time
// is clamped at zero.
func (s *WorkSession) End(now time.Time) error {
	if s.Status == StatusCompleted {
		return ErrSessionCompleted
	}
	if s.PauseStartTime != nil {
		s.TotalPauseTime += now.Sub(*s.PauseStartTime)
		s.PauseStartTime = nil
	}
	end := now
	s.EndTime = &end
	s.Status = StatusCompleted

	net := end.Sub(s.StartTime) - s.TotalPauseTime
	if net < 0 {
		net = 0
	}
	s.TotalWorkTime = &net
	return nil
}

// NetDuration is the final worked time net of pauses, zero until the
// session has been ended.
func (s *WorkSession) NetDuration() time.Duration {
	if s.TotalWorkTime == nil {
		return 0
	}
	return *s.TotalWorkTime
}

// DurationFormatted renders net worked time as HH:MM, "00:00" when the
// session has not been ended yet.
func (s *WorkSession) DurationFormatted() string {
	totalSeconds := int(s.NetDuration().Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
