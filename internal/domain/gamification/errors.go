package gamification

import "errors"

// Gamification domain errors
var (
	// Objective errors
	ErrObjectiveExists   = errors.New("an objective already exists for this employee and date")
	ErrObjectiveNotFound = errors.New("daily objective not found")

	// Performance errors
	ErrPerformanceNotFound = errors.New("performance record not found")

	// Badge errors
	ErrBadgeNotFound   = errors.New("badge not found")
	ErrBadgeNameExists = errors.New("a badge with this name already exists")

	// Stats errors
	ErrStatsNotFound = errors.New("employee stats not found")
)
