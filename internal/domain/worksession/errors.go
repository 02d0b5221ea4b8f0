package worksession

import "errors"

// Work session domain errors
var (
	// Lifecycle errors
	ErrSessionAlreadyOpen = errors.New("employee already has an open work session")
	ErrSessionCompleted   = errors.New("work session is already completed")
	ErrSessionNotPaused   = errors.New("work session is not paused")

	// General errors
	ErrSessionNotFound = errors.New("work session not found")
	ErrNotSessionOwner = errors.New("work session belongs to another employee")
)
