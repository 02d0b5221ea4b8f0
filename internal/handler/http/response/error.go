package response

import (
	"errors"
	"net/http"

	"github.com/segus-engineering/ops-backend-go/internal/domain/employee"
	"github.com/segus-engineering/ops-backend-go/internal/domain/gamification"
	"github.com/segus-engineering/ops-backend-go/internal/domain/notification"
	"github.com/segus-engineering/ops-backend-go/internal/domain/worksession"
	"github.com/segus-engineering/ops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")

	// Work session domain errors
	case errors.Is(err, worksession.ErrSessionAlreadyOpen):
		Conflict(w, "An open work session already exists")
	case errors.Is(err, worksession.ErrSessionCompleted):
		Conflict(w, "Work session is already completed")
	case errors.Is(err, worksession.ErrSessionNotPaused):
		Conflict(w, "Work session is not paused")
	case errors.Is(err, worksession.ErrSessionNotFound):
		NotFound(w, "Work session not found")
	case errors.Is(err, worksession.ErrNotSessionOwner):
		Forbidden(w, "Work session belongs to another employee")

	// Gamification domain errors
	case errors.Is(err, gamification.ErrObjectiveExists):
		Conflict(w, "An objective already exists for this employee and date")
	case errors.Is(err, gamification.ErrObjectiveNotFound):
		NotFound(w, "Daily objective not found")
	case errors.Is(err, gamification.ErrPerformanceNotFound):
		NotFound(w, "Performance record not found")
	case errors.Is(err, gamification.ErrBadgeNotFound):
		NotFound(w, "Badge not found")
	case errors.Is(err, gamification.ErrBadgeNameExists):
		Conflict(w, "A badge with this name already exists")
	case errors.Is(err, gamification.ErrStatsNotFound):
		NotFound(w, "Employee stats not found")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrNotRecipient):
		Forbidden(w, "Notification belongs to another employee")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
