package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeBadgeAwarded      NotificationType = "badge_awarded"
	TypeObjectiveAssigned NotificationType = "objective_assigned"
	TypeObjectiveMet      NotificationType = "objective_met"
	TypeSessionAutoClosed NotificationType = "session_auto_closed"
	TypeMonthlySummary    NotificationType = "monthly_summary"
)

// AllNotificationTypes returns all available notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		TypeBadgeAwarded,
		TypeObjectiveAssigned,
		TypeObjectiveMet,
		TypeSessionAutoClosed,
		TypeMonthlySummary,
	}
}

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
