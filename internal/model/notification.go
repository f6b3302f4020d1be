package model

import "time"

// NotificationLevel classifies a transient toast shown by the dashboard.
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationWarning NotificationLevel = "warning"
	NotificationError   NotificationLevel = "error"
)

// Notification is the transient toast payload returned with mutating
// operations. AutoDismiss tells the dashboard how long to keep it visible.
type Notification struct {
	Level       NotificationLevel `json:"level"`
	Message     string            `json:"message"`
	AutoDismiss time.Duration     `json:"auto_dismiss_ms"`
}

// Dismiss delays per severity: errors stay visible longer than successes.
const (
	successDismiss = 2 * time.Second
	warningDismiss = 3 * time.Second
	errorDismiss   = 5 * time.Second
)

// Success builds a success notification.
func Success(message string) Notification {
	return Notification{Level: NotificationSuccess, Message: message, AutoDismiss: successDismiss}
}

// Warning builds a warning notification.
func Warning(message string) Notification {
	return Notification{Level: NotificationWarning, Message: message, AutoDismiss: warningDismiss}
}

// Failure builds an error notification.
func Failure(message string) Notification {
	return Notification{Level: NotificationError, Message: message, AutoDismiss: errorDismiss}
}
