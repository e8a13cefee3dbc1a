package services

import (
	applog "kicktwin/internal/log"
)

// Notifier is the toast collaborator: fire-and-forget, never an error.
type Notifier interface {
	Notify(sessionID, message string)
}

// LogNotifier stands in for a real presentation channel by writing an info
// log entry per notification.
type LogNotifier struct{}

func (LogNotifier) Notify(sessionID, message string) {
	applog.Info(nil, "notify", map[string]any{"session": sessionID, "message": message})
}
