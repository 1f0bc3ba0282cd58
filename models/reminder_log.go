// models/reminder_log.go
package models

import "time"

type ReminderLog struct {
	JobID        string    `json:"jobId"`
	CustomerID   string    `json:"customerId"`
	To           string    `json:"to"`
	Message      string    `json:"message"`
	Status       string    `json:"status"` // sent, failed, skipped
	ErrorMessage string    `json:"errorMessage,omitempty"`
	MessageSID   string    `json:"messageSid,omitempty"`
	SentAt       time.Time `json:"sentAt"`
}

const (
	ReminderSent    = "sent"
	ReminderFailed  = "failed"
	ReminderSkipped = "skipped"
)
