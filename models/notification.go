package models

import "time"

type NotificationType string

const (
	ContactMessageNotification NotificationType = "contact_message"
	QuoteRequestNotification   NotificationType = "quote_request"
)

// SubmissionNotification is published after a submission has been stored so
// that someone can follow it up.
type SubmissionNotification struct {
	Type        NotificationType `json:"type"`
	Collection  string           `json:"collection"`
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Summary     string           `json:"summary,omitempty"`
	DateCreated time.Time        `json:"date_created"`
}
