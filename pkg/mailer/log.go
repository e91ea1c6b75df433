package mailer

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Log entry statuses.
const (
	LogStatusSent   = "sent"
	LogStatusFailed = "failed"
)

// LogEntry records one send attempt. Entries are append-only; only retention
// pruning removes them.
type LogEntry struct {
	ID           uuid.UUID `json:"id"`
	TemplateSlug string    `json:"template_slug"`
	Recipient    string    `json:"recipient"`
	Subject      string    `json:"subject"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message"`
	SentAt       time.Time `json:"sent_at"`
}

// LogStore persists send log entries.
type LogStore interface {
	Insert(ctx context.Context, entry LogEntry) error
}
