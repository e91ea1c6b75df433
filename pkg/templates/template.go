package templates

import (
	"context"
	"time"
)

// Template statuses. Only active rows are eligible for resolution.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Template is a stored template row, authored through the admin surface.
// (Slug, Language, Variation) is unique; an empty Variation is the generic
// template for the language.
type Template struct {
	ID        int64     `json:"id"`
	Name      string    `json:"template_name"`
	Slug      string    `json:"template_slug"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Language  string    `json:"language"`
	Variation string    `json:"variation"`
	Plugin    string    `json:"plugin_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Rendered is the outcome of resolution: either a stored row or a synthesis
// from registry defaults. It is ephemeral and never persisted.
type Rendered struct {
	Subject   string
	Content   string
	Language  string
	Variation string
	Status    string
}

// Finder is the storage lookup surface the resolver depends on.
// Implementations return [ErrNotFound] when no active row matches and a
// distinct error for storage failures.
type Finder interface {
	// FindActive returns the active row for (slug, language, variation).
	FindActive(ctx context.Context, slug, language, variation string) (*Template, error)

	// FindActiveAnyLanguage returns an active row for (slug, variation)
	// regardless of language. When several languages qualify, the oldest row
	// wins, so the pick is stable across calls.
	FindActiveAnyLanguage(ctx context.Context, slug, variation string) (*Template, error)
}
