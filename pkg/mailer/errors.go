package mailer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTemplateNotFound indicates no stored template and no registered
	// default content exists for the requested slug.
	ErrTemplateNotFound = errors.New("mailer: no template found for slug")

	// ErrMissingVariables indicates the caller omitted required variables.
	// The concrete error is a *MissingVariablesError naming them.
	ErrMissingVariables = errors.New("mailer: required variables missing")

	// ErrNoRecipient indicates no recipient could be determined from the
	// explicit address or the variable map.
	ErrNoRecipient = errors.New("mailer: no recipient")

	// ErrDeliveryFailed indicates the provider rejected or failed the send.
	ErrDeliveryFailed = errors.New("mailer: delivery failed")
)

// MissingVariablesError reports which declared variables the caller omitted,
// in declaration order. It unwraps to [ErrMissingVariables].
type MissingVariablesError struct {
	Slug string
	Keys []string
}

func (e *MissingVariablesError) Error() string {
	return fmt.Sprintf("mailer: send %q: missing required variables: %s", e.Slug, strings.Join(e.Keys, ", "))
}

func (e *MissingVariablesError) Unwrap() error { return ErrMissingVariables }
