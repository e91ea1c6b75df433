package emailtype

import "errors"

var (
	// ErrEmptyID indicates a registration with an empty type id.
	ErrEmptyID = errors.New("emailtype: type id cannot be empty")

	// ErrInvalidDefinition indicates a definition file that cannot be decoded.
	ErrInvalidDefinition = errors.New("emailtype: invalid definition file")
)
