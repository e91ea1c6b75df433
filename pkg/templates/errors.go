package templates

import "errors"

var (
	// ErrNotFound indicates no stored row matched and the registry offers no
	// default content for the slug.
	ErrNotFound = errors.New("templates: template not found")

	// ErrLookupFailed indicates a storage failure during the fallback search,
	// as opposed to a legitimate miss.
	ErrLookupFailed = errors.New("templates: template lookup failed")
)
