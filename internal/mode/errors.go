package mode

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a slug is absent from the registry.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("mode not found: %s", e.Slug)
}

// IsNotFound checks if an error is a registry lookup failure.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError describes a malformed mode definition. Field names the
// front-matter or aggregator field that was missing or invalid.
type ValidationError struct {
	Slug   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Slug == "" {
		return fmt.Sprintf("invalid mode: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid mode %q: %s: %s", e.Slug, e.Field, e.Reason)
}

// IsValidation checks if an error is a mode validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
