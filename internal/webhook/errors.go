package webhook

import (
	"errors"
	"fmt"
)

var (
	ErrMissingEventHeader = errors.New("missing X-GitHub-Event header")
	ErrMalformedPayload   = errors.New("malformed payload")
)

// malformed reports a payload missing a required source field.
func malformed(field string) error {
	return fmt.Errorf("%w: missing %s", ErrMalformedPayload, field)
}
