package errors

import (
	"fmt"
	"strings"

	"github.com/bytewave/siteapi/internal/domain"
)

// ErrValidation is returned when a submission fails validation.
// Errors lists every violated rule, not just the first.
type ErrValidation struct {
	Errors []string
}

func (e *ErrValidation) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ErrRelay is returned when the mail relay rejects a submission or
// responds with an unexpected status.
type ErrRelay struct {
	StatusCode int
	Message    string
}

func (e *ErrRelay) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("mail relay returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("mail relay returned %d", e.StatusCode)
}

// ErrInvalidStateTransition is returned when an invalid submit-state
// transition is attempted (e.g. submitting while a request is in flight)
type ErrInvalidStateTransition struct {
	From domain.SubmitState
	To   domain.SubmitState
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}
