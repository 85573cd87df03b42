package domain

// SubmitState represents where a submission client is in its lifecycle
type SubmitState string

const (
	// IDLE - no submission in progress, form editable
	SubmitStateIdle SubmitState = "IDLE"
	// VALIDATING - snapshot taken, running validation rules
	SubmitStateValidating SubmitState = "VALIDATING"
	// SUBMITTING - request in flight to the mail relay
	SubmitStateSubmitting SubmitState = "SUBMITTING"
	// SUCCEEDED - relay accepted the submission, cart cleared
	SubmitStateSucceeded SubmitState = "SUCCEEDED"
	// FAILED - transport or relay failure, cart preserved for retry
	SubmitStateFailed SubmitState = "FAILED"
)

// IsValid checks if the submit state is valid
func (s SubmitState) IsValid() bool {
	switch s {
	case SubmitStateIdle,
		SubmitStateValidating,
		SubmitStateSubmitting,
		SubmitStateSucceeded,
		SubmitStateFailed:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a state transition is valid
func (s SubmitState) CanTransitionTo(next SubmitState) bool {
	switch s {
	case SubmitStateIdle:
		return next == SubmitStateValidating
	case SubmitStateValidating:
		// Validation failure aborts straight back to idle
		return next == SubmitStateSubmitting || next == SubmitStateIdle
	case SubmitStateSubmitting:
		return next == SubmitStateSucceeded || next == SubmitStateFailed
	case SubmitStateSucceeded, SubmitStateFailed:
		return next == SubmitStateIdle
	default:
		return false
	}
}
