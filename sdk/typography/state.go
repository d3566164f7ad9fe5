package typography

// Phase describes where the client currently is in the request lifecycle.
type Phase int

const (
	// PhaseIdle means no submission has been made yet.
	PhaseIdle Phase = iota

	// PhaseLoading means a submission is in flight.
	PhaseLoading

	// PhaseSucceeded means the last submission resolved against the live service.
	PhaseSucceeded

	// PhaseFailed means the last submission ended in an error. A failed
	// phase can still carry a Result: the offline fallback keeps the
	// preview populated while the error stays visible.
	PhaseFailed
)

// String returns the phase name for logs and test output.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a snapshot of the request lifecycle: everything a caller needs
// to render the loading, error, and result surfaces.
type State struct {
	// Phase is the current lifecycle phase.
	Phase Phase

	// Err is the displayable error message. It is non-empty only in
	// PhaseFailed and is cleared when a new submission starts loading.
	Err string

	// Result is the suggestion currently on display. It persists across
	// submissions: it stays visible while the next request loads and is
	// left untouched when that request fails upstream. The pointer is
	// replaced only when the suggestion value actually changes, so
	// observers may compare Results by identity to detect updates.
	Result *Suggestion
}
