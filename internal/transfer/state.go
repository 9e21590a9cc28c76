package transfer

// Phase is the step a transfer is in
type Phase int

const (
	Idle Phase = iota
	Validating
	Estimating
	Submitting
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Estimating:
		return "estimating"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the current transfer state. Digest is set when Succeeded and
// Err when Failed.
type State struct {
	Phase  Phase
	Digest string
	Err    error
}

// Done reports whether the transfer reached a final phase
func (s State) Done() bool {
	return s.Phase == Succeeded || s.Phase == Failed
}

// Observer is notified on every state change
type Observer func(State)
