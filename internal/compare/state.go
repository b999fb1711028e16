package compare

import "github.com/abhisek/mathduel/internal/solver"

// Phase is the controller's presentation state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseDisplaying
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseDisplaying:
		return "displaying"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// State is a snapshot of what the controller is presenting.
// Base and Optimized are set only in PhaseDisplaying; Message and Err only
// in PhaseError.
type State struct {
	Phase      Phase
	Generation uint64
	Problem    string
	Base       *solver.Result
	Optimized  *solver.Result
	Message    string
	Err        error
}

// AnswersDiffer reports whether both results are present and their
// answers are not identical.
func (s State) AnswersDiffer() bool {
	return s.Base != nil && s.Optimized != nil && s.Base.Answer != s.Optimized.Answer
}
