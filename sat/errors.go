package sat

import "fmt"

// ErrorKind classifies the ways a solve can fail to produce a definite
// SAT/UNSAT certificate. Note that a formula found trivially UNSAT by a
// root-level unit conflict is a success outcome (Solve returns False
// with a nil error), never an ErrorKind.
type ErrorKind uint8

const (
	// KindNone is the zero value; never surfaced to a caller.
	KindNone ErrorKind = iota

	// KindEmptyClause means the input contained an empty clause.
	KindEmptyClause

	// KindOutOfMemory means the clause arena could not grow further.
	KindOutOfMemory

	// KindInterrupted means Solve returned after the interrupt flag was
	// observed at a cooperative safe point.
	KindInterrupted

	// KindTimedOut means the configured deadline (Config.Timeout) elapsed.
	// The deadline is measured in wall-clock time, not CPU time.
	KindTimedOut

	// KindInvalidInput means the caller supplied malformed input, e.g. a
	// variable index beyond the declared count.
	KindInvalidInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindEmptyClause:
		return "empty clause"
	case KindOutOfMemory:
		return "out of memory"
	case KindInterrupted:
		return "interrupted"
	case KindTimedOut:
		return "timed out"
	case KindInvalidInput:
		return "invalid input"
	default:
		return "none"
	}
}

// SolveError reports why a solve did not reach a definite certificate.
type SolveError struct {
	Kind ErrorKind
	Msg  string
}

func (e *SolveError) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newSolveError(kind ErrorKind, format string, args ...any) *SolveError {
	return &SolveError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
