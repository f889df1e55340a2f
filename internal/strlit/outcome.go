package strlit

import "errors"

// Status is the three-way result of a decode step.
type Status uint8

const (
	// Done means a value was decoded and Rest points past it.
	Done Status = iota + 1
	// Incomplete means the buffer is a valid prefix so far; call again with
	// more input from the same start position.
	Incomplete
	// Failed means the input can never decode, whatever follows.
	Failed
)

func (s Status) String() string {
	switch s {
	case Done:
		return "done"
	case Incomplete:
		return "incomplete"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrIncomplete is returned by Outcome.Result for an Incomplete outcome.
var ErrIncomplete = errors.New("need more input")

// Outcome is the result of every decoder in this package.
type Outcome[T any] struct {
	Status Status
	// Value is set when Status is Done.
	Value T
	// Rest is the remaining input when Status is Done.
	Rest Cursor
	// Needed is the minimum number of additional bytes required when Status
	// is Incomplete; 0 means unknown.
	Needed int
	// Err is set when Status is Failed.
	Err *Error
}

func done[T any](rest Cursor, v T) Outcome[T] {
	return Outcome[T]{Status: Done, Value: v, Rest: rest}
}

func needMore[T any](n int) Outcome[T] {
	return Outcome[T]{Status: Incomplete, Needed: n}
}

func fail[T any](err *Error) Outcome[T] {
	return Outcome[T]{Status: Failed, Err: err}
}

// recast carries a non-Done outcome over to another value type.
func recast[U, T any](o Outcome[T]) Outcome[U] {
	return Outcome[U]{Status: o.Status, Rest: o.Rest, Needed: o.Needed, Err: o.Err}
}

// Result collapses the outcome into Go's value/error pair. Incomplete maps to
// ErrIncomplete.
func (o Outcome[T]) Result() (T, error) {
	switch o.Status {
	case Done:
		return o.Value, nil
	case Failed:
		var zero T
		return zero, o.Err
	default:
		var zero T
		return zero, ErrIncomplete
	}
}
