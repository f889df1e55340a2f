package driver

import "time"

// Stage is the step a file is in: load, then a cache lookup or a decode.
type Stage uint8

const (
	StageLoad Stage = iota + 1
	StageCache
	StageDecode
)

// Status of a file within its Stage. Done and Error are final.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Final reports whether the file needs no more work.
func (s Status) Final() bool { return s >= StatusDone }

// Event reports progress for one input file. Literals and Diagnostics are
// set on final events.
type Event struct {
	File        string
	Stage       Stage
	Status      Status
	Err         error
	Elapsed     time.Duration
	Literals    int
	Diagnostics int
}

// ProgressSink receives events from every worker goroutine, so it must be
// safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(ev Event) { f(ev) }

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}

// finalEvent is the last event of a decoded or cache-replayed file.
func finalEvent(path string, stage Stage, res *Result, started time.Time) Event {
	ev := Event{File: path, Stage: stage, Status: StatusDone, Elapsed: time.Since(started)}
	if res != nil {
		ev.Literals = len(res.Literals)
		ev.Diagnostics = res.Bag.Len()
		if res.Bag.HasErrors() {
			ev.Status = StatusError
		}
	}
	return ev
}
