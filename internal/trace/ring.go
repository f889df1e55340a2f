package trace

import (
	"io"
	"sync"
)

const defaultRingSize = 4096

// RingTracer remembers the most recent events of a run. The CLI keeps it
// quiet while a command succeeds and dumps it when the command fails, so
// a failing decode comes with the literal and file events that led to it.
type RingTracer struct {
	mu    sync.Mutex
	buf   []Event
	next  int // слот для следующей записи
	n     int // сколько слотов занято, не больше len(buf)
	level Level
}

// NewRingTracer keeps up to capacity events; capacity <= 0 picks 4096.
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = defaultRingSize
	}
	return &RingTracer{buf: make([]Event, capacity), level: level}
}

func (t *RingTracer) Emit(ev *Event) {
	if !admit(t.level, ev) {
		return
	}
	t.mu.Lock()
	t.buf[t.next] = *ev
	t.buf[t.next].Seq = nextSeq()
	t.next++
	if t.next == len(t.buf) {
		t.next = 0
	}
	t.n = min(t.n+1, len(t.buf))
	t.mu.Unlock()
}

// Len is the number of events currently held.
func (t *RingTracer) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.n
}

// Snapshot copies the held events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, 0, t.n)
	oldest := t.next - t.n
	if oldest < 0 {
		out = append(out, t.buf[oldest+len(t.buf):]...)
		oldest = 0
	}
	return append(out, t.buf[oldest:t.next]...)
}

// Dump writes the held events to w, oldest first.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
