package trace

import (
	"io"
	"sync"
)

// StreamTracer writes each accepted event to w as it arrives.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	buf    []byte // переиспользуется между событиями под mu
	level  Level
	format Format
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{w: w, level: level, format: formatFor(format, "")}
}

func (t *StreamTracer) Emit(ev *Event) {
	if !admit(t.level, ev) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	ev.Seq = nextSeq()
	if t.format == FormatNDJSON {
		t.buf = appendNDJSON(t.buf[:0], ev)
	} else {
		t.buf = appendText(t.buf[:0], ev)
	}
	// ошибки записи трассы не должны ронять декодирование
	_, _ = t.w.Write(t.buf) //nolint:errcheck
}

// Flush forwards to w when w buffers (bufio.Writer and the like).
func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.flush()
}

func (t *StreamTracer) flush() error {
	if f, ok := t.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes, then closes w if it is a Closer. Stderr is never closed.
func (t *StreamTracer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.flush(); err != nil {
		return err
	}
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
