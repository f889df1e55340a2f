package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Tracer receives events. Implementations must be safe for concurrent Emit:
// the batch driver decodes files on several goroutines.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	Enabled() bool // Level() > LevelOff
}

type nopTracer struct{}

func (nopTracer) Emit(*Event)   {}
func (nopTracer) Flush() error  { return nil }
func (nopTracer) Close() error  { return nil }
func (nopTracer) Level() Level  { return LevelOff }
func (nopTracer) Enabled() bool { return false }

// Nop drops everything. FromContext returns it for an unbound context.
var Nop Tracer = nopTracer{}

// StorageMode is where accepted events go.
type StorageMode uint8

const (
	ModeStream StorageMode = iota + 1 // written as they happen
	ModeRing                          // kept in memory, dumped on failure
	ModeBoth
)

var modeNames = [...]string{ModeStream: "stream", ModeRing: "ring", ModeBoth: "both"}

func (m StorageMode) String() string { return lookupName(modeNames[:], int(m)) }

// ParseMode reads --trace-mode; empty means stream.
func ParseMode(s string) (StorageMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return ModeStream, nil
	}
	for m, n := range modeNames {
		if n != "" && n == name {
			return StorageMode(m), nil // #nosec G115 -- small table
		}
	}
	return ModeStream, fmt.Errorf("invalid storage mode: %q (expected: stream|ring|both)", s)
}

// Config is the merged trace setup of a command.
type Config struct {
	Level      Level
	Mode       StorageMode // zero means ModeStream
	Format     Format      // FormatAuto picks by OutputPath
	Output     io.Writer   // wins over OutputPath
	OutputPath string      // "" or "-" is stderr
	RingSize   int         // zero picks 4096
}

// New builds the tracer cfg asks for. The off level gives Nop without
// touching OutputPath.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	var sinks []Tracer
	if cfg.Mode == 0 || cfg.Mode == ModeStream || cfg.Mode == ModeBoth {
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, NewStreamTracer(w, cfg.Level, formatFor(cfg.Format, cfg.OutputPath)))
	}
	if cfg.Mode == ModeRing || cfg.Mode == ModeBoth {
		sinks = append(sinks, NewRingTracer(cfg.RingSize, cfg.Level))
	}
	switch len(sinks) {
	case 0:
		return nil, fmt.Errorf("unknown storage mode: %v", cfg.Mode)
	case 1:
		return sinks[0], nil
	}
	return &MultiTracer{tracers: sinks, level: cfg.Level}, nil
}

// Ring finds the ring buffer inside t, if t keeps one.
func Ring(t Tracer) (*RingTracer, bool) {
	switch tt := t.(type) {
	case *RingTracer:
		return tt, true
	case *MultiTracer:
		for _, inner := range tt.tracers {
			if r, ok := Ring(inner); ok {
				return r, true
			}
		}
	}
	return nil, false
}

// MultiTracer hands every event to each of its tracers.
type MultiTracer struct {
	tracers []Tracer
	level   Level
}

func (t *MultiTracer) Emit(ev *Event) {
	for _, tr := range t.tracers {
		cp := *ev // каждый трейсер ставит свой Seq
		tr.Emit(&cp)
	}
}

func (t *MultiTracer) Flush() error { return t.each(Tracer.Flush) }
func (t *MultiTracer) Close() error { return t.each(Tracer.Close) }

func (t *MultiTracer) each(op func(Tracer) error) error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, op(tr))
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Level() Level  { return t.level }
func (t *MultiTracer) Enabled() bool { return t.level > LevelOff }

// stderrWriter hides os.Stderr's Close from StreamTracer.Close.
type stderrWriter struct{ io.Writer }

func openOutput(cfg Config) (io.Writer, error) {
	switch {
	case cfg.Output != nil:
		return cfg.Output, nil
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		return stderrWriter{os.Stderr}, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}

// admit: точки с ошибкой проходят на любом уровне, кроме off.
func admit(level Level, ev *Event) bool {
	if level == LevelOff {
		return false
	}
	if ev.Kind == KindPoint && ev.Extra["error"] != "" {
		return true
	}
	return level.ShouldEmit(ev.Scope)
}
