package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ember/internal/trace"
)

// traceSession owns the tracer configured for one command run.
type traceSession struct {
	tracer trace.Tracer
	errOut io.Writer
	format trace.Format // формат дампа кольцевого буфера
}

// setupTracing inspects trace-related flags (and the [trace] section of
// ember.toml when the flags were left alone) and installs the tracer into
// the command context.
func setupTracing(cmd *cobra.Command, cfg traceConfig) (*traceSession, error) {
	root := cmd.Root()

	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := root.PersistentFlags().GetString("trace-mode")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	ringSize, err := root.PersistentFlags().GetInt("trace-ring-size")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	formatStr, err := root.PersistentFlags().GetString("trace-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	if !root.PersistentFlags().Changed("trace") && cfg.Output != "" {
		traceOutput = cfg.Output
	}
	if !root.PersistentFlags().Changed("trace-level") && cfg.Level != "" {
		levelStr = cfg.Level
	}
	if !root.PersistentFlags().Changed("trace-format") && cfg.Format != "" {
		formatStr = cfg.Format
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// --trace без уровня включает фазы
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}

	sess := &traceSession{tracer: trace.Nop, errOut: cmd.ErrOrStderr(), format: trace.FormatText}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return sess, nil
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}
	if format != trace.FormatAuto {
		sess.format = format
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: traceOutput,
		RingSize:   ringSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	sess.tracer = tracer

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	return sess, nil
}

// finish dumps the ring buffer when the command failed, then flushes and
// closes the tracer. Later calls do nothing.
func (s *traceSession) finish(runErr error) {
	if s == nil || s.tracer == nil {
		return
	}
	if runErr != nil {
		if ring, ok := trace.Ring(s.tracer); ok {
			fmt.Fprintf(s.errOut, "trace: last %d events before failure:\n", ring.Len())
			if err := ring.Dump(s.errOut, s.format); err != nil {
				fmt.Fprintf(s.errOut, "trace: dump error: %v\n", err)
			}
		}
	}
	if err := s.tracer.Flush(); err != nil {
		fmt.Fprintf(s.errOut, "trace: flush error: %v\n", err)
	}
	if err := s.tracer.Close(); err != nil {
		fmt.Fprintf(s.errOut, "trace: close error: %v\n", err)
	}
	s.tracer = nil
}

// dumpTraceOnPanic writes the ring buffer to stderr if the command panics,
// then re-panics.
func (s *traceSession) dumpTraceOnPanic() {
	r := recover()
	if r == nil {
		return
	}
	s.finish(fmt.Errorf("panic: %v", r))
	panic(r)
}
