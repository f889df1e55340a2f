// Package trace is the structured logging layer of ember.
//
// It records spans and point events for commands, batch stages, files and
// single literals, which helps to see where a large decode spends its time
// or why a stream never produced a value.
//
// # Usage
//
//	ember decode --trace=- --trace-level=detail lits.str
//
// # Tracers
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to a file or stderr
//   - RingTracer: in-memory circular buffer, dumped when a command fails
//   - MultiTracer: fan-out, built by New for --trace-mode=both
//
// # Levels and scopes
//
// LevelPhase admits ScopeDriver and ScopePass, LevelDetail adds ScopeFile,
// LevelDebug adds ScopeLiteral. Error points pass at every level except off.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopeFile, "file:"+path)
//	defer span.End("")
package trace
