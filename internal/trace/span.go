package trace

import (
	"context"
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64 // порядок событий во всех трейсерах
	spanCounter atomic.Uint64
)

func nextSeq() uint64 { return seqCounter.Add(1) }

// Span is an open begin/end pair. A span that was filtered out by level is
// inert: End and WithExtra do nothing and ID is zero.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	started time.Time
	extra   map[string]string
}

// Begin opens a span on t under parent (0 for a root span).
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if t == nil || !t.Level().ShouldEmit(scope) {
		return &Span{}
	}
	sp := &Span{
		tracer:  t,
		id:      spanCounter.Add(1),
		parent:  parent,
		scope:   scope,
		name:    name,
		started: time.Now(),
	}
	t.Emit(sp.event(KindSpanBegin, sp.started, ""))
	return sp
}

// Start opens a span on the tracer of ctx, parented to the span ctx carries,
// and returns ctx rebound to the new span.
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	sp := Begin(FromContext(ctx), scope, name, parentSpan(ctx))
	if sp.id == 0 {
		return ctx, sp
	}
	return withSpan(ctx, sp.id), sp
}

func (s *Span) event(kind Kind, at time.Time, detail string) *Event {
	return &Event{
		Time:     at,
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Name:     s.name,
		Detail:   detail,
	}
}

// End closes the span with an optional detail and returns how long it was open.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil {
		return 0
	}
	now := time.Now()
	ev := s.event(KindSpanEnd, now, detail)
	ev.Extra = s.extra
	s.tracer.Emit(ev)
	return now.Sub(s.started)
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.tracer == nil {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Point emits an instant event under the span of ctx.
func Point(ctx context.Context, scope Scope, name, detail string) {
	emitPoint(ctx, scope, name, detail, nil)
}

// Error emits an error point. Error points pass at every level but off,
// so a failed literal shows up even in an error-level trace.
func Error(ctx context.Context, scope Scope, name string, err error) {
	if err == nil {
		return
	}
	emitPoint(ctx, scope, name, "", map[string]string{"error": err.Error()})
}

func emitPoint(ctx context.Context, scope Scope, name, detail string, extra map[string]string) {
	b := bindingOf(ctx)
	if !b.tracer.Enabled() {
		return
	}
	b.tracer.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: b.span,
		Name:     name,
		Detail:   detail,
		Extra:    extra,
	})
}
