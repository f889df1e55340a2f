package trace

import "context"

type ctxKey struct{}

// binding is what a context carries: the tracer and the open span events
// are parented to.
type binding struct {
	tracer Tracer
	span   uint64
}

func bindingOf(ctx context.Context) binding {
	if ctx != nil {
		if b, ok := ctx.Value(ctxKey{}).(binding); ok {
			return b
		}
	}
	return binding{tracer: Nop}
}

// FromContext returns the tracer bound to ctx, Nop when there is none.
func FromContext(ctx context.Context) Tracer {
	return bindingOf(ctx).tracer
}

// WithTracer binds t to ctx. Спан-родитель сбрасывается.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, ctxKey{}, binding{tracer: t})
}

// parentSpan is the id of the innermost span started through ctx.
func parentSpan(ctx context.Context) uint64 {
	return bindingOf(ctx).span
}

func withSpan(ctx context.Context, id uint64) context.Context {
	b := bindingOf(ctx)
	b.span = id
	return context.WithValue(ctx, ctxKey{}, b)
}
