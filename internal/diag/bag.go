package diag

import (
	"cmp"
	"slices"

	"ember/internal/source"
)

// Bag collects diagnostics of one decode, up to an optional limit.
type Bag struct {
	items []Diagnostic
	max   int // 0: без лимита
}

// NewBag creates a bag that keeps at most max diagnostics; max <= 0 means unbounded.
func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	return &Bag{items: make([]Diagnostic, 0, min(max, 64)), max: max}
}

// Add reports false when the limit is reached and d was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int { return b.max }
func (b *Bag) Len() int { return len(b.items) }

func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= SevError })
}

// Items is the bag's own slice; callers must not modify it.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends other. The limit grows to fit, so per-file bags that were
// each under the limit never lose diagnostics in the batch result.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
	if b.max > 0 {
		b.max = max(b.max, len(b.items))
	}
}

// Sort orders by file, then span, then more severe first, then code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup drops repeats of the same code on the same span, keeping the first.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span source.Span
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, d.Primary}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
