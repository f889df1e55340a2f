// Package observ collects per-stage timings of a batch decode for
// --timings.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Timer aggregates durations by stage ("load", "decode"). Every file adds
// one sample to its stage, so the summary stays a few lines for any number
// of inputs. Safe for concurrent use; a nil *Timer records nothing.
type Timer struct {
	mu          sync.Mutex
	stages      []stage // в порядке первого появления
	first, last time.Time
}

type stage struct {
	name    string
	samples int
	units   int
	total   time.Duration
	max     time.Duration
	slowest string
}

func NewTimer() *Timer { return &Timer{} }

var noop = func(int) {}

// Track starts timing item within stage. The returned func stops it and
// adds units (literals decoded, say) to the stage count.
func (t *Timer) Track(stageName, item string) (done func(units int)) {
	if t == nil {
		return noop
	}
	started := time.Now()
	return func(units int) {
		t.record(stageName, item, started, time.Now(), units)
	}
}

func (t *Timer) record(name, item string, from, to time.Time, units int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.first.IsZero() || from.Before(t.first) {
		t.first = from
	}
	if to.After(t.last) {
		t.last = to
	}
	i := 0
	for i < len(t.stages) && t.stages[i].name != name {
		i++
	}
	if i == len(t.stages) {
		t.stages = append(t.stages, stage{name: name})
	}
	st := &t.stages[i]
	d := to.Sub(from)
	st.samples++
	st.units += units
	st.total += d
	if d >= st.max {
		st.max, st.slowest = d, item
	}
}

// StageReport is one aggregated stage in --timings output.
type StageReport struct {
	Name    string  `json:"name"`
	Samples int     `json:"samples"`
	Units   int     `json:"units,omitempty"`
	TotalMS float64 `json:"total_ms"`
	MaxMS   float64 `json:"max_ms"`
	Slowest string  `json:"slowest,omitempty"`
}

// Report: WallMS is first start to last stop, so stages that ran on
// several workers at once are not added up.
type Report struct {
	WallMS float64       `json:"wall_ms"`
	Stages []StageReport `json:"stages"`
}

func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	rep := Report{WallMS: ms(t.last.Sub(t.first)), Stages: make([]StageReport, len(t.stages))}
	for i, st := range t.stages {
		rep.Stages[i] = StageReport{
			Name:    st.name,
			Samples: st.samples,
			Units:   st.units,
			TotalMS: ms(st.total),
			MaxMS:   ms(st.max),
			Slowest: st.slowest,
		}
	}
	return rep
}

// Summary renders Report as a small table.
func (t *Timer) Summary() string {
	rep := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, st := range rep.Stages {
		fmt.Fprintf(&sb, "  %-8s %5d× %9.2f ms  max %8.2f ms", st.Name, st.Samples, st.TotalMS, st.MaxMS)
		if st.Slowest != "" {
			fmt.Fprintf(&sb, " (%s)", st.Slowest)
		}
		if st.Units > 0 {
			fmt.Fprintf(&sb, "  %d units", st.Units)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-8s %16.2f ms\n", "wall", rep.WallMS)
	return sb.String()
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
