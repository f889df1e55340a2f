package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"PHASE", LevelPhase, false},
		{" detail ", LevelDetail, false},
		{"debug", LevelDebug, false},
		{"loud", LevelOff, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) err = %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestShouldEmit(t *testing.T) {
	if LevelPhase.ShouldEmit(ScopeFile) {
		t.Error("phase must not emit file scope")
	}
	if !LevelDetail.ShouldEmit(ScopeFile) || LevelDetail.ShouldEmit(ScopeLiteral) {
		t.Error("detail must stop at file scope")
	}
	if !LevelDebug.ShouldEmit(ScopeLiteral) {
		t.Error("debug emits everything")
	}
	if LevelError.ShouldEmit(ScopeDriver) {
		t.Error("error level emits only error points")
	}
	if LevelOff.ShouldEmit(ScopeDriver) || LevelDebug.ShouldEmit(0) {
		t.Error("off level and zero scope never emit")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatAuto, "auto": FormatAuto, "TEXT": FormatText, "ndjson": FormatNDJSON, "json": FormatNDJSON} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("unknown format must fail")
	}
}

func TestStartParentsNestedSpans(t *testing.T) {
	r := NewRingTracer(8, LevelDebug)
	ctx := WithTracer(context.Background(), r)
	ctx, outer := Start(ctx, ScopeDriver, "decode")
	inner, lit := Start(ctx, ScopeLiteral, "literal")
	Point(inner, ScopeLiteral, "escape", `\n`)
	lit.End("")
	outer.End("")

	snap := r.Snapshot()
	if len(snap) != 5 || r.Len() != 5 {
		t.Fatalf("got %d events, Len %d", len(snap), r.Len())
	}
	if snap[0].ParentID != 0 || snap[1].ParentID != outer.ID() || snap[2].ParentID != lit.ID() {
		t.Fatalf("parents = %d %d %d", snap[0].ParentID, snap[1].ParentID, snap[2].ParentID)
	}
	for i := 1; i < len(snap); i++ {
		if snap[i].Seq <= snap[i-1].Seq {
			t.Fatalf("seq not increasing at %d", i)
		}
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	ctx := WithTracer(context.Background(), tr)

	ctx, sp := Start(ctx, ScopeDriver, "decode")
	_, file := Start(ctx, ScopeFile, "file:a.str")
	file.WithExtra("literals", "3").End("ok")
	_, lit := Start(ctx, ScopeLiteral, "literal")
	lit.End("filtered")
	sp.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 events, got %d:\n%s", len(lines), buf.String())
	}
	var ev jsonEvent
	if err := json.Unmarshal([]byte(lines[2]), &ev); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if ev.Kind != "end" || ev.Name != "file:a.str" || ev.Extra["literals"] != "3" || ev.ParentID == 0 {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestErrorPointPassesAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithTracer(context.Background(), NewStreamTracer(&buf, LevelError, FormatText))
	_, sp := Start(ctx, ScopeDriver, "decode")
	sp.End("")
	Point(ctx, ScopeDriver, "ignored", "")
	Error(ctx, ScopeFile, "load", errors.New("boom"))

	out := buf.String()
	if strings.Count(out, "\n") != 1 || !strings.Contains(out, `error="boom"`) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRingTracerWraps(t *testing.T) {
	r := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		r.Emit(&Event{Kind: KindPoint, Scope: ScopeLiteral, Name: name})
	}
	snap := r.Snapshot()
	if r.Len() != 2 {
		t.Fatalf("Len = %d", r.Len())
	}
	if len(snap) != 2 || snap[0].Name != "b" || snap[1].Name != "c" {
		t.Fatalf("snapshot = %+v", snap)
	}
	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "• c") {
		t.Fatalf("dump = %q", buf.String())
	}
}

func TestNewConfig(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("off level must give a disabled tracer: %v", err)
	}
	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	ring, ok := Ring(tr)
	if !ok {
		t.Fatal("both mode must carry a ring")
	}
	tr.Emit(&Event{Kind: KindPoint, Scope: ScopeDriver, Name: "x"})
	if buf.Len() == 0 || len(ring.Snapshot()) != 1 {
		t.Fatal("event must reach stream and ring")
	}
	if _, err := ParseMode("tape"); err == nil {
		t.Fatal("unknown mode must fail")
	}
}

func TestFromContextDefaults(t *testing.T) {
	//nolint:staticcheck // nil context is handled
	if FromContext(nil) != Nop {
		t.Fatal("nil context must yield Nop")
	}
	sp := Begin(Nop, ScopeDriver, "x", 0)
	if sp.End("") != 0 || sp.ID() != 0 {
		t.Fatal("nop span must be inert")
	}
}
