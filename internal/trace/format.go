package trace

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Format is how a tracer renders events.
type Format uint8

const (
	FormatAuto   Format = iota // by output path: .ndjson/.jsonl give NDJSON
	FormatText                 // one aligned line per event
	FormatNDJSON               // one JSON object per line
)

// ParseFormat reads the --trace-format value. "json" is accepted for NDJSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson", "json":
		return FormatNDJSON, nil
	}
	return FormatAuto, fmt.Errorf("invalid trace format: %q (expected: auto|text|ndjson)", s)
}

// formatFor resolves FormatAuto against the output path.
func formatFor(f Format, path string) Format {
	if f != FormatAuto {
		return f
	}
	if strings.HasSuffix(path, ".ndjson") || strings.HasSuffix(path, ".jsonl") {
		return FormatNDJSON
	}
	return FormatText
}

var processStart = time.Now()

// FormatEvent renders ev as one newline-terminated record.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return appendNDJSON(nil, ev)
	}
	return appendText(nil, ev)
}

type jsonEvent struct {
	Time     string            `json:"time"`
	Seq      uint64            `json:"seq"`
	Kind     string            `json:"kind"`
	Scope    string            `json:"scope"`
	SpanID   uint64            `json:"span_id,omitempty"`
	ParentID uint64            `json:"parent_id,omitempty"`
	Name     string            `json:"name"`
	Detail   string            `json:"detail,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

func appendNDJSON(dst []byte, ev *Event) []byte {
	data, err := json.Marshal(jsonEvent{
		Time:     ev.Time.Format(time.RFC3339Nano),
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		Name:     ev.Name,
		Detail:   ev.Detail,
		Extra:    ev.Extra,
	})
	if err != nil {
		// map[string]string и строки всегда сериализуются
		return dst
	}
	return append(append(dst, data...), '\n')
}

var kindGlyphs = [...]string{KindSpanBegin: "→", KindSpanEnd: "←", KindPoint: "•"}

// appendText: "[  12.345ms] file    → scan:a.str (ok) literals=3"
func appendText(dst []byte, ev *Event) []byte {
	ms := float64(ev.Time.Sub(processStart).Microseconds()) / 1000
	dst = fmt.Appendf(dst, "[%9.3fms] %-7s ", ms, ev.Scope)
	if int(ev.Kind) < len(kindGlyphs) && kindGlyphs[ev.Kind] != "" {
		dst = append(dst, kindGlyphs[ev.Kind]...)
		dst = append(dst, ' ')
	}
	dst = append(dst, ev.Name...)
	if ev.Detail != "" {
		dst = append(dst, " ("...)
		dst = append(dst, ev.Detail...)
		dst = append(dst, ')')
	}
	for _, k := range slices.Sorted(maps.Keys(ev.Extra)) {
		dst = append(dst, ' ')
		dst = append(dst, k...)
		dst = append(dst, '=')
		dst = strconv.AppendQuote(dst, ev.Extra[k])
	}
	return append(dst, '\n')
}
