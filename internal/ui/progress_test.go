package ui

import (
	"strings"
	"testing"

	"ember/internal/driver"
)

func TestProgressModelAppliesEvents(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("decoding", []string{"a.str", "b.str"}, events).(*progressModel)

	m.Update(eventMsg(driver.Event{File: "a.str", Stage: driver.StageDecode, Status: driver.StatusWorking}))
	if got := m.rows[0].label(); got != "decoding" {
		t.Fatalf("label = %q", got)
	}
	m.Update(eventMsg(driver.Event{File: "a.str", Stage: driver.StageDecode, Status: driver.StatusDone, Literals: 3}))
	m.Update(eventMsg(driver.Event{File: "b.str", Stage: driver.StageCache, Status: driver.StatusDone, Literals: 2}))
	m.Update(eventMsg(driver.Event{File: "unknown.str", Status: driver.StatusError}))
	files, literals := m.tally()
	if files != 2 || literals != 5 || m.rows[1].label() != "cached" {
		t.Fatalf("tally = %d/%d, rows = %+v", files, literals, m.rows)
	}

	m.Update(closedMsg{})
	view := m.View()
	if !strings.Contains(view, "done: decoding (2/2 files, 5 literals)") || !strings.Contains(view, "a.str") {
		t.Fatalf("view = %q", view)
	}
}

func TestRowWeight(t *testing.T) {
	tests := []struct {
		row  fileRow
		want float64
	}{
		{fileRow{}, 0},
		{fileRow{stage: driver.StageLoad, status: driver.StatusWorking}, 0.2},
		{fileRow{stage: driver.StageDecode, status: driver.StatusWorking}, 0.5},
		{fileRow{stage: driver.StageLoad, status: driver.StatusError}, 1},
	}
	for _, tt := range tests {
		if got := tt.row.weight(); got != tt.want {
			t.Errorf("weight(%+v) = %v, want %v", tt.row, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("a/very/long/path.str", 10); got != "a/very/..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("日本語", 2); got != "日" {
		t.Errorf("truncate wide = %q", got)
	}
}
