package ui

import (
	"strings"
	"testing"

	"pyprojectfmt/internal/driver"
)

func TestApplyEvents(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("formatting", []string{"a/pyproject.toml", "b/pyproject.toml"}, events).(*progressModel)

	m.Update(eventMsg{File: "a/pyproject.toml", Stage: driver.StageFormat, Status: driver.StatusWorking})
	if got := m.items[0].status; got != "formatting" {
		t.Fatalf("status = %q", got)
	}
	m.Update(eventMsg{File: "a/pyproject.toml", Stage: driver.StageFormat, Status: driver.StatusDone, Changed: true})
	m.Update(eventMsg{File: "b/pyproject.toml", Stage: driver.StageFormat, Status: driver.StatusError})

	if m.changed != 1 || m.finished() != 2 {
		t.Fatalf("changed %d finished %d", m.changed, m.finished())
	}
	m.Update(eventMsg{File: "c/pyproject.toml", Stage: driver.StageRead, Status: driver.StatusQueued})
	if len(m.items) != 3 || m.items[2].status != "queued" {
		t.Fatalf("late file not added: %+v", m.items)
	}
	m.Update(eventMsg{File: "c/pyproject.toml", Stage: driver.StageFormat, Status: driver.StatusCached})
	m.Update(doneMsg{})
	view := m.View()
	for _, want := range []string{"done: formatting (3/3, 1 changed)", "cached", "changed", "error", "b/pyproject.toml"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"a/very/long/path/pyproject.toml", 10, "a/very/..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
