package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gridkit/internal/grid"
)

func TestParseCell(t *testing.T) {
	t.Run("TypedSamples", func(t *testing.T) {
		cases := []struct {
			sample any
			text   string
			want   any
		}{
			{"old", "new", "new"},
			{42, "7", 7},
			{int64(42), "7", int64(7)},
			{3.14, "2.5", 2.5},
			{true, "false", false},
			{nil, "free text", "free text"},
		}
		for _, c := range cases {
			got, err := parseCell(c.sample, c.text)
			if err != nil {
				t.Errorf("parseCell(%v, %q): %v", c.sample, c.text, err)
				continue
			}
			if got != c.want {
				t.Errorf("parseCell(%v, %q) = %v, want %v", c.sample, c.text, got, c.want)
			}
		}
	})

	t.Run("Date", func(t *testing.T) {
		got, err := parseCell(time.Time{}, "2024-03-01")
		if err != nil {
			t.Fatal(err)
		}
		ts := got.(time.Time)
		if ts.Year() != 2024 || ts.Month() != time.March {
			t.Errorf("got %v", ts)
		}
	})

	t.Run("BadNumber", func(t *testing.T) {
		if _, err := parseCell(42, "seven"); err == nil {
			t.Errorf("expected an error")
		}
	})
}

func TestFormVetoKeepsSessionOpen(t *testing.T) {
	g := testGrid(testAnimals()...)
	g.OnRowUpdating(func(c *grid.RowChange[*animal]) { c.Cancel() })

	g.BeginEdit(g.Rows()[0])
	form := NewFormModel(g)
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if g.EditState() != grid.EditExisting {
		t.Errorf("a vetoed save must keep the session open for retry")
	}
	if !containsVisible(form.View(), "rejected") {
		t.Errorf("form must surface the rejection")
	}
}

func TestFormFieldNavigation(t *testing.T) {
	g := testGrid(testAnimals()...)
	g.BeginEdit(g.Rows()[0])
	form := NewFormModel(g)

	if form.focus != 0 {
		t.Fatalf("focus starts at the first field")
	}
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyTab})
	if form.focus != 1 {
		t.Errorf("tab must advance focus, got %d", form.focus)
	}
	form, _ = form.Update(tea.KeyMsg{Type: tea.KeyTab})
	if form.focus != 0 {
		t.Errorf("tab must wrap around, got %d", form.focus)
	}
}
