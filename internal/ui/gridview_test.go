package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gridkit/internal/grid"
)

type animal struct {
	Name string
	Legs int
}

func testGrid(items ...*animal) *grid.Grid[*animal] {
	opts := grid.DefaultOptions()
	opts.Editable = true
	opts.Filterable = true
	opts.PageSize = 3
	g := grid.New[*animal](opts)
	g.AddColumn(&grid.Column[*animal]{
		ID: "name", Field: "name", Title: "Name",
		Sortable: true, Editable: true, Filterable: true,
		GetValue: func(a *animal) any { return a.Name },
		SetValue: func(a *animal, v any) { a.Name, _ = v.(string) },
	})
	g.AddColumn(&grid.Column[*animal]{
		ID: "legs", Field: "legs", Title: "Legs",
		Sortable: true, Editable: true, Filterable: true,
		GetValue: func(a *animal) any { return a.Legs },
		SetValue: func(a *animal, v any) { a.Legs, _ = v.(int) },
	})
	g.SetSource(grid.NewSliceSource(items...))
	g.SetItemFactory(func() *animal { return &animal{} })
	return g
}

func testAnimals() []*animal {
	return []*animal{
		{Name: "cat", Legs: 4},
		{Name: "dog", Legs: 4},
		{Name: "hen", Legs: 2},
		{Name: "ant", Legs: 6},
	}
}

func testView(items ...*animal) GridView[*animal] {
	v := NewGridView(testGrid(items...))
	v.SetFocused(true)
	v.SetSize(60, 16)
	return v
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// stripANSI removes all ANSI CSI sequences from s.
func stripANSI(s string) string {
	var sb strings.Builder
	inEsc := false
	for _, r := range s {
		if inEsc {
			if r == 'm' {
				inEsc = false
			}
			continue
		}
		if r == '\x1b' {
			inEsc = true
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func containsVisible(rendered, sub string) bool {
	return strings.Contains(stripANSI(rendered), sub)
}

func TestGridViewRender(t *testing.T) {
	t.Run("HeaderAndRows", func(t *testing.T) {
		v := testView(testAnimals()...)
		out := v.View()
		for _, want := range []string{"Name", "Legs", "cat", "dog", "hen"} {
			if !containsVisible(out, want) {
				t.Errorf("render missing %q", want)
			}
		}
		if containsVisible(out, "ant") {
			t.Errorf("page 2 row must not render on page 1")
		}
	})

	t.Run("PagerShowsCurrentPage", func(t *testing.T) {
		v := testView(testAnimals()...)
		out := v.View()
		if !containsVisible(out, "[1]") || !containsVisible(out, "page 1 of 2") {
			t.Errorf("pager missing from:\n%s", stripANSI(out))
		}
	})

	t.Run("SortMarker", func(t *testing.T) {
		v := testView(testAnimals()...)
		v, _ = v.Update(keyRunes("s"))
		out := v.View()
		if !containsVisible(out, "Name ▼") {
			t.Errorf("first sort click must show a descending marker")
		}
	})

	t.Run("EmptyGrid", func(t *testing.T) {
		v := testView()
		if !containsVisible(v.View(), "No rows") {
			t.Errorf("empty grid placeholder missing")
		}
	})
}

func TestGridViewKeys(t *testing.T) {
	t.Run("PageKeys", func(t *testing.T) {
		v := testView(testAnimals()...)
		v, _ = v.Update(keyRunes("]"))
		if v.Grid().CurrentPage() != 2 {
			t.Fatalf("page = %d, want 2", v.Grid().CurrentPage())
		}
		if !containsVisible(v.View(), "ant") {
			t.Errorf("page 2 must show the fourth row")
		}
		v, _ = v.Update(keyRunes("["))
		if v.Grid().CurrentPage() != 1 {
			t.Errorf("page = %d, want 1", v.Grid().CurrentPage())
		}
	})

	t.Run("SelectRow", func(t *testing.T) {
		v := testView(testAnimals()...)
		v, _ = v.Update(keyRunes("j"))
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
		sel, ok := v.Grid().SelectedRow()
		if !ok || sel.Name != "dog" {
			t.Errorf("selected = %+v", sel)
		}
	})

	t.Run("AddOpensEditor", func(t *testing.T) {
		v := testView(testAnimals()...)
		v, _ = v.Update(keyRunes("a"))
		if !v.IsEditing() {
			t.Fatalf("'a' must open the editor")
		}
		if !containsVisible(v.View(), "New row") {
			t.Errorf("editor title missing")
		}
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if v.IsEditing() {
			t.Errorf("esc must cancel the session")
		}
	})

	t.Run("DeleteUnderCursor", func(t *testing.T) {
		v := testView(testAnimals()...)
		v, _ = v.Update(keyRunes("d"))
		if v.Grid().Total() != 3 {
			t.Errorf("total = %d, want 3", v.Grid().Total())
		}
	})

	t.Run("FilterPrompt", func(t *testing.T) {
		v := testView(testAnimals()...)
		v, _ = v.Update(keyRunes("/"))
		if !v.IsFiltering() {
			t.Fatalf("'/' must open the filter prompt")
		}
		for _, r := range "cat" {
			v, _ = v.Update(keyRunes(string(r)))
		}
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if v.IsFiltering() {
			t.Fatalf("enter must close the prompt")
		}
		rows := v.Grid().Rows()
		if len(rows) != 1 || rows[0].Name != "cat" {
			t.Errorf("filter not applied, got %d rows", len(rows))
		}
	})

	t.Run("UnfocusedIgnoresKeys", func(t *testing.T) {
		v := testView(testAnimals()...)
		v.SetFocused(false)
		v, _ = v.Update(keyRunes("]"))
		if v.Grid().CurrentPage() != 1 {
			t.Errorf("unfocused view must ignore keys")
		}
	})
}

func TestGridViewEditFlow(t *testing.T) {
	v := testView(testAnimals()...)

	// Edit the first row's name and save with ctrl+s.
	v, _ = v.Update(keyRunes("e"))
	if !v.IsEditing() {
		t.Fatalf("'e' must open the editor")
	}
	for i := 0; i < 3; i++ { // clear "cat"
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	for _, r := range "lion" {
		v, _ = v.Update(keyRunes(string(r)))
	}
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if v.IsEditing() {
		t.Fatalf("save must close the editor")
	}
	rows := v.Grid().Rows()
	if rows[0].Name != "lion" {
		t.Errorf("row name = %q, want lion", rows[0].Name)
	}
}
