package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gridkit/internal/app"
	"gridkit/internal/config"
	"gridkit/internal/db"
	"gridkit/internal/grid"
)

// person is the demo record type. Field tags are not needed: the
// remote loader maps columns by name.
type person struct {
	ID   int
	Name string
	Age  int
	City string
}

func personColumns(g *grid.Grid[*person]) {
	g.AddColumn(&grid.Column[*person]{
		ID: "id", Field: "id", Title: "ID",
		Sortable: true,
		GetValue: func(p *person) any { return p.ID },
	})
	g.AddColumn(&grid.Column[*person]{
		ID: "name", Field: "name", Title: "Name",
		Sortable: true, Editable: true, Filterable: true,
		GetValue: func(p *person) any { return p.Name },
		SetValue: func(p *person, v any) { p.Name, _ = v.(string) },
	})
	g.AddColumn(&grid.Column[*person]{
		ID: "age", Field: "age", Title: "Age",
		Sortable: true, Editable: true, Filterable: true,
		GetValue: func(p *person) any { return p.Age },
		SetValue: func(p *person, v any) { p.Age, _ = v.(int) },
	})
	g.AddColumn(&grid.Column[*person]{
		ID: "city", Field: "city", Title: "City",
		Sortable: true, Editable: true, Filterable: true,
		GetValue: func(p *person) any { return p.City },
		SetValue: func(p *person, v any) { p.City, _ = v.(string) },
	})
}

func samplePeople() []*person {
	names := []string{
		"Ada", "Bella", "Casper", "Dmitri", "Elena", "Farid", "Greta",
		"Hugo", "Ines", "Jonas", "Katja", "Luis", "Marta", "Nils",
		"Olga", "Piotr", "Quinn", "Rosa", "Sven", "Tilda", "Umar",
		"Vera", "Wim",
	}
	cities := []string{"Berlin", "Lisbon", "Oslo", "Prague", "Madrid"}
	people := make([]*person, len(names))
	for i, n := range names {
		people[i] = &person{
			ID:   i + 1,
			Name: n,
			Age:  21 + (i*7)%40,
			City: cities[i%len(cities)],
		}
	}
	return people
}

func parseFilterMethod(s string) (grid.FilterMethod, bool) {
	switch strings.ToLower(s) {
	case "contains":
		return grid.Contains, true
	case "starts-with":
		return grid.StartsWith, true
	case "ends-with":
		return grid.EndsWith, true
	case "equals":
		return grid.Equals, true
	case "not-equals":
		return grid.NotEquals, true
	}
	return grid.Contains, false
}

func main() {
	cfg, _ := config.Load()

	uri := flag.String("uri", cfg.URI, "PostgreSQL URI; enables remote mode")
	tableDefault := cfg.Table
	if tableDefault == "" {
		tableDefault = "people"
	}
	table := flag.String("table", tableDefault, "table to load in remote mode")
	flag.Parse()

	opts := grid.DefaultOptions()
	opts.Editable = true
	opts.Filterable = true
	if cfg.PageSize > 0 {
		opts.PageSize = cfg.PageSize
	}
	if cfg.MaxPaginationLinks > 0 {
		opts.MaxPaginationLinks = cfg.MaxPaginationLinks
	}
	if m, ok := parseFilterMethod(cfg.FilterMethod); ok {
		opts.FilterMethod = m
	}
	if strings.EqualFold(cfg.EditMode, "popup") {
		opts.EditMode = grid.EditModePopup
	}

	g := grid.New[*person](opts)
	personColumns(g)
	g.SetItemFactory(func() *person { return &person{} })

	// Host-side veto: a person needs a name.
	rejectEmptyName := func(c *grid.RowChange[*person]) {
		if name, _ := c.Values["name"].(string); strings.TrimSpace(name) == "" {
			c.Cancel()
		}
	}
	g.OnRowInserting(rejectEmptyName)
	g.OnRowUpdating(rejectEmptyName)

	var load app.ReadFunc[*person]
	title := "gridkit :: local data"

	if *uri != "" {
		database, err := db.Connect(*uri)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer database.Close()

		loader := db.NewLoader[person](database, *table)
		load = func(ctx context.Context, req grid.ReadRequest) ([]*person, int, error) {
			return loader.Read(ctx, req)
		}
		title = "gridkit :: " + database.ConnInfo()
	} else {
		g.SetSource(grid.NewSliceSource(samplePeople()...))
	}

	model := app.NewModel(title, g, load)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
