package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/estateplan/epgo/internal/calculation"
	"github.com/estateplan/epgo/internal/catalog"
	"github.com/estateplan/epgo/internal/runstore"
	"github.com/estateplan/epgo/internal/tui"
)

func main() {
	storePath := flag.String("store", "epgo-runs.db", "path to the run store database")
	scenariosFile := flag.String("scenarios", "", "YAML file with additional scenario definitions")
	flag.Parse()

	var (
		cat *catalog.Catalog
		err error
	)
	if *scenariosFile != "" {
		cat, err = catalog.LoadFile(*scenariosFile)
	} else {
		cat, err = catalog.Builtin()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	backend, err := runstore.NewSQLiteBackend(*storePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run store: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	store, err := runstore.New(backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading run store: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewModel(cat, calculation.NewEngine(cat), store)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
