package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/butterflies/internal/config"
	"github.com/jask/butterflies/internal/tui"
)

func main() {
	if path, err := config.Path(); err != nil {
		log.Printf("warn: no config path: %v", err)
	} else if err := config.EnsureFile(path); err != nil {
		log.Printf("warn: using built-in defaults, could not write %s: %v", path, err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	p := tea.NewProgram(tui.New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
