package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spoonful-labs/recipeshare/config"
	"github.com/spoonful-labs/recipeshare/internal/client"
	"github.com/spoonful-labs/recipeshare/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Client diagnostics go to a file; stderr belongs to the TUI.
	if f, err := tea.LogToFile("recipeshare-tui.log", "tui"); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	app := tui.New(client.New(cfg.BackendURL))
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Printf("TUI error: %v", err)
		os.Exit(1)
	}
}
