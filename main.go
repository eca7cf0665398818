package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"deskpet/internal/desktop"
	"deskpet/internal/games"
	"deskpet/internal/pet"
	"deskpet/internal/ui"
)

// Simulated desktop dimensions, in pretend pixels. The TUI scales these
// down to terminal cells.
const (
	simWidth  = 1280
	simHeight = 800
)

func main() {
	var (
		control = flag.String("control", "sim", "pointer/window backend: sim or real")
		profile = flag.String("profile", "frantic", "craving profile: frantic or calm")
		name    = flag.String("name", pet.DefaultPetName, "the pest's name")
	)
	flag.Parse()

	var ctl desktop.Control
	switch *control {
	case "real":
		ctl = desktop.NewRobot()
		log.Printf("real pointer control enabled - your cursor belongs to %s now", *name)
	default:
		ctl = desktop.NewSimulated(simWidth, simHeight)
	}

	prof := pet.ProfileFrantic
	if *profile == "calm" {
		prof = pet.ProfileCalm
	}

	mgr := games.NewManager(games.DefaultRegistry()...)
	agent := pet.New(*name, ctl, mgr, prof)

	p := tea.NewProgram(
		ui.NewModel(agent, ctl, mgr),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
