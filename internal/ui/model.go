// Package ui is the terminal front-end: a pretend desktop the pet roams
// while the real behavior engine runs underneath. It owns the fixed-rate
// tick that drives the core and translates key presses into the game
// request protocol.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"deskpet/internal/desktop"
	"deskpet/internal/games"
	"deskpet/internal/pet"
)

const tickInterval = 16 * time.Millisecond // ~60Hz, same cadence as the core

// Model is the Bubble Tea model wrapping the pet.
type Model struct {
	Agent   *pet.Agent
	Control desktop.Control
	Manager *games.Manager

	TermWidth  int
	TermHeight int

	Spinner   spinner.Model
	AnnoyBar  progress.Model
	CraveBar  progress.Model
	PunishBar progress.Model

	Quitting bool
	dragging bool
}

type tickMsg time.Time

// NewModel wires a model around an already-constructed pet.
func NewModel(agent *pet.Agent, ctl desktop.Control, mgr *games.Manager) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		Agent:     agent,
		Control:   ctl,
		Manager:   mgr,
		Spinner:   sp,
		AnnoyBar:  progress.New(progress.WithDefaultGradient()),
		CraveBar:  progress.New(progress.WithDefaultGradient()),
		PunishBar: progress.New(progress.WithDefaultGradient()),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.Spinner.Tick, tea.EnterAltScreen)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.TermWidth = msg.Width
		m.TermHeight = msg.Height
		barWidth := msg.Width/3 - 16
		if barWidth < 10 {
			barWidth = 10
		}
		m.AnnoyBar.Width = barWidth
		m.CraveBar.Width = barWidth
		m.PunishBar.Width = barWidth
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tickMsg:
		m.Agent.Tick()
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		m.Quitting = true
		return m, tea.Quit
	}

	// A running minigame gets first claim on the keyboard.
	if m.Manager != nil && m.Manager.Running() {
		m.Manager.HandleKey(key)
		return m, nil
	}

	switch key {
	case "y":
		m.Agent.AcceptGame()
	case "n":
		if m.Agent.State == pet.GameRequest {
			m.Agent.DenyGame()
		}
	case "g":
		m.Agent.RequestGame(true)
	case "p":
		m.Agent.LaunchGame()
	}
	return m, nil
}

// handleMouse lets the user grab and drag the pet around the fake desktop,
// which it resents.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := m.cellToScreen(msg.X, msg.Y)
	switch msg.Type {
	case tea.MouseLeft:
		if m.dragging {
			m.Agent.DragTo(x-pet.PetSize/2, y-pet.PetSize/2)
		} else if m.overPet(x, y) {
			m.dragging = true
			m.Agent.BeginDrag()
		}
	case tea.MouseMotion:
		if m.dragging {
			m.Agent.DragTo(x-pet.PetSize/2, y-pet.PetSize/2)
		}
	case tea.MouseRelease:
		if m.dragging {
			m.dragging = false
			m.Agent.EndDrag()
		}
	}
	return m, nil
}

func (m Model) overPet(x, y float64) bool {
	return x >= m.Agent.X && x < m.Agent.X+pet.PetSize &&
		y >= m.Agent.Y && y < m.Agent.Y+pet.PetSize
}

// cellToScreen maps a terminal cell to pet screen coordinates.
func (m Model) cellToScreen(cx, cy int) (float64, float64) {
	w, h := m.Control.ScreenSize()
	dw, dh := m.desktopArea()
	if dw == 0 || dh == 0 {
		return 0, 0
	}
	return float64(cx) * float64(w) / float64(dw), float64(cy) * float64(h) / float64(dh)
}

// screenToCell maps pet screen coordinates to a terminal cell.
func (m Model) screenToCell(x, y float64) (int, int) {
	w, h := m.Control.ScreenSize()
	dw, dh := m.desktopArea()
	if w == 0 || h == 0 {
		return 0, 0
	}
	return int(x * float64(dw) / float64(w)), int(y * float64(dh) / float64(h))
}

// desktopArea is the cell region the fake desktop is drawn into: the full
// width, and everything above the stats pane.
func (m Model) desktopArea() (int, int) {
	h := m.TermHeight - statsPaneHeight
	if h < 0 {
		h = 0
	}
	return m.TermWidth, h
}
