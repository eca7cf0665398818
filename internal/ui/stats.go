package ui

import (
	"fmt"
	"strings"

	"deskpet/internal/pet"
)

// statsPaneHeight is the number of terminal rows reserved below the fake
// desktop for meters, commentary and game prompts.
const statsPaneHeight = 6

// meterScale maps an unbounded accumulator onto a 0..1 bar. The ledger has
// no ceiling; the bar just saturates.
const meterScale = 15.0

func meter(v float64) float64 {
	p := v / meterScale
	if p > 1 {
		p = 1
	}
	return p
}

// renderStats paints the pane under the desktop: status, meters, the last
// comment and whatever prompt is pending.
func (m Model) renderStats() string {
	var b strings.Builder
	l := &m.Agent.Ledger

	b.WriteString(m.Agent.StatusLine())
	b.WriteString(fmt.Sprintf("   won %d · lost %d · denied %d · windows closed %d\n",
		l.GamesWon, l.GamesLost, l.GamesDenied, l.WindowsClosed))

	b.WriteString("annoyance ")
	b.WriteString(m.AnnoyBar.ViewAs(meter(l.Annoyance)))
	b.WriteString("  craving ")
	b.WriteString(m.CraveBar.ViewAs(meter(l.Craving)))
	b.WriteString("  punishment ")
	b.WriteString(m.PunishBar.ViewAs(meter(l.Punishment)))
	b.WriteString("\n")

	if m.Agent.LastComment != "" {
		b.WriteString(commentStyle.Render("💬 " + m.Agent.LastComment))
	}
	b.WriteString("\n")

	switch {
	case m.Manager != nil && m.Manager.Running():
		s := m.Manager.Current()
		b.WriteString(gameStyle.Render(m.Spinner.View() + " " + s.Name() + ": " + s.Prompt()))
	case m.Agent.State == pet.GameRequest:
		b.WriteString(promptStyle.Render("🎮 Play a game? [y]es / [n]o"))
	default:
		b.WriteString("q quit · g request game · p instant game · drag the pet at your peril")
	}
	b.WriteString("\n")

	return b.String()
}
