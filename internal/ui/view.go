package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"deskpet/internal/pet"
)

var (
	windowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C91BF"))

	petStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF75B5")).
			Bold(true)

	pointerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD75F")).
			Bold(true)

	commentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF75B5")).
			Italic(true)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87FF87")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD75F")).
			Bold(true)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Quitting {
		return "Fine. Enjoy your windows while they last.\n"
	}
	if m.TermWidth == 0 || m.TermHeight == 0 {
		return "summoning the pest..."
	}

	var b strings.Builder
	b.WriteString(m.renderDesktop())
	b.WriteString(m.renderStats())
	return b.String()
}

// renderDesktop paints the fake desktop: window outlines, the pointer and
// the pet, scaled from screen pixels down to terminal cells.
func (m Model) renderDesktop() string {
	width, height := m.desktopArea()
	if width <= 0 || height <= 0 {
		return ""
	}

	// One rune per cell; styling is applied per-row afterwards so that
	// multi-byte glyphs don't wreck the column math.
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for _, w := range m.Control.AppWindows() {
		m.drawWindow(grid, w.Title, w.X, w.Y, w.W, w.H)
	}

	rows := make([]string, height)
	for i, row := range grid {
		rows[i] = windowStyle.Render(string(row))
	}

	// Pointer, then the pet on top so it always wins its cell.
	px, py := m.Control.PointerPosition()
	cx, cy := m.screenToCell(float64(px), float64(py))
	petX, petY := m.screenToCell(m.Agent.X+pet.PetSize/2, m.Agent.Y+pet.PetSize/2)
	if cy >= 0 && cy < height && !(cy == petY && cx == petX) {
		rows[cy] = spliceGlyph(grid[cy], cx, pointerStyle.Render("+"))
	}
	if petY >= 0 && petY < height {
		rows[petY] = spliceGlyph(grid[petY], petX, petStyle.Render(m.Agent.Glyph()))
	}

	return strings.Join(rows, "\n") + "\n"
}

// spliceGlyph rebuilds one row with a styled glyph in place of one cell.
func spliceGlyph(row []rune, x int, glyph string) string {
	if x < 0 {
		x = 0
	}
	if x >= len(row) {
		x = len(row) - 1
	}
	left := windowStyle.Render(string(row[:x]))
	var right string
	if x+1 < len(row) {
		right = windowStyle.Render(string(row[x+1:]))
	}
	return left + glyph + right
}

// drawWindow traces a window's border and title into the cell grid.
func (m Model) drawWindow(grid [][]rune, title string, x, y, w, h int) {
	x0, y0 := m.screenToCell(float64(x), float64(y))
	x1, y1 := m.screenToCell(float64(x+w), float64(y+h))
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for cx := x0; cx <= x1; cx++ {
		put(grid, cx, y0, '─')
		put(grid, cx, y1, '─')
	}
	for cy := y0; cy <= y1; cy++ {
		put(grid, x0, cy, '│')
		put(grid, x1, cy, '│')
	}
	put(grid, x0, y0, '┌')
	put(grid, x1, y0, '┐')
	put(grid, x0, y1, '└')
	put(grid, x1, y1, '┘')
	put(grid, x1, y0, 'x') // the close affordance the pet aims for

	label := []rune(title)
	maxLabel := x1 - x0 - 3
	if maxLabel > 0 {
		if len(label) > maxLabel {
			label = label[:maxLabel]
		}
		for i, r := range label {
			put(grid, x0+2+i, y0, r)
		}
	}
}

func put(grid [][]rune, x, y int, r rune) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = r
}
