// Package desktop abstracts the pointer and window primitives the pet
// needs. Implementations must be safe no-ops where the platform cannot
// deliver: return zero positions and empty window lists rather than fail.
package desktop

import "strings"

// Window describes one enumerated application window.
type Window struct {
	ID    int
	Title string
	X, Y  int
	W, H  int
}

// CloseButton returns the screen position of the window's close affordance,
// 15px in from the top-right corner (top-left on macOS is the real control's
// concern; the pet only ever asks for a point to click).
func (w Window) CloseButton() (int, int) {
	return w.X + w.W - 15, w.Y + 15
}

// Center returns the window's midpoint.
func (w Window) Center() (int, int) {
	return w.X + w.W/2, w.Y + w.H/2
}

// Control is the pointer/window collaborator contract.
type Control interface {
	// ScreenSize reports the primary display bounds in pixels.
	ScreenSize() (w, h int)
	// PointerPosition reports the cursor location.
	PointerPosition() (x, y int)
	// MovePointer warps the cursor.
	MovePointer(x, y int)
	// Click presses and releases the left button at the given point.
	Click(x, y int)
	// AppWindows lists ordinary application windows. May be empty.
	AppWindows() []Window
	// MoveWindow repositions a window, reporting whether it still exists.
	MoveWindow(id, x, y int) bool
	// CloseWindow asks a window to close, reporting whether it existed.
	CloseWindow(id int) bool
}

var browserKeywords = []string{
	"chrome", "firefox", "safari", "edge", "opera", "brave", "vivaldi", "arc",
}

// BrowserWindows filters the control's window list down to browsers.
func BrowserWindows(c Control) []Window {
	var out []Window
	for _, w := range c.AppWindows() {
		title := strings.ToLower(w.Title)
		for _, kw := range browserKeywords {
			if strings.Contains(title, kw) {
				out = append(out, w)
				break
			}
		}
	}
	return out
}

// FindWindow returns the current state of a window by id.
func FindWindow(c Control, id int) (Window, bool) {
	for _, w := range c.AppWindows() {
		if w.ID == id {
			return w, true
		}
	}
	return Window{}, false
}
