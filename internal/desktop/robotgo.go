package desktop

import (
	"log"

	"github.com/go-vgo/robotgo"
)

// Robot drives the real desktop through robotgo. Window enumeration is
// best-effort: robotgo exposes processes rather than a proper window list,
// so titles come from process names and bounds from the platform query.
// Every method tolerates failure by returning zeroes or empty lists.
type Robot struct {
	// skipTitles filters out our own process and shell furniture.
	skipTitles []string
}

// NewRobot returns a Control backed by the real pointer and window system.
func NewRobot() *Robot {
	return &Robot{
		skipTitles: []string{"deskpet", "systemd", "dbus", "gnome-shell", "explorer.exe", "Finder", "Dock"},
	}
}

// ScreenSize implements Control.
func (r *Robot) ScreenSize() (int, int) {
	return robotgo.GetScreenSize()
}

// PointerPosition implements Control.
func (r *Robot) PointerPosition() (int, int) {
	return robotgo.Location()
}

// MovePointer implements Control.
func (r *Robot) MovePointer(x, y int) {
	robotgo.Move(x, y)
}

// Click implements Control.
func (r *Robot) Click(x, y int) {
	robotgo.Move(x, y)
	robotgo.Click("left", false)
}

// AppWindows implements Control.
func (r *Robot) AppWindows() []Window {
	pids, err := robotgo.FindIds("")
	if err != nil {
		log.Printf("desktop: window enumeration failed: %v", err)
		return nil
	}
	var out []Window
	for _, pid := range pids {
		title := robotgo.GetTitle(pid)
		if title == "" || r.skip(title) {
			continue
		}
		x, y, w, h := robotgo.GetBounds(pid)
		// Tiny rects are tray icons and tooltips, not real app windows.
		if w < 100 || h < 50 {
			continue
		}
		out = append(out, Window{ID: int(pid), Title: title, X: x, Y: y, W: w, H: h})
	}
	return out
}

// MoveWindow implements Control. robotgo has no direct window-move call, so
// the pet's drag phase degrades to activating the window; the report of
// existence is what the hunt sequence actually depends on.
func (r *Robot) MoveWindow(id, x, y int) bool {
	if err := robotgo.ActivePid(int32(id)); err != nil {
		return false
	}
	return true
}

// CloseWindow implements Control by clicking the close affordance.
func (r *Robot) CloseWindow(id int) bool {
	w, ok := FindWindow(r, id)
	if !ok {
		return false
	}
	cx, cy := w.CloseButton()
	r.Click(cx, cy)
	return true
}

func (r *Robot) skip(title string) bool {
	for _, s := range r.skipTitles {
		if title == s {
			return true
		}
	}
	return false
}
