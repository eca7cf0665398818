package desktop

// Simulated is an in-memory Control. The TUI front-end runs on it so the pet
// can rampage through a pretend desktop, and tests use it to script window
// layouts. It also serves as the degraded path on platforms where real
// control is unavailable.
type Simulated struct {
	Width, Height int

	PointerX, PointerY int
	Clicks             []ClickRecord
	windows            []Window
	Closed             []int
}

// ClickRecord remembers one simulated click, for tests and the view.
type ClickRecord struct {
	X, Y int
}

// NewSimulated builds a fake desktop with a handful of plausible windows.
func NewSimulated(width, height int) *Simulated {
	s := &Simulated{Width: width, Height: height}
	s.PointerX, s.PointerY = width/2, height/2
	s.windows = []Window{
		{ID: 1, Title: "Firefox - Important Research", X: width / 8, Y: height / 10, W: width / 2, H: height / 2},
		{ID: 2, Title: "Editor - untitled.go", X: width / 3, Y: height / 4, W: width / 2, H: height / 2},
		{ID: 3, Title: "Terminal", X: width / 2, Y: height / 3, W: width / 3, H: height / 3},
	}
	return s
}

// NewEmptySimulated builds a fake desktop with no windows at all, for
// exercising the degraded paths.
func NewEmptySimulated(width, height int) *Simulated {
	s := &Simulated{Width: width, Height: height}
	s.PointerX, s.PointerY = width/2, height/2
	return s
}

// ScreenSize implements Control.
func (s *Simulated) ScreenSize() (int, int) { return s.Width, s.Height }

// PointerPosition implements Control.
func (s *Simulated) PointerPosition() (int, int) { return s.PointerX, s.PointerY }

// MovePointer implements Control.
func (s *Simulated) MovePointer(x, y int) {
	s.PointerX, s.PointerY = x, y
}

// Click implements Control. A click on a window's close affordance removes
// the window, mirroring what a real click would do.
func (s *Simulated) Click(x, y int) {
	s.Clicks = append(s.Clicks, ClickRecord{X: x, Y: y})
	for _, w := range s.windows {
		cx, cy := w.CloseButton()
		if abs(x-cx) <= 10 && abs(y-cy) <= 10 {
			s.CloseWindow(w.ID)
			return
		}
	}
}

// AppWindows implements Control.
func (s *Simulated) AppWindows() []Window {
	out := make([]Window, len(s.windows))
	copy(out, s.windows)
	return out
}

// MoveWindow implements Control.
func (s *Simulated) MoveWindow(id, x, y int) bool {
	for i := range s.windows {
		if s.windows[i].ID == id {
			s.windows[i].X, s.windows[i].Y = x, y
			return true
		}
	}
	return false
}

// CloseWindow implements Control.
func (s *Simulated) CloseWindow(id int) bool {
	for i := range s.windows {
		if s.windows[i].ID == id {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			s.Closed = append(s.Closed, id)
			return true
		}
	}
	return false
}

// AddWindow inserts a window, for tests that need a particular layout.
func (s *Simulated) AddWindow(w Window) {
	s.windows = append(s.windows, w)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
