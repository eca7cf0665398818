// Package pet implements the behavioral core of the desktop pest: the
// escalation ledger, the behavior state machine, the walking physics and
// the game request protocol. Rendering and real input live elsewhere; the
// pet only decides what to do and asks its collaborators to do it.
package pet

import (
	"math/rand"
	"sync"
	"time"

	"deskpet/internal/desktop"
	"deskpet/internal/games"
)

// Testable time and random functions
var (
	TimeNow     = func() time.Time { return time.Now() }
	RandFloat64 = rand.Float64
	RandIntn    = rand.Intn
)

// Mood is cosmetic: derived from the behavior state on transition and read
// by the renderer, never authoritative on its own.
type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodSleepy      Mood = "sleepy"
	MoodExcited     Mood = "excited"
	MoodMischievous Mood = "mischievous"
	MoodAnnoying    Mood = "annoying"
)

// StalkSession is the live payload of the CursorStalking behavior.
type StalkSession struct {
	TargetX, TargetY float64
	Reached          bool
	Locked           bool
	LockX, LockY     int
}

// HuntSession is the live payload of the BrowserHunting behavior.
type HuntSession struct {
	Target     desktop.Window
	Phase      int // 0 approach, 1 grab, 2 drag, 3 close
	PhaseTimer int
}

// RequestSession is the live payload of the GameRequest behavior. It exists
// only while the pet is waiting for an answer.
type RequestSession struct {
	Manual   bool
	IssuedAt time.Time
}

type gameResult struct {
	won, lost bool
	name      string
}

// Agent is the pet. One lives per process, owned by whoever drives Tick;
// all mutation happens inside Tick except the explicitly thread-safe
// EnqueueGameResult and the drag overrides.
type Agent struct {
	Name string

	// Position and motion. X,Y is the top-left corner; only the physics
	// integrator writes position (the user drag override excepted).
	X, Y     float64
	VX, VY   float64
	Facing   int // +1 right, -1 left
	Grounded bool

	State            Behavior
	BehaviorTimer    int
	BehaviorDuration int

	Mood     Mood
	EyeState string
	Blinking bool

	Ledger  Ledger
	Profile Profile
	Policy  []EscalationBand

	// At most one of these is non-nil at a time: the active behavior's
	// payload. Cleared on state exit.
	Stalk   *StalkSession
	Hunt    *HuntSession
	Request *RequestSession

	ScreenW, ScreenH float64

	Desktop desktop.Control
	Games   *games.Manager

	// Commentary: the latest flavor line plus throttle state.
	LastComment     string
	lastCommentAt   time.Time
	commentCooldown int // seconds until the next spontaneous remark

	lastRequestAt time.Time
	blinkTimer    int
	dragging      bool

	mu      sync.Mutex
	pending []gameResult
}

// New builds a pet at a random grounded position on the given screen.
func New(name string, ctl desktop.Control, mgr *games.Manager, profile Profile) *Agent {
	w, h := ctl.ScreenSize()
	a := &Agent{
		Name:     name,
		State:    Walking,
		Mood:     MoodHappy,
		EyeState: "normal",
		Facing:   1,
		Profile:  profile,
		Policy:   DefaultPolicy,
		ScreenW:  float64(w),
		ScreenH:  float64(h),
		Desktop:  ctl,
		Games:    mgr,
	}
	a.X = RandFloat64() * (a.ScreenW - PetSize)
	a.Y = a.ScreenH - PetSize
	a.Grounded = true
	a.VX = WalkingSpeed
	if RandFloat64() < 0.5 {
		a.VX = -WalkingSpeed
		a.Facing = -1
	}
	a.BehaviorDuration = durationBetween(WalkDurationMin, WalkDurationMax)
	a.commentCooldown = FriendlyCommentCooldownMin
	if mgr != nil {
		mgr.SetResultFunc(a.EnqueueGameResult)
	}
	return a
}

// Dragging reports whether the user currently holds the pet.
func (a *Agent) Dragging() bool { return a.dragging }

// BeginDrag hands position control to the user. Physics is suspended until
// EndDrag.
func (a *Agent) BeginDrag() {
	a.dragging = true
	a.Mood = MoodAnnoying
	a.say("Hey! Put me down!")
}

// DragTo moves the pet directly while dragged.
func (a *Agent) DragTo(x, y float64) {
	if !a.dragging {
		return
	}
	a.X = clamp(x, 0, a.ScreenW-PetSize)
	a.Y = clamp(y, 0, a.ScreenH-PetSize)
}

// EndDrag releases the pet with a randomized shove and a grudge.
func (a *Agent) EndDrag() {
	if !a.dragging {
		return
	}
	a.dragging = false
	a.VX = RandFloat64()*4 - 2
	a.VY = RandFloat64()*2 - 1
	a.enterState(Mischief, durationBetween(PostDragDurationMin, PostDragDurationMax))
	a.say("Now I'm REALLY going to cause trouble!")
}

// InDangerZone reports whether the pet sits in the top-right hijack corner.
func (a *Agent) InDangerZone() bool {
	return a.X >= a.ScreenW-DangerZoneWidth && a.Y <= DangerZoneHeight
}

func (a *Agent) clearSessions() {
	if a.Stalk != nil && a.Stalk.Locked {
		a.unlockCursor()
	}
	a.Stalk = nil
	a.Hunt = nil
	a.Request = nil
}

func durationBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + RandIntn(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
