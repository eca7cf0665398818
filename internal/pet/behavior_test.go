package pet

import (
	"testing"
	"time"

	"deskpet/internal/desktop"
)

// zeroRand pins both random seams to their lowest outcomes, making every
// weighted draw and duration range fully predictable.
func zeroRand(t *testing.T) {
	t.Helper()
	restoreF, restoreI := RandFloat64, RandIntn
	t.Cleanup(func() {
		RandFloat64, RandIntn = restoreF, restoreI
	})
	RandFloat64 = func() float64 { return 0 }
	RandIntn = func(n int) int { return 0 }
}

func fixTime(t *testing.T) time.Time {
	t.Helper()
	restore := TimeNow
	t.Cleanup(func() { TimeNow = restore })
	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	TimeNow = func() time.Time { return fixed }
	return fixed
}

func TestRequestTimeoutDeniesExactlyOnce(t *testing.T) {
	zeroRand(t)
	fixTime(t)
	a := newTestAgent(t, nil)

	a.RequestGame(false)
	if a.State != GameRequest || a.Request == nil {
		t.Fatalf("request not issued: state %v, session %v", a.State, a.Request)
	}
	if a.BehaviorDuration != RequestDurationMin {
		t.Fatalf("answer window = %d, want %d", a.BehaviorDuration, RequestDurationMin)
	}

	for i := 0; i < RequestDurationMin; i++ {
		a.Tick()
	}

	if a.Ledger.GamesDenied != 1 {
		t.Fatalf("denied count = %d, want 1", a.Ledger.GamesDenied)
	}
	if a.State != Mischief {
		t.Fatalf("after first timed-out request state = %v, want %v", a.State, Mischief)
	}
	if a.Request != nil {
		t.Fatal("request session survived the denial")
	}
	if a.Ledger.Annoyance < DeniedAnnoyance {
		t.Fatalf("annoyance = %v, want at least %v", a.Ledger.Annoyance, DeniedAnnoyance)
	}

	// A few more ticks must not double-count the denial.
	for i := 0; i < 10; i++ {
		a.Tick()
	}
	if a.Ledger.GamesDenied != 1 {
		t.Fatalf("denied count drifted to %d", a.Ledger.GamesDenied)
	}
}

func TestHuntWithoutBrowsersFallsBack(t *testing.T) {
	zeroRand(t)
	a := newTestAgent(t, desktop.NewEmptySimulated(1280, 800))

	a.enterState(BrowserHunting, 0)

	if a.Hunt != nil {
		t.Fatal("hunt session created with nothing to hunt")
	}
	if a.State != Mischief {
		t.Fatalf("state = %v, want %v", a.State, Mischief)
	}
}

func TestHuntRunsAllFourPhasesAndClosesTheWindow(t *testing.T) {
	deterministicRand(t, 7)
	sim := desktop.NewSimulated(1280, 800)
	a := newTestAgent(t, sim)

	a.enterState(BrowserHunting, 100000)
	if a.Hunt == nil {
		t.Fatal("no hunt session")
	}
	targetID := a.Hunt.Target.ID

	for i := 0; i < 6000 && a.Hunt != nil; i++ {
		a.stepHunting()
		a.integrate()
	}

	if a.Hunt != nil {
		t.Fatalf("hunt never finished, stuck in phase %d", a.Hunt.Phase)
	}
	if len(sim.Closed) != 1 || sim.Closed[0] != targetID {
		t.Fatalf("closed windows = %v, want [%d]", sim.Closed, targetID)
	}
	if a.Ledger.WindowsClosed != 1 {
		t.Fatalf("WindowsClosed = %d, want 1", a.Ledger.WindowsClosed)
	}
	if a.State != Mischief {
		t.Fatalf("post-hunt state = %v, want %v", a.State, Mischief)
	}
}

func TestHuntAbortsWhenTargetVanishes(t *testing.T) {
	deterministicRand(t, 8)
	sim := desktop.NewSimulated(1280, 800)
	a := newTestAgent(t, sim)

	a.enterState(BrowserHunting, 100000)
	if a.Hunt == nil {
		t.Fatal("no hunt session")
	}
	sim.CloseWindow(a.Hunt.Target.ID)

	a.stepHunting()

	if a.Hunt != nil {
		t.Fatal("hunt survived its target")
	}
	if a.State != Mischief {
		t.Fatalf("state = %v, want %v", a.State, Mischief)
	}
	if a.Ledger.WindowsClosed != 0 {
		t.Fatal("aborted hunt must not score a close")
	}
}

func TestStalkArrivesThenPinsThePointer(t *testing.T) {
	deterministicRand(t, 9)
	sim := desktop.NewSimulated(1280, 800)
	a := newTestAgent(t, sim)

	a.enterState(CursorStalking, 0)
	if a.Stalk == nil {
		t.Fatal("no stalk session")
	}

	for i := 0; i < 2000 && !a.Stalk.Locked; i++ {
		a.stepStalking()
		a.integrate()
	}
	if !a.Stalk.Locked {
		t.Fatal("never reached the cursor")
	}
	if a.BehaviorDuration != CursorLockDuration {
		t.Fatalf("lock duration = %d, want %d", a.BehaviorDuration, CursorLockDuration)
	}

	lockX, lockY := a.Stalk.LockX, a.Stalk.LockY
	sim.MovePointer(10, 10)
	a.enforceCursorLock()
	if sim.PointerX != lockX || sim.PointerY != lockY {
		t.Fatalf("pointer not snapped back: at (%d,%d), want (%d,%d)",
			sim.PointerX, sim.PointerY, lockX, lockY)
	}

	// Tiny drift inside the tolerance is left alone.
	sim.MovePointer(lockX+1, lockY+1)
	a.enforceCursorLock()
	if sim.PointerX != lockX+1 || sim.PointerY != lockY+1 {
		t.Fatal("tolerated drift was snapped anyway")
	}
}

func TestDangerZoneNeedsAnnoyance(t *testing.T) {
	zeroRand(t)
	sim := desktop.NewSimulated(1280, 800)
	a := newTestAgent(t, sim)

	a.X = a.ScreenW - DangerZoneWidth/2
	a.Y = 10
	if !a.InDangerZone() {
		t.Fatal("pet should be inside the danger zone")
	}

	a.Ledger.Annoyance = DangerZoneMinAnnoyance
	a.checkDangerZone()
	if len(sim.Closed) != 0 {
		t.Fatal("zone fired at the annoyance floor")
	}

	a.Ledger.Annoyance = DangerZoneMinAnnoyance + 1
	a.checkDangerZone()
	if len(sim.Closed) != 1 {
		t.Fatalf("closed windows = %v, want exactly one", sim.Closed)
	}
	if a.State != Annoying {
		t.Fatalf("post-hijack state = %v, want %v", a.State, Annoying)
	}
}

func TestForceCloseWithNoWindowsJustGrumbles(t *testing.T) {
	zeroRand(t)
	a := newTestAgent(t, desktop.NewEmptySimulated(1280, 800))

	if a.forceCloseWindow() {
		t.Fatal("closed a window on an empty desktop")
	}
	if a.Ledger.WindowsClosed != 0 {
		t.Fatal("scored a close that never happened")
	}
	if a.LastComment == "" {
		t.Fatal("expected a grumble")
	}
}

func TestDragSuspendsPhysics(t *testing.T) {
	deterministicRand(t, 10)
	a := newTestAgent(t, nil)

	a.BeginDrag()
	a.DragTo(500, 100)
	x, y := a.X, a.Y

	for i := 0; i < 50; i++ {
		a.Tick()
	}
	if a.X != x || a.Y != y {
		t.Fatalf("pet moved while held: (%v,%v) -> (%v,%v)", x, y, a.X, a.Y)
	}

	a.EndDrag()
	if a.State != Mischief {
		t.Fatalf("post-drag state = %v, want %v", a.State, Mischief)
	}
	if a.Dragging() {
		t.Fatal("still dragging after release")
	}
}
