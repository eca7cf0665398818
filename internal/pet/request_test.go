package pet

import (
	"sync"
	"testing"

	"deskpet/internal/desktop"
	"deskpet/internal/games"
)

type stubSession struct {
	done, won bool
}

func (s *stubSession) Name() string     { return "stub" }
func (s *stubSession) Prompt() string   { return "press nothing" }
func (s *stubSession) Step()            {}
func (s *stubSession) HandleKey(string) {}
func (s *stubSession) Finished() bool   { return s.done }
func (s *stubSession) Won() bool        { return s.won }

func TestAutomaticRequestCooldown(t *testing.T) {
	zeroRand(t)
	fixTime(t)
	a := newTestAgent(t, nil)

	a.RequestGame(false)
	if a.State != GameRequest {
		t.Fatalf("first ask refused: state %v", a.State)
	}

	// Answer it, then ask again inside the cooldown window.
	a.DenyGame()
	a.RequestGame(false)
	if a.State == GameRequest {
		t.Fatal("automatic ask ignored the cooldown")
	}

	// A manual ask goes straight through and gets the longer window.
	a.RequestGame(true)
	if a.State != GameRequest {
		t.Fatalf("manual ask blocked: state %v", a.State)
	}
	if a.BehaviorDuration != ManualRequestDuration {
		t.Fatalf("manual answer window = %d, want %d", a.BehaviorDuration, ManualRequestDuration)
	}
	if a.Request == nil || !a.Request.Manual {
		t.Fatal("manual request not flagged as manual")
	}
}

func TestAcceptOnlyWhileAsking(t *testing.T) {
	zeroRand(t)
	fixTime(t)
	mgr := games.NewManager(func() games.Session { return &stubSession{} })
	a := New("test", desktop.NewSimulated(1280, 800), mgr, ProfileCalm)

	if a.AcceptGame() {
		t.Fatal("accepted with nothing pending")
	}

	a.Ledger.Craving = LaunchCravingSpent + 3
	a.RequestGame(true)
	if !a.AcceptGame() {
		t.Fatal("live request refused the accept")
	}
	if !mgr.Running() {
		t.Fatal("no session running after accept")
	}
	if a.State != Walking {
		t.Fatalf("state = %v, want %v", a.State, Walking)
	}
	if a.Request != nil {
		t.Fatal("request session survived the launch")
	}
	if a.Ledger.Craving != 3 {
		t.Fatalf("craving = %v, want 3 after spending the launch", a.Ledger.Craving)
	}

	// Accepting again with no request pending is a no-op.
	if a.AcceptGame() {
		t.Fatal("stray accept went through")
	}
}

func TestQueuedWinAppliedAtTickBoundary(t *testing.T) {
	zeroRand(t)
	a := newTestAgent(t, nil)
	a.Ledger.Failures = 2
	a.Ledger.Annoyance = 5

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.EnqueueGameResult(true, false, "stub")
	}()
	wg.Wait()

	// Nothing applies until the next tick.
	if a.Ledger.GamesWon != 0 {
		t.Fatal("result applied before the tick boundary")
	}

	a.Tick()

	if a.Ledger.GamesWon != 1 {
		t.Fatalf("GamesWon = %d, want 1", a.Ledger.GamesWon)
	}
	if a.Ledger.Failures != 0 {
		t.Fatal("win did not reset the failure streak")
	}
	if a.State != Walking {
		t.Fatalf("state = %v, want %v", a.State, Walking)
	}
	if a.BehaviorDuration != PostWinCalmMin {
		t.Fatalf("calm stretch = %d, want %d", a.BehaviorDuration, PostWinCalmMin)
	}
}

func TestLossStreakTriggersPunitiveChain(t *testing.T) {
	zeroRand(t)
	fixTime(t)
	sim := desktop.NewSimulated(1280, 800)
	a := newTestAgent(t, sim)

	for i := 0; i < PunishStreak; i++ {
		a.EnqueueGameResult(false, true, "stub")
		a.Tick()
	}

	if a.Ledger.Failures != PunishStreak {
		t.Fatalf("failure streak = %d, want %d", a.Ledger.Failures, PunishStreak)
	}
	// Every chain roll lands at its lowest value: the second loss already
	// forces one close, the third closes another and moves on the cursor.
	if len(sim.Closed) != 2 {
		t.Fatalf("closed windows = %v, want two", sim.Closed)
	}
	if a.Ledger.WindowsClosed != 2 {
		t.Fatalf("WindowsClosed = %d, want 2", a.Ledger.WindowsClosed)
	}
	if a.State != CursorStalking {
		t.Fatalf("state = %v, want %v", a.State, CursorStalking)
	}
	if a.Stalk == nil {
		t.Fatal("no stalk session after the chain")
	}
}

func TestVerdictlessResultLeavesLedgerAlone(t *testing.T) {
	zeroRand(t)
	a := newTestAgent(t, nil)

	a.EnqueueGameResult(false, false, "stub")
	a.Tick()

	if a.Ledger.GamesWon != 0 || a.Ledger.GamesLost != 0 {
		t.Fatalf("verdictless result scored: won %d lost %d",
			a.Ledger.GamesWon, a.Ledger.GamesLost)
	}
	if a.State != Walking {
		t.Fatalf("state = %v, want %v", a.State, Walking)
	}
}

func TestCravingEventuallyBegsOnItsOwn(t *testing.T) {
	zeroRand(t)
	a := newTestAgent(t, nil)
	a.Ledger.Craving = RequestCravingFloor + 1

	a.Tick()

	if a.State != GameRequest || a.Request == nil {
		t.Fatalf("no spontaneous ask: state %v", a.State)
	}
	if a.Request.Manual {
		t.Fatal("spontaneous ask flagged manual")
	}
}
