package pet

import "testing"

func TestLedgerNeverGoesNegative(t *testing.T) {
	var l Ledger

	// Relief far beyond what was ever accumulated must clamp at zero.
	for i := 0; i < 10; i++ {
		l.OnGameWon()
	}
	if l.Annoyance < 0 || l.Craving < 0 || l.Punishment < 0 {
		t.Fatalf("accumulators went negative: %+v", l)
	}

	l.OnGameDenied()
	l.OnGameDenied()
	for i := 0; i < 10; i++ {
		l.OnGameWon()
	}
	if l.Annoyance < 0 || l.Craving < 0 || l.Punishment < 0 {
		t.Fatalf("accumulators went negative after mixed history: %+v", l)
	}
}

func TestWinResetsFailureStreak(t *testing.T) {
	var l Ledger
	for i := 0; i < 7; i++ {
		l.OnGameLost()
	}
	if l.Failures != 7 {
		t.Fatalf("expected 7 consecutive failures, got %d", l.Failures)
	}
	l.OnGameWon()
	if l.Failures != 0 {
		t.Fatalf("win did not reset failure streak: %d", l.Failures)
	}
}

func TestThreeLossesRaisePunishment(t *testing.T) {
	var l Ledger
	base := l.Punishment

	l.OnGameLost()
	l.OnGameLost()
	l.OnGameLost()

	if l.Failures != 3 {
		t.Fatalf("expected 3 consecutive failures, got %d", l.Failures)
	}
	if l.Punishment-base < 6 {
		t.Fatalf("expected punishment to rise by at least 6, rose by %v", l.Punishment-base)
	}
	if l.GamesLost != 3 {
		t.Fatalf("expected 3 recorded losses, got %d", l.GamesLost)
	}
}

func TestDenialArithmetic(t *testing.T) {
	var l Ledger
	l.Craving = 2

	l.OnGameDenied()

	if l.GamesDenied != 1 {
		t.Fatalf("expected 1 denial, got %d", l.GamesDenied)
	}
	if l.Annoyance != DeniedAnnoyance {
		t.Fatalf("expected annoyance %v, got %v", DeniedAnnoyance, l.Annoyance)
	}
	if l.Craving != 2-DeniedCravingRefund {
		t.Fatalf("expected craving refund, got %v", l.Craving)
	}
}

func TestCravingGrowsOnlyWithoutGame(t *testing.T) {
	var l Ledger
	l.Tick(ProfileFrantic, false)
	l.Tick(ProfileFrantic, false)
	if l.Craving != 2*ProfileFrantic.CravingRate {
		t.Fatalf("expected craving %v, got %v", 2*ProfileFrantic.CravingRate, l.Craving)
	}
	before := l.Craving
	l.Tick(ProfileFrantic, true)
	if l.Craving != before {
		t.Fatalf("craving grew while a game was running")
	}
}

func TestTotalAnnoyanceBlend(t *testing.T) {
	l := Ledger{Annoyance: 3, Craving: 6, Punishment: 4, Failures: 2}
	want := 3.0 + 6.0/3 + 4.0/2 + 2*2
	if got := l.TotalAnnoyance(); got != want {
		t.Fatalf("total annoyance = %v, want %v", got, want)
	}
}
