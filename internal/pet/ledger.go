package pet

// Ledger holds the escalation accumulators that drive behavior selection.
// It is pure arithmetic: nothing in here causes a side effect. The behavior
// engine reads these values and decides what to do about them.
type Ledger struct {
	Annoyance  float64 // rises on denials, losses and forced mouse actions
	Craving    float64 // rises every tick a game is not running
	Punishment float64 // rises sharply on losses, scaled by the streak
	Failures   int     // consecutive losses, reset by any win

	// Lifetime counters, surfaced in the stats pane.
	GamesWon      int
	GamesLost     int
	GamesDenied   int
	WindowsClosed int
}

// Tick advances the passive accumulators. gameRunning suppresses craving
// growth while a session is live.
func (l *Ledger) Tick(profile Profile, gameRunning bool) {
	if !gameRunning {
		l.Craving += profile.CravingRate
	}
}

// OnGameDenied records a refused (or timed-out) game request.
func (l *Ledger) OnGameDenied() {
	l.GamesDenied++
	l.Annoyance += DeniedAnnoyance
	l.Craving = maxf(0, l.Craving-DeniedCravingRefund)
}

// OnGameWon records a victory and relaxes every accumulator.
func (l *Ledger) OnGameWon() {
	l.GamesWon++
	l.Failures = 0
	l.Punishment = maxf(0, l.Punishment-WinPunishmentRelief)
	l.Annoyance = maxf(0, l.Annoyance-WinAnnoyanceRelief)
	l.Craving = maxf(0, l.Craving-WinCravingRelief)
}

// OnGameLost records a defeat. The third consecutive loss stacks extra
// annoyance on top; the behavior engine owns the punitive side effects.
func (l *Ledger) OnGameLost() {
	l.GamesLost++
	l.Failures++
	l.Punishment += LossPunishment
	l.Annoyance += LossAnnoyance
	if l.Failures >= PunishStreak {
		l.Annoyance += StreakAnnoyance
	}
}

// OnGameLaunched consumes some craving when a session actually starts.
func (l *Ledger) OnGameLaunched() {
	l.Craving = maxf(0, l.Craving-LaunchCravingSpent)
}

// TotalAnnoyance blends the accumulators into the single number the
// escalation bands are keyed on.
func (l *Ledger) TotalAnnoyance() float64 {
	return l.Annoyance + l.Craving/3 + l.Punishment/2 + float64(l.Failures)*2
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
