package pet

import (
	"log"
	"time"
)

// RequestGame makes the pet ask for a game. Automatic requests respect a
// short cooldown; manual ones bypass it and get a longer answer window.
func (a *Agent) RequestGame(manual bool) {
	if a.gameRunning() {
		return
	}
	now := TimeNow()
	if !manual && now.Sub(a.lastRequestAt) < RequestCooldownSeconds*time.Second {
		return
	}
	if manual && a.Request != nil {
		a.say("You're impatient! Let's play RIGHT NOW!")
	}

	duration := 0
	if manual {
		duration = ManualRequestDuration
	}
	a.enterState(GameRequest, duration)
	if a.Request != nil {
		a.Request.Manual = manual
	}
	if manual {
		a.say(pick(manualRequestComments) + " (y to accept, n to deny)")
	}
}

// issueRequest is the GameRequest entry hook: create the session and beg.
func (a *Agent) issueRequest(manual bool) {
	a.Request = &RequestSession{Manual: manual, IssuedAt: TimeNow()}
	a.lastRequestAt = TimeNow()
	a.say(pick(requestComments) + " (y to accept, n to deny)")
}

// maybeRequestGame is the per-tick automatic ask: once craving passes the
// floor there is a small chance each frame of begging.
func (a *Agent) maybeRequestGame() {
	if a.Request != nil || a.gameRunning() {
		return
	}
	if a.Ledger.Craving > RequestCravingFloor && RandFloat64() < RequestChance {
		a.RequestGame(false)
	}
}

// AcceptGame answers a pending request by launching a session. Valid only
// while the pet is actually asking; stray accepts are ignored.
func (a *Agent) AcceptGame() bool {
	if a.Request == nil || a.State != GameRequest {
		return false
	}
	return a.LaunchGame()
}

// LaunchGame starts a random session immediately, request or no request.
func (a *Agent) LaunchGame() bool {
	if a.Games == nil {
		a.say("No games available... that's sad!")
		return false
	}
	session := a.Games.Launch()
	if session == nil {
		a.say("No games available... that's sad!")
		return false
	}
	a.Ledger.OnGameLaunched()
	a.enterState(Walking, 0)
	a.Mood = MoodHappy
	a.say("Yay! Let's play " + session.Name() + "!")
	return true
}

// DenyGame answers a pending request with a no. Timeouts arrive here too,
// via the transition that fires when the answer window lapses.
func (a *Agent) DenyGame() {
	a.Ledger.OnGameDenied()
	a.say(pick(deniedComments))

	// Repeated denials graduate from mischief to full-on annoying.
	if a.Ledger.GamesDenied <= 2 {
		a.enterState(Mischief, durationBetween(DenyDurationMin, DenyDurationMax))
		a.Mood = MoodMischievous
	} else {
		a.enterState(Annoying, durationBetween(DenyDurationMin, DenyDurationMax))
		a.Mood = MoodAnnoying
	}
}

// stepRequest holds position with a hopeful little bounce while waiting.
func (a *Agent) stepRequest() {
	a.VX *= 0.8
	a.VY *= 0.8
	if a.BehaviorTimer%30 == 0 {
		a.VY -= 1
	}
}

// EnqueueGameResult is the collaborator callback. It may arrive on any
// goroutine at any time, so it only queues; the behavior engine applies
// results at the next tick boundary.
func (a *Agent) EnqueueGameResult(won, lost bool, name string) {
	a.mu.Lock()
	a.pending = append(a.pending, gameResult{won: won, lost: lost, name: name})
	a.mu.Unlock()
}

// drainResults applies queued game outcomes. Runs first in every tick.
func (a *Agent) drainResults() {
	a.mu.Lock()
	queued := a.pending
	a.pending = nil
	a.mu.Unlock()

	for _, r := range queued {
		a.applyResult(r)
	}
}

func (a *Agent) applyResult(r gameResult) {
	switch {
	case r.won:
		a.Ledger.OnGameWon()
		a.enterState(Walking, durationBetween(PostWinCalmMin, PostWinCalmMax))
		a.Mood = MoodHappy
		a.say(pick(victoryComments) + " (" + r.name + " completed!)")
		log.Printf("pet: game won (%s), calm restored", r.name)
	case r.lost:
		a.Ledger.OnGameLost()
		a.punishForLoss(r.name)
	default:
		log.Printf("pet: game %s ended without a verdict", r.name)
	}
}

// punishForLoss escalates with the failure streak: first loss brings
// mischief, the second sustained annoyance, the third the punitive chain.
func (a *Agent) punishForLoss(name string) {
	switch {
	case a.Ledger.Failures >= PunishStreak:
		a.enterState(Annoying, durationBetween(PunishDurationMin, PunishDurationMax))
		a.Mood = MoodAnnoying
		a.say(pick(failureComments) + " MULTIPLE FAILURES DETECTED! MAXIMUM PUNISHMENT MODE! (" + name + " failed!)")
		a.punitiveChain()
	case a.Ledger.Failures == 2:
		a.Ledger.Annoyance += 2
		a.enterState(Annoying, durationBetween(Punish2DurationMin, Punish2DurationMax))
		a.Mood = MoodAnnoying
		a.say(pick(failureComments) + " TWO FAILURES! You're really bad at this! (" + name + " failed!)")
		if RandFloat64() < ChainStalkChance {
			a.forceCloseWindow()
		}
	default:
		a.enterState(Mischief, durationBetween(DenyDurationMin, DenyDurationMax))
		a.Mood = MoodMischievous
		a.say(pick(failureComments) + " Time for some chaos! (" + name + " failed!)")
	}
	log.Printf("pet: game lost (%s), streak %d, punishment %.1f",
		name, a.Ledger.Failures, a.Ledger.Punishment)
}

// punitiveChain is the high-probability consequence of a losing streak:
// a forced window close, then aggression against the cursor or a browser.
func (a *Agent) punitiveChain() {
	if RandFloat64() < ChainCloseChance {
		a.forceCloseWindow()
	}
	if RandFloat64() < ChainStalkChance {
		a.enterState(CursorStalking, 0)
	} else if RandFloat64() < ChainHuntChance {
		a.enterState(BrowserHunting, 0)
	}
}
