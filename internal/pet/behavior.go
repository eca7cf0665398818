package pet

import (
	"log"
	"math"

	"deskpet/internal/desktop"
)

// Tick advances the pet by one frame. Order is fixed: drain queued game
// results, advance timers and the ledger, fire a behavior transition if the
// current one has run its course, step the active behavior, integrate
// physics, then run the danger-zone check. Ticks never overlap.
func (a *Agent) Tick() {
	a.drainResults()

	if a.dragging {
		return
	}

	a.BehaviorTimer++
	a.tickBlink()

	if a.Games != nil {
		a.Games.Update()
	}
	a.Ledger.Tick(a.Profile, a.gameRunning())

	a.maybeRequestGame()
	a.maybeComment()
	a.enforceCursorLock()

	if a.BehaviorTimer >= a.BehaviorDuration {
		a.changeBehavior()
	}

	switch a.State {
	case Walking:
		a.stepWalking()
	case Resting:
		a.stepResting()
	case Mischief:
		a.stepMischief()
	case Annoying:
		a.stepAnnoying()
	case CursorStalking:
		a.stepStalking()
	case BrowserHunting:
		a.stepHunting()
	case GameRequest:
		a.stepRequest()
	}

	a.integrate()
	a.checkDangerZone()
}

func (a *Agent) gameRunning() bool {
	return a.Games != nil && a.Games.Running()
}

// changeBehavior re-selects the behavior through the escalation policy and
// runs the new state's entry hook.
func (a *Agent) changeBehavior() {
	// Leaving a stalk releases the pointer before anything else happens.
	if a.State == CursorStalking {
		a.unlockCursor()
	}
	// A timed-out request is an implicit denial.
	if a.State == GameRequest && a.Request != nil {
		a.DenyGame()
		return
	}
	a.clearSessions()

	band := SelectBand(a.Policy, a.Ledger.TotalAnnoyance(), a.Ledger.Failures)
	next := pickBehavior(band)
	a.enterState(next, 0)
}

// enterState switches behaviors and runs the entry hook. A zero duration
// asks the hook to pick the state's own random range.
func (a *Agent) enterState(s Behavior, duration int) {
	a.clearSessions()
	a.State = s
	a.BehaviorTimer = 0
	a.BehaviorDuration = duration

	switch s {
	case Walking:
		if duration == 0 {
			a.BehaviorDuration = durationBetween(WalkDurationMin, WalkDurationMax)
		}
		if a.Ledger.Annoyance == 0 {
			a.Mood = MoodHappy
		} else {
			a.Mood = MoodMischievous
		}
		a.EyeState = "normal"
		a.VX = WalkingSpeed
		if RandFloat64() < 0.5 {
			a.VX = -WalkingSpeed
		}
	case Resting:
		if duration == 0 {
			a.BehaviorDuration = durationBetween(RestDurationMin, RestDurationMax)
		}
		a.Mood = MoodSleepy
		a.EyeState = "sleepy"
	case Mischief:
		if duration == 0 {
			a.BehaviorDuration = durationBetween(MischiefDurationMin, MischiefDurationMax)
		}
		a.Mood = MoodMischievous
		a.EyeState = "mischievous"
	case Annoying:
		if duration == 0 {
			a.BehaviorDuration = durationBetween(AnnoyDurationMin, AnnoyDurationMax)
		}
		a.Mood = MoodAnnoying
		a.EyeState = "normal"
	case CursorStalking:
		if duration == 0 {
			a.BehaviorDuration = durationBetween(StalkDurationMin, StalkDurationMax)
		}
		a.Mood = MoodMischievous
		a.EyeState = "mischievous"
		a.startStalking()
	case BrowserHunting:
		if duration == 0 {
			a.BehaviorDuration = durationBetween(HuntDurationMin, HuntDurationMax)
		}
		a.Mood = MoodMischievous
		a.EyeState = "mischievous"
		a.startHunting()
	case GameRequest:
		if duration == 0 {
			a.BehaviorDuration = durationBetween(RequestDurationMin, RequestDurationMax)
		}
		a.Mood = MoodExcited
		a.EyeState = "normal"
		if a.Request == nil {
			a.issueRequest(false)
		}
	}
}

// --- per-state step functions ---

func (a *Agent) stepWalking() {
	if math.Abs(a.VX) < WalkingSpeed {
		if a.VX >= 0 {
			a.VX = WalkingSpeed
		} else {
			a.VX = -WalkingSpeed
		}
	}
}

func (a *Agent) stepResting() {
	// Wind down, but never to a dead stop: a resting pest still crawls.
	a.VX *= 0.95
	a.VY *= 0.95
	crawl := WalkingSpeed * 0.3
	if math.Abs(a.VX) < crawl {
		if a.VX >= 0 {
			a.VX = crawl
		} else {
			a.VX = -crawl
		}
	}
	if RandFloat64() < 0.005 {
		a.say(pick(restingComments))
	}
}

func (a *Agent) stepMischief() {
	// Beeline for the danger corner, fast.
	targetX := a.ScreenW - PetSize - 50
	targetY := 50.0
	if a.X < targetX {
		a.VX = math.Abs(a.VX) * 1.8
	}
	if a.Y > targetY {
		a.VY -= 0.8
	}
	if RandFloat64() < 0.015 {
		a.say(pick(mischiefComments))
	}
}

func (a *Agent) stepAnnoying() {
	// Jitter scales with the punishment level.
	erratic := 1 + a.Ledger.Punishment*0.3
	a.VX += (RandFloat64()*2 - 1) * erratic
	a.VY += (RandFloat64()*2 - 1) * erratic

	closeChance := 0.002 + a.Ledger.Punishment*0.001 + float64(a.Ledger.Failures)*0.002
	if a.Ledger.Annoyance > 10 && RandFloat64() < closeChance {
		if a.Ledger.Failures >= PunishStreak {
			a.say("PUNISHMENT MODE: SURPRISE MOUSE HIJACKING!")
		} else {
			a.say("SURPRISE MOUSE HIJACKING!")
		}
		a.forceCloseWindow()
	}

	if a.Ledger.Failures >= 2 && RandFloat64() < 0.008 {
		a.enterState(CursorStalking, 0)
		return
	}

	commentChance := 0.025 + a.Ledger.Punishment*0.01
	if RandFloat64() < commentChance {
		a.say(annoyingCommentFor(&a.Ledger))
	}
}

// --- cursor stalking ---

func (a *Agent) startStalking() {
	x, y := a.Desktop.PointerPosition()
	a.Stalk = &StalkSession{TargetX: float64(x), TargetY: float64(y)}
	a.BehaviorDuration = StalkReachDuration
	a.say("I'm coming for your cursor!")
}

func (a *Agent) stepStalking() {
	s := a.Stalk
	if s == nil {
		// Target evaporated; nearest safe state.
		a.enterState(Mischief, 0)
		return
	}
	dx := s.TargetX - (a.X + PetSize/2)
	dy := s.TargetY - (a.Y + PetSize/2)
	dist := math.Hypot(dx, dy)

	if dist < ArriveDistance && !s.Reached {
		s.Reached = true
		a.lockCursor()
		a.BehaviorDuration = CursorLockDuration
		a.BehaviorTimer = 0
		return
	}

	if !s.Reached {
		if dist > 0 {
			a.VX = dx / dist * ApproachSpeed
			a.VY = dy / dist * ApproachSpeed
		}
	} else {
		// Hover by the pinned cursor.
		a.VX *= 0.8
		a.VY *= 0.8
	}
}

func (a *Agent) lockCursor() {
	s := a.Stalk
	if s == nil {
		return
	}
	x, y := a.Desktop.PointerPosition()
	s.LockX, s.LockY = x, y
	s.Locked = true
	a.Mood = MoodAnnoying
	a.say("Your cursor is MINE! You can't move it!")
}

func (a *Agent) unlockCursor() {
	if a.Stalk == nil || !a.Stalk.Locked {
		return
	}
	a.Stalk.Locked = false
	a.Mood = MoodMischievous
	a.say("Fine, I'll let you move your cursor... for now")
}

// enforceCursorLock is idempotent: every tick the pointer is snapped back
// if it drifted. No blocking, no grabs.
func (a *Agent) enforceCursorLock() {
	s := a.Stalk
	if s == nil || !s.Locked {
		return
	}
	x, y := a.Desktop.PointerPosition()
	if absInt(x-s.LockX) > 2 || absInt(y-s.LockY) > 2 {
		a.Desktop.MovePointer(s.LockX, s.LockY)
	}
}

// --- browser hunting ---

func (a *Agent) startHunting() {
	browsers := desktop.BrowserWindows(a.Desktop)
	if len(browsers) == 0 {
		a.say("No browsers to hunt... boring!")
		a.enterState(Mischief, 0)
		return
	}
	target := browsers[RandIntn(len(browsers))]
	a.Hunt = &HuntSession{Target: target}
	a.say("Time to hunt some browsers! Going for '" + target.Title + "'!")
}

// stepHunting runs the four-phase sequence: approach, grab, drag, close.
// Phases advance on elapsed sub-timers only. If the target window vanishes
// at any point the hunt aborts back to mischief.
func (a *Agent) stepHunting() {
	h := a.Hunt
	if h == nil {
		a.enterState(Mischief, 0)
		return
	}
	current, ok := desktop.FindWindow(a.Desktop, h.Target.ID)
	if !ok {
		a.say("Hey, where did that window go?")
		a.enterState(Mischief, 0)
		return
	}
	h.Target = current
	h.PhaseTimer++
	cx, cy := current.Center()

	switch h.Phase {
	case 0: // approach
		dx := float64(cx) - (a.X + PetSize/2)
		dy := float64(cy) - (a.Y + PetSize/2)
		dist := math.Hypot(dx, dy)
		if dist > WindowArriveDist {
			a.VX = dx / dist * ApproachSpeed
			a.VY = dy / dist * ApproachSpeed
			return
		}
		h.Phase, h.PhaseTimer = 1, 0
		a.say("Found you! Time to lock this window down!")
	case 1: // grab: dwell beside the window
		a.VX *= 0.8
		a.VY *= 0.8
		if h.PhaseTimer > HuntGrabTicks {
			h.Phase, h.PhaseTimer = 2, 0
			a.say("Got it! Now I'm dragging your browser around!")
		}
	case 2: // drag: oscillate the window, pet tags along
		if h.PhaseTimer < HuntDragTicks {
			offX := math.Sin(float64(h.PhaseTimer)*0.1) * 50
			offY := math.Cos(float64(h.PhaseTimer)*0.1) * 30
			if !a.Desktop.MoveWindow(current.ID, h.Target.X+int(offX), h.Target.Y+int(offY)) {
				a.say("Hey, where did that window go?")
				a.enterState(Mischief, 0)
				return
			}
			a.VX = offX * 0.1
			a.VY = offY * 0.1
			return
		}
		h.Phase, h.PhaseTimer = 3, 0
		a.say("Time to close this browser!")
	case 3: // close: glide the pointer onto the close affordance, click
		closeX, closeY := current.CloseButton()
		if h.PhaseTimer < HuntCloseTicks {
			mx, my := a.Desktop.PointerPosition()
			progress := float64(h.PhaseTimer) / float64(HuntCloseTicks)
			a.Desktop.MovePointer(
				mx+int(float64(closeX-mx)*progress),
				my+int(float64(closeY-my)*progress),
			)
			return
		}
		a.Desktop.Click(closeX, closeY)
		a.Ledger.WindowsClosed++
		a.say("Closed your browser! Haha!")
		log.Printf("pet: hunt closed window %q", current.Title)
		a.Hunt = nil
		a.Mood = MoodAnnoying
		a.enterState(Mischief, 0)
	}
}

// --- forced window close (the mouse hijack) ---

// forceCloseWindow warps the pointer to a random window's close affordance
// and clicks it. Degrades to a grumble when there is nothing to close.
func (a *Agent) forceCloseWindow() bool {
	windows := a.Desktop.AppWindows()
	if len(windows) == 0 {
		a.say("No windows to close... boring!")
		return false
	}
	target := windows[RandIntn(len(windows))]
	a.say("Your mouse is mine now! Closing '" + target.Title + "'!")
	x, y := target.CloseButton()
	a.Desktop.Click(x, y)
	a.Ledger.WindowsClosed++
	log.Printf("pet: forced close of %q", target.Title)
	a.say("Haha! I controlled your mouse!")
	return true
}

// checkDangerZone fires the hijack when the pet loiters in the top-right
// corner while already annoyed.
func (a *Agent) checkDangerZone() {
	if !a.InDangerZone() || a.Ledger.Annoyance <= DangerZoneMinAnnoyance {
		return
	}
	if RandFloat64() >= DangerZoneChance {
		return
	}
	if a.forceCloseWindow() {
		a.Mood = MoodAnnoying
		// Flee the scene and stay worked up for a while.
		a.VX = -4
		a.VY = 3
		a.Ledger.Annoyance += 2
		a.enterState(Annoying, 0)
	}
}

// --- blink ---

func (a *Agent) tickBlink() {
	a.blinkTimer++
	if a.blinkTimer > BlinkAfter {
		a.Blinking = true
		if a.blinkTimer > BlinkAfter+BlinkHold {
			a.Blinking = false
			a.blinkTimer = RandIntn(60)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
