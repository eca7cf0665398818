package pet

// Pet and screen geometry
const (
	DefaultPetName = "Pest"
	PetSize        = 120 // sprite box in screen pixels

	TicksPerSecond = 60 // fixed update cadence (~16ms)
)

// Movement tunables
const (
	WalkingSpeed  = 1.5 // minimum ground speed, px/tick
	Gravity       = 0.3 // downward acceleration while airborne
	BounceDamping = 0.6 // velocity kept after a wall/top bounce

	MaxSpeedNormal   = 2.0 // speed cap in calm behaviors
	MaxSpeedMischief = 4.0 // speed cap while heading for the danger corner

	ApproachSpeed    = 2.5 // px/tick when steering at a target (cursor, window)
	ArriveDistance   = 30  // px, close enough to pounce on the cursor
	WindowArriveDist = 50  // px, close enough to grab a window
)

// Escalation ledger deltas. Wins undo a little more than one loss costs.
const (
	DeniedAnnoyance     = 1.0
	DeniedCravingRefund = 0.5 // craving drops a little so the next ask comes sooner

	WinAnnoyanceRelief  = 3.0
	WinCravingRelief    = 3.0
	WinPunishmentRelief = 2.0

	LossAnnoyance      = 3.0
	LossPunishment     = 2.0
	StreakAnnoyance    = 5.0 // extra annoyance at three consecutive losses
	PunishStreak       = 3   // consecutive losses that trigger the punitive chain
	LaunchCravingSpent = 5.0 // craving consumed when a game actually starts
)

// Punitive chain probabilities after a third straight loss
const (
	ChainCloseChance = 0.8 // forced window close
	ChainStalkChance = 0.6 // then cursor stalking...
	ChainHuntChance  = 0.4 // ...or a browser hunt
)

// Danger zone: the top-right corner where the pet hijacks the mouse.
const (
	DangerZoneWidth        = 100  // px from the right edge
	DangerZoneHeight       = 100  // px from the top edge
	DangerZoneChance       = 0.05 // per-tick close chance while inside
	DangerZoneMinAnnoyance = 2.0  // zone is inert below this annoyance
)

// Behavior duration ranges, in ticks.
const (
	WalkDurationMin     = 180
	WalkDurationMax     = 360
	RestDurationMin     = 60
	RestDurationMax     = 120
	MischiefDurationMin = 90
	MischiefDurationMax = 180
	AnnoyDurationMin    = 120
	AnnoyDurationMax    = 240
	StalkDurationMin    = 300
	StalkDurationMax    = 600
	HuntDurationMin     = 600
	HuntDurationMax     = 900
	RequestDurationMin  = 120
	RequestDurationMax  = 180

	ManualRequestDuration = 300 // manual asks get a longer answer window
	DenyDurationMin       = 300 // sulk after a denial or first loss
	DenyDurationMax       = 600
	Punish2DurationMin    = 600 // sustained annoyance after the second loss
	Punish2DurationMax    = 1200
	StalkReachDuration    = 300 // time allowed to reach the cursor
	CursorLockDuration    = 180 // ticks the pointer stays pinned once caught
	PostWinCalmMin        = 600 // long peaceful stretch after a victory
	PostWinCalmMax        = 1200
	PunishDurationMin     = 900 // very long punishment stretch on a streak
	PunishDurationMax     = 1800
	PostDragDurationMin   = 60 // mischief burst after the user drops the pet
	PostDragDurationMax   = 180
)

// Browser hunt phase lengths, in ticks.
const (
	HuntGrabTicks  = 60  // dwell on the window before dragging
	HuntDragTicks  = 120 // oscillate the window around
	HuntCloseTicks = 30  // pointer glide onto the close affordance
)

// Commentary pacing. Cooldowns are seconds, chances are per tick.
const (
	FriendlyCommentCooldownMin = 30
	FriendlyCommentCooldownMax = 60
	AnnoyedCommentCooldownMin  = 10
	AnnoyedCommentCooldownMax  = 25
	FriendlyCommentChance      = 0.002
	AnnoyedCommentChance       = 0.01
)

// Game request pacing.
const (
	RequestCooldownSeconds = 3    // seconds between automatic asks
	RequestChance          = 0.03 // per-tick ask chance once craving passes the floor
	RequestCravingFloor    = 1.0
)

// Blink cycle, in ticks.
const (
	BlinkAfter = 120 // ~2s of open eyes
	BlinkHold  = 5
)

// Profile tunes the passive accumulators. Two tunings ship as data and
// neither is canonical; pick with -profile.
type Profile struct {
	Name        string
	CravingRate float64 // added to game craving per tick without a game running
}

var (
	// ProfileFrantic begs for a game every ten to fifteen seconds.
	ProfileFrantic = Profile{Name: "frantic", CravingRate: 0.15}
	// ProfileCalm is the older, quieter tuning.
	ProfileCalm = Profile{Name: "calm", CravingRate: 0.05}
)

// Behavior is the pet's top-level activity mode.
type Behavior int

const (
	Walking Behavior = iota
	Resting
	Mischief
	Annoying
	CursorStalking
	BrowserHunting
	GameRequest

	numBehaviors = 7
)

// String returns the behavior's display name.
func (b Behavior) String() string {
	switch b {
	case Walking:
		return "walking"
	case Resting:
		return "resting"
	case Mischief:
		return "mischief"
	case Annoying:
		return "annoying"
	case CursorStalking:
		return "cursor stalking"
	case BrowserHunting:
		return "browser hunting"
	case GameRequest:
		return "game request"
	default:
		return "unknown"
	}
}
