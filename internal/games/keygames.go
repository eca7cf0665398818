package games

import "fmt"

// The built-in games: a reflex clicker, a hand alternator and a whisking
// rhythm game. All of them run on the same 60Hz tick as the pet.

// DefaultRegistry returns the factories for the built-in games.
func DefaultRegistry() []Factory {
	return []Factory{NewReflex, NewAlternator, NewWhisk}
}

// --- Reflex ---

const (
	reflexRounds    = 5
	reflexDeadline  = 90 // ticks to hit each prompt (~1.5s)
	reflexMaxMisses = 1
)

var reflexKeys = []string{"f", "j", "r", "u", "t"}

// Reflex flashes a key and demands it before the deadline. More than one
// miss loses the game.
type Reflex struct {
	round    int
	ticks    int
	misses   int
	want     string
	finished bool
	won      bool
}

// NewReflex starts a reflex session.
func NewReflex() Session {
	g := &Reflex{}
	g.nextRound()
	return g
}

func (g *Reflex) nextRound() {
	g.round++
	g.ticks = 0
	g.want = reflexKeys[RandIntn(len(reflexKeys))]
}

// Name implements Session.
func (g *Reflex) Name() string { return "Reflex Rush" }

// Prompt implements Session.
func (g *Reflex) Prompt() string {
	return fmt.Sprintf("round %d/%d — press [%s] NOW!", g.round, reflexRounds, g.want)
}

// Step implements Session.
func (g *Reflex) Step() {
	if g.finished {
		return
	}
	g.ticks++
	if g.ticks > reflexDeadline {
		g.miss()
	}
}

// HandleKey implements Session.
func (g *Reflex) HandleKey(key string) {
	if g.finished {
		return
	}
	if key != g.want {
		g.miss()
		return
	}
	if g.round >= reflexRounds {
		g.finished = true
		g.won = true
		return
	}
	g.nextRound()
}

func (g *Reflex) miss() {
	g.misses++
	if g.misses > reflexMaxMisses {
		g.finished = true
		g.won = false
		return
	}
	if g.round >= reflexRounds {
		g.finished = true
		g.won = true
		return
	}
	g.nextRound()
}

// Finished implements Session.
func (g *Reflex) Finished() bool { return g.finished }

// Won implements Session.
func (g *Reflex) Won() bool { return g.won }

// --- Alternator ---

const (
	alternatorGoal  = 20
	alternatorTicks = 600 // 10s budget
)

// Alternator demands strict left-right alternation of two keys. Pressing
// the same key twice in a row resets the count, just like dropping the
// rhythm with real hands.
type Alternator struct {
	count    int
	last     string
	ticks    int
	finished bool
	won      bool
}

// NewAlternator starts an alternator session.
func NewAlternator() Session { return &Alternator{} }

// Name implements Session.
func (g *Alternator) Name() string { return "Hand Alternator" }

// Prompt implements Session.
func (g *Alternator) Prompt() string {
	left := alternatorTicks - g.ticks
	return fmt.Sprintf("alternate [a] and [d]! %d/%d (%.1fs left)", g.count, alternatorGoal, float64(left)/60)
}

// Step implements Session.
func (g *Alternator) Step() {
	if g.finished {
		return
	}
	g.ticks++
	if g.ticks >= alternatorTicks {
		g.finished = true
		g.won = g.count >= alternatorGoal
	}
}

// HandleKey implements Session.
func (g *Alternator) HandleKey(key string) {
	if g.finished || (key != "a" && key != "d") {
		return
	}
	if key == g.last {
		g.count = 0
	} else {
		g.count++
	}
	g.last = key
	if g.count >= alternatorGoal {
		g.finished = true
		g.won = true
	}
}

// Finished implements Session.
func (g *Alternator) Finished() bool { return g.finished }

// Won implements Session.
func (g *Alternator) Won() bool { return g.won }

// --- Whisk ---

const (
	whiskGoal    = 100.0
	whiskDecay   = 0.4  // meter lost per tick
	whiskStroke  = 4.0  // meter gained per press
	whiskBudget  = 1200 // 20s to reach the goal
	whiskTooFast = 3    // presses closer than this many ticks splash
	whiskSplash  = 6.0  // meter lost for whisking too hard
)

// Whisk is a rhythm game: steady strokes fill the meter, frantic mashing
// splashes it back down, idling lets it drain.
type Whisk struct {
	meter     float64
	ticks     int
	lastPress int
	finished  bool
	won       bool
}

// NewWhisk starts a whisking session.
func NewWhisk() Session { return &Whisk{lastPress: -whiskTooFast} }

// Name implements Session.
func (g *Whisk) Name() string { return "Matcha Whisk" }

// Prompt implements Session.
func (g *Whisk) Prompt() string {
	return fmt.Sprintf("whisk with [w] at a steady pace! froth %.0f%%", g.meter)
}

// Step implements Session.
func (g *Whisk) Step() {
	if g.finished {
		return
	}
	g.ticks++
	g.meter = maxZero(g.meter - whiskDecay)
	if g.meter >= whiskGoal {
		g.finished = true
		g.won = true
	} else if g.ticks >= whiskBudget {
		g.finished = true
		g.won = false
	}
}

// HandleKey implements Session.
func (g *Whisk) HandleKey(key string) {
	if g.finished || key != "w" {
		return
	}
	if g.ticks-g.lastPress < whiskTooFast {
		g.meter = maxZero(g.meter - whiskSplash)
	} else {
		g.meter += whiskStroke
	}
	g.lastPress = g.ticks
	if g.meter >= whiskGoal {
		g.finished = true
		g.won = true
	}
}

// Finished implements Session.
func (g *Whisk) Finished() bool { return g.finished }

// Won implements Session.
func (g *Whisk) Won() bool { return g.won }

func maxZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
