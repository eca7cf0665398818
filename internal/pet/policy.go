package pet

// EscalationBand is one row of the behavior-selection policy: the first
// band whose ceilings cover the current totals supplies the weight vector.
// Weights are indexed by Behavior and need not sum to one.
type EscalationBand struct {
	Name      string
	MaxTotal  float64 // exclusive ceiling on TotalAnnoyance; <0 means no ceiling
	MaxStreak int     // inclusive ceiling on consecutive failures; <0 means no ceiling
	MinStreak int     // inclusive floor on consecutive failures
	Weights   [numBehaviors]float64
}

// DefaultPolicy escalates from "mostly asking to play" through "plotting"
// to "pure chaos, no more asking". Swap the table to retune without
// touching the selection code.
//
// Weight order: Walking, Resting, Mischief, Annoying, CursorStalking,
// BrowserHunting, GameRequest.
var DefaultPolicy = []EscalationBand{
	{
		Name:     "content",
		MaxTotal: 1, MaxStreak: 0,
		Weights: [numBehaviors]float64{0.3, 0.15, 0, 0, 0, 0, 0.55},
	},
	{
		Name:     "restless",
		MaxTotal: 3, MaxStreak: 1,
		Weights: [numBehaviors]float64{0.2, 0.1, 0.1, 0.05, 0, 0.05, 0.5},
	},
	{
		Name:     "scheming",
		MaxTotal: 8, MaxStreak: 2,
		Weights: [numBehaviors]float64{0.15, 0.07, 0.1, 0.1, 0.08, 0.1, 0.4},
	},
	{
		Name:     "vengeful",
		MaxTotal: -1, MaxStreak: -1, MinStreak: PunishStreak,
		Weights: [numBehaviors]float64{0.05, 0.02, 0.25, 0.4, 0.13, 0.15, 0},
	},
	{
		Name:     "furious",
		MaxTotal: -1, MaxStreak: -1,
		Weights: [numBehaviors]float64{0.1, 0.05, 0.2, 0.3, 0.15, 0.2, 0},
	},
}

// SelectBand returns the first band covering the given totals. The last
// band is the catch-all; a policy with no match falls back to it.
func SelectBand(policy []EscalationBand, total float64, streak int) EscalationBand {
	for _, b := range policy {
		if b.MinStreak > 0 && streak >= b.MinStreak {
			return b
		}
		if b.MinStreak > 0 {
			continue
		}
		if b.MaxTotal >= 0 && total >= b.MaxTotal {
			continue
		}
		if b.MaxStreak >= 0 && streak > b.MaxStreak {
			continue
		}
		return b
	}
	return policy[len(policy)-1]
}

// pickBehavior draws from the band's weights by cumulative sum.
func pickBehavior(band EscalationBand) Behavior {
	var sum float64
	for _, w := range band.Weights {
		sum += w
	}
	if sum <= 0 {
		return Walking
	}
	roll := RandFloat64() * sum
	var acc float64
	for i, w := range band.Weights {
		acc += w
		if roll < acc {
			return Behavior(i)
		}
	}
	return Behavior(numBehaviors - 1)
}
