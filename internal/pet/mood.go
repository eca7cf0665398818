package pet

// Glyph returns the face the renderer should draw for the current mood and
// eye state. Purely cosmetic, derived on every transition.
func (a *Agent) Glyph() string {
	if a.Blinking {
		return "😑"
	}
	switch a.Mood {
	case MoodSleepy:
		return "😴"
	case MoodExcited:
		return "😻"
	case MoodMischievous:
		return "😼"
	case MoodAnnoying:
		return "😈"
	default:
		return "😸"
	}
}

// StatusLine summarizes what the pet is doing, for the stats pane.
func (a *Agent) StatusLine() string {
	switch a.State {
	case Walking:
		return a.Glyph() + " Strolling around"
	case Resting:
		return a.Glyph() + " Resting (barely)"
	case Mischief:
		return a.Glyph() + " Plotting in the corner"
	case Annoying:
		return a.Glyph() + " Being a menace"
	case CursorStalking:
		if a.Stalk != nil && a.Stalk.Locked {
			return a.Glyph() + " Holding your cursor hostage"
		}
		return a.Glyph() + " Stalking your cursor"
	case BrowserHunting:
		return a.Glyph() + " Hunting a browser"
	case GameRequest:
		return a.Glyph() + " Begging for a game"
	default:
		return a.Glyph()
	}
}
