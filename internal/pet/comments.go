package pet

import (
	"log"
	"time"
)

// Flavor pools. Selection is uniform within a pool; which pool applies is
// the behavior engine's call.

var friendlyComments = []string{
	"Hi there!",
	"Just taking a stroll around your desktop!",
	"Hope you're having a productive day!",
	"Nice desktop setup!",
	"Just stretching my digital legs!",
	"Don't mind me, just walking around!",
}

var requestComments = []string{
	"Hey! Want to play a game with me?",
	"I'm bored! Can we play something fun?",
	"Games are fun! Let's play one!",
	"Please please please can we play a game?",
	"I promise it'll be fun! Just one game?",
	"I'm getting lonely... want to play?",
}

var manualRequestComments = []string{
	"Oh! You want to play RIGHT NOW? Let's do it!",
	"You pressed the magic button! Game time!",
	"You summoned me for games! EXCELLENT!",
	"Bypassing cooldowns for manual request! Let's GO!",
}

var deniedComments = []string{
	"Aww, no games? That's disappointing...",
	"But games are fun! Why not?",
	"Fine, I'll just have to entertain myself...",
	"No games means I get more mischievous!",
	"I might get more annoying without games...",
	"Games prevent me from causing chaos...",
}

var victoryComments = []string{
	"Yay! You won! I'm so proud! 🎉",
	"Great job! Maybe I'll be nice for a while...",
	"Victory! That was actually impressive!",
	"Winner winner! I'll behave myself... for now.",
	"Success! I'm feeling much calmer now...",
	"Victory achieved! Chaos mode deactivated!",
}

var failureComments = []string{
	"You FAILED that game! Now I'm REALLY annoyed!",
	"That's what happens when you lose! CHAOS TIME!",
	"Failed again? I'm getting VERY angry!",
	"Another failure means more window closing!",
	"You lost, so YOU lose your windows!",
	"Game failure detected! Initiating CHAOS MODE!",
}

var restingComments = []string{
	"Just resting my eyes...",
	"This is exhausting work!",
	"Maybe I should do something...",
}

var mischiefComments = []string{
	"Time to take control of your mouse!",
	"So many windows... time for some clicking!",
	"Heading to my favorite corner!",
	"I wonder which window I'll close first...",
	"Almost at the danger zone...",
}

var annoyedComments = []string{
	"Hey! Are you actually working?",
	"Time to clean up your desktop! Watch this!",
	"I'm helping by removing distractions!",
	"Too many windows make me dizzy!",
	"Are you sure you need ALL these windows?",
	"I'm coming for your cursor!",
	"You should have let me play games!",
}

var punishedComments = []string{
	"LOOK AT ME! LOOK AT ME!",
	"I'm being SUPER helpful!",
	"MAXIMUM ANNOYANCE MODE ACTIVATED!",
	"I could take control of your mouse anytime!",
	"Want to see something REALLY annoying?",
}

var maxPunishComments = []string{
	"THIS IS YOUR PUNISHMENT FOR MULTIPLE FAILURES!",
	"YOU KEEP FAILING GAMES, SO I KEEP GETTING WORSE!",
	"FAILED GAMES = MAXIMUM ANNOYANCE!",
	"I WARNED YOU ABOUT FAILING THOSE GAMES!",
}

func pick(pool []string) string {
	return pool[RandIntn(len(pool))]
}

// annoyingCommentFor escalates the trash talk with the failure record.
func annoyingCommentFor(l *Ledger) string {
	switch {
	case l.Failures >= PunishStreak:
		return pick(maxPunishComments)
	case l.Punishment > 5:
		return pick(punishedComments)
	default:
		return pick(annoyedComments)
	}
}

// say publishes a flavor line for the UI and the log, and stamps the
// comment throttle.
func (a *Agent) say(message string) {
	a.LastComment = message
	a.lastCommentAt = TimeNow()
	prefix := "FRIENDLY"
	if a.Ledger.Annoyance > 0 {
		prefix = "EVIL"
	}
	log.Printf("%s pet says: %s", prefix, message)
}

// maybeComment fires the occasional unprompted remark. Annoyed pets talk
// more and wait less.
func (a *Agent) maybeComment() {
	cooldown := time.Duration(a.commentCooldown) * time.Second
	if TimeNow().Sub(a.lastCommentAt) < cooldown {
		return
	}
	chance := FriendlyCommentChance
	if a.Ledger.Annoyance > 0 {
		chance = AnnoyedCommentChance
	}
	if RandFloat64() >= chance {
		return
	}
	if a.Ledger.Annoyance == 0 {
		a.say(pick(friendlyComments))
		a.commentCooldown = FriendlyCommentCooldownMin + RandIntn(FriendlyCommentCooldownMax-FriendlyCommentCooldownMin)
	} else {
		a.say(annoyingCommentFor(&a.Ledger))
		a.commentCooldown = AnnoyedCommentCooldownMin + RandIntn(AnnoyedCommentCooldownMax-AnnoyedCommentCooldownMin)
	}
}
