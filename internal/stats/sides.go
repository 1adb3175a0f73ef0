// Package stats folds parsed log events into the read models served to
// consumers: match summary, scoreboard, score progression and per-round
// records. Every reducer is a pure function over an event slice.
package stats

import (
	"github.com/leighmacdonald/cslogstats/pkg/logparse"
)

// HalftimeRound is the last round of the first half in a standard MR15 match.
// Sides swap after it, so any side seen in a later round belongs to the other
// team.
const HalftimeRound = 15

// SideTracker accumulates the side -> team-name mapping announced by
// team-playing lines. The mapping it stores is the initial (first half) one;
// resolution is round-relative so callers never have to reason about the swap
// themselves.
type SideTracker struct {
	initial map[logparse.Side]string
	order   []string
}

func NewSideTracker() *SideTracker {
	return &SideTracker{initial: map[logparse.Side]string{}}
}

// Observe consumes a single event, recording side announcements and ignoring
// everything else. Announcements repeat throughout a log and flip meaning at
// the swap, so each one is normalized to the initial mapping through its own
// round before being stored; the first normalized mapping per side wins. That
// keeps resolution correct even for logs truncated into the second half.
// Announcements inside the halftime status block itself are stamped with the
// halftime round and therefore read as first-half state, the repeats around
// them make the mapping whole.
func (t *SideTracker) Observe(event logparse.Event) {
	if event.Type != logparse.TeamPlaying && event.Type != logparse.MatchStatusTeam {
		return
	}

	payload, ok := event.Payload.(logparse.TeamPlayingPayload)
	if !ok || payload.Side == logparse.SideNone || payload.Team == "" {
		return
	}

	side := payload.Side
	if event.Round > HalftimeRound {
		side = opposite(side)
	}

	if _, seen := t.initial[side]; seen {
		return
	}

	t.initial[side] = payload.Team
	t.order = append(t.order, payload.Team)
}

// TeamOnSide resolves which team occupied side during round. Rounds past
// halftime resolve against the swapped mapping. Returns "" when the mapping
// for that side was never announced.
func (t *SideTracker) TeamOnSide(side logparse.Side, round int) string {
	if side == logparse.SideNone {
		return ""
	}

	if round > HalftimeRound {
		side = opposite(side)
	}

	return t.initial[side]
}

// Teams returns the announced team names in first-seen order.
func (t *SideTracker) Teams() []string {
	return t.order
}

// Resolved reports whether both sides have a known team name.
func (t *SideTracker) Resolved() bool {
	return len(t.initial) == 2
}

func opposite(side logparse.Side) logparse.Side {
	if side == logparse.CT {
		return logparse.TERRORIST
	}

	return logparse.CT
}

func trackSides(events []logparse.Event) *SideTracker {
	tracker := NewSideTracker()
	for _, event := range events {
		tracker.Observe(event)
	}

	return tracker
}
