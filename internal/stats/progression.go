package stats

import (
	"sort"

	"github.com/leighmacdonald/cslogstats/pkg/logparse"
)

// ProgressionPoint is the cumulative score after a given number of completed
// rounds, teams in first-seen order.
type ProgressionPoint struct {
	Round  int         `json:"round"`
	Scores []TeamScore `json:"scores"`
}

// Progression is the score-over-time read model. Halftime is included so
// consumers can mark the side swap without knowing match rules.
type Progression struct {
	Halftime int                `json:"halftime"`
	Points   []ProgressionPoint `json:"points"`
}

// ComputeProgression folds the round-end score pairs of team_triggered events
// into cumulative datapoints. The round number of a point is the sum of both
// scores, which is the count of completed rounds and stays correct even when
// round stamping drifted. Duplicate rounds are dropped, a synthetic 0:0 origin
// is prepended and points come out ascending. A log without any score-bearing
// notices yields no points at all.
func ComputeProgression(result *logparse.Result) Progression {
	tracker := trackSides(result.Events)

	seen := map[int]bool{0: true}
	points := []ProgressionPoint{originPoint(tracker)}

	for _, event := range result.Events {
		payload, ok := event.Payload.(logparse.TeamTriggeredPayload)
		if !ok || !payload.HasScores {
			continue
		}

		round := payload.CTScore + payload.TScore
		if seen[round] {
			continue
		}

		seen[round] = true

		var scores []TeamScore
		for _, team := range tracker.Teams() {
			score := payload.CTScore
			if team == tracker.TeamOnSide(logparse.TERRORIST, round) {
				score = payload.TScore
			}

			scores = append(scores, TeamScore{Team: team, Score: score})
		}

		points = append(points, ProgressionPoint{Round: round, Scores: scores})
	}

	// Only the synthetic origin means no score-bearing events at all.
	if len(points) == 1 {
		points = nil
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Round < points[j].Round })

	return Progression{
		Halftime: HalftimeRound,
		Points:   points,
	}
}

func originPoint(tracker *SideTracker) ProgressionPoint {
	point := ProgressionPoint{Round: 0}
	for _, team := range tracker.Teams() {
		point.Scores = append(point.Scores, TeamScore{Team: team})
	}

	return point
}
