package stats

import (
	"time"

	"github.com/leighmacdonald/cslogstats/pkg/logparse"
)

// TeamScore pairs a durable team name with a score.
type TeamScore struct {
	Team  string `json:"team"`
	Score int    `json:"score"`
}

// MatchSummary is the top-level read model for a single match.
type MatchSummary struct {
	Map  string    `json:"map"`
	Date time.Time `json:"date"`
	// Scores holds the final per-team score in first-seen team order.
	Scores      []TeamScore `json:"scores"`
	TotalRounds int         `json:"total_rounds"`
	// DurationSeconds spans match start to game over, 0 when either marker is
	// missing.
	DurationSeconds int  `json:"duration_seconds"`
	Finished        bool `json:"finished"`
}

// ComputeMatch folds a parse result into the match summary. Status reports
// repeat throughout a log, so every score- and rounds-bearing field is
// last-write-wins.
func ComputeMatch(result *logparse.Result) MatchSummary {
	tracker := trackSides(result.Events)

	var (
		summary   MatchSummary
		started   time.Time
		finished  time.Time
		byTeam    = map[string]int{}
		hasRounds bool
	)

	for _, event := range result.Events {
		switch event.Type {
		case logparse.MatchStart:
			// Restarts before the located start are already filtered, any
			// further match_start is spurious.
			if !started.IsZero() {
				continue
			}

			started = event.CreatedOn
			summary.Date = event.CreatedOn

			if payload, ok := event.Payload.(logparse.WorldTriggerPayload); ok && payload.Map != "" {
				summary.Map = payload.Map
			}
		case logparse.MatchStatusScore:
			payload, ok := event.Payload.(logparse.MatchStatusScorePayload)
			if !ok {
				continue
			}

			if payload.RoundsPlayed >= 0 {
				summary.TotalRounds = payload.RoundsPlayed
				hasRounds = true
			}

			if ctTeam := tracker.TeamOnSide(logparse.CT, event.Round); ctTeam != "" {
				byTeam[ctTeam] = payload.CTScore
			}

			if tTeam := tracker.TeamOnSide(logparse.TERRORIST, event.Round); tTeam != "" {
				byTeam[tTeam] = payload.TScore
			}
		case logparse.GameOver:
			finished = event.CreatedOn
			summary.Finished = true

			if payload, ok := event.Payload.(logparse.GameOverPayload); ok && summary.Map == "" {
				summary.Map = payload.Map
			}
		}
	}

	for _, team := range tracker.Teams() {
		summary.Scores = append(summary.Scores, TeamScore{Team: team, Score: byTeam[team]})
	}

	if !hasRounds {
		summary.TotalRounds = lastRound(result.Events)
	}

	if !started.IsZero() && !finished.IsZero() {
		summary.DurationSeconds = int(finished.Sub(started).Seconds())
	}

	return summary
}

func lastRound(events []logparse.Event) int {
	round := 0
	for _, event := range events {
		if event.Round > round {
			round = event.Round
		}
	}

	return round
}
