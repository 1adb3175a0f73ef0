package stats

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/leighmacdonald/cslogstats/pkg/logparse"
)

// winTriggers mark the team_triggered notices that decide a round.
var winTriggers = []string{"Win", "Bombed", "Defused"}

// RoundRecord describes one completed, decided round.
type RoundRecord struct {
	Round  int    `json:"round"`
	Winner string `json:"winner"`
	// WinnerSide is the side the winning team occupied that round ("CT"/"T").
	WinnerSide      string `json:"winner_side"`
	Trigger         string `json:"trigger"`
	DurationSeconds int    `json:"duration_seconds"`
	SecondHalf      bool   `json:"second_half"`
}

// Rounds is the per-round read model. Rounds missing a start, an end or a
// deciding trigger are excluded from both the list and the average.
type Rounds struct {
	Rounds                 []RoundRecord `json:"rounds"`
	AverageDurationSeconds int           `json:"average_duration_seconds"`
}

type roundAcc struct {
	started time.Time
	ended   time.Time
	winner  logparse.Side
	trigger string
}

// ComputeRounds pairs round_start/round_end events by round number and
// attributes winners from the deciding team_triggered notices.
func ComputeRounds(result *logparse.Result) Rounds {
	tracker := trackSides(result.Events)
	accs := map[int]*roundAcc{}

	get := func(round int) *roundAcc {
		entry, found := accs[round]
		if !found {
			entry = &roundAcc{}
			accs[round] = entry
		}

		return entry
	}

	for _, event := range result.Events {
		switch event.Type {
		case logparse.RoundStart:
			get(event.Round).started = event.CreatedOn
		case logparse.RoundEnd:
			get(event.Round).ended = event.CreatedOn
		case logparse.TeamTriggered:
			payload, ok := event.Payload.(logparse.TeamTriggeredPayload)
			if !ok || payload.Side == logparse.SideNone || !isWinTrigger(payload.Trigger) {
				continue
			}

			entry := get(event.Round)
			entry.winner = payload.Side
			entry.trigger = payload.Trigger
		}
	}

	numbers := make([]int, 0, len(accs))
	for round := range accs {
		numbers = append(numbers, round)
	}

	sort.Ints(numbers)

	var (
		rounds Rounds
		total  int
	)

	for _, round := range numbers {
		entry := accs[round]
		if round == 0 || entry.started.IsZero() || entry.ended.IsZero() || entry.winner == logparse.SideNone {
			continue
		}

		duration := int(entry.ended.Sub(entry.started).Seconds())
		total += duration

		rounds.Rounds = append(rounds.Rounds, RoundRecord{
			Round:           round,
			Winner:          tracker.TeamOnSide(entry.winner, round),
			WinnerSide:      entry.winner.Short(),
			Trigger:         entry.trigger,
			DurationSeconds: duration,
			SecondHalf:      round > HalftimeRound,
		})
	}

	if len(rounds.Rounds) > 0 {
		rounds.AverageDurationSeconds = int(math.Round(float64(total) / float64(len(rounds.Rounds))))
	}

	return rounds
}

func isWinTrigger(trigger string) bool {
	for _, marker := range winTriggers {
		if strings.Contains(trigger, marker) {
			return true
		}
	}

	return false
}
