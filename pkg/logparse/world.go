package logparse

import (
	"strconv"
	"strings"
)

// parseWorldTrigger maps World triggered lines onto the round/match marker
// kinds, falling back to a generic WorldTrigger for unrecognized triggers.
func parseWorldTrigger(line NormalizedLine, round int) (Event, bool) {
	trigger, found := firstQuoted(line.Message)
	if !found {
		return Event{}, false
	}

	var mapName string
	if onIdx := strings.Index(line.Message, " on "); onIdx != -1 {
		mapName, _ = firstQuoted(line.Message[onIdx:])
	}

	kind, known := worldTriggerKinds[trigger]
	if !known {
		kind = WorldTrigger
	}

	return Event{
		CreatedOn: line.CreatedOn,
		Type:      kind,
		Round:     round,
		Raw:       line.Raw,
		Payload: WorldTriggerPayload{
			Trigger: trigger,
			Map:     mapName,
		},
	}, true
}

func parseFreezePeriod(line NormalizedLine, round int) (Event, bool) {
	return Event{
		CreatedOn: line.CreatedOn,
		Type:      FreezePeriod,
		Round:     round,
		Raw:       line.Raw,
	}, true
}

// parseGameOver handles the final summary line:
//
//	Game Over: competitive 1234567 de_nuke score 16:9 after 47 min
//
// The map name sits between the numeric match id and the literal "score";
// everything else around it is tolerated.
func parseGameOver(line NormalizedLine, round int) (Event, bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(line.Message, "Game Over:"))
	fields := strings.Fields(rest)

	scoreIdx := -1
	for i, field := range fields {
		if field == "score" {
			scoreIdx = i

			break
		}
	}

	if scoreIdx < 1 || scoreIdx+1 >= len(fields) {
		return Event{}, false
	}

	scoreParts := strings.SplitN(fields[scoreIdx+1], ":", 2)
	if len(scoreParts) != 2 {
		return Event{}, false
	}

	score1, err1 := strconv.Atoi(scoreParts[0])
	score2, err2 := strconv.Atoi(scoreParts[1])

	if err1 != nil || err2 != nil {
		return Event{}, false
	}

	payload := GameOverPayload{
		Mode:   fields[0],
		Map:    fields[scoreIdx-1],
		Score1: score1,
		Score2: score2,
	}

	if scoreIdx >= 2 {
		payload.MatchID, _ = strconv.ParseInt(fields[scoreIdx-2], 10, 64)
	}

	for i := scoreIdx + 2; i < len(fields)-1; i++ {
		if fields[i] == "after" {
			payload.DurationMin, _ = strconv.Atoi(fields[i+1])

			break
		}
	}

	return Event{
		CreatedOn: line.CreatedOn,
		Type:      GameOver,
		Round:     round,
		Raw:       line.Raw,
		Payload:   payload,
	}, true
}
