package logparse

import (
	"regexp"
	"strconv"
	"strings"
)

var rxTeamPlaying = regexp.MustCompile(`Team playing "([^"]+)":\s*(.+)$`)

var rxStatusScore = regexp.MustCompile(`Score: (\d+):(\d+) on map "([^"]+)" RoundsPlayed: (-?\d+)`)

// parseTeamScored handles: Team "CT" scored "9" with "5" players
func parseTeamScored(line NormalizedLine, round int) (Event, bool) {
	quoted := allQuoted(line.Message)
	if len(quoted) < 2 {
		return Event{}, false
	}

	score, errScore := strconv.Atoi(quoted[1])
	if errScore != nil {
		return Event{}, false
	}

	var players int
	if len(quoted) >= 3 {
		players, _ = strconv.Atoi(quoted[2])
	}

	return Event{
		CreatedOn: line.CreatedOn,
		Type:      TeamScored,
		Round:     round,
		Raw:       line.Raw,
		Payload: TeamScoredPayload{
			Side:    SideFromString(quoted[0]),
			Score:   score,
			Players: players,
		},
	}, true
}

// parseTeamTriggered handles: Team "CT" triggered "SFUI_Notice_CTs_Win" (CT "9") (T "6")
// The trailing score pair is optional.
func parseTeamTriggered(line NormalizedLine, round int) (Event, bool) {
	quoted := allQuoted(line.Message)
	if len(quoted) < 2 {
		return Event{}, false
	}

	payload := TeamTriggeredPayload{
		Side:    SideFromString(quoted[0]),
		Trigger: quoted[1],
	}

	ctScore, ctFound := labeledNumber(line.Message, "CT")
	tScore, tFound := labeledNumber(line.Message, "T")

	if ctFound && tFound {
		payload.CTScore = ctScore
		payload.TScore = tScore
		payload.HasScores = true
	}

	return Event{
		CreatedOn: line.CreatedOn,
		Type:      TeamTriggered,
		Round:     round,
		Raw:       line.Raw,
		Payload:   payload,
	}, true
}

// parseTeamPlaying handles the side announcements that carry durable team
// names: Team playing "CT": TeamAlpha
func parseTeamPlaying(line NormalizedLine, round int) (Event, bool) {
	match := rxTeamPlaying.FindStringSubmatch(line.Message)
	if match == nil {
		return Event{}, false
	}

	return Event{
		CreatedOn: line.CreatedOn,
		Type:      TeamPlaying,
		Round:     round,
		Raw:       line.Raw,
		Payload: TeamPlayingPayload{
			Side: SideFromString(match[1]),
			Team: strings.TrimSpace(match[2]),
		},
	}, true
}

// parseMatchStatus tries the three MatchStatus shapes in order: score with
// rounds played, team-playing, then generic free text.
func parseMatchStatus(line NormalizedLine, round int) (Event, bool) {
	content := strings.TrimSpace(strings.TrimPrefix(line.Message, "MatchStatus:"))

	if match := rxStatusScore.FindStringSubmatch(content); match != nil {
		ctScore, _ := strconv.Atoi(match[1])
		tScore, _ := strconv.Atoi(match[2])
		roundsPlayed, _ := strconv.Atoi(match[4])

		return Event{
			CreatedOn: line.CreatedOn,
			Type:      MatchStatusScore,
			Round:     round,
			Raw:       line.Raw,
			Payload: MatchStatusScorePayload{
				CTScore:      ctScore,
				TScore:       tScore,
				Map:          match[3],
				RoundsPlayed: roundsPlayed,
			},
		}, true
	}

	if match := rxTeamPlaying.FindStringSubmatch(content); match != nil {
		return Event{
			CreatedOn: line.CreatedOn,
			Type:      MatchStatusTeam,
			Round:     round,
			Raw:       line.Raw,
			Payload: TeamPlayingPayload{
				Side: SideFromString(match[1]),
				Team: strings.TrimSpace(match[2]),
			},
		}, true
	}

	return Event{
		CreatedOn: line.CreatedOn,
		Type:      MatchStatus,
		Round:     round,
		Raw:       line.Raw,
		Payload:   MatchStatusPayload{Content: content},
	}, true
}
