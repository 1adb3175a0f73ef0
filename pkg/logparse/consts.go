package logparse

// EventType identifies the kind of a parsed log event. The values double as
// the wire names emitted to API consumers.
type EventType string

const (
	Kill        EventType = "kill"
	Attack      EventType = "attack"
	Assist      EventType = "assist"
	FlashAssist EventType = "flash_assist"

	RoundStart     EventType = "round_start"
	RoundEnd       EventType = "round_end"
	MatchStart     EventType = "match_start"
	GameCommencing EventType = "game_commencing"
	RoundRestart   EventType = "round_restart"
	WorldTrigger   EventType = "world_trigger"
	FreezePeriod   EventType = "freeze_period"
	GameOver       EventType = "game_over"

	TeamScored       EventType = "team_scored"
	TeamTriggered    EventType = "team_triggered"
	TeamPlaying      EventType = "team_playing"
	MatchStatusScore EventType = "match_status_score"
	MatchStatusTeam  EventType = "match_status_team"
	MatchStatus      EventType = "match_status"

	UnknownMsg EventType = "unknown"
)

const malformedPrefix = "malformed_"

// Malformed returns the event type emitted when a line matched the predicate
// for kind but its required fields could not be extracted.
func Malformed(kind EventType) EventType {
	return EventType(malformedPrefix + string(kind))
}

// IsMalformed reports whether t is a malformed_<kind> marker.
func (t EventType) IsMalformed() bool {
	return len(t) > len(malformedPrefix) && t[:len(malformedPrefix)] == malformedPrefix
}

// Side is the in-round faction a player currently occupies. Sides swap between
// the two teams at halftime, so a Side never identifies a team on its own.
type Side string

const (
	CT        Side = "CT"
	TERRORIST Side = "TERRORIST"
	SideNone  Side = ""
)

// SideFromString maps the raw side segment of a player tuple. Unassigned,
// Spectator and empty segments all collapse to SideNone.
func SideFromString(value string) Side {
	switch value {
	case "CT":
		return CT
	case "TERRORIST":
		return TERRORIST
	default:
		return SideNone
	}
}

// Short returns the abbreviated display form used by scoreboards ("CT" / "T").
func (s Side) Short() string {
	if s == TERRORIST {
		return "T"
	}

	return string(s)
}

// worldTriggerKinds maps the quoted trigger names of World triggered lines to
// their specific event types. Anything else stays a generic WorldTrigger.
var worldTriggerKinds = map[string]EventType{
	"Round_Start":              RoundStart,
	"Round_End":                RoundEnd,
	"Match_Start":              MatchStart,
	"Game_Commencing":          GameCommencing,
	"Restart_Round_(1_second)": RoundRestart,
}
