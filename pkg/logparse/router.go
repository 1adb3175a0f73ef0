package logparse

import (
	"strings"
)

type parseFunc func(line NormalizedLine, round int) (Event, bool)

type route struct {
	kind  EventType
	test  func(msg string) bool
	parse parseFunc
}

// routes is the ordered event routing table. Order matters: predicates
// overlap, so the most specific checks run first (combat before world before
// team, exact phrases before broad prefixes). A kill line must never fall
// through to a generic team handler.
var routes = []route{
	{
		kind: Kill,
		test: func(msg string) bool {
			return strings.Contains(msg, " killed ") && !strings.Contains(msg, "killed other")
		},
		parse: parseKill,
	},
	{
		kind:  Attack,
		test:  func(msg string) bool { return strings.Contains(msg, " attacked ") },
		parse: parseAttack,
	},
	{
		kind:  FlashAssist,
		test:  func(msg string) bool { return strings.Contains(msg, " flash-assisted killing ") },
		parse: parseFlashAssist,
	},
	{
		kind:  Assist,
		test:  func(msg string) bool { return strings.Contains(msg, " assisted killing ") },
		parse: parseAssist,
	},
	{
		kind:  WorldTrigger,
		test:  func(msg string) bool { return strings.HasPrefix(msg, "World triggered") },
		parse: parseWorldTrigger,
	},
	{
		kind:  FreezePeriod,
		test:  func(msg string) bool { return strings.HasPrefix(msg, "Starting Freeze period") },
		parse: parseFreezePeriod,
	},
	{
		kind:  GameOver,
		test:  func(msg string) bool { return strings.HasPrefix(msg, "Game Over:") },
		parse: parseGameOver,
	},
	{
		kind: TeamScored,
		test: func(msg string) bool {
			return strings.HasPrefix(msg, "Team ") && strings.Contains(msg, " scored ")
		},
		parse: parseTeamScored,
	},
	{
		kind: TeamTriggered,
		test: func(msg string) bool {
			return strings.HasPrefix(msg, "Team ") && strings.Contains(msg, " triggered ")
		},
		parse: parseTeamTriggered,
	},
	{
		kind:  TeamPlaying,
		test:  func(msg string) bool { return strings.HasPrefix(msg, "Team playing") },
		parse: parseTeamPlaying,
	},
	{
		kind:  MatchStatus,
		test:  func(msg string) bool { return strings.HasPrefix(msg, "MatchStatus:") },
		parse: parseMatchStatus,
	},
}
