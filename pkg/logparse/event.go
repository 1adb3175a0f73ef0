package logparse

import (
	"time"
)

// Pos is a world coordinate triple as logged between square brackets.
type Pos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Player is the snapshot of a player identity parsed from a single line
// segment. It is only valid for that line; cross-line identity is established
// exclusively through SteamID equality.
type Player struct {
	Name    string `json:"name"`
	ID      int    `json:"id"`
	SteamID string `json:"steam_id"`
	Side    Side   `json:"side"`
}

// Event is one parsed log line. Values are immutable once produced by the
// pipeline and ordered identically to the input.
type Event struct {
	CreatedOn time.Time `json:"created_on"`
	Type      EventType `json:"type"`
	// Round the event belongs to. 0 means before the first round start.
	Round   int    `json:"round"`
	Raw     string `json:"raw"`
	Payload any    `json:"payload,omitempty"`
}

// KillPayload is attached to Kill events.
type KillPayload struct {
	Killer    Player `json:"killer"`
	Victim    Player `json:"victim"`
	KillerPos Pos    `json:"killer_pos"`
	VictimPos Pos    `json:"victim_pos"`
	Weapon    string `json:"weapon"`
	Headshot  bool   `json:"headshot"`
}

// AttackPayload is attached to Attack (damage) events.
type AttackPayload struct {
	Attacker        Player `json:"attacker"`
	Victim          Player `json:"victim"`
	AttackerPos     Pos    `json:"attacker_pos"`
	VictimPos       Pos    `json:"victim_pos"`
	Weapon          string `json:"weapon"`
	Damage          int    `json:"damage"`
	DamageArmor     int    `json:"damage_armor"`
	HealthRemaining int    `json:"health_remaining"`
	ArmorRemaining  int    `json:"armor_remaining"`
	HitGroup        string `json:"hit_group"`
}

// AssistPayload is attached to both Assist and FlashAssist events.
type AssistPayload struct {
	Assister Player `json:"assister"`
	Victim   Player `json:"victim"`
}

// WorldTriggerPayload is attached to all World triggered events, including the
// specific round/match marker kinds.
type WorldTriggerPayload struct {
	Trigger string `json:"trigger"`
	Map     string `json:"map,omitempty"`
}

// GameOverPayload is attached to GameOver events.
type GameOverPayload struct {
	Mode        string `json:"mode"`
	MatchID     int64  `json:"match_id"`
	Map         string `json:"map"`
	Score1      int    `json:"score_1"`
	Score2      int    `json:"score_2"`
	DurationMin int    `json:"duration_min"`
}

// TeamScoredPayload is attached to TeamScored events. Team-prefixed lines name
// sides, not teams, so the field is a Side.
type TeamScoredPayload struct {
	Side    Side `json:"side"`
	Score   int  `json:"score"`
	Players int  `json:"players"`
}

// TeamTriggeredPayload is attached to TeamTriggered events. HasScores is set
// when the line carried the post-round (CT "x") (T "y") pair.
type TeamTriggeredPayload struct {
	Side      Side   `json:"side"`
	Trigger   string `json:"trigger"`
	CTScore   int    `json:"ct_score"`
	TScore    int    `json:"t_score"`
	HasScores bool   `json:"has_scores"`
}

// TeamPlayingPayload is attached to TeamPlaying and MatchStatusTeam events,
// the only lines that tie a side to a durable team name.
type TeamPlayingPayload struct {
	Side Side   `json:"side"`
	Team string `json:"team"`
}

// MatchStatusScorePayload is attached to MatchStatusScore events.
type MatchStatusScorePayload struct {
	CTScore      int    `json:"ct_score"`
	TScore       int    `json:"t_score"`
	Map          string `json:"map"`
	RoundsPlayed int    `json:"rounds_played"`
}

// MatchStatusPayload is attached to MatchStatus events that matched neither
// the score nor the team-playing shape.
type MatchStatusPayload struct {
	Content string `json:"content"`
}
