package logparse_test

import (
	"strings"
	"testing"
	"time"

	"github.com/leighmacdonald/cslogstats/pkg/logparse"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	parser := logparse.New()

	tests := []struct {
		line   string
		routed bool
		kind   logparse.EventType
	}{
		{``, false, ""},
		{`11/28/2021 - 20:41:09: "GOTV<2><BOT><>" connected, address ""`, false, ""},
		{`11/28/2021 - 20:41:09: server_cvar: "mp_roundtime" "1.92"`, false, ""},
		{`no timestamp on this line at all: nope`, false, ""},
		{`11/28/2021 - 20:41:10: World triggered "Match_Start" on "de_nuke"`, true, logparse.MatchStart},
		{`11/28/2021 - 20:41:11: MatchStatus: Score: 0:0 on map "de_nuke" RoundsPlayed: 0`, true, logparse.MatchStatusScore},
		{`11/28/2021 - 20:41:12: MatchStatus: Team playing "CT": TeamAlpha`, true, logparse.MatchStatusTeam},
		{`11/28/2021 - 20:41:12: Team playing "TERRORIST": TeamBravo`, true, logparse.TeamPlaying},
		{`11/28/2021 - 20:41:30: World triggered "Round_Start"`, true, logparse.RoundStart},
		{`11/28/2021 - 20:41:35: Starting Freeze period`, true, logparse.FreezePeriod},
		{`11/28/2021 - 20:41:40: World triggered "Game_Commencing"`, true, logparse.GameCommencing},
		{`11/28/2021 - 20:41:41: World triggered "Restart_Round_(1_second)"`, true, logparse.RoundRestart},
		{`11/28/2021 - 20:41:42: World triggered "Announce_Phase_End"`, true, logparse.WorldTrigger},
		{`11/28/2021 - 20:42:00: "s1mple<12><STEAM_1:1:36968273><CT>" [-100 200 64] killed "device<7><STEAM_1:0:12345><TERRORIST>" [50 -75 64] with "ak47" (headshot)`, true, logparse.Kill},
		{`11/28/2021 - 20:42:01: "s1mple<12><STEAM_1:1:36968273><CT>" [1 2 3] attacked "device<7><STEAM_1:0:12345><TERRORIST>" [4 5 6] with "ak47" (damage "27") (damage_armor "0") (health "73") (armor "0") (hitgroup "chest")`, true, logparse.Attack},
		{`11/28/2021 - 20:42:02: "electronic<8><STEAM_1:1:111><CT>" assisted killing "device<7><STEAM_1:0:12345><TERRORIST>"`, true, logparse.Assist},
		{`11/28/2021 - 20:42:03: "Perfecto<9><STEAM_1:1:222><CT>" flash-assisted killing "dupreeh<6><STEAM_1:0:333><TERRORIST>"`, true, logparse.FlashAssist},
		{`11/28/2021 - 20:43:01: Team "CT" triggered "SFUI_Notice_CTs_Win" (CT "1") (T "0")`, true, logparse.TeamTriggered},
		{`11/28/2021 - 20:43:01: World triggered "Round_End"`, true, logparse.RoundEnd},
		{`11/28/2021 - 20:43:02: Team "CT" scored "1" with "5" players`, true, logparse.TeamScored},
		{`11/28/2021 - 20:43:30: "broken<3><STEAM_1:0:3><CT>" killed somebody with "ak47"`, true, logparse.Malformed(logparse.Kill)},
		{`11/28/2021 - 20:44:00: Game Over: competitive 1234567 de_nuke score 16:9 after 47 min`, true, logparse.GameOver},
		{`11/28/2021 - 20:44:01: rcon from "1.2.3.4": command "status"`, true, logparse.UnknownMsg},
	}

	for i, test := range tests {
		event, routed := parser.ParseLine(test.line, 0)
		require.Equalf(t, test.routed, routed, "[%d] %s", i, test.line)

		if test.routed {
			require.Equalf(t, test.kind, event.Type, "[%d] %s", i, test.line)
			require.Equal(t, strings.TrimSuffix(test.line, "\r"), event.Raw)
		}
	}
}

func TestParseKillPayload(t *testing.T) {
	parser := logparse.New()

	event, routed := parser.ParseLine(
		`11/28/2021 - 20:42:00: "s1mple<12><STEAM_1:1:36968273><CT>" [-100 200 64] killed "device<7><STEAM_1:0:12345><TERRORIST>" [50 -75 64] with "ak47" (headshot)`, 3)
	require.True(t, routed)

	payload, ok := event.Payload.(logparse.KillPayload)
	require.True(t, ok)
	require.Equal(t, "s1mple", payload.Killer.Name)
	require.Equal(t, 12, payload.Killer.ID)
	require.Equal(t, "STEAM_1:1:36968273", payload.Killer.SteamID)
	require.Equal(t, logparse.CT, payload.Killer.Side)
	require.Equal(t, "device", payload.Victim.Name)
	require.Equal(t, logparse.TERRORIST, payload.Victim.Side)
	require.Equal(t, logparse.Pos{X: -100, Y: 200, Z: 64}, payload.KillerPos)
	require.Equal(t, "ak47", payload.Weapon)
	require.True(t, payload.Headshot)
	require.Equal(t, 3, event.Round)
	require.Equal(t, time.Date(2021, 11, 28, 20, 42, 0, 0, time.UTC), event.CreatedOn)
}

func TestParseAttackPayload(t *testing.T) {
	parser := logparse.New()

	event, routed := parser.ParseLine(
		`11/28/2021 - 20:42:01: "s1mple<12><STEAM_1:1:36968273><CT>" [1 2 3] attacked "device<7><STEAM_1:0:12345><TERRORIST>" [4 5 6] with "ak47" (damage "27") (damage_armor "5") (health "73") (armor "95") (hitgroup "chest")`, 1)
	require.True(t, routed)

	payload, ok := event.Payload.(logparse.AttackPayload)
	require.True(t, ok)
	require.Equal(t, 27, payload.Damage)
	require.Equal(t, 5, payload.DamageArmor)
	require.Equal(t, 73, payload.HealthRemaining)
	require.Equal(t, 95, payload.ArmorRemaining)
	require.Equal(t, "chest", payload.HitGroup)
	require.Equal(t, "ak47", payload.Weapon)
}

func TestParseTeamTriggeredPayload(t *testing.T) {
	parser := logparse.New()

	event, _ := parser.ParseLine(`11/28/2021 - 20:43:01: Team "TERRORIST" triggered "SFUI_Notice_Target_Bombed" (CT "4") (T "9")`, 0)
	payload, ok := event.Payload.(logparse.TeamTriggeredPayload)
	require.True(t, ok)
	require.Equal(t, logparse.TERRORIST, payload.Side)
	require.Equal(t, "SFUI_Notice_Target_Bombed", payload.Trigger)
	require.True(t, payload.HasScores)
	require.Equal(t, 4, payload.CTScore)
	require.Equal(t, 9, payload.TScore)

	event, _ = parser.ParseLine(`11/28/2021 - 20:43:05: Team "CT" triggered "SFUI_Notice_Bomb_Defused"`, 0)
	payload, ok = event.Payload.(logparse.TeamTriggeredPayload)
	require.True(t, ok)
	require.False(t, payload.HasScores)
}

func TestParseGameOverPayload(t *testing.T) {
	parser := logparse.New()

	event, routed := parser.ParseLine(`11/28/2021 - 22:10:11: Game Over: competitive 1234567 de_nuke score 16:9 after 47 min`, 0)
	require.True(t, routed)

	payload, ok := event.Payload.(logparse.GameOverPayload)
	require.True(t, ok)
	require.Equal(t, "competitive", payload.Mode)
	require.Equal(t, int64(1234567), payload.MatchID)
	require.Equal(t, "de_nuke", payload.Map)
	require.Equal(t, 16, payload.Score1)
	require.Equal(t, 9, payload.Score2)
	require.Equal(t, 47, payload.DurationMin)
}

func TestParseLinesRounds(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(exampleLog), "\n")

	result := logparse.New().ParseLines(lines)

	require.True(t, result.OfficialStart)
	require.LessOrEqual(t, len(result.Events), len(lines))

	// Round numbers never decrease and only move on round_start.
	prev := 0
	for _, event := range result.Events {
		require.GreaterOrEqual(t, event.Round, prev, event.Raw)
		prev = event.Round
	}
	require.Equal(t, 2, prev)
}

func TestParseLinesCounters(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(exampleLog), "\n")

	result := logparse.New().ParseLines(lines)

	counters := result.Counters
	require.Equal(t, len(lines), counters.Total)
	require.Equal(t, counters.Total, counters.Noise+counters.Parsed+counters.Unknown+counters.Malformed)
	require.Len(t, result.Events, counters.Parsed+counters.Unknown+counters.Malformed)
	require.Equal(t, 1, counters.Malformed)
	require.Equal(t, 1, counters.Unknown)
}

func TestParseLinesIdempotent(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(exampleLog), "\n")
	parser := logparse.New()

	first := parser.ParseLines(lines)
	second := parser.ParseLines(lines)

	require.Equal(t, first, second)
}

func TestParseLinesNoOfficialStart(t *testing.T) {
	lines := []string{
		`11/28/2021 - 20:41:30: World triggered "Round_Start"`,
		`11/28/2021 - 20:42:01: World triggered "Round_End"`,
	}

	result := logparse.New().ParseLines(lines)

	require.False(t, result.OfficialStart)
	require.Equal(t, logparse.NoMatchStartIndex, result.StartIndex)
	require.Len(t, result.Events, 2)
	require.Equal(t, 1, result.Events[0].Round)
}

// exampleLog is a condensed match: a discarded warm-up start, the real start,
// two full rounds and a game over. The rcon line is intentionally unknown and
// the partial kill line intentionally malformed.
const exampleLog = `11/28/2021 - 20:30:00: World triggered "Match_Start" on "de_nuke"
11/28/2021 - 20:30:01: MatchStatus: Score: 0:0 on map "de_nuke" RoundsPlayed: 0
11/28/2021 - 20:30:05: World triggered "Restart_Round_(1_second)"
11/28/2021 - 20:41:10: World triggered "Match_Start" on "de_nuke"
11/28/2021 - 20:41:11: MatchStatus: Score: 0:0 on map "de_nuke" RoundsPlayed: 0
11/28/2021 - 20:41:12: MatchStatus: Team playing "CT": TeamAlpha
11/28/2021 - 20:41:13: MatchStatus: Team playing "TERRORIST": TeamBravo
11/28/2021 - 20:41:20: "GOTV<2><BOT><>" connected, address ""
11/28/2021 - 20:41:30: World triggered "Round_Start"
11/28/2021 - 20:41:35: "s1mple<12><STEAM_1:1:36968273><CT>" [1 2 3] attacked "device<7><STEAM_1:0:12345><TERRORIST>" [4 5 6] with "ak47" (damage "27") (damage_armor "0") (health "73") (armor "0") (hitgroup "chest")
11/28/2021 - 20:41:36: "s1mple<12><STEAM_1:1:36968273><CT>" [-100 200 64] killed "device<7><STEAM_1:0:12345><TERRORIST>" [50 -75 64] with "ak47" (headshot)
11/28/2021 - 20:42:40: Team "CT" triggered "SFUI_Notice_CTs_Win" (CT "1") (T "0")
11/28/2021 - 20:42:41: World triggered "Round_End"
11/28/2021 - 20:42:50: rcon from "1.2.3.4": command "status"
11/28/2021 - 20:43:00: World triggered "Round_Start"
11/28/2021 - 20:43:12: "broken<3><STEAM_1:0:3><CT>" killed somebody with "ak47"
11/28/2021 - 20:43:40: Team "TERRORIST" triggered "SFUI_Notice_Target_Bombed" (CT "1") (T "1")
11/28/2021 - 20:43:41: World triggered "Round_End"
11/28/2021 - 20:44:00: Game Over: competitive 1234567 de_nuke score 16:9 after 47 min`
