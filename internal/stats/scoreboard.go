package stats

import (
	"math"
	"sort"

	"github.com/leighmacdonald/cslogstats/pkg/logparse"
)

// PlayerRow is one scoreboard line. Assists counts regular and flash assists
// together, FlashAssists just the latter. ADR is damage per round with one
// decimal, HeadshotPct a rounded integer percentage (0 when the player has no
// kills).
type PlayerRow struct {
	Name         string  `json:"name"`
	SteamID      string  `json:"steam_id"`
	Team         string  `json:"team"`
	Kills        int     `json:"kills"`
	Deaths       int     `json:"deaths"`
	Assists      int     `json:"assists"`
	FlashAssists int     `json:"flash_assists"`
	Headshots    int     `json:"headshots"`
	HeadshotPct  int     `json:"headshot_pct"`
	Damage       int     `json:"damage"`
	ADR          float64 `json:"adr"`
}

// TeamBoard groups the rows of one team, sorted by kills descending.
type TeamBoard struct {
	Team    string      `json:"team"`
	Players []PlayerRow `json:"players"`
}

// Scoreboard is the per-player read model, teams in first-seen order.
type Scoreboard struct {
	Teams []TeamBoard `json:"teams"`
}

type playerAcc struct {
	row   PlayerRow
	order int
}

// ComputeScoreboard folds combat events into per-player totals. Players are
// keyed by SteamID; names follow the latest sighting. A player's team bucket is
// fixed at first appearance, resolving their side against the round it was seen
// in, so post-halftime joiners still land on the right team. Players whose side
// never resolves are dropped.
func ComputeScoreboard(result *logparse.Result) Scoreboard {
	tracker := trackSides(result.Events)
	players := map[string]*playerAcc{}

	acc := func(player logparse.Player, round int) *playerAcc {
		if player.SteamID == "" {
			return nil
		}

		entry, found := players[player.SteamID]
		if !found {
			entry = &playerAcc{
				row: PlayerRow{
					SteamID: player.SteamID,
					Team:    tracker.TeamOnSide(player.Side, round),
				},
				order: len(players),
			}
			players[player.SteamID] = entry
		}

		if player.Name != "" {
			entry.row.Name = player.Name
		}

		if entry.row.Team == "" {
			entry.row.Team = tracker.TeamOnSide(player.Side, round)
		}

		return entry
	}

	for _, event := range result.Events {
		switch payload := event.Payload.(type) {
		case logparse.KillPayload:
			if killer := acc(payload.Killer, event.Round); killer != nil {
				killer.row.Kills++
				if payload.Headshot {
					killer.row.Headshots++
				}
			}

			if victim := acc(payload.Victim, event.Round); victim != nil {
				victim.row.Deaths++
			}
		case logparse.AttackPayload:
			attacker := acc(payload.Attacker, event.Round)
			acc(payload.Victim, event.Round)

			// Self and team damage never counts.
			crossSide := payload.Attacker.Side != payload.Victim.Side &&
				payload.Attacker.Side != logparse.SideNone &&
				payload.Victim.Side != logparse.SideNone

			if attacker != nil && crossSide {
				attacker.row.Damage += payload.Damage
			}
		case logparse.AssistPayload:
			if assister := acc(payload.Assister, event.Round); assister != nil {
				// Assists is the combined figure, flash assists are also
				// broken out on their own.
				assister.row.Assists++
				if event.Type == logparse.FlashAssist {
					assister.row.FlashAssists++
				}
			}
		}
	}

	totalRounds := lastRound(result.Events)

	boards := map[string]*TeamBoard{}
	for _, team := range tracker.Teams() {
		boards[team] = &TeamBoard{Team: team}
	}

	ordered := make([]*playerAcc, 0, len(players))
	for _, entry := range players {
		ordered = append(ordered, entry)
	}

	sort.Slice(ordered, func(i, j int) bool { return ordered[i].order < ordered[j].order })

	for _, entry := range ordered {
		board, found := boards[entry.row.Team]
		if !found {
			continue
		}

		if entry.row.Kills > 0 {
			entry.row.HeadshotPct = int(math.Round(float64(entry.row.Headshots) / float64(entry.row.Kills) * 100))
		}

		if totalRounds > 0 {
			entry.row.ADR = math.Round(float64(entry.row.Damage)/float64(totalRounds)*10) / 10
		}

		board.Players = append(board.Players, entry.row)
	}

	scoreboard := Scoreboard{}

	for _, team := range tracker.Teams() {
		board := boards[team]
		sort.SliceStable(board.Players, func(i, j int) bool {
			return board.Players[i].Kills > board.Players[j].Kills
		})
		scoreboard.Teams = append(scoreboard.Teams, *board)
	}

	return scoreboard
}
