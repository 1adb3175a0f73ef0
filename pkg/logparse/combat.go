package logparse

import (
	"strings"
)

// parseKill handles lines like:
//
//	"a<1><STEAM_A><CT>" [1 2 3] killed "b<2><STEAM_B><TERRORIST>" [4 5 6] with "ak47" (headshot)
func parseKill(line NormalizedLine, round int) (Event, bool) {
	killIdx := strings.Index(line.Message, " killed ")
	if killIdx == -1 {
		return Event{}, false
	}

	left := line.Message[:killIdx]
	right := line.Message[killIdx+len(" killed "):]

	withIdx := strings.Index(right, " with ")
	if withIdx == -1 {
		return Event{}, false
	}

	killer, killerOK := parsePlayer(left)
	victim, victimOK := parsePlayer(right[:withIdx])

	if !killerOK || !victimOK {
		return Event{}, false
	}

	killerPos, _ := parsePos(left)
	victimPos, _ := parsePos(right[:withIdx])
	weapon, _ := firstQuoted(right[withIdx+len(" with "):])

	return Event{
		CreatedOn: line.CreatedOn,
		Type:      Kill,
		Round:     round,
		Raw:       line.Raw,
		Payload: KillPayload{
			Killer:    killer,
			Victim:    victim,
			KillerPos: killerPos,
			VictimPos: victimPos,
			Weapon:    weapon,
			Headshot:  strings.Contains(line.Message, "(headshot)"),
		},
	}, true
}

// parseAttack handles damage lines, which carry the same shape as kills plus
// the trailing labeled values for damage and remaining health/armor.
func parseAttack(line NormalizedLine, round int) (Event, bool) {
	attackIdx := strings.Index(line.Message, " attacked ")
	if attackIdx == -1 {
		return Event{}, false
	}

	left := line.Message[:attackIdx]
	right := line.Message[attackIdx+len(" attacked "):]

	withIdx := strings.Index(right, " with ")
	if withIdx == -1 {
		return Event{}, false
	}

	attacker, attackerOK := parsePlayer(left)
	victim, victimOK := parsePlayer(right[:withIdx])

	if !attackerOK || !victimOK {
		return Event{}, false
	}

	rest := right[withIdx+len(" with "):]

	attackerPos, _ := parsePos(left)
	victimPos, _ := parsePos(right[:withIdx])
	weapon, _ := firstQuoted(rest)
	damage, _ := labeledNumber(rest, "damage")
	damageArmor, _ := labeledNumber(rest, "damage_armor")
	health, _ := labeledNumber(rest, "health")
	armor, _ := labeledNumber(rest, "armor")
	hitGroup, _ := labeledValue(rest, "hitgroup")

	return Event{
		CreatedOn: line.CreatedOn,
		Type:      Attack,
		Round:     round,
		Raw:       line.Raw,
		Payload: AttackPayload{
			Attacker:        attacker,
			Victim:          victim,
			AttackerPos:     attackerPos,
			VictimPos:       victimPos,
			Weapon:          weapon,
			Damage:          damage,
			DamageArmor:     damageArmor,
			HealthRemaining: health,
			ArmorRemaining:  armor,
			HitGroup:        hitGroup,
		},
	}, true
}

func parseAssistWith(connector string, kind EventType) parseFunc {
	return func(line NormalizedLine, round int) (Event, bool) {
		idx := strings.Index(line.Message, connector)
		if idx == -1 {
			return Event{}, false
		}

		assister, assisterOK := parsePlayer(line.Message[:idx])
		victim, victimOK := parsePlayer(line.Message[idx+len(connector):])

		if !assisterOK || !victimOK {
			return Event{}, false
		}

		return Event{
			CreatedOn: line.CreatedOn,
			Type:      kind,
			Round:     round,
			Raw:       line.Raw,
			Payload: AssistPayload{
				Assister: assister,
				Victim:   victim,
			},
		}, true
	}
}

var (
	parseAssist      = parseAssistWith(" assisted killing ", Assist)
	parseFlashAssist = parseAssistWith(" flash-assisted killing ", FlashAssist)
)
