package logparse

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var (
	// Common player id format eg: "s1mple<12><STEAM_1:1:36968273><CT>"
	rxPlayer = regexp.MustCompile(`"([^"]+)<(\d+)><([^>]+)><([^>]*)>"`)
	rxPos    = regexp.MustCompile(`\[([^\]]+)\]`)
	rxQuoted = regexp.MustCompile(`"([^"]+)"`)
)

// parsePlayer extracts a quoted player tuple from a line segment.
func parsePlayer(segment string) (Player, bool) {
	match := rxPlayer.FindStringSubmatch(segment)
	if match == nil {
		return Player{}, false
	}

	pid, errPid := strconv.Atoi(match[2])
	if errPid != nil {
		return Player{}, false
	}

	return Player{
		Name:    strings.TrimSpace(match[1]),
		ID:      pid,
		SteamID: match[3],
		Side:    SideFromString(match[4]),
	}, true
}

// parsePos extracts a bracketed coordinate triple from a line segment.
func parsePos(segment string) (Pos, bool) {
	match := rxPos.FindStringSubmatch(segment)
	if match == nil {
		return Pos{}, false
	}

	parts := strings.Fields(match[1])
	if len(parts) != 3 {
		return Pos{}, false
	}

	x, errX := strconv.ParseFloat(parts[0], 64)
	y, errY := strconv.ParseFloat(parts[1], 64)
	z, errZ := strconv.ParseFloat(parts[2], 64)

	if errX != nil || errY != nil || errZ != nil {
		return Pos{}, false
	}

	return Pos{X: x, Y: y, Z: z}, true
}

// firstQuoted returns the first double-quoted substring of a segment.
func firstQuoted(segment string) (string, bool) {
	match := rxQuoted.FindStringSubmatch(segment)
	if match == nil {
		return "", false
	}

	return match[1], true
}

// allQuoted returns every double-quoted substring of a segment, in order.
func allQuoted(segment string) []string {
	matches := rxQuoted.FindAllStringSubmatch(segment, -1)
	if matches == nil {
		return nil
	}

	values := make([]string, len(matches))
	for i, m := range matches {
		values[i] = m[1]
	}

	return values
}

var labelPatterns sync.Map // label -> *regexp.Regexp

func labelPattern(label string) *regexp.Regexp {
	if cached, found := labelPatterns.Load(label); found {
		return cached.(*regexp.Regexp) //nolint:forcetypeassert
	}

	rx := regexp.MustCompile(`\(` + regexp.QuoteMeta(label) + `\s+"?([^")]+)"?\)`)
	labelPatterns.Store(label, rx)

	return rx
}

// labeledValue extracts the value of a parenthesized (label value) or
// (label "value") pair.
func labeledValue(segment string, label string) (string, bool) {
	match := labelPattern(label).FindStringSubmatch(segment)
	if match == nil {
		return "", false
	}

	return match[1], true
}

// labeledNumber extracts a numeric (label "N") pair.
func labeledNumber(segment string, label string) (int, bool) {
	value, found := labeledValue(segment, label)
	if !found {
		return 0, false
	}

	num, errNum := strconv.Atoi(strings.TrimSpace(value))
	if errNum != nil {
		return 0, false
	}

	return num, true
}
