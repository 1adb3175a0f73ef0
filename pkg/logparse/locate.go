package logparse

import (
	"strings"
)

const (
	matchStartMarker  = "Match_Start"
	roundsZeroMarker  = "RoundsPlayed: 0"
	matchStartWindow  = 10
	NoMatchStartIndex = -1
)

// findMatchStart returns the index of the authoritative match start line, or
// NoMatchStartIndex when no candidate qualifies. Warm-up aborts commonly leave
// several restart attempts in a log; only the final one counts, so the last
// qualifying occurrence always wins.
//
// A line qualifies outright when it carries both the match-start marker and an
// explicit zero rounds-played marker. When no line carries both, a
// match-start line qualifies if a zero rounds-played marker follows within the
// next few lines.
func findMatchStart(lines []string) int {
	last := NoMatchStartIndex

	for i, line := range lines {
		if strings.Contains(line, matchStartMarker) && strings.Contains(line, roundsZeroMarker) {
			last = i
		}
	}

	if last != NoMatchStartIndex {
		return last
	}

	for i, line := range lines {
		if !strings.Contains(line, matchStartMarker) {
			continue
		}

		end := min(i+matchStartWindow, len(lines))
		for j := i + 1; j < end; j++ {
			if strings.Contains(lines[j], roundsZeroMarker) {
				last = i

				break
			}
		}
	}

	return last
}
