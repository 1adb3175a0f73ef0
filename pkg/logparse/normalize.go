package logparse

import (
	"regexp"
	"strings"
	"time"
)

// noisePatterns mark lines with no statistical value. They are filtered before
// any routing happens and only show up in the noise counter.
var noisePatterns = []string{
	"server_cvar",
	"Your server needs to be restarted",
	"GOTV",
	"[FACEIT]",
	"STEAM USERID validated",
	"killed other",
	"Molotov projectile",
	"entered the game",
	"connected, address",
}

// minSeparatorIndex is the smallest offset at which the ": " separating the
// timestamp from the message may appear. Anything earlier cannot carry a full
// MM/DD/YYYY - HH:MM:SS prefix.
const minSeparatorIndex = 20

var rxTimestamp = regexp.MustCompile(`^\d{2}/\d{2}/\d{4} - \d{2}:\d{2}:\d{2}$`)

const timestampLayout = "01/02/2006 - 15:04:05"

// NormalizedLine is the intermediate form of one accepted log line. It lives
// only until the line has been routed.
type NormalizedLine struct {
	CreatedOn time.Time
	Message   string
	Raw       string
}

// IsNoise reports whether line should be skipped without normalization.
// Blank lines are noise.
func IsNoise(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}

	for _, pattern := range noisePatterns {
		if strings.Contains(line, pattern) {
			return true
		}
	}

	return false
}

// NormalizeLine splits a raw line into timestamp and message. Lines without a
// conforming timestamp prefix are non-events, never errors.
func NormalizeLine(line string) (NormalizedLine, bool) {
	line = strings.TrimSuffix(line, "\r")

	sep := strings.Index(line, ": ")
	if sep < minSeparatorIndex {
		return NormalizedLine{}, false
	}

	prefix := line[:sep]
	if !rxTimestamp.MatchString(prefix) {
		return NormalizedLine{}, false
	}

	created, errTime := time.Parse(timestampLayout, prefix)
	if errTime != nil {
		return NormalizedLine{}, false
	}

	return NormalizedLine{
		CreatedOn: created,
		Message:   line[sep+2:],
		Raw:       line,
	}, true
}
