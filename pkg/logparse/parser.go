// Package logparse parses CS:GO/CS2 dedicated-server console logs into known
// events and values.
//
// Lines flow through a noise filter, a timestamp normalizer and an ordered
// routing table. Nothing in here fails hard: lines that cannot be classified
// become unknown or malformed events and are only visible through the result
// counters.
package logparse

import (
	"bufio"
	"io"
)

// Counters summarize how every input line was classified. Any line that
// produced no event counts as noise, whether it fell before the located match
// start or was filtered later, so Total is always the sum of the other four.
type Counters struct {
	Total     int `json:"total"`
	Parsed    int `json:"parsed"`
	Noise     int `json:"noise"`
	Unknown   int `json:"unknown"`
	Malformed int `json:"malformed"`
}

// Result is the complete outcome of parsing one log. Events keep input order,
// which is chronological order.
type Result struct {
	Events   []Event  `json:"events"`
	Counters Counters `json:"counters"`
	// StartIndex is the line index of the authoritative match start, or
	// NoMatchStartIndex when none was found.
	StartIndex int `json:"start_index"`
	// OfficialStart is false when no match-start heuristic succeeded and the
	// whole log was processed as a best effort.
	OfficialStart bool `json:"official_start"`
}

// Parser turns raw log lines into events. The zero value is not usable, use
// New.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

// ParseLine classifies a single line. The second return value is false when
// the line is noise or carries no conforming timestamp. Routed lines always
// produce an event: a typed one, malformed_<kind> when the matched route could
// not extract its required fields, or unknown when no route matched.
func (p *Parser) ParseLine(line string, round int) (Event, bool) {
	if IsNoise(line) {
		return Event{}, false
	}

	normalized, valid := NormalizeLine(line)
	if !valid {
		return Event{}, false
	}

	for _, rt := range routes {
		if !rt.test(normalized.Message) {
			continue
		}

		if event, parsed := rt.parse(normalized, round); parsed {
			return event, true
		}

		return Event{
			CreatedOn: normalized.CreatedOn,
			Type:      Malformed(rt.kind),
			Round:     round,
			Raw:       normalized.Raw,
		}, true
	}

	return Event{
		CreatedOn: normalized.CreatedOn,
		Type:      UnknownMsg,
		Round:     round,
		Raw:       normalized.Raw,
	}, true
}

// ParseLines processes a full log in one pass. Lines before the located match
// start are skipped without routing; when no start is found the whole log is
// processed from the beginning. Round numbers are stamped monotonically,
// incrementing exactly on round_start events.
func (p *Parser) ParseLines(lines []string) *Result {
	result := &Result{
		StartIndex: findMatchStart(lines),
	}
	result.OfficialStart = result.StartIndex != NoMatchStartIndex
	result.Counters.Total = len(lines)

	currentRound := 0

	for i, line := range lines {
		if result.OfficialStart && i < result.StartIndex {
			result.Counters.Noise++

			continue
		}

		event, routed := p.ParseLine(line, currentRound)
		if !routed {
			result.Counters.Noise++

			continue
		}

		if event.Type == RoundStart {
			currentRound++
			event.Round = currentRound
		} else if event.Round == 0 {
			event.Round = currentRound
		}

		switch {
		case event.Type == UnknownMsg:
			result.Counters.Unknown++
		case event.Type.IsMalformed():
			result.Counters.Malformed++
		default:
			result.Counters.Parsed++
		}

		result.Events = append(result.Events, event)
	}

	return result
}

// ParseReader reads newline-separated log content and parses it with
// ParseLines.
func (p *Parser) ParseReader(reader io.Reader) (*Result, error) {
	var lines []string

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if errScan := scanner.Err(); errScan != nil {
		return nil, errScan
	}

	return p.ParseLines(lines), nil
}
