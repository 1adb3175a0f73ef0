package service_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/leighmacdonald/cslogstats/internal/log"
	"github.com/leighmacdonald/cslogstats/internal/service"
	"github.com/leighmacdonald/cslogstats/internal/stats"
	"github.com/stretchr/testify/require"
)

const testLog = `03/01/2024 - 20:00:00: World triggered "Match_Start" on "de_dust2"
03/01/2024 - 20:00:01: MatchStatus: Score: 0:0 on map "de_dust2" RoundsPlayed: 0
03/01/2024 - 20:00:02: MatchStatus: Team playing "CT": Alpha
03/01/2024 - 20:00:03: MatchStatus: Team playing "TERRORIST": Bravo
03/01/2024 - 20:01:00: World triggered "Round_Start"
03/01/2024 - 20:01:15: "Alice<1><STEAM_1:0:111><CT>" [1 2 3] killed "Bob<2><STEAM_1:0:222><TERRORIST>" [4 5 6] with "ak47" (headshot)
03/01/2024 - 20:01:30: Team "CT" triggered "SFUI_Notice_CTs_Win" (CT "1") (T "0")
03/01/2024 - 20:01:35: World triggered "Round_End"
03/01/2024 - 20:02:00: MatchStatus: Score: 1:0 on map "de_dust2" RoundsPlayed: 1
`

func testRouter(t *testing.T) (*service.Service, http.Handler) {
	t.Helper()

	logPath := filepath.Join(t.TempDir(), "match.log")
	require.NoError(t, os.WriteFile(logPath, []byte(testLog), 0o600))

	svc := service.New(service.NewProvider(logPath))
	router := svc.CreateRouter(service.RouterOpts{
		Mode:     "test",
		LogLevel: log.Error,
	})

	return svc, router
}

func get(t *testing.T, router http.Handler, path string, into any) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(recorder, request)

	if into != nil && recorder.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), into))
	}

	return recorder
}

func TestMatchEndpoint(t *testing.T) {
	_, router := testRouter(t)

	var summary stats.MatchSummary

	recorder := get(t, router, "/api/match", &summary)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "de_dust2", summary.Map)
	require.Equal(t, []stats.TeamScore{{Team: "Alpha", Score: 1}, {Team: "Bravo", Score: 0}}, summary.Scores)
	require.Equal(t, 1, summary.TotalRounds)
}

func TestScoreboardEndpoint(t *testing.T) {
	_, router := testRouter(t)

	var board stats.Scoreboard

	recorder := get(t, router, "/api/scoreboard", &board)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, board.Teams, 2)
	require.Equal(t, "Alice", board.Teams[0].Players[0].Name)
	require.Equal(t, 1, board.Teams[0].Players[0].Kills)
}

func TestProgressionEndpoint(t *testing.T) {
	_, router := testRouter(t)

	var progression stats.Progression

	recorder := get(t, router, "/api/progression", &progression)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, stats.HalftimeRound, progression.Halftime)
	require.Len(t, progression.Points, 2)
}

func TestRoundsEndpoint(t *testing.T) {
	_, router := testRouter(t)

	var rounds stats.Rounds

	recorder := get(t, router, "/api/rounds", &rounds)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, rounds.Rounds, 1)
	require.Equal(t, "Alpha", rounds.Rounds[0].Winner)
	require.Equal(t, 35, rounds.Rounds[0].DurationSeconds)
}

func TestParserStatsEndpoint(t *testing.T) {
	_, router := testRouter(t)

	var payload struct {
		Counters struct {
			Total     int `json:"total"`
			Parsed    int `json:"parsed"`
			Noise     int `json:"noise"`
			Unknown   int `json:"unknown"`
			Malformed int `json:"malformed"`
		} `json:"counters"`
		OfficialStart bool `json:"official_start"`
	}

	recorder := get(t, router, "/api/parser/stats", &payload)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, payload.OfficialStart)
	require.Equal(t, payload.Counters.Total,
		payload.Counters.Noise+payload.Counters.Parsed+payload.Counters.Unknown+payload.Counters.Malformed)
}

func TestMissingLogFails(t *testing.T) {
	svc := service.New(service.NewProvider(filepath.Join(t.TempDir(), "missing.log")))
	router := svc.CreateRouter(service.RouterOpts{Mode: "test", LogLevel: log.Error})

	recorder := get(t, router, "/api/match", nil)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestProviderMemoizesAndInvalidates(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "match.log")
	require.NoError(t, os.WriteFile(logPath, []byte(testLog), 0o600))

	provider := service.NewProvider(logPath)

	first, errFirst := provider.Result()
	require.NoError(t, errFirst)

	second, errSecond := provider.Result()
	require.NoError(t, errSecond)
	require.Same(t, first, second)

	provider.Invalidate()

	third, errThird := provider.Result()
	require.NoError(t, errThird)
	require.NotSame(t, first, third)
	require.Equal(t, first.Counters, third.Counters)
}
