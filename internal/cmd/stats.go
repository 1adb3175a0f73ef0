package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/cslogstats/internal/service"
	"github.com/leighmacdonald/cslogstats/internal/stats"
	"github.com/leighmacdonald/cslogstats/pkg/logparse"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command.
func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <logfile>",
		Short: "Print the match summary and scoreboard for a console log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, errResult := service.NewProvider(args[0]).Result()
			if errResult != nil {
				return errResult
			}

			writer := cmd.OutOrStdout()
			printSummary(writer, stats.ComputeMatch(result), result)
			printScoreboard(writer, stats.ComputeScoreboard(result))

			return nil
		},
	}
}

func printSummary(writer io.Writer, summary stats.MatchSummary, result *logparse.Result) {
	scores := make([]string, 0, len(summary.Scores))
	for _, teamScore := range summary.Scores {
		scores = append(scores, fmt.Sprintf("%s %d", teamScore.Team, teamScore.Score))
	}

	fmt.Fprintf(writer, "\nMap: %s  |  Played: %s  |  Score: %s  |  Rounds: %d  |  Duration: %s\n\n",
		summary.Map,
		humanize.Time(summary.Date),
		strings.Join(scores, " - "),
		summary.TotalRounds,
		time.Duration(summary.DurationSeconds)*time.Second)

	if !result.OfficialStart {
		fmt.Fprintln(writer, "warning: no official match start found, stats cover the whole log")
	}
}

func printScoreboard(writer io.Writer, board stats.Scoreboard) {
	table := tablewriter.NewTable(writer, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("TEAM", "NAME", "K", "D", "A", "FA", "HS%", "DMG", "ADR")

	for _, team := range board.Teams {
		for _, player := range team.Players {
			table.Append(
				team.Team,
				player.Name,
				strconv.Itoa(player.Kills),
				strconv.Itoa(player.Deaths),
				strconv.Itoa(player.Assists),
				strconv.Itoa(player.FlashAssists),
				fmt.Sprintf("%d%%", player.HeadshotPct),
				strconv.Itoa(player.Damage),
				fmt.Sprintf("%.1f", player.ADR),
			)
		}
	}

	table.Render()
}
