// Package cmd implements the CLI of the application.
//
// serve - Start the match stats JSON API
// stats - Print match summary and scoreboard for a console log
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// BuildVersion is set at link time.
var BuildVersion = "master"

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cslogstats",
	Short: "Parse CS dedicated server console logs into match statistics",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.Version = BuildVersion
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./cslogstats.yml)")

	if errExecute := rootCmd.Execute(); errExecute != nil {
		os.Exit(1)
	}
}
