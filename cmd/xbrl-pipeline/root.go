package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xbrl-pipeline",
	Short: "Fetch, unzip and extract Companies House bulk XBRL accounts data",
	Long: `xbrl-pipeline discovers Companies House bulk accounts archives, fetches
and unzips them, extracts balance-sheet and income-statement facts from
every accounts document inside, and writes the result as CSV.`,
}

// Execute adds all child commands to the root command. Called once by
// main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
