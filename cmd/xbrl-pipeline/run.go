package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	xbrl "github.com/uktrade/stream-read-xbrl"
)

var (
	runIndexURL    string
	runCutoff      string
	runInterval    time.Duration
	runConcurrency int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Discover, fetch, unzip and extract every archive after a cutoff date",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, err := xbrl.GetContactEmail()
		if err != nil {
			return err
		}
		cutoff, err := parseCutoff(runCutoff)
		if err != nil {
			return err
		}

		opts := xbrl.PipelineOptions{
			IndexURL:    runIndexURL,
			Email:       email,
			Cutoff:      cutoff,
			Interval:    runInterval,
			Concurrency: runConcurrency,
		}
		return xbrl.Run(context.Background(), opts, os.Stdout)
	},
}

func init() {
	runCmd.Flags().StringVar(&runIndexURL, "index-url", "http://download.companieshouse.gov.uk/en_accountsdata.html", "bulk-data index page URL")
	runCmd.Flags().StringVar(&runCutoff, "cutoff", "", "only process archives that could contain documents after this date (YYYY-MM-DD)")
	runCmd.Flags().DurationVar(&runInterval, "interval", time.Second, "minimum interval between archive fetch requests")
	runCmd.Flags().IntVar(&runConcurrency, "concurrency", 4, "maximum documents extracted concurrently per archive")
	rootCmd.AddCommand(runCmd)
}
