package main

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	xbrl "github.com/uktrade/stream-read-xbrl"
	"golang.org/x/net/html"
)

var (
	discoverIndexURL string
	discoverCutoff   string
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "List bulk archives published at the Companies House index page",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, err := xbrl.GetContactEmail()
		if err != nil {
			return err
		}
		cutoff, err := parseCutoff(discoverCutoff)
		if err != nil {
			return err
		}

		fetcher := xbrl.NewFetcher(email, 0)
		body, err := fetcher.FetchIndexPage(context.Background(), discoverIndexURL)
		if err != nil {
			return fmt.Errorf("fetching index page: %w", err)
		}

		root, err := html.Parse(bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("parsing index page: %w", err)
		}

		links, err := xbrl.DiscoverArchives(root, discoverIndexURL)
		if err != nil {
			return fmt.Errorf("discovering archives: %w", err)
		}
		links = xbrl.FilterByCutoff(links, cutoff)

		for _, l := range links {
			fmt.Println(l.String())
		}
		log.Info().Int("archive_count", len(links)).Msg("xbrl-pipeline: discovery complete")
		return nil
	},
}

func parseCutoff(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

func init() {
	discoverCmd.Flags().StringVar(&discoverIndexURL, "index-url", "http://download.companieshouse.gov.uk/en_accountsdata.html", "bulk-data index page URL")
	discoverCmd.Flags().StringVar(&discoverCutoff, "cutoff", "", "only list archives that could contain documents after this date (YYYY-MM-DD)")
	rootCmd.AddCommand(discoverCmd)
}
