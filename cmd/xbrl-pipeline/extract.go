package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	xbrl "github.com/uktrade/stream-read-xbrl"
)

var extractCmd = &cobra.Command{
	Use:   "extract <path-to-accounts-document>",
	Short: "Extract facts from a single accounts document and print CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		rows, err := xbrl.Extract(filepath.Base(path), data)
		if err != nil {
			return err
		}

		writer, err := xbrl.NewCSVWriter(os.Stdout)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if err := writer.Write(row); err != nil {
				return err
			}
		}
		return writer.Flush()
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
