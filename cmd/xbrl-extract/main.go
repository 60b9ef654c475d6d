package main

import (
	"fmt"
	"os"
	"path/filepath"

	xbrl "github.com/uktrade/stream-read-xbrl"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <path-to-accounts-document>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example:\n")
		fmt.Fprintf(os.Stderr, "  %s Prod224_3082_09355500_20201231.html\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Extracts balance-sheet and income-statement facts from a single\n")
		fmt.Fprintf(os.Stderr, "Companies House XBRL or iXBRL accounts document.\n")
		os.Exit(1)
	}

	filePath := os.Args[1]
	filename := filepath.Base(filePath)

	fmt.Fprintf(os.Stderr, "Loading: %s\n", filePath)
	data, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "File size: %.2f KB\n", float64(len(data))/1024)

	fmt.Fprintf(os.Stderr, "Extracting...\n")
	rows, err := xbrl.Extract(filename, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "✓ %d row(s) extracted\n\n", len(rows))

	writer, err := xbrl.NewCSVWriter(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV header: %v\n", err)
		os.Exit(1)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing row: %v\n", err)
			os.Exit(1)
		}
	}
	if err := writer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error flushing CSV: %v\n", err)
		os.Exit(1)
	}
}
