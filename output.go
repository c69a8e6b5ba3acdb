package proxyown

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// CSVHeader is the column contract with downstream aggregation and
// visualization consumers.
var CSVHeader = []string{
	"ticker", "company_name", "holder_name", "shares",
	"percent_owned", "filing_date", "filing_url", "sector",
}

// WriteCSV writes records as one flat table. Nil shares and percentages
// become empty cells.
func WriteCSV(w io.Writer, records []OwnershipRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		shares := ""
		if r.Shares != nil {
			shares = strconv.FormatInt(*r.Shares, 10)
		}
		percent := ""
		if r.PercentOwned != nil {
			percent = strconv.FormatFloat(*r.PercentOwned, 'f', -1, 64)
		}
		row := []string{
			r.Ticker, r.CompanyName, r.HolderName, shares,
			percent, r.FilingDate, r.FilingURL, r.Sector,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the dataset to path, creating parent directories as needed.
// An empty record set still produces a header-only file; callers distinguish
// "ran and found nothing" from "never ran".
func SaveCSV(path string, records []OwnershipRecord) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	return WriteCSV(f, records)
}

// SaveDebugDocument writes a raw filing that yielded no table under a
// derived name, returning the path written.
func SaveDebugDocument(dir, ticker, accession string, content []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create debug directory: %w", err)
	}
	name := fmt.Sprintf("%s_%s_proxy.html", ticker, accession)
	if accession == "" {
		name = fmt.Sprintf("%s_proxy.html", ticker)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to save debug document: %w", err)
	}
	return path, nil
}
