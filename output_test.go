package proxyown

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	records := []OwnershipRecord{
		{
			Ticker:       "AAPL",
			CompanyName:  "Apple Inc.",
			HolderName:   "Vanguard Group",
			Shares:       i64(1234567),
			PercentOwned: f64(8.5),
			FilingDate:   "2024-01-10",
			FilingURL:    "https://www.sec.gov/Archives/edgar/data/320193/x/proxy.htm",
			Sector:       "Information Technology",
		},
		{
			Ticker:      "MSFT",
			CompanyName: "Microsoft Corporation",
			HolderName:  "BlackRock",
			Shares:      i64(555),
			FilingDate:  "2024-03-01",
			Sector:      "Information Technology",
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(rows))
	}
	if strings.Join(rows[0], ",") != strings.Join(CSVHeader, ",") {
		t.Errorf("Bad header: %v", rows[0])
	}
	if rows[1][2] != "Vanguard Group" || rows[1][3] != "1234567" || rows[1][4] != "8.5" {
		t.Errorf("Bad first row: %v", rows[1])
	}
	// Nil percent renders as empty cell
	if rows[2][4] != "" {
		t.Errorf("Expected empty percent cell, got %q", rows[2][4])
	}
}

func TestWriteCSV_EmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	// An empty run still produces a header-only dataset
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("Expected header only, got %d lines", len(lines))
	}
}

func TestSaveCSV_CreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.csv")

	if err := SaveCSV(path, nil); err != nil {
		t.Fatalf("SaveCSV failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Output file missing: %v", err)
	}
}

func TestSaveDebugDocument(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveDebugDocument(dir, "AAPL", "000032019324000050", []byte("<html/>"))
	if err != nil {
		t.Fatalf("SaveDebugDocument failed: %v", err)
	}
	if filepath.Base(path) != "AAPL_000032019324000050_proxy.html" {
		t.Errorf("Unexpected debug filename: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "<html/>" {
		t.Errorf("Debug content mismatch: %q, %v", data, err)
	}
}
