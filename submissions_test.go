package proxyown

import (
	"os"
	"testing"
)

func TestParseSubmissions(t *testing.T) {
	f, err := os.Open("testdata/CIK0000320193.json")
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f.Close()

	subs, err := ParseSubmissions(f)
	if err != nil {
		t.Fatalf("Failed to parse submissions: %v", err)
	}

	if subs.CIK != "0000320193" {
		t.Errorf("Expected CIK 0000320193, got %s", subs.CIK)
	}
	if subs.Name != "Apple Inc." {
		t.Errorf("Expected name Apple Inc., got %s", subs.Name)
	}
	if len(subs.Filings.Recent.AccessionNumber) != 3 {
		t.Errorf("Expected 3 recent filings, got %d", len(subs.Filings.Recent.AccessionNumber))
	}
}

func TestLatestProxyFiling(t *testing.T) {
	f, err := os.Open("testdata/CIK0000320193.json")
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f.Close()

	subs, err := ParseSubmissions(f)
	if err != nil {
		t.Fatalf("Failed to parse submissions: %v", err)
	}

	ref := subs.LatestProxyFiling()
	if ref == nil {
		t.Fatal("Expected a proxy filing, got nil")
	}
	if ref.FilingDate != "2024-01-10" {
		t.Errorf("Expected most recent date 2024-01-10, got %s", ref.FilingDate)
	}
	if ref.Accession != "000032019324000050" {
		t.Errorf("Expected dash-stripped accession, got %s", ref.Accession)
	}
	if ref.PrimaryDocument != "proxy2024.htm" {
		t.Errorf("Expected proxy2024.htm, got %s", ref.PrimaryDocument)
	}
}

func TestLatestProxyFiling_PicksLatestDate(t *testing.T) {
	subs := &Submissions{Filings: FilingsData{Recent: FilingArrays{
		AccessionNumber: []string{"0000000000-23-000001", "0000000000-24-000002"},
		FilingDate:      []string{"2023-01-01", "2024-06-15"},
		Form:            []string{"DEF 14A", "DEF 14A"},
		PrimaryDocument: []string{"old.htm", "new.htm"},
	}}}

	ref := subs.LatestProxyFiling()
	if ref == nil {
		t.Fatal("Expected a proxy filing, got nil")
	}
	if ref.FilingDate != "2024-06-15" {
		t.Errorf("Expected 2024-06-15, got %s", ref.FilingDate)
	}
	if ref.PrimaryDocument != "new.htm" {
		t.Errorf("Expected new.htm, got %s", ref.PrimaryDocument)
	}
}

func TestLatestProxyFiling_NoProxyForms(t *testing.T) {
	subs := &Submissions{Filings: FilingsData{Recent: FilingArrays{
		AccessionNumber: []string{"0000000000-24-000001", "0000000000-24-000002"},
		FilingDate:      []string{"2024-01-01", "2024-02-01"},
		Form:            []string{"10-K", "8-K"},
		PrimaryDocument: []string{"a.htm", "b.htm"},
	}}}

	if ref := subs.LatestProxyFiling(); ref != nil {
		t.Errorf("Expected nil for no proxy forms, got %+v", ref)
	}
	if subs.HasProxyFiling() {
		t.Error("HasProxyFiling should be false")
	}
}

func TestLatestProxyFiling_AcceptedVariants(t *testing.T) {
	// Truncated and lowercase form labels still count
	subs := &Submissions{Filings: FilingsData{Recent: FilingArrays{
		AccessionNumber: []string{"0000000000-24-000001", "0000000000-24-000002"},
		FilingDate:      []string{"2024-01-01", "2024-03-01"},
		Form:            []string{"def 14a", " DEF 14 "},
		PrimaryDocument: []string{"a.htm", "b.htm"},
	}}}

	ref := subs.LatestProxyFiling()
	if ref == nil {
		t.Fatal("Expected a proxy filing, got nil")
	}
	if ref.FilingDate != "2024-03-01" {
		t.Errorf("Expected 2024-03-01, got %s", ref.FilingDate)
	}
}

func TestLatestProxyFiling_NoPrimaryDocument(t *testing.T) {
	subs := &Submissions{Filings: FilingsData{Recent: FilingArrays{
		AccessionNumber: []string{"0000000000-24-000001"},
		FilingDate:      []string{"2024-01-01"},
		Form:            []string{"DEF 14A"},
		PrimaryDocument: []string{""},
	}}}

	if ref := subs.LatestProxyFiling(); ref != nil {
		t.Errorf("Expected nil when primary document is missing, got %+v", ref)
	}
	if !subs.HasProxyFiling() {
		t.Error("HasProxyFiling should still be true")
	}
}

func TestFilingReferenceBuildURL(t *testing.T) {
	ref := &FilingReference{
		FormType:        "DEF 14A",
		FilingDate:      "2024-01-10",
		Accession:       "000032019324000050",
		PrimaryDocument: "proxy2024.htm",
	}

	url := ref.BuildURL("https://www.sec.gov", "0000320193")
	expected := "https://www.sec.gov/Archives/edgar/data/320193/000032019324000050/proxy2024.htm"
	if url != expected {
		t.Errorf("Expected URL:\n%s\nGot:\n%s", expected, url)
	}
}

func TestFilingReferenceBuildURL_StripsRenderingPrefix(t *testing.T) {
	ref := &FilingReference{
		Accession:       "000032019324000050",
		PrimaryDocument: "xslPROXY/proxy2024.htm",
	}

	url := ref.BuildURL("https://www.sec.gov", "0000320193")
	expected := "https://www.sec.gov/Archives/edgar/data/320193/000032019324000050/proxy2024.htm"
	if url != expected {
		t.Errorf("Expected URL:\n%s\nGot:\n%s", expected, url)
	}
}
