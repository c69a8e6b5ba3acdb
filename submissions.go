package proxyown

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Submissions represents the SEC submissions data for a CIK.
type Submissions struct {
	CIK            string      `json:"cik"`
	EntityType     string      `json:"entityType"`
	SIC            string      `json:"sic"`
	SICDescription string      `json:"sicDescription"`
	Name           string      `json:"name"`
	Tickers        []string    `json:"tickers"`
	Exchanges      []string    `json:"exchanges"`
	Filings        FilingsData `json:"filings"`
}

// FilingsData contains the recent filings block.
type FilingsData struct {
	Recent FilingArrays `json:"recent"`
}

// FilingArrays contains parallel arrays of filing data.
// Each index in the arrays represents one filing.
type FilingArrays struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	ReportDate      []string `json:"reportDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
}

// FilingReference identifies one concrete proxy filing: its date, its
// accession number with dashes stripped, and the primary document that the
// filing URL is built from.
type FilingReference struct {
	FormType        string
	FilingDate      string
	Accession       string
	PrimaryDocument string
}

// proxyFormTypes are the accepted proxy-statement form labels, including the
// truncated variant some older filers used.
var proxyFormTypes = []string{"DEF 14A", "DEF 14"}

func isProxyForm(form string) bool {
	f := strings.ToUpper(strings.TrimSpace(form))
	for _, p := range proxyFormTypes {
		if f == p {
			return true
		}
	}
	return false
}

// FetchSubmissions fetches and parses the CIK submissions JSON from SEC
func (c *Client) FetchSubmissions(cik string) (*Submissions, error) {
	url := fmt.Sprintf("%s/submissions/CIK%s.json", c.APIBase, cik)
	var subs Submissions
	if err := c.FetchJSON(url, &subs); err != nil {
		return nil, fmt.Errorf("failed to fetch submissions: %w", err)
	}
	return &subs, nil
}

// ParseSubmissions parses a submissions JSON from a reader (for local files or testing)
func ParseSubmissions(r io.Reader) (*Submissions, error) {
	var subs Submissions
	if err := json.NewDecoder(r).Decode(&subs); err != nil {
		return nil, fmt.Errorf("failed to parse submissions JSON: %w", err)
	}
	return &subs, nil
}

// HasProxyFiling reports whether any recent filing carries a proxy form type.
func (s *Submissions) HasProxyFiling() bool {
	for _, form := range s.Filings.Recent.Form {
		if isProxyForm(form) {
			return true
		}
	}
	return false
}

// LatestProxyFiling scans the recent filings and returns the most recent
// proxy-statement filing. Filing dates are ISO strings, so lexicographic
// comparison is chronological; on equal dates the first entry found wins.
// Returns nil when no proxy form exists or when the winning entry has no
// primary document.
func (s *Submissions) LatestProxyFiling() *FilingReference {
	rec := s.Filings.Recent

	best := -1
	bestDate := ""
	for i, form := range rec.Form {
		if !isProxyForm(form) {
			continue
		}
		if i >= len(rec.FilingDate) || i >= len(rec.AccessionNumber) {
			continue
		}
		if d := rec.FilingDate[i]; d > bestDate {
			bestDate = d
			best = i
		}
	}
	if best == -1 {
		return nil
	}

	doc := ""
	if best < len(rec.PrimaryDocument) {
		doc = rec.PrimaryDocument[best]
	}
	if doc == "" {
		return nil
	}

	return &FilingReference{
		FormType:        strings.ToUpper(strings.TrimSpace(rec.Form[best])),
		FilingDate:      rec.FilingDate[best],
		Accession:       strings.ReplaceAll(rec.AccessionNumber[best], "-", ""),
		PrimaryDocument: doc,
	}
}

// BuildURL constructs the full SEC EDGAR URL for this filing.
func (f *FilingReference) BuildURL(filesBase, cik string) string {
	// Some primary documents carry a rendering path prefix; keep only the
	// document name.
	doc := f.PrimaryDocument
	if strings.Contains(doc, "/") {
		parts := strings.Split(doc, "/")
		doc = parts[len(parts)-1]
	}

	// {base}/Archives/edgar/data/{CIK}/{ACCESSION}/{PRIMARY_DOCUMENT}
	return fmt.Sprintf("%s/Archives/edgar/data/%s/%s/%s",
		filesBase,
		strings.TrimLeft(cik, "0"), // CIK appears without leading zeros
		f.Accession,
		doc,
	)
}
