package proxyown

import (
	"regexp"
	"strconv"
	"strings"
)

// Bounds holds the sanity limits applied to parsed values. The defaults are
// heuristics tuned against observed filings, not authoritative business
// rules, which is why they are configurable rather than constants.
type Bounds struct {
	// MinPercent/MaxPercent bound percentages from table-based extraction;
	// values outside are nulled before emission.
	MinPercent float64
	MaxPercent float64

	// Pattern bounds apply to the institution-pattern path, whose context
	// windows pick up unrelated numbers far more often.
	MinPatternPercent float64
	MaxPatternPercent float64
	MinPatternShares  int64
	MaxPatternShares  int64
}

// DefaultBounds returns the limits observed to work across S&P 500 proxy
// filings.
func DefaultBounds() Bounds {
	return Bounds{
		MinPercent:        0,
		MaxPercent:        100,
		MinPatternPercent: 0.1,
		MaxPatternPercent: 50.0,
		MinPatternShares:  1_000,
		MaxPatternShares:  10_000_000_000,
	}
}

func (b Bounds) validPercent(p float64) bool {
	return p >= b.MinPercent && p <= b.MaxPercent
}

func (b Bounds) validPatternPercent(p float64) bool {
	return p >= b.MinPatternPercent && p <= b.MaxPatternPercent
}

func (b Bounds) validPatternShares(s int64) bool {
	return s >= b.MinPatternShares && s <= b.MaxPatternShares
}

// Column role keywords. The first matching column wins per role, scanning
// headers left to right.
var (
	nameKeywords    = []string{"name", "beneficial", "holder", "shareholder"}
	percentKeywords = []string{"%", "percent"}
	sharesKeywords  = []string{"share", "security", "amount", "number"}
)

// columnRoles records which column index holds each role, -1 when absent.
type columnRoles struct {
	name    int
	percent int
	shares  int
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func detectColumns(header []string) columnRoles {
	roles := columnRoles{name: -1, percent: -1, shares: -1}
	for i, col := range header {
		text := strings.ToLower(col)
		if roles.name == -1 && containsAny(text, nameKeywords) {
			roles.name = i
		}
		if roles.percent == -1 && containsAny(text, percentKeywords) {
			roles.percent = i
		}
		if roles.shares == -1 && containsAny(text, sharesKeywords) {
			roles.shares = i
		}
	}
	return roles
}

var percentPattern = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*%`)

// ParsePercent extracts a percentage from a cell: the first "N%" pattern if
// present, else the whole cell parsed as a float. Returns nil when neither
// works.
func ParsePercent(cell string) *float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}
	if m := percentPattern.FindStringSubmatch(s); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return &v
		}
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return &v
	}
	return nil
}

var nonDigits = regexp.MustCompile(`[^\d]`)

// ParseShares extracts a share count from a cell by stripping every
// non-digit character. Returns nil when nothing numeric remains.
func ParseShares(cell string) *int64 {
	s := nonDigits.ReplaceAllString(cell, "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ProcessTable normalizes a raw tabular structure into an OwnershipTable.
// The first row is treated as the header and used to assign column roles;
// when no name column is identified the first column is assumed. Rows whose
// holder text contains "total" or is effectively empty are footers, not
// holders, and are dropped, as are rows carrying no quantitative signal at
// all. Returns nil when nothing survives.
func ProcessTable(cells [][]string, bounds Bounds) *OwnershipTable {
	if len(cells) < 2 {
		return nil
	}

	header := make([]string, len(cells[0]))
	for i, h := range cells[0] {
		header[i] = CleanExtractedText(h)
	}
	roles := detectColumns(header)
	nameCol := roles.name
	if nameCol == -1 {
		nameCol = 0
	}

	var rows []OwnershipRow
	for _, row := range cells[1:] {
		if nameCol >= len(row) {
			continue
		}
		raw := CleanHolderName(row[nameCol])
		holder := CanonicalizeHolder(raw)
		if len(holder) <= 1 || strings.Contains(strings.ToLower(holder), "total") {
			continue
		}

		var percent *float64
		if roles.percent != -1 && roles.percent < len(row) {
			percent = ParsePercent(row[roles.percent])
			if percent != nil && !bounds.validPercent(*percent) {
				percent = nil
			}
		}

		var shares *int64
		if roles.shares != -1 && roles.shares < len(row) {
			shares = ParseShares(row[roles.shares])
		}

		if shares == nil && percent == nil {
			continue
		}

		rows = append(rows, OwnershipRow{
			HolderRaw: raw,
			Holder:    holder,
			Shares:    shares,
			Percent:   percent,
		})
	}

	if len(rows) == 0 {
		return nil
	}
	return &OwnershipTable{Rows: rows}
}
