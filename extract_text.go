package proxyown

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// textSectionStart locates the heading phrase that opens an ownership
	// section in a plain-text filing.
	textSectionStart = regexp.MustCompile(`(?i)security ownership|beneficial ownership`)

	// textRowPattern matches one holder row inside that section:
	// a holder phrase, an optional comma-grouped share count, a percentage.
	textRowPattern = regexp.MustCompile(`(\w[\w\s,.]+?)\s+(\d{1,3}(?:,\d{3})*\s+)?(\d+\.\d+%|\d+%)`)
)

// extractFromText is the last-resort strategy for unstructured text: take
// the paragraph window from the first ownership heading to the first blank
// line and regex-match repeating holder rows inside it. Its output is
// inherently approximate; a matched phrase is not guaranteed to be an actual
// holder row.
func (e *Extractor) extractFromText(content []byte) *OwnershipTable {
	text := string(content)

	loc := textSectionStart.FindStringIndex(text)
	if loc == nil {
		return nil
	}
	// The section runs from the heading to the next blank line. Without that
	// terminator there is no bounded section, only arbitrary trailing text.
	window := text[loc[0]:]
	end := strings.Index(window, "\n\n")
	if end == -1 {
		return nil
	}
	window = window[:end]

	var rows []OwnershipRow
	for _, m := range textRowPattern.FindAllStringSubmatch(window, -1) {
		holder := CleanHolderName(m[1])
		if holder == "" || strings.Contains(strings.ToLower(holder), "total") {
			continue
		}

		var shares *int64
		if s := strings.TrimSpace(strings.ReplaceAll(m[2], ",", "")); s != "" {
			if v, err := strconv.ParseInt(s, 10, 64); err == nil {
				shares = &v
			}
		}

		percent := ParsePercent(m[3])
		if percent != nil && !e.Bounds.validPercent(*percent) {
			percent = nil
		}

		if shares == nil && percent == nil {
			continue
		}

		rows = append(rows, OwnershipRow{
			HolderRaw: holder,
			Holder:    CanonicalizeHolder(holder),
			Shares:    shares,
			Percent:   percent,
		})
	}

	if len(rows) == 0 {
		return nil
	}
	return &OwnershipTable{Rows: rows}
}
