package proxyown

import (
	"regexp"
	"strconv"
	"strings"
)

// institutionPattern names one major institution and the regexes that find
// it in filing text.
type institutionPattern struct {
	name     string
	patterns []*regexp.Regexp
}

// majorInstitutions is the fixed set of top institutional investors the
// pattern path scans for. Unlike the alias rules, which canonicalize names
// the table extractor already found, these patterns locate the institutions
// directly in raw content.
var majorInstitutions = []institutionPattern{
	{"Vanguard Group", compileAll(`vanguard\s+group`, `the\s+vanguard\s+group`)},
	{"BlackRock", compileAll(`blackrock,?\s+inc`, `blackrock\s+fund`)},
	{"State Street", compileAll(`state\s+street\s+corp`, `state\s+street\s+corporation`)},
	{"Fidelity", compileAll(`fidelity\s+management`, `fmr\s+llc`)},
	{"T. Rowe Price", compileAll(`t\.?\s*rowe\s+price`)},
	{"Berkshire Hathaway", compileAll(`berkshire\s+hathaway`)},
	{"JPMorgan", compileAll(`jpmorgan\s+chase`, `jp\s+morgan`)},
	{"Capital Group", compileAll(`capital\s+group`, `capital\s+research`)},
	{"Wellington Management", compileAll(`wellington\s+management`)},
	{"Invesco", compileAll(`invesco\s+ltd`)},
	{"Northern Trust", compileAll(`northern\s+trust`)},
	{"Bank of New York Mellon", compileAll(`bank\s+of\s+new\s+york\s+mellon`, `bny\s+mellon`)},
	{"Goldman Sachs Asset Management", compileAll(`goldman\s+sachs\s+asset`, `gsam`)},
	{"Morgan Stanley Investment Management", compileAll(`morgan\s+stanley\s+investment`)},
	{"Dimensional Fund Advisors", compileAll(`dimensional\s+fund`)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// patternContextRadius is how far around an institution-name hit the
// numeric context extends.
const patternContextRadius = 800

var (
	contextShares  = regexp.MustCompile(`\d{1,3}(?:,\d{3}){1,4}`)
	contextPercent = regexp.MustCompile(`(\d{1,2}\.?\d*)\s*%`)
)

// ExtractInstitutionPatterns scans raw content for the fixed set of major
// institutions and pulls share counts and percentages from the text around
// each hit. Lower confidence than any table-based extraction: the nearest
// number is not guaranteed to belong to the holder, so the pattern bounds
// are tighter. One row at most per institution, from its first valid match.
func (e *Extractor) ExtractInstitutionPatterns(content []byte) *OwnershipTable {
	text := strings.ToLower(string(NormalizeText(content)))

	var rows []OwnershipRow
	for _, inst := range majorInstitutions {
		for _, pattern := range inst.patterns {
			loc := pattern.FindStringIndex(text)
			if loc == nil {
				continue
			}

			start := loc[0] - patternContextRadius
			if start < 0 {
				start = 0
			}
			end := loc[1] + patternContextRadius
			if end > len(text) {
				end = len(text)
			}
			context := text[start:end]

			var shares *int64
			if m := contextShares.FindString(context); m != "" {
				if v, err := strconv.ParseInt(strings.ReplaceAll(m, ",", ""), 10, 64); err == nil && e.Bounds.validPatternShares(v) {
					shares = &v
				}
			}

			var percent *float64
			if m := contextPercent.FindStringSubmatch(context); m != nil {
				if v, err := strconv.ParseFloat(m[1], 64); err == nil && e.Bounds.validPatternPercent(v) {
					percent = &v
				}
			}

			if shares == nil && percent == nil {
				continue
			}

			rows = append(rows, OwnershipRow{
				HolderRaw: inst.name,
				Holder:    inst.name,
				Shares:    shares,
				Percent:   percent,
			})
			break
		}
	}

	if len(rows) == 0 {
		return nil
	}
	return &OwnershipTable{Rows: rows, Source: "pattern"}
}
