package proxyown

import (
	"regexp"
	"strings"
)

// aliasRule maps one known naming variant of an institution to its canonical
// label. Rules are evaluated in order against the lowercased, whitespace-
// collapsed holder text; the first match wins.
type aliasRule struct {
	pattern *regexp.Regexp
	label   string
}

// holderAliases merges the aliasing variants of the handful of institutions
// the downstream analysis cares about. It is intentionally small and fixed;
// anything unmatched passes through cleaned but otherwise unchanged.
var holderAliases = []aliasRule{
	{regexp.MustCompile(`\bthe vanguard group.*`), "Vanguard Group"},
	{regexp.MustCompile(`\bblackrock,? inc\.?`), "BlackRock"},
	{regexp.MustCompile(`\bstate street.*`), "State Street"},
	{regexp.MustCompile(`\bfidelity(?: management .*?)?`), "Fidelity"},
	{regexp.MustCompile(`\bt\.? rowe price.*`), "T. Rowe Price"},
	{regexp.MustCompile(`\bberkshire hathaway.*`), "Berkshire Hathaway"},
}

// CleanHolderName collapses whitespace in a raw holder cell.
func CleanHolderName(name string) string {
	return CleanExtractedText(name)
}

// CanonicalizeHolder maps a raw holder name to its canonical institution
// label when an alias rule fires, else returns the cleaned raw text.
// Idempotent: every canonical label maps to itself.
func CanonicalizeHolder(name string) string {
	n := CleanHolderName(name)
	lower := strings.ToLower(n)
	for _, rule := range holderAliases {
		if rule.pattern.MatchString(lower) {
			return rule.label
		}
	}
	return n
}
