package proxyown

import (
	"regexp"
	"strings"
	"unicode"
)

// NormalizeText normalizes Unicode and HTML entity issues that appear in
// proxy filings before any sniffing or extraction runs. Entity-encoded
// spaces and invisible characters otherwise break the keyword matching the
// extractor relies on.
//
// Normalizations performed:
// - common HTML entities -> Unicode equivalents
// - Unicode whitespace variants -> regular spaces
// - zero-width characters removed
// - CRLF -> LF
func NormalizeText(data []byte) []byte {
	text := string(data)

	text = normalizeEntities(text)
	text = normalizeWhitespace(text)
	text = removeInvisibleChars(text)

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return []byte(text)
}

var entityReplacements = map[string]string{
	"&nbsp;":  " ",
	"&amp;":   "&",
	"&quot;":  "\"",
	"&apos;":  "'",
	"&mdash;": "\u2014",
	"&ndash;": "\u2013",
	"&rsquo;": "\u2019",
	"&lsquo;": "\u2018",
	"&ldquo;": "\u201C",
	"&rdquo;": "\u201D",
	"&sect;":  "\u00A7",
	"&bull;":  "\u2022",
	"&#160;":  " ",
}

var numericEntity = regexp.MustCompile(`&#(\d+);`)

func normalizeEntities(text string) string {
	for entity, replacement := range entityReplacements {
		text = strings.ReplaceAll(text, entity, replacement)
	}

	text = numericEntity.ReplaceAllStringFunc(text, func(match string) string {
		code := 0
		for _, r := range match[2 : len(match)-1] {
			code = code*10 + int(r-'0')
		}
		switch {
		case code == 160:
			return " "
		case code > 0 && code < 0x110000:
			return string(rune(code))
		}
		return match
	})

	return text
}

func normalizeWhitespace(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch {
		case r == '\u00A0' || r == '\u202F' || r == '\u205F' || r == '\u3000':
			result.WriteRune(' ')
		case r >= '\u2000' && r <= '\u200A':
			result.WriteRune(' ')
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

func removeInvisibleChars(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch r {
		case '\u200B', '\u200C', '\u200D', '\uFEFF':
			continue
		default:
			if unicode.Is(unicode.Cf, r) && r != '\t' && r != '\n' && r != '\r' {
				continue
			}
			result.WriteRune(r)
		}
	}

	return result.String()
}

var multiSpace = regexp.MustCompile(`\s+`)

// CleanExtractedText collapses whitespace in text pulled out of a parsed
// document cell or heading.
func CleanExtractedText(text string) string {
	return strings.TrimSpace(multiSpace.ReplaceAllString(text, " "))
}
