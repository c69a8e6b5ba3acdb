package proxyown

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// sectionVocabulary matches the heading text that introduces an ownership
// section in a proxy statement.
var sectionVocabulary = regexp.MustCompile(`(?i)security own|beneficial own|stock own|ownership|shareholdings`)

// sectionIDs are fixed element ids some renderers attach to ownership
// sections.
var sectionIDs = []string{"securityOwnership", "beneficialOwnership", "stockOwnership"}

// searchMarkupSections locates ownership-titled headings and containers,
// then walks up to 3 ancestor containers collecting tables until the
// normalizer accepts one.
func (e *Extractor) searchMarkupSections(content []byte) *OwnershipTable {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil
	}

	var anchors []*goquery.Selection
	doc.Find("h1, h2, h3, h4, div, span").Each(func(_ int, s *goquery.Selection) {
		if sectionVocabulary.MatchString(ownText(s)) {
			anchors = append(anchors, s)
		}
	})
	for _, id := range sectionIDs {
		if sel := doc.Find("#" + id); sel.Length() > 0 {
			anchors = append(anchors, sel)
		}
	}

	for _, anchor := range anchors {
		section := anchor
		for hop := 0; hop < 3; hop++ {
			section = section.Parent()
			if section.Length() == 0 {
				break
			}
			if t := e.firstAcceptedTable(section); t != nil {
				return t
			}
		}
	}
	return nil
}

// Structured-markup tag names the SEC has been observed to wrap ownership
// sections in. The lenient HTML parser lowercases element names.
var xmlSectionTags = []string{"ownship", "securityownership", "beneficialownership"}

var tableKeywords = []string{"security own", "beneficial own", "stock own", "ownership"}

// searchStructuredSections handles XML-classified filings: known
// ownership-tagged elements first, then any table whose flattened text
// contains an ownership keyword.
func (e *Extractor) searchStructuredSections(content []byte) *OwnershipTable {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil
	}

	for _, tag := range xmlSectionTags {
		section := doc.Find(tag)
		if section.Length() == 0 {
			continue
		}
		if t := e.firstAcceptedTable(section); t != nil {
			return t
		}
	}

	var found *OwnershipTable
	doc.Find("table").EachWithBreak(func(_ int, tbl *goquery.Selection) bool {
		text := strings.ToLower(tbl.Text())
		if !containsAny(text, tableKeywords) {
			return true
		}
		if t := e.processSelectionTable(tbl); t != nil {
			found = t
			return false
		}
		return true
	})
	return found
}

// firstAcceptedTable normalizes each table under the selection and returns
// the first success.
func (e *Extractor) firstAcceptedTable(section *goquery.Selection) *OwnershipTable {
	var found *OwnershipTable
	section.Find("table").EachWithBreak(func(_ int, tbl *goquery.Selection) bool {
		if t := e.processSelectionTable(tbl); t != nil {
			found = t
			return false
		}
		return true
	})
	return found
}

func (e *Extractor) processSelectionTable(tbl *goquery.Selection) *OwnershipTable {
	var rows [][]string
	tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, CleanExtractedText(cell.Text()))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})
	return ProcessTable(rows, e.Bounds)
}

// ownText returns only the selection's direct text children, so a heading
// matches on its own title rather than on everything nested beneath it.
func ownText(s *goquery.Selection) string {
	var b strings.Builder
	for _, n := range s.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
	}
	return b.String()
}
