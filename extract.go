package proxyown

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Extractor runs the ownership-table extraction cascade over raw filing
// content. Proxy filings have no canonical ownership-table format across
// decades of filers and renderers, so the cascade trades precision for
// reach: each strategy is tried in order and the first one to yield a
// non-empty normalized table wins.
type Extractor struct {
	Bounds Bounds
}

// NewExtractor returns an Extractor with the given validation bounds.
func NewExtractor(bounds Bounds) *Extractor {
	return &Extractor{Bounds: bounds}
}

// strategy is one extraction approach: a pure function from content to a
// table or nil, restricted to the content kinds it applies to (nil = any).
type strategy struct {
	name  string
	kinds []ContentType
	run   func(e *Extractor, content []byte) *OwnershipTable
}

// Ordered most-reliable-when-applicable first.
var strategies = []strategy{
	{name: "table", run: (*Extractor).parseAllTables},
	{name: "section", kinds: []ContentType{ContentHTML}, run: (*Extractor).searchMarkupSections},
	{name: "xml", kinds: []ContentType{ContentXML}, run: (*Extractor).searchStructuredSections},
	{name: "text", run: (*Extractor).extractFromText},
}

// Extract runs the cascade and returns the first non-empty table, tagged
// with the strategy that produced it, or nil when every strategy fails.
func (e *Extractor) Extract(content []byte) *OwnershipTable {
	content = NormalizeText(content)
	kind := DetectContentType(content)

	for _, s := range strategies {
		if !s.applies(kind) {
			continue
		}
		if table := s.run(e, content); table != nil && len(table.Rows) > 0 {
			table.Source = s.name
			return table
		}
	}
	return nil
}

func (s strategy) applies(kind ContentType) bool {
	if len(s.kinds) == 0 {
		return true
	}
	for _, k := range s.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// parseAllTables is the naive strategy: parse every table embeddable in the
// content regardless of declared format and return the first one the
// normalizer accepts. The HTML parser is lenient enough to swallow XML and
// plain text, which simply yield no tables.
func (e *Extractor) parseAllTables(content []byte) *OwnershipTable {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil
	}
	for _, table := range findTables(doc) {
		if t := ProcessTable(tableRows(table), e.Bounds); t != nil {
			return t
		}
	}
	return nil
}

// findTables collects all table elements in document order.
func findTables(n *html.Node) []*html.Node {
	var tables []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			tables = append(tables, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return tables
}

// tableRows flattens a table element into rows of cleaned cell text.
// Nested tables are skipped; findTables visits them on their own.
func tableRows(table *html.Node) [][]string {
	var rows [][]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				switch c.Data {
				case "table":
					continue
				case "tr":
					if cells := rowCells(c); len(cells) > 0 {
						rows = append(rows, cells)
					}
					continue
				}
			}
			walk(c)
		}
	}
	walk(table)
	return rows
}

func rowCells(tr *html.Node) []string {
	var cells []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
				cells = append(cells, CleanExtractedText(nodeText(c)))
				continue
			}
			walk(c)
		}
	}
	walk(tr)
	return cells
}

// nodeText extracts all text content from a node subtree.
func nodeText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}
