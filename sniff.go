package proxyown

import "regexp"

// ContentType classifies raw filing content. Filings are frequently served
// with wrong or missing Content-Type headers, so the bytes themselves are
// inspected instead.
type ContentType int

const (
	ContentText ContentType = iota
	ContentHTML
	ContentXML
)

func (t ContentType) String() string {
	switch t {
	case ContentHTML:
		return "html"
	case ContentXML:
		return "xml"
	default:
		return "text"
	}
}

var (
	htmlMarker = regexp.MustCompile(`(?i)<!DOCTYPE html|</html>`)
	xmlMarker  = regexp.MustCompile(`<\?xml|</[a-zA-Z]+>`)
)

// DetectContentType classifies content as HTML, XML, or plain text. An HTML
// doctype or closing html tag wins over the generic closing-tag check, which
// in turn wins over text.
func DetectContentType(content []byte) ContentType {
	if htmlMarker.Match(content) {
		return ContentHTML
	}
	if xmlMarker.Match(content) {
		return ContentXML
	}
	return ContentText
}
