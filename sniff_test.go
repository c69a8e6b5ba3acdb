package proxyown

import "testing"

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    ContentType
	}{
		{"html doctype", `<!DOCTYPE html><html><body>x</body></html>`, ContentHTML},
		{"html doctype lowercase", `<!doctype HTML><p>x`, ContentHTML},
		{"closing html tag only", `<body>filing</body></html>`, ContentHTML},
		{"xml declaration", `<?xml version="1.0"?><doc/>`, ContentXML},
		{"closing tag without html", `<document><section>x</section></document>`, ContentXML},
		{"plain text", "SECURITY OWNERSHIP\n\nVanguard 8.5%", ContentText},
		{"empty", "", ContentText},
		// Mislabeled servers do not matter: only the bytes are inspected,
		// and the html check wins over the generic closing-tag check.
		{"html beats xml", `<?xml version="1.0"?><html><body>x</body></html>`, ContentHTML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectContentType([]byte(tt.content)); got != tt.want {
				t.Errorf("DetectContentType = %v, want %v", got, tt.want)
			}
		})
	}
}
