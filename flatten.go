package tqa

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// flattenMarkup reduces an XML fragment that may carry simple inline
// markup (XLIFF's <g>/<x/>/<bpt>/<ept>/<ph>, or Android string-resource
// children) to its text content. The fragment is parsed as HTML rather
// than XML: inline translation markup is small and tag-shaped enough
// that a lenient HTML parse recovers the text reliably, and it is the
// same technique an HTML-aware content processor uses to collapse a DOM
// subtree to plain text.
func flattenMarkup(innerXML string) string {
	trimmed := strings.TrimSpace(innerXML)
	if trimmed == "" {
		return ""
	}
	if !strings.ContainsAny(trimmed, "<&") {
		return trimmed
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		return trimmed
	}
	text := doc.Text()
	if text == "" {
		return trimmed
	}
	return text
}
