// Package goquery provides a goquery-based implementation of
// contentgap.Extractor.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/contentgap/contentgap"
)

// Ensure Extractor implements contentgap.Extractor at compile time.
var _ contentgap.Extractor = (*Extractor)(nil)

// Extractor parses page markup into structured text: headings by level,
// concatenated paragraph text, and internal link targets.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses markup fetched from address into a PageContent. It fails
// with EEXTRACT when the markup is empty or cannot be parsed; a failed
// page is never partially populated.
func (e *Extractor) Extract(markup, address string) (*contentgap.PageContent, error) {
	if address == "" {
		return nil, contentgap.Errorf(contentgap.EEXTRACT, "page address required")
	}
	if strings.TrimSpace(markup) == "" {
		return nil, contentgap.Errorf(contentgap.EEXTRACT, "empty markup for %s", address)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, contentgap.Errorf(contentgap.EEXTRACT, "parse %s: %v", address, err)
	}

	headings := make(map[int][]string, 3)
	for level := 1; level <= 3; level++ {
		doc.Find(fmt.Sprintf("h%d", level)).Each(func(_ int, sel *goquery.Selection) {
			headings[level] = append(headings[level], strings.TrimSpace(sel.Text()))
		})
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	// Internal link policy: the page's domain component must appear
	// somewhere in the link target. A plain substring check, so relative
	// links are excluded and lookalike domains slip through. Kept as the
	// documented behavior rather than host equality.
	domain := domainOf(address)
	seen := make(map[string]bool)
	var internal []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" || domain == "" {
			return
		}
		if !strings.Contains(href, domain) || seen[href] {
			return
		}
		seen[href] = true
		internal = append(internal, href)
	})

	return &contentgap.PageContent{
		Address:       address,
		Headings:      headings,
		BodyText:      strings.Join(paragraphs, " "),
		InternalLinks: internal,
	}, nil
}

// domainOf returns the domain component of an address: the third
// slash-separated segment, e.g. "example.com" in
// "https://example.com/page".
func domainOf(address string) string {
	parts := strings.Split(address, "/")
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}
