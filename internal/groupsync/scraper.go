package groupsync

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/longbridgeapp/opencc"
)

// Scraper extracts release-group names from a listing page's HTML table,
// mirroring the teacher's douban.Searcher: a goquery.Document in, a parsed
// slice of values out.
type Scraper struct {
	converter *opencc.OpenCC
}

// NewScraper builds a Scraper. The Traditional-to-Simplified converter is
// built once and reused for every scrape.
func NewScraper() (*Scraper, error) {
	converter, err := opencc.New("t2s")
	if err != nil {
		return nil, fmt.Errorf("failed to build traditional-to-simplified converter: %w", err)
	}
	return &Scraper{converter: converter}, nil
}

// ParseGroupNames parses html's listing table and returns the normalized,
// deduplicated set of group names found in it. Any Chinese-language entry is
// converted to Simplified so the catalog keys on one canonical CJK form.
func (s *Scraper) ParseGroupNames(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing HTML: %w", err)
	}

	seen := make(map[string]bool)
	var names []string

	doc.Find(".group-list .group-name, table.groups td.name").Each(func(_ int, sel *goquery.Selection) {
		raw := strings.TrimSpace(sel.Text())
		if raw == "" {
			return
		}

		name, err := s.converter.Convert(raw)
		if err != nil {
			name = raw
		}

		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	})

	return names, nil
}
