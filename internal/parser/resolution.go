package parser

import (
	"regexp"
	"sync"

	"github.com/vido/mediatag/internal/element"
	"github.com/vido/mediatag/internal/token"
)

var videoResolutionRegex = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^\d{3,4}(?:[ipP]|[xX\x{00D7}]\d{3,4}[ipP]?)$`)
})

// parseVideoResolution runs two subpasses: first any free token matching
// the resolution shape ("1080p", "1920x1080"), then — only if nothing was
// found and no VideoResolution element exists yet — a bare free numeric
// "1080" or "720" left unclaimed so it stays eligible for episode
// ambiguity checks.
func parseVideoResolution(tokens token.List, results *element.List) {
	found := results.Has(element.VideoResolution)

	re := videoResolutionRegex()
	for i := range tokens {
		t := &tokens[i]
		if !t.IsFree() || !re.MatchString(t.Value) {
			continue
		}
		t.MarkKnown()
		*results = append(*results, element.New(element.VideoResolution, t.Value, t.Position))
		found = true
	}

	if found {
		return
	}

	for i := range tokens {
		t := &tokens[i]
		if t.IsFree() && t.IsNumber() && (t.Value == "1080" || t.Value == "720") {
			*results = append(*results, element.New(element.VideoResolution, t.Value, t.Position))
			return
		}
	}
}
