package parser

import (
	"github.com/vido/mediatag/internal/element"
	"github.com/vido/mediatag/internal/keyword"
	"github.com/vido/mediatag/internal/token"
)

// parseFileExtension claims the trailing ".ext" pair when the final token
// carries the FileExtension keyword and is immediately preceded by a lone
// "." delimiter.
func parseFileExtension(tokens token.List) (element.Element, bool) {
	if len(tokens) < 2 {
		return element.Element{}, false
	}
	last := &tokens[len(tokens)-1]
	prev := &tokens[len(tokens)-2]

	if !last.HasKeywordKind(keyword.FileExtension) {
		return element.Element{}, false
	}
	if prev.Category != token.Delimiter || prev.Value != "." {
		return element.Element{}, false
	}

	prev.MarkKnown()
	last.MarkKnown()
	return element.New(element.FileExtension, last.Value, last.Position), true
}
