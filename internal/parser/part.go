package parser

import (
	"github.com/vido/mediatag/internal/element"
	"github.com/vido/mediatag/internal/keyword"
	"github.com/vido/mediatag/internal/token"
)

// parsePart claims every Part-keyword token followed by a number, emitting
// Part from the number. Runs unconditionally: Part has no Options gate.
func parsePart(tokens token.List, results *element.List) {
	for i := range tokens {
		if !tokens[i].HasKeywordKind(keyword.Part) {
			continue
		}

		next, ok := FindNextToken(tokens, i, true, func(t token.Token) bool { return t.IsNotDelimiter() })
		if !ok || !tokens[next].IsNumber() {
			continue
		}

		*results = append(*results, element.New(element.Part, tokens[next].Value, tokens[next].Position))
		tokens[i].MarkKnown()
		tokens[next].MarkKnown()
	}
}
