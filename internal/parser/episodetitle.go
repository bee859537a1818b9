package parser

import (
	"github.com/vido/mediatag/internal/element"
	"github.com/vido/mediatag/internal/keyword"
	"github.com/vido/mediatag/internal/token"
)

// findEpisodeTitle is Title's sibling: start at the first free,
// non-enclosed token; end at the next open bracket or any identified
// token whose keyword is not Part. Falls back to the content of a
// matched 「...」 pair when no free non-enclosed start exists, but only if
// that span holds no identified token.
func findEpisodeTitle(tokens token.List) (start, end int, ok bool) {
	n := len(tokens)

	first, hasFirst := -1, false
	for i := range tokens {
		if tokens[i].IsFree() && !tokens[i].IsEnclosed {
			first, hasFirst = i, true
			break
		}
	}

	var last int
	hasLast := false
	if hasFirst {
		last, hasLast = FindNextToken(tokens, first, false, func(t token.Token) bool {
			return t.Category == token.OpenBracket ||
				(t.IsKnown() && t.Keyword != nil && t.Keyword.Kind != keyword.Part)
		})
	}

	if !hasFirst {
		bracketIdx := -1
		for i := range tokens {
			if tokens[i].Category == token.OpenBracket && tokens[i].Value == "「" {
				bracketIdx = i
				break
			}
		}
		if bracketIdx < 0 {
			return 0, 0, false
		}
		first, hasFirst = bracketIdx+1, true

		last, hasLast = FindNextToken(tokens, first, false, func(t token.Token) bool {
			return t.Category == token.ClosedBracket && t.Value == "」"
		})
		if !hasLast {
			return 0, 0, false
		}
		for i := first; i < last; i++ {
			if tokens[i].IsKnown() {
				return 0, 0, false
			}
		}
	}

	if !hasFirst {
		return 0, 0, false
	}
	if hasLast {
		return first, last, true
	}
	return first, n, true
}

// parseEpisodeTitle claims findEpisodeTitle's range and emits it as
// EpisodeTitle.
func parseEpisodeTitle(tokens token.List) (element.Element, bool) {
	start, end, ok := findEpisodeTitle(tokens)
	if !ok {
		return element.Element{}, false
	}

	value := tokens.Combine(start, end-1, false)
	if value == "" {
		return element.Element{}, false
	}

	position := tokens[start].Position
	for i := start; i < end; i++ {
		tokens[i].MarkKnown()
	}
	return element.New(element.EpisodeTitle, value, position), true
}
