package parser

import (
	"github.com/vido/mediatag/internal/element"
	"github.com/vido/mediatag/internal/token"
)

// lastIndexForReleaseGroup finds the end of a candidate release-group
// span starting at first: the nearest closing bracket, preferring one
// whose character is the opposite of the nearest preceding non-enclosed
// open bracket.
func lastIndexForReleaseGroup(tokens token.List, first int, hasFirst bool) (int, bool) {
	if !hasFirst {
		return 0, false
	}

	openIdx, hasOpen := FindPrevToken(tokens, first, func(t token.Token) bool {
		return !t.IsEnclosed && t.Category == token.OpenBracket
	})

	if hasOpen {
		if opp, ok := token.OppositeBracket([]rune(tokens[openIdx].Value)[0]); ok {
			return FindNextToken(tokens, first, true, func(t token.Token) bool {
				return t.Category == token.ClosedBracket && []rune(t.Value)[0] == opp
			})
		}
	}
	return FindNextToken(tokens, first, true, func(t token.Token) bool { return t.Category == token.ClosedBracket })
}

// findReleaseGroup locates the [start, end) span to emit as ReleaseGroup:
// the first enclosed-and-unidentified bracket span with no identified
// token inside it, skipping past spans that do contain one. Falls back to
// a trailing "-group" free token when no bracket candidate works.
func findReleaseGroup(tokens token.List) (start, end int, ok bool) {
	n := len(tokens)

	first, hasFirst := -1, false
	for i := range tokens {
		if tokens[i].IsEnclosed && !tokens[i].IsKnown() {
			first, hasFirst = i, true
			break
		}
	}
	last, hasLast := lastIndexForReleaseGroup(tokens, first, hasFirst)

	for hasFirst {
		sliceEnd := n
		if hasLast {
			sliceEnd = last
		}
		if first > n || (hasLast && last > n) {
			break
		}

		allUnidentified := true
		for i := first; i < sliceEnd; i++ {
			if tokens[i].IsKnown() {
				allUnidentified = false
				break
			}
		}
		if allUnidentified {
			break
		}

		searchFrom := sliceEnd
		first, hasFirst = FindNextToken(tokens, searchFrom, true, func(t token.Token) bool {
			return t.IsEnclosed && t.IsFree()
		})
		last, hasLast = lastIndexForReleaseGroup(tokens, first, hasFirst)
	}

	if !hasFirst {
		if idx, okPrev := FindPrevToken(tokens, n, func(t token.Token) bool {
			return t.IsFree() && t.IsNotDelimiter()
		}); okPrev {
			t := tokens[idx]
			if t.IsFree() && idx != 0 && tokens[idx-1].Category == token.Delimiter && tokens[idx-1].Value == "-" {
				first, hasFirst = idx, true
				last, hasLast = idx+1, true
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

// parseReleaseGroup claims findReleaseGroup's range and emits it as
// ReleaseGroup, with delimiters preserved in the combined value.
func parseReleaseGroup(tokens token.List) (element.Element, bool) {
	start, end, ok := findReleaseGroup(tokens)
	if !ok {
		return element.Element{}, false
	}

	value := tokens.Combine(start, end-1, true)
	if value == "" {
		return element.Element{}, false
	}

	position := tokens[start].Position
	for i := start; i < end; i++ {
		tokens[i].MarkKnown()
	}
	return element.New(element.ReleaseGroup, value, position), true
}
