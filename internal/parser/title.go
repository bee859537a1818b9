package parser

import (
	"github.com/vido/mediatag/internal/element"
	"github.com/vido/mediatag/internal/token"
)

// findTitle locates the [start, end) token range that becomes the Title
// element: the first free, non-enclosed token through the next identified
// token (anything already claimed) or open bracket. When no free
// non-enclosed start exists, it falls back to the span between a matched
// closing/opening bracket pair found by scanning backward.
func findTitle(tokens token.List) (start, end int, ok bool) {
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
		last, hasLast = FindNextToken(tokens, first, true, func(t token.Token) bool { return t.IsKnown() })
	}

	if !hasFirst {
		closeIdx, okClose := FindPrevToken(tokens, n, func(t token.Token) bool { return t.Category == token.ClosedBracket })
		if okClose {
			openIdx, okOpen := -1, false
			for k := closeIdx - 1; k >= 0; k-- {
				if tokens[k].Category == token.OpenBracket {
					openIdx, okOpen = k, true
					break
				}
			}
			if okOpen {
				opposite, hasOpp := token.OppositeBracket([]rune(tokens[openIdx].Value)[0])
				if hasOpp {
					first, hasFirst = FindNextToken(tokens, openIdx, false, func(t token.Token) bool { return t.IsFree() })
					if hasFirst {
						last, hasLast = FindNextToken(tokens, first, true, func(t token.Token) bool {
							return t.IsBracket() && []rune(t.Value)[0] == opposite
						})
					}
				}
			}
		}
	}

	if !hasFirst {
		return 0, 0, false
	}

	sliceEnd := n
	if hasLast {
		sliceEnd = last
	}

	openCount := 0
	lastOpenIdx := first
	for i := first; i < sliceEnd; i++ {
		if tokens[i].Category == token.OpenBracket {
			openCount++
			lastOpenIdx = i
		}
	}
	if openCount != 0 {
		closedCount := 0
		for i := first; i < sliceEnd; i++ {
			if tokens[i].Category == token.ClosedBracket {
				closedCount++
			}
		}
		if closedCount != openCount {
			last, hasLast = lastOpenIdx, true
		}
	}

	searchUpto := n
	if hasLast {
		searchUpto = last
	}
	if idx, okPrev := FindPrevToken(tokens, searchUpto, func(t token.Token) bool { return t.IsNotDelimiter() }); okPrev {
		tk := tokens[idx]
		if tk.Category == token.ClosedBracket && tk.Value != ")" {
			if newLast, okNew := FindPrevToken(tokens, idx, func(t token.Token) bool { return t.Category == token.OpenBracket }); okNew {
				last, hasLast = newLast, true
			}
		}
	}

	if hasLast {
		return first, last, true
	}
	return first, n, true
}

// parseTitle claims findTitle's range and emits it as Title, trailing
// delimiters stripped.
func parseTitle(tokens token.List) (element.Element, bool) {
	start, end, ok := findTitle(tokens)
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
	return element.New(element.Title, value, position), true
}
