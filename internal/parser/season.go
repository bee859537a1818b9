package parser

import (
	"strings"

	"github.com/vido/mediatag/internal/element"
	"github.com/vido/mediatag/internal/keyword"
	"github.com/vido/mediatag/internal/token"
)

func isSeasonKeyword(t token.Token) bool {
	return t.HasKeywordKind(keyword.Season)
}

// innerParseSeason tries the triple form: [ordinal-word, delimiter, Season]
// or [Season, delimiter, number-or-roman-numeral].
func innerParseSeason(tokens token.List) (element.Element, bool) {
	n := len(tokens)
	for i := 0; i+2 < n; i++ {
		first, mid, last := &tokens[i], &tokens[i+1], &tokens[i+2]

		if isSeasonKeyword(*last) && mid.Category == token.Delimiter && first.IsFree() {
			if number, ok := FromOrdinalNumber(first.Value); ok {
				last.MarkKnown()
				mid.MarkKnown()
				first.MarkKnown()
				return element.New(element.Season, number, first.Position), true
			}
		}

		if isSeasonKeyword(*first) && mid.Category == token.Delimiter && last.IsFree() {
			var value string
			if last.IsNumber() {
				value = last.Value
			} else if v, ok := FromRomanNumber(last.Value); ok {
				value = v
			} else {
				continue
			}
			last.MarkKnown()
			mid.MarkKnown()
			first.MarkKnown()
			return element.New(element.Season, value, last.Position), true
		}
	}
	return element.Element{}, false
}

// parseSeason tries, in order: the keyword-neighbor triple, the "Sxx" /
// "Sxx-Syy" free-token forms, and the Japanese "第N期" / "N期" form.
func parseSeason(tokens token.List, results *element.List) {
	if e, ok := innerParseSeason(tokens); ok {
		*results = append(*results, e)
		return
	}

	n := len(tokens)
	for i := range tokens {
		t := &tokens[i]
		if !t.IsFree() {
			continue
		}

		if suffix, ok := stripSPrefix(t.Value); ok {
			// "Sxx-Syy" / "Sxx~yy" / "Sxx&yy" / "Sxx+yy": only reachable as a
			// 3-token window now that the tokenizer never glues "-~&+" back
			// into a value.
			if i+2 < n && tokens[i+1].Category == token.Delimiter && isRangeSeparator(tokens[i+1].Value) {
				right := &tokens[i+2]
				if right.IsFree() {
					rightSuffix, hasS := stripSPrefix(right.Value)
					if !hasS {
						rightSuffix = right.Value
					}
					if isDigits1or2(suffix) && isDigits1or2(rightSuffix) {
						t.MarkKnown()
						right.MarkKnown()
						tokens[i+1].MarkKnown()
						*results = append(*results, element.New(element.Season, suffix, t.Position))
						*results = append(*results, element.New(element.Season, rightSuffix, t.Position))
						continue
					}
				}
			}

			if isDigits1or2(suffix) {
				t.MarkKnown()
				*results = append(*results, element.New(element.Season, suffix, t.Position))
				continue
			}
		}

		if prefix, ok := strings.CutSuffix(t.Value, "期"); ok {
			prefix = strings.TrimPrefix(prefix, "第")
			if isDigits1or2(prefix) {
				t.MarkKnown()
				*results = append(*results, element.New(element.Season, prefix, t.Position))
			}
		}
	}
}

func stripSPrefix(s string) (string, bool) {
	if len(s) > 0 && (s[0] == 'S' || s[0] == 's') {
		return s[1:], true
	}
	return "", false
}

func isRangeSeparator(s string) bool {
	return s == "-" || s == "~" || s == "&" || s == "+"
}

func isDigits1or2(s string) bool {
	if len(s) != 1 && len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
