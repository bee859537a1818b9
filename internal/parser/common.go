// Package parser implements the filename-parsing pipeline: a sequence of
// extractors that walk a shared, mutable token vector and emit elements,
// each claiming the tokens it consumes so later extractors never see them.
package parser

import (
	"strings"

	"github.com/vido/mediatag/internal/token"
)

// FindNextToken returns the index of the first token at or after from
// (strictly after when skipFrom is true) that satisfies pred. Brackets and
// delimiters are ordinary tokens here; callers filter via pred.
func FindNextToken(tokens token.List, from int, skipFrom bool, pred func(token.Token) bool) (int, bool) {
	start := from
	if skipFrom {
		start++
	}
	for i := start; i < len(tokens); i++ {
		if pred(tokens[i]) {
			return i, true
		}
	}
	return 0, false
}

// FindPrevToken returns the index of the nearest token strictly before upto
// that satisfies pred. upto == len(tokens) searches from the end.
func FindPrevToken(tokens token.List, upto int, pred func(token.Token) bool) (int, bool) {
	for i := upto - 1; i >= 0; i-- {
		if pred(tokens[i]) {
			return i, true
		}
	}
	return 0, false
}

// FindPair locates the first index matching pred1, then the nearest
// following non-delimiter-skipped index matching pred2, returning both.
func FindPair(tokens token.List, pred1, pred2 func(token.Token) bool) (first, second int, ok bool) {
	for i := 0; i < len(tokens); i++ {
		if !pred1(tokens[i]) {
			continue
		}
		if j, found := FindNextToken(tokens, i, true, pred2); found {
			return i, j, true
		}
	}
	return 0, 0, false
}

// windows3 calls fn for every overlapping triple of indices (i, i+1, i+2)
// in order, stopping as soon as fn reports it found what it was looking for.
func windows3(n int, fn func(i, j, k int) bool) bool {
	for i := 0; i+2 < n; i++ {
		if fn(i, i+1, i+2) {
			return true
		}
	}
	return false
}

// IsTokenIsolated reports whether index sits strictly between two brackets:
// its nearest non-delimiter neighbor on each side is a bracket token.
func IsTokenIsolated(tokens token.List, index int) bool {
	prev, ok := FindPrevToken(tokens, index, func(t token.Token) bool { return t.IsNotDelimiter() })
	if !ok || !tokens[prev].IsBracket() {
		return false
	}
	next, ok := FindNextToken(tokens, index, true, func(t token.Token) bool { return t.IsNotDelimiter() })
	if !ok {
		return false
	}
	return tokens[next].IsBracket()
}

// IsValidEpisodeNumber reports whether s is 1-4 ASCII digits.
func IsValidEpisodeNumber(s string) bool {
	if s == "" || len(s) > 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// japaneseNumerals are the CJK digit/place-value glyphs accepted in place of
// ASCII digits inside a "第N話" style episode marker.
var japaneseNumerals = map[rune]bool{
	'〇': true, '一': true, '二': true, '三': true, '四': true,
	'五': true, '六': true, '七': true, '八': true, '九': true,
	'十': true, '百': true, '千': true,
}

// IsJapaneseNumber reports whether r is one of the recognized CJK numeral
// glyphs.
func IsJapaneseNumber(r rune) bool {
	return japaneseNumerals[r]
}

// IsValidJapaneseEpisode reports whether s is a valid episode-number body
// for the "第N話" form: either an ASCII episode number, or 1-4 CJK numeral
// glyphs.
func IsValidJapaneseEpisode(s string) bool {
	if isASCII(s) {
		return IsValidEpisodeNumber(s)
	}
	count := 0
	for _, r := range s {
		if !IsJapaneseNumber(r) {
			return false
		}
		count++
	}
	return count > 0 && count <= 4
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// ordinalWords maps the spelled-out ordinals this format uses (season
// markers like "Second Season") to their decimal string.
var ordinalWords = map[string]string{
	"first": "1", "second": "2", "third": "3", "fourth": "4",
	"fifth": "5", "sixth": "6", "seventh": "7", "eighth": "8",
	"ninth": "9", "tenth": "10", "eleventh": "11", "twelfth": "12",
	"thirteenth": "13",
}

// FromOrdinalNumber converts a spelled-out ordinal ("First".."Thirteenth",
// case-insensitive) to its decimal string form, or ("", false) if s is not
// one of the recognized ordinals.
func FromOrdinalNumber(s string) (string, bool) {
	v, ok := ordinalWords[strings.ToLower(s)]
	return v, ok
}

// romanNumerals maps I..XIII (uppercase) to their decimal string.
var romanNumerals = map[string]string{
	"i": "1", "ii": "2", "iii": "3", "iv": "4", "v": "5", "vi": "6",
	"vii": "7", "viii": "8", "ix": "9", "x": "10", "xi": "11",
	"xii": "12", "xiii": "13",
}

// FromRomanNumber converts a Roman numeral (I..XIII, any case) to its
// decimal string form, or ("", false) if s is not recognized.
func FromRomanNumber(s string) (string, bool) {
	v, ok := romanNumerals[strings.ToLower(s)]
	return v, ok
}
