// Package tokenizer turns a raw filename into the token stream the parser
// pipeline consumes. It is the concrete implementation of the external
// tokenizer contract the core parser is written against: it never looks at
// the keyword catalog for anything beyond a lookup, and it never inspects
// semantics beyond character shape and bracket nesting.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/vido/mediatag/internal/keyword"
	"github.com/vido/mediatag/internal/token"
)

// hardDelimiters always split into their own (possibly repeated) token and
// never combine with neighboring runs.
const hardDelimiters = " \t_,|;"

// softDelimiters also always split into their own single-character token.
// They are kept distinct from hardDelimiters only because a few extractors
// care which exact character produced a delimiter (e.g. distinguishing a
// combining "-" from a plain space run).
const softDelimiters = ".-~&+"

// Tokenize scans filename into a token.List. Every soft delimiter and bracket
// character becomes its own token, a run of one repeated hard delimiter
// becomes a single token, and everything else accumulates into runs of
// Word or Number tokens. Bracket nesting is tracked with a stack so every
// token strictly between a matched open/close pair is marked IsEnclosed.
func Tokenize(filename string) token.List {
	return TokenizeWithCatalog(filename, keyword.Default())
}

// TokenizeWithCatalog is Tokenize parameterized on an explicit catalog,
// mainly useful for tests that want a catalog without the built-in table.
func TokenizeWithCatalog(filename string, catalog *keyword.Catalog) token.List {
	runes := []rune(filename)
	var tokens token.List
	var bracketStack []int // indices into tokens of unmatched OpenBracket tokens

	position := 0
	i := 0
	for i < len(runes) {
		r := runes[i]

		switch {
		case strings.ContainsRune(hardDelimiters, r) || strings.ContainsRune(softDelimiters, r):
			j := i + 1
			if strings.ContainsRune(hardDelimiters, r) {
				for j < len(runes) && runes[j] == r {
					j++
				}
			}
			tokens = appendToken(tokens, string(runes[i:j]), position, token.Delimiter, nil, bracketStack)
			position++
			i = j

		case token.IsOpenBracket(r):
			idx := len(tokens)
			tokens = appendToken(tokens, string(r), position, token.OpenBracket, nil, bracketStack)
			bracketStack = append(bracketStack, idx)
			position++
			i++

		case token.IsCloseBracket(r):
			if len(bracketStack) > 0 {
				bracketStack = bracketStack[:len(bracketStack)-1]
			}
			tokens = appendToken(tokens, string(r), position, token.ClosedBracket, nil, bracketStack)
			position++
			i++

		case unicode.IsDigit(r):
			j := i
			for j < len(runes) && isRunWord(runes[j]) {
				j++
			}
			value := string(runes[i:j])
			cat := token.Number
			if !isAllDigits(value) {
				cat = token.Word
			}
			tokens = appendToken(tokens, value, position, cat, lookup(catalog, value), bracketStack)
			position++
			i = j

		default:
			j := i
			for j < len(runes) && isRunWord(runes[j]) {
				j++
			}
			value := string(runes[i:j])
			tokens = appendToken(tokens, value, position, token.Word, lookup(catalog, value), bracketStack)
			position++
			i = j
		}
	}

	return tokens
}

// isRunWord reports whether r continues a word/number run: anything that is
// not whitespace, a hard/soft delimiter, or a bracket character.
func isRunWord(r rune) bool {
	if strings.ContainsRune(hardDelimiters, r) || strings.ContainsRune(softDelimiters, r) {
		return false
	}
	if token.IsOpenBracket(r) || token.IsCloseBracket(r) {
		return false
	}
	return true
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

func lookup(catalog *keyword.Catalog, value string) *keyword.Entry {
	if catalog == nil {
		return nil
	}
	if e, ok := catalog.Lookup(value); ok {
		return &e
	}
	return nil
}

func appendToken(tokens token.List, value string, position int, cat token.Category, kw *keyword.Entry, bracketStack []int) token.List {
	enclosed := len(bracketStack) > 0
	tokens = append(tokens, token.New(value, position, cat, kw, enclosed))
	return tokens
}
