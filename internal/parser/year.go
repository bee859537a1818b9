package parser

import (
	"strconv"

	"github.com/vido/mediatag/internal/element"
	"github.com/vido/mediatag/internal/token"
)

func isYear(s string) bool {
	v, err := strconv.ParseUint(s, 10, 16)
	return err == nil && v >= 1950 && v <= 2050
}

func isMonth(s string) bool {
	v, err := strconv.ParseUint(s, 10, 8)
	return err == nil && v >= 1 && v <= 12
}

func isDay(s string) bool {
	v, err := strconv.ParseUint(s, 10, 8)
	return err == nil && v >= 1 && v <= 31
}

// parseYear prefers a bracket-isolated year "[2009]"; otherwise any free,
// non-enclosed numeric year that is isolated (see IsTokenIsolated).
func parseYear(tokens token.List) (element.Element, bool) {
	idx := -1
	windows3(len(tokens), func(i, j, k int) bool {
		if tokens[i].Category == token.OpenBracket &&
			tokens[k].Category == token.ClosedBracket &&
			tokens[j].IsFree() && tokens[j].IsNumber() && isYear(tokens[j].Value) {
			idx = j
			return true
		}
		return false
	})
	if idx >= 0 {
		t := &tokens[idx]
		t.MarkKnown()
		return element.New(element.Year, t.Value, t.Position), true
	}

	for i := range tokens {
		t := &tokens[i]
		if t.IsFree() && t.IsNumber() && !t.IsEnclosed && isYear(t.Value) {
			if IsTokenIsolated(tokens, i) {
				t.MarkKnown()
				return element.New(element.Year, t.Value, t.Position), true
			}
		}
	}

	return element.Element{}, false
}

// parseDate scans 5-token windows [year, delim, month, delim, day]: the
// tokenizer never glues a dotted or dashed run back into one token, so the
// "2009.12.24" the original format describes as a single splittable token
// shows up here as five.
func parseDate(tokens token.List) (element.Element, bool) {
	n := len(tokens)
	for i := 0; i+4 < n; i++ {
		year, d1, month, d2, day := &tokens[i], &tokens[i+1], &tokens[i+2], &tokens[i+3], &tokens[i+4]

		if d1.Category != token.Delimiter || !isDotOrDash(d1.Value) {
			continue
		}
		if d2.Category != token.Delimiter || !isDotOrDash(d2.Value) {
			continue
		}
		if !year.IsNumber() || !month.IsNumber() || !day.IsNumber() {
			continue
		}
		if !isYear(year.Value) || !isMonth(month.Value) || !isDay(day.Value) {
			continue
		}

		year.MarkKnown()
		d1.MarkKnown()
		month.MarkKnown()
		d2.MarkKnown()
		day.MarkKnown()

		value := year.Value + d1.Value + month.Value + d2.Value + day.Value
		return element.New(element.Date, value, year.Position), true
	}
	return element.Element{}, false
}

func isDotOrDash(s string) bool {
	return s == "." || s == "-"
}
