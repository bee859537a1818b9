package parser

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/vido/mediatag/internal/element"
	"github.com/vido/mediatag/internal/keyword"
	"github.com/vido/mediatag/internal/token"
)

var episodePrefixVersionedRegex = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(?:E|EP|Eps)(\d{1,4})[vV](\d)$`)
})

var episodePrefixBaseRegex = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(?:E|EP|Eps)(\d{1,4})$`)
})

var fractionalVersionRegex = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^5(?:[vV](\d))?$`)
})

// seasonAndEpisodeRegex matches the "S01E02", "01x02", "S01.E02v2" family
// in a single token. The original format's trailing episode-range group,
// "(?:-(?:EP?)?(\d{1,4}))?", is handled separately as a 3-token window
// ([match, separator, second-episode]) in step 6 below, since under this
// tokenizer "-" always splits into its own token.
var seasonAndEpisodeRegex = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^(?i:S?(\d{1,2})(?:x|[ ._x]?EP?)(\d{1,4})(?:[vV](\d))?)$`)
})

// seasonEpisodeRangeSecondRegex matches the second episode number of a
// "S02E05-E07" window: an optional "E"/"EP" prefix followed by digits,
// mirroring the original's "(?:EP?)?(\d{1,4})" second-capture group.
var seasonEpisodeRangeSecondRegex = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^(?i:(?:EP?)?(\d{1,4}))$`)
})

// numberSignEpisodeRegex matches "#01", "＃01v2". The dashed/ampersand
// second-number form only applies within one token, which — per the same
// no-combining tokenizer rule — never occurs after "#"; only the first
// capture and an optional fused version suffix are reachable in practice.
var numberSignEpisodeRegex = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`[#＃](\d{1,4})(?:[vV](\d))?`)
})

func isRegularEpisodeKind(kind element.Kind) bool {
	return kind == element.Episode
}

// parseSingleEpisode splits s on the first 'v'/'V' into an episode number
// and a single-digit version suffix, or treats the whole string as a bare
// episode number if there is no 'v'/'V'.
func parseSingleEpisode(s string) (prefix, suffix string, ok bool) {
	if idx := strings.IndexAny(s, "vV"); idx >= 0 {
		p, sfx := s[:idx], s[idx+1:]
		if IsValidEpisodeNumber(p) && len(sfx) == 1 && sfx[0] >= '0' && sfx[0] <= '9' {
			return p, sfx, true
		}
		return "", "", false
	}
	if IsValidEpisodeNumber(s) {
		return s, "", true
	}
	return "", "", false
}

// parseMultiEpisodeRange recognizes the 3-token window
// [number(+vD), separator(-~&+), number(+vD)] with lower < upper, claiming
// all three tokens and emitting lower/upper Episode (or Volume) elements
// plus any ReleaseVersion elements.
func parseMultiEpisodeRange(tokens token.List, index int, results *element.List, kind element.Kind) bool {
	if index+2 >= len(tokens) {
		return false
	}
	first, sep, second := &tokens[index], &tokens[index+1], &tokens[index+2]
	if !first.IsFree() || !second.IsFree() {
		return false
	}
	if sep.Category != token.Delimiter || !isRangeSeparator(sep.Value) {
		return false
	}

	lowerPrefix, lowerSuffix, ok1 := parseSingleEpisode(first.Value)
	upperPrefix, upperSuffix, ok2 := parseSingleEpisode(second.Value)
	if !ok1 || !ok2 {
		return false
	}

	lower, errL := strconv.ParseUint(lowerPrefix, 10, 16)
	upper, errU := strconv.ParseUint(upperPrefix, 10, 16)
	if errL != nil || errU != nil || lower >= upper {
		return false
	}

	position := first.Position
	first.MarkKnown()
	sep.MarkKnown()
	second.MarkKnown()

	*results = append(*results, element.New(kind, lowerPrefix, position))
	if lowerSuffix != "" {
		*results = append(*results, element.New(element.ReleaseVersion, lowerSuffix, position))
	}
	*results = append(*results, element.New(kind, upperPrefix, position))
	if upperSuffix != "" {
		*results = append(*results, element.New(element.ReleaseVersion, upperSuffix, position))
	}
	return true
}

// parseNumberInNumberEpisode recognizes "N of M" / "N & M" / "N ~ M": a
// free number, a separator ("&", "~", or the word "of") reached by
// skipping only delimiters, then another number. The second number is
// claimed unless the separator was "of". Always emits element.Episode
// regardless of the requested kind, matching the upstream format's single
// hardcoded element kind for this form.
func parseNumberInNumberEpisode(tokens token.List) (element.Element, bool) {
	for index := range tokens {
		t := tokens[index]
		if !(t.IsFree() && t.IsNumber()) {
			continue
		}

		middle, ok := FindNextToken(tokens, index, true, func(tk token.Token) bool {
			return tk.IsNotDelimiter() || tk.Value == "&" || tk.Value == "~"
		})
		if !ok {
			continue
		}

		sep := tokens[middle].Value
		if sep != "&" && sep != "~" && sep != "of" {
			continue
		}

		skip := false
		for k := index + 1; k < middle; k++ {
			if tokens[k].IsNotDelimiter() {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		otherIdx := -1
		for k := middle + 1; k < len(tokens); k++ {
			if tokens[k].IsNotDelimiter() {
				otherIdx = k
				break
			}
		}
		if otherIdx < 0 || !tokens[otherIdx].IsNumber() {
			continue
		}

		if sep != "of" {
			tokens[otherIdx].MarkKnown()
		}
		tokens[middle].MarkKnown()
		tokens[index].MarkKnown()
		return element.New(element.Episode, tokens[index].Value, tokens[index].Position), true
	}
	return element.Element{}, false
}

// parseEpisodePrefix is cascade step 2: "E<N>", "EP<N>", "Eps<N>", with an
// optional fused "vD" version suffix, and — via a following
// [".", "5"] window — the ".5" fractional form the single-token original
// expressed as part of the same regex.
func parseEpisodePrefix(tokens token.List, results *element.List, kind element.Kind) bool {
	n := len(tokens)
	for i := range tokens {
		t := &tokens[i]
		if !t.IsFree() {
			continue
		}

		if m := episodePrefixVersionedRegex().FindStringSubmatch(t.Value); m != nil {
			t.MarkKnown()
			*results = append(*results, element.New(kind, m[1], t.Position))
			*results = append(*results, element.New(element.ReleaseVersion, m[2], t.Position))
			return true
		}

		m := episodePrefixBaseRegex().FindStringSubmatch(t.Value)
		if m == nil {
			continue
		}
		// The "E07" of an "S02E05-E07" window belongs to step 6.
		if i >= 2 && tokens[i-1].Category == token.Delimiter && isRangeSeparator(tokens[i-1].Value) &&
			seasonAndEpisodeRegex().MatchString(tokens[i-2].Value) {
			continue
		}

		number := m[1]
		claimed := []int{i}
		version := ""

		if i+2 < n && tokens[i+1].Category == token.Delimiter && tokens[i+1].Value == "." {
			if fm := fractionalVersionRegex().FindStringSubmatch(tokens[i+2].Value); fm != nil {
				number += ".5"
				claimed = append(claimed, i+1, i+2)
				version = fm[1]
			}
		}

		for _, idx := range claimed {
			tokens[idx].MarkKnown()
		}
		*results = append(*results, element.New(kind, number, t.Position))
		if version != "" {
			*results = append(*results, element.New(element.ReleaseVersion, version, t.Position))
		}
		return true
	}
	return false
}

// parseEpisode is the central cascade: try each strategy in order and
// return on first success. kind is element.Episode on the first pass and
// element.EpisodeAlt on the post-title pass; steps 10-15 are restricted to
// the Episode pass, matching the upstream format's "alt episode can't
// re-derive the isolated-pair / last-resort forms" rule.
func parseEpisode(tokens token.List, results *element.List, kind element.Kind) {
	isRegular := isRegularEpisodeKind(kind)

	// Step 1: after an Episode keyword.
	for index := range tokens {
		if !tokens[index].IsFree() {
			continue
		}
		if !tokens[index].HasKeywordKind(keyword.Episode) {
			continue
		}

		next, ok := FindNextToken(tokens, index, true, func(t token.Token) bool { return t.IsNotDelimiter() })
		if !ok || !tokens[next].IsFree() || !tokens[next].IsMostlyNumbers() {
			continue
		}

		if parseMultiEpisodeRange(tokens, next, results, kind) {
			tokens[index].MarkKnown()
			return
		}
		if tokens[next].IsNumber() {
			tokens[index].MarkKnown()
			tokens[next].MarkKnown()
			*results = append(*results, element.New(kind, tokens[next].Value, tokens[next].Position))
			return
		}
	}

	// Step 2: prefixed form E|EP|Eps.
	if parseEpisodePrefix(tokens, results, kind) {
		return
	}

	// Step 3: "N of M" / "N & M" / "N ~ M".
	if e, ok := parseNumberInNumberEpisode(tokens); ok {
		*results = append(*results, e)
		return
	}

	// Step 4: single with version "NNNNvD".
	for i := range tokens {
		t := &tokens[i]
		if !t.IsFree() {
			continue
		}
		prefix, suffix, ok := parseSingleEpisode(t.Value)
		if !ok || suffix == "" {
			continue
		}
		t.MarkKnown()
		*results = append(*results, element.New(kind, prefix, t.Position))
		*results = append(*results, element.New(element.ReleaseVersion, suffix, t.Position))
		return
	}

	// Step 5: bare range "NNNN-NNNN".
	for index := range tokens {
		if tokens[index].IsFree() && parseMultiEpisodeRange(tokens, index, results, kind) {
			return
		}
	}

	// Step 6: season+episode regex, optionally extended by a trailing
	// "-E07" range window onto a second Episode element.
	re := seasonAndEpisodeRegex()
	secondRe := seasonEpisodeRangeSecondRegex()
	for i := range tokens {
		t := &tokens[i]
		if !t.IsFree() {
			continue
		}
		m := re.FindStringSubmatch(t.Value)
		if m == nil {
			continue
		}
		season, err := strconv.Atoi(m[1])
		if err != nil || season == 0 {
			continue
		}

		claimed := []int{i}
		upperEpisode := ""

		if i+2 < len(tokens) {
			sep, second := &tokens[i+1], &tokens[i+2]
			if sep.Category == token.Delimiter && isRangeSeparator(sep.Value) && second.IsFree() {
				if sm := secondRe.FindStringSubmatch(second.Value); sm != nil {
					lower, errL := strconv.ParseUint(m[2], 10, 16)
					upper, errU := strconv.ParseUint(sm[1], 10, 16)
					if errL == nil && errU == nil && lower < upper {
						upperEpisode = sm[1]
						claimed = append(claimed, i+1, i+2)
					}
				}
			}
		}

		for _, idx := range claimed {
			tokens[idx].MarkKnown()
		}
		*results = append(*results, element.New(element.Season, m[1], t.Position))
		*results = append(*results, element.New(kind, m[2], t.Position))
		if m[3] != "" {
			*results = append(*results, element.New(element.ReleaseVersion, m[3], t.Position))
		}
		if upperEpisode != "" {
			*results = append(*results, element.New(kind, upperEpisode, t.Position))
		}
		return
	}

	// Step 7: Type-keyword neighbor.
	if _, second, ok := FindPair(tokens,
		func(t token.Token) bool {
			return t.HasKeywordKind(keyword.Type) && !strings.EqualFold(t.Value, "movie")
		},
		func(t token.Token) bool { return t.IsNotDelimiter() },
	); ok {
		t := &tokens[second]
		if t.IsFree() && t.IsNumber() {
			t.MarkKnown()
			*results = append(*results, element.New(kind, t.Value, t.Position))
			return
		}
	}

	// Step 8: hash/fullwidth-hash form.
	nre := numberSignEpisodeRegex()
	for i := range tokens {
		t := &tokens[i]
		if !t.IsFree() {
			continue
		}
		m := nre.FindStringSubmatch(t.Value)
		if m == nil {
			continue
		}
		t.MarkKnown()
		*results = append(*results, element.New(kind, m[1], t.Position))
		if m[2] != "" {
			*results = append(*results, element.New(element.ReleaseVersion, m[2], t.Position))
		}
		return
	}

	// Step 9: Japanese "[第]N話".
	for i := range tokens {
		t := &tokens[i]
		if !t.IsFree() {
			continue
		}
		prefix, ok := strings.CutSuffix(t.Value, "話")
		if !ok {
			continue
		}
		prefix = strings.TrimPrefix(prefix, "第")
		if IsValidJapaneseEpisode(prefix) {
			t.MarkKnown()
			*results = append(*results, element.New(kind, prefix, t.Position))
			return
		}
	}

	if isRegular {
		// Step 10: isolated pair inside brackets.
		for i := range tokens {
			t := &tokens[i]
			if !t.IsFree() || !t.IsNumber() || !IsValidEpisodeNumber(t.Value) {
				continue
			}
			if !IsTokenIsolated(tokens, i) {
				continue
			}

			afterBracket, ok := FindNextToken(tokens, i, true, func(tk token.Token) bool { return tk.IsNotDelimiter() })
			if !ok || !tokens[afterBracket].IsBracket() {
				continue
			}
			next, ok := FindNextToken(tokens, afterBracket, true, func(tk token.Token) bool { return tk.IsNotDelimiter() && !tk.IsBracket() })
			if !ok {
				continue
			}
			other := tokens[next]
			if !(other.IsFree() && other.IsNumber() && IsValidEpisodeNumber(other.Value) && IsTokenIsolated(tokens, next)) {
				continue
			}

			first, errF := strconv.ParseUint(t.Value, 10, 16)
			second, errS := strconv.ParseUint(other.Value, 10, 16)
			if errF != nil || errS != nil {
				continue
			}

			var a, b element.Kind
			if first > second {
				a, b = element.EpisodeAlt, element.Episode
			} else {
				a, b = element.Episode, element.EpisodeAlt
			}

			tokens[next].MarkKnown()
			t.MarkKnown()
			*results = append(*results, element.New(b, tokens[next].Value, tokens[next].Position))
			*results = append(*results, element.New(a, t.Value, t.Position))
			return
		}

		// Step 11: dash-prefixed number.
		for index := range tokens {
			d := tokens[index]
			if d.Category != token.Delimiter || !strings.HasPrefix(d.Value, "-") {
				continue
			}
			found := false
			for k := index; k < len(tokens); k++ {
				if tokens[k].IsNotDelimiter() {
					if tokens[k].IsNumber() && tokens[k].IsFree() {
						tokens[k].MarkKnown()
						*results = append(*results, element.New(kind, tokens[k].Value, tokens[k].Position))
						tokens[index].MarkKnown()
						found = true
					}
					break
				}
			}
			if found {
				return
			}
		}

		// Step 12: "N.5" form, as the 3-token window [number, ".", "5"].
		for i := 0; i+2 < len(tokens); i++ {
			t := &tokens[i]
			dot := &tokens[i+1]
			five := &tokens[i+2]
			if !t.IsFree() || dot.Category != token.Delimiter || dot.Value != "." || five.Value != "5" {
				continue
			}
			if !IsValidEpisodeNumber(t.Value) {
				continue
			}
			value := t.Value + "." + five.Value
			t.MarkKnown()
			dot.MarkKnown()
			five.MarkKnown()
			*results = append(*results, element.New(kind, value, t.Position))
			return
		}

		// Step 13: bracket-enclosed lone number "[N]".
		done := windows3(len(tokens), func(i, j, k int) bool {
			if tokens[i].Category == token.OpenBracket && tokens[k].Category == token.ClosedBracket &&
				tokens[j].IsFree() && tokens[j].IsNumber() {
				*results = append(*results, element.New(kind, tokens[j].Value, tokens[j].Position))
				tokens[j].MarkKnown()
				return true
			}
			return false
		})
		if done {
			return
		}

		// Step 14: partial-episode letter suffix "NNNNA/B/C".
		for i := range tokens {
			t := &tokens[i]
			if !t.IsFree() {
				continue
			}
			prefix, ok := stripPartialSuffix(t.Value)
			if !ok || !IsValidEpisodeNumber(prefix) {
				continue
			}
			if i > 1 && t.Value == "1a" && tokens[i-2].Value == "Ver1" {
				continue
			}
			t.MarkKnown()
			*results = append(*results, element.New(kind, t.Value, t.Position))
			return
		}

		// Step 15: last-resort number.
		for index := 1; index < len(tokens); index++ {
			t := &tokens[index]
			if !(t.IsFree() && t.IsNumber() && !t.IsEnclosed) {
				continue
			}

			allEnclosedOrDelim := true
			for k := 0; k < index; k++ {
				if !(tokens[k].IsEnclosed || tokens[k].Category == token.Delimiter) {
					allEnclosedOrDelim = false
					break
				}
			}
			if allEnclosedOrDelim {
				continue
			}

			isVersionNumber := func(idx int) bool {
				prev, ok := FindPrevToken(tokens, idx, func(tk token.Token) bool { return tk.IsNotDelimiter() })
				return ok && tokens[prev].Category == token.Delimiter && tokens[prev].Value == "."
			}

			prevIdx, hasPrev := FindPrevToken(tokens, index, func(tk token.Token) bool { return tk.IsNotDelimiter() })
			if hasPrev {
				prev := tokens[prevIdx]
				if prev.IsFree() && (strings.EqualFold(prev.Value, "movie") ||
					strings.EqualFold(prev.Value, "part") ||
					strings.EqualFold(prev.Value, "cour") ||
					strings.EqualFold(prev.Value, "no")) {
					continue
				}
				if isVersionNumber(prevIdx) {
					continue
				}
				if prev.Value == "]" {
					continue
				}
			}

			nextIdx, hasNext := FindNextToken(tokens, index, true, func(tk token.Token) bool { return tk.IsNotDelimiter() })
			if hasNext && isVersionNumber(nextIdx) {
				continue
			}

			if hasPrev && hasNext && tokens[prevIdx].IsFree() && tokens[nextIdx].IsFree() {
				continue
			}

			t.MarkKnown()
			*results = append(*results, element.New(kind, t.Value, t.Position))
			break
		}
	}
}

func stripPartialSuffix(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	last := s[len(s)-1]
	switch last {
	case 'A', 'B', 'C', 'a', 'b', 'c':
		return s[:len(s)-1], true
	default:
		return "", false
	}
}
