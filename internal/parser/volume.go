package parser

import (
	"github.com/vido/mediatag/internal/element"
	"github.com/vido/mediatag/internal/keyword"
	"github.com/vido/mediatag/internal/token"
)

// parseVolume claims every Volume-keyword token followed by a free token
// that parses as a multi-episode range or a single (optionally versioned)
// episode number, emitting Volume (+ optional ReleaseVersion). Runs
// unconditionally as part of the Episode pass, matching the upstream
// format where Volume has no independent Options gate.
func parseVolume(tokens token.List, results *element.List) {
	for i := range tokens {
		if !tokens[i].HasKeywordKind(keyword.Volume) {
			continue
		}

		next, ok := FindNextToken(tokens, i, true, func(t token.Token) bool { return t.IsNotDelimiter() })
		if !ok || !tokens[next].IsFree() {
			continue
		}

		if parseMultiEpisodeRange(tokens, next, results, element.Volume) {
			tokens[i].MarkKnown()
			continue
		}

		prefix, suffix, ok := parseSingleEpisode(tokens[next].Value)
		if !ok {
			continue
		}

		position := tokens[i].Position
		*results = append(*results, element.New(element.Volume, prefix, position))
		if suffix != "" {
			*results = append(*results, element.New(element.ReleaseVersion, suffix, position))
		}
		tokens[i].MarkKnown()
		tokens[next].MarkKnown()
	}
}
