package parser

import (
	"github.com/vido/mediatag/internal/element"
	"github.com/vido/mediatag/internal/token"
	"github.com/vido/mediatag/internal/tokenizer"
)

// Parse tokenizes filename and runs it through every extractor with
// DefaultOptions.
func Parse(filename string) element.List {
	return ParseWithOptions(filename, DefaultOptions())
}

// ParseWithOptions tokenizes filename and runs the extractor cascade gated
// by opts, in the exact order the pipeline is defined: file extension,
// keyword sweep, file checksum, video resolution, date, year, season,
// part, volume + episode, title, release group, episode title + episode
// (alt pass), then a final sort by token position.
func ParseWithOptions(filename string, opts Options) element.List {
	tokens := tokenizer.Tokenize(filename)
	return parseTokens(tokens, opts)
}

func parseTokens(tokens token.List, opts Options) element.List {
	var results element.List

	if opts.ParseFileExtension {
		if e, ok := parseFileExtension(tokens); ok {
			results = append(results, e)
		}
	}

	parseKeywords(tokens, opts, &results)

	if opts.ParseFileChecksum {
		if e, ok := parseFileChecksum(tokens); ok {
			results = append(results, e)
		}
	}

	if opts.ParseVideoResolution {
		parseVideoResolution(tokens, &results)
	}

	if opts.ParseDate {
		if e, ok := parseDate(tokens); ok {
			results = append(results, e)
		}
	}

	if opts.ParseYear {
		if e, ok := parseYear(tokens); ok {
			results = append(results, e)
		}
	}

	if opts.ParseSeason {
		parseSeason(tokens, &results)
	}

	parsePart(tokens, &results)

	if opts.ParseEpisode {
		parseVolume(tokens, &results)
		parseEpisode(tokens, &results, element.Episode)
	}

	if opts.ParseTitle {
		if e, ok := parseTitle(tokens); ok {
			results = append(results, e)
		}
	}

	if opts.ParseReleaseGroup && !results.Has(element.ReleaseGroup) {
		if e, ok := parseReleaseGroup(tokens); ok {
			results = append(results, e)
		}
	}

	if results.Has(element.Episode) {
		if opts.ParseEpisodeTitle {
			if e, ok := parseEpisodeTitle(tokens); ok {
				results = append(results, e)
			}
		}
		if opts.ParseEpisode {
			parseEpisode(tokens, &results, element.EpisodeAlt)
		}
	}

	results.SortByPosition()
	return results
}
