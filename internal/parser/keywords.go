package parser

import (
	"strings"

	"github.com/vido/mediatag/internal/element"
	"github.com/vido/mediatag/internal/keyword"
	"github.com/vido/mediatag/internal/token"
)

// keywordKindToElementKind maps a catalog entry's kind to the element kind
// it produces. Structural markers (Season, Part, Volume, Episode) return
// false: they drive dedicated extractors instead of emitting elements here.
func keywordKindToElementKind(k keyword.Kind) (element.Kind, bool) {
	switch k {
	case keyword.AudioChannels, keyword.AudioCodec, keyword.AudioLanguage:
		return element.AudioTerm, true
	case keyword.DeviceCompatibility:
		return element.DeviceCompatibility, true
	case keyword.EpisodeType:
		return element.Type, true
	case keyword.Language:
		return element.Language, true
	case keyword.Other:
		return element.Other, true
	case keyword.ReleaseGroup:
		return element.ReleaseGroup, true
	case keyword.ReleaseInformation:
		return element.ReleaseInformation, true
	case keyword.ReleaseVersion:
		return element.ReleaseVersion, true
	case keyword.Source:
		return element.Source, true
	case keyword.Subtitles:
		return element.Subtitles, true
	case keyword.Type:
		return element.Type, true
	case keyword.VideoCodec, keyword.VideoColorDepth, keyword.VideoFormat,
		keyword.VideoFrameRate, keyword.VideoProfile, keyword.VideoQuality:
		return element.VideoTerm, true
	case keyword.VideoResolution:
		return element.VideoResolution, true
	default:
		return 0, false
	}
}

// parseKeywords sweeps every free token carrying a catalog entry and emits
// the corresponding element. Ambiguous entries are recorded but only
// claimed when their token is bracket-enclosed, so an unenclosed ambiguous
// word (e.g. "high") stays eligible for other extractors.
func parseKeywords(tokens token.List, opts Options, results *element.List) {
	for i := range tokens {
		t := &tokens[i]
		if !t.IsFree() || t.Keyword == nil {
			continue
		}

		kw := *t.Keyword
		if kw.Kind == keyword.ReleaseGroup && !opts.ParseReleaseGroup {
			continue
		}
		if kw.Kind == keyword.VideoResolution && !opts.ParseVideoResolution {
			continue
		}

		kind, ok := keywordKindToElementKind(kw.Kind)
		if !ok {
			continue
		}

		if !kw.Ambiguous || t.IsEnclosed {
			t.MarkKnown()
		}

		value := t.Value
		if kw.Kind == keyword.ReleaseVersion {
			value = strings.TrimPrefix(value, "v")
			value = strings.TrimPrefix(value, "V")
		}

		*results = append(*results, element.New(kind, value, t.Position))
	}
}
