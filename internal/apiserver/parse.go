package apiserver

import (
	"github.com/gin-gonic/gin"

	"github.com/vido/mediatag/internal/element"
	"github.com/vido/mediatag/internal/parser"
)

// ParseRequest is the POST /v1/parse request body.
type ParseRequest struct {
	Filename string            `json:"filename" binding:"required"`
	Options  *ParseOptionsBody `json:"options,omitempty"`
}

// ParseOptionsBody mirrors parser.Options with JSON tags; every field
// defaults to true (enabled) when the request omits the options object
// entirely, matching parser.DefaultOptions.
type ParseOptionsBody struct {
	ParseFileExtension   *bool `json:"parse_file_extension,omitempty"`
	ParseFileChecksum    *bool `json:"parse_file_checksum,omitempty"`
	ParseVideoResolution *bool `json:"parse_video_resolution,omitempty"`
	ParseDate            *bool `json:"parse_date,omitempty"`
	ParseYear            *bool `json:"parse_year,omitempty"`
	ParseSeason          *bool `json:"parse_season,omitempty"`
	ParseEpisode         *bool `json:"parse_episode,omitempty"`
	ParseEpisodeTitle    *bool `json:"parse_episode_title,omitempty"`
	ParseTitle           *bool `json:"parse_title,omitempty"`
	ParseReleaseGroup    *bool `json:"parse_release_group,omitempty"`
}

func (b *ParseOptionsBody) toOptions() parser.Options {
	opts := parser.DefaultOptions()
	if b == nil {
		return opts
	}

	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&opts.ParseFileExtension, b.ParseFileExtension)
	apply(&opts.ParseFileChecksum, b.ParseFileChecksum)
	apply(&opts.ParseVideoResolution, b.ParseVideoResolution)
	apply(&opts.ParseDate, b.ParseDate)
	apply(&opts.ParseYear, b.ParseYear)
	apply(&opts.ParseSeason, b.ParseSeason)
	apply(&opts.ParseEpisode, b.ParseEpisode)
	apply(&opts.ParseEpisodeTitle, b.ParseEpisodeTitle)
	apply(&opts.ParseTitle, b.ParseTitle)
	apply(&opts.ParseReleaseGroup, b.ParseReleaseGroup)
	return opts
}

// ParseElement is the wire shape of one returned element.List entry.
type ParseElement struct {
	Kind     string `json:"kind"`
	Value    string `json:"value"`
	Position int    `json:"position"`
}

// ParseHandler handles POST /v1/parse: tokenize and run the full extractor
// cascade over the given filename, returning the sorted element list.
func ParseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ParseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			BadRequestError(c, "INVALID_REQUEST", err.Error())
			return
		}

		results := parser.ParseWithOptions(req.Filename, req.Options.toOptions())
		SuccessResponse(c, toParseElements(results))
	}
}

func toParseElements(results element.List) []ParseElement {
	out := make([]ParseElement, 0, len(results))
	for _, e := range results {
		out = append(out, ParseElement{Kind: e.Kind.String(), Value: e.Value, Position: e.Position})
	}
	return out
}
