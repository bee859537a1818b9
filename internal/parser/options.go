package parser

// Options gates which extractors run. The zero value (all false) parses
// nothing; use DefaultOptions for "everything on".
type Options struct {
	ParseFileExtension  bool
	ParseFileChecksum   bool
	ParseVideoResolution bool
	ParseDate           bool
	ParseYear           bool
	ParseSeason         bool
	ParseEpisode        bool
	ParseEpisodeTitle   bool
	ParseTitle          bool
	ParseReleaseGroup   bool
}

// DefaultOptions enables every extractor, matching Parse's behavior.
func DefaultOptions() Options {
	return Options{
		ParseFileExtension:  true,
		ParseFileChecksum:   true,
		ParseVideoResolution: true,
		ParseDate:           true,
		ParseYear:           true,
		ParseSeason:         true,
		ParseEpisode:        true,
		ParseEpisodeTitle:   true,
		ParseTitle:          true,
		ParseReleaseGroup:   true,
	}
}
