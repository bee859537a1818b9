package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vido/mediatag/internal/element"
)

func elementValue(t *testing.T, results element.List, kind element.Kind) (string, bool) {
	t.Helper()
	e, ok := results.First(kind)
	return e.Value, ok
}

func TestParse_TypicalAnimeRelease(t *testing.T) {
	results := Parse("[SubsPlease] Sousou no Frieren - 12 [1080p][ABCD1234].mkv")

	group, ok := elementValue(t, results, element.ReleaseGroup)
	assert.True(t, ok)
	assert.Equal(t, "SubsPlease", group)

	title, ok := elementValue(t, results, element.Title)
	assert.True(t, ok)
	assert.Equal(t, "Sousou no Frieren", title)

	episode, ok := elementValue(t, results, element.Episode)
	assert.True(t, ok)
	assert.Equal(t, "12", episode)

	resolution, ok := elementValue(t, results, element.VideoResolution)
	assert.True(t, ok)
	assert.Equal(t, "1080p", resolution)

	checksum, ok := elementValue(t, results, element.FileChecksum)
	assert.True(t, ok)
	assert.Equal(t, "ABCD1234", checksum)

	ext, ok := elementValue(t, results, element.FileExtension)
	assert.True(t, ok)
	assert.Equal(t, "mkv", ext)
}

func TestParse_SeasonAndEpisodeForm(t *testing.T) {
	results := Parse("Show.Name.S02E05.720p.WEB-DL.mkv")

	season, ok := elementValue(t, results, element.Season)
	assert.True(t, ok)
	assert.Equal(t, "02", season)

	episode, ok := elementValue(t, results, element.Episode)
	assert.True(t, ok)
	assert.Equal(t, "05", episode)
}

func TestParse_DateInsteadOfEpisode(t *testing.T) {
	results := Parse("Nightly.News.2024.03.15.1080p.mkv")

	date, ok := elementValue(t, results, element.Date)
	assert.True(t, ok)
	assert.Equal(t, "2024.03.15", date)
}

func TestParse_YearInBrackets(t *testing.T) {
	results := Parse("Movie Title (2009) [1080p].mkv")

	year, ok := elementValue(t, results, element.Year)
	assert.True(t, ok)
	assert.Equal(t, "2009", year)
}

func TestParse_Volume(t *testing.T) {
	results := Parse("[Group] Series Name - Vol.03 - The Long Road [Hi10P].mkv")

	volume, ok := elementValue(t, results, element.Volume)
	assert.True(t, ok)
	assert.Equal(t, "03", volume)
}

func TestParse_EpisodeRange(t *testing.T) {
	results := Parse("[Group] Show Name - 01-03 [720p].mkv")

	var episodes []string
	for _, e := range results {
		if e.Kind == element.Episode {
			episodes = append(episodes, e.Value)
		}
	}
	assert.Equal(t, []string{"01", "03"}, episodes)
}

func TestParse_SeasonEpisodeRange(t *testing.T) {
	results := Parse("[Group] Show - S02E05-E07.mkv")

	season, ok := elementValue(t, results, element.Season)
	assert.True(t, ok)
	assert.Equal(t, "02", season)

	var episodes []string
	for _, e := range results {
		if e.Kind == element.Episode {
			episodes = append(episodes, e.Value)
		}
	}
	assert.Equal(t, []string{"05", "07"}, episodes)
}

func TestParse_SeasonEpisodeRangeShortSecondForm(t *testing.T) {
	results := Parse("Show.Name.S01E02-E03.mkv")

	season, ok := elementValue(t, results, element.Season)
	assert.True(t, ok)
	assert.Equal(t, "01", season)

	var episodes []string
	for _, e := range results {
		if e.Kind == element.Episode {
			episodes = append(episodes, e.Value)
		}
	}
	assert.Equal(t, []string{"02", "03"}, episodes)
}

func TestParse_ResultsAreSortedByPosition(t *testing.T) {
	results := Parse("[Group] Show Name - 01 [720p][DEADBEEF].mkv")
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].Position, results[i].Position)
	}
}

func TestParseWithOptions_SkipsDisabledExtractors(t *testing.T) {
	opts := DefaultOptions()
	opts.ParseReleaseGroup = false
	opts.ParseTitle = false

	results := ParseWithOptions("[Group] Show Name - 01 [720p].mkv", opts)

	assert.False(t, results.Has(element.ReleaseGroup))
	assert.False(t, results.Has(element.Title))
	assert.True(t, results.Has(element.Episode))
}

func TestParse_EmptyInputYieldsNoElements(t *testing.T) {
	results := Parse("")
	assert.Empty(t, results)
}
