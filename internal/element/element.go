// Package element defines the output record of the filename parser: a
// labeled span of text tagged with the semantic kind the pipeline assigned
// to it.
package element

import "sort"

// Kind identifies the semantic category of a parsed element.
type Kind int

const (
	Title Kind = iota
	EpisodeTitle
	Episode
	EpisodeAlt
	Season
	Part
	Volume
	Year
	Date
	ReleaseGroup
	ReleaseVersion
	FileChecksum
	FileExtension
	VideoResolution
	VideoTerm
	AudioTerm
	Source
	Language
	Subtitles
	Type
	DeviceCompatibility
	ReleaseInformation
	Other
)

var kindNames = map[Kind]string{
	Title:               "title",
	EpisodeTitle:        "episode_title",
	Episode:             "episode",
	EpisodeAlt:          "episode_alt",
	Season:              "season",
	Part:                "part",
	Volume:              "volume",
	Year:                "year",
	Date:                "date",
	ReleaseGroup:        "release_group",
	ReleaseVersion:      "release_version",
	FileChecksum:        "file_checksum",
	FileExtension:       "file_extension",
	VideoResolution:     "video_resolution",
	VideoTerm:           "video_term",
	AudioTerm:           "audio_term",
	Source:              "source",
	Language:            "language",
	Subtitles:           "subtitles",
	Type:                "type",
	DeviceCompatibility: "device_compatibility",
	ReleaseInformation:  "release_information",
	Other:               "other",
}

// String returns the lower_snake_case name used in JSON output.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so Kind serializes as its
// string name rather than a bare integer.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Element is a single labeled piece of a parsed filename.
type Element struct {
	Kind     Kind   `json:"kind"`
	Value    string `json:"value"`
	Position int    `json:"position"`
}

// New builds an Element from a kind, value, and source position.
func New(kind Kind, value string, position int) Element {
	return Element{Kind: kind, Value: value, Position: position}
}

// List is a slice of Elements kept ordered by Position.
type List []Element

// SortByPosition sorts the list ascending by source token position, the
// final step of every parse.
func (l List) SortByPosition() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Position < l[j].Position
	})
}

// First returns the first element of the given kind, if any.
func (l List) First(kind Kind) (Element, bool) {
	for _, e := range l {
		if e.Kind == kind {
			return e, true
		}
	}
	return Element{}, false
}

// Has reports whether the list contains an element of the given kind.
func (l List) Has(kind Kind) bool {
	_, ok := l.First(kind)
	return ok
}
