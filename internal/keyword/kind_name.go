package keyword

import "fmt"

var kindNames = map[Kind]string{
	AudioChannels:       "audio_channels",
	AudioCodec:          "audio_codec",
	AudioLanguage:       "audio_language",
	DeviceCompatibility: "device_compatibility",
	Episode:             "episode",
	EpisodeType:         "episode_type",
	FileExtension:       "file_extension",
	Language:            "language",
	Other:               "other",
	Part:                "part",
	ReleaseGroup:        "release_group",
	ReleaseInformation:  "release_information",
	ReleaseVersion:      "release_version",
	Season:              "season",
	Source:              "source",
	Subtitles:           "subtitles",
	Type:                "type",
	VideoCodec:          "video_codec",
	VideoColorDepth:     "video_color_depth",
	VideoFormat:         "video_format",
	VideoFrameRate:      "video_frame_rate",
	VideoProfile:        "video_profile",
	VideoQuality:        "video_quality",
	VideoResolution:     "video_resolution",
	Volume:              "volume",
}

var namesToKind = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, v := range kindNames {
		m[v] = k
	}
	return m
}()

// String returns the lower_snake_case name of k, used when persisting
// overlay entries.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind parses a Kind from its String() form.
func ParseKind(name string) (Kind, error) {
	if k, ok := namesToKind[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("keyword: unknown kind %q", name)
}
