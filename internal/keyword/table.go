package keyword

import "sync"

var buildDefault = sync.OnceValue(func() *Catalog {
	overlay := map[string]Entry{}
	overlayMu.RLock()
	if overlayProvider != nil {
		overlay = overlayProvider()
	}
	overlayMu.RUnlock()
	return newCatalog(baseTable, overlay)
})

// Default returns the process-wide keyword catalog: the built-in table
// merged with whatever overlay provider was registered via
// SetOverlayProvider before the first call. Construction happens exactly
// once; later SetOverlayProvider calls have no effect.
func Default() *Catalog {
	return buildDefault()
}

var (
	overlayMu       sync.RWMutex
	overlayProvider func() map[string]Entry
)

// SetOverlayProvider registers a function supplying additional catalog
// entries — e.g. release groups learned by an external tool and persisted in
// a store — to be merged into the default catalog the first time Default()
// is called. Entries returned by the overlay win over base-table entries
// with the same key. Must be called before Default() is first invoked;
// calls after that point are silently ignored since the catalog has already
// been built.
func SetOverlayProvider(provider func() map[string]Entry) {
	overlayMu.Lock()
	defer overlayMu.Unlock()
	overlayProvider = provider
}

// baseTable is the built-in keyword dictionary. Keys are matched
// case-insensitively by Catalog.Lookup.
var baseTable = map[string]Entry{
	// File extensions
	"mkv": {Kind: FileExtension}, "mp4": {Kind: FileExtension}, "avi": {Kind: FileExtension},
	"wmv": {Kind: FileExtension}, "mov": {Kind: FileExtension}, "flv": {Kind: FileExtension},
	"ogm": {Kind: FileExtension}, "ts": {Kind: FileExtension}, "m2ts": {Kind: FileExtension},
	"webm": {Kind: FileExtension}, "iso": {Kind: FileExtension}, "rmvb": {Kind: FileExtension},

	// Video codec
	"h264": {Kind: VideoCodec}, "h265": {Kind: VideoCodec}, "x264": {Kind: VideoCodec},
	"x265": {Kind: VideoCodec}, "hevc": {Kind: VideoCodec}, "avc": {Kind: VideoCodec},
	"divx": {Kind: VideoCodec}, "xvid": {Kind: VideoCodec}, "vp9": {Kind: VideoCodec},
	"av1": {Kind: VideoCodec},

	// Video color depth / format / profile / quality
	"8bit": {Kind: VideoColorDepth}, "10bit": {Kind: VideoColorDepth}, "hi10p": {Kind: VideoColorDepth},
	"10bits": {Kind: VideoColorDepth},
	"yuv420p10": {Kind: VideoFormat},
	"main10":    {Kind: VideoProfile}, "main": {Kind: VideoProfile, Ambiguous: true}, "high": {Kind: VideoProfile, Ambiguous: true},
	"hdr": {Kind: VideoQuality}, "hdr10": {Kind: VideoQuality}, "dv": {Kind: VideoQuality, Ambiguous: true},
	"sdr": {Kind: VideoQuality},
	"24fps": {Kind: VideoFrameRate}, "30fps": {Kind: VideoFrameRate}, "60fps": {Kind: VideoFrameRate},

	// Audio codec / channels / language
	"aac": {Kind: AudioCodec}, "flac": {Kind: AudioCodec}, "mp3": {Kind: AudioCodec},
	"ac3": {Kind: AudioCodec}, "dts": {Kind: AudioCodec}, "opus": {Kind: AudioCodec},
	"vorbis": {Kind: AudioCodec}, "truehd": {Kind: AudioCodec}, "eac3": {Kind: AudioCodec},
	"stereo": {Kind: AudioChannels}, "mono": {Kind: AudioChannels},
	"dual": {Kind: AudioLanguage, Ambiguous: true}, "multi": {Kind: AudioLanguage, Ambiguous: true},

	// Language / subtitles
	"jpn": {Kind: Language}, "eng": {Kind: Language}, "english": {Kind: Language, Ambiguous: true},
	"japanese": {Kind: Language, Ambiguous: true}, "chs": {Kind: Language}, "cht": {Kind: Language},
	"subbed": {Kind: Subtitles}, "dubbed": {Kind: Subtitles}, "softsubs": {Kind: Subtitles},
	"hardsubs": {Kind: Subtitles}, "raw": {Kind: Subtitles, Ambiguous: true},

	// Source
	"bd": {Kind: Source}, "bdrip": {Kind: Source}, "bluray": {Kind: Source},
	"dvd": {Kind: Source}, "dvdrip": {Kind: Source}, "web": {Kind: Source, Ambiguous: true},
	"webrip": {Kind: Source}, "webdl": {Kind: Source},
	"hdtv": {Kind: Source}, "tv": {Kind: Source, Ambiguous: true}, "remux": {Kind: ReleaseInformation},

	// Type / episode type
	"movie": {Kind: Type}, "ova": {Kind: EpisodeType, Ambiguous: true}, "ona": {Kind: EpisodeType, Ambiguous: true},
	"oad": {Kind: EpisodeType}, "special": {Kind: EpisodeType, Ambiguous: true}, "sp": {Kind: EpisodeType, Ambiguous: true},
	"nced": {Kind: EpisodeType}, "ncop": {Kind: EpisodeType}, "preview": {Kind: EpisodeType},

	// Device compatibility
	"ipod": {Kind: DeviceCompatibility}, "ipad": {Kind: DeviceCompatibility},
	"android": {Kind: DeviceCompatibility, Ambiguous: true}, "ps3": {Kind: DeviceCompatibility},

	// Release information
	"uncensored": {Kind: ReleaseInformation}, "censored": {Kind: ReleaseInformation},
	"complete": {Kind: ReleaseInformation}, "batch": {Kind: ReleaseInformation},
	"end": {Kind: ReleaseInformation, Ambiguous: true},

	// Structural markers
	"season":  {Kind: Season},
	"part":    {Kind: Part},
	"volume":  {Kind: Volume},
	"vol":     {Kind: Volume},
	"episode": {Kind: Episode},

	// Other
	"remastered": {Kind: Other},
}
