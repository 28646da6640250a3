package embed

import "net/url"

// ProviderBaseURL is the fixed prefix used to construct a hosted player URL
// from an external video identifier.
const ProviderBaseURL = "https://www.youtube.com/embed/"

// Playback is the rendering mode selected for a media embed.
// Exactly one of External, Native or Empty is produced per Config.
type Playback interface {
	playback()
}

// External delegates playback to the hosting provider via an iframe.
type External struct {
	// URL of the embeddable player.
	URL string
}

// Native plays the media file directly through the platform video element.
type Native struct {
	Source   string
	Poster   string
	Autoplay bool
}

// Empty renders no playback element at all.
type Empty struct{}

func (External) playback() {}
func (Native) playback()   {}
func (Empty) playback()    {}

// Resolve selects the playback mode for a configuration.
//
// The selection is a strict priority order: a non-empty external identifier
// wins over a direct source, and a configuration carrying neither falls
// through to Empty rather than erroring. Poster and Autoplay are ignored
// outside native mode; the provider controls its own player semantics.
func Resolve(cfg Config) Playback {
	if id := cfg.ExternalID.OrElse(""); id != "" {
		// The identifier is path-escaped so a malformed one cannot break
		// out of the URL. Well-formed IDs pass through unchanged.
		return External{URL: ProviderBaseURL + url.PathEscape(id)}
	}

	if src := cfg.Source.OrElse(""); src != "" {
		return Native{
			Source:   src,
			Poster:   cfg.Poster.OrElse(""),
			Autoplay: cfg.Autoplay,
		}
	}

	return Empty{}
}
