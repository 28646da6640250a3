// Package embed implements the built-in media embed component.
//
// A page references a video either by a third-party identifier (rendered as a
// hosted iframe player) or by a direct file path (rendered as a native video
// element). The component is a pure rendering-mode selection: it performs no
// I/O and never validates that the referenced media actually exists.
package embed

import "github.com/samber/mo"

// DefaultWidth is the maximum-width constraint applied when none is configured.
const DefaultWidth = "100%"

// Config carries the declarative options a page supplies for a single media embed.
// The zero value renders an empty container.
type Config struct {
	// ExternalID identifies a video hosted by the external provider.
	// Takes precedence over Source when both are present.
	ExternalID mo.Option[string]

	// Source is a direct locator of a media file (e.g. "/videos/demo.mp4").
	Source mo.Option[string]

	// Poster is a preview image shown before playback. Native mode only.
	Poster mo.Option[string]

	// Width is a CSS length applied as max-width on the outer container.
	// Empty means DefaultWidth.
	Width string

	// Autoplay starts native playback automatically. Native mode only.
	Autoplay bool
}

// width returns the effective container width.
func (c Config) width() string {
	if c.Width == "" {
		return DefaultWidth
	}
	return c.Width
}
