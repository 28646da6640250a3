// Package icon provides a flexible multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/spf13/viper"
	"github.com/tsumiki-site/tsumiki/key"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a UI symbol in the global registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Search
	Page
	Link
	Build
	Serve
	Upload
)

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "[ok]", kaomoji: "(ﾉ´ヮ`)ﾉ*:･ﾟ✧", squares: "■"},
	Fail:     {emoji: "❌", nerd: "", plain: "[fail]", kaomoji: "(╯°□°）╯", squares: "□"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(・・;)", squares: "▣"},
	Search:   {emoji: "🔍", nerd: "", plain: "[?]", kaomoji: "(⌐■_■)", squares: "▢"},
	Page:     {emoji: "📄", nerd: "", plain: "[p]", kaomoji: "(＾▽＾)", squares: "▤"},
	Link:     {emoji: "🔗", nerd: "", plain: "[->]", kaomoji: "(つ≧▽≦)つ", squares: "▥"},
	Build:    {emoji: "🔨", nerd: "", plain: "[*]", kaomoji: "(ง°ل͜°)ง", squares: "▧"},
	Serve:    {emoji: "🌐", nerd: "", plain: "[~]", kaomoji: "(つ°ヮ°)つ", squares: "▨"},
	Upload:   {emoji: "🚀", nerd: "", plain: "[^]", kaomoji: "ᕕ( ᐛ )ᕗ", squares: "▩"},
}

// Get retrieves the visual representation for the receiver iconDef based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.Get()
}
