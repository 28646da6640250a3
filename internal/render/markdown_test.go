package render

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/key"
	"github.com/tsumiki-site/tsumiki/plugin"
)

func init() {
	filesystem.SetMemMapFs()
	viper.SetDefault(key.BuildHighlightStyle, "monokai")
}

func TestMarkdown(t *testing.T) {
	r := NewRenderer(nil)

	Convey("Markdown rendering", t, func() {
		Convey("Headings and emphasis", func() {
			html, err := r.Markdown("# Title\n\nSome *emphasis*.")
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, "<h1")
			So(string(html), ShouldContainSubstring, "<em>emphasis</em>")
		})

		Convey("GFM tables", func() {
			html, err := r.Markdown("| a | b |\n|---|---|\n| 1 | 2 |")
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, "<table>")
		})

		Convey("Fenced code blocks are highlighted", func() {
			html, err := r.Markdown("```python\nprint('hi')\n```")
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, "<pre")
			So(string(html), ShouldContainSubstring, "style=")
		})

		Convey("Video shortcode renders the media embed", func() {
			html, err := r.Markdown(`{{< video id="abc123" >}}`)
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, "https://www.youtube.com/embed/abc123")
		})

		Convey("Video shortcode with a direct source", func() {
			html, err := r.Markdown(`{{< video src="/videos/demo.mp4" poster="/img/p.png" >}}`)
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, "<video controls playsinline")
			So(string(html), ShouldContainSubstring, `poster="/img/p.png"`)
		})

		Convey("Callout shortcode renders its markdown body", func() {
			html, err := r.Markdown("{{< callout kind=\"warning\" >}}Mind the *gap*{{< /callout >}}")
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, "callout--warning")
			So(string(html), ShouldContainSubstring, "<em>gap</em>")
		})

		Convey("Counter shortcode", func() {
			html, err := r.Markdown(`{{< counter start="2" >}}`)
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, `data-count="2"`)
		})

		Convey("Unknown shortcode is an error", func() {
			_, err := r.Markdown(`{{< nope >}}`)
			So(err, ShouldNotBeNil)
		})

		Convey("Plugin shortcodes are consulted for unknown names", func() {
			fs := filesystem.API()
			_ = fs.MkdirAll("/plugs", 0755)
			_ = fs.WriteFile("/plugs/badge.lua", []byte(`Shortcodes = { badge = function(attrs) return '<b>' .. attrs.text .. '</b>' end }`), 0644)

			registry, err := plugin.LoadDir("/plugs")
			So(err, ShouldBeNil)
			defer registry.Close()

			withPlugins := NewRenderer(registry)
			html, err := withPlugins.Markdown(`{{< badge text="new" >}}`)
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, "<b>new</b>")
		})
	})
}

func TestHighlightStyle(t *testing.T) {
	Convey("Highlight style validation", t, func() {
		viper.Set(key.BuildHighlightStyle, "monokai")
		So(highlightStyle(), ShouldEqual, "monokai")

		viper.Set(key.BuildHighlightStyle, "definitely-not-a-style")
		So(highlightStyle(), ShouldEqual, fallbackHighlightStyle)

		viper.Set(key.BuildHighlightStyle, "monokai")
	})
}
