package embed

import (
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRender(t *testing.T) {
	Convey("Media embed rendering", t, func() {
		Convey("External mode renders an aspect-locked iframe", func() {
			html, err := Render(Config{ExternalID: mo.Some("abc123")})
			So(err, ShouldBeNil)

			s := string(html)
			So(s, ShouldContainSubstring, `src="https://www.youtube.com/embed/abc123"`)
			So(s, ShouldContainSubstring, "padding-bottom: 56.25%")
			So(s, ShouldContainSubstring, "allowfullscreen")
			So(s, ShouldContainSubstring, "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture")
			So(s, ShouldNotContainSubstring, "<video")
		})

		Convey("External mode ignores poster and autoplay", func() {
			html, err := Render(Config{
				ExternalID: mo.Some("abc123"),
				Poster:     mo.Some("/img/poster.png"),
				Autoplay:   true,
			})
			So(err, ShouldBeNil)

			s := string(html)
			So(s, ShouldNotContainSubstring, "poster=")
			So(s, ShouldNotContainSubstring, "<video")
		})

		Convey("Native mode renders a video element with one source", func() {
			html, err := Render(Config{
				Source: mo.Some("/videos/demo.mp4"),
				Poster: mo.Some("/img/poster.png"),
			})
			So(err, ShouldBeNil)

			s := string(html)
			So(s, ShouldContainSubstring, "<video controls playsinline")
			So(s, ShouldContainSubstring, `poster="/img/poster.png"`)
			So(s, ShouldContainSubstring, `<source src="/videos/demo.mp4" type="video/mp4">`)
			So(s, ShouldContainSubstring, "Your browser does not support the video tag.")
			So(strings.Count(s, "<source"), ShouldEqual, 1)
			So(s, ShouldNotContainSubstring, "<iframe")
			So(s, ShouldNotContainSubstring, " autoplay")
		})

		Convey("Native autoplay is emitted when enabled", func() {
			html, err := Render(Config{Source: mo.Some("/videos/demo.mp4"), Autoplay: true})
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, " autoplay>")
		})

		Convey("Empty mode renders the container alone", func() {
			html, err := Render(Config{})
			So(err, ShouldBeNil)

			s := string(html)
			So(s, ShouldContainSubstring, `class="media-embed"`)
			So(s, ShouldNotContainSubstring, "<iframe")
			So(s, ShouldNotContainSubstring, "<video")
		})

		Convey("Width constrains the container in every mode", func() {
			for _, cfg := range []Config{
				{ExternalID: mo.Some("abc123"), Width: "640px"},
				{Source: mo.Some("/videos/demo.mp4"), Width: "640px"},
				{Width: "640px"},
			} {
				html, err := Render(cfg)
				So(err, ShouldBeNil)
				So(string(html), ShouldContainSubstring, "max-width: 640px;")
			}
		})

		Convey("Width defaults to 100% when unset", func() {
			html, err := Render(Config{ExternalID: mo.Some("abc123")})
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, "max-width: 100%;")
		})
	})
}
