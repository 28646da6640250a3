package embed

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Playback mode selection", t, func() {
		Convey("External identifier selects the hosted player", func() {
			p := Resolve(Config{ExternalID: mo.Some("abc123")})

			external, ok := p.(External)
			So(ok, ShouldBeTrue)
			So(external.URL, ShouldEqual, "https://www.youtube.com/embed/abc123")
		})

		Convey("External identifier wins over a direct source", func() {
			p := Resolve(Config{
				ExternalID: mo.Some("abc123"),
				Source:     mo.Some("/videos/demo.mp4"),
			})

			external, ok := p.(External)
			So(ok, ShouldBeTrue)
			So(external.URL, ShouldEqual, ProviderBaseURL+"abc123")
		})

		Convey("Direct source selects native playback", func() {
			p := Resolve(Config{
				Source: mo.Some("/videos/demo.mp4"),
				Poster: mo.Some("/img/poster.png"),
			})

			native, ok := p.(Native)
			So(ok, ShouldBeTrue)
			So(native.Source, ShouldEqual, "/videos/demo.mp4")
			So(native.Poster, ShouldEqual, "/img/poster.png")
			So(native.Autoplay, ShouldBeFalse)
		})

		Convey("Autoplay passes through to native mode", func() {
			p := Resolve(Config{Source: mo.Some("/videos/demo.mp4"), Autoplay: true})

			native, ok := p.(Native)
			So(ok, ShouldBeTrue)
			So(native.Autoplay, ShouldBeTrue)
		})

		Convey("No media reference falls through to the empty mode", func() {
			_, ok := Resolve(Config{}).(Empty)
			So(ok, ShouldBeTrue)
		})

		Convey("Empty strings behave like absent fields", func() {
			p := Resolve(Config{
				ExternalID: mo.Some(""),
				Source:     mo.Some(""),
			})

			_, ok := p.(Empty)
			So(ok, ShouldBeTrue)
		})

		Convey("Empty external identifier yields native mode when a source exists", func() {
			p := Resolve(Config{
				ExternalID: mo.Some(""),
				Source:     mo.Some("/videos/demo.mp4"),
			})

			_, ok := p.(Native)
			So(ok, ShouldBeTrue)
		})

		Convey("Selection is idempotent", func() {
			cfg := Config{ExternalID: mo.Some("abc123")}

			first := Resolve(cfg)
			second := Resolve(cfg)
			So(first, ShouldResemble, second)
		})

		Convey("URL-breaking identifiers are escaped", func() {
			p := Resolve(Config{ExternalID: mo.Some("a/b?c")})

			external, ok := p.(External)
			So(ok, ShouldBeTrue)
			So(external.URL, ShouldEqual, ProviderBaseURL+"a%2Fb%3Fc")
		})
	})
}

func TestConfigWidth(t *testing.T) {
	Convey("Container width", t, func() {
		Convey("Defaults to 100%", func() {
			So(Config{}.width(), ShouldEqual, "100%")
		})

		Convey("Explicit value is preserved", func() {
			So(Config{Width: "640px"}.width(), ShouldEqual, "640px")
		})
	})
}
