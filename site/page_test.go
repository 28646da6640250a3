package site

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParsePage(t *testing.T) {
	Convey("Page parsing", t, func() {
		Convey("Frontmatter and body are split", func() {
			raw := "---\ntitle: Intro to Python\norder: 1\nvideo:\n  id: abc123\n---\n\n# Hello\n\nbody text\n"

			page, err := ParsePage("python/intro.md", []byte(raw))
			So(err, ShouldBeNil)
			So(page.Title, ShouldEqual, "Intro to Python")
			So(page.Order, ShouldEqual, 1)
			So(page.Video.ID, ShouldEqual, "abc123")
			So(page.Body, ShouldStartWith, "# Hello")
			So(page.Route, ShouldEqual, "/python/intro/")
			So(page.Slug, ShouldEqual, "intro")
		})

		Convey("Missing frontmatter falls back to the first heading", func() {
			page, err := ParsePage("css/flexbox.md", []byte("# Flexbox Basics\n\ntext"))
			So(err, ShouldBeNil)
			So(page.Title, ShouldEqual, "Flexbox Basics")
			So(page.Draft, ShouldBeFalse)
		})

		Convey("No heading falls back to the slug", func() {
			page, err := ParsePage("js/arrow-functions.md", []byte("plain text"))
			So(err, ShouldBeNil)
			So(page.Title, ShouldEqual, "Arrow functions")
		})

		Convey("Unterminated frontmatter is an error", func() {
			_, err := ParsePage("bad.md", []byte("---\ntitle: x\nno closing"))
			So(err, ShouldNotBeNil)
		})

		Convey("Index files collapse onto their directory", func() {
			page, err := ParsePage("python/index.md", []byte("# Python"))
			So(err, ShouldBeNil)
			So(page.Route, ShouldEqual, "/python/")
			So(page.OutputPath(), ShouldEqual, "python/index.html")

			root, err := ParsePage("index.md", []byte("# Home"))
			So(err, ShouldBeNil)
			So(root.Route, ShouldEqual, "/")
			So(root.OutputPath(), ShouldEqual, "index.html")
		})
	})
}

func TestVideoRef(t *testing.T) {
	Convey("Video declaration", t, func() {
		Convey("Maps onto the embed configuration", func() {
			ref := VideoRef{Src: "/videos/demo.mp4", Poster: "/img/p.png", Width: "640px", Autoplay: true}
			cfg := ref.EmbedConfig()

			So(cfg.ExternalID.IsAbsent(), ShouldBeTrue)
			So(cfg.Source.MustGet(), ShouldEqual, "/videos/demo.mp4")
			So(cfg.Poster.MustGet(), ShouldEqual, "/img/p.png")
			So(cfg.Width, ShouldEqual, "640px")
			So(cfg.Autoplay, ShouldBeTrue)
		})

		Convey("Zero value is detectable", func() {
			So(VideoRef{}.IsZero(), ShouldBeTrue)
			So(VideoRef{ID: "abc"}.IsZero(), ShouldBeFalse)
		})
	})
}
