package component

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCallout(t *testing.T) {
	Convey("Callout", t, func() {
		Convey("Known kind with explicit title", func() {
			html, err := Callout{Kind: "warning", Title: "Watch out", Body: "<p>hot</p>"}.Render()
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, `callout--warning`)
			So(string(html), ShouldContainSubstring, "Watch out")
			So(string(html), ShouldContainSubstring, "<p>hot</p>")
		})

		Convey("Missing title falls back to the kind label", func() {
			html, err := Callout{Kind: "danger", Body: "x"}.Render()
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, "DANGER")
		})

		Convey("Unknown kind falls back to tip", func() {
			html, err := Callout{Kind: "banana", Body: "x"}.Render()
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, `callout--tip`)
			So(string(html), ShouldContainSubstring, "TIP")
		})
	})
}

func TestCounter(t *testing.T) {
	Convey("Counter", t, func() {
		Convey("Default label", func() {
			html, err := Counter{}.Render()
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, `data-count="0"`)
			So(string(html), ShouldContainSubstring, "Clicked 0 times")
		})

		Convey("Custom label and start", func() {
			html, err := Counter{Start: 3, Label: "Score"}.Render()
			So(err, ShouldBeNil)
			So(string(html), ShouldContainSubstring, `data-count="3"`)
			So(string(html), ShouldContainSubstring, "Score: 3")
		})
	})
}
