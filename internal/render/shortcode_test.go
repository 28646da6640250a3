package render

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExpandShortcodes(t *testing.T) {
	echo := func(name string, attrs map[string]string, inner string) (string, error) {
		return fmt.Sprintf("[%s:%s:%s]", name, attrs["x"], inner), nil
	}

	Convey("Shortcode expansion", t, func() {
		Convey("Plain text passes through unchanged", func() {
			out, err := ExpandShortcodes("# Heading\n\ntext", echo)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "# Heading\n\ntext")
		})

		Convey("Self-standing shortcode", func() {
			out, err := ExpandShortcodes(`before {{< video x="1" >}} after`, echo)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "before [video:1:] after")
		})

		Convey("Paired shortcode captures inner content", func() {
			out, err := ExpandShortcodes(`{{< callout x="tip" >}}note{{< /callout >}}`, echo)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "[callout:tip:note]")
		})

		Convey("Nested shortcodes expand innermost first", func() {
			out, err := ExpandShortcodes(`{{< callout x="a" >}}{{< video x="b" >}}{{< /callout >}}`, echo)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "[callout:a:[video:b:]]")
		})

		Convey("Multiple attributes are parsed", func() {
			var got map[string]string
			_, err := ExpandShortcodes(`{{< video id="abc" width="640px" >}}`, func(_ string, attrs map[string]string, _ string) (string, error) {
				got = attrs
				return "", nil
			})
			So(err, ShouldBeNil)
			So(got["id"], ShouldEqual, "abc")
			So(got["width"], ShouldEqual, "640px")
		})

		Convey("Resolver errors carry the shortcode name", func() {
			_, err := ExpandShortcodes(`{{< broken >}}`, func(string, map[string]string, string) (string, error) {
				return "", fmt.Errorf("boom")
			})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `shortcode "broken"`)
		})
	})
}
