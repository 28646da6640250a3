package query

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/key"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		Convey("When remembering queries", func() {
			So(Remember("installation", 1), ShouldBeNil)
			So(Remember("interfaces", 10), ShouldBeNil)

			Convey("Then suggestions are sorted by rank", func() {
				// Force a read from the persistent store.
				suggestionCache = make(map[string][]*queryRecord)

				s := SuggestMany("inte")
				So(len(s), ShouldBeGreaterThanOrEqualTo, 1)
				So(s[0], ShouldEqual, "interfaces")
			})

			Convey("It sanitizes input", func() {
				So(sanitize("  Interfaces  "), ShouldEqual, "interfaces")
			})

			Convey("Suggest returns the top match", func() {
				suggestionCache = make(map[string][]*queryRecord)

				So(Suggest("inte").OrElse(""), ShouldEqual, "interfaces")
				So(Suggest("zzz").IsAbsent(), ShouldBeTrue)
			})
		})
	})
}
