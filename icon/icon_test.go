package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tsumiki-site/tsumiki/key"
)

func TestIcons(t *testing.T) {
	Convey("Icons", t, func() {
		Convey("Plain variant", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Success), ShouldEqual, "[ok]")
			So(Get(Fail), ShouldEqual, "[fail]")
		})

		Convey("Emoji variant", func() {
			viper.Set(key.IconsVariant, "emoji")
			So(Get(Build), ShouldEqual, "🔨")
		})

		Convey("Unknown variant yields empty string", func() {
			viper.Set(key.IconsVariant, "nope")
			So(Get(Success), ShouldBeEmpty)
		})

		Convey("Variants registry", func() {
			So(AvailableVariants(), ShouldContain, "nerd")
			So(len(AvailableVariants()), ShouldEqual, 5)
		})
	})
}
