package config

import (
	"testing"

	convey "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	convey.Convey("Config setup", t, func() {
		convey.So(Setup(), convey.ShouldBeNil)

		convey.Convey("Should apply registered defaults", func() {
			convey.So(viper.GetInt(key.ServePort), convey.ShouldEqual, 1313)
			convey.So(viper.GetBool(key.BuildMinify), convey.ShouldBeTrue)
			convey.So(viper.GetBool(key.BuildDrafts), convey.ShouldBeFalse)
			convey.So(viper.GetString(key.BuildHighlightStyle), convey.ShouldEqual, "monokai")
		})
	})
}

func TestField(t *testing.T) {
	convey.Convey("Config field", t, func() {
		field, ok := Default[key.ServePort]
		convey.So(ok, convey.ShouldBeTrue)

		convey.Convey("Env name carries the application prefix", func() {
			convey.So(field.Env(), convey.ShouldEqual, "TSUMIKI_SERVE_PORT")
		})

		convey.Convey("Pretty output mentions the key", func() {
			convey.So(field.Pretty(), convey.ShouldContainSubstring, key.ServePort)
		})
	})
}

func TestReset(t *testing.T) {
	convey.Convey("Reset", t, func() {
		viper.Set(key.ServePort, 9999)
		convey.So(Reset(key.ServePort), convey.ShouldBeTrue)
		convey.So(viper.GetInt(key.ServePort), convey.ShouldEqual, 1313)

		convey.Convey("Unknown key is rejected", func() {
			convey.So(Reset("no.such.key"), convey.ShouldBeFalse)
		})
	})
}
