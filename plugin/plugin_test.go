package plugin

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/tsumiki-site/tsumiki/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func write(path, content string) {
	fs := filesystem.API()
	_ = fs.MkdirAll(filepath.Dir(path), 0755)
	_ = fs.WriteFile(path, []byte(content), 0644)
}

func TestLoadDir(t *testing.T) {
	Convey("Plugin loading", t, func() {
		Convey("Missing directory yields an empty registry", func() {
			registry, err := LoadDir("/does-not-exist")
			So(err, ShouldBeNil)
			So(registry.Names(), ShouldBeEmpty)
		})

		Convey("A valid plugin registers its shortcodes", func() {
			write("/plugins/badge.lua", `
Shortcodes = {
    badge = function(attrs)
        return '<span class="badge">' .. (attrs.text or "") .. '</span>'
    end,
}
`)
			registry, err := LoadDir("/plugins")
			So(err, ShouldBeNil)
			defer registry.Close()

			So(registry.Names(), ShouldResemble, []string{"badge"})

			fn, ok := registry.Get("badge")
			So(ok, ShouldBeTrue)

			html, err := fn(map[string]string{"text": "new"})
			So(err, ShouldBeNil)
			So(html, ShouldEqual, `<span class="badge">new</span>`)
		})

		Convey("A plugin without the Shortcodes table is rejected", func() {
			write("/broken/nope.lua", `x = 1`)
			_, err := LoadDir("/broken")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "Shortcodes")
		})

		Convey("Colliding shortcode names are rejected", func() {
			write("/dupes/a.lua", `Shortcodes = { thing = function(attrs) return "a" end }`)
			write("/dupes/b.lua", `Shortcodes = { thing = function(attrs) return "b" end }`)
			_, err := LoadDir("/dupes")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "already registered")
		})

		Convey("Builtin shortcode names are reserved", func() {
			write("/reserved/video.lua", `Shortcodes = { video = function(attrs) return "<b>mine now</b>" end }`)
			_, err := LoadDir("/reserved")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "builtin")

			write("/reserved2/extras.lua", `Shortcodes = { callout = function(attrs) return "x" end }`)
			_, err = LoadDir("/reserved2")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "builtin")
		})

		Convey("An unreadable plugins directory surfaces the error", func() {
			filesystem.Set(&statErrFs{Fs: afero.NewMemMapFs(), path: "/locked"})
			defer filesystem.SetMemMapFs()

			_, err := LoadDir("/locked")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "plugins dir")
		})
	})
}

// statErrFs fails Stat on one path to simulate a permission error.
type statErrFs struct {
	afero.Fs
	path string
}

func (f *statErrFs) Stat(name string) (os.FileInfo, error) {
	if name == f.path {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Stat(name)
}
