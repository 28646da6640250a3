package build

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/key"
)

func init() {
	filesystem.SetMemMapFs()
	viper.SetDefault(key.BuildHighlightStyle, "monokai")
	viper.SetDefault(key.BuildMinify, false)
	viper.SetDefault(key.BuildCache, false)
}

func writeProject(t *testing.T, root string, files map[string]string) {
	t.Helper()
	fs := filesystem.API()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRun(t *testing.T) {
	Convey("Build", t, func() {
		root := t.TempDir()
		writeProject(t, root, map[string]string{
			"site.yml": "title: Demo Site\naccent: \"#123456\"\n",
			"content/index.md": `---
title: Welcome
---
# Welcome

Hello there.`,
			"content/guide/setup.md": `---
title: Setup
order: 1
video:
  id: dQw4w9WgXcQ
---
Install the tool.`,
			"content/guide/secret.md": `---
title: Secret
draft: true
---
Not yet.`,
			"static/robots.txt": "User-agent: *\n",
		})

		Convey("Renders every page into pretty URLs", func() {
			result, err := Run(&Options{Root: root})
			So(err, ShouldBeNil)
			So(result.Site.Title, ShouldEqual, "Demo Site")
			So(len(result.Pages), ShouldEqual, 2)

			fs := filesystem.API()
			index, err := fs.ReadFile(filepath.Join(root, "dist", "index.html"))
			So(err, ShouldBeNil)
			So(string(index), ShouldContainSubstring, "Hello there.")
			So(string(index), ShouldContainSubstring, "Demo Site")

			setup, err := fs.ReadFile(filepath.Join(root, "dist", "guide", "setup", "index.html"))
			So(err, ShouldBeNil)
			So(string(setup), ShouldContainSubstring, "https://www.youtube.com/embed/dQw4w9WgXcQ")
		})

		Convey("Drafts are skipped and counted", func() {
			result, err := Run(&Options{Root: root})
			So(err, ShouldBeNil)
			So(result.Drafts, ShouldEqual, 1)

			exists, _ := filesystem.API().Exists(filepath.Join(root, "dist", "guide", "secret", "index.html"))
			So(exists, ShouldBeFalse)
		})

		Convey("Drafts build when enabled", func() {
			viper.Set(key.BuildDrafts, true)
			defer viper.Set(key.BuildDrafts, false)

			result, err := Run(&Options{Root: root})
			So(err, ShouldBeNil)
			So(result.Drafts, ShouldEqual, 0)
			So(len(result.Pages), ShouldEqual, 3)
		})

		Convey("Static files are mirrored", func() {
			_, err := Run(&Options{Root: root})
			So(err, ShouldBeNil)

			robots, err := filesystem.API().ReadFile(filepath.Join(root, "dist", "robots.txt"))
			So(err, ShouldBeNil)
			So(string(robots), ShouldContainSubstring, "User-agent")
		})

		Convey("The theme stylesheet is written", func() {
			_, err := Run(&Options{Root: root})
			So(err, ShouldBeNil)

			exists, _ := filesystem.API().Exists(filepath.Join(root, "dist", "assets", "site.css"))
			So(exists, ShouldBeTrue)
		})

		Convey("The render cache serves unchanged pages", func() {
			viper.Set(key.BuildCache, true)
			defer viper.Set(key.BuildCache, false)

			first, err := Run(&Options{Root: root})
			So(err, ShouldBeNil)
			So(first.Cached, ShouldEqual, 0)

			second, err := Run(&Options{Root: root})
			So(err, ShouldBeNil)
			So(second.Cached, ShouldEqual, len(second.Pages))
		})

		Convey("Missing content directory is an error", func() {
			empty := t.TempDir()
			writeProject(t, empty, map[string]string{"site.yml": "title: Empty\n"})

			_, err := Run(&Options{Root: empty})
			So(err, ShouldNotBeNil)
		})

		Convey("Custom output directory is honored", func() {
			out := filepath.Join(t.TempDir(), "public")
			_, err := Run(&Options{Root: root, OutDir: out})
			So(err, ShouldBeNil)

			exists, _ := filesystem.API().Exists(filepath.Join(out, "index.html"))
			So(exists, ShouldBeTrue)
		})
	})
}

func TestPageHash(t *testing.T) {
	Convey("Page hashing", t, func() {
		root := t.TempDir()
		writeProject(t, root, map[string]string{
			"content/a.md": "# A\n\nbody",
		})

		pages, _, err := collectPages(filepath.Join(root, "content"))
		So(err, ShouldBeNil)
		So(len(pages), ShouldEqual, 1)

		Convey("Is stable for identical input", func() {
			So(pageHash(pages[0], "s", false), ShouldEqual, pageHash(pages[0], "s", false))
		})

		Convey("Changes with the site hash", func() {
			So(pageHash(pages[0], "s", false), ShouldNotEqual, pageHash(pages[0], "t", false))
		})

		Convey("Changes with the minify flag", func() {
			So(pageHash(pages[0], "s", false), ShouldNotEqual, pageHash(pages[0], "s", true))
		})
	})
}
