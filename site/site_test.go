package site

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tsumiki-site/tsumiki/constant"
	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/key"
)

func init() {
	filesystem.SetMemMapFs()
	viper.SetDefault(key.SiteTitle, "My Tutorial Site")
	viper.SetDefault(key.SiteBaseURL, "/")
}

const sampleConfig = `title: Learn to Code
description: Free programming tutorials
nav:
  - text: Python
    link: /python/
  - text: More
    items:
      - text: CSS
        link: /css/
sidebar:
  /python/:
    - title: Basics
      collapsible: true
      children:
        - /python/intro/
        - /python/variables/
  /:
    - title: Start here
      children:
        - /
`

func writeConfig(root, content string) {
	fs := filesystem.API()
	_ = fs.MkdirAll(root, 0755)
	_ = fs.WriteFile(filepath.Join(root, constant.SiteConfigFile), []byte(content), 0644)
}

func TestLoad(t *testing.T) {
	Convey("Site config loading", t, func() {
		writeConfig("/proj", sampleConfig)

		cfg, err := Load("/proj")
		So(err, ShouldBeNil)
		So(cfg.Title, ShouldEqual, "Learn to Code")
		So(cfg.BaseURL, ShouldEqual, "/")
		So(len(cfg.Nav), ShouldEqual, 2)
		So(cfg.Nav[1].Items[0].Link, ShouldEqual, "/css/")

		Convey("Missing title falls back to the configured default", func() {
			writeConfig("/bare", "description: nothing else\n")
			cfg, err := Load("/bare")
			So(err, ShouldBeNil)
			So(cfg.Title, ShouldEqual, "My Tutorial Site")
		})

		Convey("Base URL is slash-terminated", func() {
			writeConfig("/docs", "title: T\nbase_url: /docs\n")
			cfg, err := Load("/docs")
			So(err, ShouldBeNil)
			So(cfg.BaseURL, ShouldEqual, "/docs/")
		})

		Convey("Missing file is an error", func() {
			_, err := Load("/nope")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSidebarFor(t *testing.T) {
	Convey("Sidebar resolution", t, func() {
		writeConfig("/proj", sampleConfig)
		cfg, err := Load("/proj")
		So(err, ShouldBeNil)

		Convey("Longest prefix wins", func() {
			groups := cfg.SidebarFor("/python/intro/")
			So(len(groups), ShouldEqual, 1)
			So(groups[0].Title, ShouldEqual, "Basics")
		})

		Convey("Root prefix catches everything else", func() {
			groups := cfg.SidebarFor("/css/flexbox/")
			So(len(groups), ShouldEqual, 1)
			So(groups[0].Title, ShouldEqual, "Start here")
		})
	})
}

func TestConfigSchema(t *testing.T) {
	Convey("Schema reflection", t, func() {
		schema := ConfigSchema()
		So(schema, ShouldNotBeNil)
	})
}
