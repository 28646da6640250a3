package check

import (
	"context"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tsumiki-site/tsumiki/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func writeOutput(t *testing.T, outDir string, files map[string]string) {
	t.Helper()
	fs := filesystem.API()
	for name, content := range files {
		path := filepath.Join(outDir, name)
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestExtractRefs(t *testing.T) {
	Convey("Reference extraction", t, func() {
		doc := []byte(`<html><head>
			<link rel="stylesheet" href="/assets/site.css">
			<script src="/assets/app.js"></script>
		</head><body>
			<a href="/guide/">guide</a>
			<a href="https://example.com/docs">docs</a>
			<img src="/img/logo.png">
			<video poster="/img/poster.jpg"><source src="/videos/intro.mp4"></video>
		</body></html>`)

		refs := extractRefs(doc)
		So(refs, ShouldContain, "/assets/site.css")
		So(refs, ShouldContain, "/assets/app.js")
		So(refs, ShouldContain, "/guide/")
		So(refs, ShouldContain, "https://example.com/docs")
		So(refs, ShouldContain, "/img/logo.png")
		So(refs, ShouldContain, "/img/poster.jpg")
		So(refs, ShouldContain, "/videos/intro.mp4")
	})
}

func TestClassify(t *testing.T) {
	Convey("Reference classification", t, func() {
		So(classify("/guide/"), ShouldEqual, linkInternal)
		So(classify("../sibling/"), ShouldEqual, linkInternal)
		So(classify("https://example.com"), ShouldEqual, linkExternal)
		So(classify("//cdn.example.com/lib.js"), ShouldEqual, linkExternal)
		So(classify("#section"), ShouldEqual, linkSkipped)
		So(classify("mailto:team@example.com"), ShouldEqual, linkSkipped)
		So(classify(""), ShouldEqual, linkSkipped)
	})
}

func TestRun(t *testing.T) {
	Convey("Link scan", t, func() {
		outDir := t.TempDir()
		writeOutput(t, outDir, map[string]string{
			"index.html": `<html><body>
				<a href="/guide/setup/">good route</a>
				<a href="/guide/missing/">bad route</a>
				<img src="/img/logo.png">
				<a href="#top">fragment</a>
			</body></html>`,
			"guide/setup/index.html": `<html><body><a href="/">home</a></body></html>`,
			"img/logo.png":           "png-bytes",
		})

		Convey("Reports missing internal routes only", func() {
			report, err := Run(context.Background(), &Options{OutDir: outDir})
			So(err, ShouldBeNil)
			So(len(report.Issues), ShouldEqual, 1)
			So(report.Issues[0].URL, ShouldEqual, "/guide/missing/")
			So(report.Issues[0].Page, ShouldEqual, "index.html")
			So(report.Issues[0].Reason, ShouldEqual, "no such route")
		})

		Convey("Counts every checkable reference", func() {
			report, err := Run(context.Background(), &Options{OutDir: outDir})
			So(err, ShouldBeNil)
			So(report.Checked, ShouldEqual, 5)
		})

		Convey("Routes with query strings and fragments resolve", func() {
			So(internalExists(outDir, "/guide/setup/?ref=nav"), ShouldBeTrue)
			So(internalExists(outDir, "/guide/setup/#install"), ShouldBeTrue)
			So(internalExists(outDir, "/img/logo.png"), ShouldBeTrue)
			So(internalExists(outDir, "/img/nope.png"), ShouldBeFalse)
		})

		Convey("A missing output directory is an error", func() {
			_, err := Run(context.Background(), &Options{OutDir: filepath.Join(outDir, "nope")})
			So(err, ShouldNotBeNil)
		})
	})
}
