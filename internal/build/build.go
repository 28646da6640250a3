// Package build implements the site build pipeline: it walks the content
// tree, renders every page through the markdown pipeline, and writes the
// final documents and assets to the output directory.
package build

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/tsumiki-site/tsumiki/constant"
	"github.com/tsumiki-site/tsumiki/embed"
	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/internal/render"
	"github.com/tsumiki-site/tsumiki/key"
	"github.com/tsumiki-site/tsumiki/log"
	"github.com/tsumiki-site/tsumiki/plugin"
	"github.com/tsumiki-site/tsumiki/site"
)

// Options configures a single build run. Zero fields fall back to the global
// configuration.
type Options struct {
	// Root is the project directory holding site.yml and content/.
	Root string
	// OutDir overrides the output directory (default Root/dist).
	OutDir string
	// Progress, when set, receives human-readable status lines.
	Progress func(string)
}

// Result summarizes a finished build.
type Result struct {
	Site *site.Config
	// Pages holds every rendered page in display order.
	Pages []*site.Page
	// Cached counts pages restored from the render cache.
	Cached int
	// Drafts counts pages skipped because they are drafts.
	Drafts int
}

// outDir resolves the effective output directory.
func (o *Options) outDir() string {
	if o.OutDir != "" {
		return o.OutDir
	}
	return filepath.Join(o.Root, constant.OutputDir)
}

func (o *Options) progress(msg string) {
	if o.Progress != nil {
		o.Progress(msg)
	}
}

// Run executes the full build.
func Run(opts *Options) (*Result, error) {
	cfg, err := site.Load(opts.Root)
	if err != nil {
		return nil, err
	}

	plugins, err := plugin.LoadDir(filepath.Join(opts.Root, constant.PluginsDir))
	if err != nil {
		return nil, err
	}
	defer plugins.Close()

	renderer := render.NewRenderer(plugins)

	result := &Result{Site: cfg}

	pages, drafts, err := collectPages(filepath.Join(opts.Root, constant.ContentDir))
	if err != nil {
		return nil, err
	}
	result.Pages = pages
	result.Drafts = drafts

	outDir := opts.outDir()
	if viper.GetBool(key.BuildCleanOutput) {
		if err := filesystem.API().RemoveAll(outDir); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("clean output: %w", err)
		}
	}

	siteHash := configHash(opts.Root)
	useCache := viper.GetBool(key.BuildCache)
	minify := viper.GetBool(key.BuildMinify)

	for _, page := range pages {
		opts.progress(fmt.Sprintf("Rendering %s", page.Route))

		doc, fromCache, err := renderPage(renderer, cfg, page, siteHash, useCache, minify)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", page.Path, err)
		}
		if fromCache {
			result.Cached++
		}

		target := filepath.Join(outDir, filepath.FromSlash(page.OutputPath()))
		if err := writeFile(target, doc); err != nil {
			return nil, err
		}
	}

	if err := writeTheme(outDir, minify); err != nil {
		return nil, err
	}

	if err := copyStatic(filepath.Join(opts.Root, constant.StaticDir), outDir); err != nil {
		return nil, err
	}

	log.Infof("built %d pages (%d cached, %d drafts skipped)", len(pages), result.Cached, result.Drafts)
	return result, nil
}

// renderPage produces the final document for one page, consulting the
// persistent render cache first.
func renderPage(renderer *render.Renderer, cfg *site.Config, page *site.Page, siteHash string, useCache, minify bool) ([]byte, bool, error) {
	hash := pageHash(page, siteHash, minify)

	if useCache {
		if doc, ok := cacheGet(page.Path, hash); ok {
			return doc, true, nil
		}
	}

	content, err := renderer.Markdown(page.Body)
	if err != nil {
		return nil, false, err
	}

	var video template.HTML
	if !page.Video.IsZero() {
		video, err = embed.Render(page.Video.EmbedConfig())
		if err != nil {
			return nil, false, err
		}
	}

	doc, err := render.Layout(render.PageData{
		Site:    cfg,
		Page:    page,
		Sidebar: cfg.SidebarFor(page.Route),
		Content: content,
		Video:   video,
	})
	if err != nil {
		return nil, false, err
	}

	if minify {
		doc = render.MinifyHTML(doc)
	}

	if useCache {
		cachePut(page.Path, hash, doc)
	}
	return doc, false, nil
}

// Pages lists the site's pages without rendering anything. Used by the
// search and browse commands.
func Pages(root string) ([]*site.Page, error) {
	pages, _, err := collectPages(filepath.Join(root, constant.ContentDir))
	return pages, err
}

// collectPages walks the content tree and parses every markdown file,
// skipping drafts unless they are enabled.
func collectPages(contentDir string) ([]*site.Page, int, error) {
	fs := filesystem.API()

	exists, err := fs.DirExists(contentDir)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, fmt.Errorf("content directory %s does not exist", contentDir)
	}

	var (
		pages  []*site.Page
		drafts int
	)
	includeDrafts := viper.GetBool(key.BuildDrafts)

	err = fs.Walk(contentDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}

		data, err := fs.ReadFile(path)
		if err != nil {
			return err
		}

		page, err := site.ParsePage(rel, data)
		if err != nil {
			return err
		}

		if page.Draft && !includeDrafts {
			drafts++
			return nil
		}

		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	// Deterministic order: explicit frontmatter order first, then title.
	sort.SliceStable(pages, func(i, j int) bool {
		if pages[i].Order != pages[j].Order {
			return pages[i].Order < pages[j].Order
		}
		return pages[i].Title < pages[j].Title
	})

	return pages, drafts, nil
}

// copyStatic mirrors the static directory into the output tree.
func copyStatic(staticDir, outDir string) error {
	fs := filesystem.API()

	exists, err := fs.DirExists(staticDir)
	if err != nil || !exists {
		return err
	}

	return fs.Walk(staticDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		rel, err := filepath.Rel(staticDir, path)
		if err != nil {
			return err
		}

		data, err := fs.ReadFile(path)
		if err != nil {
			return err
		}

		return writeFile(filepath.Join(outDir, rel), data)
	})
}

// writeFile writes a build artifact, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	fs := filesystem.API()
	if err := fs.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return fs.WriteFile(path, data, 0644)
}
