package site

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/samber/mo"
	"github.com/tsumiki-site/tsumiki/embed"
	"github.com/tsumiki-site/tsumiki/util"
)

// frontmatterDelimiter separates the YAML header from the markdown body.
const frontmatterDelimiter = "---"

// VideoRef is the optional page-level video declaration in frontmatter.
// Its fields map one to one onto the media embed component's configuration.
type VideoRef struct {
	ID       string `yaml:"id,omitempty" json:"id,omitempty"`
	Src      string `yaml:"src,omitempty" json:"src,omitempty"`
	Poster   string `yaml:"poster,omitempty" json:"poster,omitempty"`
	Width    string `yaml:"width,omitempty" json:"width,omitempty"`
	Autoplay bool   `yaml:"autoplay,omitempty" json:"autoplay,omitempty"`
}

// IsZero reports whether the page declares no video at all.
func (v VideoRef) IsZero() bool {
	return v == VideoRef{}
}

// EmbedConfig converts the declaration into the embed component's input.
func (v VideoRef) EmbedConfig() embed.Config {
	opt := func(s string) mo.Option[string] {
		if s == "" {
			return mo.None[string]()
		}
		return mo.Some(s)
	}

	return embed.Config{
		ExternalID: opt(v.ID),
		Source:     opt(v.Src),
		Poster:     opt(v.Poster),
		Width:      v.Width,
		Autoplay:   v.Autoplay,
	}
}

// Frontmatter is the YAML header of a content page.
type Frontmatter struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Order       int      `yaml:"order,omitempty" json:"order,omitempty"`
	Draft       bool     `yaml:"draft,omitempty" json:"draft,omitempty"`
	Video       VideoRef `yaml:"video,omitempty" json:"video,omitempty"`
}

// Page is a single markdown lesson parsed from the content tree.
type Page struct {
	Frontmatter

	// Path is the source path relative to the content directory.
	Path string `json:"path"`
	// Route is the page's URL path under the site base (always / terminated).
	Route string `json:"route"`
	// Slug is the final normalized path segment of the route.
	Slug string `json:"slug"`
	// Body is the raw markdown below the frontmatter.
	Body string `json:"-"`
}

// ParsePage parses a content file into a page. Files without a frontmatter
// header are legal: the whole file is the body and the title falls back to
// the first level-one heading, then to the slug.
func ParsePage(relPath string, data []byte) (*Page, error) {
	page := &Page{Path: filepath.ToSlash(relPath)}

	body := string(data)
	if rest, ok := strings.CutPrefix(body, frontmatterDelimiter+"\n"); ok {
		header, after, found := strings.Cut(rest, "\n"+frontmatterDelimiter+"\n")
		if !found {
			// A lone opening delimiter with no closing one.
			header, after, found = strings.Cut(rest, "\n"+frontmatterDelimiter)
			if !found {
				return nil, fmt.Errorf("%s: unterminated frontmatter", relPath)
			}
		}

		if err := yaml.Unmarshal([]byte(header), &page.Frontmatter); err != nil {
			return nil, fmt.Errorf("%s: parse frontmatter: %w", relPath, err)
		}
		body = after
	}
	page.Body = strings.TrimLeft(body, "\n")

	page.Slug = util.Slugify(util.FileStem(page.Path))
	page.Route = routeOf(page.Path, page.Slug)

	if page.Title == "" {
		page.Title = firstHeading(page.Body)
	}
	if page.Title == "" {
		page.Title = util.Capitalize(strings.ReplaceAll(page.Slug, "-", " "))
	}

	return page, nil
}

// OutputPath returns the file path of the rendered page inside the output
// directory (pretty URLs: every page becomes a directory index).
func (p *Page) OutputPath() string {
	return path.Join(strings.TrimPrefix(p.Route, "/"), "index.html")
}

// String returns the page title for display.
func (p *Page) String() string {
	return p.Title
}

// routeOf derives the URL path of a content file. index files collapse onto
// their directory.
func routeOf(relPath, slug string) string {
	dir := path.Dir(filepath.ToSlash(relPath))
	if dir == "." {
		dir = ""
	}

	if slug == "index" {
		if dir == "" {
			return "/"
		}
		return "/" + dir + "/"
	}

	if dir == "" {
		return "/" + slug + "/"
	}
	return "/" + dir + "/" + slug + "/"
}

// firstHeading extracts the text of the first level-one markdown heading.
func firstHeading(body string) string {
	for _, line := range strings.Split(body, "\n") {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return ""
}
