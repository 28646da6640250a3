package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/tsumiki-site/tsumiki/component"
	"github.com/tsumiki-site/tsumiki/embed"
	"github.com/tsumiki-site/tsumiki/key"
	"github.com/tsumiki-site/tsumiki/plugin"
)

// fallbackHighlightStyle is used when the configured chroma style is unknown.
const fallbackHighlightStyle = "monokai"

// Renderer converts a page's markdown body into HTML. Safe for reuse across
// pages within one build; shortcode plugins are bound at construction.
type Renderer struct {
	md      goldmark.Markdown
	plugins *plugin.Registry
}

// NewRenderer assembles the goldmark pipeline with GFM extensions and fenced
// code highlighting. plugins may be nil when no project plugins are loaded.
func NewRenderer(plugins *plugin.Registry) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle()),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// Shortcodes expand to raw HTML before conversion.
			goldmarkhtml.WithUnsafe(),
		),
	)

	return &Renderer{md: md, plugins: plugins}
}

// highlightStyle validates the configured chroma style name, falling back to
// a known-good default so a typo never breaks the build.
func highlightStyle() string {
	name := viper.GetString(key.BuildHighlightStyle)
	if name == "" {
		return fallbackHighlightStyle
	}
	if chromastyles.Get(name) == chromastyles.Fallback {
		return fallbackHighlightStyle
	}
	return name
}

// Markdown renders a markdown fragment, expanding shortcodes first.
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	expanded, err := ExpandShortcodes(src, r.resolveShortcode)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(expanded), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// resolveShortcode dispatches a shortcode to the built-in components first,
// then to the Lua plugin registry.
func (r *Renderer) resolveShortcode(name string, attrs map[string]string, inner string) (string, error) {
	switch name {
	case "video":
		html, err := embed.Render(videoConfig(attrs))
		return string(html), err

	case "callout":
		body, err := r.inlineMarkdown(inner)
		if err != nil {
			return "", err
		}
		html, err := component.Callout{
			Kind:  attrs["kind"],
			Title: attrs["title"],
			Body:  body,
		}.Render()
		return string(html), err

	case "counter":
		start, _ := strconv.Atoi(attrs["start"])
		html, err := component.Counter{Start: start, Label: attrs["label"]}.Render()
		return string(html), err
	}

	if fn, ok := r.plugins.Get(name); ok {
		return fn(attrs)
	}

	return "", fmt.Errorf("unknown shortcode")
}

// inlineMarkdown converts the inner content of a paired shortcode. Nested
// shortcodes were already expanded by the caller.
func (r *Renderer) inlineMarkdown(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// videoConfig maps shortcode attributes onto the embed component's input.
func videoConfig(attrs map[string]string) embed.Config {
	opt := func(k string) mo.Option[string] {
		if v, ok := attrs[k]; ok && v != "" {
			return mo.Some(v)
		}
		return mo.None[string]()
	}

	autoplay, _ := strconv.ParseBool(attrs["autoplay"])

	return embed.Config{
		ExternalID: opt("id"),
		Source:     opt("src"),
		Poster:     opt("poster"),
		Width:      attrs["width"],
		Autoplay:   autoplay,
	}
}
