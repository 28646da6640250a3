package render

import (
	"bytes"
	"html/template"

	"github.com/samber/lo"

	"github.com/tsumiki-site/tsumiki/site"
)

// PageData is everything the base layout needs to emit a full document.
type PageData struct {
	Site    *site.Config
	Page    *site.Page
	Sidebar []site.SidebarGroup
	Content template.HTML
	// Video is the rendered page-level media embed, empty when the page
	// declares none.
	Video template.HTML
}

var layoutTemplate = lo.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="{{ .Site.Lang }}">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Page.Title }} | {{ .Site.Title }}</title>
{{- if .Page.Description }}
  <meta name="description" content="{{ .Page.Description }}">
{{- else if .Site.Description }}
  <meta name="description" content="{{ .Site.Description }}">
{{- end }}
  <link rel="stylesheet" href="{{ .Site.BaseURL }}assets/site.css">
{{- if .Site.Accent }}
  <style>:root { --accent: {{ .Site.Accent }}; }</style>
{{- end }}
</head>
<body>
<header class="navbar">
  <a class="navbar__brand" href="{{ .Site.BaseURL }}">{{ .Site.Title }}</a>
  <nav>
    <ul>
{{- range .Site.Nav }}
      <li{{ if .Items }} class="has-dropdown"{{ end }}>
{{- if .Link }}
        <a href="{{ .Link }}">{{ .Text }}</a>
{{- else }}
        <span>{{ .Text }}</span>
{{- end }}
{{- if .Items }}
        <ul class="dropdown">
{{- range .Items }}
          <li><a href="{{ .Link }}">{{ .Text }}</a></li>
{{- end }}
        </ul>
{{- end }}
      </li>
{{- end }}
    </ul>
  </nav>
</header>
<div class="page">
{{- if .Sidebar }}
  <aside class="sidebar">
{{- range .Sidebar }}
    <section class="sidebar__group{{ if .Collapsible }} sidebar__group--collapsible{{ end }}">
      <p class="sidebar__title">{{ .Title }}</p>
      <ul>
{{- range .Children }}
        <li><a href="{{ . }}">{{ . }}</a></li>
{{- end }}
      </ul>
    </section>
{{- end }}
  </aside>
{{- end }}
  <main class="content">
{{- if .Video }}
    {{ .Video }}
{{- end }}
    {{ .Content }}
  </main>
</div>
</body>
</html>
`))

// Layout wraps rendered page content into the full HTML document.
func Layout(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := layoutTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
