// Package component implements the built-in presentational components pages can
// embed through shortcodes: styled callout boxes and a demonstration click counter.
package component

import (
	"html/template"
	"strings"

	"github.com/samber/lo"
)

// Callout kinds understood by the component. Unknown kinds fall back to tip.
const (
	CalloutTip     = "tip"
	CalloutWarning = "warning"
	CalloutDanger  = "danger"
	CalloutDetails = "details"
)

var calloutKinds = map[string]bool{
	CalloutTip:     true,
	CalloutWarning: true,
	CalloutDanger:  true,
	CalloutDetails: true,
}

// Callout is a styled admonition box wrapping a span of page content.
type Callout struct {
	Kind  string
	Title string
	Body  template.HTML
}

// defaultTitles label a callout when the page supplies no explicit title.
var defaultTitles = map[string]string{
	CalloutTip:     "TIP",
	CalloutWarning: "WARNING",
	CalloutDanger:  "DANGER",
	CalloutDetails: "DETAILS",
}

var calloutTemplate = lo.Must(template.New("callout").Parse(`<div class="callout callout--{{ .Kind }}">
  <p class="callout__title">{{ .Title }}</p>
  <div class="callout__body">{{ .Body }}</div>
</div>`))

// Render emits the callout markup. The body is trusted page-author HTML
// produced earlier in the pipeline and is embedded verbatim.
func (c Callout) Render() (template.HTML, error) {
	kind := strings.ToLower(c.Kind)
	if !calloutKinds[kind] {
		kind = CalloutTip
	}

	title := c.Title
	if title == "" {
		title = defaultTitles[kind]
	}

	var b strings.Builder
	err := calloutTemplate.Execute(&b, Callout{Kind: kind, Title: title, Body: c.Body})
	if err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}
