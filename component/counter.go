package component

import (
	"html/template"
	"strings"

	"github.com/samber/lo"
)

// Counter renders a click counter used by interactive lessons. The component
// only emits markup and a small inline handler; the click state lives in the
// browser, never in the generator.
type Counter struct {
	// Start is the initial count shown before any clicks.
	Start int
	// Label is the button caption. Empty means "Clicked {n} times".
	Label string
}

var counterTemplate = lo.Must(template.New("counter").Parse(
	`<button class="counter" type="button" data-count="{{ .Start }}" onclick="this.dataset.count++; this.textContent = this.dataset.label ? this.dataset.label + ': ' + this.dataset.count : 'Clicked ' + this.dataset.count + ' times';"{{ if .Label }} data-label="{{ .Label }}"{{ end }}>
{{- if .Label }}{{ .Label }}: {{ .Start }}{{ else }}Clicked {{ .Start }} times{{ end -}}
</button>`))

// Render emits the counter markup.
func (c Counter) Render() (template.HTML, error) {
	var b strings.Builder
	if err := counterTemplate.Execute(&b, c); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}
