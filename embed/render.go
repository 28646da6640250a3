package embed

import (
	"html/template"
	"strings"

	"github.com/samber/lo"
)

// view flattens a resolved playback mode for template consumption.
type view struct {
	Width    string
	External *External
	Native   *Native
}

var containerTemplate = lo.Must(template.New("media-embed").Parse(`<div class="media-embed" style="max-width: {{ .Width }};">
{{- with .External }}
  <div class="media-embed__frame" style="position: relative; padding-bottom: 56.25%; height: 0;">
    <iframe src="{{ .URL }}" style="position: absolute; top: 0; left: 0; width: 100%; height: 100%;" frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe>
  </div>
{{- end }}
{{- with .Native }}
  <video controls playsinline{{ if .Poster }} poster="{{ .Poster }}"{{ end }}{{ if .Autoplay }} autoplay{{ end }}>
    <source src="{{ .Source }}" type="video/mp4">
    Your browser does not support the video tag.
  </video>
{{- end }}
</div>`))

// Render resolves the configuration and emits the component's HTML.
//
// All three modes share the outer container carrying the max-width
// constraint; the empty mode emits the container alone.
func Render(cfg Config) (template.HTML, error) {
	v := view{Width: cfg.width()}

	switch p := Resolve(cfg).(type) {
	case External:
		v.External = &p
	case Native:
		v.Native = &p
	}

	var b strings.Builder
	if err := containerTemplate.Execute(&b, v); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}
