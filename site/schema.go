package site

import (
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
)

// ConfigSchema reflects the site.yml structure into a JSON schema so editors
// can validate and autocomplete project configurations.
func ConfigSchema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "config", "navitem", "sidebargroup", "page", "frontmatter", "videoref":
			return "site." + name
		}
		return name
	}

	return reflector.Reflect(&Config{})
}
