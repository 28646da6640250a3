// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tsumiki-site/tsumiki/color"
	"github.com/tsumiki-site/tsumiki/constant"
	"github.com/tsumiki-site/tsumiki/key"
	"github.com/tsumiki-site/tsumiki/style"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Tsumiki + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.SiteTitle, "My Tutorial Site", "Default site title.\nUsed by \"tsumiki init\" and as a fallback when site.yml omits one")
	register(key.SiteDescription, "", "Default site description used when site.yml omits one")
	register(key.SiteBaseURL, "/", "Base URL the site is served under (e.g. \"/\" or \"/docs/\")")

	register(key.BuildMinify, true, "Minify the generated HTML output")
	register(key.BuildDrafts, false, "Include pages marked as drafts in the build")
	register(key.BuildCache, true, "Reuse rendered HTML for pages whose content has not changed")
	register(key.BuildHighlightStyle, "monokai", "Chroma style used for fenced code block highlighting.\nFalls back to monokai if the named style is unknown")
	register(key.BuildCleanOutput, true, "Remove stale files from the output directory before building")

	register(key.ServeHost, "localhost", "Host interface the development server binds to")
	register(key.ServePort, 1313, "Port the development server listens on")
	register(key.ServeLiveReload, true, "Reload connected browsers when content changes")
	register(key.ServeOpen, false, "Open the site in the default browser when the server starts")

	register(key.SearchLimit, 20, "Limit of search results to show")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")

	register(key.CheckExternal, false, "Probe external links over the network during \"tsumiki check\"")
	register(key.CheckConcurrency, 8, "Number of concurrent external link probes")
	register(key.CheckTimeout, 15, "Timeout in seconds for a single external link probe")

	register(key.DeployTarget, "s3", "Deploy target kind.\nAvailable options are: s3, endpoint")
	register(key.DeployS3Bucket, "", "S3 bucket name to upload the built site to")
	register(key.DeployS3Region, "", "AWS region of the deploy bucket")
	register(key.DeployS3Prefix, "", "Key prefix inside the bucket (e.g. \"docs/\")")
	register(key.DeployEndpoint, "", "HTTPS endpoint that accepts the built site archive")

	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")

	register(key.TUIItemSpacing, 1, "Spacing between items in the page browser")
	register(key.TUISearchPromptString, "> ", "Search prompt string to use")
	register(key.TUIShowRoutes, true, "Show routes under page titles in the browser")

	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")

	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
