// Package render implements the markdown-to-HTML pipeline: shortcode
// expansion, goldmark conversion with syntax highlighting, page layout and
// optional minification.
package render

import (
	"fmt"
	"regexp"
	"strings"
)

// Shortcodes use the {{< name key="value" >}} form, optionally paired with a
// {{< /name >}} closing tag wrapping inner markdown.
var (
	shortcodeRe = regexp.MustCompile(`\{\{<\s*([a-zA-Z][\w-]*)((?:\s+[\w-]+="[^"]*")*)\s*>\}\}`)
	attrRe      = regexp.MustCompile(`([\w-]+)="([^"]*)"`)
)

// Resolver renders one shortcode occurrence. inner holds the expanded content
// between paired tags, empty for self-standing shortcodes.
type Resolver func(name string, attrs map[string]string, inner string) (string, error)

// ExpandShortcodes replaces every shortcode occurrence in src with the
// resolver's output. Nested shortcodes inside paired bodies are expanded
// first, innermost out.
func ExpandShortcodes(src string, resolve Resolver) (string, error) {
	var out strings.Builder

	for {
		loc := shortcodeRe.FindStringSubmatchIndex(src)
		if loc == nil {
			out.WriteString(src)
			break
		}

		out.WriteString(src[:loc[0]])
		name := src[loc[2]:loc[3]]
		attrs := parseAttrs(src[loc[4]:loc[5]])
		rest := src[loc[1]:]

		var inner string
		if close := closingRe(name).FindStringIndex(rest); close != nil {
			expanded, err := ExpandShortcodes(rest[:close[0]], resolve)
			if err != nil {
				return "", err
			}
			inner = strings.TrimSpace(expanded)
			rest = rest[close[1]:]
		}

		html, err := resolve(name, attrs, inner)
		if err != nil {
			return "", fmt.Errorf("shortcode %q: %w", name, err)
		}
		out.WriteString(html)

		src = rest
	}

	return out.String(), nil
}

func closingRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`\{\{<\s*/` + regexp.QuoteMeta(name) + `\s*>\}\}`)
}

func parseAttrs(raw string) map[string]string {
	attrs := make(map[string]string)
	for _, match := range attrRe.FindAllStringSubmatch(raw, -1) {
		attrs[match[1]] = match[2]
	}
	return attrs
}
