// Package site defines the domain model of a tsumiki project: the declarative
// site configuration (navigation and sidebar trees) and the pages parsed from
// the markdown content tree.
package site

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/viper"
	"github.com/tsumiki-site/tsumiki/constant"
	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/key"
)

// NavItem is a single entry of the top navigation bar. Entries either link
// somewhere or group nested entries in a dropdown.
type NavItem struct {
	Text  string    `yaml:"text" json:"text" jsonschema:"description=Visible label of the navigation entry."`
	Link  string    `yaml:"link,omitempty" json:"link,omitempty" jsonschema:"description=Route or URL the entry points to."`
	Items []NavItem `yaml:"items,omitempty" json:"items,omitempty" jsonschema:"description=Nested entries rendered as a dropdown."`
}

// SidebarGroup is a titled group of page routes shown in the sidebar of a
// route subtree.
type SidebarGroup struct {
	Title       string   `yaml:"title" json:"title" jsonschema:"description=Group heading shown above the children."`
	Collapsible bool     `yaml:"collapsible,omitempty" json:"collapsible,omitempty" jsonschema:"description=Whether the group can be folded."`
	Children    []string `yaml:"children" json:"children" jsonschema:"description=Routes of the pages in this group, in display order."`
}

// Config is the declarative site configuration read from site.yml.
// It is pure data: the build consumes it, nothing mutates it afterwards.
type Config struct {
	Title       string                    `yaml:"title" json:"title" jsonschema:"description=Site title shown in the header and the HTML title tag."`
	Lang        string                    `yaml:"lang,omitempty" json:"lang,omitempty" jsonschema:"description=BCP 47 language tag of the site content."`
	Description string                    `yaml:"description,omitempty" json:"description,omitempty" jsonschema:"description=Site description used in meta tags."`
	BaseURL     string                    `yaml:"base_url,omitempty" json:"base_url,omitempty" jsonschema:"description=Base URL the site is served under."`
	Accent      string                    `yaml:"accent,omitempty" json:"accent,omitempty" jsonschema:"description=Accent color applied by the default theme."`
	Nav         []NavItem                 `yaml:"nav,omitempty" json:"nav,omitempty" jsonschema:"description=Top navigation tree."`
	Sidebar     map[string][]SidebarGroup `yaml:"sidebar,omitempty" json:"sidebar,omitempty" jsonschema:"description=Sidebar trees keyed by route prefix."`
}

// Load reads and parses site.yml from the project root, filling gaps from the
// application configuration defaults.
func Load(root string) (*Config, error) {
	path := filepath.Join(root, constant.SiteConfigFile)

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", constant.SiteConfigFile, err)
	}

	if cfg.Title == "" {
		cfg.Title = viper.GetString(key.SiteTitle)
	}
	if cfg.Description == "" {
		cfg.Description = viper.GetString(key.SiteDescription)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = viper.GetString(key.SiteBaseURL)
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}

	return &cfg, nil
}

// SidebarFor returns the sidebar tree configured for a route, matching the
// longest registered route prefix. A route with no matching prefix has no
// sidebar.
func (c *Config) SidebarFor(route string) []SidebarGroup {
	var (
		best    string
		found   bool
		matched []SidebarGroup
	)

	for prefix, groups := range c.Sidebar {
		if strings.HasPrefix(route, prefix) && (!found || len(prefix) > len(best)) {
			best = prefix
			matched = groups
			found = true
		}
	}

	return matched
}
