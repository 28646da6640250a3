// Package cmd implements the command-line interface for tsumiki.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsumiki-site/tsumiki/constant"
	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/icon"
	"github.com/tsumiki-site/tsumiki/key"
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringP("title", "t", "", "Site title (skips the interactive prompt)")
	initCmd.Flags().BoolP("force", "f", false, "Scaffold even if the directory already has a site.yml")
}

const starterPage = `---
title: Welcome
order: 1
---

# Welcome

This is your first page. Edit ` + "`content/index.md`" + ` to get started.

{{< callout kind="tip" >}}
Run ` + "`tsumiki serve`" + ` to preview the site with livereload.
{{< /callout >}}
`

// initCmd scaffolds a new site project.
var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Scaffold a new site project",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		fs := filesystem.API()
		configPath := filepath.Join(dir, constant.SiteConfigFile)

		if exists := lo.Must(fs.Exists(configPath)); exists && !lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(fmt.Errorf("%s already exists in %s, pass --force to overwrite", constant.SiteConfigFile, dir))
		}

		title := lo.Must(cmd.Flags().GetString("title"))
		if title == "" {
			handleErr(survey.AskOne(&survey.Input{
				Message: "Site title:",
				Default: viper.GetString(key.SiteTitle),
			}, &title))
		}

		siteConfig := fmt.Sprintf(`title: %s
description: ""
base_url: /

nav:
  - text: Home
    link: /

sidebar:
  /:
    - title: Getting Started
      children:
        - /
`, title)

		handleErr(fs.MkdirAll(filepath.Join(dir, constant.ContentDir), os.ModePerm))
		handleErr(fs.MkdirAll(filepath.Join(dir, constant.StaticDir), os.ModePerm))
		handleErr(fs.MkdirAll(filepath.Join(dir, constant.PluginsDir), os.ModePerm))
		handleErr(fs.WriteFile(configPath, []byte(siteConfig), 0644))
		handleErr(fs.WriteFile(filepath.Join(dir, constant.ContentDir, "index.md"), []byte(starterPage), 0644))

		fmt.Printf("%s scaffolded %s in %s\n", icon.Get(icon.Success), title, dir)
	},
}
