// Package cmd implements the command-line interface for tsumiki.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsumiki-site/tsumiki/color"
	"github.com/tsumiki-site/tsumiki/icon"
	"github.com/tsumiki-site/tsumiki/internal/build"
	"github.com/tsumiki-site/tsumiki/key"
	"github.com/tsumiki-site/tsumiki/site"
	"github.com/tsumiki-site/tsumiki/style"
)

func init() {
	rootCmd.AddCommand(pagesCmd)

	pagesCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")
	pagesCmd.Flags().BoolP("drafts-only", "D", false, "List only pages marked as drafts")
}

// pagesCmd lists the site's pages in scriptable form.
var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List the site's pages",
	Run: func(cmd *cobra.Command, args []string) {
		// Listing always sees drafts; the build flag only gates rendering.
		viper.Set(key.BuildDrafts, true)

		pages, err := build.Pages(projectRoot(cmd))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("drafts-only")) {
			pages = lo.Filter(pages, func(p *site.Page, _ int) bool { return p.Draft })
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(pages))
			return
		}

		for _, page := range pages {
			marker := icon.Get(icon.Page)
			if page.Draft {
				marker = style.Fg(color.Yellow)("draft")
			}
			fmt.Printf("%s %s %s\n", marker, style.Bold(page.Title), style.Faint(page.Route))
		}
	},
}
