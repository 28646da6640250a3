// Package cmd implements the command-line interface for tsumiki.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/tsumiki-site/tsumiki/constant"
	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/icon"
	"github.com/tsumiki-site/tsumiki/util"
)

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringP("title", "t", "", "Page title (skips the interactive prompt)")
	newCmd.Flags().BoolP("draft", "D", false, "Mark the new page as a draft")
	newCmd.Flags().String("video", "", "External video identifier to embed on the page")
}

// newCmd creates a new content page with frontmatter.
var newCmd = &cobra.Command{
	Use:   "new [path]",
	Short: "Create a new content page",
	Long: `Create a new markdown page under the content directory.

The path is relative to content/ and may omit the .md extension:
  tsumiki new guide/setup`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := lo.Must(cmd.Flags().GetString("title"))
		if title == "" {
			handleErr(survey.AskOne(&survey.Input{Message: "Page title:"}, &title, survey.WithValidator(survey.Required)))
		}

		var rel string
		if len(args) == 1 {
			rel = strings.TrimSuffix(args[0], ".md") + ".md"
		} else {
			rel = util.Slugify(title) + ".md"
		}

		path := filepath.Join(projectRoot(cmd), constant.ContentDir, filepath.FromSlash(rel))
		fs := filesystem.API()

		if exists := lo.Must(fs.Exists(path)); exists {
			handleErr(fmt.Errorf("page %s already exists", rel))
		}

		var b strings.Builder
		b.WriteString("---\n")
		fmt.Fprintf(&b, "title: %s\n", title)
		if lo.Must(cmd.Flags().GetBool("draft")) {
			b.WriteString("draft: true\n")
		}
		if video := lo.Must(cmd.Flags().GetString("video")); video != "" {
			b.WriteString("video:\n")
			fmt.Fprintf(&b, "  id: %s\n", video)
		}
		b.WriteString("---\n\n")
		fmt.Fprintf(&b, "# %s\n", title)

		handleErr(fs.MkdirAll(filepath.Dir(path), os.ModePerm))
		handleErr(fs.WriteFile(path, []byte(b.String()), 0644))

		fmt.Printf("%s created %s\n", icon.Get(icon.Page), rel)
	},
}
