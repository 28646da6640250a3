// Package cmd implements the command-line interface for tsumiki.
package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsumiki-site/tsumiki/icon"
	"github.com/tsumiki-site/tsumiki/internal/build"
	"github.com/tsumiki-site/tsumiki/key"
	"github.com/tsumiki-site/tsumiki/util"
)

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("out", "o", "", "Override the output directory")
	buildCmd.Flags().BoolP("drafts", "D", false, "Include pages marked as drafts")
	lo.Must0(viper.BindPFlag(key.BuildDrafts, buildCmd.Flags().Lookup("drafts")))
	buildCmd.Flags().Bool("no-minify", false, "Disable HTML and CSS minification")
	buildCmd.Flags().Bool("no-cache", false, "Render every page even if its content has not changed")
}

// buildCmd renders the content tree into the static output directory.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the site into the output directory",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("no-minify")) {
			viper.Set(key.BuildMinify, false)
		}
		if lo.Must(cmd.Flags().GetBool("no-cache")) {
			viper.Set(key.BuildCache, false)
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Building...", icon.Get(icon.Build)))

		result, err := build.Run(&build.Options{
			Root:   projectRoot(cmd),
			OutDir: lo.Must(cmd.Flags().GetString("out")),
		})
		erase()
		handleErr(err)

		fmt.Printf(
			"%s built %s (%s cached, %s skipped)\n",
			icon.Get(icon.Success),
			util.Quantify(len(result.Pages), "page", "pages"),
			fmt.Sprint(result.Cached),
			util.Quantify(result.Drafts, "draft", "drafts"),
		)
	},
}
