// Package cmd implements the command-line interface for tsumiki.
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsumiki-site/tsumiki/color"
	"github.com/tsumiki-site/tsumiki/constant"
	"github.com/tsumiki-site/tsumiki/icon"
	"github.com/tsumiki-site/tsumiki/internal/build"
	"github.com/tsumiki-site/tsumiki/internal/check"
	"github.com/tsumiki-site/tsumiki/key"
	"github.com/tsumiki-site/tsumiki/style"
	"github.com/tsumiki-site/tsumiki/util"
)

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolP("external", "e", false, "Probe external links over the network")
	lo.Must0(viper.BindPFlag(key.CheckExternal, checkCmd.Flags().Lookup("external")))
	checkCmd.Flags().Bool("no-build", false, "Scan the existing output directory without rebuilding")
}

// checkCmd scans the built site for dead links.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Scan the built site for dead links",
	Run: func(cmd *cobra.Command, args []string) {
		root := projectRoot(cmd)
		outDir := filepath.Join(root, constant.OutputDir)

		if !lo.Must(cmd.Flags().GetBool("no-build")) {
			_, err := build.Run(&build.Options{Root: root})
			handleErr(err)
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Scanning links...", icon.Get(icon.Link)))
		report, err := check.Run(cmd.Context(), &check.Options{
			OutDir:   outDir,
			External: viper.GetBool(key.CheckExternal),
		})
		erase()
		handleErr(err)

		if len(report.Issues) == 0 {
			fmt.Printf(
				"%s %s checked, all alive\n",
				icon.Get(icon.Success),
				util.Quantify(report.Checked, "link", "links"),
			)
			return
		}

		for _, issue := range report.Issues {
			fmt.Printf(
				"%s %s %s %s\n",
				icon.Get(icon.Fail),
				style.Faint(issue.Page),
				style.Fg(color.Red)(issue.URL),
				style.Faint("("+issue.Reason+")"),
			)
		}

		handleErr(fmt.Errorf(
			"%s broken out of %d checked",
			util.Quantify(len(report.Issues), "link", "links"),
			report.Checked,
		))
	},
}
