// Package cmd implements the command-line interface for tsumiki.
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/tsumiki-site/tsumiki/auth"
	"github.com/tsumiki-site/tsumiki/color"
	"github.com/tsumiki-site/tsumiki/constant"
	"github.com/tsumiki-site/tsumiki/icon"
	"github.com/tsumiki-site/tsumiki/internal/build"
	"github.com/tsumiki-site/tsumiki/internal/deploy"
	"github.com/tsumiki-site/tsumiki/style"
	"github.com/tsumiki-site/tsumiki/util"
)

func init() {
	rootCmd.AddCommand(deployCmd)

	deployCmd.Flags().StringP("target", "t", "", "Deploy target (s3 or endpoint)")
	deployCmd.Flags().Bool("no-build", false, "Publish the existing output directory without rebuilding")
	lo.Must0(deployCmd.RegisterFlagCompletionFunc("target", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"s3", "endpoint"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// deployCmd publishes the built site to the configured target.
var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Publish the built site to the configured target",
	Run: func(cmd *cobra.Command, args []string) {
		root := projectRoot(cmd)

		if !lo.Must(cmd.Flags().GetBool("no-build")) {
			_, err := build.Run(&build.Options{Root: root})
			handleErr(err)
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Deploying...", icon.Get(icon.Upload)))
		uploaded, err := deploy.Run(cmd.Context(), &deploy.Options{
			OutDir: filepath.Join(root, constant.OutputDir),
			Target: lo.Must(cmd.Flags().GetString("target")),
		})
		erase()
		handleErr(err)

		fmt.Printf(
			"%s deployed %s\n",
			icon.Get(icon.Success),
			util.Quantify(uploaded, "file", "files"),
		)
	},
}

func init() {
	deployCmd.AddCommand(deployLoginCmd)
	deployCmd.AddCommand(deployLogoutCmd)
}

// deployLoginCmd stores the endpoint bearer token in the system keyring.
var deployLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the deploy endpoint token in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		handleErr(survey.AskOne(&survey.Password{
			Message: "Deploy token:",
		}, &token, survey.WithValidator(survey.Required)))

		handleErr(auth.SetToken(token))
		fmt.Printf("%s token saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

// deployLogoutCmd removes the stored endpoint token.
var deployLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the deploy endpoint token from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		fmt.Printf("%s token removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
