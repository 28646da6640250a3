// Package cmd implements the command-line interface for tsumiki.
package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/tsumiki-site/tsumiki/browse"
)

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringP("base-url", "b", "", "Base URL selected pages open under (default: the preview server address)")
}

// browseCmd opens the interactive page browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the site's pages interactively",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(browse.Run(&browse.Options{
			Root:    projectRoot(cmd),
			BaseURL: lo.Must(cmd.Flags().GetString("base-url")),
		}))
	},
}
