// Package cmd implements the command-line interface for tsumiki.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsumiki-site/tsumiki/site"
)

func init() {
	configCmd.AddCommand(schemaCmd)
}

// schemaCmd generates the JSON schema describing site.yml.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for site.yml",
	Long: `Generate the JSON schema describing the site configuration file.
Point your editor's YAML language server at it to get validation and
completion for site.yml.`,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(os.Stdout).Encode(site.ConfigSchema()))
	},
}
