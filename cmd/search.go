// Package cmd implements the command-line interface for tsumiki.
package cmd

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsumiki-site/tsumiki/color"
	"github.com/tsumiki-site/tsumiki/icon"
	"github.com/tsumiki-site/tsumiki/internal/build"
	"github.com/tsumiki-site/tsumiki/key"
	"github.com/tsumiki-site/tsumiki/query"
	"github.com/tsumiki-site/tsumiki/site"
	"github.com/tsumiki-site/tsumiki/style"
	"github.com/tsumiki-site/tsumiki/util"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntP("limit", "l", 0, "Limit of results to show")
}

// searchCmd fuzzy-searches page titles and routes.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search pages by title and route",
	Args:  cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		q := strings.Join(args, " ")

		pages, err := build.Pages(projectRoot(cmd))
		handleErr(err)

		handleErr(query.Remember(q, 1))

		matches := lo.Filter(pages, func(p *site.Page, _ int) bool {
			return fuzzy.MatchFold(q, p.Title) || fuzzy.MatchFold(q, p.Route)
		})

		if len(matches) == 0 {
			fmt.Printf("%s nothing found for %s\n", icon.Get(icon.Search), style.Fg(color.Yellow)(q))

			if suggestion := query.Suggest(q); suggestion.IsPresent() {
				fmt.Printf("Did you mean %s?\n", style.Fg(color.Cyan)(suggestion.MustGet()))
			}
			return
		}

		limit := lo.Must(cmd.Flags().GetInt("limit"))
		if limit <= 0 {
			limit = viper.GetInt(key.SearchLimit)
		}

		for _, page := range matches[:util.Min(limit, len(matches))] {
			fmt.Printf(
				"%s %s %s\n",
				icon.Get(icon.Page),
				style.Bold(page.Title),
				style.Faint(page.Route),
			)
		}
	},
}
