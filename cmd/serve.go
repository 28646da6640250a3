// Package cmd implements the command-line interface for tsumiki.
package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsumiki-site/tsumiki/icon"
	"github.com/tsumiki-site/tsumiki/internal/serve"
	"github.com/tsumiki-site/tsumiki/key"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "Host interface to bind to")
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on")
	serveCmd.Flags().BoolP("open", "O", false, "Open the site in the default browser")
	lo.Must0(viper.BindPFlag(key.ServeOpen, serveCmd.Flags().Lookup("open")))
	serveCmd.Flags().Bool("no-livereload", false, "Disable browser livereload")
}

// serveCmd runs the local preview server with rebuild-on-change.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Preview the site locally and rebuild on changes",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("no-livereload")) {
			viper.Set(key.ServeLiveReload, false)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		err := serve.Run(ctx, &serve.Options{
			Root: projectRoot(cmd),
			Host: lo.Must(cmd.Flags().GetString("host")),
			Port: lo.Must(cmd.Flags().GetInt("port")),
			Progress: func(msg string) {
				fmt.Printf("%s %s\n", icon.Get(icon.Serve), msg)
			},
		})
		handleErr(err)
	},
}
