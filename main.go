// Package main is the entry point for the tsumiki application.
package main

import (
	"github.com/samber/lo"

	"github.com/tsumiki-site/tsumiki/cmd"
	"github.com/tsumiki-site/tsumiki/config"
	"github.com/tsumiki-site/tsumiki/internal/cache"
	"github.com/tsumiki-site/tsumiki/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Initialize asynchronous background cache maintenance.
	cache.CollectGarbage()

	cmd.Execute()
}
