// Package deploy publishes a built site to its configured target: an S3
// bucket or an HTTPS deploy endpoint.
package deploy

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/key"
)

// Options configures a deploy run.
type Options struct {
	// OutDir is the built output directory to publish.
	OutDir string
	// Target overrides the configured deploy target ("s3" or "endpoint").
	Target string
	// Progress receives human-readable status lines.
	Progress func(string)
}

func (o *Options) target() string {
	if o.Target != "" {
		return o.Target
	}
	return viper.GetString(key.DeployTarget)
}

func (o *Options) progress(msg string) {
	if o.Progress != nil {
		o.Progress(msg)
	}
}

// Run publishes the output directory to the selected target and returns the
// number of uploaded files.
func Run(ctx context.Context, opts *Options) (int, error) {
	exists, err := filesystem.API().DirExists(opts.OutDir)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("output directory %s does not exist, run a build first", opts.OutDir)
	}

	switch target := opts.target(); target {
	case "s3":
		return deployS3(ctx, opts)
	case "endpoint":
		return deployEndpoint(ctx, opts)
	default:
		return 0, fmt.Errorf("unknown deploy target %q (expected s3 or endpoint)", target)
	}
}
