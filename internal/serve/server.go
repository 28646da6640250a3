// Package serve implements the local preview server: it builds the site,
// serves the output directory, and rebuilds on content changes with a
// livereload push to connected browsers.
package serve

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tsumiki-site/tsumiki/constant"
	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/internal/build"
	"github.com/tsumiki-site/tsumiki/key"
	"github.com/tsumiki-site/tsumiki/log"
	"github.com/tsumiki-site/tsumiki/open"
)

// Options configures a preview server run. Zero fields fall back to the
// global configuration.
type Options struct {
	Root string
	Host string
	Port int
	// Progress receives human-readable status lines.
	Progress func(string)
}

func (o *Options) host() string {
	if o.Host != "" {
		return o.Host
	}
	return viper.GetString(key.ServeHost)
}

func (o *Options) port() int {
	if o.Port != 0 {
		return o.Port
	}
	return viper.GetInt(key.ServePort)
}

func (o *Options) progress(msg string) {
	if o.Progress != nil {
		o.Progress(msg)
	}
}

// Run builds the site and serves it until the context is canceled.
func Run(ctx context.Context, opts *Options) error {
	buildOpts := &build.Options{Root: opts.Root, Progress: opts.Progress}

	if _, err := build.Run(buildOpts); err != nil {
		return err
	}

	livereload := viper.GetBool(key.ServeLiveReload)

	var hub *reloadHub
	if livereload {
		hub = newReloadHub()
	}

	rebuild := func() {
		if _, err := build.Run(buildOpts); err != nil {
			log.Error(err)
			opts.progress(fmt.Sprintf("Rebuild failed: %s", err))
			return
		}
		opts.progress("Rebuilt")
		if hub != nil {
			hub.Broadcast()
		}
	}

	watcher, err := watch(opts.Root, rebuild)
	if err != nil {
		return err
	}
	defer watcher.Close()

	mux := http.NewServeMux()
	if hub != nil {
		mux.Handle(reloadEndpoint, hub)
	}
	mux.Handle("/", &siteHandler{
		outDir:     filepath.Join(opts.Root, constant.OutputDir),
		livereload: livereload,
	})

	addr := net.JoinHostPort(opts.host(), fmt.Sprint(opts.port()))
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://%s/", addr)
	opts.progress(fmt.Sprintf("Serving at %s", url))
	log.Infof("preview server listening on %s", addr)

	if viper.GetBool(key.ServeOpen) {
		if err := open.Start(url); err != nil {
			log.Warn(err)
		}
	}

	err = server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// siteHandler serves the built site from the output directory with pretty
// URL resolution.
type siteHandler struct {
	outDir     string
	livereload bool
}

func (h *siteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target, ok := h.resolve(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, err := filesystem.API().ReadFile(target)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(target))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	if h.livereload && strings.HasPrefix(contentType, "text/html") {
		data = injectReload(data)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

// resolve maps a request path onto a file in the output directory. Routes
// ending in / (and extensionless paths) resolve to their directory index.
func (h *siteHandler) resolve(reqPath string) (string, bool) {
	clean := path.Clean("/" + reqPath)
	if strings.Contains(clean, "..") {
		return "", false
	}

	fs := filesystem.API()

	candidate := filepath.Join(h.outDir, filepath.FromSlash(clean))
	if path.Ext(clean) != "" {
		if exists, _ := fs.Exists(candidate); exists {
			return candidate, true
		}
		return "", false
	}

	index := filepath.Join(candidate, "index.html")
	if exists, _ := fs.Exists(index); exists {
		return index, true
	}
	return "", false
}
