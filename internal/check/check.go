// Package check implements the dead-link scanner. It walks the built site,
// extracts every reference from the HTML, validates internal routes against
// the output tree, and optionally probes external URLs over the network.
package check

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/internal/cache"
	"github.com/tsumiki-site/tsumiki/key"
	"github.com/tsumiki-site/tsumiki/log"
	"github.com/tsumiki-site/tsumiki/network"
)

// Options configures a scan of a built site.
type Options struct {
	// OutDir is the built output directory to scan.
	OutDir string
	// External enables probing of external URLs over the network.
	External bool
	// Progress receives human-readable status lines.
	Progress func(string)
}

func (o *Options) progress(msg string) {
	if o.Progress != nil {
		o.Progress(msg)
	}
}

// Issue is one broken reference found during the scan.
type Issue struct {
	// Page is the output-relative document the reference appears in.
	Page string
	// URL is the broken reference.
	URL string
	// Reason explains the failure.
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (%s)", i.Page, i.URL, i.Reason)
}

// Report summarizes a finished scan.
type Report struct {
	// Checked counts every distinct reference examined.
	Checked int
	// Issues holds the broken references in deterministic order.
	Issues []Issue
}

// Run scans the built output directory for dead links.
func Run(ctx context.Context, opts *Options) (*Report, error) {
	refs, err := collectRefs(opts.OutDir)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	var external []ref

	for _, r := range refs {
		report.Checked++

		switch classify(r.url) {
		case linkInternal:
			opts.progress(fmt.Sprintf("Checking %s", r.url))
			if !internalExists(opts.OutDir, r.url) {
				report.Issues = append(report.Issues, Issue{Page: r.page, URL: r.url, Reason: "no such route"})
			}
		case linkExternal:
			if opts.External {
				external = append(external, r)
			}
		case linkSkipped:
		}
	}

	if len(external) > 0 {
		report.Issues = append(report.Issues, probeAll(ctx, opts, external)...)
	}

	sort.Slice(report.Issues, func(i, j int) bool {
		if report.Issues[i].Page != report.Issues[j].Page {
			return report.Issues[i].Page < report.Issues[j].Page
		}
		return report.Issues[i].URL < report.Issues[j].URL
	})

	return report, nil
}

// ref is one reference found in one page.
type ref struct {
	page string
	url  string
}

// collectRefs parses every HTML document in the output tree and returns its
// references, deduplicated per page.
func collectRefs(outDir string) ([]ref, error) {
	fs := filesystem.API()

	exists, err := fs.DirExists(outDir)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("output directory %s does not exist, run a build first", outDir)
	}

	var refs []ref
	err = fs.Walk(outDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(p, ".html") {
			return nil
		}

		rel, err := filepath.Rel(outDir, p)
		if err != nil {
			return err
		}

		data, err := fs.ReadFile(p)
		if err != nil {
			return err
		}

		seen := make(map[string]struct{})
		for _, url := range extractRefs(data) {
			if _, ok := seen[url]; ok {
				continue
			}
			seen[url] = struct{}{}
			refs = append(refs, ref{page: filepath.ToSlash(rel), url: url})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return refs, nil
}

type linkKind int

const (
	linkInternal linkKind = iota
	linkExternal
	linkSkipped
)

// classify sorts a reference into internal routes, external URLs, and
// everything that is not checkable (fragments, mail, data URIs).
func classify(url string) linkKind {
	switch {
	case url == "" || strings.HasPrefix(url, "#"):
		return linkSkipped
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		return linkExternal
	case strings.HasPrefix(url, "//"):
		return linkExternal
	case strings.Contains(url, ":"):
		// mailto:, tel:, data:, javascript: and friends.
		return linkSkipped
	default:
		return linkInternal
	}
}

// internalExists reports whether an internal reference resolves to a file in
// the output tree. Routes resolve to their directory index.
func internalExists(outDir, url string) bool {
	target, _, _ := strings.Cut(url, "#")
	target, _, _ = strings.Cut(target, "?")
	if target == "" {
		return true
	}

	clean := path.Clean("/" + target)
	fs := filesystem.API()

	candidate := filepath.Join(outDir, filepath.FromSlash(clean))
	if path.Ext(clean) != "" {
		exists, _ := fs.Exists(candidate)
		return exists
	}

	exists, _ := fs.Exists(filepath.Join(candidate, "index.html"))
	return exists
}

// probeAll checks external URLs concurrently with a bounded worker pool.
// Each distinct URL is probed once, every referencing page is reported.
func probeAll(ctx context.Context, opts *Options, refs []ref) []Issue {
	concurrency := viper.GetInt(key.CheckConcurrency)
	if concurrency < 1 {
		concurrency = 1
	}
	timeout := time.Duration(viper.GetInt(key.CheckTimeout)) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	byURL := make(map[string][]string)
	for _, r := range refs {
		byURL[r.url] = append(byURL[r.url], r.page)
	}

	var (
		mu     sync.Mutex
		issues []Issue
		wg     sync.WaitGroup
	)
	sem := make(chan struct{}, concurrency)

	for url, pages := range byURL {
		wg.Add(1)
		go func(url string, pages []string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			opts.progress(fmt.Sprintf("Probing %s", url))
			reason, ok := probe(ctx, url, timeout)
			if ok {
				return
			}

			mu.Lock()
			for _, page := range pages {
				issues = append(issues, Issue{Page: page, URL: url, Reason: reason})
			}
			mu.Unlock()
		}(url, pages)
	}
	wg.Wait()

	return issues
}

// probe fetches one external URL with the browser-camouflaged client.
// Alive results are cached so repeated scans stay cheap.
func probe(ctx context.Context, url string, timeout time.Duration) (reason string, ok bool) {
	if strings.HasPrefix(url, "//") {
		url = "https:" + url
	}

	cacheKey := cache.GenerateKey(url)
	var alive bool
	if cache.Read(cacheKey, &alive) && alive {
		return "", true
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := network.Probe(ctx, url)
	if err != nil {
		log.Warnf("probe %s: %s", url, err)
		return err.Error(), false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Sprintf("status %d", resp.StatusCode), false
	}

	_ = cache.Write(cacheKey, true)
	return "", true
}
