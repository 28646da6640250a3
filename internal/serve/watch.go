package serve

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"

	"github.com/tsumiki-site/tsumiki/constant"
	"github.com/tsumiki-site/tsumiki/log"
)

// debounceWindow coalesces editor write bursts into a single rebuild.
const debounceWindow = 200 * time.Millisecond

// watch registers the project's source trees with fsnotify and invokes
// rebuild (debounced) on every relevant change. New subdirectories are picked
// up as they appear.
func watch(root string, rebuild func()) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(root); err != nil {
		watcher.Close()
		return nil, err
	}
	for _, dir := range []string{constant.ContentDir, constant.StaticDir, constant.PluginsDir} {
		if err := addTree(watcher, filepath.Join(root, dir)); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	debounced := debounce.New(debounceWindow)
	outDir := filepath.Join(root, constant.OutputDir)

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !relevant(event, root, outDir) {
					continue
				}
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = addTree(watcher, event.Name)
					}
				}
				debounced(rebuild)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn(err)
			}
		}
	}()

	return watcher, nil
}

// addTree registers a directory and all its subdirectories. Missing
// directories are fine: not every project has static/ or plugins/.
func addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// relevant filters out events that must not trigger a rebuild: anything under
// the output directory (our own writes) and events at the project root other
// than the site config.
func relevant(event fsnotify.Event, root, outDir string) bool {
	if strings.HasPrefix(event.Name, outDir+string(filepath.Separator)) || event.Name == outDir {
		return false
	}

	if filepath.Dir(event.Name) == filepath.Clean(root) {
		return filepath.Base(event.Name) == constant.SiteConfigFile
	}
	return true
}
