package build

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"

	"github.com/metafates/gache"

	"github.com/tsumiki-site/tsumiki/constant"
	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/site"
	"github.com/tsumiki-site/tsumiki/where"
)

// entry is one cached render: the content hash it was produced from and the
// final document.
type entry struct {
	Hash string `json:"hash"`
	Doc  []byte `json:"doc"`
}

// cacher provides an abstracted, disk-backed registry for rendered pages.
var cacher = gache.New[map[string]*entry](
	&gache.Options{
		Path:       where.RenderCache(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// cacheGet returns the cached document for a page if its hash still matches.
func cacheGet(path, hash string) ([]byte, bool) {
	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		return nil, false
	}

	e, ok := cached[path]
	if !ok || e.Hash != hash {
		return nil, false
	}
	return e.Doc, true
}

// cachePut stores a freshly rendered document. Failures are ignored: the
// cache is an accelerator, never a source of truth.
func cachePut(path, hash string, doc []byte) {
	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		cached = make(map[string]*entry)
	}

	cached[path] = &entry{Hash: hash, Doc: doc}
	_ = cacher.Set(cached)
}

// pageHash fingerprints everything a page's final document depends on.
func pageHash(page *site.Page, siteHash string, minify bool) string {
	h := sha256.New()
	h.Write([]byte(constant.Version))
	h.Write([]byte(siteHash))
	h.Write([]byte(page.Path))
	h.Write([]byte(page.Title))
	h.Write([]byte(page.Body))
	if minify {
		h.Write([]byte{1})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// configHash fingerprints the site configuration so layout-affecting edits
// invalidate every page.
func configHash(root string) string {
	data, err := filesystem.API().ReadFile(filepath.Join(root, constant.SiteConfigFile))
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
