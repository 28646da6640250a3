package build

import (
	"path/filepath"

	"github.com/tsumiki-site/tsumiki/internal/render"
)

// defaultTheme is the stylesheet shipped with every build. Projects override
// individual rules by dropping their own CSS into static/.
const defaultTheme = `:root {
  --accent: #3eaf7c;
  --text: #2c3e50;
  --border: #eaecef;
}

body {
  margin: 0;
  color: var(--text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  line-height: 1.7;
}

.navbar {
  display: flex;
  align-items: center;
  gap: 2rem;
  padding: 0.7rem 1.5rem;
  border-bottom: 1px solid var(--border);
}

.navbar__brand {
  font-weight: 600;
  color: var(--accent);
  text-decoration: none;
}

.navbar nav ul {
  display: flex;
  gap: 1.5rem;
  list-style: none;
  margin: 0;
  padding: 0;
}

.navbar .dropdown {
  display: none;
  position: absolute;
  flex-direction: column;
  background: #fff;
  border: 1px solid var(--border);
  padding: 0.5rem 1rem;
}

.navbar .has-dropdown:hover .dropdown {
  display: flex;
}

.page {
  display: flex;
}

.sidebar {
  width: 18rem;
  border-right: 1px solid var(--border);
  padding: 1.5rem;
}

.sidebar__title {
  font-weight: 600;
}

.sidebar ul {
  list-style: none;
  padding-left: 0.5rem;
}

.content {
  flex: 1;
  max-width: 46rem;
  padding: 1.5rem 2rem;
}

.callout {
  border-left: 4px solid var(--accent);
  background: #f3f5f7;
  padding: 0.1rem 1.5rem;
  margin: 1rem 0;
}

.callout--warning { border-color: #e7c000; background: #fffae3; }
.callout--danger  { border-color: #c00; background: #ffe6e6; }

.callout__title {
  font-weight: 600;
  text-transform: uppercase;
  font-size: 0.85rem;
}

.counter {
  border: 1px solid var(--accent);
  color: var(--accent);
  background: transparent;
  border-radius: 4px;
  padding: 0.4rem 1rem;
  cursor: pointer;
}

.media-embed {
  margin: 1rem 0;
}
`

// writeTheme emits the default stylesheet into the output assets directory.
func writeTheme(outDir string, minify bool) error {
	sheet := []byte(defaultTheme)
	if minify {
		sheet = render.MinifyCSS(sheet)
	}
	return writeFile(filepath.Join(outDir, "assets", "site.css"), sheet)
}
