package render

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

var minifier = func() *minify.M {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	return m
}()

// MinifyHTML compacts a rendered document. Minification failures are
// swallowed in favor of the unminified document: a build never fails over
// cosmetics.
func MinifyHTML(doc []byte) []byte {
	out, err := minifier.Bytes("text/html", doc)
	if err != nil {
		return doc
	}
	return out
}

// MinifyCSS compacts a stylesheet with the same fallback behavior.
func MinifyCSS(sheet []byte) []byte {
	out, err := minifier.Bytes("text/css", sheet)
	if err != nil {
		return sheet
	}
	return out
}
