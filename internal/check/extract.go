package check

import (
	"bytes"

	"golang.org/x/net/html"
)

// refAttrs maps element names to the attribute that carries a reference.
var refAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
	"source": "src",
	"video":  "poster",
}

// extractRefs parses an HTML document and returns every reference it carries,
// in document order.
func extractRefs(doc []byte) []string {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		// The output of our own renderer; a parse failure means there is
		// nothing sensible to extract.
		return nil
	}

	var refs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if attr, ok := refAttrs[n.Data]; ok {
				for _, a := range n.Attr {
					if a.Key == attr && a.Val != "" {
						refs = append(refs, a.Val)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return refs
}
