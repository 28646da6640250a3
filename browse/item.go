package browse

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tsumiki-site/tsumiki/key"
	"github.com/tsumiki-site/tsumiki/site"
	"github.com/tsumiki-site/tsumiki/style"
)

// listItem implements the list.Item interface for a site page.
type listItem struct {
	page *site.Page
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() string {
	if viper.GetBool(key.TUIShowRoutes) {
		return fmt.Sprintf("%s %s", t.page.Title, style.Faint(t.page.Route))
	}
	return t.page.Title
}

// Description retrieves the secondary metadata line for the list item.
func (t *listItem) Description() string {
	if t.page.Description != "" {
		return t.page.Description
	}
	return t.page.Path
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	return t.page.Title + " " + t.page.Route
}
