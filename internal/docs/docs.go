// Package docs holds the picker's built-in help pages. The set is closed:
// pages are compiled in, and callers address them through the typed Page
// values rather than by path.
package docs

import (
	_ "embed"
	"strings"
)

//go:embed keys.md
var keysBody string

//go:embed usage.md
var usageBody string

// Page is one built-in help page.
type Page struct {
	Topic   string
	Summary string
	body    string
}

// Body returns the page's markdown source.
func (p Page) Body() string { return p.body }

var pages = []Page{
	{Topic: "keys", Summary: "key and mouse bindings inside the picker", body: keysBody},
	{Topic: "usage", Summary: "command-line usage and examples", body: usageBody},
}

// Pages lists the built-in pages in display order.
func Pages() []Page { return pages }

// Keys returns the key-binding page shown by the in-widget help overlay.
func Keys() string { return keysBody }

// Find resolves a user-entered topic name, case-insensitively.
func Find(name string) (Page, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range pages {
		if p.Topic == name {
			return p, true
		}
	}
	return Page{}, false
}
