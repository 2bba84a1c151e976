// Package apps detects default applications per category from the desktop
// entries installed on the system.
package apps

import "strings"

// Category is a report bucket and the substrings of a desktop entry's
// Categories value that place an application in it.
type Category struct {
	Name     string
	Keywords []string
}

var categories = [...]Category{
	{Name: "web", Keywords: []string{"WebBrowser", "Network;WebBrowser;"}},
	{Name: "mail", Keywords: []string{"Email", "EmailClient", "Network;Email;"}},
	{Name: "calendar", Keywords: []string{"Calendar"}},
	{Name: "music", Keywords: []string{"Audio", "Music"}},
	{Name: "video", Keywords: []string{"Video", "Player"}},
	{Name: "photos", Keywords: []string{"Graphics", "ImageViewer", "Photography"}},
	{Name: "text_editor", Keywords: []string{"TextEditor", "Utility;TextEditor;"}},
	{Name: "file_manager", Keywords: []string{"FileManager", "System;FileTools;FileManager;"}},
}

// Categories returns a copy of the category table in report order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{
			Name:     c.Name,
			Keywords: append([]string(nil), c.Keywords...),
		}
	}
	return out
}

// CategoryNames returns the category names in report order.
func CategoryNames() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}

// Classify returns, in report order, every category with at least one
// keyword contained in the raw Categories value. Matching is plain substring
// matching, so "Player" also matches "AudioVideoPlayer".
func Classify(raw string) []string {
	var out []string
	for _, c := range categories {
		for _, kw := range c.Keywords {
			if strings.Contains(raw, kw) {
				out = append(out, c.Name)
				break
			}
		}
	}
	return out
}
