package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// Search filters items whose Name contains query, case-insensitively. An
// empty query returns the input unchanged. Search is a pure function and
// composes with house scoping and category filtering.
func Search(items []Item, query string) []Item {
	if query == "" {
		return items
	}
	pattern := search.New(language.Und, search.IgnoreCase).CompileString(query)
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if start, _ := pattern.IndexString(item.Name); start >= 0 {
			out = append(out, item)
		}
	}
	return out
}

// FilterCategory keeps items whose Category equals category exactly,
// case-sensitive. An empty category returns the input unchanged.
func FilterCategory(items []Item, category string) []Item {
	if category == "" {
		return items
	}
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Categories returns the distinct categories present in items, in
// first-occurrence order.
func Categories(items []Item) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	return out
}
