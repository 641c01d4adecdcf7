package catalog

import "strings"

// Filter narrows a book list. Within an axis any id may match; across axes
// every non-empty criterion must match.
type Filter struct {
	Categories []int
	Tags       []int
	Search     string // matches title, author or genre
}

// Apply returns the subset of books matching all non-empty filter fields,
// in input order.
func (f Filter) Apply(books []Book) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if len(f.Tags) > 0 && !intersects(b.Tags, f.Tags) {
			continue
		}
		if len(f.Categories) > 0 && !intersects(b.Categories, f.Categories) {
			continue
		}
		if f.Search != "" && !matchesSearch(b, f.Search) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// ByID returns the first book with the given ID, or nil.
func ByID(books []Book, id int) *Book {
	for i := range books {
		if books[i].ID == id {
			return &books[i]
		}
	}
	return nil
}

// LabelByID returns the label with the given ID, or nil.
func LabelByID(items []ListItem, id int) *ListItem {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

// LabelByName returns the label whose name matches case-insensitively, or nil.
func LabelByName(items []ListItem, name string) *ListItem {
	name = strings.TrimSpace(name)
	for i := range items {
		if strings.EqualFold(items[i].Name, name) {
			return &items[i]
		}
	}
	return nil
}

// InUse returns the labels whose id is referenced by at least one book,
// in label order. pick selects which id set of a book to inspect.
func InUse(items []ListItem, books []Book, pick func(Book) []int) []ListItem {
	used := make(map[int]struct{})
	for _, b := range books {
		for _, id := range pick(b) {
			used[id] = struct{}{}
		}
	}
	out := make([]ListItem, 0, len(items))
	for _, it := range items {
		if _, ok := used[it.ID]; ok {
			out = append(out, it)
		}
	}
	return out
}

func bookCategories(b Book) []int { return b.Categories }

func bookTags(b Book) []int { return b.Tags }

func intersects(have, want []int) bool {
	for _, id := range have {
		if containsID(want, id) {
			return true
		}
	}
	return false
}

func matchesSearch(b Book, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(b.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(b.Author), q) {
		return true
	}
	return strings.Contains(strings.ToLower(b.Genre), q)
}
