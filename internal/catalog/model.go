package catalog

// Book is one entry in the catalog. ID 0 marks a book that has not been
// committed yet.
type Book struct {
	ID         int    `json:"id" yaml:"id" validate:"gte=0"`
	Title      string `json:"title" yaml:"title" validate:"required"`
	Author     string `json:"author" yaml:"author" validate:"required"`
	Genre      string `json:"genre" yaml:"genre" validate:"required"`
	Rating     int    `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Categories []int  `json:"categories" yaml:"categories" validate:"dive,gt=0"`
	Tags       []int  `json:"tags" yaml:"tags" validate:"dive,gt=0"`
}

// ListItem is a named label used as either a category or a tag.
// Categories and tags are separate id namespaces.
type ListItem struct {
	ID   int    `json:"id" yaml:"id" validate:"gt=0"`
	Name string `json:"name" yaml:"name" validate:"required"`
}

// ExploreStub is a book suggestion from the external explore source.
type ExploreStub struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// NewBook returns the blank book the edit flow starts from.
func NewBook() Book {
	return Book{Categories: []int{}, Tags: []int{}}
}

// ToBook converts the stub into an uncommitted book with no rating or labels.
func (s ExploreStub) ToBook() Book {
	b := NewBook()
	b.Title = s.Title
	b.Author = s.Author
	b.Genre = s.Genre
	return b
}

// HasCategory reports whether the book carries category id.
func (b Book) HasCategory(id int) bool { return containsID(b.Categories, id) }

// HasTag reports whether the book carries tag id.
func (b Book) HasTag(id int) bool { return containsID(b.Tags, id) }

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// normalize returns a copy with label ids deduplicated (first occurrence
// wins) and nil label sets replaced by empty ones.
func (b Book) normalize() Book {
	b.Categories = uniqueIDs(b.Categories)
	b.Tags = uniqueIDs(b.Tags)
	return b
}

func uniqueIDs(ids []int) []int {
	out := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (b Book) clone() Book {
	b.Categories = append([]int{}, b.Categories...)
	b.Tags = append([]int{}, b.Tags...)
	return b
}

func cloneBooks(books []Book) []Book {
	out := make([]Book, len(books))
	for i, b := range books {
		out[i] = b.clone()
	}
	return out
}

func cloneItems(items []ListItem) []ListItem {
	return append([]ListItem{}, items...)
}
