package catalog

// Storage keys for the three persisted collections.
const (
	KeyBooks      = "book_data"
	KeyCategories = "cat_data"
	KeyTags       = "tag_data"
)

// SeedBooks returns the starter books used when nothing is stored yet.
func SeedBooks() []Book {
	return []Book{
		{
			ID:         1,
			Title:      "To Kill a Mockingbird",
			Author:     "Harper Lee",
			Genre:      "Fiction",
			Rating:     5,
			Categories: []int{2, 3},
			Tags:       []int{1, 2},
		},
		{
			ID:         2,
			Title:      "1984",
			Author:     "George Orwell",
			Genre:      "Science Fiction",
			Rating:     4,
			Categories: []int{1, 3},
			Tags:       []int{3, 4},
		},
		{
			ID:         3,
			Title:      "The Great Gatsby",
			Author:     "F. Scott Fitzgerald",
			Genre:      "Fiction",
			Rating:     5,
			Categories: []int{1, 2},
			Tags:       []int{1, 2},
		},
	}
}

// SeedCategories returns the starter category list.
func SeedCategories() []ListItem {
	return []ListItem{
		{ID: 1, Name: "Classics"},
		{ID: 2, Name: "Literature"},
		{ID: 3, Name: "Dystopian"},
	}
}

// SeedTags returns the starter tag list.
func SeedTags() []ListItem {
	return []ListItem{
		{ID: 1, Name: "Favorite"},
		{ID: 2, Name: "Must Read"},
		{ID: 3, Name: "Classic"},
		{ID: 4, Name: "Thought-Provoking"},
	}
}
