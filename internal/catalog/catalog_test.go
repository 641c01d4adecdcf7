package catalog_test

import (
	"reflect"
	"testing"

	"github.com/blackwell-systems/bookbin/internal/catalog"
)

var sampleYAML = []byte(`
books:
  - id: 7
    title: "Structure and Interpretation of Computer Programs"
    author: "Abelson & Sussman"
    genre: "Computer Science"
    rating: 5
    categories: [1, 1, 2]
    tags: [3]
  - id: 2
    title: "Operating Systems: Three Easy Pieces"
    author: "Arpaci-Dusseau"
    genre: "Computer Science"
    rating: 4
categories:
  - id: 1
    name: Programming
  - id: 2
    name: Textbooks
tags:
  - id: 3
    name: Favorite
`)

// --- Parse / Marshal ---

func TestParseBooks_Valid(t *testing.T) {
	books, err := catalog.ParseBooks([]byte(`[{"id":1,"title":"T","author":"A","genre":"G","rating":2,"categories":[2,2,3],"tags":[]}]`))
	if err != nil {
		t.Fatalf("ParseBooks: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("expected 1 book, got %d", len(books))
	}
	if !reflect.DeepEqual(books[0].Categories, []int{2, 3}) {
		t.Errorf("categories = %v, want deduplicated [2 3]", books[0].Categories)
	}
}

func TestParseBooks_MissingLabelSets(t *testing.T) {
	books, err := catalog.ParseBooks([]byte(`[{"id":1,"title":"T","author":"A","genre":"G","rating":0}]`))
	if err != nil {
		t.Fatalf("ParseBooks: %v", err)
	}
	if books[0].Categories == nil || books[0].Tags == nil {
		t.Error("label sets should be empty, not nil")
	}
}

func TestParseBooks_Malformed(t *testing.T) {
	for _, in := range []string{"{not json", "null", `{"id":1}`, ""} {
		if _, err := catalog.ParseBooks([]byte(in)); err == nil {
			t.Errorf("ParseBooks(%q) expected error, got nil", in)
		}
	}
}

func TestParseLabels(t *testing.T) {
	items, err := catalog.ParseLabels([]byte(`[{"id":1,"name":"Classics"}]`))
	if err != nil {
		t.Fatalf("ParseLabels: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Classics" {
		t.Errorf("ParseLabels = %v", items)
	}
	if _, err := catalog.ParseLabels([]byte("null")); err == nil {
		t.Error("ParseLabels(null) expected error")
	}
}

func TestParseSnapshot(t *testing.T) {
	snap, err := catalog.ParseSnapshot(sampleYAML)
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if len(snap.Books) != 2 || len(snap.Categories) != 2 || len(snap.Tags) != 1 {
		t.Fatalf("unexpected sizes: %d books, %d categories, %d tags",
			len(snap.Books), len(snap.Categories), len(snap.Tags))
	}
	if !reflect.DeepEqual(snap.Books[0].Categories, []int{1, 2}) {
		t.Errorf("categories = %v, want [1 2]", snap.Books[0].Categories)
	}
	if snap.Books[1].Tags == nil {
		t.Error("missing tags should parse as an empty list")
	}
}

func TestParseSnapshot_Empty(t *testing.T) {
	snap, err := catalog.ParseSnapshot(nil)
	if err != nil {
		t.Fatalf("ParseSnapshot empty: %v", err)
	}
	if len(snap.Books) != 0 || snap.Books == nil {
		t.Errorf("expected empty non-nil books, got %v", snap.Books)
	}
}

func TestParseSnapshot_InvalidYAML(t *testing.T) {
	if _, err := catalog.ParseSnapshot([]byte(":: bad yaml [")); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestSnapshot_SaveAndLoad(t *testing.T) {
	snap, err := catalog.ParseSnapshot(sampleYAML)
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	path := t.TempDir() + "/catalog.yml"
	if err := snap.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := catalog.LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if !reflect.DeepEqual(got, snap) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, snap)
	}
}

func TestLoadSnapshot_Missing(t *testing.T) {
	if _, err := catalog.LoadSnapshot(t.TempDir() + "/nope.yml"); err == nil {
		t.Error("expected error for missing file")
	}
}

// --- Upsert / Remove / NextID ---

func TestUpsert_NewGoesFirst(t *testing.T) {
	books := catalog.SeedBooks()
	books = catalog.Upsert(books, catalog.Book{ID: 9, Title: "New"})
	if len(books) != 4 {
		t.Fatalf("expected 4 after upsert, got %d", len(books))
	}
	if books[0].ID != 9 {
		t.Errorf("first book ID = %d, want 9", books[0].ID)
	}
}

func TestUpsert_ReplacesAndMovesToFront(t *testing.T) {
	books := catalog.SeedBooks()
	books = catalog.Upsert(books, catalog.Book{ID: 3, Title: "Gatsby (updated)"})
	if len(books) != 3 {
		t.Fatalf("expected 3 after update, got %d", len(books))
	}
	if got := ids(books); !reflect.DeepEqual(got, []int{3, 1, 2}) {
		t.Errorf("order = %v, want [3 1 2]", got)
	}
	if books[0].Title != "Gatsby (updated)" {
		t.Errorf("title not updated: %q", books[0].Title)
	}
}

func TestRemove_Existing(t *testing.T) {
	orig := catalog.SeedBooks()
	books, ok := catalog.Remove(orig, 2)
	if !ok {
		t.Error("Remove returned ok=false for existing book")
	}
	if got := ids(books); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("remaining = %v, want [1 3]", got)
	}
	if got := ids(orig); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("input slice modified: %v", got)
	}
}

func TestRemove_Missing(t *testing.T) {
	books, ok := catalog.Remove(catalog.SeedBooks(), 99)
	if ok {
		t.Error("Remove returned ok=true for missing book")
	}
	if len(books) != 3 {
		t.Errorf("expected 3 books after no-op remove, got %d", len(books))
	}
}

func TestNextID(t *testing.T) {
	if got := catalog.NextID(nil); got != 1 {
		t.Errorf("NextID(empty) = %d, want 1", got)
	}
	if got := catalog.NextID(catalog.SeedBooks()); got != 4 {
		t.Errorf("NextID(seed) = %d, want 4", got)
	}
	if got := catalog.NextLabelID([]catalog.ListItem{{ID: 5, Name: "x"}, {ID: 2, Name: "y"}}); got != 6 {
		t.Errorf("NextLabelID = %d, want 6", got)
	}
}

// --- Filter ---

func TestFilter_Empty(t *testing.T) {
	result := catalog.Filter{}.Apply(catalog.SeedBooks())
	if got := ids(result); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("empty filter should return all books in order, got %v", got)
	}
}

func TestFilter_ByCategory(t *testing.T) {
	books := []catalog.Book{
		{ID: 1, Categories: []int{2, 3}},
		{ID: 2, Categories: []int{1, 3}},
	}
	result := catalog.Filter{Categories: []int{1}}.Apply(books)
	if got := ids(result); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("category filter: got %v, want [2]", got)
	}
}

func TestFilter_OrWithinAxis(t *testing.T) {
	result := catalog.Filter{Tags: []int{3, 1}}.Apply(catalog.SeedBooks())
	if got := ids(result); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("tag filter: got %v", got)
	}
}

func TestFilter_AndAcrossAxes(t *testing.T) {
	result := catalog.Filter{Categories: []int{1}, Tags: []int{1}}.Apply(catalog.SeedBooks())
	if got := ids(result); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("combined filter: got %v, want [3]", got)
	}
}

func TestFilter_NoMatch(t *testing.T) {
	result := catalog.Filter{Tags: []int{42}}.Apply(catalog.SeedBooks())
	if len(result) != 0 {
		t.Errorf("expected 0 results, got %d", len(result))
	}
}

func TestFilter_BySearch(t *testing.T) {
	books := catalog.SeedBooks()
	cases := []struct {
		q    string
		want []int
	}{
		{"gatsby", []int{3}},
		{"ORWELL", []int{2}},
		{"fiction", []int{1, 2, 3}},
		{"zzznomatch", []int{}},
	}
	for _, c := range cases {
		got := ids(catalog.Filter{Search: c.q}.Apply(books))
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("search %q: got %v, want %v", c.q, got, c.want)
		}
	}
}

// --- Lookup ---

func TestByID(t *testing.T) {
	books := catalog.SeedBooks()
	if b := catalog.ByID(books, 2); b == nil || b.Title != "1984" {
		t.Errorf("ByID(2) = %v", b)
	}
	if b := catalog.ByID(books, 42); b != nil {
		t.Errorf("ByID returned non-nil for missing book")
	}
}

func TestLabelByName_CaseInsensitive(t *testing.T) {
	cats := catalog.SeedCategories()
	l := catalog.LabelByName(cats, "  dystopian ")
	if l == nil || l.ID != 3 {
		t.Errorf("LabelByName = %v, want id 3", l)
	}
	if catalog.LabelByName(cats, "Poetry") != nil {
		t.Error("LabelByName should return nil for unknown name")
	}
}

func TestInUse(t *testing.T) {
	books := []catalog.Book{{ID: 1, Tags: []int{2, 99}}}
	got := catalog.InUse(catalog.SeedTags(), books, func(b catalog.Book) []int { return b.Tags })
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("InUse = %v, want only tag 2", got)
	}
}

func TestExploreStub_ToBook(t *testing.T) {
	b := catalog.ExploreStub{Title: "T", Author: "A", Genre: "G"}.ToBook()
	if b.ID != 0 || b.Rating != 0 {
		t.Errorf("ToBook id/rating = %d/%d, want 0/0", b.ID, b.Rating)
	}
	if b.Categories == nil || len(b.Categories) != 0 || b.Tags == nil || len(b.Tags) != 0 {
		t.Errorf("ToBook label sets = %v/%v, want empty", b.Categories, b.Tags)
	}
	if b.Title != "T" || b.Author != "A" || b.Genre != "G" {
		t.Errorf("ToBook fields = %+v", b)
	}
}

func ids(books []catalog.Book) []int {
	out := make([]int, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}
