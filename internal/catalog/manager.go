package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blackwell-systems/bookbin/internal/storage"
	"github.com/blackwell-systems/bookbin/internal/validation"
)

// Blobs is the keyed durable storage the manager persists into.
// Get must return an error wrapping storage.ErrNotExist for absent keys.
type Blobs interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

var validate = validation.New()

// Manager owns the authoritative books, categories and tags plus the
// transient filter selection. Every mutation is computed in full, written
// to storage, and only then swapped into memory.
//
// A Manager is single-writer and is not safe for concurrent use.
type Manager struct {
	blobs  Blobs
	logger *slog.Logger

	books      []Book
	categories []ListItem
	tags       []ListItem

	filterCategories []int
	filterTags       []int
}

// Open loads the catalog from blobs. Each collection is loaded on its own;
// an absent blob, or one that does not parse or validate, falls back to
// that collection's seed list. Any other read error is returned.
func Open(ctx context.Context, blobs Blobs, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{blobs: blobs, logger: logger}

	var err error
	if m.books, err = loadOrSeed(ctx, m, KeyBooks, ParseBooks, validateStoredBooks, SeedBooks); err != nil {
		return nil, err
	}
	if m.categories, err = loadOrSeed(ctx, m, KeyCategories, ParseLabels, validateLabels, SeedCategories); err != nil {
		return nil, err
	}
	if m.tags, err = loadOrSeed(ctx, m, KeyTags, ParseLabels, validateLabels, SeedTags); err != nil {
		return nil, err
	}
	m.filterCategories = []int{}
	m.filterTags = []int{}

	return m, nil
}

func loadOrSeed[T any](ctx context.Context, m *Manager, key string, parse func([]byte) ([]T, error), check func([]T) error, seed func() []T) ([]T, error) {
	data, err := m.blobs.Get(ctx, key)
	if errors.Is(err, storage.ErrNotExist) {
		m.logger.Debug("no stored data, using seed", "key", key)
		return seed(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	out, err := parse(data)
	if err == nil {
		err = check(out)
	}
	if err != nil {
		m.logger.Warn("stored data is malformed, using seed", "key", key, "error", err)
		return seed(), nil
	}
	return out, nil
}

func (m *Manager) persist(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := m.blobs.Set(ctx, key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// UpsertBook commits b. A book with ID 0 gets NextBookID; any other ID
// replaces the stored book with that ID or is inserted if none exists.
// The committed book moves to the front of the list.
func (m *Manager) UpsertBook(ctx context.Context, b Book) (Book, error) {
	b = b.normalize()
	if err := validateBook(b); err != nil {
		return Book{}, err
	}
	if b.ID == 0 {
		b.ID = m.NextBookID()
	}

	books := Upsert(m.books, b)
	if err := m.persist(ctx, KeyBooks, books); err != nil {
		return Book{}, err
	}
	m.books = books
	m.logger.Debug("book saved", "id", b.ID, "title", b.Title)
	return b.clone(), nil
}

// DeleteBook removes the book with b's ID. It returns ErrNotFound, leaving
// the catalog untouched, when no such book exists.
func (m *Manager) DeleteBook(ctx context.Context, b Book) error {
	books, found := Remove(m.books, b.ID)
	if !found {
		return fmt.Errorf("book %d: %w", b.ID, ErrNotFound)
	}
	if err := m.persist(ctx, KeyBooks, books); err != nil {
		return err
	}
	m.books = books
	m.logger.Debug("book deleted", "id", b.ID)
	return nil
}

// SetCategories replaces the category list. It fails with ErrLabelInUse if
// the new list drops a category that a book still references.
func (m *Manager) SetCategories(ctx context.Context, items []ListItem) error {
	return m.setLabels(ctx, "category", KeyCategories, &m.categories, items, bookCategories)
}

// SetTags replaces the tag list. It fails with ErrLabelInUse if the new
// list drops a tag that a book still references.
func (m *Manager) SetTags(ctx context.Context, items []ListItem) error {
	return m.setLabels(ctx, "tag", KeyTags, &m.tags, items, bookTags)
}

func (m *Manager) setLabels(ctx context.Context, kind, key string, dst *[]ListItem, items []ListItem, pick func(Book) []int) error {
	items = cloneItems(items)
	if err := validateLabels(items); err != nil {
		return err
	}

	var stillUsed []string
	for _, it := range InUse(*dst, m.books, pick) {
		if LabelByID(items, it.ID) == nil {
			stillUsed = append(stillUsed, fmt.Sprintf("%q", it.Name))
		}
	}
	if len(stillUsed) > 0 {
		return fmt.Errorf("%s %s: %w", kind, strings.Join(stillUsed, ", "), ErrLabelInUse)
	}

	if err := m.persist(ctx, key, items); err != nil {
		return err
	}
	*dst = items
	m.logger.Debug("labels saved", "kind", kind, "count", len(items))
	return nil
}

// Replace swaps in a complete snapshot after validating every part of it.
func (m *Manager) Replace(ctx context.Context, snap *Snapshot) error {
	books := make([]Book, len(snap.Books))
	for i, b := range snap.Books {
		books[i] = b.normalize()
	}
	if err := validateStoredBooks(books); err != nil {
		return err
	}
	if err := validateLabels(snap.Categories); err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	if err := validateLabels(snap.Tags); err != nil {
		return fmt.Errorf("tags: %w", err)
	}

	cats, tags := cloneItems(snap.Categories), cloneItems(snap.Tags)
	if err := m.persist(ctx, KeyBooks, books); err != nil {
		return err
	}
	if err := m.persist(ctx, KeyCategories, cats); err != nil {
		return err
	}
	if err := m.persist(ctx, KeyTags, tags); err != nil {
		return err
	}
	m.books, m.categories, m.tags = books, cats, tags
	return nil
}

// SetFilterCategories replaces the category filter. Not persisted.
func (m *Manager) SetFilterCategories(ids []int) {
	m.filterCategories = append([]int{}, ids...)
}

// SetFilterTags replaces the tag filter. Not persisted.
func (m *Manager) SetFilterTags(ids []int) {
	m.filterTags = append([]int{}, ids...)
}

// NextBookID returns the id the next new book will receive.
func (m *Manager) NextBookID() int { return NextID(m.books) }

// FilteredBooks returns the books passing the current filter selection.
func (m *Manager) FilteredBooks() []Book {
	f := Filter{Categories: m.filterCategories, Tags: m.filterTags}
	return cloneBooks(f.Apply(m.books))
}

// UnremovableCategories returns the categories referenced by any book.
func (m *Manager) UnremovableCategories() []ListItem {
	return InUse(m.categories, m.books, bookCategories)
}

// UnremovableTags returns the tags referenced by any book.
func (m *Manager) UnremovableTags() []ListItem {
	return InUse(m.tags, m.books, bookTags)
}

// EditCategories opens a label session over the current categories.
func (m *Manager) EditCategories() *LabelSession {
	return NewLabelSession(m.categories, m.UnremovableCategories())
}

// EditTags opens a label session over the current tags.
func (m *Manager) EditTags() *LabelSession {
	return NewLabelSession(m.tags, m.UnremovableTags())
}

// Books returns every book, most recently touched first.
func (m *Manager) Books() []Book { return cloneBooks(m.books) }

// Categories returns the category list.
func (m *Manager) Categories() []ListItem { return cloneItems(m.categories) }

// Tags returns the tag list.
func (m *Manager) Tags() []ListItem { return cloneItems(m.tags) }

// FilterCategories returns the active category filter.
func (m *Manager) FilterCategories() []int { return append([]int{}, m.filterCategories...) }

// FilterTags returns the active tag filter.
func (m *Manager) FilterTags() []int { return append([]int{}, m.filterTags...) }

// CategoryName resolves a category id. Dangling ids render as a placeholder.
func (m *Manager) CategoryName(id int) string { return labelName(m.categories, id) }

// TagName resolves a tag id. Dangling ids render as a placeholder.
func (m *Manager) TagName(id int) string { return labelName(m.tags, id) }

func labelName(items []ListItem, id int) string {
	if it := LabelByID(items, id); it != nil {
		return it.Name
	}
	return fmt.Sprintf("#%d?", id)
}

// BookByID returns the book with id.
func (m *Manager) BookByID(id int) (Book, bool) {
	b := ByID(m.books, id)
	if b == nil {
		return Book{}, false
	}
	return b.clone(), true
}

// Snapshot returns a copy of all persisted collections.
func (m *Manager) Snapshot() *Snapshot {
	return &Snapshot{Books: m.Books(), Categories: m.Categories(), Tags: m.Tags()}
}

func validateBook(b Book) error {
	if err := validate.Validate(b); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// validateStoredBooks checks committed books: each valid, ids non-zero and
// unique.
func validateStoredBooks(books []Book) error {
	seen := make(map[int]struct{}, len(books))
	for i, b := range books {
		if err := validateBook(b); err != nil {
			return fmt.Errorf("book %d: %w", i+1, err)
		}
		if b.ID == 0 {
			return fmt.Errorf("book %d has no id: %w", i+1, ErrInvalid)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("duplicate book id %d: %w", b.ID, ErrInvalid)
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}

func validateLabels(items []ListItem) error {
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if err := validate.Validate(it); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("%w: label %d has a blank name", ErrInvalid, it.ID)
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("%w: duplicate label id %d", ErrInvalid, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}
