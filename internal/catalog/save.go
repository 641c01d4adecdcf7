package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Marshal encodes a snapshot to YAML bytes.
func (s *Snapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the snapshot to a file on disk.
func (s *Snapshot) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Upsert puts b at the front of the list, replacing any book with the same
// ID. The most recently touched book is always first.
func Upsert(books []Book, b Book) []Book {
	out := make([]Book, 0, len(books)+1)
	out = append(out, b)
	for _, existing := range books {
		if existing.ID != b.ID {
			out = append(out, existing)
		}
	}
	return out
}

// Remove removes a book by ID. Returns the updated slice and whether a book
// was actually removed. The input slice is not modified.
func Remove(books []Book, id int) ([]Book, bool) {
	for i, b := range books {
		if b.ID == id {
			out := make([]Book, 0, len(books)-1)
			out = append(out, books[:i]...)
			return append(out, books[i+1:]...), true
		}
	}
	return books, false
}

// NextID returns max(book ids)+1, or 1 for an empty list.
func NextID(books []Book) int {
	maxID := 0
	for _, b := range books {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	return maxID + 1
}

// NextLabelID returns max(item ids)+1, or 1 for an empty list.
func NextLabelID(items []ListItem) int {
	maxID := 0
	for _, it := range items {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	return maxID + 1
}
