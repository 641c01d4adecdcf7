package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseBooks decodes a persisted book blob.
func ParseBooks(data []byte) ([]Book, error) {
	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parsing books: %w", err)
	}
	if books == nil {
		return nil, fmt.Errorf("parsing books: not a list")
	}
	for i := range books {
		books[i] = books[i].normalize()
	}
	return books, nil
}

// ParseLabels decodes a persisted category or tag blob.
func ParseLabels(data []byte) ([]ListItem, error) {
	var items []ListItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing labels: %w", err)
	}
	if items == nil {
		return nil, fmt.Errorf("parsing labels: not a list")
	}
	return items, nil
}

// Snapshot is the whole catalog as written by export and read by import.
type Snapshot struct {
	Books      []Book     `yaml:"books"`
	Categories []ListItem `yaml:"categories"`
	Tags       []ListItem `yaml:"tags"`
}

// LoadSnapshot reads a YAML snapshot file from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return ParseSnapshot(data)
}

// ParseSnapshot decodes YAML bytes into a snapshot. Missing sections come
// back as empty lists.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot YAML: %w", err)
	}
	for i := range snap.Books {
		snap.Books[i] = snap.Books[i].normalize()
	}
	if snap.Books == nil {
		snap.Books = []Book{}
	}
	if snap.Categories == nil {
		snap.Categories = []ListItem{}
	}
	if snap.Tags == nil {
		snap.Tags = []ListItem{}
	}
	return &snap, nil
}
