package catalog

import (
	"fmt"
	"strings"
)

// LabelSession edits a working copy of a category or tag list. Nothing
// reaches the manager until the caller passes Commit's result to
// SetCategories or SetTags.
type LabelSession struct {
	items  []sessionItem
	closed bool
}

type sessionItem struct {
	ListItem
	removable bool
}

// NewLabelSession copies list and marks every item found in unremovable
// as not removable.
func NewLabelSession(list, unremovable []ListItem) *LabelSession {
	s := &LabelSession{items: make([]sessionItem, 0, len(list))}
	for _, it := range list {
		s.items = append(s.items, sessionItem{
			ListItem:  it,
			removable: LabelByID(unremovable, it.ID) == nil,
		})
	}
	return s
}

// Items returns the current working copy.
func (s *LabelSession) Items() []ListItem {
	out := make([]ListItem, len(s.items))
	for i, it := range s.items {
		out[i] = it.ListItem
	}
	return out
}

// Removable reports whether the item with id may be removed.
func (s *LabelSession) Removable(id int) bool {
	i := s.index(id)
	return i >= 0 && s.items[i].removable
}

// Add appends a new label named name with the next free id.
func (s *LabelSession) Add(name string) (ListItem, error) {
	if s.closed {
		return ListItem{}, ErrSessionClosed
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ListItem{}, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if s.nameTaken(name, 0) {
		return ListItem{}, fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}

	it := ListItem{ID: NextLabelID(s.Items()), Name: name}
	s.items = append(s.items, sessionItem{ListItem: it, removable: true})
	return it, nil
}

// Rename changes the name of label id. The label's own current name does
// not count as a collision.
func (s *LabelSession) Rename(id int, name string) error {
	if s.closed {
		return ErrSessionClosed
	}
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("label %d: %w", id, ErrNotFound)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if s.nameTaken(name, id) {
		return fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}
	s.items[i].Name = name
	return nil
}

// Remove drops label id from the working copy unless it is in use.
func (s *LabelSession) Remove(id int) error {
	if s.closed {
		return ErrSessionClosed
	}
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("label %d: %w", id, ErrNotFound)
	}
	if !s.items[i].removable {
		return fmt.Errorf("%q: %w", s.items[i].Name, ErrNotRemovable)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// Commit closes the session and returns the working copy.
func (s *LabelSession) Commit() ([]ListItem, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	s.closed = true
	return s.Items(), nil
}

// Cancel closes the session and discards the working copy.
func (s *LabelSession) Cancel() {
	s.closed = true
	s.items = nil
}

func (s *LabelSession) index(id int) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// nameTaken ignores the item with id except; pass 0 to check every item.
func (s *LabelSession) nameTaken(name string, except int) bool {
	for _, it := range s.items {
		if it.ID != except && strings.EqualFold(it.Name, name) {
			return true
		}
	}
	return false
}
