package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/blackwell-systems/bookbin/internal/catalog"
	"github.com/blackwell-systems/bookbin/internal/explore"
	"github.com/blackwell-systems/bookbin/internal/validation"
)

// labelKind binds the label commands to either categories or tags.
type labelKind struct {
	singular string
	plural   string
	list     func() []catalog.ListItem
	inUse    func() []catalog.ListItem
	edit     func() *catalog.LabelSession
	commit   func(ctx context.Context, items []catalog.ListItem) error
}

var categoryKind = labelKind{
	singular: "category",
	plural:   "categories",
	list:     func() []catalog.ListItem { return mgr.Categories() },
	inUse:    func() []catalog.ListItem { return mgr.UnremovableCategories() },
	edit:     func() *catalog.LabelSession { return mgr.EditCategories() },
	commit: func(ctx context.Context, items []catalog.ListItem) error {
		return mgr.SetCategories(ctx, items)
	},
}

var tagKind = labelKind{
	singular: "tag",
	plural:   "tags",
	list:     func() []catalog.ListItem { return mgr.Tags() },
	inUse:    func() []catalog.ListItem { return mgr.UnremovableTags() },
	edit:     func() *catalog.LabelSession { return mgr.EditTags() },
	commit: func(ctx context.Context, items []catalog.ListItem) error {
		return mgr.SetTags(ctx, items)
	},
}

// parseID parses a positive book or label id.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive number", s)
	}
	return id, nil
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// resolveLabel finds a label by case-insensitive name, then by id.
func resolveLabel(items []catalog.ListItem, ref, kind string) (catalog.ListItem, error) {
	if it := catalog.LabelByName(items, ref); it != nil {
		return *it, nil
	}
	if id, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
		if it := catalog.LabelByID(items, id); it != nil {
			return *it, nil
		}
	}
	return catalog.ListItem{}, fmt.Errorf("unknown %s %q", kind, ref)
}

// resolveLabels maps names or ids to label ids, preserving order.
func resolveLabels(items []catalog.ListItem, refs []string, kind string) ([]int, error) {
	ids := make([]int, 0, len(refs))
	for _, ref := range refs {
		it, err := resolveLabel(items, ref, kind)
		if err != nil {
			return nil, err
		}
		ids = append(ids, it.ID)
	}
	return ids, nil
}

// parseIndices parses 1-based candidate numbers like "1,3,4" into sorted,
// de-duplicated 0-based indices below n.
func parseIndices(s string, n int) ([]int, error) {
	seen := map[int]bool{}
	var out []int
	for _, part := range splitList(s) {
		i, err := strconv.Atoi(part)
		if err != nil || i < 1 || i > n {
			return nil, fmt.Errorf("invalid selection %q: pick numbers between 1 and %d", part, n)
		}
		if !seen[i-1] {
			seen[i-1] = true
			out = append(out, i-1)
		}
	}
	sort.Ints(out)
	return out, nil
}

// describe turns a command error into the line shown to the user.
func describe(err error) string {
	var fields validation.FieldErrors
	switch {
	case errors.As(err, &fields):
		return "invalid input: " + fields.Error()
	case errors.Is(err, catalog.ErrDuplicateName):
		return err.Error() + " (names are case-insensitive)"
	case errors.Is(err, catalog.ErrNotRemovable), errors.Is(err, catalog.ErrLabelInUse):
		return err.Error() + "; remove it from every book first"
	case errors.Is(err, explore.ErrUnavailable):
		return "explore source is unreachable: " + err.Error()
	default:
		return err.Error()
	}
}
