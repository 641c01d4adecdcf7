package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackwell-systems/bookbin/internal/catalog"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
)

const (
	titleWidth = 40
	cellWidth  = 24
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ratingStars renders a 0..5 rating as filled and empty stars.
func ratingStars(r int) string {
	if r < 0 {
		r = 0
	}
	if r > 5 {
		r = 5
	}
	return strings.Repeat("★", r) + strings.Repeat("☆", 5-r)
}

// labelNames joins the names of ids using name to resolve each one.
func labelNames(ids []int, name func(int) string) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = name(id)
	}
	return strings.Join(names, ", ")
}

// renderBooks writes books as a bordered table.
func renderBooks(w io.Writer, books []catalog.Book) {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			fmt.Sprintf("%d", b.ID),
			xansi.Truncate(b.Title, titleWidth, "…"),
			xansi.Truncate(b.Author, cellWidth, "…"),
			xansi.Truncate(b.Genre, cellWidth, "…"),
			ratingStars(b.Rating),
			xansi.Truncate(labelNames(b.Categories, mgr.CategoryName), cellWidth, "…"),
			xansi.Truncate(labelNames(b.Tags, mgr.TagName), cellWidth, "…"),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "TITLE", "AUTHOR", "GENRE", "RATING", "CATEGORIES", "TAGS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 {
				return dimStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.String())
}

// renderBook writes one book as aligned fields.
func renderBook(w io.Writer, b catalog.Book) {
	fmt.Fprintln(w, color.CyanString("Book #%d", b.ID))
	fmt.Fprintf(w, "  %-12s %s\n", "title:", b.Title)
	fmt.Fprintf(w, "  %-12s %s\n", "author:", b.Author)
	fmt.Fprintf(w, "  %-12s %s\n", "genre:", b.Genre)
	fmt.Fprintf(w, "  %-12s %s (%d/5)\n", "rating:", ratingStars(b.Rating), b.Rating)
	fmt.Fprintf(w, "  %-12s %s\n", "categories:", orNone(labelNames(b.Categories, mgr.CategoryName)))
	fmt.Fprintf(w, "  %-12s %s\n", "tags:", orNone(labelNames(b.Tags, mgr.TagName)))
}

// renderLabels writes a label list, marking labels that books reference.
func renderLabels(w io.Writer, items, inUse []catalog.ListItem) {
	used := make(map[int]bool, len(inUse))
	for _, it := range inUse {
		used[it.ID] = true
	}
	for _, it := range items {
		mark := color.GreenString("removable")
		if used[it.ID] {
			mark = color.YellowString("in use")
		}
		fmt.Fprintf(w, "  %3d  %-28s %s\n", it.ID, xansi.Truncate(it.Name, 28, "…"), mark)
	}
}

func orNone(s string) string {
	if s == "" {
		return color.HiBlackString("(none)")
	}
	return s
}
