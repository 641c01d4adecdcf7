package app

import (
	"github.com/blackwell-systems/bookbin/internal/catalog"
	"github.com/spf13/cobra"
)

// bookFlags are the editable fields shared by add and edit.
type bookFlags struct {
	title      string
	author     string
	genre      string
	rating     int
	categories string
	tags       string
}

func (f *bookFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Book title")
	cmd.Flags().StringVar(&f.author, "author", "", "Book author")
	cmd.Flags().StringVar(&f.genre, "genre", "", "Book genre")
	cmd.Flags().IntVar(&f.rating, "rating", 0, "Rating from 0 to 5")
	cmd.Flags().StringVar(&f.categories, "categories", "", "Comma-separated category names or ids")
	cmd.Flags().StringVar(&f.tags, "tags", "", "Comma-separated tag names or ids")
}

// apply copies every flag the user set onto b.
func (f *bookFlags) apply(cmd *cobra.Command, b catalog.Book) (catalog.Book, error) {
	changed := cmd.Flags().Changed
	if changed("title") {
		b.Title = f.title
	}
	if changed("author") {
		b.Author = f.author
	}
	if changed("genre") {
		b.Genre = f.genre
	}
	if changed("rating") {
		b.Rating = f.rating
	}
	if changed("categories") {
		ids, err := resolveLabels(mgr.Categories(), splitList(f.categories), "category")
		if err != nil {
			return b, err
		}
		b.Categories = ids
	}
	if changed("tags") {
		ids, err := resolveLabels(mgr.Tags(), splitList(f.tags), "tag")
		if err != nil {
			return b, err
		}
		b.Tags = ids
	}
	return b, nil
}

func newAddCmd() *cobra.Command {
	var flags bookFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book",
		Long: `Add a new book. It receives the next free id and goes to the top of the list.

Examples:
  bookbin add --title "Dune" --author "Frank Herbert" --genre "Science Fiction"
  bookbin add --title "Emma" --author "Jane Austen" --genre Romance \
      --rating 4 --categories Classics --tags "Must Read,Favorite"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := flags.apply(cmd, catalog.NewBook())
			if err != nil {
				return err
			}
			saved, err := mgr.UpsertBook(cmd.Context(), b)
			if err != nil {
				return err
			}
			ok("Added #%d %q", saved.ID, saved.Title)
			notifier.Show("Book saved")
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newEditCmd() *cobra.Command {
	var flags bookFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a book",
		Long: `Change one or more fields of a book. Unset flags keep their value;
--categories and --tags replace the whole set (pass "" to clear).

Examples:
  bookbin edit 2 --rating 5
  bookbin edit 3 --tags "Classic,Thought-Provoking"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			b, found := mgr.BookByID(id)
			if !found {
				notifier.Show("Error! Book not found!")
				return errReported
			}
			if b, err = flags.apply(cmd, b); err != nil {
				return err
			}
			saved, err := mgr.UpsertBook(cmd.Context(), b)
			if err != nil {
				return err
			}
			ok("Updated #%d %q", saved.ID, saved.Title)
			notifier.Show("Book saved")
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
