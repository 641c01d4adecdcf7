package app

import (
	"errors"

	"github.com/blackwell-systems/bookbin/internal/catalog"
	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a book from the catalog",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			b, _ := mgr.BookByID(id)
			if b.ID == 0 {
				b.ID = id
			}

			err = mgr.DeleteBook(cmd.Context(), b)
			if errors.Is(err, catalog.ErrNotFound) {
				notifier.Show("Error! Book not found!")
				return errReported
			}
			if err != nil {
				return err
			}
			ok("Deleted #%d %q", id, b.Title)
			notifier.Show("Book deleted")
			return nil
		},
	}
}
