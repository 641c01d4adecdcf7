package app

import (
	"encoding/json"

	"github.com/blackwell-systems/bookbin/internal/catalog"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		categories []string
		tags       []string
		search     string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books, optionally filtered by category, tag or text",
		Long: `List books, most recently added or edited first.

Filters combine: a book must match at least one of the given categories AND
at least one of the given tags. Labels may be given by name or id.

Examples:
  bookbin list
  bookbin list --category Classics --category Dystopian
  bookbin list --tag "Must Read" --search orwell
  bookbin list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catIDs, err := resolveLabels(mgr.Categories(), categories, "category")
			if err != nil {
				return err
			}
			tagIDs, err := resolveLabels(mgr.Tags(), tags, "tag")
			if err != nil {
				return err
			}
			mgr.SetFilterCategories(catIDs)
			mgr.SetFilterTags(tagIDs)

			books := catalog.Filter{Search: search}.Apply(mgr.FilteredBooks())

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(books)
			}
			if len(books) == 0 {
				warn("No books match")
				return nil
			}
			renderBooks(cmd.OutOrStdout(), books)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&categories, "category", nil, "Filter by category name or id (repeatable)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Filter by tag name or id (repeatable)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Case-insensitive text in title, author or genre")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print books as JSON")
	return cmd
}
