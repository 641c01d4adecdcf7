package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one book with its category and tag names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			b, found := mgr.BookByID(id)
			if !found {
				return fmt.Errorf("book %d not found", id)
			}
			renderBook(cmd.OutOrStdout(), b)
			return nil
		},
	}
}
