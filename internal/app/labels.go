package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/bookbin/internal/catalog"
	"github.com/spf13/cobra"
)

func newLabelsCmd(kind labelKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.plural,
		Short: fmt.Sprintf("List and edit %s", kind.plural),
		Long: fmt.Sprintf(`List and edit %[1]s.

Names are unique ignoring case. A %[2]s that any book uses cannot be removed.

Examples:
  bookbin %[1]s
  bookbin %[1]s add "Science Fiction"
  bookbin %[1]s rename 2 "Modern Literature"
  bookbin %[1]s remove "Science Fiction"`, kind.plural, kind.singular),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listLabels(cmd, kind)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: fmt.Sprintf("List %s and whether they are in use", kind.plural),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return listLabels(cmd, kind)
			},
		},
		&cobra.Command{
			Use:   "add <name>",
			Short: fmt.Sprintf("Add a %s", kind.singular),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var added catalog.ListItem
				err := editLabels(cmd, kind, func(s *catalog.LabelSession) error {
					var err error
					added, err = s.Add(args[0])
					return err
				})
				if err != nil {
					return err
				}
				ok("Added %s #%d %q", kind.singular, added.ID, added.Name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "rename <id|name> <new-name>",
			Short: fmt.Sprintf("Rename a %s", kind.singular),
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				var target catalog.ListItem
				err := editLabels(cmd, kind, func(s *catalog.LabelSession) error {
					var err error
					if target, err = resolveLabel(s.Items(), args[0], kind.singular); err != nil {
						return err
					}
					return s.Rename(target.ID, args[1])
				})
				if err != nil {
					return err
				}
				ok("Renamed %s %q to %q", kind.singular, target.Name, strings.TrimSpace(args[1]))
				return nil
			},
		},
		&cobra.Command{
			Use:     "remove <id|name>",
			Aliases: []string{"rm"},
			Short:   fmt.Sprintf("Remove an unused %s", kind.singular),
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var target catalog.ListItem
				err := editLabels(cmd, kind, func(s *catalog.LabelSession) error {
					var err error
					if target, err = resolveLabel(s.Items(), args[0], kind.singular); err != nil {
						return err
					}
					return s.Remove(target.ID)
				})
				if err != nil {
					return err
				}
				ok("Removed %s %q", kind.singular, target.Name)
				return nil
			},
		},
	)
	return cmd
}

func listLabels(cmd *cobra.Command, kind labelKind) error {
	items := kind.list()
	if len(items) == 0 {
		warn("No %s yet. Add one with: bookbin %s add <name>", kind.plural, kind.plural)
		return nil
	}
	header("%d %s", len(items), kind.plural)
	renderLabels(cmd.OutOrStdout(), items, kind.inUse())
	return nil
}

// editLabels runs change inside a label session and commits the result.
// The session is cancelled if change fails.
func editLabels(cmd *cobra.Command, kind labelKind, change func(*catalog.LabelSession) error) error {
	s := kind.edit()
	if err := change(s); err != nil {
		s.Cancel()
		return err
	}
	items, err := s.Commit()
	if err != nil {
		return err
	}
	if err := kind.commit(cmd.Context(), items); err != nil {
		return err
	}
	notifier.Show(fmt.Sprintf("Saved %s", kind.plural))
	return nil
}
