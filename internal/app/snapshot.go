package app

import (
	"fmt"

	"github.com/blackwell-systems/bookbin/internal/catalog"
	"github.com/blackwell-systems/bookbin/internal/util"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "export <file.yml>",
		Short: "Write books, categories and tags to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := args[0]
			if util.FileExists(path) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := util.EnsureParent(path); err != nil {
				return err
			}
			snap := mgr.Snapshot()
			if err := snap.Save(path); err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}
			ok("Exported %d books, %d categories, %d tags to %s",
				len(snap.Books), len(snap.Categories), len(snap.Tags), path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yml>",
		Short: "Replace the whole catalog with a YAML snapshot",
		Long: `Replace books, categories and tags with the contents of a file written
by 'bookbin export'. Every book and label is validated first; nothing is
changed if any entry is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := catalog.LoadSnapshot(args[0])
			if err != nil {
				return fmt.Errorf("reading snapshot: %w", err)
			}
			if err := mgr.Replace(cmd.Context(), snap); err != nil {
				return err
			}
			ok("Imported %d books, %d categories, %d tags",
				len(snap.Books), len(snap.Categories), len(snap.Tags))
			notifier.Show("Catalog replaced")
			return nil
		},
	}
}
