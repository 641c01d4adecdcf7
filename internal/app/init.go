package app

import (
	"fmt"

	"github.com/blackwell-systems/bookbin/internal/config"
	"github.com/blackwell-systems/bookbin/internal/util"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		driver string
		dir    string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default settings",
		Long: `Write a config file. Existing settings (file and BOOKBIN_* env) are kept
and overridden by any flags given here.

Examples:
  bookbin init
  bookbin init --driver sqlite --dir ~/books`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipStore: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.Path(flagConfig)
			if util.FileExists(path) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			next := *cfg
			if cmd.Flags().Changed("driver") {
				next.Storage.Driver = driver
			}
			if cmd.Flags().Changed("dir") {
				next.Storage.Dir = config.ExpandHome(dir)
			}
			if err := next.Validate(); err != nil {
				return err
			}

			if err := config.Save(&next, path); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			ok("Wrote %s", path)
			fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s\n", "driver:", next.Storage.Driver)
			fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s\n", "data:", next.Storage.Location())
			return nil
		},
	}

	cmd.Flags().StringVar(&driver, "driver", "", "Storage driver: file, badger, sqlite or memory")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory for catalog data")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}
