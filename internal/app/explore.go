package app

import (
	"fmt"

	"github.com/blackwell-systems/bookbin/internal/catalog"
	"github.com/blackwell-systems/bookbin/internal/explore"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newExploreCmd() *cobra.Command {
	var (
		count     int
		selection string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Fetch book suggestions and optionally import them",
		Long: `Fetch random book suggestions from the explore source and list them.
Pass --import with candidate numbers, or --all, to add them as new books.
Importing one candidate also drops every other candidate with the same title.

Examples:
  bookbin explore
  bookbin explore --count 5 --import 1,3
  bookbin explore --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count <= 0 {
				count = cfg.Explore.Count
			}
			client := explore.New(cfg.Explore.BaseURL, cfg.Explore.Timeout, cfg.Explore.RatePerSecond)
			session := explore.NewSession(client, count, log)
			defer session.Close()

			if err := <-session.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("fetching suggestions: %w", err)
			}
			candidates := session.Candidates()
			if len(candidates) == 0 {
				warn("The explore source returned no books")
				return nil
			}

			header("%d suggestions", len(candidates))
			for i, c := range candidates {
				fmt.Fprintf(cmd.OutOrStdout(), "  %2d. %s %s\n", i+1, c.Title,
					color.HiBlackString("by %s · %s", c.Author, c.Genre))
			}

			var picked []int
			switch {
			case all:
				for i := range candidates {
					picked = append(picked, i)
				}
			case selection != "":
				var err error
				if picked, err = parseIndices(selection, len(candidates)); err != nil {
					return err
				}
			default:
				return nil
			}

			titles := make([]string, len(picked))
			for i, idx := range picked {
				titles[i] = candidates[idx].Title
			}
			imported := importCandidates(cmd, session, titles)
			if imported > 0 {
				notifier.Show(fmt.Sprintf("Imported %d book(s)", imported))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of suggestions to fetch (default from config)")
	cmd.Flags().StringVar(&selection, "import", "", "Comma-separated candidate numbers to import")
	cmd.Flags().BoolVar(&all, "all", false, "Import every candidate")
	cmd.MarkFlagsMutuallyExclusive("import", "all")
	return cmd
}

// importCandidates takes each title from the session and saves it as a new
// book. Titles already consumed by an earlier take are skipped.
func importCandidates(cmd *cobra.Command, session *explore.Session, titles []string) int {
	imported := 0
	for _, title := range titles {
		idx := indexOfTitle(session.Candidates(), title)
		if idx < 0 {
			continue
		}
		stub, err := session.Take(idx)
		if err != nil {
			warn("Could not take %q: %v", title, err)
			continue
		}
		saved, err := mgr.UpsertBook(cmd.Context(), stub.ToBook())
		if err != nil {
			warn("Skipped %q: %s", title, describe(err))
			continue
		}
		ok("Imported #%d %q", saved.ID, saved.Title)
		imported++
	}
	return imported
}

func indexOfTitle(candidates []catalog.ExploreStub, title string) int {
	for i, c := range candidates {
		if c.Title == title {
			return i
		}
	}
	return -1
}
