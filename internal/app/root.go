package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/blackwell-systems/bookbin/internal/catalog"
	"github.com/blackwell-systems/bookbin/internal/config"
	"github.com/blackwell-systems/bookbin/internal/logger"
	"github.com/blackwell-systems/bookbin/internal/notify"
	"github.com/blackwell-systems/bookbin/internal/storage"
	"github.com/blackwell-systems/bookbin/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	log      *slog.Logger
	store    storage.Store
	mgr      *catalog.Manager
	notifier *notify.Notifier

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	flagNoColor   bool
	flagConfig    string
	flagEphemeral bool

	appVersion = "dev"
)

// errReported marks a failure whose message was already shown.
var errReported = errors.New("reported")

// skipStore is the annotation for commands that run without a catalog.
const skipStore = "skip-store"

// SetVersion records the build version printed by `bookbin version`.
func SetVersion(v string) {
	if v != "" {
		appVersion = v
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookbin",
		Short: "Keep a personal catalog of books, categories and tags",
		Long: `bookbin records books (title, author, genre, rating) and organises them
with your own categories and tags.

Data lives in local storage as three JSON blobs (books, categories, tags).
Run 'bookbin init' to write a config file, or just start with 'bookbin list'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/bookbin/config.yml)")
	root.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Keep the catalog in memory only")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		log = logger.New(cfg.Log.Level, cfg.Log.Format, stderr)
		notifier = notify.New(showNotice, cfg.Notify.Duration)

		if cmd.Annotations[skipStore] != "" {
			return nil
		}
		return openCatalog(cmd.Context())
	}

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newAddCmd(),
		newEditCmd(),
		newDeleteCmd(),
		newLabelsCmd(categoryKind),
		newLabelsCmd(tagKind),
		newExploreCmd(),
		newExportCmd(),
		newImportCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
	return root
}

func openCatalog(ctx context.Context) error {
	driver := storage.Driver(cfg.Storage.Driver)
	if flagEphemeral {
		driver = storage.DriverMemory
	}
	var err error
	store, err = storage.Open(driver, cfg.Storage.Location())
	if err != nil {
		return fmt.Errorf("opening %s storage: %w", driver, err)
	}
	log.Debug("storage opened", "driver", store.Driver(), "path", cfg.Storage.Location())
	if mgr, err = catalog.Open(ctx, store, log); err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	return nil
}

// run executes one command line and releases the catalog afterwards.
func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	stdout, stderr = out, errOut
	defer func() {
		if notifier != nil {
			notifier.Dismiss()
		}
		if store != nil {
			if err := store.Close(); err != nil {
				log.Warn("closing storage", "error", err)
			}
			store, mgr = nil, nil
		}
	}()

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

// Execute is the entry point called from main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, color.RedString("✗"), describe(err))
		}
		stop()
		os.Exit(1)
	}
}

// showNotice is the notifier sink. Dismissals print nothing on a terminal.
func showNotice(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintln(stdout, color.CyanString("»"), msg)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Fprintln(stdout, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Fprintln(stdout, color.CyanString(fmt.Sprintf(format, a...)))
}
