package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/camfiles/pkg/camfiles"
	"github.com/arthur-debert/camfiles/pkg/camfiles/storage"
)

// app carries what the subcommands share once flags and config are resolved.
type app struct {
	configFile string

	cfg     storage.Config
	logger  zerolog.Logger
	helper  *camfiles.Helper
	storage *storage.Context
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "camfiles",
		Short: "Manage a camera application's image storage",
		Long: `camfiles prepares and maintains the directories a camera application writes
images to. It can make sure directories and files exist, report where the
image cache lives, and clear the cached images.

Storage locations come from flags, CAMFILES_* environment variables or a
config file, in that order of priority.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (YAML, TOML or JSON)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.String("external-root", "", "directory standing in for external storage")
	flags.String("pictures-subdir", "", "pictures directory below the external root")
	flags.String("cache-dir", "", "internal cache directory")
	flags.String("media-subdir", "", "shared media directory below the external root")
	flags.String("files-dir", "", "internal files directory")
	flags.String("app-name", "", "application folder name inside the media directory")
	flags.String("mounted", "", "external storage state: auto, true or false")

	cmd.AddCommand(newVersionCommand())
	cmd.AddCommand(newEnsureDirCommand(a))
	cmd.AddCommand(newEnsureFileCommand(a))
	cmd.AddCommand(newCacheDirCommand(a))
	cmd.AddCommand(newClearCacheCommand(a))
	cmd.AddCommand(newOutputDirCommand(a))
	cmd.AddCommand(newNewPhotoCommand(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	v, err := storage.NewViper(a.configFile)
	if err != nil {
		return err
	}
	if err := storage.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := storage.LoadConfig(v)
	if err != nil {
		return err
	}

	logger, err := camfiles.NewLoggerFromLevel(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.helper = camfiles.New(camfiles.WithLogger(a.logger))
	a.storage = storage.NewContext(cfg, a.logger)
	return nil
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  `Print the version number of camfiles`,
		// Skip config loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "camfiles version %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
