// Package cli wires configuration, storage and the task store behind the
// tasklist command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"git.sr.ht/~jakintosh/tasklist/internal/config"
	"git.sr.ht/~jakintosh/tasklist/internal/logging"
	"git.sr.ht/~jakintosh/tasklist/internal/store"
	"git.sr.ht/~jakintosh/tasklist/internal/tasks"
)

// app is the per-invocation state built before any subcommand runs.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	cfg     config.Config
	log     *slog.Logger
	backend store.Backend
	tasks   *tasks.Store
}

// NewRootCommand builds the command tree. Output goes to out, logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "tasklist",
		Short:         "A personal task list.",
		Long:          "tasklist keeps an ordered list of tasks you can add, complete, delete and filter.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(errOut)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./.tasklist.yaml or $HOME/.tasklist.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.String("storage", "", "storage backend: memory, file or sqlite")
	flags.String("data", "", "directory holding the task data")
	flags.String("key", "", "storage key for the task list")

	_ = a.v.BindPFlag("storage.backend", flags.Lookup("storage"))
	_ = a.v.BindPFlag("storage.dir", flags.Lookup("data"))
	_ = a.v.BindPFlag("storage.key", flags.Lookup("key"))

	root.AddCommand(
		newAddCommand(a),
		newToggleCommand(a),
		newDeleteCommand(a),
		newListCommand(a),
		newServeCommand(a),
		newTUICommand(a),
	)
	return root
}

func (a *app) setup(errOut io.Writer) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg
	a.log = logging.New(errOut, cfg.Log)
	slog.SetDefault(a.log)

	backend, err := store.Open(cfg.Storage.Backend, cfg.Storage.Dir)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	a.backend = backend

	ts, err := tasks.Open(backend, tasks.Options{Key: cfg.Storage.Key, Logger: a.log})
	if err != nil {
		_ = backend.Close()
		return err
	}
	a.tasks = ts
	a.log.Debug("storage ready",
		"backend", cfg.Storage.Backend,
		"dir", cfg.Storage.Dir,
		"key", cfg.Storage.Key,
	)
	return nil
}

func (a *app) close() error {
	if a.backend == nil {
		return nil
	}
	err := a.backend.Close()
	a.backend = nil
	return err
}

// Execute runs the tasklist CLI and exits non-zero on error.
func Execute() {
	root := NewRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
