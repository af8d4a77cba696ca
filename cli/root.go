// Package cli implements the heavyedge command line: dataset inspection,
// averaging, breakpoint fitting, edge reshaping and plotting over profile
// stores.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/heavyedge/config"
	"github.com/katalvlaran/heavyedge/logging"
	"github.com/katalvlaran/heavyedge/store"
)

// ErrNoStore is returned when neither an argument nor store.path names a
// dataset file.
var ErrNoStore = errors.New("cli: no profile store given")

// flagKeys maps command-line flags to configuration keys. A flag is bound
// only for the command being executed, so commands sharing a flag name do
// not shadow each other.
var flagKeys = map[string]string{
	"wnum":         "mean.grid_num",
	"batch-size":   "mean.batch_size",
	"tol":          "segreg.tol",
	"max-iter":     "segreg.max_iter",
	"max-halvings": "segreg.max_halvings",
	"log-level":    "logging.level",
	"log-format":   "logging.format",
}

// app is the state shared by the commands of one root.
type app struct {
	v       *viper.Viper
	cfgPath string
	cfg     *config.Config
	log     *logging.Logger
}

// NewRootCmd builds the heavyedge command tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()

	return root
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "heavyedge",
		Short: "Analyze edge profiles",
		Long: `heavyedge averages large collections of edge profiles stored in
SQLite datasets, fits plateau-to-edge breakpoints and reshapes profiles.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error { return a.close() },
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default ./heavyedge.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "console", "log format: console or json")

	root.AddCommand(
		a.infoCmd(),
		a.meanCmd(),
		a.segregCmd(),
		a.plotCmd(),
		a.scaleCmd(),
		a.trimCmd(),
		a.padCmd(),
		a.mergeCmd(),
	)

	return root, a
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	root, a := newRootCmd()
	err := root.Execute()
	// post-run hooks are skipped when a command fails
	_ = a.close()
	if err != nil {
		os.Exit(1)
	}
}

// close releases the log file, if any.
func (a *app) close() error {
	return a.log.Close()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("cli: bind --%s: %w", name, err)
			}
		}
	}

	cfg, err := config.LoadViper(a.v, a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	switch cfg.Logging.OutputPath {
	case "", "stderr":
		a.log = logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	default:
		if a.log, err = logging.FromConfig(cfg.Logging); err != nil {
			return err
		}
	}
	a.log = a.log.With("cmd", cmd.Name())

	return nil
}

// storeArg resolves the dataset path from args[0] or store.path.
func (a *app) storeArg(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if a.cfg != nil && a.cfg.Store.Path != "" {
		return a.cfg.Store.Path, nil
	}

	return "", ErrNoStore
}

// openStore opens the dataset named by args or store.path.
func (a *app) openStore(args []string) (*store.Store, error) {
	path, err := a.storeArg(args)
	if err != nil {
		return nil, err
	}
	a.log.Debug("opening store", "path", path)

	return store.Open(path)
}
