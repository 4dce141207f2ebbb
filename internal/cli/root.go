// Package cli implements the inventory command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/poolshark1904/gestao-produtos/internal/app"
	"github.com/poolshark1904/gestao-produtos/internal/config"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

type runFunc func(cmd *cobra.Command, args []string, a *app.Application) error

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "inventory",
		Short: "Manage the local product inventory",
		Long: `Inventory keeps a list of products on local storage, each with a QR code.
Scan payloads can be resolved back to the product they were printed for.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.yaml")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log informational messages")

	root.AddCommand(
		newListCmd(opts),
		newCreateCmd(opts),
		newEditCmd(opts),
		newDeleteCmd(opts),
		newScanCmd(opts),
	)

	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// withApp opens the application, loads the persisted list and closes
// everything once run returns.
func (o *rootOptions) withApp(run runFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		cfg.Logger.Level = cliLogLevel(cfg.Logger.Level, o.verbose)

		logger, err := app.NewLogger(cfg.Logger)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		a, err := app.New(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := a.Close(); err == nil {
				err = closeErr
			}
		}()

		if _, err := a.Store.Load(cmd.Context()); err != nil {
			return err
		}

		return run(cmd, args, a)
	}
}

// cliLogLevel quiets the default level to warn unless --verbose is set. A
// level chosen in the config file is kept as is.
func cliLogLevel(configured string, verbose bool) string {
	if verbose || configured != config.Default().Logger.Level {
		return configured
	}
	return "warn"
}
