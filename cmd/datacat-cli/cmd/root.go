package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"datacat/internal/adapters/sqlite"
	"datacat/internal/application"
	"datacat/internal/config"
	"datacat/internal/logging"
)

var (
	configPath   string
	dataOverride string
	verbose      bool

	logger *zap.Logger
	store  *sqlite.SessionStore
	auth   *application.AuthProvider
	data   *application.DataProvider
)

// Commands reachable without a session.
var publicCommands = map[string]bool{
	"login":      true,
	"logout":     true,
	"help":       true,
	"completion": true,
}

var rootCmd = &cobra.Command{
	Use:   "datacat-cli",
	Short: "CLI for browsing the data catalogue",
	Long: `datacat-cli is a command-line interface to the data catalogue.

It lists the available datasets, searches and sorts their records one page
at a time, prints the category tree, and shows single records. Sign in with
"datacat-cli login" first; the session is shared with the datacat TUI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if err := setup(); err != nil {
			return err
		}
		if !publicCommands[cmd.Name()] {
			if _, err := auth.RequireUser(); err != nil {
				return fmt.Errorf("%w: run \"datacat-cli login <username> <password>\" first", err)
			}
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "path to the config file")
	rootCmd.PersistentFlags().StringVar(&dataOverride, "data", "", "directory or base URL holding the dataset documents")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "log informational messages to stderr")
}

func setup() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dataOverride != "" {
		cfg.Data = dataOverride
	}
	// Keep stderr quiet for scripting unless asked otherwise.
	if !verbose && cfg.Log.File == "" && os.Getenv("DATACAT_LOG_LEVEL") == "" {
		cfg.Log.Level = "warn"
	}

	logger, err = logging.New(cfg.Log, "stderr")
	if err != nil {
		return err
	}

	store, err = sqlite.OpenSessionStore(cfg.SessionDB)
	if err != nil {
		return err
	}
	auth = application.NewAuthProvider(store, nil, logger.Named("auth"))
	if err := auth.Restore(context.Background()); err != nil {
		logger.Warn("could not restore session", zap.Error(err))
	}

	source, err := cfg.Source()
	if err != nil {
		return err
	}
	data = application.NewDataProvider(source, logger.Named("data"))
	return nil
}

func cleanup() {
	if store != nil {
		store.Close()
		store = nil
	}
	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
}
