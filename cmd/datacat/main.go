package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"datacat/internal/adapters/sqlite"
	"datacat/internal/adapters/tui"
	"datacat/internal/adapters/tui/views"
	"datacat/internal/application"
	"datacat/internal/application/query"
	"datacat/internal/config"
	"datacat/internal/domain"
	"datacat/internal/logging"
)

func main() {
	configFlag := flag.String("config", config.DefaultPath(), "path to the config file")
	dataFlag := flag.String("data", "", "directory or base URL holding the dataset documents")
	datasetFlag := flag.String("dataset", domain.DatasetDefault.String(), "dataset to open first")
	flag.Parse()

	if err := run(*configFlag, *dataFlag, *datasetFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, dataOverride, datasetName string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dataOverride != "" {
		cfg.Data = dataOverride
	}

	dataset, err := domain.ParseDatasetName(datasetName)
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs default to a file.
	logger, err := logging.New(cfg.Log, filepath.Join(sqlite.DataDir(), "datacat.log"))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	store, err := sqlite.OpenSessionStore(cfg.SessionDB)
	if err != nil {
		return err
	}
	defer store.Close()

	auth := application.NewAuthProvider(store, nil, logger.Named("auth"))
	if err := auth.Restore(context.Background()); err != nil {
		// An unreadable marker only means signing in again.
		logger.Warn("could not restore session", zap.Error(err))
	}

	source, err := cfg.Source()
	if err != nil {
		return err
	}
	data := application.NewDataProvider(source, logger.Named("data"))

	view := query.NewView(nil, cfg.GetDebounce(), query.PageSize, nil)
	defer view.Close()

	catalogue := views.NewCatalogueModel(auth, data, view, tui.NewClipboard(), dataset, logger.Named("tui"))
	app := tui.NewApp(auth, catalogue)

	logger.Info("starting", zap.String("data", cfg.Data), zap.String("dataset", dataset.String()))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
