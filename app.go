package main

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"keyforest/internal/config"
	"keyforest/internal/controller"
	"keyforest/internal/services"
	"keyforest/internal/watch"
)

// App struct
type App struct {
	ctx        context.Context
	cfg        *config.Config
	log        *zap.Logger
	dbClose    func() error
	controller *controller.Controller
	notifier   services.Notifier
	watcher    *watch.Watcher
}

// DataPaths tells the webview where the store lives.
type DataPaths struct {
	DataDir   string `json:"dataDir"`
	Profiles  string `json:"profiles"`
	Shortcuts string `json:"shortcuts"`
	Backups   string `json:"backups"`
}

// NewApp creates a new App application struct
func NewApp(cfg *config.Config, log *zap.Logger) *App {
	return &App{cfg: cfg, log: log}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	if !a.cfg.Watch {
		return
	}
	w, err := watch.New(a.cfg.DataDir, []string{
		config.ProfilesFileName,
		config.ShortcutsFileName,
	}, a.storeChanged, a.log.Named("watch"))
	if err != nil {
		a.log.Warn("file watcher unavailable", zap.Error(err))
		return
	}
	if err := w.Start(ctx); err != nil {
		a.log.Warn("file watcher failed to start", zap.Error(err))
		_ = w.Close()
		return
	}
	a.watcher = w
}

// storeChanged reloads the editor and tells the webview to redraw.
func (a *App) storeChanged(file string) {
	if a.controller != nil {
		a.controller.Reload()
	}
	if a.notifier != nil {
		if err := a.notifier.StoreChanged(file); err != nil {
			a.log.Debug("store change not delivered", zap.Error(err))
		}
	}
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("closing file watcher", zap.Error(err))
		}
		a.watcher = nil
	}

	// Close database connection pool
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			a.log.Error("failed to close database", zap.Error(err))
		} else {
			a.log.Info("database closed")
		}
		a.dbClose = nil
	}
}

// Paths returns the locations of the data files.
func (a *App) Paths() DataPaths {
	return DataPaths{
		DataDir:   a.cfg.DataDir,
		Profiles:  a.cfg.ProfilesPath(),
		Shortcuts: a.cfg.ShortcutsPath(),
		Backups:   filepath.Clean(a.cfg.BackupDir()),
	}
}
