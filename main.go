package main

import (
	"context"
	"embed"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"

	"keyforest/internal/bridge"
	"keyforest/internal/config"
	"keyforest/internal/controller"
	"keyforest/internal/database"
	"keyforest/internal/events"
	"keyforest/internal/logging"
	"keyforest/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Resolve()
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel, config.IsDevelopment())
	if err != nil {
		fmt.Println("Error creating logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := cfg.EnsureDataDir(); err != nil {
		log.Fatal("data directory unavailable", zap.String("dir", cfg.DataDir), zap.Error(err))
	}

	db, err := database.Init(database.Config{
		Path:     cfg.CachePath(),
		LogLevel: logger.Warn,
	})
	if err != nil {
		log.Fatal("opening cache database", zap.Error(err))
	}

	app := NewApp(cfg, log)
	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	//Create each service
	dialogs := services.NewDialogService()
	notifier := services.NewEventEmitterService()
	svc := services.NewServices(db, services.Paths{
		Profiles:  cfg.ProfilesPath(),
		Shortcuts: cfg.ShortcutsPath(),
		Backups:   cfg.BackupDir(),
	}, dialogs, log)

	gateway := bridge.NewGatewayFromServices(svc)
	api := bridge.NewAPI(gateway, log.Named("bridge"))
	editor := controller.New(controller.Dependencies{
		Ops:       gateway,
		Cache:     svc.Cache,
		Settings:  svc.Settings,
		Backups:   svc.Backups,
		Migration: svc.Migration,
		Dialogs:   dialogs,
		Notifier:  notifier,
		Logger:    log.Named("controller"),
	})
	app.controller = editor
	app.notifier = notifier

	wailsLog := logging.NewWailsAdapter(log)

	err = wails.Run(&options.App{
		Title:            "KeyForest",
		Width:            cfg.Window.Width,
		Height:           cfg.Window.Height,
		WindowStartState: windowState(cfg.Window.Maximised),
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "KeyForest",
		},
		BackgroundColour: &options.RGBA{R: 30, G: 30, B: 30, A: 1},
		Logger:           wailsLog,
		LogLevel:         logging.WailsLevel(log.Level()),
		OnStartup: func(ctx context.Context) {
			events.EnableRuntimeEmitter()
			dialogs.Startup(ctx)
			notifier.Startup(ctx)
			api.Startup(ctx)
			editor.Startup(ctx)
			app.startup(ctx)
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			api,
			editor,
		},
	})

	if err != nil {
		log.Error("wails exited with error", zap.Error(err))
	}
}

func windowState(maximised bool) options.WindowStartState {
	if maximised {
		return options.Maximised
	}
	return options.Normal
}
