package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"

	"keyforest/internal/config"
	"keyforest/internal/database"
	"keyforest/internal/logging"
	"keyforest/internal/services"
)

// cli carries the state shared by all subcommands.
type cli struct {
	dataDir string
	verbose bool
	asJSON  bool

	log     *zap.Logger
	svc     *services.Services
	dbClose func() error
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "keyforestctl",
		Short: "Manage KeyForest profiles and shortcuts from the command line",
		Long: `keyforestctl reads and writes the same store as the KeyForest window:
apps.json and shortcuts.json in the data directory.

Example:
  keyforestctl profiles add "Visual Studio Code"
  keyforestctl shortcuts set default ctrl s "Save file"`,
		SilenceUsage:      true,
		PersistentPreRunE: c.open,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.close()
		},
	}

	root.PersistentFlags().StringVarP(&c.dataDir, "data-dir", "d", "", "Data directory (default: KEYFOREST_DATA_DIR or the per-user config dir)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().BoolVar(&c.asJSON, "json", false, "Print results as JSON")

	root.AddCommand(
		c.profilesCmd(),
		c.shortcutsCmd(),
		c.exportCmd(),
		c.importCmd(),
		c.backupsCmd(),
		c.migrateCmd(),
	)
	return root
}

func (c *cli) open(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve()
	if err != nil {
		return err
	}
	if c.dataDir != "" {
		cfg.DataDir = c.dataDir
	}

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	c.log, err = logging.New(level, true)
	if err != nil {
		return err
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("data directory %s: %w", cfg.DataDir, err)
	}
	db, err := database.Init(database.Config{Path: cfg.CachePath(), LogLevel: logger.Silent})
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		c.dbClose = sqlDB.Close
	}

	c.svc = services.NewServices(db, services.Paths{
		Profiles:  cfg.ProfilesPath(),
		Shortcuts: cfg.ShortcutsPath(),
		Backups:   cfg.BackupDir(),
	}, nil, c.log)
	return nil
}

func (c *cli) close() {
	if c.dbClose != nil {
		_ = c.dbClose()
		c.dbClose = nil
	}
	if c.log != nil {
		_ = c.log.Sync()
	}
}

func (c *cli) ctx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// printJSON writes v indented when --json is set and reports whether it did.
func (c *cli) printJSON(w io.Writer, v any) (bool, error) {
	if !c.asJSON {
		return false, nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return true, enc.Encode(v)
}
