package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keyforest/internal/models"
	"keyforest/internal/services"
)

func (c *cli) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [profile] [file]",
		Short: "Write a profile's shortcuts to an export file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := c.ctx(cmd)
			p, err := c.svc.Profiles.Get(ctx, args[0])
			if err != nil {
				return err
			}
			set, err := c.svc.Shortcuts.Load(ctx, p.ID)
			if err != nil {
				return err
			}
			doc := models.NewExportDocument(p, set, time.Now())
			if err := c.svc.Transfer.WriteDocument(args[1], doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d shortcuts to %s\n", set.Count(), args[1])
			return nil
		},
	}
}

func (c *cli) importCmd() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace a profile's shortcuts with an export file",
		Long: `Reads an export file and replaces the shortcuts of --profile (default:
the profile named in the file). A profile that does not exist yet is
created with the name from the file. The previous shortcuts are backed up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := c.ctx(cmd)
			doc, err := c.svc.Transfer.ReadDocument(args[0])
			if err != nil {
				return err
			}
			if target == "" {
				target = doc.AppID
			}

			p, err := c.svc.Profiles.Get(ctx, target)
			if errors.Is(err, services.ErrProfileNotFound) {
				p = models.Profile{ID: target, Name: doc.AppName}
				if err := c.svc.Profiles.Save(ctx, p); err != nil {
					return err
				}
			} else if err != nil {
				return err
			} else {
				current, err := c.svc.Shortcuts.Load(ctx, p.ID)
				if err != nil {
					return err
				}
				if _, err := c.svc.Backups.Snapshot(ctx, p, current); err != nil {
					return err
				}
			}

			if err := c.svc.Shortcuts.Save(ctx, p.ID, doc.Shortcuts); err != nil {
				return err
			}
			if err := c.svc.Cache.Forget(ctx, p.ID); err != nil {
				c.log.Warn("dropping cached shortcuts failed", zap.Error(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d shortcuts into %s\n", doc.Shortcuts.Count(), p.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&target, "profile", "p", "", "Profile to import into")
	return cmd
}

func (c *cli) backupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backups [profile]",
		Short: "List the backups taken before imports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.svc.Backups.List(c.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			if done, err := c.printJSON(cmd.OutOrStdout(), list); done || err != nil {
				return err
			}
			for _, b := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", b.TakenAt.Local().Format(time.DateTime), b.Path)
			}
			return nil
		},
	}
}

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Upgrade data written by older releases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := c.ctx(cmd)
			results := make([]services.MigrationResult, 0, 2)

			res, err := c.svc.Migration.MigrateLegacyShortcuts(ctx)
			if err != nil {
				return err
			}
			results = append(results, res)

			res, err = c.svc.Migration.MigrateLegacyProfiles(ctx)
			if err != nil {
				return err
			}
			results = append(results, res)

			if done, err := c.printJSON(cmd.OutOrStdout(), results); done || err != nil {
				return err
			}
			changed := false
			for _, r := range results {
				if r.Message != "" {
					fmt.Fprintln(cmd.OutOrStdout(), r.Message)
				}
				changed = changed || r.Changed
			}
			if !changed {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to migrate")
			}
			return nil
		},
	}
}
