package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"keyforest/internal/keyboard"
	"keyforest/internal/models"
)

func (c *cli) shortcutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shortcuts",
		Short: "Show and edit the shortcuts of a profile",
	}

	var only string
	show := &cobra.Command{
		Use:   "show [profile]",
		Short: "Print a profile's shortcuts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := c.svc.Shortcuts.Load(c.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			mods := models.Modifiers()
			if only != "" {
				m, err := models.ParseModifier(only)
				if err != nil {
					return err
				}
				mods = []models.Modifier{m}
				set = models.ShortcutSet{m: set[m]}
			}
			if done, err := c.printJSON(cmd.OutOrStdout(), set); done || err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CHORD\tACTION")
			for _, m := range mods {
				keys := make([]string, 0, len(set[m]))
				for k := range set[m] {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(tw, "%s%s\t%s\n", m.Prefix(), keyboard.DisplayLabel(k), set[m][k])
				}
			}
			return tw.Flush()
		},
	}
	show.Flags().StringVarP(&only, "modifier", "m", "", "Only show one modifier (plain, ctrl, alt, ctrl_shift, ctrl_alt, ctrl_alt_shift)")
	cmd.AddCommand(show)

	cmd.AddCommand(&cobra.Command{
		Use:   "set [profile] [modifier] [key] [action...]",
		Short: "Assign an action label to a key",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, key, err := parseChord(args[1], args[2])
			if err != nil {
				return err
			}
			label := strings.Join(args[3:], " ")
			if _, err := c.svc.Shortcuts.SetAction(c.ctx(cmd), args[0], m, key, label); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s = %s\n", m.Prefix(), keyboard.DisplayLabel(key), strings.TrimSpace(label))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear [profile] [modifier] [key]",
		Short: "Remove the action assigned to a key",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, key, err := parseChord(args[1], args[2])
			if err != nil {
				return err
			}
			if _, err := c.svc.Shortcuts.ClearAction(c.ctx(cmd), args[0], m, key); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s cleared\n", m.Prefix(), keyboard.DisplayLabel(key))
			return nil
		},
	})

	return cmd
}

func parseChord(modifier, key string) (models.Modifier, string, error) {
	m, err := models.ParseModifier(modifier)
	if err != nil {
		return "", "", err
	}
	if !keyboard.Has(key) {
		return "", "", fmt.Errorf("unknown key %q", key)
	}
	return m, key, nil
}
