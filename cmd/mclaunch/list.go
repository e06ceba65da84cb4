package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minelaunch/minelaunch/internal/config"
	"github.com/minelaunch/minelaunch/internal/fetch"
	"github.com/minelaunch/minelaunch/internal/store"
	"github.com/minelaunch/minelaunch/internal/uicmd"
	"github.com/minelaunch/minelaunch/internal/versionlist"
)

type listRunner struct {
	configPath string
	gameDir    string
}

func init() {
	r := &listRunner{}
	cmd := uicmd.New(&cobra.Command{
		Use:   "list",
		Short: "List versions installed locally and available officially",
	}, r)

	flags := cmd.Flags()
	flags.StringVarP(&r.configPath, "config", "c", "", "path to a JSON configuration file")
	flags.StringVarP(&r.gameDir, "game-dir", "d", "", "game directory (defaults to the platform .minecraft)")

	rootCmd.AddCommand(cmd.Command)
}

func (r *listRunner) RunE(cmd *cobra.Command, args []string) error {
	cli := config.CLI{}
	if r.gameDir != "" {
		cli.GameDir = &r.gameDir
	}
	cfg, err := config.Load(r.configPath, cli)
	if err != nil {
		return err
	}

	s := store.New(cfg.GameDir)
	entries, err := versionlist.List(context.Background(), s, fetch.Client)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Printf("%-24s %-10s %-10s %s\n", e.ID, e.Provenance, e.Type, e.ReleaseTime)
	}
	return nil
}
