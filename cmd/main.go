package main

import (
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/getgantry/gantry"
	"github.com/getgantry/gantry/cmd/migrate"
	"github.com/getgantry/gantry/cmd/server"
	"github.com/getgantry/gantry/cmd/version"
	"github.com/getgantry/gantry/config"
	"github.com/getgantry/gantry/database/postgres"
	"github.com/getgantry/gantry/internal/pkg/cli"
	"github.com/getgantry/gantry/internal/pkg/cooldown"
	"github.com/getgantry/gantry/internal/pkg/fleet"
	"github.com/getgantry/gantry/internal/pkg/githubapp"
	"github.com/getgantry/gantry/pkg/log"
)

func main() {
	slog := log.NewLogger(os.Stdout)

	err := os.Setenv("TZ", "") // Use UTC by default :)
	if err != nil {
		slog.Fatal("failed to set env - ", err)
	}

	app := &cli.App{}
	app.Version = gantry.GetVersion()
	app.Logger = slog

	var db *postgres.Postgres

	c := cli.NewCli(app)

	var configFile string

	c.Flags().StringVar(&configFile, "config", "./gantry.json", "Configuration file for gantry")

	c.PersistentPreRunE(func(cmd *cobra.Command, args []string) error {
		cfgPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		if err = config.LoadConfig(cfgPath); err != nil {
			return err
		}

		cfg, err := config.Get()
		if err != nil {
			return err
		}

		lvl, err := log.ParseLevel(cfg.Logger.Level)
		if err != nil {
			return err
		}
		slog.SetLevel(lvl)

		db, err = postgres.NewDB(cfg)
		if err != nil {
			return err
		}

		gh, err := githubapp.NewClient(cfg.GitHub)
		if err != nil {
			return err
		}

		ecs, err := fleet.NewECS(cfg.Fleet)
		if err != nil {
			return err
		}

		app.DB = db
		app.GitHub = gh
		app.Fleet = ecs
		app.Ledger = cooldown.NewLedger(cfg.Admission.Cooldown(), cfg.Admission.PruneHorizon(), cooldown.NewRealClock())

		return nil
	})

	c.PersistentPostRunE(func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	})

	c.AddCommand(version.AddVersionCommand())
	c.AddCommand(server.AddServerCommand(app))
	c.AddCommand(migrate.AddMigrateCommand(app))

	if err := c.Execute(); err != nil {
		slog.Fatal(err)
	}
}
