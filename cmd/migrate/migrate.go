package migrate

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/getgantry/gantry/config"
	"github.com/getgantry/gantry/database/postgres"
	"github.com/getgantry/gantry/internal/pkg/cli"
	"github.com/getgantry/gantry/pkg/log"
)

func AddMigrateCommand(a *cli.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Gantry migrations",
	}

	cmd.AddCommand(addUpCommand())

	return cmd
}

func addUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "up",
		Aliases: []string{"migrate-up"},
		Short:   "Run all pending migrations",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Get()
			if err != nil {
				log.WithError(err).Fatal("error fetching the config")
			}

			db, err := postgres.NewDB(cfg)
			if err != nil {
				log.Fatal(err)
			}

			defer db.Close()

			if err := db.Migrate(context.Background()); err != nil {
				log.Fatalf("migration up failed with error: %+v", err)
			}

			log.Info("migration up succeeded")
		},
	}

	return cmd
}
