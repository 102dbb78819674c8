package server

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/getgantry/gantry/api"
	"github.com/getgantry/gantry/api/types"
	"github.com/getgantry/gantry/config"
	"github.com/getgantry/gantry/database/postgres"
	"github.com/getgantry/gantry/internal/pkg/cli"
	"github.com/getgantry/gantry/internal/pkg/server"
	"github.com/getgantry/gantry/pkg/log"
	"github.com/getgantry/gantry/util"
)

func AddServerCommand(a *cli.App) *cobra.Command {
	var logLevel string
	var ingestURL string
	var port uint32

	cmd := &cobra.Command{
		Use:     "server",
		Aliases: []string{"serve", "s"},
		Short:   "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// override config with cli flags
			cliConfig, err := buildServerCliConfiguration(cmd)
			if err != nil {
				return err
			}

			if err = config.Override(cliConfig); err != nil {
				return err
			}

			err = StartGantryServer(a)
			if err != nil {
				a.Logger.Errorf("Error starting gantry server: %v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level")
	cmd.Flags().StringVar(&ingestURL, "ingest-url", "", "Public URL GitHub deliveries are sent to")
	cmd.Flags().Uint32Var(&port, "port", 0, "Server port")

	return cmd
}

func StartGantryServer(a *cli.App) error {
	cfg, err := config.Get()
	if err != nil {
		a.Logger.WithError(err).Fatal("Failed to load configuration")
	}

	if cfg.Server.HTTP.Port <= 0 {
		return errors.New("please provide the HTTP port in the gantry.json file")
	}

	lo := a.Logger.(*log.Logger)
	lo.SetPrefix("api server")

	lvl, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		return err
	}
	lo.SetLevel(lvl)

	start := time.Now()
	a.Logger.Info("Starting Gantry server...")

	srv := server.NewServer(cfg.Server.HTTP.Port, func() {})

	handler, err := api.NewApplicationHandler(
		&types.APIOptions{
			DB:               a.DB,
			InstallationRepo: postgres.NewInstallationRepo(a.DB),
			WebhookRepo:      postgres.NewWebhookRegistrationRepo(a.DB),
			Fleet:            a.Fleet,
			GitHub:           a.GitHub,
			Ledger:           a.Ledger,
			Logger:           lo,
		})
	if err != nil {
		return err
	}

	srv.SetHandler(handler.BuildRoutes())

	a.Logger.Infof("Started Gantry server in %s", time.Since(start))
	a.Logger.Infof("Server running on port %v", cfg.Server.HTTP.Port)

	srv.Listen()

	return nil
}

func buildServerCliConfiguration(cmd *cobra.Command) (*config.Configuration, error) {
	c, err := config.Get()
	if err != nil {
		return nil, err
	}

	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}

	if !util.IsStringEmpty(logLevel) {
		c.Logger.Level = logLevel
	}

	ingestURL, err := cmd.Flags().GetString("ingest-url")
	if err != nil {
		return nil, err
	}

	if !util.IsStringEmpty(ingestURL) {
		c.Server.HTTP.IngestURL = ingestURL
	}

	port, err := cmd.Flags().GetUint32("port")
	if err != nil {
		return nil, err
	}

	if port != 0 {
		c.Server.HTTP.Port = port
	}

	return &c, nil
}
