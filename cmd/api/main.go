package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/registrar/academics/internal/bootstrap"
	"github.com/registrar/academics/internal/config"
	"github.com/registrar/academics/internal/pkg/logger"
	"github.com/registrar/academics/internal/seed"
	"github.com/registrar/academics/internal/server"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:          "academics",
		Short:        "Academic records API",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.PersistentFlags().StringVar(&configPath, "config",
		config.GetEnv("CONFIG_PATH", "configs/config.yaml"), "path to the YAML configuration file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations",
			RunE:  runMigrate,
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert sample data into an empty database",
			RunE:  runSeed,
		},
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(cmd.Context(), cfg, lgr)
	if err != nil {
		return err
	}

	if err := srv.Run(); err != nil {
		return err
	}
	lgr.Info().Msg("Application finished gracefully.")
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	database, err := bootstrap.OpenDatabase(cmd.Context(), cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	return bootstrap.Migrate(cmd.Context(), database, lgr)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	database, err := bootstrap.OpenDatabase(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := bootstrap.Migrate(ctx, database, lgr); err != nil {
		return err
	}
	_, err = seed.CreateDefaultData(ctx, database, lgr)
	return err
}
