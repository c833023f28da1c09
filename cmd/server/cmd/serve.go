package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"passvault/internal/app/server/api"
	"passvault/internal/infrastructure/storage/postgres"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the passvault HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		storage, err := postgres.New(ctx, cfg)
		if err != nil {
			return fmt.Errorf("init storage: %w", err)
		}
		defer func() {
			if err := storage.Close(); err != nil {
				log.Error("close storage", "error", err)
			}
		}()

		mux := api.New(storage, cfg, log)

		log.Info("starting server", "address", cfg.Server.RunAddress, "env", cfg.Env)
		if err := http.ListenAndServe(cfg.Server.RunAddress, mux); err != nil {
			return fmt.Errorf("serve: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
