package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/optiroute/optiroute/geo"
	"github.com/optiroute/optiroute/server"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the route optimization HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cfg.GoogleAPIKey == "" {
				return errors.New("google api key missing: set google_api_key in config or GOOGLE_MAPS_API_KEY in the environment")
			}

			log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

			provider, err := geo.NewRoutesClient(cfg.GoogleAPIKey)
			if err != nil {
				return err
			}

			srv := server.New(provider, log, cfg.MaxPoints)
			log.Info("listening", "addr", cfg.ListenAddr, "max_points", cfg.MaxPoints)
			return (&http.Server{
				Addr:    cfg.ListenAddr,
				Handler: srv.Router(),
			}).ListenAndServe()
		},
	}
}
