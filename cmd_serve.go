package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/boggle/apps/go-server/assets"
	"github.com/robalobadob/boggle/apps/go-server/internal/database"
	"github.com/robalobadob/boggle/apps/go-server/internal/httpserver"
	"github.com/robalobadob/boggle/apps/go-server/internal/store"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary(cfg.WordsFile)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to load word list")
			}

			db, err := database.OpenMigrated(cfg.DBPath, assets.Migrations())
			if err != nil {
				log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
			}
			defer db.Close()

			srv := httpserver.New(httpserver.Deps{
				Config: cfg,
				Store:  store.NewMemoryStore(),
				Dict:   dict,
				DB:     db,
			})
			log.Info().Str("port", cfg.Port).Bool("requirePath", cfg.RequirePath).Msg("starting go-server")
			if err := srv.Start(":" + cfg.Port); err != nil {
				log.Error().Err(err).Msg("server exited")
				return err
			}
			return nil
		},
	}
}
