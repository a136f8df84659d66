package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/boggle/apps/go-server/internal/config"
	"github.com/robalobadob/boggle/apps/go-server/internal/words"
)

var cfg config.Config

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	serve := serveCmd()
	root := &cobra.Command{
		Use:   "boggle",
		Short: "Boggle word game server and terminal client",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			c, err := config.Load()
			if err != nil {
				return err
			}
			cfg = c
			if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			} else {
				log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping default")
			}
			return nil
		},
		// No subcommand behaves like "serve".
		RunE:         serve.RunE,
		SilenceUsage: true,
	}
	root.AddCommand(serve, playCmd())
	return root
}

// loadDictionary loads path, or the embedded list when path is empty. The
// embedded list only covers common words, so its use is logged as a warning.
func loadDictionary(path string) (*words.Set, error) {
	dict, err := words.Load(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		log.Warn().Int("words", dict.Len()).Msg("WORDS_FILE not set, using the small built-in word list; many valid words will be rejected")
	} else {
		log.Info().Int("words", dict.Len()).Str("path", path).Msg("dictionary loaded")
	}
	return dict, nil
}
