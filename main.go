package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/config"
	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	dict, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	st := dict.Stats()
	log.Info().Str("source", st.Source).Int("words", st.Words).Int("rejected", st.Rejected).Msg("dictionary loaded")

	sess := session.New(dict.Words())
	srv := httpserver.New(sess, dict, httpserver.Options{
		ClientOrigin:   cfg.ClientOrigin,
		DisplayLimit:   cfg.DisplayLimit,
		RequestTimeout: cfg.RequestTimeout,
		Logger:         &log.Logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("port", cfg.Port).Msg("starting wordle-solver")
	if err := srv.Run(ctx, cfg.Addr(), cfg.ShutdownTimeout); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown LOG_LEVEL, keeping default")
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
