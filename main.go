package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/calebcoatney/wordle-bot/internal/dict"
	"github.com/calebcoatney/wordle-bot/internal/freq"
	"github.com/calebcoatney/wordle-bot/internal/httpserver"
	"github.com/calebcoatney/wordle-bot/internal/session"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db, err := openDB(getEnv("DB_PATH", "./data/solver.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Seed the corpus once: from CORPUS_FILE if set, else the embedded
	// default. A non-empty words table is left alone.
	var corpusSrc io.Reader
	if path := os.Getenv("CORPUS_FILE"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to open corpus file")
		}
		defer f.Close()
		corpusSrc = f
	}
	if _, err := freq.Seed(db, corpusSrc); err != nil {
		log.Fatal().Err(err).Msg("failed to seed frequency corpus")
	}
	corpus, err := freq.Load(db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load frequency corpus")
	}
	if corpus.Len() == 0 {
		log.Fatal().Msg("frequency corpus is empty")
	}
	log.Info().Int("words", corpus.Len()).Msg("frequency corpus loaded")

	provider := dict.NewProvider(corpus, dict.NewHTTPExclusions(os.Getenv("PAST_ANSWERS_URL")))
	srv := httpserver.New(session.NewRegistry(), provider, corpus, db)

	port := getEnv("PORT", "8000")
	log.Info().Str("port", port).Msg("starting wordle-bot")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
