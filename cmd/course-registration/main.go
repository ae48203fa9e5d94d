package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/stemsi/course-registration/internal/app"
	"github.com/stemsi/course-registration/internal/config"
	"github.com/stemsi/course-registration/internal/console"
	"github.com/stemsi/course-registration/internal/logger"
	"github.com/stemsi/course-registration/internal/repository"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	logOut, closeLog, err := logger.Open(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open log file %s: %v\n", cfg.LogFile, err)
		logOut, closeLog = os.Stderr, func() error { return nil }
	}
	defer closeLog()

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, logOut)
	log.Info().
		Str("data_file", cfg.DataFile).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Course Registration")

	if err := run(os.Stdin, os.Stdout, cfg, log); err != nil {
		log.Error().Err(err).Msg("Console input failed")
		closeLog()
		os.Exit(1)
	}
}

// run wires the program against the given streams and serves the menu loop.
func run(in io.Reader, out io.Writer, cfg *config.Config, log zerolog.Logger) error {
	repo := repository.NewRosterRepository(cfg.DataFile, log)
	con := console.New(in, out, log)
	return app.New(repo, con, log).Run()
}
