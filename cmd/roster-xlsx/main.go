package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/stemsi/course-registration/internal/config"
	"github.com/stemsi/course-registration/internal/logger"
	"github.com/stemsi/course-registration/internal/repository"
	"github.com/stemsi/course-registration/internal/spreadsheet"
)

func main() {
	cfg := config.Load()

	log, closeLog := setupLog(cfg)
	defer closeLog()

	if err := run(os.Args[1:], os.Stdout, cfg, log); err != nil {
		log.Error().Err(err).Msg("roster-xlsx failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		closeLog()
		os.Exit(1)
	}
}

// setupLog sends diagnostics to cfg.LogFile, falling back to stderr when
// the file cannot be opened.
func setupLog(cfg *config.Config) (zerolog.Logger, func() error) {
	logOut, closeLog, err := logger.Open(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open log file %s: %v\n", cfg.LogFile, err)
		logOut, closeLog = os.Stderr, func() error { return nil }
	}
	return logger.Setup(cfg.LogLevel, cfg.LogFormat, logOut), closeLog
}

// run parses args and executes the export or import command.
func run(args []string, out io.Writer, cfg *config.Config, log zerolog.Logger) error {
	fs := flag.NewFlagSet("roster-xlsx", flag.ContinueOnError)
	fs.SetOutput(out)
	dataFile := fs.String("file", cfg.DataFile, "Path to the roster JSON file")
	xlsxFile := fs.String("xlsx", "Enrollments.xlsx", "Path to the Excel workbook")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		printUsage(fs, out)
		return nil
	}

	repo := repository.NewRosterRepository(*dataFile, log)

	switch command := fs.Arg(0); command {
	case "export":
		roster, err := repo.Load(nil)
		if err != nil {
			return err
		}
		if err := spreadsheet.Export(*xlsxFile, roster); err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported %d students to %s\n", len(roster), *xlsxFile)
	case "import":
		imported, err := spreadsheet.Import(*xlsxFile)
		if err != nil {
			return err
		}
		roster, err := repo.Load(nil)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		roster = append(roster, imported...)
		if err := repo.Save(roster); err != nil {
			return err
		}
		fmt.Fprintf(out, "Imported %d students into %s (%d total)\n", len(imported), *dataFile, len(roster))
	default:
		printUsage(fs, out)
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}

func printUsage(fs *flag.FlagSet, out io.Writer) {
	fmt.Fprintln(out, "Usage: roster-xlsx [flags] <command>")
	fmt.Fprintln(out, "Commands: export, import")
	fmt.Fprintln(out, "Flags:")
	fs.PrintDefaults()
}
