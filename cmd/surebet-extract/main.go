// Command surebet-extract converts one surebet slip PDF into a structured
// JSON record on stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/bielsr01/BetTrackerPro/internal/api"
	"github.com/bielsr01/BetTrackerPro/internal/extractor"
	"github.com/bielsr01/BetTrackerPro/internal/logging"
	"github.com/bielsr01/BetTrackerPro/internal/parser"
	"github.com/bielsr01/BetTrackerPro/internal/writer"
)

func main() {
	pagesFlag := flag.Int("pages", parser.MaxPages, "Maximum document pages to scan (1-10)")
	prettyFlag := flag.Bool("pretty", false, "Indent the JSON output")
	verboseFlag := flag.Bool("v", false, "Enable debug logging to stderr")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Surebet Slip PDF to JSON Converter

Extracts the event, the profit percentage and up to three bet legs from a
surebet slip PDF and prints the record as JSON.

Usage:
  surebet-extract [flags] <slip.pdf>

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Convert a slip, one JSON line to stdout
  surebet-extract slip.pdf

  # Human-readable output with debug diagnostics
  surebet-extract -pretty -v slip.pdf
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("surebet-extract v%s\n", api.Version)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	log := newLogger(*verboseFlag)
	defer log.Sync()

	w := &writer.RecordWriter{Pretty: *prettyFlag}
	if err := run(flag.Arg(0), *pagesFlag, w, log); err != nil {
		log.Error("conversion failed", zap.Error(err))
		if werr := w.WriteFailure(os.Stdout); werr != nil {
			log.Error("failed to write failure output", zap.Error(werr))
		}
		os.Exit(1)
	}
}

func run(path string, maxPages int, w *writer.RecordWriter, log *zap.Logger) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("input file not found: %s", path)
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}
	if maxPages < 1 || maxPages > 10 {
		return fmt.Errorf("pages must be between 1 and 10, got %d", maxPages)
	}

	pages, err := extractor.ExtractPages(path, maxPages)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	log.Debug("document extracted",
		zap.String("file", path), zap.Int("pages", len(pages)))

	rec := parser.New(log).Parse(pages)
	log.Debug("slip parsed", zap.Int("legs", rec.FilledLegs()))

	return w.Write(os.Stdout, rec)
}

func newLogger(verbose bool) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if verbose {
		log, err = logging.NewVerbose("surebet-extract", "local")
	} else {
		log, err = logging.New("surebet-extract", "production")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		return zap.NewNop()
	}
	return log
}
