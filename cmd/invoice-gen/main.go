// Command invoice-gen generates one monthly invoice PDF: it discovers the
// already generated periods from the filenames on disk, prompts for the
// period, renders the HTML template with the .env data, prints it to PDF
// through a headless Chrome, and advances the invoice sequence number.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jonabergamo/invoice-generator/internal/config"
	"github.com/jonabergamo/invoice-generator/internal/log"
	"github.com/jonabergamo/invoice-generator/internal/prompt"
	"github.com/jonabergamo/invoice-generator/internal/render"
	"github.com/jonabergamo/invoice-generator/internal/services"
	"github.com/jonabergamo/invoice-generator/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	envPath := flag.String("env", ".env", "path to the invoice .env file")
	flag.Parse()

	cfg, err := config.Load(*envPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.LogLevel),
		Component: log.ComponentApp,
	})
	log.SetDefault(logger)

	// The ledger is advisory: when it cannot be opened the run continues
	// without history recording.
	var ledger *storage.Ledger
	if cfg.LedgerDBPath != "" {
		ledger, err = storage.OpenLedger(cfg.LedgerDBPath)
		if err != nil {
			logger.Warn("ledger unavailable, continuing without history",
				log.FieldError, err, log.FieldPath, cfg.LedgerDBPath)
			ledger = nil
		} else {
			defer ledger.Close()
		}
	}

	gen := &services.Generator{
		Config:    cfg,
		Counter:   &storage.FileCounterStore{Path: cfg.CounterFile},
		Archive:   &storage.Archive{Dir: cfg.InvoicesDir},
		Ledger:    ledger,
		Renderer:  &render.HTMLTemplateRenderer{Path: cfg.TemplatePath},
		Converter: render.ChromeConverter{},
		Input:     prompt.NewTerminalSource(os.Stdin, os.Stdout),
		Out:       os.Stdout,
		Log:       logger.WithComponent(log.ComponentWorkflow),
	}
	return gen.Run(context.Background())
}
