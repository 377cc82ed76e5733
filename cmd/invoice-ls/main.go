// Command invoice-ls lists the invoice state without generating anything:
// which periods already have invoices (detected from the filenames), what
// the next sequence number will be, and optionally the recorded history
// from the ledger.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jonabergamo/invoice-generator/internal/config"
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
	history := flag.Bool("history", false, "also print the recorded ledger history")
	flag.Parse()

	// Validation of the invoice data keys is skipped on purpose: listing
	// state should work even while the .env file is half filled in.
	cfg, err := config.Load(*envPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	archive := &storage.Archive{Dir: cfg.InvoicesDir}

	targets, err := archive.Targets(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Generated periods: %s\n", storage.FormatTargets(targets))

	next, err := archive.NextSequence(ctx, &storage.FileCounterStore{Path: cfg.CounterFile})
	if err != nil {
		return err
	}
	fmt.Printf("Next invoice number: %d\n", next)

	if !*history {
		return nil
	}
	if cfg.LedgerDBPath == "" {
		fmt.Println("Ledger disabled (LEDGER_DB_PATH is empty).")
		return nil
	}

	ledger, err := storage.OpenLedger(cfg.LedgerDBPath)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer ledger.Close()

	entries, err := ledger.History(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("Ledger history: empty")
		return nil
	}
	fmt.Println("Ledger history:")
	for _, e := range entries {
		fmt.Printf("  #%d  %04d-%02d  %s  (%s)\n",
			e.Number, e.Year, e.Month, e.Filename, e.CreatedAt.Format("2006-01-02"))
	}
	return nil
}
