// Package services wires the stores, renderer, converter, and prompt into
// the invoice generation workflow.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/jonabergamo/invoice-generator/internal/config"
	"github.com/jonabergamo/invoice-generator/internal/log"
	"github.com/jonabergamo/invoice-generator/internal/prompt"
	"github.com/jonabergamo/invoice-generator/internal/render"
	"github.com/jonabergamo/invoice-generator/internal/storage"
)

var (
	// ErrOutputExists means the final filename is already taken. Checked
	// before any rendering starts; with the sequence reconciled against the
	// same directory this only fires when another invocation raced this one.
	ErrOutputExists = errors.New("output PDF already exists")

	// ErrPDFMissing means the converter reported success but produced no
	// file.
	ErrPDFMissing = errors.New("PDF was not generated")
)

// Generator runs one invoice generation from prompt to finalized PDF.
// Every collaborator is injected; tests swap in memory stores, a stub
// converter, and a scripted prompt source.
type Generator struct {
	Config    *config.Config
	Counter   storage.CounterStore
	Archive   *storage.Archive
	Ledger    *storage.Ledger // nil disables history recording
	Renderer  render.TemplateRenderer
	Converter render.PDFConverter
	Input     prompt.Source
	Out       io.Writer
	Log       *log.Logger

	// Now defaults to time.Now; injected so tests can pin the default year.
	Now func() time.Time
}

// Run executes the whole workflow sequentially. Any returned error aborts
// the run; nothing is retried. Temporary artifacts are removed on every
// exit path.
func (g *Generator) Run(ctx context.Context) error {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	// Fail before prompting when the template is absent.
	if _, err := os.Stat(g.Config.TemplatePath); err != nil {
		return fmt.Errorf("HTML template not found: %s", g.Config.TemplatePath)
	}

	if err := os.MkdirAll(g.Archive.Dir, 0o755); err != nil {
		return fmt.Errorf("create invoices directory: %w", err)
	}

	generated, err := g.Archive.Targets(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "Already generated months (detected from filenames): %s\n",
		storage.FormatTargets(generated))

	target, err := g.Input.ReadTarget(ctx, now().Year())
	if err != nil {
		return err
	}

	// Deliberately a warning, not an error: regenerating a period is a
	// legitimate operation and gets the next number, never an overwrite.
	if lo.Contains(generated, target) {
		fmt.Fprintf(g.Out, "Warning: an invoice for %s already exists in %s\n",
			target, g.Archive.Dir)
		g.Log.Warn("period already has an invoice",
			log.FieldYear, target.Year, log.FieldMonth, target.Month)
	}

	if err := g.Converter.Available(); err != nil {
		return err
	}

	next, err := g.Archive.NextSequence(ctx, g.Counter)
	if err != nil {
		return err
	}

	finalPath := filepath.Join(g.Archive.Dir, target.Filename(next))
	if _, err := os.Stat(finalPath); err == nil {
		return fmt.Errorf("%w: %s", ErrOutputExists, filepath.Base(finalPath))
	}

	data := g.Config.TemplateData(map[string]string{
		"INVOICE_NUMBER": strconv.Itoa(next),
		"CREATION_DATE":  target.CreationDate(),
		"DUE_DATE":       target.DueDate(),
	})

	tempHTML := filepath.Join(g.Archive.Dir, fmt.Sprintf(".invoice_tmp_%d.html", next))
	tempPDF := filepath.Join(g.Archive.Dir, fmt.Sprintf(".invoice_tmp_%d.pdf", next))
	defer func() {
		os.Remove(tempHTML)
		os.Remove(tempPDF)
	}()

	html, err := g.Renderer.Render(ctx, data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(tempHTML, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write temporary html: %w", err)
	}

	if err := g.Converter.Convert(ctx, tempHTML, tempPDF); err != nil {
		return err
	}
	if _, err := os.Stat(tempPDF); err != nil {
		return ErrPDFMissing
	}

	// The temp PDF lives in the output directory, so the rename is atomic.
	// The counter moves only after the PDF is in place: a crash between the
	// two steps leaves a stale counter, which reconciliation absorbs on the
	// next run, and never a reused number.
	if err := os.Rename(tempPDF, finalPath); err != nil {
		return fmt.Errorf("finalize pdf: %w", err)
	}
	if err := g.Counter.Write(ctx, next); err != nil {
		return fmt.Errorf("persist invoice number: %w", err)
	}

	if g.Ledger != nil {
		entry := storage.Entry{
			Number:   next,
			Year:     target.Year,
			Month:    target.Month,
			Filename: filepath.Base(finalPath),
		}
		if err := g.Ledger.Record(ctx, entry); err != nil {
			g.Log.Warn("ledger record failed", log.FieldError, err,
				log.FieldNumber, next)
		}
	}

	g.Log.Info("invoice generated",
		log.FieldNumber, next,
		log.FieldYear, target.Year,
		log.FieldMonth, target.Month,
		log.FieldFilename, filepath.Base(finalPath))
	fmt.Fprintf(g.Out, "PDF generated: %s\n", finalPath)
	return nil
}
