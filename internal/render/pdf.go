package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ErrBrowserNotFound signals that no usable Chrome or Chromium binary is on
// PATH. Surfaced before any rendering starts so a half-finished run never
// depends on a missing tool.
var ErrBrowserNotFound = errors.New("no Chrome or Chromium binary found on PATH")

// PDFConverter turns a rendered HTML file into a PDF file.
type PDFConverter interface {
	Available() error
	Convert(ctx context.Context, htmlPath, pdfPath string) error
}

// Binaries probed in order by Available. chromedp's allocator resolves the
// browser the same way, so a hit here means Convert can run.
var browserCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"chrome",
	"headless-shell",
}

// A4 in inches, the unit the DevTools print call takes.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 1.0 / 2.54 // 1 cm on all sides
)

// ChromeConverter prints HTML to PDF through a headless Chrome driven over
// the DevTools protocol: A4 paper, printed backgrounds, 1 cm margins.
type ChromeConverter struct{}

func (ChromeConverter) Available() error {
	for _, name := range browserCandidates {
		if _, err := exec.LookPath(name); err == nil {
			return nil
		}
	}
	return ErrBrowserNotFound
}

func (ChromeConverter) Convert(ctx context.Context, htmlPath, pdfPath string) error {
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return fmt.Errorf("resolve html path: %w", err)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	var pdf []byte
	err = chromedp.Run(tabCtx,
		chromedp.Navigate("file://"+abs),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				WithMarginRight(marginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("print to pdf: %w", err)
	}

	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
