// Package pdf prints report documents to PDF through headless Chrome.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"impactlens/internal/domain"
	"impactlens/internal/ports"
)

const defaultTimeout = 30 * time.Second

var ErrEmptyDocument = errors.New("pdf: empty document")

type Config struct {
	// RemoteURL points at a running Chrome DevTools endpoint. Empty launches
	// a local browser on first use.
	RemoteURL string
	Timeout   time.Duration
	NoSandbox bool
	Logger    *zap.Logger
}

type Renderer struct {
	cfg         Config
	log         *zap.Logger
	once        sync.Once
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

var _ ports.PDFRenderer = (*Renderer)(nil)

func NewRenderer(cfg Config) *Renderer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{cfg: cfg, log: log}
}

func (r *Renderer) allocator() context.Context {
	r.once.Do(func() {
		if r.cfg.RemoteURL != "" {
			r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), r.cfg.RemoteURL)
			return
		}
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("disable-extensions", true),
			chromedp.Flag("font-render-hinting", "none"),
		)
		if r.cfg.NoSandbox {
			opts = append(opts, chromedp.Flag("no-sandbox", true))
		}
		r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	})
	return r.allocCtx
}

// RenderPDF loads html into a blank tab and prints it on A4.
func (r *Renderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		return nil, ErrEmptyDocument
	}
	browserCtx, cancel := chromedp.NewContext(r.allocator(),
		chromedp.WithLogf(func(format string, args ...any) {
			r.log.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer cancel()
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, r.cfg.Timeout)
	defer cancelTimeout()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	start := time.Now()
	var out []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.6).
				WithMarginBottom(0.6).
				WithMarginLeft(0.6).
				WithMarginRight(0.6).
				Do(ctx)
			if err != nil {
				return err
			}
			out = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp print: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("chromedp print: %w", ErrEmptyDocument)
	}
	r.log.Info("pdf rendered", zap.Int("bytes", len(out)), zap.Duration("duration", time.Since(start)))
	return out, nil
}

// RenderReport prints r using the ReportHTML layout.
func (r *Renderer) RenderReport(ctx context.Context, rep domain.Report) ([]byte, error) {
	html, err := ReportHTML(rep)
	if err != nil {
		return nil, fmt.Errorf("report layout: %w", err)
	}
	return r.RenderPDF(ctx, html)
}

// Close shuts down the browser allocator, if one was started.
func (r *Renderer) Close() {
	if r.allocCancel != nil {
		r.allocCancel()
	}
}
