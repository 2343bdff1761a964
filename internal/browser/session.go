// Package browser wraps a headless Chrome session for form interaction:
// navigating, capturing the rendered DOM, and applying fill actions to
// individual elements. Requires Chrome/Chromium to be installed.
package browser

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single navigation or action.
const DefaultTimeout = 30 * time.Second

// renderSettle is the extra wait after body-ready for JavaScript-rendered
// form widgets to appear.
const renderSettle = 2 * time.Second

// Options configures a browser session.
type Options struct {
	Headless bool
	Timeout  time.Duration
	Verbose  bool
}

// DefaultOptions returns a headless session with the default timeout.
func DefaultOptions() Options {
	return Options{Headless: true, Timeout: DefaultTimeout}
}

// Session owns one headless browser context for a single page visit.
// It is not safe for concurrent use; the fill pass is sequential anyway.
type Session struct {
	ctx         context.Context
	allocCancel context.CancelFunc
	ctxCancel   context.CancelFunc
	timeout     time.Duration
	verbose     bool
}

// NewSession starts a browser. Close must be called to release it.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", opts.Headless),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)

	browserCtx, ctxCancel := chromedp.NewContext(allocCtx)

	return &Session{
		ctx:         browserCtx,
		allocCancel: allocCancel,
		ctxCancel:   ctxCancel,
		timeout:     opts.Timeout,
		verbose:     opts.Verbose,
	}, nil
}

// Close shuts the browser down.
func (s *Session) Close() {
	s.ctxCancel()
	s.allocCancel()
}

// Navigate loads a page and waits for it to settle.
func (s *Session) Navigate(url string) error {
	if s.verbose {
		log.Printf("[BROWSER] Navigating to: %s", url)
	}

	runCtx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(renderSettle),
	)
	if err != nil {
		return fmt.Errorf("navigation failed for %s: %w", url, err)
	}
	return nil
}

// HTML captures the rendered page HTML.
func (s *Session) HTML() (string, error) {
	runCtx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	var html string
	if err := chromedp.Run(runCtx, chromedp.OuterHTML("html", &html)); err != nil {
		return "", fmt.Errorf("failed to capture page HTML: %w", err)
	}

	if s.verbose {
		log.Printf("[BROWSER] Captured HTML: %d bytes", len(html))
	}
	return html, nil
}

// run executes chromedp actions under the session's per-action timeout.
// chromedp actions must run on the browser context, so the caller's
// context only gates entry.
func (s *Session) run(ctx context.Context, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	runCtx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	return chromedp.Run(runCtx, actions...)
}
