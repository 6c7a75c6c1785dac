package ingestion

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// minContentLength is the shortest extracted text accepted from the plain
// HTTP fetch. Anything shorter suggests a JavaScript-rendered page.
const minContentLength = 500

const browserTimeout = 30 * time.Second

// needsBrowser reports whether the extracted text is too short to trust.
func needsBrowser(extractedText string) bool {
	return len(extractedText) < minContentLength
}

// renderWithBrowser loads the page in headless Chrome and returns the
// rendered HTML. Requires Chrome/Chromium on the system.
func renderWithBrowser(ctx context.Context, url string) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, browserTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to fill the page.
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss common cookie banners; missing buttons are fine.
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	return html, nil
}
