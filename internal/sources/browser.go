package sources

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"github.com/jonathan/career-compass/internal/types"
)

// BrowserBoard renders a JavaScript-heavy job board in a headless browser
// before applying the same CSS-selector parsing as HTMLBoard. Requires
// Chrome/Chromium on the host.
type BrowserBoard struct {
	name      string
	url       string
	selectors Selectors
	timeout   time.Duration
}

// NewBrowserBoard creates a browser-rendered board source.
func NewBrowserBoard(name, url string, selectors Selectors) *BrowserBoard {
	return &BrowserBoard{name: name, url: url, selectors: selectors, timeout: DefaultTimeout}
}

// Name implements Source.
func (b *BrowserBoard) Name() string { return b.name }

// Fetch implements Source.
func (b *BrowserBoard) Fetch(ctx context.Context) ([]types.JobPosting, error) {
	html, err := renderHTML(ctx, b.url, b.timeout)
	if err != nil {
		return nil, &Error{Source: b.name, Message: "browser rendering failed", Cause: err}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{Source: b.name, Message: "parsing rendered HTML", Cause: err}
	}

	board := HTMLBoard{name: b.name, url: b.url, selectors: b.selectors}
	return board.parse(doc), nil
}

// renderHTML navigates to url in a headless browser and returns the
// post-JavaScript HTML.
func renderHTML(ctx context.Context, url string, timeout time.Duration) (string, error) {
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

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to fill the listing.
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", err
	}
	return html, nil
}
