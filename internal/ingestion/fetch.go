// Package ingestion turns a job-posting URL into a JobPosting record: plain
// HTTP fetch, HTML-to-text extraction, an optional headless-browser fallback
// for JavaScript-rendered pages, and heuristic field extraction over the
// resulting text.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ProfileMatcher/1.0)"

// FetchError represents an error during URL fetching.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// fetchHTML retrieves the raw HTML for a URL.
func fetchHTML(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &FetchError{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: DefaultTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to read response body", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return string(body), nil
}

// jobContentSelectors are tried in order before falling back to body.
var jobContentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// extractJobText parses HTML and returns the posting's main text plus the
// page title. Noise elements are stripped before text extraction.
func extractJobText(html string) (text, title string, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		title = h1
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	var main *goquery.Selection
	for _, selector := range jobContentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			main = selection.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	return cleanWhitespace(main.Text()), title, nil
}

// cleanWhitespace trims every line and drops blank ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
