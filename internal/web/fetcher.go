// Package web fetches webpages and converts them to markdown text for
// summarization.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// FetchError provides detailed error information for fetch failures
type FetchError struct {
	URL        string
	StatusCode int
	Message    string
	NeedsAuth  bool
	Err        error
}

func (e *FetchError) Error() string {
	if e.NeedsAuth {
		return fmt.Sprintf("%s: %s (authentication required)", e.URL, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.URL, e.Message)
}

// Page is a fetched webpage reduced to markdown.
type Page struct {
	URL     string
	Title   string
	Content string
}

// Fetcher retrieves web pages over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a web fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewFetcherWithClient creates a web fetcher using the supplied HTTP client.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch retrieves a web page and converts it to markdown.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set user agent to avoid blocks
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Ariadne/1.0)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{
			URL:     pageURL,
			Err:     err,
			Message: "failed to fetch URL",
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized ||
		resp.StatusCode == http.StatusPaymentRequired ||
		resp.StatusCode == http.StatusForbidden {
		return nil, &FetchError{
			URL:        pageURL,
			StatusCode: resp.StatusCode,
			Message:    "authentication required",
			NeedsAuth:  true,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			URL:        pageURL,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	html := string(body)

	// Paywalls and login walls tend to be small pages with telltale phrases.
	lowerHTML := strings.ToLower(html)
	if (strings.Contains(lowerHTML, "please log in") ||
		strings.Contains(lowerHTML, "please sign in") ||
		strings.Contains(lowerHTML, "subscribe to continue") ||
		strings.Contains(lowerHTML, "create a free account") ||
		strings.Contains(lowerHTML, "you've reached your limit")) &&
		len(html) < 50000 {
		return nil, &FetchError{
			URL:       pageURL,
			Message:   "detected paywall or authentication page",
			NeedsAuth: true,
		}
	}

	return &Page{
		URL:     pageURL,
		Title:   extractTitle(html),
		Content: htmlToMarkdown(html),
	}, nil
}

// extractTitle extracts the title from HTML
func extractTitle(html string) string {
	// Try <title> tag
	titleRe := regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
	if matches := titleRe.FindStringSubmatch(html); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// Try og:title meta tag
	ogTitleRe := regexp.MustCompile(`(?i)<meta\s+property="og:title"\s+content="([^"]+)"`)
	if matches := ogTitleRe.FindStringSubmatch(html); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// Try h1
	h1Re := regexp.MustCompile(`(?i)<h1[^>]*>([^<]+)</h1>`)
	if matches := h1Re.FindStringSubmatch(html); len(matches) > 1 {
		return strings.TrimSpace(stripHTMLTags(matches[1]))
	}

	return "Untitled"
}

// htmlToMarkdown converts HTML to markdown
func htmlToMarkdown(html string) string {
	// Remove script and style tags first
	html = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`).ReplaceAllString(html, "")
	html = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`).ReplaceAllString(html, "")

	// Remove comments
	html = regexp.MustCompile(`(?is)<!--.*?-->`).ReplaceAllString(html, "")

	// Extract body content if present
	bodyRe := regexp.MustCompile(`(?is)<body[^>]*>(.*)</body>`)
	if matches := bodyRe.FindStringSubmatch(html); len(matches) > 1 {
		html = matches[1]
	}

	// Convert links before other transformations touch their contents.
	linkRe := regexp.MustCompile(`(?is)<a\s+[^>]*href\s*=\s*["']([^"']+)["'][^>]*>(.*?)</a>`)
	for _, match := range linkRe.FindAllStringSubmatch(html, -1) {
		if len(match) < 3 {
			continue
		}
		content := strings.TrimSpace(stripHTMLTags(match[2]))
		if content == "" {
			continue
		}
		html = strings.ReplaceAll(html, match[0], fmt.Sprintf("[%s](%s)", content, match[1]))
	}

	// Convert headers
	html = regexp.MustCompile(`(?i)<h1[^>]*>`).ReplaceAllString(html, "\n# ")
	html = regexp.MustCompile(`(?i)</h1>`).ReplaceAllString(html, "\n\n")
	html = regexp.MustCompile(`(?i)<h2[^>]*>`).ReplaceAllString(html, "\n## ")
	html = regexp.MustCompile(`(?i)</h2>`).ReplaceAllString(html, "\n\n")
	html = regexp.MustCompile(`(?i)<h3[^>]*>`).ReplaceAllString(html, "\n### ")
	html = regexp.MustCompile(`(?i)</h3>`).ReplaceAllString(html, "\n\n")

	// Convert paragraphs and line breaks
	html = regexp.MustCompile(`(?i)</?p[^>]*>`).ReplaceAllString(html, "\n\n")
	html = regexp.MustCompile(`(?i)<br[^>]*>`).ReplaceAllString(html, "\n")

	// Convert emphasis
	html = regexp.MustCompile(`(?i)</?(b|strong)[^>]*>`).ReplaceAllString(html, "**")
	html = regexp.MustCompile(`(?i)</?(i|em)[^>]*>`).ReplaceAllString(html, "*")

	// Convert lists
	html = regexp.MustCompile(`(?i)<li[^>]*>`).ReplaceAllString(html, "\n- ")
	html = regexp.MustCompile(`(?i)</li>`).ReplaceAllString(html, "")

	// Strip remaining HTML tags
	html = stripHTMLTags(html)

	// Clean up excessive whitespace
	html = regexp.MustCompile(`\n{3,}`).ReplaceAllString(html, "\n\n")
	return strings.TrimSpace(html)
}

// stripHTMLTags removes all HTML tags
func stripHTMLTags(html string) string {
	text := regexp.MustCompile(`<[^>]+>`).ReplaceAllString(html, "")

	// Decode common HTML entities
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&quot;", "\"")
	text = strings.ReplaceAll(text, "&#39;", "'")
	text = strings.ReplaceAll(text, "&rsquo;", "'")
	text = strings.ReplaceAll(text, "&lsquo;", "'")
	text = strings.ReplaceAll(text, "&rdquo;", "\"")
	text = strings.ReplaceAll(text, "&ldquo;", "\"")

	return text
}
