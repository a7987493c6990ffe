package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxExtractChars = 1500 // keep intro extracts small enough for LLM context

// Wikipedia searches the MediaWiki API and returns plain-text intro extracts
// for the top matches.
type Wikipedia struct {
	client  *http.Client
	baseURL string
	topK    int
}

// NewWikipedia creates a Wikipedia searcher returning the top two matches.
func NewWikipedia() *Wikipedia {
	return &Wikipedia{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: "https://en.wikipedia.org/w/api.php",
		topK:    2,
	}
}

// NewWikipediaWithClient creates a Wikipedia searcher using the supplied HTTP
// client. Useful for overriding the default timeout.
func NewWikipediaWithClient(client *http.Client) *Wikipedia {
	w := NewWikipedia()
	w.client = client
	return w
}

// Search finds matching page titles, then fetches their intro extracts.
func (w *Wikipedia) Search(ctx context.Context, query string) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is empty")
	}

	titles, err := w.searchTitles(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(titles) == 0 {
		return nil, nil
	}

	return w.fetchExtracts(ctx, titles)
}

func (w *Wikipedia) searchTitles(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", fmt.Sprintf("%d", w.topK))
	params.Set("format", "json")

	var response struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := w.get(ctx, params, &response); err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(response.Query.Search))
	for _, hit := range response.Query.Search {
		titles = append(titles, hit.Title)
	}
	return titles, nil
}

func (w *Wikipedia) fetchExtracts(ctx context.Context, titles []string) ([]Result, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("titles", strings.Join(titles, "|"))
	params.Set("format", "json")

	var response struct {
		Query struct {
			Pages map[string]struct {
				Title   string `json:"title"`
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := w.get(ctx, params, &response); err != nil {
		return nil, err
	}

	extracts := make(map[string]string, len(response.Query.Pages))
	for _, page := range response.Query.Pages {
		extracts[page.Title] = page.Extract
	}

	// The pages map loses search ranking, so rebuild results in title order.
	results := make([]Result, 0, len(titles))
	for _, title := range titles {
		extract := extracts[title]
		if len(extract) > maxExtractChars {
			extract = extract[:maxExtractChars] + "..."
		}
		results = append(results, Result{
			Title:   title,
			URL:     "https://en.wikipedia.org/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_")),
			Snippet: extract,
		})
	}
	return results, nil
}

func (w *Wikipedia) get(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "ariadne/1.0 (research assistant CLI)")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wikipedia http %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
