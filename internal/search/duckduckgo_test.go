package search

import "testing"

const liteHTML = `
<html><body><table>
<tr><td><a rel="nofollow" class='result-link' href='https://example.com/relativity'>Theory of Relativity - Overview</a></td></tr>
<tr><td class='result-snippet'>Einstein&#39;s theory of &quot;relativity&quot; changed physics.</td></tr>
<tr><td><a rel="nofollow" class='result-link' href='https://example.org/curie'>Marie Curie &amp; Radium</a></td></tr>
<tr><td class='result-snippet'>Discovered radium and polonium.</td></tr>
</table></body></html>`

func TestParseLiteResults(t *testing.T) {
	results := parseLiteResults(liteHTML)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d: %#v", len(results), results)
	}
	if results[0].URL != "https://example.com/relativity" {
		t.Errorf("unexpected first URL: %s", results[0].URL)
	}
	if results[0].Snippet != `Einstein's theory of "relativity" changed physics.` {
		t.Errorf("entities not decoded in snippet: %q", results[0].Snippet)
	}
	if results[1].Title != "Marie Curie & Radium" {
		t.Errorf("entities not decoded in title: %q", results[1].Title)
	}
}

func TestParseLiteResultsAttributeOrder(t *testing.T) {
	html := `<a href="https://example.com/a" class="result-link">First Result Title</a>`
	results := parseLiteResults(html)
	if len(results) != 1 || results[0].URL != "https://example.com/a" {
		t.Fatalf("href-before-class order not handled: %#v", results)
	}
}

func TestParseLiteResultsFallback(t *testing.T) {
	html := `
<a href="/internal">internal nav</a>
<a href="https://duckduckgo.com/settings">settings</a>
<a href="https://example.com/page">A Real External Page</a>
<a href="https://example.com/page">A Real External Page</a>`
	results := parseLiteResults(html)
	if len(results) != 1 {
		t.Fatalf("expected 1 deduped fallback result, got %d: %#v", len(results), results)
	}
	if results[0].URL != "https://example.com/page" {
		t.Errorf("unexpected fallback URL: %s", results[0].URL)
	}
}

func TestParseLiteResultsCapsAtFive(t *testing.T) {
	html := ""
	for i := 0; i < 8; i++ {
		html += `<a class="result-link" href="https://example.com/` + string(rune('a'+i)) + `">Result Title Here</a>`
	}
	results := parseLiteResults(html)
	if len(results) != 5 {
		t.Fatalf("expected cap at 5 results, got %d", len(results))
	}
}

func TestCleanHTML(t *testing.T) {
	got := cleanHTML(` <b>Bold &amp; beautiful</b>&nbsp;text `)
	if got != "Bold & beautiful text" {
		t.Fatalf("unexpected cleaned text: %q", got)
	}
}
