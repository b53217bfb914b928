// Package search wraps a restricted web-search API. Two clients share one
// transport: the medical client scoped to an allow-list of trusted health
// domains, and the social client scoped to social platforms with a trust
// penalty applied.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Client issues single search requests against a Custom Search style
// endpoint. It carries credentials but no scope; each scoped client supplies
// its own engine identifier per call.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient creates a search client with the given credentials and timeout.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// item is one raw search result before trust scoring.
type item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	HTMLSnippet string `json:"htmlSnippet,omitempty"`
}

// searchResponse mirrors the subset of the API response we consume. An
// absent items field decodes to a nil slice, which is zero results, not an
// error.
type searchResponse struct {
	Items []item `json:"items"`
}

// search issues one GET against the endpoint with the standard query
// parameters {key, cx, q, num} and decodes the item list.
func (c *Client) search(ctx context.Context, engineID, query string, num int) ([]item, error) {
	params := url.Values{
		"key": {c.apiKey},
		"cx":  {engineID},
		"q":   {query},
		"num": {strconv.Itoa(num)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned HTTP %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}

	for i := range sr.Items {
		if sr.Items[i].Snippet == "" && sr.Items[i].HTMLSnippet != "" {
			sr.Items[i].Snippet = htmlToText(sr.Items[i].HTMLSnippet)
		}
	}

	return sr.Items, nil
}

// scopedQuery appends a disjunction of site: qualifiers to the raw query,
// e.g. `chest pain (site:nhs.uk OR site:who.int)`.
func scopedQuery(query string, sites []string) string {
	if len(sites) == 0 {
		return query
	}
	return fmt.Sprintf("%s (%s)", query, strings.Join(sites, " OR "))
}

// htmlToText strips markup from an HTML snippet, keeping text content only.
// The API highlights query terms with <b> tags in htmlSnippet.
func htmlToText(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(b.String())
}
