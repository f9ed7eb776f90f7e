package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"charm.land/fantasy"
	"github.com/pkg/errors"

	"github.com/picobot-ai/picobot/internal/logger"
)

const braveSearchURL = "https://api.search.brave.com/res/v1/web/search"

var searchClient = &http.Client{Timeout: 15 * time.Second}

// WebSearchInput is the input for the web_search tool.
type WebSearchInput struct {
	Query string `json:"query" description:"The search query"`
	Count int    `json:"count,omitempty" description:"Number of results, 1-10 (default 5)"`
}

type braveResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type braveResponse struct {
	Web struct {
		Results []braveResult `json:"results"`
	} `json:"web"`
}

// NewWebSearchTool creates the web_search tool backed by the Brave
// Search API.
func NewWebSearchTool(apiKey string) fantasy.AgentTool {
	return fantasy.NewAgentTool(
		"web_search",
		"Search the web and return titles, URLs and snippets.",
		func(ctx context.Context, input WebSearchInput, _ fantasy.ToolCall) (fantasy.ToolResponse, error) {
			result, err := searchWeb(ctx, apiKey, input.Query, input.Count)
			if err != nil {
				return fantasy.NewTextErrorResponse(err.Error()), nil
			}
			return fantasy.NewTextResponse(result), nil
		},
	)
}

func searchWeb(ctx context.Context, apiKey, query string, count int) (string, error) {
	if apiKey == "" {
		return "", errors.New("BRAVE_API_KEY not configured")
	}
	if strings.TrimSpace(query) == "" {
		return "", errors.New("query is required")
	}

	n := count
	if n < 1 {
		n = 5
	}
	if n > 10 {
		n = 10
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("count", fmt.Sprintf("%d", n))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, braveSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", errors.Wrap(err, "building search request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", apiKey)

	resp, err := searchClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "network error")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("HTTP %d from Brave Search", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading search response")
	}

	var payload braveResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", errors.Wrap(err, "decoding search response")
	}

	logger.G(ctx).WithFields(map[string]any{"query": query, "results": len(payload.Web.Results)}).Debug("web search")
	return formatSearchResults(query, payload.Web.Results, n), nil
}

func formatSearchResults(query string, results []braveResult, n int) string {
	if len(results) == 0 {
		return "No results for: " + query
	}
	if len(results) > n {
		results = results[:n]
	}

	lines := []string{"Results for: " + query, ""}
	for i, item := range results {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item.Title))
		lines = append(lines, "   "+item.URL)
		if item.Description != "" {
			lines = append(lines, "   "+item.Description)
		}
	}
	return strings.Join(lines, "\n")
}
