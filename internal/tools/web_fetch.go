package tools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"charm.land/fantasy"
	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/pkg/errors"

	"github.com/picobot-ai/picobot/internal/logger"
)

const defaultFetchMaxChars = 50000

var fetchClient = &http.Client{Timeout: 30 * time.Second}

// WebFetchInput is the input for the web_fetch tool.
type WebFetchInput struct {
	URL      string `json:"url" description:"The http(s) URL to fetch"`
	MaxChars int    `json:"max_chars,omitempty" description:"Truncate extracted text after this many characters (default 50000)"`
}

// fetchResult is the JSON envelope returned to the runtime.
type fetchResult struct {
	URL       string `json:"url"`
	FinalURL  string `json:"finalUrl"`
	Status    int    `json:"status"`
	Extractor string `json:"extractor"`
	Truncated bool   `json:"truncated"`
	Length    int    `json:"length"`
	Text      string `json:"text"`
}

// NewWebFetchTool creates the web_fetch tool. HTML pages are converted
// to Markdown; JSON and plain text pass through.
func NewWebFetchTool() fantasy.AgentTool {
	return fantasy.NewAgentTool(
		"web_fetch",
		"Fetch a URL and return its extracted text as JSON with status and extraction metadata.",
		func(ctx context.Context, input WebFetchInput, _ fantasy.ToolCall) (fantasy.ToolResponse, error) {
			result, err := fetchURL(ctx, input.URL, input.MaxChars)
			if err != nil {
				return fantasy.NewTextErrorResponse(err.Error()), nil
			}
			return fantasy.NewTextResponse(result), nil
		},
	)
}

func fetchURL(ctx context.Context, rawURL string, maxChars int) (string, error) {
	if err := validateHTTPURL(rawURL); err != nil {
		return "", err
	}
	if maxChars <= 0 {
		maxChars = defaultFetchMaxChars
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", errors.Wrap(err, "building request")
	}
	req.Header.Set("User-Agent", "picobot/0.2")

	resp, err := fetchClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "network error")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading response body")
	}

	extractor, text := extractText(resp.Header.Get("Content-Type"), string(raw))
	truncated := len(text) > maxChars
	if truncated {
		text = text[:maxChars]
	}

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	logger.G(ctx).WithFields(map[string]any{
		"url": rawURL, "status": resp.StatusCode, "extractor": extractor,
	}).Debug("web fetch")

	envelope, err := json.MarshalIndent(fetchResult{
		URL:       rawURL,
		FinalURL:  finalURL,
		Status:    resp.StatusCode,
		Extractor: extractor,
		Truncated: truncated,
		Length:    len(text),
		Text:      text,
	}, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encoding result")
	}
	return string(envelope), nil
}

func validateHTTPURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.Wrap(err, "invalid URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("only http/https URLs are supported")
	}
	if parsed.Host == "" {
		return errors.New("URL must include a domain")
	}
	return nil
}

// extractText picks an extractor from the content type and returns its
// name alongside the extracted text.
func extractText(contentType, body string) (string, string) {
	switch {
	case strings.Contains(contentType, "application/json"):
		return "json", body
	case strings.Contains(contentType, "text/html") || looksLikeHTML(body):
		converter := md.NewConverter("", true, nil)
		markdown, err := converter.ConvertString(body)
		if err != nil {
			return "raw", body
		}
		return "html", markdown
	default:
		return "raw", body
	}
}

func looksLikeHTML(body string) bool {
	head := body
	if len(head) > 1024 {
		head = head[:1024]
	}
	return strings.Contains(strings.ToLower(head), "<html")
}
