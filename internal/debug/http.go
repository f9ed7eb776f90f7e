// Package debug provides an HTTP client that dumps API traffic for
// troubleshooting provider issues.
package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	debugWriter io.Writer
	initOnce    sync.Once
)

// NewHTTPClient returns a client whose transport logs every request and
// response.
func NewHTTPClient() *http.Client {
	enable()
	return &http.Client{
		Transport: &Transport{Base: http.DefaultTransport},
	}
}

// enable opens the debug log, falling back to stderr.
func enable() {
	initOnce.Do(func() {
		dir, err := os.Getwd()
		if err != nil {
			debugWriter = os.Stderr
			return
		}
		for i := 0; i < 100; i++ {
			path := filepath.Join(dir, fmt.Sprintf("picobot-debug-api-%d.log", i))
			f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
			if err == nil {
				debugWriter = f
				fmt.Fprintf(os.Stderr, "API debug log: %s\n", path)
				return
			}
		}
		debugWriter = os.Stderr
	})
}

func writef(format string, args ...any) {
	if debugWriter != nil {
		fmt.Fprintf(debugWriter, format, args...)
	}
}

// Transport wraps an http.RoundTripper and logs traffic.
type Transport struct {
	Base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	logRequest(req)

	resp, err := t.Base.RoundTrip(req)
	if err != nil {
		writef("<<< Error: %v\n", err)
		return resp, err
	}

	writef("<<< Response %s\n", resp.Status)
	if resp.Body != nil {
		resp.Body = &loggingBody{inner: resp.Body}
	}
	return resp, nil
}

func logRequest(req *http.Request) {
	writef(">>> Request\n%s %s\n", req.Method, req.URL)
	for k, v := range req.Header {
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "X-Api-Key") {
			writef("  %s: ***\n", k)
			continue
		}
		writef("  %s: %v\n", k, v)
	}

	if req.Body == nil {
		return
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	var decoded any
	if json.Unmarshal(body, &decoded) == nil {
		pretty, _ := json.MarshalIndent(decoded, "", "  ")
		writef("Body:\n%s\n", pretty)
	} else {
		writef("Body:\n%s\n", body)
	}
}

// loggingBody mirrors each chunk of the response body into the log as
// it is consumed.
type loggingBody struct {
	inner io.ReadCloser
}

func (b *loggingBody) Read(p []byte) (int, error) {
	n, err := b.inner.Read(p)
	if n > 0 {
		writef("%s", p[:n])
	}
	if err == io.EOF {
		writef("\n")
	}
	return n, err
}

func (b *loggingBody) Close() error {
	return b.inner.Close()
}
