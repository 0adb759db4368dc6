package network

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/seam-cli/seam/key"
	"github.com/seam-cli/seam/live"
	"github.com/seam-cli/seam/util"
	"github.com/spf13/viper"
)

// maxBody caps how much of an upstream response is read.
const maxBody = 16 << 20

// Headers merges header sets in order, later sets overriding earlier ones.
// The configured User-Agent is always the lowest layer.
func Headers(sets ...map[string]string) http.Header {
	h := make(http.Header)
	if ua := viper.GetString(key.NetworkUserAgent); ua != "" {
		h.Set("User-Agent", ua)
	}
	for _, set := range sets {
		for k, v := range set {
			h.Set(k, v)
		}
	}
	return h
}

// NewRequest builds an upstream request carrying merged headers.
// overrides may be nil.
func NewRequest(ctx context.Context, method, rawURL string, body io.Reader, defaults, overrides map[string]string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, live.Network(err, "build request")
	}
	req.Header = Headers(defaults, overrides)
	return req, nil
}

// Fetch executes req and returns the body of a successful response.
// Transport failures and unexpected statuses are reported as live errors.
func Fetch(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, live.Network(err, "%s %s", req.Method, req.URL.Redacted())
	}
	defer util.Ignore(resp.Body.Close)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, live.NotFound("%s returned 404", req.URL.Redacted())
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, live.Network(fmt.Errorf("status %d", resp.StatusCode), "%s %s", req.Method, req.URL.Redacted())
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, live.Network(err, "read %s", req.URL.Redacted())
	}
	return b, nil
}

// FetchJSON executes req and decodes the response body into v.
func FetchJSON(client *http.Client, req *http.Request, v any) error {
	b, err := Fetch(client, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return live.Parse(err, "decode %s", req.URL.Path)
	}
	return nil
}
