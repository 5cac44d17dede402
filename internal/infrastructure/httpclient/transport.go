// Package httpclient is the single chokepoint for outbound HTTP: it roots
// every path at the configured API base, serializes JSON bodies, injects the
// bearer credential when constructed as an interceptor, and turns non-2xx
// responses into typed errors. Cross-cutting concerns (metrics, future
// correlation IDs) live here and nowhere else.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonhub/salon-client/internal/api/metrics"
)

const defaultTimeout = 30 * time.Second

// Transport dispatches JSON requests relative to {baseURL}/api/.
type Transport struct {
	base *url.URL
	http *http.Client
	log  zerolog.Logger
}

// NewTransport builds a Transport rooted at {baseURL}/api/. A nil rt uses
// http.DefaultTransport; a zero timeout uses the package default.
func NewTransport(baseURL string, timeout time.Duration, rt http.RoundTripper, log zerolog.Logger) (*Transport, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/") + "/api/")
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if rt == nil {
		rt = http.DefaultTransport
	}
	return &Transport{
		base: base,
		http: &http.Client{Timeout: timeout, Transport: rt},
		log:  log,
	}, nil
}

func (t *Transport) Get(ctx context.Context, path string) ([]byte, error) {
	return t.do(ctx, http.MethodGet, path, nil)
}

func (t *Transport) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return t.do(ctx, http.MethodPost, path, body)
}

func (t *Transport) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return t.do(ctx, http.MethodPut, path, body)
}

// Patch dispatches a PATCH request. body may be nil.
func (t *Transport) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return t.do(ctx, http.MethodPatch, path, body)
}

func (t *Transport) Delete(ctx context.Context, path string) ([]byte, error) {
	return t.do(ctx, http.MethodDelete, path, nil)
}

func (t *Transport) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parse path %q: %w", path, err)
	}
	target := t.base.ResolveReference(ref)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := t.http.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, "error").Inc()
		return nil, fmt.Errorf("dispatch %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, "error").Inc()
		return nil, fmt.Errorf("read response body: %w", err)
	}
	metrics.RequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		t.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("request failed")
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}
