package httpclient

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonhub/salon-client/internal/core/domain"
	"github.com/salonhub/salon-client/internal/core/ports"
)

// NewInterceptor builds a Transport whose every request carries the bearer
// credential read from the store at dispatch time. No authenticated endpoint
// can be reached without passing through here.
func NewInterceptor(baseURL string, timeout time.Duration, store ports.CredentialStore, log zerolog.Logger) (*Transport, error) {
	rt := &bearerRoundTripper{store: store, next: http.DefaultTransport}
	return NewTransport(baseURL, timeout, rt, log)
}

type bearerRoundTripper struct {
	store ports.CredentialStore
	next  http.RoundTripper
}

// RoundTrip reads the token fresh on every request so that a login or logout
// between two calls is always reflected. An absent or empty token sends the
// request without an Authorization header.
func (b *bearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := b.store.Get(req.Context(), domain.KeyToken)
	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}
	if token == "" {
		return b.next.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	return b.next.RoundTrip(clone)
}
