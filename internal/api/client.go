// Package api exposes one typed operation per backend route. Operations are
// partitioned by authentication requirement: the public group dispatches on
// the raw transport, everything else goes through the bearer-injecting one.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/salonhub/salon-client/internal/core/domain"
	"github.com/salonhub/salon-client/internal/core/ports"
	"github.com/salonhub/salon-client/internal/infrastructure/httpclient"
)

// Client implements ports.APIClient over two transports sharing one API base.
type Client struct {
	public   *httpclient.Transport
	authed   *httpclient.Transport
	validate *validator.Validate
	log      zerolog.Logger
}

var _ ports.APIClient = (*Client)(nil)

// NewClient wires the raw transport (public endpoints) and the interceptor
// transport (authenticated endpoints).
func NewClient(public, authed *httpclient.Transport, log zerolog.Logger) *Client {
	return &Client{
		public:   public,
		authed:   authed,
		validate: validator.New(),
		log:      log,
	}
}

// decodeOne parses a required single-value body. An absent body or malformed
// JSON is a contract violation, surfaced via the decode sentinels.
func decodeOne[T any](data []byte) (*T, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.ErrEmptyResponse
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeFailure, err)
	}
	return &v, nil
}

// decodeList parses a slice body. An absent body or JSON null yields an empty
// list, never an error.
func decodeList[T any](data []byte) ([]T, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}
	var v []T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeFailure, err)
	}
	if v == nil {
		v = []T{}
	}
	return v, nil
}
