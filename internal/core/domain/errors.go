package domain

import "errors"

// ErrDecodeFailure marks a response body that could not be parsed as the
// declared DTO. It signals a contract violation, not a user error.
var ErrDecodeFailure = errors.New("response decoding failed")

// ErrEmptyResponse marks an absent body where a value was required.
var ErrEmptyResponse = errors.New("empty response body")
