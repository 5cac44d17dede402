package httpclient

import (
	"errors"
	"fmt"
)

// HTTPError is a non-2xx response. The body is kept verbatim so the caller
// can surface the backend's message (e.g. a booking conflict) unchanged.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// IsStatus reports whether err is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == code
}
