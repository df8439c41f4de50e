package fetcher

import (
	"errors"
	"fmt"
	"net/http"

	"actresses/internal/models"
)

// Fetch errors.
var (
	ErrTransport     = errors.New("transport failure")
	ErrMalformedJSON = errors.New("malformed JSON body")
	ErrBodyTooLarge  = errors.New("response body too large")
	ErrNotArray      = errors.New("invalid data type: expected JSON array")
	ErrInvalidFormat = errors.New("invalid actress format")
)

// HTTPStatusError reports a non-2xx response.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "HTTP status error"
	}

	return fmt.Sprintf("HTTP %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// Kind classifies the outcome of a single lookup.
type Kind int

// Lookup outcomes.
const (
	Found Kind = iota
	NotFound
	Invalid
	TransportError
)

func (k Kind) String() string {
	switch k {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case Invalid:
		return "invalid"
	case TransportError:
		return "transport_error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is the outcome of fetching one actress. Actress is non-nil only when Kind is Found.
type Result struct {
	Actress *models.Actress
	Err     error
	ID      int
	Kind    Kind
}

// OK reports whether the record was found and valid.
func (r Result) OK() bool {
	return r.Kind == Found
}

func classify(err error) Kind {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusNotFound {
			return NotFound
		}

		return TransportError
	}

	if errors.Is(err, ErrMalformedJSON) || errors.Is(err, ErrBodyTooLarge) || errors.Is(err, ErrInvalidFormat) {
		return Invalid
	}

	return TransportError
}
