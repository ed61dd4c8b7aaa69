package dhan

import "fmt"

// ErrorKind classifies an API failure.
type ErrorKind string

const (
	// KindConfig means the client was built with unusable credentials.
	KindConfig ErrorKind = "config"
	// KindTransport means the HTTP round trip itself failed.
	KindTransport ErrorKind = "transport"
	// KindHTTP means the upstream answered with a non-2xx status.
	KindHTTP ErrorKind = "http"
	// KindDecode means the response body did not match the expected shape.
	KindDecode ErrorKind = "decode"
)

// APIError is a structured upstream failure. It is never retried; callers
// surface it to the invoking agent as a tool error result.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	ErrorCode  string // broker error code, when the envelope carries one
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindHTTP:
		if e.ErrorCode != "" {
			return fmt.Sprintf("dhan api error %d (%s): %s", e.StatusCode, e.ErrorCode, e.Message)
		}
		return fmt.Sprintf("dhan api error %d: %s", e.StatusCode, e.Message)
	case KindDecode:
		return fmt.Sprintf("dhan api: unexpected response shape: %s", e.Message)
	case KindTransport:
		return fmt.Sprintf("dhan api: request failed: %s", e.Message)
	default:
		return fmt.Sprintf("dhan api: %s", e.Message)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// errorEnvelope is Dhan's error body shape.
type errorEnvelope struct {
	ErrorType    string `json:"errorType"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}
