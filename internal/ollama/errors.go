package ollama

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds, matched with errors.Is against the typed errors below.
var (
	ErrConnection = errors.New("connection failed")
	ErrHTTPStatus = errors.New("unexpected HTTP status")
	ErrBodyRead   = errors.New("response body unreadable")
	ErrDecode     = errors.New("response body malformed")
)

// ConnectionError reports that the daemon could not be reached.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("could not connect to %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error        { return e.Err }
func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

// HTTPStatusError reports a non-2xx response. The body is never decoded.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s returned status %s", e.URL, e.StatusText())
}

// StatusText returns the server's status line, e.g. "404 Not Found", or the
// bare code when no status line is known.
func (e *HTTPStatusError) StatusText() string {
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("%d", e.StatusCode)
}

func (e *HTTPStatusError) Is(target error) bool { return target == ErrHTTPStatus }

// BodyReadError reports that the response body could not be read as text.
type BodyReadError struct {
	Err error
}

func (e *BodyReadError) Error() string {
	return fmt.Sprintf("failed to read response body: %v", e.Err)
}

func (e *BodyReadError) Unwrap() error        { return e.Err }
func (e *BodyReadError) Is(target error) bool { return target == ErrBodyRead }

// DecodeError reports a body that is not JSON or does not match the expected shape.
type DecodeError struct {
	Err        error
	Violations []string
}

func (e *DecodeError) Error() string {
	if len(e.Violations) > 0 {
		return fmt.Sprintf("failed to decode response: %s", strings.Join(e.Violations, "; "))
	}
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error        { return e.Err }
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
