package fetch

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Kind names a fetch failure. Callers switch on it to pick a diagnostic.
type Kind int

const (
	KindTimeout Kind = iota + 1
	KindInvalidURL
	KindConnectionFailed
	KindHTTPStatus
	KindDisallowed
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindInvalidURL:
		return "invalid url"
	case KindConnectionFailed:
		return "connection failed"
	case KindHTTPStatus:
		return "http status"
	case KindDisallowed:
		return "disallowed by robots.txt"
	default:
		return "unknown"
	}
}

// Sentinels matched by *Error through errors.Is.
var (
	ErrTimeout          = errors.New("timed out")
	ErrInvalidURL       = errors.New("missing schema: include http or https")
	ErrConnectionFailed = errors.New("connection error")
	ErrHTTPStatus       = errors.New("http error")
	ErrDisallowed       = errors.New("disallowed by robots.txt")
)

func (k Kind) sentinel() error {
	switch k {
	case KindTimeout:
		return ErrTimeout
	case KindInvalidURL:
		return ErrInvalidURL
	case KindConnectionFailed:
		return ErrConnectionFailed
	case KindHTTPStatus:
		return ErrHTTPStatus
	case KindDisallowed:
		return ErrDisallowed
	default:
		return nil
	}
}

// Error is the single error type returned by every Fetcher.
type Error struct {
	Kind       Kind
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindHTTPStatus:
		return fmt.Sprintf("%s: %s returned %d", e.Kind, e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.URL, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.URL)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// classify maps a transport error onto a Kind. Timeouts are checked first
// since a timed out dial is also a net.Error.
func classify(rawURL string, err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Kind: KindTimeout, URL: rawURL, Err: err}
	}
	return &Error{Kind: KindConnectionFailed, URL: rawURL, Err: err}
}

func statusError(rawURL string, code int) *Error {
	return &Error{Kind: KindHTTPStatus, URL: rawURL, StatusCode: code}
}

func isSuccess(code int) bool {
	return code >= 200 && code <= 299
}
