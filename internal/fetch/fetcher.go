// Package fetch retrieves the source page with a single bounded GET and
// reports failures as one of a closed set of kinds.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"time"

	"prank_names/internal/config"
	"prank_names/internal/models"
)

const (
	MaxHops = 15

	defaultAgent = "prank-names"
)

// Fetcher issues one GET and returns the page on a 2xx response.
// Every non-nil error is a *Error.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*models.Page, error)
}

type options struct {
	respectRobots bool
	userAgent     string
	logger        *slog.Logger
}

type Option func(*options)

// WithRobots makes the fetcher consult robots.txt for agent before the GET.
func WithRobots(agent string) Option {
	return func(o *options) {
		o.respectRobots = true
		if agent != "" {
			o.userAgent = agent
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{userAgent: defaultAgent, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// New builds the backend named in cfg.
func New(cfg config.FetchConfig, logger *slog.Logger) (Fetcher, error) {
	timeout := cfg.Timeout()
	opts := []Option{WithLogger(logger)}
	if cfg.RespectRobots {
		opts = append(opts, WithRobots(cfg.UserAgent))
	}

	switch cfg.Backend {
	case config.BackendHTTP, "":
		return NewHTTPFetcher(timeout, opts...), nil
	case config.BackendColly:
		return NewCollyFetcher(timeout, opts...), nil
	default:
		return nil, fmt.Errorf("unknown fetch backend %q", cfg.Backend)
	}
}

func newClient(timeout time.Duration) *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{
		Transport: &http.Transport{
			DisableKeepAlives: true,
			MaxIdleConns:      0,
		},
		Jar:     jar,
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= MaxHops {
				return fmt.Errorf("stopped after %d redirects (MaxHops exceeded)", MaxHops)
			}
			return nil
		},
	}
}

func newPage(rawURL, finalURL string, status int, contentType, body string) *models.Page {
	return &models.Page{
		URL:         rawURL,
		FinalURL:    finalURL,
		StatusCode:  status,
		ContentType: contentType,
		Body:        body,
		ContentHash: ComputeContentHash(body),
	}
}
