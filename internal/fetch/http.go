package fetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"prank_names/internal/models"
)

// HTTPFetcher fetches with a plain net/http client.
type HTTPFetcher struct {
	client *http.Client
	robots *robotsChecker
	logger *slog.Logger
}

func NewHTTPFetcher(timeout time.Duration, opts ...Option) *HTTPFetcher {
	o := buildOptions(opts)
	client := newClient(timeout)
	return &HTTPFetcher{
		client: client,
		robots: newRobotsChecker(client, o),
		logger: o.logger,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*models.Page, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}
	if err := f.robots.check(ctx, rawURL, u); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &Error{Kind: KindInvalidURL, URL: rawURL, Err: err}
	}

	f.logger.Debug("fetching", slog.String("url", NormalizeURL(rawURL)))
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classify(rawURL, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, statusError(rawURL, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	utf8Reader, err := charset.NewReader(resp.Body, contentType)
	if err != nil {
		utf8Reader = resp.Body
	}

	bodyBytes, err := io.ReadAll(utf8Reader)
	if err != nil {
		return nil, classify(rawURL, err)
	}

	return newPage(rawURL, resp.Request.URL.String(), resp.StatusCode, contentType, string(bodyBytes)), nil
}
