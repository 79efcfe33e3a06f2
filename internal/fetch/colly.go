package fetch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gocolly/colly"

	"prank_names/internal/models"
)

// CollyFetcher fetches through a synchronous colly collector. Cancellation
// of ctx is only observed before the request starts; the request itself is
// bounded by the collector's timeout.
type CollyFetcher struct {
	collector *colly.Collector
	robots    *robotsChecker
	logger    *slog.Logger
}

func NewCollyFetcher(timeout time.Duration, opts ...Option) *CollyFetcher {
	o := buildOptions(opts)

	c := colly.NewCollector(
		colly.AllowURLRevisit(),
	)
	c.MaxBodySize = 0
	// Status codes are judged here, not by colly.
	c.ParseHTTPErrorResponse = true
	c.SetRequestTimeout(timeout)

	return &CollyFetcher{
		collector: c,
		robots:    newRobotsChecker(newClient(timeout), o),
		logger:    o.logger,
	}
}

func (f *CollyFetcher) Fetch(ctx context.Context, rawURL string) (*models.Page, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, classify(rawURL, err)
	}
	if err := f.robots.check(ctx, rawURL, u); err != nil {
		return nil, err
	}

	var (
		page   *models.Page
		status int
	)

	// A clone per call keeps callbacks from piling up on the shared collector.
	c := f.collector.Clone()
	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		if !isSuccess(r.StatusCode) {
			return
		}
		contentType := ""
		if r.Headers != nil {
			contentType = r.Headers.Get("Content-Type")
		}
		page = newPage(rawURL, r.Request.URL.String(), r.StatusCode, contentType, string(r.Body))
	})
	c.OnError(func(r *colly.Response, err error) {
		f.logger.Debug("colly error", slog.String("url", NormalizeURL(rawURL)), slog.Any("err", err))
	})

	f.logger.Debug("fetching", slog.String("url", NormalizeURL(rawURL)), slog.String("backend", "colly"))
	if err := c.Visit(u.String()); err != nil {
		return nil, classify(rawURL, err)
	}
	if page == nil {
		if status == 0 {
			return nil, &Error{Kind: KindConnectionFailed, URL: rawURL, Err: errors.New("no response")}
		}
		return nil, statusError(rawURL, status)
	}
	return page, nil
}
