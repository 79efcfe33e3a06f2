package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/temoto/robotstxt"
)

type robotsChecker struct {
	client *http.Client
	agent  string
	logger *slog.Logger
}

// allowed reports whether agent may fetch target. A robots.txt that cannot
// be loaded or parsed allows everything.
func (rc *robotsChecker) allowed(ctx context.Context, target *url.URL) bool {
	robotsURL := fmt.Sprintf("%s://%s/robots.txt", target.Scheme, target.Host)
	rc.logger.Debug("loading robots.txt", slog.String("url", robotsURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		rc.logger.Warn("robots.txt request failed, ignoring", slog.Any("err", err))
		return true
	}
	resp, err := rc.client.Do(req)
	if err != nil {
		rc.logger.Warn("robots.txt fetch failed, ignoring", slog.Any("err", err))
		return true
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		rc.logger.Warn("robots.txt parse failed, ignoring", slog.Any("err", err))
		return true
	}

	return data.FindGroup(rc.agent).Test(target.EscapedPath())
}

// check is a no-op on a nil checker.
func (rc *robotsChecker) check(ctx context.Context, rawURL string, target *url.URL) error {
	if rc == nil {
		return nil
	}
	if !rc.allowed(ctx, target) {
		return &Error{Kind: KindDisallowed, URL: rawURL}
	}
	return nil
}

func newRobotsChecker(client *http.Client, o options) *robotsChecker {
	if !o.respectRobots {
		return nil
	}
	return &robotsChecker{client: client, agent: o.userAgent, logger: o.logger}
}
