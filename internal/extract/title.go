package extract

import (
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
)

// PageTitle returns the readable title of the page, or "" if it cannot be
// determined.
func PageTitle(body, pageURL string) string {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}

	article, err := readability.FromReader(strings.NewReader(body), parsedURL)
	if err != nil {
		return ""
	}
	return normalizeText(article.Title)
}
