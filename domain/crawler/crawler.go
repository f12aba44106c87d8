//go:generate moq -out internal/mocks/fetcher_moq.go -pkg mocks . Fetcher

package crawler

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"subdomainCrawler/domain/models"
	"subdomainCrawler/domain/urlNormalizer"
)

type (
	// Fetcher retrieves a single url. Fetching may differ e.g. HTTP, reading from a file, etc.
	// Fetch must return once ctx is done.
	Fetcher interface {
		Fetch(ctx context.Context, url *url.URL) (models.Response, error)
	}
)

// Crawler fetches one url and hands the page over to the extraction stage.
type Crawler struct {
	logger zerolog.Logger

	url     *url.URL      // url to crawl
	timeout time.Duration // hard deadline for the fetch

	fetcher Fetcher

	pages chan<- models.FetchedPage // successfully fetched pages are sent here
}

func New(logger zerolog.Logger, fetcher Fetcher, url *url.URL, timeout time.Duration, pages chan<- models.FetchedPage) *Crawler {
	return &Crawler{
		logger:  logger,
		url:     url,
		timeout: timeout,
		fetcher: fetcher,
		pages:   pages,
	}
}

// Crawl fetches the url. A successful page is sent on the pages channel; a failed one is only returned.
// Failures are never retried.
func (c *Crawler) Crawl(ctx context.Context) models.FetchedPage {
	page := c.fetch(ctx)
	if !page.OK {
		c.logger.Warn().Err(page.Err).Str("url", c.url.String()).Msg("fetch failed")
		return page
	}
	c.logger.Info().Str("url", page.URL.String()).Int("bytes", len(page.Body)).Msg("visited")

	select {
	case c.pages <- page:
	case <-ctx.Done():
		page.OK = false
		page.Err = ctx.Err()
	}
	return page
}

func (c *Crawler) fetch(ctx context.Context) models.FetchedPage {
	page := models.FetchedPage{URL: c.url}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.fetcher.Fetch(ctx, c.url)
	if err != nil {
		page.Err = err
		return page
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		page.Err = fmt.Errorf("%w: %d", models.ErrStatus, resp.StatusCode)
		return page
	}
	if !isText(resp.ContentType) {
		page.Err = fmt.Errorf("%w: %s", models.ErrContentType, resp.ContentType)
		return page
	}

	// Links on a redirected page are relative to where it ended up.
	if resp.URL != nil {
		final, err := urlNormalizer.Normalize(resp.URL)
		if err != nil || final.Host != c.url.Host {
			page.Err = fmt.Errorf("%w: %s", models.ErrRedirect, resp.URL)
			return page
		}
		page.URL = final
	}

	page.Body = resp.Body
	page.OK = true
	return page
}

// isText accepts text/* and html flavoured types. A missing content type is given the benefit of the doubt.
func isText(contentType string) bool {
	if contentType == "" {
		return true
	}
	// A malformed parameter still yields the media type.
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil && !errors.Is(err, mime.ErrInvalidMediaParameter) {
		return false
	}
	return strings.HasPrefix(mediaType, "text/") || strings.Contains(mediaType, "html")
}
