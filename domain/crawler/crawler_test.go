package crawler_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"subdomainCrawler/domain/crawler"
	"subdomainCrawler/domain/crawler/internal/mocks"
	"subdomainCrawler/domain/models"
)

func TestCrawler_Crawl(t *testing.T) {
	logger := zerolog.Nop()
	target := &url.URL{Scheme: "https", Host: "monzo.com", Path: "/"}

	t.Run("sends the page when the fetch succeeds", func(t *testing.T) {
		t.Parallel()

		fetcherMock := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, urlMoqParam *url.URL) (models.Response, error) {
				return models.Response{StatusCode: 200, ContentType: "text/html", Body: "Monzo"}, nil
			},
		}
		pages := make(chan models.FetchedPage, 1)

		page := crawler.New(logger, fetcherMock, target, time.Second, pages).Crawl(context.Background())

		assert.True(t, page.OK)
		select {
		case got := <-pages:
			assert.Equal(t, "Monzo", got.Body)
			assert.Equal(t, target, got.URL)
		case <-time.After(time.Second):
			t.Error("expected the page to be sent")
		}
	})
	t.Run("drops non 2xx responses", func(t *testing.T) {
		t.Parallel()

		fetcherMock := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, urlMoqParam *url.URL) (models.Response, error) {
				return models.Response{StatusCode: 503, ContentType: "text/html", Body: "down"}, nil
			},
		}
		pages := make(chan models.FetchedPage, 1)

		page := crawler.New(logger, fetcherMock, target, time.Second, pages).Crawl(context.Background())

		assert.False(t, page.OK)
		assert.ErrorIs(t, page.Err, models.ErrStatus)
		assert.Empty(t, pages)
	})
	t.Run("drops non text content", func(t *testing.T) {
		t.Parallel()

		fetcherMock := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, urlMoqParam *url.URL) (models.Response, error) {
				return models.Response{StatusCode: 200, ContentType: "application/pdf"}, nil
			},
		}
		pages := make(chan models.FetchedPage, 1)

		page := crawler.New(logger, fetcherMock, target, time.Second, pages).Crawl(context.Background())

		assert.ErrorIs(t, page.Err, models.ErrContentType)
		assert.Empty(t, pages)
	})
	t.Run("accepts text content types, even with malformed parameters", func(t *testing.T) {
		t.Parallel()

		for _, contentType := range []string{
			"",
			"text/html",
			"text/html; charset=UTF-8",
			"text/html; charset",
			"text/html;;charset=utf-8",
			"text/plain",
			"application/xhtml+xml",
		} {
			fetcherMock := &mocks.FetcherMock{
				FetchFunc: func(ctx context.Context, urlMoqParam *url.URL) (models.Response, error) {
					return models.Response{StatusCode: 200, ContentType: contentType, Body: "Monzo"}, nil
				},
			}
			pages := make(chan models.FetchedPage, 1)

			page := crawler.New(logger, fetcherMock, target, time.Second, pages).Crawl(context.Background())

			assert.True(t, page.OK, "%q: %v", contentType, page.Err)
		}
	})
	t.Run("rejects non text content types", func(t *testing.T) {
		t.Parallel()

		for _, contentType := range []string{"image/png", "application/json", "application/pdf; x", "/html"} {
			fetcherMock := &mocks.FetcherMock{
				FetchFunc: func(ctx context.Context, urlMoqParam *url.URL) (models.Response, error) {
					return models.Response{StatusCode: 200, ContentType: contentType}, nil
				},
			}
			pages := make(chan models.FetchedPage, 1)

			page := crawler.New(logger, fetcherMock, target, time.Second, pages).Crawl(context.Background())

			assert.ErrorIs(t, page.Err, models.ErrContentType, contentType)
		}
	})
	t.Run("a page redirected on the same host takes its final url", func(t *testing.T) {
		t.Parallel()

		fetcherMock := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, urlMoqParam *url.URL) (models.Response, error) {
				final := &url.URL{Scheme: "https", Host: "MONZO.com:443", Path: "/home"}
				return models.Response{URL: final, StatusCode: 200, ContentType: "text/html", Body: "Monzo"}, nil
			},
		}
		pages := make(chan models.FetchedPage, 1)

		page := crawler.New(logger, fetcherMock, target, time.Second, pages).Crawl(context.Background())

		assert.True(t, page.OK)
		assert.Equal(t, "https://monzo.com/home", page.URL.String())
		assert.Len(t, pages, 1)
	})
	t.Run("drops a page redirected to another host", func(t *testing.T) {
		t.Parallel()

		fetcherMock := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, urlMoqParam *url.URL) (models.Response, error) {
				final := &url.URL{Scheme: "https", Host: "other.com", Path: "/landing"}
				return models.Response{URL: final, StatusCode: 200, ContentType: "text/html", Body: `<a href="/x">`}, nil
			},
		}
		pages := make(chan models.FetchedPage, 1)

		page := crawler.New(logger, fetcherMock, target, time.Second, pages).Crawl(context.Background())

		assert.False(t, page.OK)
		assert.ErrorIs(t, page.Err, models.ErrRedirect)
		assert.Empty(t, pages)
	})
	t.Run("drops network errors without retrying", func(t *testing.T) {
		t.Parallel()

		fetcherMock := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, urlMoqParam *url.URL) (models.Response, error) {
				return models.Response{}, errors.New("connection refused")
			},
		}
		pages := make(chan models.FetchedPage, 1)

		page := crawler.New(logger, fetcherMock, target, time.Second, pages).Crawl(context.Background())

		assert.False(t, page.OK)
		assert.Len(t, fetcherMock.FetchCalls(), 1)
		assert.Empty(t, pages)
	})
	t.Run("fetch is bounded by the timeout", func(t *testing.T) {
		t.Parallel()

		fetcherMock := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, urlMoqParam *url.URL) (models.Response, error) {
				<-ctx.Done()
				return models.Response{}, ctx.Err()
			},
		}
		pages := make(chan models.FetchedPage, 1)

		start := time.Now()
		page := crawler.New(logger, fetcherMock, target, 50*time.Millisecond, pages).Crawl(context.Background())

		assert.ErrorIs(t, page.Err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
		assert.Empty(t, pages)
	})
	t.Run("gives up sending when the crawl is stopped", func(t *testing.T) {
		t.Parallel()

		fetcherMock := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, urlMoqParam *url.URL) (models.Response, error) {
				return models.Response{StatusCode: 200, Body: "Monzo"}, nil
			},
		}
		ctx, cancel := context.WithCancel(context.Background())
		pages := make(chan models.FetchedPage) // nobody reads

		done := make(chan models.FetchedPage, 1)
		go func() {
			done <- crawler.New(logger, fetcherMock, target, time.Second, pages).Crawl(ctx)
		}()
		cancel()

		select {
		case page := <-done:
			assert.False(t, page.OK)
			assert.ErrorIs(t, page.Err, context.Canceled)
		case <-time.After(time.Second):
			t.Error("expected the crawler to return once the context is cancelled")
		}
	})
}
