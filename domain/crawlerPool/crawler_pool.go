//go:generate moq -out internal/mocks/fetcher_moq.go -pkg mocks . Fetcher

package crawlerPool

import (
	"context"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"subdomainCrawler/domain/crawler"
	"subdomainCrawler/domain/models"
)

type (
	Fetcher interface {
		Fetch(ctx context.Context, url *url.URL) (models.Response, error)
	}

	// WorkTracker is told when a url will not produce a page, and decides whether an idle pool may stop the crawl.
	WorkTracker interface {
		Done()
		Settled() bool
	}
)

// CrawlerCompletedHook is called when a crawler is done with a url, whether or not the fetch succeeded.
type CrawlerCompletedHook func(context.Context, models.FetchedPage)

func NoOpCompletedHook(ctx context.Context, page models.FetchedPage) {}

// CrawlerPool is the fetch stage. It receives urls and runs at most size crawlers at a time.
type CrawlerPool struct {
	logger zerolog.Logger

	size    int64               // Number of crawlers allowed in flight.
	permits *semaphore.Weighted // One permit per running crawler.
	limiter *rate.Limiter       // Paces crawler starts.

	// Deadline of a single fetch and how long the pool waits for a url before it considers the crawl done.
	timeout time.Duration

	fetcher Fetcher
	tracker WorkTracker

	completionHook CrawlerCompletedHook // Hook to call when a crawler is done.

	activeCrawlers int64 // Number of active crawlers.
	peakCrawlers   int64 // Highest number of crawlers seen running at once.
	crawlers       sync.WaitGroup
}

// New creates a new CrawlerPool. A nil limiter does not pace requests.
func New(logger zerolog.Logger, size int64, timeout time.Duration, fetcher Fetcher, tracker WorkTracker, limiter *rate.Limiter, completionHook CrawlerCompletedHook) *CrawlerPool {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	if completionHook == nil {
		completionHook = NoOpCompletedHook
	}
	return &CrawlerPool{
		logger: logger,

		size:    size,
		permits: semaphore.NewWeighted(size),
		limiter: limiter,

		timeout: timeout,

		fetcher: fetcher,
		tracker: tracker,

		completionHook: completionHook,
	}
}

// Start receives urls until ctx is done or no url arrives within the timeout.
// In the latter case the pool calls stop so the rest of the crawl shuts down too.
// Start returns once every crawler it started has exited.
func (cp *CrawlerPool) Start(ctx context.Context, stop context.CancelFunc, urls <-chan *url.URL, pages chan<- models.FetchedPage) {
	defer cp.crawlers.Wait()

	cp.logger.Debug().Int64("size", cp.size).Dur("timeout", cp.timeout).Msg("crawler pool started")

	for {
		select {
		case <-ctx.Done():
			// graceful shutdown
			cp.logger.Debug().Msg("crawler pool stopped")
			return
		case <-time.After(cp.timeout):
			if !cp.tracker.Settled() {
				cp.logger.Debug().Msg("no url received within timeout, work still in flight")
				continue
			}
			cp.logger.Info().Dur("timeout", cp.timeout).Msg("no url received within timeout, stopping crawl")
			stop()
			return
		case u, ok := <-urls:
			if !ok {
				return
			}
			if err := cp.acquire(ctx); err != nil {
				cp.tracker.Done()
				return
			}

			cp.incrementCrawlerCount()
			cp.logger.Debug().Str("url", u.String()).Int64("active", cp.ActiveCrawlers()).Msg("crawler started")
			cp.crawlers.Add(1)
			go cp.crawl(ctx, u, pages)
		}
	}
}

func (cp *CrawlerPool) acquire(ctx context.Context) error {
	if err := cp.limiter.Wait(ctx); err != nil {
		return err
	}
	return cp.permits.Acquire(ctx, 1)
}

func (cp *CrawlerPool) crawl(ctx context.Context, u *url.URL, pages chan<- models.FetchedPage) {
	defer cp.crawlers.Done()
	defer cp.permits.Release(1)
	defer cp.decrementCrawlerCount()

	page := crawler.
		New(cp.logger, cp.fetcher, u, cp.timeout, pages).
		Crawl(ctx)
	if !page.OK {
		cp.tracker.Done()
	}
	cp.completionHook(ctx, page)
}

// ActiveCrawlers is the number of fetches currently in flight.
func (cp *CrawlerPool) ActiveCrawlers() int64 {
	return atomic.LoadInt64(&cp.activeCrawlers)
}

// PeakCrawlers is the highest number of fetches that were in flight at once.
func (cp *CrawlerPool) PeakCrawlers() int64 {
	return atomic.LoadInt64(&cp.peakCrawlers)
}

func (cp *CrawlerPool) incrementCrawlerCount() {
	active := atomic.AddInt64(&cp.activeCrawlers, 1)
	for {
		peak := atomic.LoadInt64(&cp.peakCrawlers)
		if active <= peak || atomic.CompareAndSwapInt64(&cp.peakCrawlers, peak, active) {
			return
		}
	}
}

func (cp *CrawlerPool) decrementCrawlerCount() {
	atomic.AddInt64(&cp.activeCrawlers, -1)
}
