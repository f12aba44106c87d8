//go:generate moq -out internal/mocks/href_scanner_moq.go -pkg mocks . HrefScanner
//go:generate moq -out internal/mocks/queue_moq.go -pkg mocks . Queue

package linkExtractor

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"subdomainCrawler/domain/models"
	"subdomainCrawler/domain/urlNormalizer"
)

type (
	// HrefScanner returns the raw hrefs found in a page. It never fails.
	HrefScanner interface {
		Extract(contents string) []string
	}

	// VisitedSet records a url and reports whether it was new, in one atomic step.
	VisitedSet interface {
		Visit(key string) bool
	}

	// LinkFilter returns false if the url should not be crawled.
	LinkFilter interface {
		ShouldCrawl(u *url.URL) bool
	}

	// Queue of urls waiting to be fetched.
	Queue interface {
		Push(val interface{}) error
	}

	WorkTracker interface {
		Add(n int)
		Done()
		Settled() bool
	}
)

// PageHook is called once per extracted page with every link accepted from it.
type PageHook func(context.Context, models.PageLinks)

// LinkExtractor is the extraction stage. It turns fetched pages into new urls to fetch.
type LinkExtractor struct {
	logger zerolog.Logger

	scanner  HrefScanner
	visited  VisitedSet
	filters  []LinkFilter // Filters are applied in the order they are specified.
	frontier Queue        // Accepted urls are pushed here.
	tracker  WorkTracker

	timeout time.Duration // How long to wait for a page before considering the crawl done.
	workers int           // Pages extracted concurrently.

	hooks []PageHook

	pagesExtracted uint64
	linksAccepted  uint64
}

func New(logger zerolog.Logger, scanner HrefScanner, visited VisitedSet, filters []LinkFilter, frontier Queue, tracker WorkTracker, timeout time.Duration, workers int, hooks ...PageHook) *LinkExtractor {
	if workers < 1 {
		workers = 1
	}
	return &LinkExtractor{
		logger:   logger,
		scanner:  scanner,
		visited:  visited,
		filters:  filters,
		frontier: frontier,
		tracker:  tracker,
		timeout:  timeout,
		workers:  workers,
		hooks:    hooks,
	}
}

// Run extracts pages until ctx is done or no page arrives within the timeout,
// in which case it calls stop. Run returns once every page it picked up is processed.
func (le *LinkExtractor) Run(ctx context.Context, stop context.CancelFunc, pages <-chan models.FetchedPage) {
	g := new(errgroup.Group)
	g.SetLimit(le.workers)
	defer func() { _ = g.Wait() }()

	for {
		select {
		case <-ctx.Done():
			le.logger.Debug().Msg("link extractor stopped")
			return
		case <-time.After(le.timeout):
			if !le.tracker.Settled() {
				le.logger.Debug().Msg("no page received within timeout, work still in flight")
				continue
			}
			le.logger.Info().Dur("timeout", le.timeout).Msg("no page received within timeout, stopping crawl")
			stop()
			return
		case page, ok := <-pages:
			if !ok {
				return
			}
			g.Go(func() error {
				le.Process(ctx, page)
				return nil
			})
		}
	}
}

// Process extracts the links of one page, queues the new ones and runs the page hooks.
func (le *LinkExtractor) Process(ctx context.Context, page models.FetchedPage) []*url.URL {
	defer le.tracker.Done()

	if !page.OK {
		return nil
	}

	links := le.Extract(page)
	for _, link := range links {
		le.tracker.Add(1)
		if err := le.frontier.Push(link); err != nil {
			le.tracker.Done()
			le.logger.Error().Err(err).Str("url", link.String()).Msg("queueing link")
		}
	}

	atomic.AddUint64(&le.pagesExtracted, 1)
	atomic.AddUint64(&le.linksAccepted, uint64(len(links)))

	result := models.PageLinks{URL: page.URL, Links: links}
	for _, hook := range le.hooks {
		hook(ctx, result)
	}
	return links
}

// Extract returns the links of page that are on the seed's host and were never seen before,
// in the order they appear. Each accepted link is marked visited.
func (le *LinkExtractor) Extract(page models.FetchedPage) []*url.URL {
	accepted := []*url.URL{}

	for _, raw := range le.scanner.Extract(page.Body) {
		link, err := urlNormalizer.Resolve(page.URL, raw)
		if err != nil {
			le.logger.Debug().Err(err).Str("page", page.URL.String()).Msg("skipping link")
			continue
		}
		if !le.shouldCrawl(link) {
			continue
		}
		if !le.visited.Visit(urlNormalizer.Key(link)) {
			continue
		}
		accepted = append(accepted, link)
	}

	le.logger.Debug().Str("page", page.URL.String()).Int("accepted", len(accepted)).Msg("extracted links")
	return accepted
}

func (le *LinkExtractor) shouldCrawl(link *url.URL) bool {
	for _, filter := range le.filters {
		if !filter.ShouldCrawl(link) {
			return false
		}
	}
	return true
}

func (le *LinkExtractor) PagesExtracted() uint64 {
	return atomic.LoadUint64(&le.pagesExtracted)
}

func (le *LinkExtractor) LinksAccepted() uint64 {
	return atomic.LoadUint64(&le.linksAccepted)
}
