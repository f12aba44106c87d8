//go:generate moq -out internal/mocks/fetcher_extractor_moq.go -pkg mocks . FetcherExtractor

// Package pipeline wires the fetch and extraction stages into a crawl.
//
//	frontier -> urls -> CrawlerPool -> pages -> LinkExtractor -> frontier
//
// Nothing signals that a crawl is complete. Both stages give up when a
// receive produces nothing within the configured timeout and stop the other
// stage through a shared context. The same timeout is the deadline of every
// fetch, so a server slower than the timeout can end the crawl early. Strict
// mode only lets an idle stage stop the crawl once no queued url is still
// being fetched or extracted.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"subdomainCrawler/domain/adapters/FIFOqueue"
	"subdomainCrawler/domain/adapters/sameDomainFilter"
	"subdomainCrawler/domain/crawlerPool"
	storeHook "subdomainCrawler/domain/hooks/storeCrawlJob"
	"subdomainCrawler/domain/linkExtractor"
	"subdomainCrawler/domain/models"
	"subdomainCrawler/domain/pending"
	"subdomainCrawler/domain/store"
	"subdomainCrawler/domain/urlNormalizer"
)

var ErrInvalidConfig = errors.New("invalid pipeline config")

type (
	// FetcherExtractor retrieves pages and scans them for hrefs.
	FetcherExtractor interface {
		Fetch(ctx context.Context, url *url.URL) (models.Response, error)
		Extract(contents string) []string
	}
)

type Config struct {
	Concurrency       int           // Fetches allowed in flight.
	Timeout           time.Duration // Fetch deadline and idle threshold.
	QueueSize         int           // Capacity of the url and page channels.
	Strict            bool          // Only stop when no work is in flight.
	RequestsPerSecond float64       // Zero means unpaced.
	SkipExtensions    []string      // Link paths ending in these are not crawled.
}

func DefaultConfig() Config {
	return Config{
		Concurrency:    6,
		Timeout:        5 * time.Second,
		QueueSize:      64,
		SkipExtensions: sameDomainFilter.DefaultSkippedExtensions,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Concurrency < 1:
		return fmt.Errorf("%w: concurrency must be positive, got %d", ErrInvalidConfig, c.Concurrency)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	case c.QueueSize < 1:
		return fmt.Errorf("%w: queue size must be positive, got %d", ErrInvalidConfig, c.QueueSize)
	case c.RequestsPerSecond < 0:
		return fmt.Errorf("%w: requests per second cannot be negative, got %g", ErrInvalidConfig, c.RequestsPerSecond)
	}
	return nil
}

type Pipeline struct {
	logger zerolog.Logger
	cfg    Config

	fetcherExtractor FetcherExtractor

	hooks []linkExtractor.PageHook // Called for every extracted page.
}

func New(logger zerolog.Logger, cfg Config, fetcherExtractor FetcherExtractor, hooks ...linkExtractor.PageHook) *Pipeline {
	return &Pipeline{
		logger:           logger,
		cfg:              cfg,
		fetcherExtractor: fetcherExtractor,
		hooks:            hooks,
	}
}

// Run crawls every page reachable from seed on the seed's host.
// Failed fetches do not fail the crawl; an error is only returned for an invalid config or seed.
func (p *Pipeline) Run(ctx context.Context, seed models.CrawlTarget) (models.Summary, error) {
	start := time.Now()

	if err := p.cfg.Validate(); err != nil {
		return models.Summary{}, err
	}
	seedURL, err := urlNormalizer.Normalize(seed.URL)
	if err != nil {
		return models.Summary{}, fmt.Errorf("seed: %w", err)
	}
	seed = models.NewCrawlTarget(seedURL)

	ctx, stop := context.WithCancel(ctx)
	defer stop()

	urls := make(chan *url.URL, p.cfg.QueueSize)
	pages := make(chan models.FetchedPage, p.cfg.QueueSize)

	visited := store.NewUrlStore()
	visited.Visit(urlNormalizer.Key(seedURL))

	tracker := pending.New(p.cfg.Strict)
	frontier := FIFOqueue.New()
	tracker.Add(1)
	if err := frontier.Push(seedURL); err != nil {
		return models.Summary{}, fmt.Errorf("queueing seed: %w", err)
	}

	var fetchesFailed uint64
	pool := crawlerPool.New(
		p.logger.With().Str("stage", "fetcher").Logger(),
		int64(p.cfg.Concurrency),
		p.cfg.Timeout,
		p.fetcherExtractor,
		tracker,
		p.limiter(),
		func(ctx context.Context, page models.FetchedPage) {
			if !page.OK {
				atomic.AddUint64(&fetchesFailed, 1)
			}
		},
	)

	crawled := store.NewUrlStore()
	hooks := append([]linkExtractor.PageHook{storeHook.New(p.logger, crawled).Store}, p.hooks...)
	extractor := linkExtractor.New(
		p.logger.With().Str("stage", "extractor").Logger(),
		p.fetcherExtractor,
		visited,
		[]linkExtractor.LinkFilter{
			sameDomainFilter.New(seed.Host),
			sameDomainFilter.NewExtensionFilter(p.cfg.SkipExtensions...),
		},
		frontier,
		tracker,
		p.cfg.Timeout,
		p.cfg.Concurrency,
		hooks...,
	)

	p.logger.Info().
		Str("seed", seedURL.String()).
		Int("concurrency", p.cfg.Concurrency).
		Dur("timeout", p.cfg.Timeout).
		Bool("strict", p.cfg.Strict).
		Msg("crawl started")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return feed(gctx, frontier, urls)
	})
	g.Go(func() error {
		pool.Start(gctx, stop, urls, pages)
		return nil
	})
	g.Go(func() error {
		extractor.Run(gctx, stop, pages)
		return nil
	})
	err = g.Wait()

	summary := models.Summary{
		PagesFetched:  extractor.PagesExtracted(),
		FetchesFailed: atomic.LoadUint64(&fetchesFailed),
		LinksAccepted: extractor.LinksAccepted(),
		URLsVisited:   visited.Len(),
		PeakInFlight:  pool.PeakCrawlers(),
		Duration:      time.Since(start),
	}

	p.logger.Info().
		Uint64("pages", summary.PagesFetched).
		Uint64("failed", summary.FetchesFailed).
		Int("crawled", crawled.Len()).
		Int("visited", summary.URLsVisited).
		Dur("took", summary.Duration).
		Msg("crawl finished")

	return summary, err
}

func (p *Pipeline) limiter() *rate.Limiter {
	if p.cfg.RequestsPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(p.cfg.RequestsPerSecond), p.cfg.Concurrency)
}

// feed moves urls from the unbounded frontier into the bounded url channel.
// The extraction stage therefore never blocks on the fetch stage.
func feed(ctx context.Context, frontier *FIFOqueue.FIFOQueue, urls chan<- *url.URL) error {
	for {
		v, err := frontier.Pop()
		if errors.Is(err, FIFOqueue.ErrEmpty) {
			select {
			case <-ctx.Done():
				return nil
			case <-frontier.Ready():
				continue
			}
		}

		u, ok := v.(*url.URL)
		if !ok {
			return fmt.Errorf("frontier holds %T, want *url.URL", v)
		}

		select {
		case urls <- u:
		case <-ctx.Done():
			return nil
		}
	}
}
