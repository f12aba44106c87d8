package models

import (
	"errors"
	"net/url"
	"time"
)

var (
	// ErrStatus is returned when a fetch completes with a non-2xx status.
	ErrStatus = errors.New("unexpected status code")
	// ErrContentType is returned when a fetch returns something that is not text.
	ErrContentType = errors.New("unsupported content type")
	// ErrRedirect is returned when a fetch ends up on another host.
	ErrRedirect = errors.New("redirected off host")
)

// CrawlTarget is the seed of a crawl and the host every discovered link must match.
type CrawlTarget struct {
	URL  *url.URL
	Host string // exact host links are compared against, e.g. "monzo.com"
}

// NewCrawlTarget builds a target from an already validated seed.
func NewCrawlTarget(seed *url.URL) CrawlTarget {
	return CrawlTarget{URL: seed, Host: seed.Host}
}

// Response is what a fetch hands back to the crawler.
type Response struct {
	URL         *url.URL // where the response came from after redirects, nil if unknown
	StatusCode  int
	ContentType string
	Body        string
}

// FetchedPage is the outcome of fetching a single url.
type FetchedPage struct {
	URL  *url.URL
	Body string
	OK   bool  // zero value is false
	Err  error // why the fetch failed, nil when OK
}

// PageLinks groups the links accepted from one page.
type PageLinks struct {
	URL   *url.URL
	Links []*url.URL // in the order they were extracted
}

// Summary describes a finished crawl.
type Summary struct {
	PagesFetched  uint64
	FetchesFailed uint64
	LinksAccepted uint64
	URLsVisited   int
	PeakInFlight  int64
	Duration      time.Duration
}
