// Package pending counts units of crawl work that are still in flight.
//
// A unit starts when a url is queued for fetching and ends when the fetch
// fails or when the fetched page has been fully extracted. The counter
// decides whether a stage that has been idle for a whole timeout may stop
// the crawl.
package pending

import "sync/atomic"

type Counter struct {
	inFlight int64
	strict   bool
}

// New returns a counter. A non-strict counter always reports Settled, which
// makes an idle receive alone enough to end the crawl. A strict counter only
// settles once every queued url has been fully processed.
func New(strict bool) *Counter {
	return &Counter{strict: strict}
}

func (c *Counter) Add(n int) {
	atomic.AddInt64(&c.inFlight, int64(n))
}

func (c *Counter) Done() {
	atomic.AddInt64(&c.inFlight, -1)
}

func (c *Counter) Pending() int64 {
	return atomic.LoadInt64(&c.inFlight)
}

// Settled reports whether an idle stage may shut the crawl down.
func (c *Counter) Settled() bool {
	if !c.strict {
		return true
	}
	return c.Pending() <= 0
}
