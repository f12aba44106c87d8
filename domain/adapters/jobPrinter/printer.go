package jobPrinter

import (
	"context"
	"io"
	"strings"
	"sync"

	"subdomainCrawler/domain/models"
)

// JobPrinter writes each page and its links as one uninterrupted block.
type JobPrinter struct {
	mu  sync.Mutex
	out io.Writer
}

func New(out io.Writer) *JobPrinter {
	return &JobPrinter{out: out}
}

func (p *JobPrinter) Print(_ context.Context, page models.PageLinks) {
	var b strings.Builder
	b.WriteString("Visited ")
	b.WriteString(page.URL.String())
	b.WriteByte('\n')
	for _, link := range page.Links {
		b.WriteString("  -> ")
		b.WriteString(link.String())
		b.WriteByte('\n')
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.out, b.String())
}
