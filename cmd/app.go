package main

import (
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"subdomainCrawler/domain/adapters/jobPrinter"
	"subdomainCrawler/domain/adapters/urlFetcherExtractor"
	"subdomainCrawler/domain/models"
	"subdomainCrawler/domain/pipeline"
)

type App struct {
	seed     models.CrawlTarget
	pipeline *pipeline.Pipeline
}

// NewApp builds the crawl. Pages and their links are printed to out.
func NewApp(cfg AppConfig, logger zerolog.Logger, out io.Writer) *App {
	client := &http.Client{
		Timeout:       cfg.Pipeline.Timeout,
		CheckRedirect: urlFetcherExtractor.SameHostRedirects,
	}
	fetcherExtractor := urlFetcherExtractor.NewHTTPFetcherExtractor(client, cfg.UserAgent)

	return &App{
		seed:     models.NewCrawlTarget(cfg.SeedURL),
		pipeline: pipeline.New(logger, cfg.Pipeline, fetcherExtractor, jobPrinter.New(out).Print),
	}
}

func (a *App) Run(ctx context.Context) (models.Summary, error) {
	return a.pipeline.Run(ctx, a.seed)
}
