package storeHook

import (
	"context"

	"github.com/rs/zerolog"

	"subdomainCrawler/domain/models"
)

type Store interface {
	Add(url string) error
}

// StoreHook records every page that was fetched and extracted.
type StoreHook struct {
	logger zerolog.Logger
	store  Store
}

func New(logger zerolog.Logger, store Store) *StoreHook {
	return &StoreHook{
		logger: logger,
		store:  store,
	}
}

func (h *StoreHook) Store(ctx context.Context, page models.PageLinks) {
	if err := h.store.Add(page.URL.String()); err != nil {
		h.logger.Error().Err(err).Str("url", page.URL.String()).Msg("storing crawled page")
	}
}
