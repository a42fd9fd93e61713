package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/infrastructure/parser"
	"github.com/yourusername/laptop-storefront/internal/infrastructure/storage"
)

type fakeFetcher struct {
	mu    sync.Mutex
	pages map[string]string
	errs  map[string]error
	calls []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{pages: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, url)
	if err, ok := f.errs[url]; ok {
		return nil, err
	}
	page, ok := f.pages[url]
	if !ok {
		return nil, errors.New("unexpected status from sheet source: 404 Not Found")
	}
	return []byte(page), nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.ImportEvent
	err    error
}

func (p *recordingPublisher) PublishImport(ctx context.Context, event entity.ImportEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) triggers() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Trigger)
	}
	return out
}

type catalogFixture struct {
	catalog   CatalogUseCase
	deps      CatalogDeps
	fetcher   *fakeFetcher
	publisher *recordingPublisher
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	fetcher := newFakeFetcher()
	publisher := &recordingPublisher{}
	deps := CatalogDeps{
		Products:  storage.NewMemoryProductRepository(),
		News:      storage.NewMemoryNewsRepository(),
		Parser:    parser.NewSheetParser(parser.QuoteRFC4180),
		Mapper:    parser.NewRecordMapper(parser.MapperOptions{Now: func() time.Time { return time.Date(2026, 2, 21, 0, 0, 0, 0, time.UTC) }}),
		Fetcher:   fetcher,
		Publisher: publisher,
		SeedProducts: func() []entity.Product {
			return []entity.Product{
				{ID: "1", Name: "MacBook Air M2", Price: "26.990.000₫", Category: "Ultrabook", Brand: "Apple"},
				{ID: "2", Name: "Dell XPS 13 Plus", Price: "45.000.000₫", Category: "Business", Brand: "Dell"},
			}
		},
		SeedNews: func() []entity.NewsItem {
			return []entity.NewsItem{{ID: "new-1", Title: "AUZ"}}
		},
	}

	return &catalogFixture{
		catalog:   NewCatalogUseCase(deps),
		deps:      deps,
		fetcher:   fetcher,
		publisher: publisher,
	}
}

func names(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}
