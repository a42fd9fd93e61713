package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/infrastructure/events"
	"github.com/yourusername/laptop-storefront/internal/infrastructure/parser"
	"github.com/yourusername/laptop-storefront/internal/infrastructure/storage"
	"github.com/yourusername/laptop-storefront/internal/usecase"
)

const testAdminKey = "s3cret"

type stubFetcher struct {
	pages map[string]string
}

func (f *stubFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	page, ok := f.pages[url]
	if !ok {
		return nil, errors.New("unexpected status from sheet source: 404 Not Found")
	}
	return []byte(page), nil
}

type stubAI struct{}

func (stubAI) GenerateReply(ctx context.Context, message string, history []entity.Message, products []entity.Product) (string, error) {
	return "echo: " + message, nil
}

type apiFixture struct {
	server  *httptest.Server
	fetcher *stubFetcher
}

func newAPIFixture(t *testing.T, withChat bool) *apiFixture {
	t.Helper()
	ctx := context.Background()

	products := storage.NewMemoryProductRepository()
	fetcher := &stubFetcher{pages: map[string]string{}}
	catalog := usecase.NewCatalogUseCase(usecase.CatalogDeps{
		Products:  products,
		News:      storage.NewMemoryNewsRepository(),
		Parser:    parser.NewSheetParser(parser.QuoteRFC4180),
		Mapper:    parser.NewRecordMapper(parser.MapperOptions{Now: func() time.Time { return time.Date(2026, 2, 21, 0, 0, 0, 0, time.UTC) }}),
		Fetcher:   fetcher,
		Publisher: events.NewLogPublisher(),
		SeedProducts: func() []entity.Product {
			return []entity.Product{
				{ID: "1", Name: "MacBook Air M2", Price: "26.990.000₫", Category: "Ultrabook", Brand: "Apple"},
				{ID: "2", Name: "Dell XPS 13 Plus", Price: "45.000.000₫", Category: "Business", Brand: "Dell"},
				{ID: "3", Name: "Asus ROG Zephyrus G14", Price: "38.990.000₫", Category: "Gaming", Brand: "Asus"},
			}
		},
		SeedNews: func() []entity.NewsItem {
			return []entity.NewsItem{{ID: "new-1", Title: "AUZ"}}
		},
	})
	catalog.Bootstrap(ctx, entity.SheetConfig{})

	var ai usecase.ChatUseCase
	if withChat {
		ai = usecase.NewChatUseCase(stubAI{}, storage.NewMemoryChatRepository(20), products)
	} else {
		ai = usecase.NewChatUseCase(nil, storage.NewMemoryChatRepository(20), products)
	}

	h := NewHandler(
		catalog,
		usecase.NewProductUseCase(products),
		usecase.NewSettingsUseCase(storage.NewMemorySettingsRepository(), catalog, ""),
		ai,
		Options{AdminKey: testAdminKey, MaxUploadBytes: 1 << 10},
	)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)

	return &apiFixture{server: srv, fetcher: fetcher}
}

func (fx *apiFixture) do(t *testing.T, method, path string, body []byte, header http.Header) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, fx.server.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func adminHeader() http.Header {
	return http.Header{"Authorization": []string{"Bearer " + testAdminKey}}
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func productNames(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func multipartFile(t *testing.T, filename, content string) ([]byte, http.Header) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	header := adminHeader()
	header.Set("Content-Type", w.FormDataContentType())
	return buf.Bytes(), header
}

func TestHealth(t *testing.T) {
	fx := newAPIFixture(t, false)
	resp := fx.do(t, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", decode[map[string]string](t, resp)["status"])
}

func TestListProducts(t *testing.T) {
	fx := newAPIFixture(t, false)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"All", "", []string{"MacBook Air M2", "Dell XPS 13 Plus", "Asus ROG Zephyrus G14"}},
		{"Search", "?q=xps", []string{"Dell XPS 13 Plus"}},
		{"BrandsCommaSeparated", "?brand=Apple,Asus", []string{"MacBook Air M2", "Asus ROG Zephyrus G14"}},
		{"CategoryRepeated", "?category=Gaming&category=Business", []string{"Dell XPS 13 Plus", "Asus ROG Zephyrus G14"}},
		{"PriceRangeSorted", "?min=30000000&sort=price_desc", []string{"Dell XPS 13 Plus", "Asus ROG Zephyrus G14"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := fx.do(t, http.MethodGet, "/api/products"+tt.query, nil, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			require.Equal(t, tt.want, productNames(decode[[]entity.Product](t, resp)))
		})
	}

	t.Run("InvalidParams", func(t *testing.T) {
		for _, q := range []string{"?min=abc", "?max=1.5", "?sort=name", "?min=-1"} {
			resp := fx.do(t, http.MethodGet, "/api/products"+q, nil, nil)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
		}
	})
}

func TestProductFacetsAndLookup(t *testing.T) {
	fx := newAPIFixture(t, false)

	resp := fx.do(t, http.MethodGet, "/api/products/facets", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	facets := decode[entity.Facets](t, resp)
	require.ElementsMatch(t, []string{"Apple", "Dell", "Asus"}, facets.Brands)

	resp = fx.do(t, http.MethodGet, "/api/products/2", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Dell XPS 13 Plus", decode[entity.Product](t, resp).Name)

	resp = fx.do(t, http.MethodGet, "/api/products/missing", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListNews(t *testing.T) {
	fx := newAPIFixture(t, false)
	resp := fx.do(t, http.MethodGet, "/api/news", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, decode[[]entity.NewsItem](t, resp), 1)

	resp = fx.do(t, http.MethodGet, "/api/news/new-1", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "AUZ", decode[entity.NewsItem](t, resp).Title)

	resp = fx.do(t, http.MethodGet, "/api/news/missing", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestImportProducts(t *testing.T) {
	fx := newAPIFixture(t, false)

	t.Run("RequiresAdminKey", func(t *testing.T) {
		body, header := multipartFile(t, "p.csv", "Name,Price\nLenovo Legion,30.000.000₫\n")
		header.Del("Authorization")
		resp := fx.do(t, http.MethodPost, "/api/import/products", body, header)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Merges", func(t *testing.T) {
		body, header := multipartFile(t, "p.csv", "Name,Price\nmacbook air m2,25.000.000₫\nLenovo Legion,30.000.000₫\n")
		resp := fx.do(t, http.MethodPost, "/api/import/products", body, header)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		report := decode[entity.ImportReport](t, resp)
		require.Equal(t, "upload:p.csv", report.Source)
		require.Equal(t, 1, report.Added)
		require.Equal(t, 1, report.Replaced)
		require.Equal(t, 4, report.Total)
	})

	t.Run("HeaderOnly", func(t *testing.T) {
		body, header := multipartFile(t, "p.csv", "Name,Price\n")
		resp := fx.do(t, http.MethodPost, "/api/import/products", body, header)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Malformed", func(t *testing.T) {
		body, header := multipartFile(t, "p.csv", "Name,Price\n\xff\xfe,1\n")
		resp := fx.do(t, http.MethodPost, "/api/import/products", body, header)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("TooLarge", func(t *testing.T) {
		body, header := multipartFile(t, "p.csv", "Name,Price\n"+strings.Repeat("x", 2<<10)+",1\n")
		resp := fx.do(t, http.MethodPost, "/api/import/products", body, header)
		require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	})

	t.Run("FarPastLimit", func(t *testing.T) {
		body, header := multipartFile(t, "p.csv", "Name,Price\n"+strings.Repeat("x", 2<<20)+",1\n")
		resp := fx.do(t, http.MethodPost, "/api/import/products", body, header)
		require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	})

	products := fx.do(t, http.MethodGet, "/api/products", nil, nil)
	require.Len(t, decode[[]entity.Product](t, products), 4)
}

func TestImportNews(t *testing.T) {
	fx := newAPIFixture(t, false)
	body, header := multipartFile(t, "n.csv", "Title,Summary\nMùa tựu trường,Giảm giá\n")
	resp := fx.do(t, http.MethodPost, "/api/import/news", body, header)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 2, decode[entity.ImportReport](t, resp).Total)
}

func TestSettings(t *testing.T) {
	fx := newAPIFixture(t, false)
	const feed = "https://sheets.example.com/p.csv"
	fx.fetcher.pages[feed] = "Name,Price\nHP Victus,20.000.000₫\n"

	resp := fx.do(t, http.MethodPut, "/api/settings", []byte(`{"productSheetUrl":"`+feed+`"}`), nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = fx.do(t, http.MethodPut, "/api/settings", []byte(`{"productSheetUrl":"ftp://x"}`), adminHeader())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = fx.do(t, http.MethodPut, "/api/settings", []byte(`{"productSheetUrl":"  `+feed+`  "}`), adminHeader())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	saved := decode[settingsResponse](t, resp)
	require.Equal(t, feed, saved.Settings.ProductSheetURL)
	require.NotNil(t, saved.Reload)
	require.Equal(t, entity.LoadOK, saved.Reload.Products.Status)
	require.Equal(t, entity.LoadSkipped, saved.Reload.News.Status)

	resp = fx.do(t, http.MethodGet, "/api/settings", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, feed, decode[settingsResponse](t, resp).Settings.ProductSheetURL)

	resp = fx.do(t, http.MethodGet, "/api/products?q=victus", nil, nil)
	require.Equal(t, []string{"HP Victus"}, productNames(decode[[]entity.Product](t, resp)))

	delete(fx.fetcher.pages, feed)
	resp = fx.do(t, http.MethodPost, "/api/reload", nil, adminHeader())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[entity.ReloadSummary](t, resp)
	require.Equal(t, entity.LoadFailed, summary.Products.Status)

	resp = fx.do(t, http.MethodGet, "/api/products", nil, nil)
	require.Len(t, decode[[]entity.Product](t, resp), 4)
}

func TestChat(t *testing.T) {
	t.Run("Unavailable", func(t *testing.T) {
		fx := newAPIFixture(t, false)
		resp := fx.do(t, http.MethodPost, "/api/chat", []byte(`{"session_id":"s1","message":"hi"}`), nil)
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("Reply", func(t *testing.T) {
		fx := newAPIFixture(t, true)
		resp := fx.do(t, http.MethodPost, "/api/chat", []byte(`{"session_id":"s1","message":"hi"}`), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "echo: hi", decode[chatResponse](t, resp).Text)
	})

	t.Run("Validation", func(t *testing.T) {
		fx := newAPIFixture(t, true)
		resp := fx.do(t, http.MethodPost, "/api/chat", []byte(`{"message":"hi"}`), nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = fx.do(t, http.MethodPost, "/api/chat", []byte(`not json`), nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
