package httpapi

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/yourusername/laptop-storefront/internal/usecase"
)

// DefaultMaxUploadBytes import fayllari uchun chegara
const DefaultMaxUploadBytes = 5 << 20

// Handler storefront JSON API
type Handler struct {
	catalog   usecase.CatalogUseCase
	products  usecase.ProductUseCase
	settings  usecase.SettingsUseCase
	chat      usecase.ChatUseCase
	validate  *validator.Validate
	adminKey  string
	maxUpload int64
}

// Options Handler sozlamalari
type Options struct {
	// AdminKey bo'sh bo'lmasa o'zgartiruvchi endpointlar "Authorization: Bearer <key>" talab qiladi
	AdminKey       string
	MaxUploadBytes int64
}

// NewHandler yangi Handler yaratish
func NewHandler(
	catalog usecase.CatalogUseCase,
	products usecase.ProductUseCase,
	settings usecase.SettingsUseCase,
	chat usecase.ChatUseCase,
	opts Options,
) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	return &Handler{
		catalog:   catalog,
		products:  products,
		settings:  settings,
		chat:      chat,
		validate:  validator.New(),
		adminKey:  opts.AdminKey,
		maxUpload: opts.MaxUploadBytes,
	}
}

// Router barcha marshrutlar o'rnatilgan mux.Router
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequests)
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes marshrutlarni ro'yxatdan o'tkazish
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products", h.listProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/facets", h.productFacets).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.getProduct).Methods(http.MethodGet)
	api.HandleFunc("/news", h.listNews).Methods(http.MethodGet)
	api.HandleFunc("/news/{id}", h.getNews).Methods(http.MethodGet)
	api.HandleFunc("/chat", h.postChat).Methods(http.MethodPost)
	api.HandleFunc("/settings", h.getSettings).Methods(http.MethodGet)

	api.Handle("/import/products", h.requireAdminKey(http.HandlerFunc(h.importProducts))).Methods(http.MethodPost)
	api.Handle("/import/news", h.requireAdminKey(http.HandlerFunc(h.importNews))).Methods(http.MethodPost)
	api.Handle("/settings", h.requireAdminKey(http.HandlerFunc(h.putSettings))).Methods(http.MethodPut)
	api.Handle("/reload", h.requireAdminKey(http.HandlerFunc(h.reload))).Methods(http.MethodPost)
}

func (h *Handler) requireAdminKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.adminKey != "" {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(token), []byte(h.adminKey)) != 1 {
				writeError(w, http.StatusUnauthorized, "admin key required")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("🌐 %s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}
