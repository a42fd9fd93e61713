package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
	"github.com/yourusername/laptop-storefront/internal/infrastructure/parser"
	"github.com/yourusername/laptop-storefront/internal/usecase"
)

type productQuery struct {
	Query      string
	Brands     []string
	Categories []string
	MinPrice   *int64 `validate:"omitempty,gte=0"`
	MaxPrice   *int64 `validate:"omitempty,gte=0"`
	Sort       string `validate:"omitempty,oneof=none price_asc price_desc"`
}

type chatRequest struct {
	SessionID string `json:"session_id" validate:"required,max=128"`
	Message   string `json:"message" validate:"required,max=4000"`
}

type chatResponse struct {
	Text string `json:"text"`
}

type settingsRequest struct {
	ProductSheetURL string `json:"productSheetUrl" validate:"omitempty,max=2048"`
	NewsSheetURL    string `json:"newsSheetUrl" validate:"omitempty,max=2048"`
}

type settingsResponse struct {
	Settings entity.SheetConfig    `json:"settings"`
	Reload   *entity.ReloadSummary `json:"reload,omitempty"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q, err := parseProductQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid query: "+err.Error())
		return
	}

	sort := entity.SortOrder(q.Sort)
	if sort == "" {
		sort = entity.SortNone
	}
	products, err := h.products.Query(r.Context(), entity.ProductFilter{
		Query:      q.Query,
		Brands:     q.Brands,
		Categories: q.Categories,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		Sort:       sort,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// parseProductQuery brand/category takrorlanishi yoki vergul bilan berilishi mumkin
func parseProductQuery(r *http.Request) (productQuery, error) {
	values := r.URL.Query()
	q := productQuery{
		Query:      strings.TrimSpace(values.Get("q")),
		Brands:     listParam(values["brand"]),
		Categories: listParam(values["category"]),
		Sort:       values.Get("sort"),
	}

	for name, dst := range map[string]**int64{"min": &q.MinPrice, "max": &q.MaxPrice} {
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return q, fmt.Errorf("%s must be an integer", name)
		}
		*dst = &v
	}
	return q, nil
}

func listParam(raw []string) []string {
	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (h *Handler) productFacets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.products.Facets(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, facets)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetByID(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) listNews(w http.ResponseWriter, r *http.Request) {
	news, err := h.catalog.News(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, news)
}

func (h *Handler) getNews(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalog.NewsItem(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "news not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) importProducts(w http.ResponseWriter, r *http.Request) {
	h.importFile(w, r, h.catalog.ImportProducts)
}

func (h *Handler) importNews(w http.ResponseWriter, r *http.Request) {
	h.importFile(w, r, h.catalog.ImportNews)
}

// multipartOverhead fayldan tashqari boundary va sarlavhalar uchun zaxira
const multipartOverhead = 1 << 20

type importFunc func(ctx context.Context, data []byte, filename string) (entity.ImportReport, error)

func (h *Handler) importFile(w http.ResponseWriter, r *http.Request, importer importFunc) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.uploadTooLarge(w)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	if header.Size > h.maxUpload {
		h.uploadTooLarge(w)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	report, err := importer(r.Context(), data, header.Filename)
	switch {
	case errors.Is(err, parser.ErrMalformedInput), errors.Is(err, usecase.ErrNoRecords):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) uploadTooLarge(w http.ResponseWriter) {
	writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d bytes", h.maxUpload))
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settings.Resolve(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, settingsResponse{Settings: cfg})
}

func (h *Handler) putSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	summary, err := h.settings.Save(r.Context(), entity.SheetConfig{
		ProductSheetURL: req.ProductSheetURL,
		NewsSheetURL:    req.NewsSheetURL,
	})
	if errors.Is(err, usecase.ErrInvalidSheetURL) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	cfg, err := h.settings.Resolve(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, settingsResponse{Settings: cfg, Reload: &summary})
}

func (h *Handler) reload(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settings.Resolve(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.Refresh(r.Context(), cfg))
}

func (h *Handler) postChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	text, err := h.chat.Reply(r.Context(), req.SessionID, "", req.Message)
	if errors.Is(err, usecase.ErrChatUnavailable) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Text: text})
}
