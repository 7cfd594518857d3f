package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/forsage-shop/storefront/internal/catalog/application"
	"github.com/forsage-shop/storefront/internal/catalog/domain"
)

type Handler struct {
	log     *slog.Logger
	catalog *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, catalog *application.Service) *Handler {
	return &Handler{
		log:     log,
		catalog: catalog,
		tracer:  otel.Tracer("catalog-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.listProducts)
	r.Get("/{id}", h.getProduct)

	return r
}

type listProductsResp struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "ListProducts")
	defer span.End()

	q := r.URL.Query()
	category := domain.Category(q.Get("category"))
	if category == "" {
		category = domain.CategoryAll
	}
	mode := domain.SortMode(q.Get("sort"))
	if mode == "" {
		mode = domain.SortDefault
	}

	products := h.catalog.View(category, q.Get("q"), mode)
	if products == nil {
		products = []domain.Product{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listProductsResp{Products: products, Count: len(products)})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "GetProduct")
	defer span.End()

	p, ok := h.catalog.Get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}
