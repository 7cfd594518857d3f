package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/forsage-shop/storefront/internal/admin/application"
	admindomain "github.com/forsage-shop/storefront/internal/admin/domain"
	catalog "github.com/forsage-shop/storefront/internal/catalog/domain"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("admin-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/login", h.login)

	r.Group(func(r chi.Router) {
		r.Use(h.requireToken)
		r.Post("/logout", h.logout)
		r.Get("/products", h.listProducts)
		r.Post("/products", h.addProduct)
		r.Patch("/products/{id}", h.editProduct)
		r.Delete("/products/{id}", h.removeProduct)
		r.Post("/reset", h.resetDraft)
		r.Get("/export", h.export)
	})

	return r
}

func (h *Handler) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.service.Authorized(bearerToken(r)) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

type loginReq struct {
	PIN string `json:"pin"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AdminLogin")
	defer span.End()

	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	token, ok := h.service.VerifyPIN(ctx, req.PIN)
	if !ok {
		http.Error(w, "wrong pin", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(bearerToken(r))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "AdminListProducts")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.service.Products())
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "AdminAddProduct")
	defer span.End()

	p := h.service.AddProduct()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// editReq carries one optional value per editable field; only fields present
// in the body become edit operations.
type editReq struct {
	ID          *string  `json:"id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Images      *string  `json:"images"`
	IsNew       *bool    `json:"isNew"`
}

func (req editReq) edits() []admindomain.Edit {
	var edits []admindomain.Edit
	if req.ID != nil {
		edits = append(edits, admindomain.SetID(*req.ID))
	}
	if req.Name != nil {
		edits = append(edits, admindomain.SetName(*req.Name))
	}
	if req.Description != nil {
		edits = append(edits, admindomain.SetDescription(*req.Description))
	}
	if req.Price != nil {
		edits = append(edits, admindomain.SetPrice(*req.Price))
	}
	if req.Category != nil {
		edits = append(edits, admindomain.SetCategory(catalog.Category(*req.Category)))
	}
	if req.Images != nil {
		edits = append(edits, admindomain.ParseImages(*req.Images))
	}
	if req.IsNew != nil {
		edits = append(edits, admindomain.SetNew(*req.IsNew))
	}
	return edits
}

func (h *Handler) editProduct(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "AdminEditProduct")
	defer span.End()

	var req editReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if !h.service.EditProduct(chi.URLParam(r, "id"), req.edits()...) {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeProduct(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "AdminRemoveProduct")
	defer span.End()

	h.service.RemoveProduct(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resetDraft(w http.ResponseWriter, r *http.Request) {
	h.service.ResetDraft()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "AdminExport")
	defer span.End()

	out, err := h.service.ExportJSON()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(out))
}
