package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	cartapp "github.com/forsage-shop/storefront/internal/cart/application"
	cartdomain "github.com/forsage-shop/storefront/internal/cart/domain"
	catalogapp "github.com/forsage-shop/storefront/internal/catalog/application"
)

// SessionHeader carries the shopper's cart session id. A missing or blank
// header gets a fresh id, echoed back on every response.
const SessionHeader = "X-Session-ID"

type Handler struct {
	log     *slog.Logger
	carts   *cartapp.Store
	catalog *catalogapp.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, carts *cartapp.Store, catalog *catalogapp.Service) *Handler {
	return &Handler{
		log:     log,
		carts:   carts,
		catalog: catalog,
		tracer:  otel.Tracer("cart-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.getCart)
	r.Delete("/", h.clearCart)
	r.Post("/items", h.addItem)
	r.Patch("/items/{id}", h.updateItem)
	r.Delete("/items/{id}", h.removeItem)

	return r
}

type cartResp struct {
	Lines     []cartdomain.Line `json:"lines"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"itemCount"`
}

type addItemReq struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type updateItemReq struct {
	Delta int `json:"delta"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "GetCart")
	defer span.End()

	sessionID := h.session(w, r)
	h.writeCart(w, h.carts.Get(sessionID))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "AddCartItem")
	defer span.End()

	sessionID := h.session(w, r)

	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if req.Quantity < 1 {
		http.Error(w, "quantity must be at least 1", http.StatusBadRequest)
		return
	}

	p, ok := h.catalog.Get(req.ProductID)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	cart := h.carts.Add(sessionID, p, req.Quantity)
	h.log.Info("cart item added", "session", sessionID, "product", p.ID, "quantity", req.Quantity)
	h.writeCart(w, cart)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "UpdateCartItem")
	defer span.End()

	sessionID := h.session(w, r)

	var req updateItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	h.writeCart(w, h.carts.UpdateQuantity(sessionID, chi.URLParam(r, "id"), req.Delta))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "RemoveCartItem")
	defer span.End()

	sessionID := h.session(w, r)
	h.writeCart(w, h.carts.Remove(sessionID, chi.URLParam(r, "id")))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "ClearCart")
	defer span.End()

	sessionID := h.session(w, r)
	h.writeCart(w, h.carts.Clear(sessionID))
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) string {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	w.Header().Set(SessionHeader, sessionID)
	return sessionID
}

func (h *Handler) writeCart(w http.ResponseWriter, c cartdomain.Cart) {
	lines := c.Lines
	if lines == nil {
		lines = []cartdomain.Line{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cartResp{
		Lines:     lines,
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	})
}
