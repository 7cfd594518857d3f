package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/forsage-shop/storefront/internal/checkout/application"
)

const sessionHeader = "X-Session-ID"

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("checkout-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.checkout)

	return r
}

type checkoutReq struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type checkoutResp struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Checkout")
	defer span.End()

	sessionID := r.Header.Get(sessionHeader)
	if sessionID == "" {
		http.Error(w, "missing session", http.StatusBadRequest)
		return
	}

	var req checkoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	order, err := h.service.Submit(ctx, sessionID, application.Request{
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	switch {
	case errors.Is(err, application.ErrMissingFields):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, application.ErrEmptyCart):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(checkoutResp{OrderID: order.ID, Total: order.Total})
}
