package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	cartapp "github.com/forsage-shop/storefront/internal/cart/application"
	"github.com/forsage-shop/storefront/internal/checkout/domain"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrMissingFields = errors.New("full name, phone and address are required")
)

const (
	// The cart is cleared this long after submission, whether or not the
	// relay accepted the order. Matches the original storefront's behavior.
	defaultClearDelay = time.Second

	relayTimeout = 10 * time.Second
)

type Request struct {
	FullName string
	Phone    string
	Address  string
}

// Service turns a session's cart into an order submission. The relay post and
// the event publish are both fire-and-forget: Submit returns as soon as the
// order is accepted locally, and the cart clears after a fixed delay
// regardless of what the relay does with it.
type Service struct {
	log        *slog.Logger
	carts      *cartapp.Store
	relay      Relay
	events     EventPublisher
	currency   string
	clearDelay time.Duration
}

func NewService(log *slog.Logger, carts *cartapp.Store, relay Relay, events EventPublisher, currency string) *Service {
	return &Service{
		log:        log,
		carts:      carts,
		relay:      relay,
		events:     events,
		currency:   currency,
		clearDelay: defaultClearDelay,
	}
}

// WithClearDelay overrides the post-submission cart clear delay.
func (s *Service) WithClearDelay(d time.Duration) *Service {
	s.clearDelay = d
	return s
}

func (s *Service) Submit(ctx context.Context, sessionID string, req Request) (domain.Order, error) {
	if req.FullName == "" || req.Phone == "" || req.Address == "" {
		return domain.Order{}, ErrMissingFields
	}

	cart := s.carts.Get(sessionID)
	if cart.IsEmpty() {
		return domain.Order{}, ErrEmptyCart
	}

	order := domain.NewOrder(uuid.NewString(), req.FullName, req.Phone, req.Address, cart)
	sub := Submission{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Address:      req.Address,
		OrderSummary: domain.Summary(cart, s.currency),
	}

	go s.deliver(order, sub)

	time.AfterFunc(s.clearDelay, func() {
		s.carts.Clear(sessionID)
		s.log.Info("cart cleared after checkout", "session", sessionID, "order_id", order.ID)
	})

	s.log.Info("order submitted", "order_id", order.ID, "lines", len(order.Lines), "total", order.Total)
	return order, nil
}

func (s *Service) deliver(order domain.Order, sub Submission) {
	ctx, cancel := context.WithTimeout(context.Background(), relayTimeout)
	defer cancel()

	if err := s.relay.Send(ctx, sub); err != nil {
		// Best effort only: the shopper already got their acknowledgment.
		s.log.Error("form relay send failed", "order_id", order.ID, "err", err)
	}

	if s.events == nil {
		return
	}
	if err := s.events.OrderSubmitted(ctx, order); err != nil {
		s.log.Error("order event publish failed", "order_id", order.ID, "err", err)
	}
}
