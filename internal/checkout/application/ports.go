package application

import (
	"context"

	"github.com/forsage-shop/storefront/internal/checkout/domain"
)

// Submission is the structured payload handed to the third-party form relay.
type Submission struct {
	FullName     string
	Phone        string
	Address      string
	OrderSummary string
}

// Relay forwards a submission to the external form-relay endpoint.
type Relay interface {
	Send(ctx context.Context, sub Submission) error
}

// EventPublisher announces submitted orders to the event stream. Optional:
// the service skips publishing when none is configured.
type EventPublisher interface {
	OrderSubmitted(ctx context.Context, o domain.Order) error
}
