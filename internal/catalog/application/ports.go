package application

import (
	"context"

	"github.com/forsage-shop/storefront/internal/catalog/domain"
)

// Source supplies the catalog once at startup. The service never writes back.
type Source interface {
	Load(ctx context.Context) ([]domain.Product, error)
}
