package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/forsage-shop/storefront/internal/catalog/domain"
)

var ErrDuplicateID = errors.New("duplicate product id in catalog")

// Service holds the read-only catalog for the lifetime of the process and
// answers derived views over it. Load runs once during startup, before the
// HTTP server accepts traffic, so reads need no locking.
type Service struct {
	log      *slog.Logger
	products []domain.Product
}

func NewService(log *slog.Logger) *Service {
	return &Service{log: log}
}

func (s *Service) Load(ctx context.Context, src Source) error {
	products, err := src.Load(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, dup := seen[p.ID]; dup {
			return ErrDuplicateID
		}
		seen[p.ID] = struct{}{}
	}
	s.products = products
	s.log.Info("catalog loaded", "products", len(products))
	return nil
}

// Products returns a copy of the full catalog in its original order.
func (s *Service) Products() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Service) Get(id string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// View derives the display sequence for the given filters and sort mode.
func (s *Service) View(category domain.Category, search string, mode domain.SortMode) []domain.Product {
	return domain.DeriveView(s.products, category, search, mode)
}
