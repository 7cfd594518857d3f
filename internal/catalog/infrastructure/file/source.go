package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/forsage-shop/storefront/internal/catalog/domain"
)

// Source reads the catalog from a products.json document, the same data file
// the storefront is deployed with on static hosting.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Load(_ context.Context) ([]domain.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}
	return products, nil
}
