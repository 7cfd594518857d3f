package domain

import (
	"sort"
	"strings"
)

type Category string

const (
	// CategoryAll is the sentinel meaning "no category filter".
	CategoryAll         Category = "all"
	CategoryTires       Category = "tires"
	CategoryWheels      Category = "wheels"
	CategoryAccessories Category = "accessories"
)

type SortMode string

const (
	SortDefault   SortMode = "default"
	SortPriceAsc  SortMode = "priceAsc"
	SortPriceDesc SortMode = "priceDesc"
	SortNewest    SortMode = "newest"
)

// Product is a single catalog record. IDs are unique across the catalog and
// are the only key consumers use for lookups and cart merging.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Images      []string `json:"images"`
	IsNew       bool     `json:"isNew"`
}

// DeriveView computes the exact product sequence to display for the given
// view parameters. The stages apply in a fixed order: category filter, then
// name search, then the sort mode. SortNewest is a filter, not a reorder, and
// runs last. Unrecognized categories match nothing; unrecognized sort modes
// behave like SortDefault. The function is pure: products is never mutated.
func DeriveView(products []Product, category Category, search string, mode SortMode) []Product {
	result := make([]Product, len(products))
	copy(result, products)

	if category != "" && category != CategoryAll {
		result = keep(result, func(p Product) bool { return p.Category == category })
	}

	if search != "" {
		term := strings.ToLower(search)
		result = keep(result, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), term)
		})
	}

	switch mode {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortNewest:
		result = keep(result, func(p Product) bool { return p.IsNew })
	}

	return result
}

func keep(products []Product, pred func(Product) bool) []Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
