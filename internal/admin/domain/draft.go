package domain

import (
	"encoding/json"
	"strconv"
	"strings"

	catalog "github.com/forsage-shop/storefront/internal/catalog/domain"
)

// Edit is one typed change to a single product field. The set is closed: only
// the variants below exist, so drafts never touch fields by name.
type Edit interface {
	apply(p *catalog.Product)
}

type (
	SetID          string
	SetName        string
	SetDescription string
	SetPrice       float64
	SetCategory    catalog.Category
	SetImages      []string
	SetNew         bool
)

func (e SetID) apply(p *catalog.Product)          { p.ID = string(e) }
func (e SetName) apply(p *catalog.Product)        { p.Name = string(e) }
func (e SetDescription) apply(p *catalog.Product) { p.Description = string(e) }
func (e SetPrice) apply(p *catalog.Product)       { p.Price = float64(e) }
func (e SetCategory) apply(p *catalog.Product)    { p.Category = catalog.Category(e) }
func (e SetImages) apply(p *catalog.Product)      { p.Images = []string(e) }
func (e SetNew) apply(p *catalog.Product)         { p.IsNew = bool(e) }

// ParseImages splits a comma-separated image list the way the admin screen
// accepts it, dropping empty entries.
func ParseImages(raw string) SetImages {
	parts := strings.Split(raw, ",")
	images := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			images = append(images, trimmed)
		}
	}
	return SetImages(images)
}

// Draft is an editable copy of the catalog. It never feeds back into the live
// catalog serving the cart; exports are pasted into the data file by hand.
// Like the cart, it is a value type with whole-state transitions.
type Draft struct {
	Products []catalog.Product
}

func NewDraft(live []catalog.Product) Draft {
	products := make([]catalog.Product, len(live))
	copy(products, live)
	return Draft{Products: products}
}

// Apply runs the edits against the product with the given id, in order.
// Unknown ids leave the draft unchanged.
func (d Draft) Apply(id string, edits ...Edit) (Draft, bool) {
	products := d.copyProducts()
	for i := range products {
		if products[i].ID != id {
			continue
		}
		for _, e := range edits {
			e.apply(&products[i])
		}
		return Draft{Products: products}, true
	}
	return d, false
}

// Add prepends a template product with the next free id.
func (d Draft) Add() (Draft, catalog.Product) {
	p := catalog.Product{
		ID:          d.NextID(),
		Name:        "New product",
		Description: "Description...",
		Price:       100,
		Category:    catalog.CategoryAccessories,
		Images:      []string{"https://picsum.photos/500/500"},
		IsNew:       true,
	}
	products := make([]catalog.Product, 0, len(d.Products)+1)
	products = append(products, p)
	products = append(products, d.Products...)
	return Draft{Products: products}, p
}

// Remove deletes the product with the given id. Unknown ids are a no-op.
func (d Draft) Remove(id string) Draft {
	products := make([]catalog.Product, 0, len(d.Products))
	for _, p := range d.Products {
		if p.ID != id {
			products = append(products, p)
		}
	}
	return Draft{Products: products}
}

// NextID allocates "A<n+1>" where n is the highest numeric suffix among
// existing ids; non-numeric ids count as zero.
func (d Draft) NextID() string {
	max := 0
	for _, p := range d.Products {
		if n := numericSuffix(p.ID); n > max {
			max = n
		}
	}
	return "A" + strconv.Itoa(max+1)
}

// ExportJSON renders the draft as the formatted document the static data file
// expects. No schema validation happens here.
func (d Draft) ExportJSON() (string, error) {
	data, err := json.MarshalIndent(d.Products, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (d Draft) copyProducts() []catalog.Product {
	products := make([]catalog.Product, len(d.Products))
	copy(products, d.Products)
	return products
}

func numericSuffix(id string) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, id)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
