package domain

import (
	catalog "github.com/forsage-shop/storefront/internal/catalog/domain"
)

// Line is a snapshot of a product at the time it was added, plus a quantity.
// The snapshot never tracks later catalog changes.
type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Cart is an ordered collection of lines, at most one per product id, in
// first-insertion order. Cart is a value type: every transition returns a new
// value and leaves the receiver untouched, so the holder swaps whole states.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add merges by product id. An existing line keeps its original product
// snapshot and gains quantity; otherwise a new line is appended. A quantity
// below 1 leaves the cart unchanged.
func (c Cart) Add(p catalog.Product, quantity int) Cart {
	if quantity < 1 {
		return c
	}
	lines := c.copyLines()
	for i := range lines {
		if lines[i].ID == p.ID {
			lines[i].Quantity += quantity
			return Cart{Lines: lines}
		}
	}
	return Cart{Lines: append(lines, Line{Product: p, Quantity: quantity})}
}

// UpdateQuantity applies a signed delta to the line with the given id.
// A delta that would drive the quantity to zero or below is ignored: the line
// keeps its current quantity and is never removed here. Unknown ids are a
// no-op.
func (c Cart) UpdateQuantity(id string, delta int) Cart {
	lines := c.copyLines()
	for i := range lines {
		if lines[i].ID != id {
			continue
		}
		if next := lines[i].Quantity + delta; next > 0 {
			lines[i].Quantity = next
		}
		break
	}
	return Cart{Lines: lines}
}

// Remove deletes the line with the given id. Unknown ids are a no-op.
func (c Cart) Remove(id string) Cart {
	lines := make([]Line, 0, len(c.Lines))
	for _, l := range c.Lines {
		if l.ID != id {
			lines = append(lines, l)
		}
	}
	return Cart{Lines: lines}
}

// Clear empties the cart.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Total is the sum of price times quantity across all lines.
func (c Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities, distinct from the number of lines.
func (c Cart) ItemCount() int {
	var count int
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) copyLines() []Line {
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)
	return lines
}
