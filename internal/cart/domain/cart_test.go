package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/forsage-shop/storefront/internal/catalog/domain"
)

var (
	tire  = catalog.Product{ID: "A1", Name: "Winter Tire", Price: 100, Category: catalog.CategoryTires}
	wheel = catalog.Product{ID: "A2", Name: "Alloy Wheel", Price: 50, Category: catalog.CategoryWheels}
)

func TestAddMergesByID(t *testing.T) {
	c := Cart{}.Add(tire, 2).Add(tire, 3)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, "A1", c.Lines[0].ID)
	assert.Equal(t, 5, c.Lines[0].Quantity)
}

func TestAddKeepsFirstSnapshot(t *testing.T) {
	repriced := tire
	repriced.Price = 999

	c := Cart{}.Add(tire, 1).Add(repriced, 1)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 100.0, c.Lines[0].Price)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	c := Cart{}.Add(tire, 1).Add(wheel, 1).Add(tire, 1)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, "A1", c.Lines[0].ID)
	assert.Equal(t, "A2", c.Lines[1].ID)
}

func TestAddNonPositiveQuantityIsNoOp(t *testing.T) {
	c := Cart{}.Add(tire, 0)
	assert.True(t, c.IsEmpty())

	c = Cart{}.Add(tire, -3)
	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantityClampsInsteadOfDeleting(t *testing.T) {
	c := Cart{}.Add(tire, 1).UpdateQuantity("A1", -5)

	// Decrement to zero or below never removes the line; only Remove does.
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)

	c = c.UpdateQuantity("A1", -1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestUpdateQuantityAppliesDelta(t *testing.T) {
	c := Cart{}.Add(tire, 2).UpdateQuantity("A1", 3).UpdateQuantity("A1", -1)
	assert.Equal(t, 4, c.Lines[0].Quantity)
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	c := Cart{}.Add(tire, 2)
	assert.Equal(t, c, c.UpdateQuantity("A9", 1))
}

func TestRemoveIsIdempotent(t *testing.T) {
	c := Cart{}.Add(tire, 1).Remove("A1")
	assert.True(t, c.IsEmpty())

	assert.True(t, c.Remove("A1").IsEmpty())
}

func TestRemoveAlwaysPermitted(t *testing.T) {
	c := Cart{}.Add(tire, 7).Add(wheel, 1).Remove("A1")

	require.Len(t, c.Lines, 1)
	assert.Equal(t, "A2", c.Lines[0].ID)
}

func TestTotalAndItemCount(t *testing.T) {
	c := Cart{}.Add(tire, 2).Add(wheel, 3)

	assert.Equal(t, 350.0, c.Total())
	assert.Equal(t, 5, c.ItemCount())
}

func TestTotalWithFractionalPrices(t *testing.T) {
	caps := catalog.Product{ID: "A3", Name: "Valve Caps", Price: 49.5}
	c := Cart{}.Add(caps, 2)
	assert.InDelta(t, 99.0, c.Total(), 1e-9)
}

func TestClear(t *testing.T) {
	c := Cart{}.Add(tire, 2).Add(wheel, 3).Clear()

	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Total())
	assert.Zero(t, c.ItemCount())

	assert.True(t, c.Clear().IsEmpty())
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	base := Cart{}.Add(tire, 2)

	_ = base.Add(wheel, 1)
	_ = base.UpdateQuantity("A1", 5)
	_ = base.Remove("A1")
	_ = base.Clear()

	require.Len(t, base.Lines, 1)
	assert.Equal(t, 2, base.Lines[0].Quantity)
}
