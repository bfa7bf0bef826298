package cart

import (
	"testing"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shoe = models.Product{ID: "1", Name: "Walkin Air Pro", Price: 189.99, Sizes: []int{8, 9, 10}}

func TestAddMergesSameProductAndSize(t *testing.T) {
	c := &Cart{}
	c.Add(shoe, 9, 1)
	c.Add(shoe, 9, 2)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, 3, c.Count())
}

func TestAddKeepsDistinctSizesSeparate(t *testing.T) {
	c := &Cart{}
	c.Add(shoe, 9, 1)
	c.Add(shoe, 10, 1)

	require.Len(t, c.Items, 2)
	assert.Equal(t, 9, c.Items[0].SelectedSize)
	assert.Equal(t, 10, c.Items[1].SelectedSize)
}

func TestAddClampsQuantity(t *testing.T) {
	c := &Cart{}
	c.Add(shoe, 9, 0)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestRemove(t *testing.T) {
	c := &Cart{}
	c.Add(shoe, 9, 1)
	c.Add(shoe, 10, 1)

	c.Remove("1", 9)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 10, c.Items[0].SelectedSize)

	// removing an absent line is harmless
	c.Remove("1", 9)
	assert.Len(t, c.Items, 1)
}

func TestSetQuantity(t *testing.T) {
	c := &Cart{}
	c.Add(shoe, 9, 1)

	c.SetQuantity("1", 9, 4)
	assert.Equal(t, 4, c.Items[0].Quantity)

	c.SetQuantity("1", 9, 0)
	assert.Empty(t, c.Items)
}

func TestSubtotalRoundsToCents(t *testing.T) {
	c := &Cart{}
	c.Add(shoe, 9, 2) // 379.98
	c.Add(models.Product{ID: "2", Name: "Urban Drifter", Price: 129.50}, 8, 1)

	assert.Equal(t, 509.48, c.Subtotal())
}

func TestEmptyCart(t *testing.T) {
	c := &Cart{}
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 0.0, c.Subtotal())
	c.Clear()
	assert.Empty(t, c.Items)
}
