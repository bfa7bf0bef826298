// Package cart is the in-memory shopping cart: an ordered list of product
// snapshots keyed by (product id, selected size). It lives in the visitor's
// cookie session and never touches the store.
package cart

import (
	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
	"github.com/shopspring/decimal"
)

type Cart struct {
	Items []models.CartItem
}

// Add puts a product snapshot in the cart. Adding the same product and size
// again merges into the existing line's quantity.
func (c *Cart) Add(product models.Product, size, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ID == product.ID && c.Items[i].SelectedSize == size {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, models.CartItem{
		Product:      product,
		SelectedSize: size,
		Quantity:     quantity,
	})
}

// Remove drops the line matching product id and size, if present.
func (c *Cart) Remove(productID string, size int) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ID == productID && item.SelectedSize == size {
			continue
		}
		kept = append(kept, item)
	}
	c.Items = kept
}

// SetQuantity updates a line's quantity; zero or less removes the line.
func (c *Cart) SetQuantity(productID string, size, quantity int) {
	if quantity <= 0 {
		c.Remove(productID, size)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == productID && c.Items[i].SelectedSize == size {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Count is the total quantity across all lines.
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal is the pre-tax sum of price*quantity, rounded to cents.
func (c *Cart) Subtotal() float64 {
	sum := decimal.Zero
	for _, item := range c.Items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	f, _ := sum.Round(2).Float64()
	return f
}
