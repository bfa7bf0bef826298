// Package checkout builds orders from cart contents and mirrors completed
// checkouts to the external order-sync sink.
package checkout

import (
	"crypto/rand"
	"strconv"
	"time"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
	"github.com/shopspring/decimal"
)

// TaxRate is applied on top of the cart subtotal at checkout.
var TaxRate = decimal.NewFromFloat(0.08)

// Total returns the tax-inclusive amount for a pre-tax subtotal, rounded
// to cents.
func Total(subtotal float64) float64 {
	total := decimal.NewFromFloat(subtotal).Mul(decimal.NewFromInt(1).Add(TaxRate))
	f, _ := total.Round(2).Float64()
	return f
}

// Tax returns just the tax portion for display, rounded to cents.
func Tax(subtotal float64) float64 {
	tax := decimal.NewFromFloat(subtotal).Mul(TaxRate)
	f, _ := tax.Round(2).Float64()
	return f
}

// NewOrderRef generates a 9-char uppercase alphanumeric order id.
// Confusable characters are excluded. Uniqueness is collision-improbable,
// not guaranteed.
func NewOrderRef() string {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	b := make([]byte, 9)
	if _, err := rand.Read(b); err != nil {
		return "ORD" + strconv.FormatInt(time.Now().Unix(), 10)
	}
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}

// BuildOrder snapshots the cart lines into a new Processing order. Values
// are copied at checkout time, not live references to the catalog.
func BuildOrder(userID string, items []models.CartItem, subtotal float64) models.Order {
	if userID == "" {
		userID = models.GuestUserID
	}
	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	return models.Order{
		ID:     NewOrderRef(),
		UserID: userID,
		Items:  snapshot,
		Total:  Total(subtotal),
		Date:   time.Now().Format(time.RFC3339),
		Status: models.StatusProcessing,
	}
}
