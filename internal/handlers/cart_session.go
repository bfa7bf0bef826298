package handlers

import (
	"github.com/Shah049/WALKIN-ECOMERCE/internal/cart"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "walkin-session"
	cartKey     = "cart"
)

// getCart decodes the visitor's cart out of the cookie session. A missing
// or undecodable value is just an empty cart.
func getCart(session *sessions.Session) *cart.Cart {
	c := &cart.Cart{}
	if raw, ok := session.Values[cartKey]; ok {
		if items, ok := raw.([]models.CartItem); ok {
			c.Items = items
		}
	}
	return c
}

func saveCart(session *sessions.Session, c *cart.Cart) {
	session.Values[cartKey] = c.Items
}
