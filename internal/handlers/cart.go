package handlers

import (
	"net/http"
	"strconv"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/auth"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/catalog"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/checkout"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

type CartHandler struct {
	Catalog      *catalog.Directory
	Auth         *auth.Manager
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// View renders the cart with subtotal, tax and total.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("cart.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	session, _ := h.SessionStore.Get(r, sessionName)
	c := getCart(session)
	subtotal := c.Subtotal()

	data := map[string]interface{}{
		"Items":     c.Items,
		"Subtotal":  subtotal,
		"Tax":       checkout.Tax(subtotal),
		"Total":     checkout.Total(subtotal),
		"User":      h.Auth.Current(),
		"CartCount": c.Count(),
		"Flashes":   GetFlash(session),
		"CsrfField": csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// Add snapshots a catalog product into the cart at the chosen size.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)
	defer session.Save(r, w)

	productID := r.FormValue("product_id")
	product, ok := h.Catalog.FindByID(productID)
	if !ok {
		session.AddFlash(FlashMessage{Type: "error", Message: "That product is no longer available."})
		http.Redirect(w, r, "/shop", http.StatusSeeOther)
		return
	}

	size, err := strconv.Atoi(r.FormValue("size"))
	if err != nil || !hasSize(product.Sizes, size) {
		session.AddFlash(FlashMessage{Type: "error", Message: "Please pick a size."})
		http.Redirect(w, r, "/product/"+productID, http.StatusSeeOther)
		return
	}

	quantity := 1
	if q, err := strconv.Atoi(r.FormValue("quantity")); err == nil && q > 0 {
		quantity = q
	}

	c := getCart(session)
	c.Add(product, size, quantity)
	saveCart(session, c)

	session.AddFlash(FlashMessage{Type: "success", Message: product.Name + " added to cart."})
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// Remove drops a cart line.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)
	defer session.Save(r, w)

	size, _ := strconv.Atoi(r.FormValue("size"))
	c := getCart(session)
	c.Remove(r.FormValue("product_id"), size)
	saveCart(session, c)

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// Update changes a line's quantity; zero removes it.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)
	defer session.Save(r, w)

	size, _ := strconv.Atoi(r.FormValue("size"))
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	c := getCart(session)
	c.SetQuantity(r.FormValue("product_id"), size, quantity)
	saveCart(session, c)

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func hasSize(sizes []int, size int) bool {
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}
