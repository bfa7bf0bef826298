package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/auth"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/catalog"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/store"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

type ShopHandler struct {
	Catalog      *catalog.Directory
	Auth         *auth.Manager
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// Home renders the landing page: featured products plus category tiles.
func (h *ShopHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	var featured []models.Product
	for _, p := range h.Catalog.Products() {
		if p.Featured {
			featured = append(featured, p)
		}
	}

	tmpl := h.Templates.Get("home.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, sessionName)
	data := map[string]interface{}{
		"Featured":   featured,
		"Categories": store.Categories[1:],
		"User":       h.Auth.Current(),
		"CartCount":  getCart(session).Count(),
		"Flashes":    GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// Contact renders the contact page. A submitted form only gets the
// thank-you state; there is no backing inbox.
func (h *ShopHandler) Contact(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("contact.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, sessionName)
	data := map[string]interface{}{
		"Sent":      r.Method == http.MethodPost,
		"User":      h.Auth.Current(),
		"CartCount": getCart(session).Count(),
		"Flashes":   GetFlash(session),
		"CsrfField": csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// Help renders the FAQ page.
func (h *ShopHandler) Help(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("help.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, sessionName)
	data := map[string]interface{}{
		"User":      h.Auth.Current(),
		"CartCount": getCart(session).Count(),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// Shop renders the catalog with category/search/price filtering.
func (h *ShopHandler) Shop(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	search := strings.ToLower(q.Get("search"))
	minPrice, _ := strconv.ParseFloat(q.Get("min"), 64)
	maxPrice, _ := strconv.ParseFloat(q.Get("max"), 64)

	var filtered []models.Product
	for _, p := range h.Catalog.Products() {
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if minPrice > 0 && p.Price < minPrice {
			continue
		}
		if maxPrice > 0 && p.Price > maxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	tmpl := h.Templates.Get("shop.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, sessionName)
	data := map[string]interface{}{
		"Products":   filtered,
		"Categories": store.Categories,
		"Category":   category,
		"Search":     q.Get("search"),
		"Min":        q.Get("min"),
		"Max":        q.Get("max"),
		"User":       h.Auth.Current(),
		"CartCount":  getCart(session).Count(),
		"Flashes":    GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}
