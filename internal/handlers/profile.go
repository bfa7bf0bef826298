package handlers

import (
	"net/http"
	"strings"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/auth"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/catalog"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

type ProfileHandler struct {
	Auth         *auth.Manager
	Catalog      *catalog.Directory
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// View shows the signed-in user's order history (newest-first) and wishlist.
func (h *ProfileHandler) View(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)

	user := h.Auth.Current()
	if user == nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Sign in to view your profile."})
		session.Save(r, w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// Wishlist entries whose product has since been deleted are skipped.
	var wishlist []models.Product
	for _, pid := range user.Wishlist {
		if p, ok := h.Catalog.FindByID(pid); ok {
			wishlist = append(wishlist, p)
		}
	}

	tmpl := h.Templates.Get("profile.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	data := map[string]interface{}{
		"User":      user,
		"Orders":    h.Auth.Orders(),
		"Wishlist":  wishlist,
		"CartCount": getCart(session).Count(),
		"Flashes":   GetFlash(session),
		"CsrfField": csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// ToggleWishlist flips a product in and out of the wishlist.
func (h *ProfileHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)
	defer session.Save(r, w)

	if h.Auth.Current() == nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Sign in to save favorites."})
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	productID := r.FormValue("product_id")
	if err := h.Auth.ToggleWishlist(productID); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Failed to update wishlist."})
	}

	http.Redirect(w, r, localRedirect(r.FormValue("redirect")), http.StatusSeeOther)
}

// localRedirect only honors same-site paths; anything else falls back to the
// profile page so the redirect field can't bounce users off-site.
func localRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/profile"
	}
	return target
}
