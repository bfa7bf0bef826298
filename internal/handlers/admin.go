package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/auth"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/catalog"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/store"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

type AdminHandler struct {
	Catalog      *catalog.Directory
	Auth         *auth.Manager
	Store        *store.Store
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// AuthMiddleware gates admin routes on the current session's admin flag.
// The flag is recomputed from the admin email at every login, so a stale
// stored grant can never reach here.
func (h *AdminHandler) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := h.Auth.Current()
		if user == nil || !user.IsAdmin {
			slog.Info("Admin route denied", "path", r.URL.Path)
			session, _ := h.SessionStore.Get(r, sessionName)
			session.AddFlash(FlashMessage{Type: "error", Message: "You must be an administrator to access this page."})
			session.Save(r, w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// Dashboard shows order/product aggregates.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.GetDashboardStats()
	if err != nil {
		http.Error(w, "Error fetching stats", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("admin.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, sessionName)
	data := map[string]interface{}{
		"Stats":   stats,
		"User":    h.Auth.Current(),
		"Flashes": GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// ListProducts shows the full catalog, including non-featured records.
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("admin_products.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, sessionName)
	data := map[string]interface{}{
		"Products":  h.Catalog.Products(),
		"User":      h.Auth.Current(),
		"Flashes":   GetFlash(session),
		"CsrfField": csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)
	defer session.Save(r, w)

	id := r.FormValue("id")
	if err := h.Catalog.Remove(id); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error deleting product."})
		http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Product deleted."})
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}
