package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/auth"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

type AuthHandler struct {
	Auth         *auth.Manager
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

func (h *AuthHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	if h.Auth.Current() != nil {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	tmpl := h.Templates.Get("login.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, sessionName)
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
		"CartCount": getCart(session).Count(),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// LoginPost signs in by bare email: find-or-create, no credential. This is
// deliberately demo-grade identity, matching the storefront's design.
func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)
	defer session.Save(r, w)

	email := r.FormValue("email")
	if !isValidEmail(email) {
		session.AddFlash(FlashMessage{Type: "error", Message: "Please enter a valid email address."})
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user, err := h.Auth.Login(email)
	if err != nil {
		slog.Error("Login failed", "email", email, "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Something went wrong signing you in."})
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Welcome, " + user.Name + "!"})
	if user.IsAdmin {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)
	defer session.Save(r, w)

	if err := h.Auth.Logout(); err != nil {
		slog.Error("Logout failed", "error", err)
	}
	session.AddFlash(FlashMessage{Type: "success", Message: "Signed out."})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
