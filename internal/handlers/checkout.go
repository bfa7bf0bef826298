package handlers

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/auth"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/checkout"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

type CheckoutHandler struct {
	Auth         *auth.Manager
	Sync         *checkout.SyncClient
	Templates    *TemplateCache
	SessionStore *sessions.CookieStore
}

// Form renders the shipping + payment form. Payment is a mock: card fields
// are displayed and discarded, never stored or charged.
func (h *CheckoutHandler) Form(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)
	c := getCart(session)
	if len(c.Items) == 0 {
		session.AddFlash(FlashMessage{Type: "error", Message: "Your cart is empty."})
		session.Save(r, w)
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	tmpl := h.Templates.Get("checkout.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	user := h.Auth.Current()
	email := ""
	if user != nil {
		email = user.Email
	}
	subtotal := c.Subtotal()

	data := map[string]interface{}{
		"Items":     c.Items,
		"Subtotal":  subtotal,
		"Tax":       checkout.Tax(subtotal),
		"Total":     checkout.Total(subtotal),
		"Email":     email,
		"User":      user,
		"CartCount": c.Count(),
		"Flashes":   GetFlash(session),
		"CsrfField": csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// Submit places the order: saves it locally (always) and mirrors it to the
// order-sync sink (best effort). A sync failure only produces a warning;
// the local order has already been persisted by then.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)
	defer session.Save(r, w)

	c := getCart(session)
	if len(c.Items) == 0 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	details := checkout.ShippingDetails{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
		Address:   r.FormValue("address"),
		City:      r.FormValue("city"),
		Zip:       r.FormValue("zip"),
	}

	errors := make(map[string]string)
	if details.FirstName == "" {
		errors["first_name"] = "First name is required."
	}
	if details.LastName == "" {
		errors["last_name"] = "Last name is required."
	}
	if details.Email == "" {
		errors["email"] = "Email address is required."
	} else if !isValidEmail(details.Email) {
		errors["email"] = "Please enter a valid email address."
	}
	if details.Address == "" {
		errors["address"] = "Shipping address is required."
	}
	if len(errors) > 0 {
		for _, msg := range errors {
			session.AddFlash(FlashMessage{Type: "error", Message: msg})
		}
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	userID := models.GuestUserID
	if user := h.Auth.Current(); user != nil {
		userID = user.ID
	}

	order := checkout.BuildOrder(userID, c.Items, c.Subtotal())
	if err := h.Auth.AddOrder(order); err != nil {
		slog.Error("Failed to save order", "error", err)
		session.AddFlash(FlashMessage{Type: "error", Message: "Failed to place order. Please try again."})
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	if h.Sync.Enabled() {
		if err := h.Sync.Send(r.Context(), details, order); err != nil {
			slog.Error("Order sync failed", "order", order.ID, "error", err)
			session.AddFlash(FlashMessage{Type: "warning", Message: "Order saved locally, but syncing with our fulfillment sheet failed."})
		}
	}

	c.Clear()
	saveCart(session, c)

	slog.Info("Order placed", "order", order.ID, "user", userID, "total", order.Total)
	session.AddFlash(FlashMessage{Type: "success", Message: "Order " + order.ID + " confirmed! Thank you, " + details.FirstName + "."})
	if userID != models.GuestUserID {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Basic email validation regex
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
