package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
	"github.com/gorilla/csrf"
)

// Detail renders a single product page with sizes and reviews.
func (h *ShopHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	product, ok := h.Catalog.FindByID(id)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	user := h.Auth.Current()
	inWishlist := false
	if user != nil {
		for _, pid := range user.Wishlist {
			if pid == product.ID {
				inWishlist = true
				break
			}
		}
	}

	tmpl := h.Templates.Get("product.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, sessionName)
	data := map[string]interface{}{
		"Product":    product,
		"User":       user,
		"InWishlist": inWishlist,
		"CartCount":  getCart(session).Count(),
		"Flashes":    GetFlash(session),
		"CsrfField":  csrf.TemplateField(r),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// SubmitReview appends a review to a product. Requires a signed-in user;
// the display name is captured now and never re-derived.
func (h *ShopHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)
	defer session.Save(r, w)

	user := h.Auth.Current()
	if user == nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Sign in to leave a review."})
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	productID := r.PathValue("id")
	rating, err := strconv.Atoi(r.FormValue("rating"))
	if err != nil || rating < 1 || rating > 5 {
		session.AddFlash(FlashMessage{Type: "error", Message: "Rating must be between 1 and 5."})
		http.Redirect(w, r, "/product/"+productID, http.StatusSeeOther)
		return
	}
	comment := r.FormValue("comment")
	if comment == "" {
		session.AddFlash(FlashMessage{Type: "error", Message: "A comment is required."})
		http.Redirect(w, r, "/product/"+productID, http.StatusSeeOther)
		return
	}

	review := models.Review{
		ID:       strconv.FormatInt(time.Now().UnixMilli(), 10),
		UserID:   user.ID,
		UserName: user.Name,
		Rating:   rating,
		Comment:  comment,
		Date:     time.Now().Format("2006-01-02"),
	}

	if err := h.Catalog.AttachReview(productID, review); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Failed to save review. Please try again."})
		http.Redirect(w, r, "/product/"+productID, http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Thanks for your review!"})
	http.Redirect(w, r, "/product/"+productID, http.StatusSeeOther)
}
