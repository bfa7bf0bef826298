package handlers

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"github.com/nfnt/resize"
)

func (h *AdminHandler) NewProductForm(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("admin_new_product.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, sessionName)
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
		"User":      h.Auth.Current(),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)
	defer session.Save(r, w)

	product, errMsg := parseProductForm(r)
	if errMsg != "" {
		session.AddFlash(FlashMessage{Type: "error", Message: errMsg})
		http.Redirect(w, r, "/admin/products/new", http.StatusSeeOther)
		return
	}

	if imagePath, ok := h.saveUploadedImage(r, session); ok {
		product.Image = imagePath
	}

	if err := h.Catalog.Create(product); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error creating product."})
		http.Redirect(w, r, "/admin/products/new", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Product created!"})
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func (h *AdminHandler) EditProductForm(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	product, ok := h.Catalog.FindByID(id)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	tmpl := h.Templates.Get("admin_edit_product.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, sessionName)
	data := map[string]interface{}{
		"Product":   product,
		"Sizes":     joinSizes(product.Sizes),
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
		"User":      h.Auth.Current(),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, sessionName)
	defer session.Save(r, w)

	product, errMsg := parseProductForm(r)
	if errMsg != "" {
		session.AddFlash(FlashMessage{Type: "error", Message: errMsg})
		http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
		return
	}

	product.ID = r.FormValue("id")
	// Keep fields the form does not carry: reviews and, unless replaced,
	// the current image.
	existing, ok := h.Catalog.FindByID(product.ID)
	if ok {
		product.Reviews = existing.Reviews
		if product.Image == "" {
			product.Image = existing.Image
		}
	}

	if imagePath, uploaded := h.saveUploadedImage(r, session); uploaded {
		product.Image = imagePath
	}

	if err := h.Catalog.Update(product); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Error updating product."})
		http.Redirect(w, r, "/admin/products/edit?id="+product.ID, http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Product updated!"})
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

// parseProductForm reads the shared create/edit form fields. Price and
// sizes are validated here; the data layer treats records as plausible.
func parseProductForm(r *http.Request) (models.Product, string) {
	// Multipart because of the optional image upload.
	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10MB
		return models.Product{}, "File too large."
	}

	name := r.FormValue("name")
	if name == "" {
		return models.Product{}, "Product name is required."
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil || price < 0 {
		return models.Product{}, "Price must be a non-negative number."
	}

	sizes, err := parseSizes(r.FormValue("sizes"))
	if err != nil {
		return models.Product{}, "Sizes must be a comma-separated list of numbers."
	}

	return models.Product{
		Name:        name,
		Price:       price,
		Category:    r.FormValue("category"),
		Description: r.FormValue("description"),
		Image:       r.FormValue("image_url"),
		Sizes:       sizes,
		Featured:    r.FormValue("featured") == "on",
	}, ""
}

func parseSizes(raw string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		size, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}

func joinSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ", ")
}

// saveUploadedImage resizes an optional uploaded image to 800px wide and
// stores it under static/uploads. Returns ("", false) when no usable file
// was uploaded.
func (h *AdminHandler) saveUploadedImage(r *http.Request, session *sessions.Session) (string, bool) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", false
	}
	defer file.Close()

	var img image.Image
	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png":
		img, err = png.Decode(file)
	case ".jpeg", ".jpg":
		img, err = jpeg.Decode(file)
	default:
		session.AddFlash(FlashMessage{Type: "error", Message: "Unsupported image format."})
		return "", false
	}
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Could not decode image."})
		return "", false
	}

	resized := resize.Resize(800, 0, img, resize.Lanczos3)
	filename := fmt.Sprintf("%s.jpg", uuid.New().String())
	uploadPath := filepath.Join("static/uploads", filename)

	out, err := os.Create(uploadPath)
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Could not store image."})
		return "", false
	}
	defer out.Close()
	jpeg.Encode(out, resized, &jpeg.Options{Quality: 80})

	return "/static/uploads/" + filename, true
}
