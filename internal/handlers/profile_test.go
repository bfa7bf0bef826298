package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/auth"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/catalog"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/store"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRedirect(t *testing.T) {
	assert.Equal(t, "/shop", localRedirect("/shop"))
	assert.Equal(t, "/product/1", localRedirect("/product/1"))
	assert.Equal(t, "/profile", localRedirect(""))
	assert.Equal(t, "/profile", localRedirect("https://evil.example"))
	assert.Equal(t, "/profile", localRedirect("//evil.example/shop"))
	assert.Equal(t, "/profile", localRedirect("javascript:alert(1)"))
}

func TestToggleWishlistIgnoresOffSiteRedirect(t *testing.T) {
	s, err := store.NewStore(filepath.Join(t.TempDir(), "walkin.db"))
	require.NoError(t, err)
	mgr := auth.NewManager(s, "admin@walkin.com")
	_, err = mgr.Login("shopper@x.com")
	require.NoError(t, err)

	h := &ProfileHandler{
		Auth:         mgr,
		Catalog:      catalog.NewDirectory(s),
		SessionStore: sessions.NewCookieStore([]byte("test-key-0123456789abcdef0123456")),
	}

	form := url.Values{"product_id": {"1"}, "redirect": {"https://evil.example/phish"}}
	req := httptest.NewRequest(http.MethodPost, "/wishlist/toggle", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ToggleWishlist(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile", rec.Header().Get("Location"))
}

func TestToggleWishlistHonorsLocalRedirect(t *testing.T) {
	s, err := store.NewStore(filepath.Join(t.TempDir(), "walkin.db"))
	require.NoError(t, err)
	mgr := auth.NewManager(s, "admin@walkin.com")
	_, err = mgr.Login("shopper@x.com")
	require.NoError(t, err)

	h := &ProfileHandler{
		Auth:         mgr,
		Catalog:      catalog.NewDirectory(s),
		SessionStore: sessions.NewCookieStore([]byte("test-key-0123456789abcdef0123456")),
	}

	form := url.Values{"product_id": {"1"}, "redirect": {"/shop?category=Running"}}
	req := httptest.NewRequest(http.MethodPost, "/wishlist/toggle", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ToggleWishlist(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/shop?category=Running", rec.Header().Get("Location"))
}
