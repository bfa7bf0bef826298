package checkout

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalAppliesTax(t *testing.T) {
	assert.Equal(t, 108.00, Total(100.00))
	assert.Equal(t, 8.00, Tax(100.00))
	assert.Equal(t, 0.0, Total(0))
}

func TestTotalRoundsToCents(t *testing.T) {
	// 189.99 * 1.08 = 205.1892
	assert.Equal(t, 205.19, Total(189.99))
	assert.Equal(t, 15.20, Tax(189.99))
}

func TestNewOrderRef(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := NewOrderRef()
		assert.Len(t, ref, 9)
		for _, ch := range ref {
			assert.Contains(t, "ABCDEFGHJKLMNPQRSTUVWXYZ23456789", string(ch))
		}
		seen[ref] = true
	}
	// collision-improbable: 100 draws from 32^9 should never repeat
	assert.Len(t, seen, 100)
}

func TestBuildOrder(t *testing.T) {
	items := []models.CartItem{
		{Product: models.Product{ID: "1", Name: "Walkin Air Pro", Price: 189.99}, SelectedSize: 9, Quantity: 1},
		{Product: models.Product{ID: "2", Name: "Urban Drifter", Price: 129.50}, SelectedSize: 8, Quantity: 2},
	}

	order := BuildOrder("shopper@x.com", items, 448.99)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "shopper@x.com", order.UserID)
	assert.Equal(t, models.StatusProcessing, order.Status)
	assert.Equal(t, Total(448.99), order.Total)
	assert.NotEmpty(t, order.Date)
	require.Len(t, order.Items, 2)

	// items are a snapshot, not aliased to the caller's slice
	items[0].Quantity = 99
	assert.Equal(t, 1, order.Items[0].Quantity)
}

func TestBuildOrderGuestSentinel(t *testing.T) {
	order := BuildOrder("", nil, 10)
	assert.Equal(t, models.GuestUserID, order.UserID)
}

func TestSyncClientSendsPayload(t *testing.T) {
	var got SyncPayload
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewSyncClient(srv.URL)
	details := ShippingDetails{
		FirstName: "Ada", LastName: "L", Email: "ada@x.com",
		Address: "1 Main St", City: "Springfield", Zip: "12345",
	}
	order := models.Order{
		ID:    "REF123456",
		Total: 345.49,
		Items: []models.CartItem{
			{Product: models.Product{ID: "1", Name: "Walkin Air Pro"}, SelectedSize: 9, Quantity: 2},
			{Product: models.Product{ID: "2", Name: "Urban Drifter"}, SelectedSize: 8, Quantity: 1},
		},
	}

	require.NoError(t, client.Send(context.Background(), details, order))

	assert.Equal(t, "text/plain;charset=utf-8", contentType)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "1 Main St, Springfield", got.StreetAddress)
	assert.Equal(t, 3, got.Qty)
	assert.Equal(t, "12345", got.ZipCode)
	assert.Equal(t, "Walkin Air Pro, Urban Drifter", got.ProductName)
	assert.Equal(t, 345.49, got.TotalAmount)
}

func TestSyncClientAddressWithoutCity(t *testing.T) {
	var got SyncPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	client := NewSyncClient(srv.URL)
	require.NoError(t, client.Send(context.Background(), ShippingDetails{Address: "1 Main St"}, models.Order{}))
	assert.Equal(t, "1 Main St", got.StreetAddress)
}

func TestSyncClientReportsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewSyncClient(srv.URL)
	err := client.Send(context.Background(), ShippingDetails{}, models.Order{})
	assert.Error(t, err)
}

func TestSyncClientReportsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewSyncClient(srv.URL)
	err := client.Send(context.Background(), ShippingDetails{}, models.Order{})
	assert.Error(t, err)
}

func TestSyncClientDisabledWithoutURL(t *testing.T) {
	assert.False(t, NewSyncClient("").Enabled())
	assert.True(t, NewSyncClient("https://example.com/hook").Enabled())
}
