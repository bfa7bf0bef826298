package stylist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProducts = []models.Product{
	{Name: "Walkin Air Pro", Price: 189.99, Category: "Running", Description: "Marathon-ready."},
	{Name: "Urban Drifter", Price: 129.50, Category: "Lifestyle", Description: "Daily driver."},
}

func TestProductContext(t *testing.T) {
	got := ProductContext(testProducts)
	want := "Walkin Air Pro ($189.99, Running) - Marathon-ready.\nUrban Drifter ($129.50, Lifestyle) - Daily driver."
	assert.Equal(t, want, got)
}

func TestReplyOfflineWithoutKey(t *testing.T) {
	c := NewClient("", "gemini-3-flash-preview")
	assert.Equal(t, OfflineMessage, c.Reply(context.Background(), "hi", testProducts))
}

func TestReplyParsesCandidate(t *testing.T) {
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"parts": []map[string]string{{"text": "Try the Walkin Air Pro."}}}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient("test-key", "gemini-3-flash-preview")
	c.BaseURL = srv.URL

	reply := c.Reply(context.Background(), "something for running?", testProducts)
	assert.Equal(t, "Try the Walkin Air Pro.", reply)

	// the user message and the catalog context both reach the endpoint
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "something for running?", gotBody.Contents[0].Parts[0].Text)
	require.NotNil(t, gotBody.SystemInstruction)
	assert.True(t, strings.Contains(gotBody.SystemInstruction.Parts[0].Text, "Walkin Air Pro ($189.99, Running)"))
}

func TestReplyFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", "gemini-3-flash-preview")
	c.BaseURL = srv.URL
	assert.Equal(t, FallbackMessage, c.Reply(context.Background(), "hi", nil))
}

func TestReplyFallsBackOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient("test-key", "gemini-3-flash-preview")
	c.BaseURL = srv.URL
	assert.Equal(t, FallbackMessage, c.Reply(context.Background(), "hi", nil))
}

func TestReplyEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer srv.Close()

	c := NewClient("test-key", "gemini-3-flash-preview")
	c.BaseURL = srv.URL
	assert.Equal(t, EmptyMessage, c.Reply(context.Background(), "hi", nil))
}
