package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/catalog"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/stylist"
)

// StylistHandler backs the chat widget: one JSON request in, one reply out.
type StylistHandler struct {
	Catalog *catalog.Directory
	Stylist *stylist.Client
}

type stylistRequest struct {
	Message string `json:"message"`
}

type stylistResponse struct {
	Reply string `json:"reply"`
}

func (h *StylistHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req stylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}

	// The stylist never errors; failures become fixed fallback strings.
	reply := h.Stylist.Reply(r.Context(), req.Message, h.Catalog.Products())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stylistResponse{Reply: reply})
}
