// Package stylist is the AI shopping helper: a one-shot call to a
// generative-text endpoint with the catalog summarized into the prompt.
// It degrades to fixed messages instead of surfacing errors; the chat
// widget always gets something to display.
package stylist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// OfflineMessage is returned when no API key is configured.
	OfflineMessage = "I'm currently offline (API Key missing). Please check back later!"
	// FallbackMessage is returned on any call failure.
	FallbackMessage = "Sorry, I'm having a bit of a brain freeze. Try asking again!"
	// EmptyMessage is returned when the endpoint answers with no text.
	EmptyMessage = "I'm having trouble thinking of a style right now."
)

const systemInstruction = `You are Walkin's AI Stylist. Your tone is cool, knowledgeable, and helpful.
You help customers find the perfect sneakers from our catalog.
Use the provided PRODUCT CONTEXT to recommend specific shoes.
Keep answers short (under 50 words) unless asked for details.
If you recommend a shoe, mention its exact name so they can search for it.

PRODUCT CONTEXT:
%s
`

type Client struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: defaultBaseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// generateContent request/response wire shapes (the subset we use).
type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// ProductContext renders the catalog into the plain-text block the prompt
// embeds: one "name ($price, category) - description" line per product.
func ProductContext(products []models.Product) string {
	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "%s ($%.2f, %s) - %s\n", p.Name, p.Price, p.Category, p.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Reply answers a customer message. It never returns an error: missing
// credentials and call failures both produce a fixed fallback string.
func (c *Client) Reply(ctx context.Context, message string, products []models.Product) string {
	if c.APIKey == "" {
		return OfflineMessage
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: message}}}},
		SystemInstruction: &content{Parts: []part{{
			Text: fmt.Sprintf(systemInstruction, ProductContext(products)),
		}}},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		slog.Error("Stylist request encode failed", "error", err)
		return FallbackMessage
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		slog.Error("Stylist request build failed", "error", err)
		return FallbackMessage
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		slog.Error("Stylist call failed", "error", err)
		return FallbackMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("Stylist call returned non-OK status", "status", resp.StatusCode)
		return FallbackMessage
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		slog.Error("Stylist response decode failed", "error", err)
		return FallbackMessage
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return EmptyMessage
	}
	text := decoded.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return EmptyMessage
	}
	return text
}
