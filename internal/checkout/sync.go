package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/models"
)

// SyncPayload is the row shape the spreadsheet-backed endpoint expects.
type SyncPayload struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	StreetAddress string  `json:"streetAddress"`
	Qty           int     `json:"qty"`
	ZipCode       string  `json:"zipCode"`
	ProductName   string  `json:"productName"`
	TotalAmount   float64 `json:"totalAmount"`
}

// ShippingDetails is what the checkout form collects.
type ShippingDetails struct {
	FirstName string
	LastName  string
	Email     string
	Address   string
	City      string
	Zip       string
}

// SyncClient mirrors completed checkouts to the external sink. The call is
// fire-and-forget from the order's perspective: a failure never blocks or
// rolls back the locally saved order, the handler just warns the customer.
type SyncClient struct {
	URL    string
	Client *http.Client
}

func NewSyncClient(url string) *SyncClient {
	return &SyncClient{
		URL:    url,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Enabled reports whether a sink URL is configured.
func (c *SyncClient) Enabled() bool {
	return c.URL != ""
}

// Send posts the order row. The response body is not parsed; any non-2xx
// status or transport error is returned for the caller to log.
func (c *SyncClient) Send(ctx context.Context, details ShippingDetails, order models.Order) error {
	street := details.Address
	if details.City != "" {
		street += ", " + details.City
	}

	qty := 0
	names := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		qty += item.Quantity
		names = append(names, item.Name)
	}

	payload := SyncPayload{
		FirstName:     details.FirstName,
		LastName:      details.LastName,
		Email:         details.Email,
		StreetAddress: street,
		Qty:           qty,
		ZipCode:       details.Zip,
		ProductName:   strings.Join(names, ", "),
		TotalAmount:   order.Total,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	// The Apps Script endpoint wants text/plain to skip the CORS preflight.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("order sync returned status %d", resp.StatusCode)
	}
	return nil
}
