package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/CodMatt/ascenda-hotel-sub000/internal/models"
)

// Fixed partner-channel parameters the pricing feed requires.
const (
	landingPage = "wl-acme-earn"
	productType = "earn"
)

// StatusError reports a non-2xx response from the upstream API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Code)
}

// Client queries the hotel-inventory API over HTTP. The base URL is
// injected at construction so tests can point it at a local fixture server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client against the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchPrices performs one GET against the pricing feed. It does not
// retry; the caller owns the polling loop.
func (c *Client) FetchPrices(ctx context.Context, req *models.SearchRequest) (*PricePayload, error) {
	u, err := url.Parse(c.baseURL + "/hotels/prices")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("destination_id", req.DestinationID)
	q.Set("checkin", req.Checkin)
	q.Set("checkout", req.Checkout)
	q.Set("lang", req.Language)
	q.Set("currency", req.Currency)
	q.Set("country_code", req.Country)
	q.Set("guests", req.Guests)
	q.Set("partner_id", req.PartnerID)
	q.Set("landing_page", landingPage)
	q.Set("product_type", productType)
	u.RawQuery = q.Encode()

	var payload PricePayload
	if err := c.getJSON(ctx, u.String(), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchHotels performs the one-shot static metadata fetch for a destination.
func (c *Client) FetchHotels(ctx context.Context, destinationID string) ([]HotelInfo, error) {
	u, err := url.Parse(c.baseURL + "/hotels")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("destination_id", destinationID)
	u.RawQuery = q.Encode()

	var hotels []HotelInfo
	if err := c.getJSON(ctx, u.String(), &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
