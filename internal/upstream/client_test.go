package upstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/CodMatt/ascenda-hotel-sub000/internal/models"
	"github.com/CodMatt/ascenda-hotel-sub000/internal/upstream"
)

func newSearchRequest(t *testing.T) *models.SearchRequest {
	t.Helper()
	q := url.Values{}
	q.Set("destination_id", "WD0M")
	q.Set("checkin", "2026-10-01")
	q.Set("checkout", "2026-10-07")
	q.Set("guests", "2|2")
	return models.NewSearchRequest(q)
}

func TestClient_FetchPrices_BuildsQueryAndDecodes(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"completed": true,
			"hotels": []map[string]any{
				{"id": "h77", "price": 256.5, "free_cancellation": true, "rooms_available": 4},
			},
		})
	}))
	defer srv.Close()

	c := upstream.NewClient(srv.URL, 2*time.Second)
	payload, err := c.FetchPrices(context.Background(), newSearchRequest(t))
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/hotels/prices" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	want := map[string]string{
		"destination_id": "WD0M",
		"checkin":        "2026-10-01",
		"checkout":       "2026-10-07",
		"guests":         "2|2",
		"lang":           "en_US",
		"currency":       "SGD",
		"country_code":   "SG",
		"partner_id":     "1089",
		"landing_page":   "wl-acme-earn",
		"product_type":   "earn",
	}
	for k, v := range want {
		if gotQuery.Get(k) != v {
			t.Errorf("query param %s: expected %q, got %q", k, v, gotQuery.Get(k))
		}
	}

	if !payload.Completed {
		t.Fatal("expected completed payload")
	}
	if len(payload.Hotels) != 1 {
		t.Fatalf("expected 1 hotel, got %d", len(payload.Hotels))
	}
	h := payload.Hotels[0]
	if h.HotelID != "h77" || h.Price != 256.5 || !h.FreeCancellation || h.RoomsAvailable != 4 {
		t.Fatalf("unexpected price record: %+v", h)
	}
}

func TestClient_FetchPrices_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := upstream.NewClient(srv.URL, 2*time.Second)
	_, err := c.FetchPrices(context.Background(), newSearchRequest(t))
	var se *upstream.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", se.Code)
	}
}

func TestClient_FetchPrices_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := upstream.NewClient(srv.URL, 2*time.Second)
	_, err := c.FetchPrices(context.Background(), newSearchRequest(t))
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestClient_FetchHotels_DecodesMetadata(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":            "h77",
				"name":          "Test Hotel",
				"address":       "1 Orchard Road",
				"rating":        4.0,
				"latitude":      1.3,
				"longitude":     103.8,
				"image_details": map[string]string{"prefix": "https://img/", "suffix": ".jpg"},
				"amenities":     map[string]bool{"pool": true},
			},
			{"id": "h78"},
		})
	}))
	defer srv.Close()

	c := upstream.NewClient(srv.URL, 2*time.Second)
	hotels, err := c.FetchHotels(context.Background(), "WD0M")
	if err != nil {
		t.Fatal(err)
	}
	if gotQuery.Get("destination_id") != "WD0M" {
		t.Fatalf("expected destination_id WD0M, got %q", gotQuery.Get("destination_id"))
	}
	if len(hotels) != 2 {
		t.Fatalf("expected 2 hotels, got %d", len(hotels))
	}
	h := hotels[0]
	if h.ID != "h77" || h.Name == nil || *h.Name != "Test Hotel" {
		t.Fatalf("unexpected metadata: %+v", h)
	}
	if h.ImageDetails == nil || h.ImageDetails.Prefix != "https://img/" {
		t.Fatalf("image template not decoded: %+v", h.ImageDetails)
	}
	if !h.Amenities["pool"] {
		t.Fatalf("amenities not decoded: %+v", h.Amenities)
	}
	// bare record keeps nil optionals
	if hotels[1].Name != nil || hotels[1].Rating != nil || hotels[1].ImageDetails != nil {
		t.Fatalf("expected nil optional fields, got %+v", hotels[1])
	}
}

func TestClient_FetchHotels_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := upstream.NewClient(srv.URL, 2*time.Second)
	_, err := c.FetchHotels(context.Background(), "WD0M")
	var se *upstream.StatusError
	if !errors.As(err, &se) || se.Code != http.StatusInternalServerError {
		t.Fatalf("expected StatusError 500, got %v", err)
	}
}

func TestClient_FetchHotels_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := upstream.NewClient(srv.URL, 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.FetchHotels(ctx, "WD0M"); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
