package search

import (
	"context"

	"github.com/CodMatt/ascenda-hotel-sub000/internal/models"
	"github.com/CodMatt/ascenda-hotel-sub000/internal/upstream"
)

// MergedHotel combines one pricing-feed entry with the matching static
// metadata. Metadata fields are null when the destination feed has no
// entry for the hotel id; the price row is kept either way.
type MergedHotel struct {
	HotelID          string                `json:"id"`
	Price            float64               `json:"price"`
	FreeCancellation bool                  `json:"free_cancellation"`
	RoomsAvailable   int                   `json:"rooms_available"`
	MarketRates      []upstream.MarketRate `json:"market_rates"`

	Name       *string         `json:"name"`
	Address    *string         `json:"address"`
	Rating     *float64        `json:"rating"`
	Latitude   *float64        `json:"latitude"`
	Longitude  *float64        `json:"longitude"`
	ImageURL   *string         `json:"image_url"`
	TrustScore *float64        `json:"trustscore"`
	Amenities  map[string]bool `json:"amenities"`
}

// Result is the outcome of one availability search. Completed means the
// polling loop finished, not that any prices materialized: an exhausted
// poll yields Completed=true with an empty Hotels list.
type Result struct {
	Completed     bool
	DestinationID string
	Checkin       string
	Checkout      string
	Guests        string
	Currency      string
	Hotels        []MergedHotel
}

// AggregatorService is the interface the HTTP layer consumes.
type AggregatorService interface {
	Search(ctx context.Context, req *models.SearchRequest) (*Result, error)
}
