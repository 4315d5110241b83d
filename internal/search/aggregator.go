package search

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/CodMatt/ascenda-hotel-sub000/internal/models"
	"github.com/CodMatt/ascenda-hotel-sub000/internal/obs"
	"github.com/CodMatt/ascenda-hotel-sub000/internal/upstream"
)

// MetadataFetcher is the slice of the upstream client the aggregator needs
// for the static hotel feed.
type MetadataFetcher interface {
	FetchHotels(ctx context.Context, destinationID string) ([]upstream.HotelInfo, error)
}

// Aggregator turns a SearchRequest into a merged hotel list: polled prices
// joined with one-shot static metadata by hotel id.
type Aggregator struct {
	poller  *Poller
	meta    MetadataFetcher
	metrics *obs.Metrics
	logger  *slog.Logger
}

func NewAggregator(poller *Poller, meta MetadataFetcher, m *obs.Metrics, logger *slog.Logger) *Aggregator {
	return &Aggregator{poller: poller, meta: meta, metrics: m, logger: logger}
}

// Search validates the request, polls the pricing feed to completion, then
// fetches metadata once and merges. Pricing emptiness is never an error;
// a metadata failure always is.
func (a *Aggregator) Search(ctx context.Context, req *models.SearchRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, ErrMissingParameters
	}

	prices := a.poller.PollUntilReady(ctx, req)

	start := time.Now()
	infos, err := a.meta.FetchHotels(ctx, req.DestinationID)
	a.metrics.ObserveUpstreamLatency("hotels", time.Since(start).Seconds())
	if err != nil {
		a.metrics.IncUpstreamFailure("hotels")
		a.logger.Error("metadata fetch failed",
			"destination_id", req.DestinationID,
			"error", err,
		)
		status := 0
		var se *upstream.StatusError
		if errors.As(err, &se) {
			status = se.Code
		}
		return nil, &MetadataError{Status: status, Err: err}
	}

	// Last write wins on duplicate ids, matching how the upstream feed
	// itself resolves repeats. Do not switch to first-write-wins.
	byID := make(map[string]upstream.HotelInfo, len(infos))
	for _, info := range infos {
		byID[info.ID] = info
	}

	hotels := make([]MergedHotel, 0, len(prices.Hotels))
	for _, pr := range prices.Hotels {
		info, found := byID[pr.HotelID]
		hotels = append(hotels, merge(pr, info, found))
	}

	a.logger.Info("search completed",
		"destination_id", req.DestinationID,
		"hotels", len(hotels),
	)

	return &Result{
		Completed:     true,
		DestinationID: req.DestinationID,
		Checkin:       req.Checkin,
		Checkout:      req.Checkout,
		Guests:        req.Guests,
		Currency:      req.Currency,
		Hotels:        hotels,
	}, nil
}

// merge attaches metadata to a price row. An unmatched row keeps nil
// metadata fields instead of being dropped.
func merge(pr upstream.PriceRecord, info upstream.HotelInfo, found bool) MergedHotel {
	h := MergedHotel{
		HotelID:          pr.HotelID,
		Price:            pr.Price,
		FreeCancellation: pr.FreeCancellation,
		RoomsAvailable:   pr.RoomsAvailable,
		MarketRates:      pr.MarketRates,
	}
	if !found {
		return h
	}

	h.Name = info.Name
	h.Address = info.Address
	h.Rating = info.Rating
	h.Latitude = info.Latitude
	h.Longitude = info.Longitude
	h.TrustScore = info.TrustScore
	h.Amenities = info.Amenities
	if info.ImageDetails != nil {
		u := info.ImageDetails.Prefix + "0" + info.ImageDetails.Suffix
		h.ImageURL = &u
	}
	return h
}
