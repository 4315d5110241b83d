package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/CodMatt/ascenda-hotel-sub000/internal/models"
	"github.com/CodMatt/ascenda-hotel-sub000/internal/obs"
	"github.com/CodMatt/ascenda-hotel-sub000/internal/upstream"
)

// PricesFetcher is the slice of the upstream client the poller needs.
type PricesFetcher interface {
	FetchPrices(ctx context.Context, req *models.SearchRequest) (*upstream.PricePayload, error)
}

// Poller retries the pricing feed until prices materialize or the attempt
// budget runs out. An empty result list is not a failure, only "no data
// yet"; transport and HTTP errors on a single attempt are swallowed the
// same way. Each call owns its own loop state, so one Poller is safe to
// use from concurrent searches.
type Poller struct {
	fetcher     PricesFetcher
	maxAttempts int
	delay       time.Duration
	metrics     *obs.Metrics
	logger      *slog.Logger
}

func NewPoller(f PricesFetcher, maxAttempts int, delay time.Duration, m *obs.Metrics, logger *slog.Logger) *Poller {
	return &Poller{fetcher: f, maxAttempts: maxAttempts, delay: delay, metrics: m, logger: logger}
}

// PollUntilReady performs sequential GET attempts against the pricing feed
// and returns on the first non-empty result list. On exhaustion or
// cancellation it returns the last payload observed (or an empty fallback)
// rather than an error; callers treat an empty list as a valid outcome.
func (p *Poller) PollUntilReady(ctx context.Context, req *models.SearchRequest) *upstream.PricePayload {
	var last *upstream.PricePayload
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		next, ready := p.step(ctx, req, attempt, last)
		last = next
		if ready {
			p.logger.Info("prices ready",
				"destination_id", req.DestinationID,
				"attempt", attempt,
				"hotels", len(last.Hotels),
			)
			return last
		}
		if attempt == p.maxAttempts {
			break
		}
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			p.logger.Info("price polling cancelled",
				"destination_id", req.DestinationID,
				"attempt", attempt,
			)
			return fallback(last)
		}
	}

	p.metrics.IncPollExhausted()
	p.logger.Warn("price polling exhausted",
		"destination_id", req.DestinationID,
		"attempts", p.maxAttempts,
	)
	return fallback(last)
}

// step performs one attempt. It returns the payload to carry into the next
// iteration and whether the result list is non-empty. A failed attempt
// keeps the previous payload.
func (p *Poller) step(ctx context.Context, req *models.SearchRequest, attempt int, prev *upstream.PricePayload) (*upstream.PricePayload, bool) {
	p.metrics.IncPollAttempts()
	start := time.Now()
	payload, err := p.fetcher.FetchPrices(ctx, req)
	p.metrics.ObserveUpstreamLatency("prices", time.Since(start).Seconds())
	if err != nil {
		p.metrics.IncUpstreamFailure("prices")
		p.logger.Warn("price fetch attempt failed",
			"destination_id", req.DestinationID,
			"attempt", attempt,
			"error", err,
		)
		return prev, false
	}
	return payload, len(payload.Hotels) > 0
}

func fallback(last *upstream.PricePayload) *upstream.PricePayload {
	if last != nil {
		return last
	}
	return &upstream.PricePayload{Hotels: []upstream.PriceRecord{}}
}
