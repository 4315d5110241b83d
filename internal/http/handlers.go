package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/CodMatt/ascenda-hotel-sub000/internal/models"
	"github.com/CodMatt/ascenda-hotel-sub000/internal/obs"
	"github.com/CodMatt/ascenda-hotel-sub000/internal/search"
	"github.com/google/uuid"
)

// Error messages surfaced to the caller, one per failure kind.
const (
	msgMissingParams = "Missing required query parameters."
	msgMetadataFail  = "Unable to retrieve hotel details."
	msgInternal      = "Internal server error during hotel search."
)

type Handler struct {
	agg     search.AggregatorService
	metrics *obs.Metrics
	logger  *slog.Logger
}

func NewHandler(agg search.AggregatorService, m *obs.Metrics, logger *slog.Logger) *Handler {
	return &Handler{agg: agg, metrics: m, logger: logger}
}

// SearchResponse is the wire shape of a successful search.
type SearchResponse struct {
	Completed     bool                 `json:"completed"`
	DestinationID string               `json:"destination_id"`
	Checkin       string               `json:"checkin"`
	Checkout      string               `json:"checkout"`
	Guests        string               `json:"guests"`
	Currency      string               `json:"currency"`
	Hotels        []search.MergedHotel `json:"hotels"`
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.metrics.IncRequests()

	// chi's middleware.RequestID sets X-Request-Id header
	reqID := r.Header.Get("X-Request-Id")
	if reqID == "" {
		reqID = uuid.New().String()
	}

	req := models.NewSearchRequest(r.URL.Query())

	res, err := h.agg.Search(ctx, req)
	if err != nil {
		var me *search.MetadataError
		switch {
		case errors.Is(err, search.ErrMissingParameters):
			h.logger.Debug("search rejected", "request_id", reqID, "error", err)
			BadRequest(w, msgMissingParams)
		case errors.As(err, &me):
			status := me.Status
			if status == 0 {
				status = http.StatusInternalServerError
			}
			h.logger.Error("metadata fetch failed", "request_id", reqID, "status", status, "error", err)
			WriteError(w, status, msgMetadataFail)
		default:
			h.logger.Error("search failed", "request_id", reqID, "error", err)
			InternalError(w, msgInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, SearchResponse{
		Completed:     res.Completed,
		DestinationID: res.DestinationID,
		Checkin:       res.Checkin,
		Checkout:      res.Checkout,
		Guests:        res.Guests,
		Currency:      res.Currency,
		Hotels:        res.Hotels,
	})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
