package models

import (
	"net/url"

	"github.com/CodMatt/ascenda-hotel-sub000/internal/validator"
)

// Defaults substituted for optional search parameters.
const (
	DefaultLanguage  = "en_US"
	DefaultCurrency  = "SGD"
	DefaultCountry   = "SG"
	DefaultPartnerID = "1089"
)

// SearchRequest carries the parameters of one availability search.
// Checkin/Checkout and Guests are opaque to this service: the upstream
// API owns their formats, so nothing beyond presence of the required
// fields is validated here.
type SearchRequest struct {
	DestinationID string `validate:"required"`
	Checkin       string `validate:"required"`
	Checkout      string `validate:"required"`
	Guests        string `validate:"required"`

	Language  string
	Currency  string
	Country   string
	PartnerID string
}

// NewSearchRequest builds a SearchRequest from query parameters,
// substituting defaults for the optional fields.
func NewSearchRequest(q url.Values) *SearchRequest {
	r := &SearchRequest{
		DestinationID: q.Get("destination_id"),
		Checkin:       q.Get("checkin"),
		Checkout:      q.Get("checkout"),
		Guests:        q.Get("guests"),
		Language:      q.Get("lang"),
		Currency:      q.Get("currency"),
		Country:       q.Get("country_code"),
		PartnerID:     q.Get("partner_id"),
	}
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
	if r.Country == "" {
		r.Country = DefaultCountry
	}
	if r.PartnerID == "" {
		r.PartnerID = DefaultPartnerID
	}
	return r
}

// Validate reports whether all required fields are present. A missing
// field fails the whole request; partial searches are never attempted.
func (r *SearchRequest) Validate() error {
	return validator.Struct(r)
}
