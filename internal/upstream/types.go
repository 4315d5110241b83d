package upstream

// PricePayload is the envelope of the pricing feed. The feed is eventually
// consistent: `hotels` stays empty while the upstream computes live rates,
// and `completed` flips once its own crawl is done.
type PricePayload struct {
	Completed bool          `json:"completed"`
	Hotels    []PriceRecord `json:"hotels"`
}

// MarketRate is one comparison rate attached to a price entry.
type MarketRate struct {
	Supplier string  `json:"supplier"`
	Rate     float64 `json:"rate"`
}

// PriceRecord is one priced hotel in the pricing feed. Its only identity
// is the hotel id; the feed may repeat ids.
type PriceRecord struct {
	HotelID          string       `json:"id"`
	Price            float64      `json:"price"`
	FreeCancellation bool         `json:"free_cancellation"`
	RoomsAvailable   int          `json:"rooms_available"`
	MarketRates      []MarketRate `json:"market_rates"`
}

// ImageTemplate is the prefix/suffix pair the upstream uses to synthesize
// image URLs.
type ImageTemplate struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

// HotelInfo is one entry of the static hotel-metadata feed. Every field
// except the id can be absent, so the optional ones are pointers and
// serialize as null when missing.
type HotelInfo struct {
	ID           string          `json:"id"`
	Name         *string         `json:"name"`
	Address      *string         `json:"address"`
	Rating       *float64        `json:"rating"`
	Latitude     *float64        `json:"latitude"`
	Longitude    *float64        `json:"longitude"`
	ImageDetails *ImageTemplate  `json:"image_details"`
	TrustScore   *float64        `json:"trustscore"`
	Amenities    map[string]bool `json:"amenities"`
}
