// Package entity contains the core business objects of the project.
package entity

// Region is the administrative division attached to a restaurant.
// Every part is optional; upstream datasets frequently carry only one or two.
type Region struct {
	Sido         string `json:"sido,omitempty"`         // Province-level division, e.g. "서울특별시".
	Sigungu      string `json:"sigungu,omitempty"`      // City/county/district, e.g. "강남구".
	Eupmyeondong string `json:"eupmyeondong,omitempty"` // Town/neighborhood, e.g. "역삼동".
}

// Parts returns the non-empty region parts in sido, sigungu, eupmyeondong order.
func (r Region) Parts() []string {
	parts := make([]string, 0, 3)
	for _, part := range []string{r.Sido, r.Sigungu, r.Eupmyeondong} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return parts
}

// IsEmpty reports whether no region part is set.
func (r Region) IsEmpty() bool {
	return r.Sido == "" && r.Sigungu == "" && r.Eupmyeondong == ""
}

// Restaurant is the canonical store record, independent of the source schema.
// Instances are immutable after normalization; a dataset reload rebuilds the
// whole set rather than mutating records in place.
type Restaurant struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category,omitempty"`
	CategoryDetail string   `json:"categoryDetail,omitempty"`
	Region         Region   `json:"region"`
	Address        string   `json:"address,omitempty"`
	SignatureMenus []string `json:"signatureMenus,omitempty"`
	SearchTags     []string `json:"searchTags,omitempty"`

	NaverReservationURL string `json:"naverReservationUrl,omitempty"`
	NaverPlaceURL       string `json:"naverPlaceUrl,omitempty"`
	NaverMapURL         string `json:"naverMapUrl,omitempty"`

	ImageURL  string   `json:"imageUrl,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	Images    []string `json:"images,omitempty"`

	PriceRange string `json:"priceRange,omitempty"`
	Phone      string `json:"phone,omitempty"`

	VerifiedBadge bool   `json:"verifiedBadge"`
	VerifiedMonth string `json:"verifiedMonth,omitempty"`

	// SearchText is the derived lowercase search index, computed once at
	// normalization time. It is the single input of the query engine and is
	// not part of the canonical source record.
	SearchText string `json:"searchText,omitempty"`
}

// ReservationLink returns the single reservation-capable link for the record.
// A booking URL wins over a plain place page; empty when neither is set.
func (r *Restaurant) ReservationLink() string {
	if r.NaverReservationURL != "" {
		return r.NaverReservationURL
	}

	return r.NaverPlaceURL
}

// DirectionsLink returns the map link for the record, falling back to the
// place page when no dedicated map link is set.
func (r *Restaurant) DirectionsLink() string {
	if r.NaverMapURL != "" {
		return r.NaverMapURL
	}

	return r.NaverPlaceURL
}
