package entities

import "math"

// Listing represents one business record from the directory sheet. Category
// and area are stored lowercased; both are free text and may carry a dotted
// "main.sub" hierarchy in category, which the chat interpreter treats as flat
// text to substring-match.
type Listing struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Area      string   `json:"area"`
	ShortDesc string   `json:"short_desc"`
	PriceFrom float64  `json:"price_from"`
	Phone     string   `json:"phone"`
	WhatsApp  string   `json:"whatsapp"`
	Address   string   `json:"address"`
	Lat       *float64 `json:"lat,omitempty"`
	Lon       *float64 `json:"lon,omitempty"`
}

// HasPrice reports whether the record carries a finite positive starting
// price. Records without one are never surfaced in chat answers.
func (l *Listing) HasPrice() bool {
	return l.PriceFrom > 0 && !math.IsInf(l.PriceFrom, 0) && !math.IsNaN(l.PriceFrom)
}

// HasCoordinates reports whether both coordinates are present, a precondition
// for proximity filtering.
func (l *Listing) HasCoordinates() bool {
	return l.Lat != nil && l.Lon != nil
}

// Location represents geographical coordinates
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
