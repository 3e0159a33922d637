package entities

// SortOrder controls price ordering of chat results.
type SortOrder string

const (
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// ListingQuery is the structured form of one chat question. A query is built
// fresh per user turn unless the turn is the "more" continuation command, in
// which case the previous turn's query is reused at the next page.
type ListingQuery struct {
	Category string    `json:"category"`
	Area     string    `json:"area,omitempty"`
	Sort     SortOrder `json:"sort_order"`
	MinPrice *float64  `json:"min_price,omitempty"`
	MaxPrice *float64  `json:"max_price,omitempty"`
	NearMe   bool      `json:"near_me"`
	Cheapest bool      `json:"cheapest"`
}
