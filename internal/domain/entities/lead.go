package entities

import "time"

// Lead is a captured enquiry from the lead form. ListingID is set when the
// enquiry was raised from a vendor detail page.
type Lead struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	BusinessName string    `json:"business_name,omitempty"`
	ListingID    *int      `json:"listing_id,omitempty"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}
