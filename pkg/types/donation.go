package types

import "time"

// Donation reports a fulfilled request. It is never stored and nothing on
// either party changes because of it.
type Donation struct {
	ID               string    `json:"id"`
	PickupCode       string    `json:"pickupCode"`
	DonorName        string    `json:"donorName"`
	DonorContact     string    `json:"donorContact"`
	RecipientName    string    `json:"recipientName"`
	RecipientContact string    `json:"recipientContact"`
	Region           string    `json:"region"`
	DressingType     string    `json:"dressingType"`
	CreatedAt        time.Time `json:"createdAt"`
}
