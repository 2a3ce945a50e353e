package domain

// AddressInfo is a resolved billing or shipping address used as calculation
// input only; the cart engine never owns or mutates it.
type AddressInfo struct {
	ID      string `json:"id,omitempty"`
	Country string `json:"country"`
	State   string `json:"state,omitempty"`
	City    string `json:"city,omitempty"`
	Zip     string `json:"zip,omitempty"`
}
