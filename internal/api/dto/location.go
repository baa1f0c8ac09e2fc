package dto

type ApproxLocationResponse struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Source string  `json:"source"`
}

type ReverseGeocodeResponse struct {
	Address string `json:"address"`
	// Fallback is true when the address is a formatted coordinate pair
	// because the geocoder was unavailable.
	Fallback bool `json:"fallback"`
}

type ForwardGeocodeResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AskRequest queries the knowledge chain.
type AskRequest struct {
	Query string `json:"query"`
}

type AskResponse struct {
	Answer    string `json:"answer"`
	Source    string `json:"source"`
	SourceURL string `json:"source_url,omitempty"`
}
