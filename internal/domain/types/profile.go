package types

// Profile holds non-secret local preferences.
type Profile struct {
	APIURL    string `json:"api_url,omitempty"`
	LastEmail string `json:"last_email,omitempty"`
	PageSize  int    `json:"page_size,omitempty"`
}
