package integration

// SyncResult reports how many upstream records an import created and how
// many it updated in place
type SyncResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// PushStatusResult reports the outcome of pushing an order status to the
// storefront. Synced is false when the order is not linked to the storefront
// and no push was attempted.
type PushStatusResult struct {
	Synced bool   `json:"synced"`
	Status string `json:"status,omitempty"`
}
