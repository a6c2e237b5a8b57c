package tonapi

import "context"

// StorageProvider is one TON Storage provider and its pricing.
type StorageProvider struct {
	Address            Address `json:"address"`
	AcceptNewContracts bool    `json:"accept_new_contracts"`
	RatePerMBDay       int64   `json:"rate_per_mb_day"`
	MaxSpan            int64   `json:"max_span"`
	MinimalFileSize    int64   `json:"minimal_file_size"`
	MaximalFileSize    int64   `json:"maximal_file_size"`
}

// StorageProviders lists the known TON Storage providers.
type StorageProviders struct {
	Providers []StorageProvider `json:"providers"`
}

// GetStorageProviders returns the known TON Storage providers.
func (c *Client) GetStorageProviders(ctx context.Context) (*StorageProviders, error) {
	var result StorageProviders
	if err := c.getJSON(ctx, "v2/storage/providers", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
