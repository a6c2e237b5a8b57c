package tonapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// JettonMetadata is the token metadata published by a jetton master.
type JettonMetadata struct {
	Address     Address  `json:"address"`
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Decimals    string   `json:"decimals"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	Social      []string `json:"social,omitempty"`
	Websites    []string `json:"websites,omitempty"`
	Catalogs    []string `json:"catalogs,omitempty"`
}

// JettonInfo is full information about a jetton master.
type JettonInfo struct {
	Mintable     bool           `json:"mintable"`
	TotalSupply  string         `json:"total_supply"`
	Metadata     JettonMetadata `json:"metadata"`
	Verification string         `json:"verification"`
	HoldersCount int64          `json:"holders_count"`
}

// JettonPreview is a compact jetton reference embedded in other records.
type JettonPreview struct {
	Address      Address `json:"address"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	Decimals     int     `json:"decimals"`
	Image        string  `json:"image,omitempty"`
	Verification string  `json:"verification"`
}

// JettonBalance is one jetton holding of an owner address.
type JettonBalance struct {
	Balance       string         `json:"balance"`
	WalletAddress AccountAddress `json:"wallet_address"`
	Jetton        JettonPreview  `json:"jetton"`
}

// JettonsBalances lists all jetton holdings of an owner address.
type JettonsBalances struct {
	Balances []JettonBalance `json:"balances"`
}

// JettonHolder is one holder of a jetton.
type JettonHolder struct {
	Address Address        `json:"address"`
	Owner   AccountAddress `json:"owner"`
	Balance string         `json:"balance"`
}

// JettonHolders lists the holders of a jetton.
type JettonHolders struct {
	Addresses []JettonHolder `json:"addresses"`
	Total     int64          `json:"total"`
}

// Jettons is a list of indexed jetton masters.
type Jettons struct {
	Jettons []JettonInfo `json:"jettons"`
}

// GetJettonInfo returns jetton metadata by jetton master address.
func (c *Client) GetJettonInfo(ctx context.Context, accountID string) (*JettonInfo, error) {
	path := fmt.Sprintf("v2/jettons/%s", url.PathEscape(accountID))

	var result JettonInfo
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetJettonHolders returns the holders of a jetton.
func (c *Client) GetJettonHolders(ctx context.Context, accountID string) (*JettonHolders, error) {
	path := fmt.Sprintf("v2/jettons/%s/holders", url.PathEscape(accountID))

	var result JettonHolders
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetJettons returns a page of all indexed jetton masters. Honors
// WithLimit and WithOffset.
func (c *Client) GetJettons(ctx context.Context, opts ...QueryOption) (*Jettons, error) {
	cfg := newQueryConfig(100, opts)

	query := url.Values{
		"limit":  []string{strconv.Itoa(cfg.limit)},
		"offset": []string{strconv.Itoa(cfg.offset)},
	}

	var result Jettons
	if err := c.getJSON(ctx, "v2/jettons", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
