package tonapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Price is an amount in a named token.
type Price struct {
	Value     string `json:"value"`
	TokenName string `json:"token_name"`
}

// ImagePreview is one pre-rendered resolution of an NFT image.
type ImagePreview struct {
	Resolution string `json:"resolution"`
	URL        string `json:"url"`
}

// Sale describes the selling contract currently holding an NFT item.
type Sale struct {
	Address Address         `json:"address"`
	Market  AccountAddress  `json:"market"`
	Owner   *AccountAddress `json:"owner,omitempty"`
	Price   Price           `json:"price"`
}

// NftCollectionPreview is a compact collection reference embedded in items.
type NftCollectionPreview struct {
	Address Address `json:"address"`
	Name    string  `json:"name"`
}

// NftItem is one NFT item with its metadata.
type NftItem struct {
	Address    Address               `json:"address"`
	Index      int64                 `json:"index"`
	Owner      *AccountAddress       `json:"owner,omitempty"`
	Collection *NftCollectionPreview `json:"collection,omitempty"`
	Verified   bool                  `json:"verified"`
	Metadata   json.RawMessage       `json:"metadata,omitempty"`
	Sale       *Sale                 `json:"sale,omitempty"`
	Previews   []ImagePreview        `json:"previews,omitempty"`
	DNS        string                `json:"dns,omitempty"`
	ApprovedBy []string              `json:"approved_by,omitempty"`
}

// NftItems is a list of NFT items.
type NftItems struct {
	NftItems []NftItem `json:"nft_items"`
}

// NftCollection is an NFT collection contract with its metadata.
type NftCollection struct {
	Address              Address         `json:"address"`
	NextItemIndex        int64           `json:"next_item_index"`
	Owner                *AccountAddress `json:"owner,omitempty"`
	RawCollectionContent string          `json:"raw_collection_content"`
	Metadata             json.RawMessage `json:"metadata,omitempty"`
}

// NftCollections is a list of NFT collections.
type NftCollections struct {
	NftCollections []NftCollection `json:"nft_collections"`
}

// GetNftCollections returns indexed NFT collections. Honors WithLimit
// and WithOffset.
func (c *Client) GetNftCollections(ctx context.Context, opts ...QueryOption) (*NftCollections, error) {
	cfg := newQueryConfig(15, opts)

	query := url.Values{
		"limit":  []string{strconv.Itoa(cfg.limit)},
		"offset": []string{strconv.Itoa(cfg.offset)},
	}

	var result NftCollections
	if err := c.getJSON(ctx, "v2/nfts/collections", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetNftCollection returns an NFT collection by collection address.
func (c *Client) GetNftCollection(ctx context.Context, accountID string) (*NftCollection, error) {
	path := fmt.Sprintf("v2/nfts/collections/%s", url.PathEscape(accountID))

	var result NftCollection
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetNftCollectionItems returns the items of a collection. Honors
// WithLimit and WithOffset.
func (c *Client) GetNftCollectionItems(ctx context.Context, accountID string, opts ...QueryOption) (*NftItems, error) {
	cfg := newQueryConfig(1000, opts)
	path := fmt.Sprintf("v2/nfts/collections/%s/items", url.PathEscape(accountID))

	query := url.Values{
		"limit":  []string{strconv.Itoa(cfg.limit)},
		"offset": []string{strconv.Itoa(cfg.offset)},
	}

	var result NftItems
	if err := c.getJSON(ctx, path, query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetNftItem returns one NFT item by its address.
func (c *Client) GetNftItem(ctx context.Context, accountID string) (*NftItem, error) {
	path := fmt.Sprintf("v2/nfts/%s", url.PathEscape(accountID))

	var result NftItem
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetNftItemsBulk returns multiple NFT items by their addresses.
func (c *Client) GetNftItemsBulk(ctx context.Context, accountIDs []string) (*NftItems, error) {
	body := map[string][]string{"account_ids": accountIDs}

	var result NftItems
	if err := c.postJSON(ctx, "v2/nfts/_bulk", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
