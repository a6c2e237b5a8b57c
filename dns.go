package tonapi

import (
	"context"
	"fmt"
	"net/url"
)

// DomainNames lists the domains resolving to one account.
type DomainNames struct {
	Domains []string `json:"domains"`
}

// WalletDNS is the wallet record of a DNS entry.
type WalletDNS struct {
	Address         Address  `json:"address"`
	IsWallet        bool     `json:"is_wallet"`
	HasMethodPubkey bool     `json:"has_method_pubkey"`
	HasMethodSeqno  bool     `json:"has_method_seqno"`
	Names           []string `json:"names"`
}

// DNSRecord is the resolved record set of a domain.
type DNSRecord struct {
	Wallet       *WalletDNS `json:"wallet,omitempty"`
	NextResolver string     `json:"next_resolver,omitempty"`
	Sites        []string   `json:"sites"`
	Storage      string     `json:"storage,omitempty"`
}

// DomainInfo is full information about a .ton domain.
type DomainInfo struct {
	Name       string   `json:"name"`
	ExpiringAt int64    `json:"expiring_at,omitempty"`
	Item       *NftItem `json:"item,omitempty"`
}

// DomainBid is one bid in a domain auction.
type DomainBid struct {
	Success bool           `json:"success"`
	Value   int64          `json:"value"`
	TxTime  int64          `json:"txTime"`
	TxHash  string         `json:"txHash"`
	Bidder  AccountAddress `json:"bidder"`
}

// DomainBids lists the bids of a domain auction.
type DomainBids struct {
	Data []DomainBid `json:"data"`
}

// Auction is one open domain auction.
type Auction struct {
	Domain string  `json:"domain"`
	Owner  Address `json:"owner"`
	Price  int64   `json:"price"`
	Bids   int64   `json:"bids"`
	Date   int64   `json:"date"`
}

// Auctions lists the open domain auctions.
type Auctions struct {
	Data  []Auction `json:"data"`
	Total int64     `json:"total"`
}

// GetDNSInfo returns full information about a domain name.
func (c *Client) GetDNSInfo(ctx context.Context, domainName string) (*DomainInfo, error) {
	path := fmt.Sprintf("v2/dns/%s", url.PathEscape(domainName))

	var result DomainInfo
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ResolveDNS resolves a domain name into its DNS record set.
func (c *Client) ResolveDNS(ctx context.Context, domainName string) (*DNSRecord, error) {
	path := fmt.Sprintf("v2/dns/%s/resolve", url.PathEscape(domainName))

	var result DNSRecord
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDomainBids returns the bid history of a domain auction.
func (c *Client) GetDomainBids(ctx context.Context, domainName string) (*DomainBids, error) {
	path := fmt.Sprintf("v2/dns/%s/bids", url.PathEscape(domainName))

	var result DomainBids
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAllAuctions returns all open domain auctions. tld, when not empty,
// filters by top-level domain ("ton" or "t.me").
func (c *Client) GetAllAuctions(ctx context.Context, tld string) (*Auctions, error) {
	query := url.Values{}
	if tld != "" {
		query.Set("tld", tld)
	}

	var result Auctions
	if err := c.getJSON(ctx, "v2/dns/auctions", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
