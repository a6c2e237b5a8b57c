package tonapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Account is human-friendly information about an account without
// low-level details.
type Account struct {
	Address      Address  `json:"address"`
	Balance      Balance  `json:"balance"`
	LastActivity int64    `json:"last_activity"`
	Status       string   `json:"status"`
	Interfaces   []string `json:"interfaces,omitempty"`
	Name         string   `json:"name,omitempty"`
	IsScam       bool     `json:"is_scam,omitempty"`
	Icon         string   `json:"icon,omitempty"`
	MemoRequired bool     `json:"memo_required,omitempty"`
	GetMethods   []string `json:"get_methods"`
}

// Accounts is a bulk account lookup result.
type Accounts struct {
	Accounts []Account `json:"accounts"`
}

// AccountAddress is a compact account reference used inside other records.
type AccountAddress struct {
	Address Address `json:"address"`
	Name    string  `json:"name,omitempty"`
	IsScam  bool    `json:"is_scam"`
	Icon    string  `json:"icon,omitempty"`
}

// FoundAccount is one match of a domain-name search.
type FoundAccount struct {
	Address Address `json:"address"`
	Name    string  `json:"name,omitempty"`
	Preview string  `json:"preview,omitempty"`
}

// FoundAccounts is the result of a domain-name search.
type FoundAccounts struct {
	Addresses []FoundAccount `json:"addresses"`
}

// Subscription is a recurring payment contract attached to a wallet.
type Subscription struct {
	Address            Address `json:"address"`
	WalletAddress      Address `json:"wallet_address"`
	BeneficiaryAddress Address `json:"beneficiary_address"`
	Amount             Balance `json:"amount"`
	Period             int64   `json:"period"`
	StartTime          int64   `json:"start_time"`
	Timeout            int64   `json:"timeout"`
	LastPaymentTime    int64   `json:"last_payment_time"`
	LastRequestTime    int64   `json:"last_request_time"`
	SubscriptionID     int64   `json:"subscription_id"`
	FailedAttempts     int     `json:"failed_attempts"`
}

// Subscriptions lists all subscriptions of a wallet.
type Subscriptions struct {
	Subscriptions []Subscription `json:"subscriptions"`
}

// DnsExpiringItem is one .ton domain approaching expiration.
type DnsExpiringItem struct {
	ExpiringAt int64    `json:"expiring_at"`
	Name       string   `json:"name"`
	DNSItem    *NftItem `json:"dns_item,omitempty"`
}

// DnsExpiring lists the account's .ton domains approaching expiration.
type DnsExpiring struct {
	Items []DnsExpiringItem `json:"items"`
}

// PublicKey is an account's public key.
type PublicKey struct {
	PublicKey string `json:"public_key"`
}

// BalanceChange is the net balance change over a date range.
type BalanceChange struct {
	BalanceChange Balance `json:"balance_change"`
}

// AddressForm is the result of parsing an address into its raw and
// user-friendly representations.
type AddressForm struct {
	RawForm       string             `json:"raw_form"`
	Bounceable    AddressFormVariant `json:"bounceable"`
	NonBounceable AddressFormVariant `json:"non_bounceable"`
	GivenType     string             `json:"given_type"`
	TestOnly      bool               `json:"test_only"`
}

// AddressFormVariant is one encoding of a parsed address.
type AddressFormVariant struct {
	B64    string `json:"b64"`
	B64URL string `json:"b64url"`
}

// nftPageSize is the fixed page size used by GetAllNftItems.
const nftPageSize = 1000

// GetAccount returns human-friendly information about an account without
// low-level details.
func (c *Client) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	path := fmt.Sprintf("v2/accounts/%s", url.PathEscape(accountID))

	var result Account
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParseAddress parses an address into its raw and user-friendly forms.
func (c *Client) ParseAddress(ctx context.Context, accountID string) (*AddressForm, error) {
	path := fmt.Sprintf("v2/address/%s/parse", url.PathEscape(accountID))

	var result AddressForm
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAccounts returns human-friendly information about multiple accounts.
func (c *Client) GetAccounts(ctx context.Context, accountIDs []string) (*Accounts, error) {
	body := map[string][]string{"account_ids": accountIDs}

	var result Accounts
	if err := c.postJSON(ctx, "v2/accounts/_bulk", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchAccounts searches accounts by domain name.
func (c *Client) SearchAccounts(ctx context.Context, name string) (*FoundAccounts, error) {
	query := url.Values{"name": []string{name}}

	var result FoundAccounts
	if err := c.getJSON(ctx, "v2/accounts/search", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDomains returns the domains resolving to a wallet account.
func (c *Client) GetDomains(ctx context.Context, accountID string) (*DomainNames, error) {
	path := fmt.Sprintf("v2/accounts/%s/dns/backresolve", url.PathEscape(accountID))

	var result DomainNames
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetJettonsBalances returns all jetton balances of an owner address.
func (c *Client) GetJettonsBalances(ctx context.Context, accountID string) (*JettonsBalances, error) {
	path := fmt.Sprintf("v2/accounts/%s/jettons", url.PathEscape(accountID))

	var result JettonsBalances
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetJettonsHistory returns the jetton transfer history of an account.
// Honors WithLimit, WithBeforeLT, WithAcceptLanguage, WithSubjectOnly,
// WithStartDate and WithEndDate.
func (c *Client) GetJettonsHistory(ctx context.Context, accountID string, opts ...QueryOption) (*AccountEvents, error) {
	cfg := newQueryConfig(100, opts)
	path := fmt.Sprintf("v2/accounts/%s/jettons/history", url.PathEscape(accountID))

	var result AccountEvents
	if err := c.getJSON(ctx, path, cfg.historyQuery(), cfg.languageHeader(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetJettonsHistoryByJetton returns the transfer history of one jetton
// for an account. Honors the same options as GetJettonsHistory.
func (c *Client) GetJettonsHistoryByJetton(ctx context.Context, accountID, jettonID string, opts ...QueryOption) (*AccountEvents, error) {
	cfg := newQueryConfig(100, opts)
	path := fmt.Sprintf("v2/accounts/%s/jettons/%s/history",
		url.PathEscape(accountID), url.PathEscape(jettonID))

	var result AccountEvents
	if err := c.getJSON(ctx, path, cfg.historyQuery(), cfg.languageHeader(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetNftItems returns one page of NFT items owned by an address.
// Honors WithLimit, WithOffset, WithCollection and WithIndirectOwnership.
func (c *Client) GetNftItems(ctx context.Context, accountID string, opts ...QueryOption) (*NftItems, error) {
	cfg := newQueryConfig(1000, opts)
	path := fmt.Sprintf("v2/accounts/%s/nfts", url.PathEscape(accountID))

	query := url.Values{}
	query.Set("limit", strconv.Itoa(cfg.limit))
	query.Set("offset", strconv.Itoa(cfg.offset))
	query.Set("indirect_ownership", strconv.FormatBool(cfg.indirectOwnership))
	if cfg.collection != "" {
		query.Set("collection", cfg.collection)
	}

	var result NftItems
	if err := c.getJSON(ctx, path, query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAllNftItems returns every NFT item owned by an address by paging
// through GetNftItems with a fixed page size. Paging stops when a page
// comes back shorter than the page size. Indirect ownership is included
// by default; override with WithIndirectOwnership(false).
func (c *Client) GetAllNftItems(ctx context.Context, accountID string, opts ...QueryOption) (*NftItems, error) {
	items := make([]NftItem, 0)

	for offset := 0; ; offset += nftPageSize {
		pageOpts := make([]QueryOption, 0, len(opts)+3)
		pageOpts = append(pageOpts, WithIndirectOwnership(true))
		pageOpts = append(pageOpts, opts...)
		pageOpts = append(pageOpts, WithLimit(nftPageSize), WithOffset(offset))

		page, err := c.GetNftItems(ctx, accountID, pageOpts...)
		if err != nil {
			return nil, err
		}
		items = append(items, page.NftItems...)

		if len(page.NftItems) != nftPageSize {
			break
		}
	}

	return &NftItems{NftItems: items}, nil
}

// GetTraces returns trace IDs for an account. Honors WithLimit.
func (c *Client) GetTraces(ctx context.Context, accountID string, opts ...QueryOption) (*TraceIDs, error) {
	cfg := newQueryConfig(100, opts)
	path := fmt.Sprintf("v2/accounts/%s/traces", url.PathEscape(accountID))

	query := url.Values{"limit": []string{strconv.Itoa(cfg.limit)}}

	var result TraceIDs
	if err := c.getJSON(ctx, path, query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetEvent returns one event of an account by event ID. Honors
// WithAcceptLanguage and WithSubjectOnly.
func (c *Client) GetEvent(ctx context.Context, accountID, eventID string, opts ...QueryOption) (*AccountEvent, error) {
	cfg := newQueryConfig(0, opts)
	path := fmt.Sprintf("v2/accounts/%s/events/%s",
		url.PathEscape(accountID), url.PathEscape(eventID))

	query := url.Values{}
	if cfg.subjectOnly {
		query.Set("subject_only", "true")
	}

	var result AccountEvent
	if err := c.getJSON(ctx, path, query, cfg.languageHeader(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetEvents returns events for an account. Each event is built on top of
// a trace, a series of transactions caused by one inbound message, split
// into high-level actions. Honors WithLimit, WithBeforeLT,
// WithAcceptLanguage, WithSubjectOnly, WithStartDate and WithEndDate.
func (c *Client) GetEvents(ctx context.Context, accountID string, opts ...QueryOption) (*AccountEvents, error) {
	cfg := newQueryConfig(100, opts)
	path := fmt.Sprintf("v2/accounts/%s/events", url.PathEscape(accountID))

	var result AccountEvents
	if err := c.getJSON(ctx, path, cfg.historyQuery(), cfg.languageHeader(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetNftHistory returns the NFT transfer history of an account. Honors
// the same options as GetEvents.
func (c *Client) GetNftHistory(ctx context.Context, accountID string, opts ...QueryOption) (*AccountEvents, error) {
	cfg := newQueryConfig(100, opts)
	path := fmt.Sprintf("v2/accounts/%s/nfts/history", url.PathEscape(accountID))

	var result AccountEvents
	if err := c.getJSON(ctx, path, cfg.historyQuery(), cfg.languageHeader(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetSubscriptions returns all subscriptions of a wallet address.
func (c *Client) GetSubscriptions(ctx context.Context, accountID string) (*Subscriptions, error) {
	path := fmt.Sprintf("v2/accounts/%s/subscriptions", url.PathEscape(accountID))

	var result Subscriptions
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetExpiringDNS returns the account's .ton domains approaching
// expiration. Honors WithPeriod.
func (c *Client) GetExpiringDNS(ctx context.Context, accountID string, opts ...QueryOption) (*DnsExpiring, error) {
	cfg := newQueryConfig(0, opts)
	path := fmt.Sprintf("v2/accounts/%s/dns/expiring", url.PathEscape(accountID))

	query := url.Values{}
	if cfg.period > 0 {
		query.Set("period", strconv.Itoa(cfg.period))
	}

	var result DnsExpiring
	if err := c.getJSON(ctx, path, query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPublicKey returns the public key of an account.
func (c *Client) GetPublicKey(ctx context.Context, accountID string) (*PublicKey, error) {
	path := fmt.Sprintf("v2/accounts/%s/publickey", url.PathEscape(accountID))

	var result PublicKey
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBalanceChange returns the account's net balance change over a date
// range (unix seconds).
func (c *Client) GetBalanceChange(ctx context.Context, accountID string, startDate, endDate int64) (*BalanceChange, error) {
	path := fmt.Sprintf("v2/accounts/%s/diff", url.PathEscape(accountID))

	query := url.Values{
		"start_date": []string{strconv.FormatInt(startDate, 10)},
		"end_date":   []string{strconv.FormatInt(endDate, 10)},
	}

	var result BalanceChange
	if err := c.getJSON(ctx, path, query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Reindex asks the indexer to refresh its internal cache for an account.
// The endpoint answers with an empty body, so the result is the boolean
// placeholder of the transport core.
func (c *Client) Reindex(ctx context.Context, accountID string) (bool, error) {
	path := fmt.Sprintf("v2/accounts/%s/reindex", url.PathEscape(accountID))

	result, err := c.api.Post(ctx, path, nil, nil)
	if err != nil {
		return false, wrapError(err)
	}
	return result.Bool(), nil
}
