package tonapi

import (
	"context"
	"fmt"
	"net/url"
)

// PoolImplementation describes a staking pool contract family.
type PoolImplementation struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Socials     []string `json:"socials,omitempty"`
}

// PoolInfo is the state of one staking pool.
type PoolInfo struct {
	Address            Address `json:"address"`
	Name               string  `json:"name"`
	TotalAmount        int64   `json:"total_amount"`
	Implementation     string  `json:"implementation"`
	APY                float64 `json:"apy"`
	MinStake           int64   `json:"min_stake"`
	CycleStart         int64   `json:"cycle_start"`
	CycleEnd           int64   `json:"cycle_end"`
	Verified           bool    `json:"verified"`
	CurrentNominators  int     `json:"current_nominators"`
	MaxNominators      int     `json:"max_nominators"`
	LiquidJettonMaster string  `json:"liquid_jetton_master,omitempty"`
	NominatorsStake    int64   `json:"nominators_stake"`
	ValidatorStake     int64   `json:"validator_stake"`
}

// StakingPoolInfo is one pool with its implementation details.
type StakingPoolInfo struct {
	Implementation PoolImplementation `json:"implementation"`
	Pool           PoolInfo           `json:"pool"`
}

// StakingPools lists staking pools and their implementations.
type StakingPools struct {
	Pools           []PoolInfo                    `json:"pools"`
	Implementations map[string]PoolImplementation `json:"implementations"`
}

// ApyHistoryPoint is one historical APY observation of a pool.
type ApyHistoryPoint struct {
	APY  float64 `json:"apy"`
	Time int64   `json:"time"`
}

// StakingPoolHistory is the APY history of a pool.
type StakingPoolHistory struct {
	APY []ApyHistoryPoint `json:"apy"`
}

// GetStakingPoolInfo returns the state and implementation of a pool.
// Honors WithAcceptLanguage.
func (c *Client) GetStakingPoolInfo(ctx context.Context, accountID string, opts ...QueryOption) (*StakingPoolInfo, error) {
	cfg := newQueryConfig(0, opts)
	path := fmt.Sprintf("v2/staking/pool/%s", url.PathEscape(accountID))

	var result StakingPoolInfo
	if err := c.getJSON(ctx, path, nil, cfg.languageHeader(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStakingPoolHistory returns the APY history of a pool.
func (c *Client) GetStakingPoolHistory(ctx context.Context, accountID string) (*StakingPoolHistory, error) {
	path := fmt.Sprintf("v2/staking/pool/%s/history", url.PathEscape(accountID))

	var result StakingPoolHistory
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStakingPools returns staking pools, optionally only those available
// to availableFor (an account ID). includeUnverified lists pools outside
// the verified set. Honors WithAcceptLanguage.
func (c *Client) GetStakingPools(ctx context.Context, availableFor string, includeUnverified bool, opts ...QueryOption) (*StakingPools, error) {
	cfg := newQueryConfig(0, opts)

	query := url.Values{}
	if availableFor != "" {
		query.Set("available_for", availableFor)
	}
	if includeUnverified {
		query.Set("include_unverified", "true")
	}

	var result StakingPools
	if err := c.getJSON(ctx, "v2/staking/pools", query, cfg.languageHeader(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
