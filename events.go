package tonapi

import (
	"context"
	"fmt"
	"net/url"
)

// Refund describes a returned payment attached to an action.
type Refund struct {
	Type   string `json:"type"`
	Origin string `json:"origin"`
}

// EncryptedComment is a transfer comment readable only by the recipient.
type EncryptedComment struct {
	EncryptionType string `json:"encryption_type"`
	CipherText     string `json:"cipher_text"`
}

// TonTransferAction is a plain toncoin transfer.
type TonTransferAction struct {
	Sender           AccountAddress    `json:"sender"`
	Recipient        AccountAddress    `json:"recipient"`
	Amount           int64             `json:"amount"`
	Comment          string            `json:"comment,omitempty"`
	EncryptedComment *EncryptedComment `json:"encrypted_comment,omitempty"`
	Refund           *Refund           `json:"refund,omitempty"`
}

// ContractDeployAction is a contract deployment.
type ContractDeployAction struct {
	Address    Address  `json:"address"`
	Interfaces []string `json:"interfaces"`
}

// JettonTransferAction is a jetton transfer between wallets.
type JettonTransferAction struct {
	Sender           *AccountAddress   `json:"sender,omitempty"`
	Recipient        *AccountAddress   `json:"recipient,omitempty"`
	SendersWallet    string            `json:"senders_wallet"`
	RecipientsWallet string            `json:"recipients_wallet"`
	Amount           string            `json:"amount"`
	Comment          string            `json:"comment,omitempty"`
	EncryptedComment *EncryptedComment `json:"encrypted_comment,omitempty"`
	Refund           *Refund           `json:"refund,omitempty"`
	Jetton           JettonPreview     `json:"jetton"`
}

// JettonBurnAction is a jetton burn.
type JettonBurnAction struct {
	Sender        AccountAddress `json:"sender"`
	SendersWallet string         `json:"senders_wallet"`
	Amount        string         `json:"amount"`
	Jetton        JettonPreview  `json:"jetton"`
}

// JettonMintAction is a jetton mint.
type JettonMintAction struct {
	Recipient        AccountAddress `json:"recipient"`
	RecipientsWallet string         `json:"recipients_wallet"`
	Amount           string         `json:"amount"`
	Jetton           JettonPreview  `json:"jetton"`
}

// NftItemTransferAction is an NFT item transfer.
type NftItemTransferAction struct {
	Sender           *AccountAddress   `json:"sender,omitempty"`
	Recipient        *AccountAddress   `json:"recipient,omitempty"`
	Nft              string            `json:"nft"`
	Comment          string            `json:"comment,omitempty"`
	EncryptedComment *EncryptedComment `json:"encrypted_comment,omitempty"`
	Payload          string            `json:"payload,omitempty"`
	Refund           *Refund           `json:"refund,omitempty"`
}

// SubscriptionAction is a subscription payment.
type SubscriptionAction struct {
	Subscriber   AccountAddress `json:"subscriber"`
	Subscription string         `json:"subscription"`
	Beneficiary  AccountAddress `json:"beneficiary"`
	Amount       int64          `json:"amount"`
	Initial      bool           `json:"initial"`
}

// UnSubscriptionAction is a subscription cancellation.
type UnSubscriptionAction struct {
	Subscriber   AccountAddress `json:"subscriber"`
	Subscription string         `json:"subscription"`
	Beneficiary  AccountAddress `json:"beneficiary"`
}

// AuctionBidAction is a bid on an NFT auction.
type AuctionBidAction struct {
	AuctionType string         `json:"auction_type"`
	Amount      Price          `json:"amount"`
	Nft         *NftItem       `json:"nft,omitempty"`
	Bidder      AccountAddress `json:"bidder"`
	Auction     AccountAddress `json:"auction"`
}

// NftPurchaseAction is an NFT sale.
type NftPurchaseAction struct {
	AuctionType string         `json:"auction_type"`
	Amount      Price          `json:"amount"`
	Nft         NftItem        `json:"nft"`
	Seller      AccountAddress `json:"seller"`
	Buyer       AccountAddress `json:"buyer"`
}

// DepositStakeAction is a stake deposit into a pool.
type DepositStakeAction struct {
	Amount int64          `json:"amount"`
	Staker AccountAddress `json:"staker"`
	Pool   AccountAddress `json:"pool"`
}

// WithdrawStakeAction is a completed stake withdrawal.
type WithdrawStakeAction struct {
	Amount int64          `json:"amount"`
	Staker AccountAddress `json:"staker"`
	Pool   AccountAddress `json:"pool"`
}

// WithdrawStakeRequestAction is a pending stake withdrawal request.
type WithdrawStakeRequestAction struct {
	Amount *int64         `json:"amount,omitempty"`
	Staker AccountAddress `json:"staker"`
	Pool   AccountAddress `json:"pool"`
}

// ElectionsDepositStakeAction is a validator election stake deposit.
type ElectionsDepositStakeAction struct {
	Amount int64          `json:"amount"`
	Staker AccountAddress `json:"staker"`
}

// ElectionsRecoverStakeAction is a validator election stake recovery.
type ElectionsRecoverStakeAction struct {
	Amount int64          `json:"amount"`
	Staker AccountAddress `json:"staker"`
}

// JettonSwapAction is a DEX swap between jettons or toncoins.
type JettonSwapAction struct {
	Dex             string         `json:"dex"`
	AmountIn        string         `json:"amount_in"`
	AmountOut       string         `json:"amount_out"`
	TonIn           *int64         `json:"ton_in,omitempty"`
	TonOut          *int64         `json:"ton_out,omitempty"`
	UserWallet      AccountAddress `json:"user_wallet"`
	Router          AccountAddress `json:"router"`
	JettonMasterIn  *JettonPreview `json:"jetton_master_in,omitempty"`
	JettonMasterOut *JettonPreview `json:"jetton_master_out,omitempty"`
}

// SmartContractAction is a generic smart contract call.
type SmartContractAction struct {
	Executor    AccountAddress `json:"executor"`
	Contract    AccountAddress `json:"contract"`
	TonAttached int64          `json:"ton_attached"`
	Operation   string         `json:"operation"`
	Payload     string         `json:"payload,omitempty"`
	Refund      *Refund        `json:"refund,omitempty"`
}

// ActionSimplePreview is a language-localized, display-ready summary of
// an action.
type ActionSimplePreview struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ActionImage string           `json:"action_image,omitempty"`
	Value       string           `json:"value,omitempty"`
	ValueImage  string           `json:"value_image,omitempty"`
	Accounts    []AccountAddress `json:"accounts"`
}

// Action is one high-level operation derived from a trace. Exactly one of
// the typed payload fields matching Type is set.
type Action struct {
	Type                  string                       `json:"type"`
	Status                string                       `json:"status"`
	TonTransfer           *TonTransferAction           `json:"TonTransfer,omitempty"`
	ContractDeploy        *ContractDeployAction        `json:"ContractDeploy,omitempty"`
	JettonTransfer        *JettonTransferAction        `json:"JettonTransfer,omitempty"`
	JettonBurn            *JettonBurnAction            `json:"JettonBurn,omitempty"`
	JettonMint            *JettonMintAction            `json:"JettonMint,omitempty"`
	NftItemTransfer       *NftItemTransferAction       `json:"NftItemTransfer,omitempty"`
	Subscribe             *SubscriptionAction          `json:"Subscribe,omitempty"`
	UnSubscribe           *UnSubscriptionAction        `json:"UnSubscribe,omitempty"`
	AuctionBid            *AuctionBidAction            `json:"AuctionBid,omitempty"`
	NftPurchase           *NftPurchaseAction           `json:"NftPurchase,omitempty"`
	DepositStake          *DepositStakeAction          `json:"DepositStake,omitempty"`
	WithdrawStake         *WithdrawStakeAction         `json:"WithdrawStake,omitempty"`
	WithdrawStakeRequest  *WithdrawStakeRequestAction  `json:"WithdrawStakeRequest,omitempty"`
	ElectionsDepositStake *ElectionsDepositStakeAction `json:"ElectionsDepositStake,omitempty"`
	ElectionsRecoverStake *ElectionsRecoverStakeAction `json:"ElectionsRecoverStake,omitempty"`
	JettonSwap            *JettonSwapAction            `json:"JettonSwap,omitempty"`
	SmartContractExec     *SmartContractAction         `json:"SmartContractExec,omitempty"`
	SimplePreview         ActionSimplePreview          `json:"simple_preview"`
}

// AccountEvent is an event seen from one account's perspective.
type AccountEvent struct {
	EventID    string         `json:"event_id"`
	Account    AccountAddress `json:"account"`
	Timestamp  int64          `json:"timestamp"`
	Actions    []Action       `json:"actions"`
	IsScam     bool           `json:"is_scam"`
	LT         int64          `json:"lt"`
	InProgress bool           `json:"in_progress"`
	Extra      int64          `json:"extra"`
}

// AccountEvents is a logical-time-paged list of account events.
type AccountEvents struct {
	Events   []AccountEvent `json:"events"`
	NextFrom int64          `json:"next_from"`
}

// ValueFlowJettons is the jetton quantity moved for one account in an event.
type ValueFlowJettons struct {
	Account  AccountAddress `json:"account"`
	Quantity int64          `json:"quantity"`
}

// ValueFlow sums the value moved for one account in an event.
type ValueFlow struct {
	Account AccountAddress     `json:"account"`
	Ton     int64              `json:"ton"`
	Fees    int64              `json:"fees"`
	Jettons []ValueFlowJettons `json:"jettons,omitempty"`
}

// Event is an account-independent view of an event.
type Event struct {
	EventID    string      `json:"event_id"`
	Timestamp  int64       `json:"timestamp"`
	Actions    []Action    `json:"actions"`
	ValueFlow  []ValueFlow `json:"value_flow"`
	IsScam     bool        `json:"is_scam"`
	LT         int64       `json:"lt"`
	InProgress bool        `json:"in_progress"`
}

// GetEventByID returns an event by event ID, independent of any account
// perspective. Honors WithAcceptLanguage.
func (c *Client) GetEventByID(ctx context.Context, eventID string, opts ...QueryOption) (*Event, error) {
	cfg := newQueryConfig(0, opts)
	path := fmt.Sprintf("v2/events/%s", url.PathEscape(eventID))

	var result Event
	if err := c.getJSON(ctx, path, nil, cfg.languageHeader(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
