package tonapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ServiceStatus reports the health of the indexing service.
type ServiceStatus struct {
	RestOnline      bool `json:"rest_online"`
	IndexingLatency int  `json:"indexing_latency"`
}

// BlockchainBlock is a block as stored in the blockchain.
type BlockchainBlock struct {
	WorkchainID             int32    `json:"workchain_id"`
	Shard                   string   `json:"shard"`
	Seqno                   int64    `json:"seqno"`
	RootHash                string   `json:"root_hash"`
	FileHash                string   `json:"file_hash"`
	GlobalID                int32    `json:"global_id"`
	Version                 int32    `json:"version"`
	AfterMerge              bool     `json:"after_merge"`
	BeforeSplit             bool     `json:"before_split"`
	AfterSplit              bool     `json:"after_split"`
	WantSplit               bool     `json:"want_split"`
	WantMerge               bool     `json:"want_merge"`
	KeyBlock                bool     `json:"key_block"`
	GenUtime                int64    `json:"gen_utime"`
	StartLT                 int64    `json:"start_lt"`
	EndLT                   int64    `json:"end_lt"`
	VertSeqno               int32    `json:"vert_seqno"`
	GenCatchainSeqno        int32    `json:"gen_catchain_seqno"`
	MinRefMcSeqno           int32    `json:"min_ref_mc_seqno"`
	PrevKeyBlockSeqno       int32    `json:"prev_key_block_seqno"`
	GenSoftwareVersion      *int32   `json:"gen_software_version,omitempty"`
	GenSoftwareCapabilities *int64   `json:"gen_software_capabilities,omitempty"`
	MasterRef               string   `json:"master_ref,omitempty"`
	PrevRefs                []string `json:"prev_refs"`
	InMsgDescrLength        int64    `json:"in_msg_descr_length"`
	OutMsgDescrLength       int64    `json:"out_msg_descr_length"`
	RandSeed                string   `json:"rand_seed"`
	CreatedBy               string   `json:"created_by"`
}

// BlockchainShards lists the shard blocks of one masterchain block.
type BlockchainShards struct {
	Shards []BlockchainBlock `json:"shards"`
}

// Transaction is a low-level blockchain transaction. Message bodies and
// execution phases are kept raw; their shape varies per transaction kind.
type Transaction struct {
	Hash            string          `json:"hash"`
	LT              int64           `json:"lt"`
	Account         AccountAddress  `json:"account"`
	Success         bool            `json:"success"`
	Utime           int64           `json:"utime"`
	OrigStatus      string          `json:"orig_status"`
	EndStatus       string          `json:"end_status"`
	TotalFees       int64           `json:"total_fees"`
	TransactionType string          `json:"transaction_type"`
	StateUpdateOld  string          `json:"state_update_old"`
	StateUpdateNew  string          `json:"state_update_new"`
	InMsg           json.RawMessage `json:"in_msg,omitempty"`
	OutMsgs         json.RawMessage `json:"out_msgs"`
	Block           string          `json:"block"`
	PrevTransHash   string          `json:"prev_trans_hash,omitempty"`
	PrevTransLT     int64           `json:"prev_trans_lt,omitempty"`
	ComputePhase    json.RawMessage `json:"compute_phase,omitempty"`
	StoragePhase    json.RawMessage `json:"storage_phase,omitempty"`
	CreditPhase     json.RawMessage `json:"credit_phase,omitempty"`
	ActionPhase     json.RawMessage `json:"action_phase,omitempty"`
	BouncePhase     json.RawMessage `json:"bounce_phase,omitempty"`
	Aborted         bool            `json:"aborted"`
	Destroyed       bool            `json:"destroyed"`
}

// Transactions is a list of transactions.
type Transactions struct {
	Transactions []Transaction `json:"transactions"`
}

// Validator is one blockchain validator.
type Validator struct {
	Address Address `json:"address"`
}

// Validators lists the blockchain validators.
type Validators struct {
	Validators []Validator `json:"validators"`
}

// AccountStorageInfo describes the on-chain storage usage of an account.
type AccountStorageInfo struct {
	UsedCells       int64 `json:"used_cells"`
	UsedBits        int64 `json:"used_bits"`
	UsedPublicCells int64 `json:"used_public_cells"`
	LastPaid        int64 `json:"last_paid"`
	DuePayment      int64 `json:"due_payment"`
}

// BlockchainRawAccount is low-level account state taken directly from
// the blockchain.
type BlockchainRawAccount struct {
	Address           Address            `json:"address"`
	Balance           int64              `json:"balance"`
	ExtraBalance      map[string]string  `json:"extra_balance,omitempty"`
	Code              string             `json:"code,omitempty"`
	Data              string             `json:"data,omitempty"`
	LastTransactionLT int64              `json:"last_transaction_lt"`
	Status            string             `json:"status"`
	Storage           AccountStorageInfo `json:"storage"`
}

// AccountInspectMethod is one get method exposed by a contract.
type AccountInspectMethod struct {
	ID     int64  `json:"id"`
	Method string `json:"method"`
}

// BlockchainAccountInspect is the result of disassembling an account's code.
type BlockchainAccountInspect struct {
	Code     string                 `json:"code"`
	CodeHash string                 `json:"code_hash"`
	Methods  []AccountInspectMethod `json:"methods"`
	Compiler string                 `json:"compiler,omitempty"`
}

// TvmStackRecord is one entry of a TVM execution stack.
type TvmStackRecord struct {
	Type  string           `json:"type"`
	Cell  string           `json:"cell,omitempty"`
	Slice string           `json:"slice,omitempty"`
	Num   string           `json:"num,omitempty"`
	Tuple []TvmStackRecord `json:"tuple,omitempty"`
}

// MethodExecutionResult is the outcome of executing a contract get method.
type MethodExecutionResult struct {
	Success  bool             `json:"success"`
	ExitCode int              `json:"exit_code"`
	Stack    []TvmStackRecord `json:"stack"`
	Decoded  json.RawMessage  `json:"decoded,omitempty"`
}

// Status reports whether the indexer is online and how far it lags
// behind the chain.
func (c *Client) Status(ctx context.Context) (*ServiceStatus, error) {
	var result ServiceStatus
	if err := c.getJSON(ctx, "v2/status", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMasterchainShards returns the shard blocks of a masterchain block.
func (c *Client) GetMasterchainShards(ctx context.Context, seqno int64) (*BlockchainShards, error) {
	path := fmt.Sprintf("v2/blockchain/masterchain/%d/shards", seqno)

	var result BlockchainShards
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBlock returns block data. The block ID has the form
// "(workchain,shard,seqno)".
func (c *Client) GetBlock(ctx context.Context, blockID string) (*BlockchainBlock, error) {
	path := fmt.Sprintf("v2/blockchain/blocks/%s", url.PathEscape(blockID))

	var result BlockchainBlock
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBlockTransactions returns the transactions of a block.
func (c *Client) GetBlockTransactions(ctx context.Context, blockID string) (*Transactions, error) {
	path := fmt.Sprintf("v2/blockchain/blocks/%s/transactions", url.PathEscape(blockID))

	var result Transactions
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTransaction returns transaction data by transaction hash.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*Transaction, error) {
	path := fmt.Sprintf("v2/blockchain/transactions/%s", url.PathEscape(transactionID))

	var result Transaction
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetTransactionByMessage returns the transaction caused by a message,
// looked up by message hash.
func (c *Client) GetTransactionByMessage(ctx context.Context, msgID string) (*Transaction, error) {
	path := fmt.Sprintf("v2/blockchain/messages/%s/transaction", url.PathEscape(msgID))

	var result Transaction
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetValidators returns the blockchain validators.
func (c *Client) GetValidators(ctx context.Context) (*Validators, error) {
	var result Validators
	if err := c.getJSON(ctx, "v2/blockchain/validators", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMasterchainHead returns the last known masterchain block.
func (c *Client) GetMasterchainHead(ctx context.Context) (*BlockchainBlock, error) {
	var result BlockchainBlock
	if err := c.getJSON(ctx, "v2/blockchain/masterchain-head", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRawAccount returns low-level account state taken directly from
// the blockchain.
func (c *Client) GetRawAccount(ctx context.Context, accountID string) (*BlockchainRawAccount, error) {
	path := fmt.Sprintf("v2/blockchain/accounts/%s", url.PathEscape(accountID))

	var result BlockchainRawAccount
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAccountTransactions returns the transactions of an account, paged by
// logical time. Honors WithLimit, WithBeforeLT and WithAfterLT.
func (c *Client) GetAccountTransactions(ctx context.Context, accountID string, opts ...QueryOption) (*Transactions, error) {
	cfg := newQueryConfig(100, opts)
	path := fmt.Sprintf("v2/blockchain/accounts/%s/transactions", url.PathEscape(accountID))

	query := url.Values{}
	query.Set("limit", strconv.Itoa(cfg.limit))
	query.Set("before_lt", strconv.FormatInt(cfg.beforeLT, 10))
	if cfg.afterLT > 0 {
		query.Set("after_lt", strconv.FormatInt(cfg.afterLT, 10))
	}

	var result Transactions
	if err := c.getJSON(ctx, path, query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// InspectAccount disassembles an account's code and lists its get methods.
func (c *Client) InspectAccount(ctx context.Context, accountID string) (*BlockchainAccountInspect, error) {
	path := fmt.Sprintf("v2/blockchain/accounts/%s/inspect", url.PathEscape(accountID))

	var result BlockchainAccountInspect
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExecGetMethod executes a get method on a contract. args, when not
// empty, is passed verbatim as the method arguments.
func (c *Client) ExecGetMethod(ctx context.Context, accountID, methodName, args string) (*MethodExecutionResult, error) {
	path := fmt.Sprintf("v2/blockchain/accounts/%s/methods/%s",
		url.PathEscape(accountID), url.PathEscape(methodName))

	query := url.Values{}
	if args != "" {
		query.Set("args", args)
	}

	var result MethodExecutionResult
	if err := c.getJSON(ctx, path, query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
