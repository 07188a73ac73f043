package records

import (
	"github.com/gabapcia/tracestream/internal/ledger"
	"github.com/gabapcia/tracestream/internal/pkg/types"
)

// BlockInfo summarizes a block. Trxs is the JSON array of the block's
// transaction ids, in block order.
type BlockInfo struct {
	Header
	PrimaryKey        string          `json:"primary_key"`
	BlockID           string          `json:"block_id_askey"`
	Previous          string          `json:"previous_askey"`
	BlockNum          uint32          `json:"block_num_askey"`
	SigningKey        string          `json:"block_signing_key"`
	SigDigest         string          `json:"sig_digest"`
	TrxsNum           int             `json:"trxs_num"`
	Timestamp         types.Timestamp `json:"timestamp"`
	Producer          string          `json:"producer"`
	TransactionMRoot  string          `json:"transaction_mroot"`
	ActionMRoot       string          `json:"action_mroot"`
	ScheduleVersion   uint32          `json:"schedule_version"`
	ProducerSignature string          `json:"producer_signature"`
	Trxs              string          `json:"trxs"`
	Irreversible      bool            `json:"irreversible"`
	BlockStateKey     string          `json:"block_state_key"`
}

func (BlockInfo) Kind() Kind { return KindBlockInfo }

// TransactionInfo summarizes a transaction. It is built either from a block
// notification (one per contained transaction) or from a transaction-applied
// notification; fields that only one source knows are left unset by the other.
type TransactionInfo struct {
	Header
	PrimaryKey             string                    `json:"primary_key"`
	TransactionID          string                    `json:"transaction_id_askey"`
	SignedID               *string                   `json:"signed_id_askey,omitempty"`
	BlockID                *string                   `json:"block_id_askey,omitempty"`
	BlockNum               *uint32                   `json:"block_num_askey,omitempty"`
	Elapsed                *int64                    `json:"elapsed,omitempty"`
	NetUsage               *uint64                   `json:"net_usage,omitempty"`
	Scheduled              *bool                     `json:"scheduled,omitempty"`
	ActionTraceNum         *int                      `json:"action_trace_num,omitempty"`
	Status                 *ledger.TransactionStatus `json:"status,omitempty"`
	CPUUsageUS             *uint32                   `json:"cpu_usage_us,omitempty"`
	NetUsageWords          *uint32                   `json:"net_usage_words,omitempty"`
	Expiration             *types.Timestamp          `json:"expiration,omitempty"`
	RefBlockNum            *uint16                   `json:"ref_block_num,omitempty"`
	RefBlockPrefix         *uint32                   `json:"ref_block_prefix,omitempty"`
	MaxNetUsageWords       *uint32                   `json:"max_net_usage_words,omitempty"`
	MaxCPUUsageMS          *uint8                    `json:"max_cpu_usage_ms,omitempty"`
	DelaySec               *uint32                   `json:"delay_sec,omitempty"`
	FirstAuthorizer        *string                   `json:"first_authorizer,omitempty"`
	Actions                *string                   `json:"actions,omitempty"`
	Irreversible           *bool                     `json:"irreversible,omitempty"`
	TransactionTraceKey    *string                   `json:"transaction_trace_key,omitempty"`
	TransactionMetadataKey *string                   `json:"transaction_metadata_key,omitempty"`
}

func (TransactionInfo) Kind() Kind { return KindTransactionInfo }

// ActionInfo summarizes one executed action. Parent holds the primary key
// (global sequence) of the action that dispatched this one inline and is nil
// for top-level actions. InlineActions is the JSON array of the direct
// children's global sequences.
type ActionInfo struct {
	Header
	PrimaryKey      uint64          `json:"primary_key"`
	Parent          *uint64         `json:"parent,omitempty"`
	Elapsed         int64           `json:"elapsed"`
	CPUUsage        uint64          `json:"cpu_usage"`
	TotalCPUUsage   uint64          `json:"total_cpu_usage"`
	TrxID           string          `json:"trx_id_askey"`
	ProducerBlockID string          `json:"producer_block_id_askey"`
	BlockNum        uint32          `json:"block_num_askey"`
	BlockTime       types.Timestamp `json:"block_time"`
	InlineTraceNum  int             `json:"inline_trace_num"`
	Receiver        *string         `json:"receiver_askey,omitempty"`
	ActDigest       *string         `json:"act_digest,omitempty"`
	GlobalSequence  *uint64         `json:"global_sequence,omitempty"`
	RecvSequence    *uint64         `json:"recv_sequence,omitempty"`
	CodeSequence    *uint32         `json:"code_sequence,omitempty"`
	AbiSequence     *uint32         `json:"abi_sequence,omitempty"`
	Account         string          `json:"account_askey"`
	Name            string          `json:"name_askey"`
	Data            types.HexBytes  `json:"data"`
	InlineActions   string          `json:"inline_actions"`
	ActionTraceKey  string          `json:"action_trace_key"`
}

func (ActionInfo) Kind() Kind { return KindActionInfo }

// ActionLog is the part shared by every record derived from an action payload:
// where the action ran and which action produced it.
type ActionLog struct {
	Header
	PrimaryKey     uint64          `json:"primary_key"`
	BlockID        string          `json:"block_id"`
	BlockNum       uint32          `json:"block_num"`
	BlockTime      types.Timestamp `json:"block_time"`
	TransactionID  string          `json:"transaction_id"`
	GlobalSequence uint64          `json:"global_sequence"`
	ActionTraceKey string          `json:"action_trace_key"`
}

// TransferLog records an eosio.token transfer.
type TransferLog struct {
	ActionLog
	From        string  `json:"from_askey"`
	To          string  `json:"to_askey"`
	Amount      float64 `json:"amount"`
	TokenSymbol string  `json:"token_symbol_askey"`
	Memo        *string `json:"memo,omitempty"`
}

func (TransferLog) Kind() Kind { return KindTransferLog }

// SetcodeLog records a contract code deployment.
type SetcodeLog struct {
	ActionLog
	Account   string         `json:"account_askey"`
	VMType    *uint8         `json:"vmtype,omitempty"`
	VMVersion *uint8         `json:"vmversion,omitempty"`
	Code      types.HexBytes `json:"code"`
}

func (SetcodeLog) Kind() Kind { return KindSetcodeLog }

// SetabiLog records a contract ABI update.
type SetabiLog struct {
	ActionLog
	Account string         `json:"account_askey"`
	Abi     types.HexBytes `json:"abi"`
}

func (SetabiLog) Kind() Kind { return KindSetabiLog }

// TokenInfo records the creation of a token.
type TokenInfo struct {
	ActionLog
	Issuer      string  `json:"issuer_askey"`
	TotalAmount float64 `json:"total_amount"`
	TokenSymbol string  `json:"token_symbol_askey"`
}

func (TokenInfo) Kind() Kind { return KindTokenInfo }

// IssueLog records the issuance of an existing token.
type IssueLog struct {
	ActionLog
	To          string  `json:"to"`
	Amount      float64 `json:"amount"`
	TokenSymbol string  `json:"token_symbol_askey"`
	Memo        string  `json:"memo"`
}

func (IssueLog) Kind() Kind { return KindIssueLog }
