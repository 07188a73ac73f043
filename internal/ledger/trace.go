package ledger

import "github.com/gabapcia/tracestream/internal/pkg/types"

// PermissionLevel is one (actor, permission) authorization of an action.
type PermissionLevel struct {
	Actor      string `json:"actor"`
	Permission string `json:"permission"`
}

// Action is a contract invocation: the contract account, the action name, the
// authorizations and the ABI-encoded payload.
type Action struct {
	Account       string            `json:"account"`
	Name          string            `json:"name"`
	Authorization []PermissionLevel `json:"authorization"`
	Data          types.HexBytes    `json:"hex_data"`
}

// AccountSequence is the per-account authorization counter recorded in a receipt.
type AccountSequence struct {
	Account  string `json:"account"`
	Sequence uint64 `json:"sequence"`
}

// ActionReceipt is the engine's receipt for one executed action.
//
// GlobalSequence is assigned once per executed action and strictly increases
// across the whole chain.
type ActionReceipt struct {
	Receiver       string            `json:"receiver"`
	ActDigest      string            `json:"act_digest"`
	GlobalSequence uint64            `json:"global_sequence"`
	RecvSequence   uint64            `json:"recv_sequence"`
	AuthSequence   []AccountSequence `json:"auth_sequence"`
	CodeSequence   uint32            `json:"code_sequence"`
	AbiSequence    uint32            `json:"abi_sequence"`
}

// ActionTrace is one node of a transaction's execution tree. InlineTraces holds
// the actions dispatched inline by this one, in dispatch order.
type ActionTrace struct {
	Receipt         *ActionReceipt  `json:"receipt"`
	Act             Action          `json:"act"`
	Elapsed         int64           `json:"elapsed"`
	CPUUsage        uint64          `json:"cpu_usage"`
	TotalCPUUsage   uint64          `json:"total_cpu_usage"`
	Console         string          `json:"console"`
	TrxID           string          `json:"trx_id"`
	BlockNum        uint32          `json:"block_num"`
	BlockTime       types.Timestamp `json:"block_time"`
	ProducerBlockID string          `json:"producer_block_id"`
	InlineTraces    []ActionTrace   `json:"inline_traces"`
}

// GlobalSequence returns the receipt's global sequence and false when the
// trace carries no receipt.
func (a *ActionTrace) GlobalSequence() (uint64, bool) {
	if a.Receipt == nil {
		return 0, false
	}

	return a.Receipt.GlobalSequence, true
}

// TransactionReceipt is the receipt header of an applied transaction.
type TransactionReceipt struct {
	Status        TransactionStatus `json:"status"`
	CPUUsageUS    uint32            `json:"cpu_usage_us"`
	NetUsageWords uint32            `json:"net_usage_words"`
}

// TransactionTrace is the execution trace delivered on transaction-applied.
// ActionTraces holds the top-level actions in transaction order.
type TransactionTrace struct {
	ID              string              `json:"id"`
	BlockNum        uint32              `json:"block_num"`
	BlockTime       types.Timestamp     `json:"block_time"`
	ProducerBlockID string              `json:"producer_block_id"`
	Receipt         *TransactionReceipt `json:"receipt"`
	Elapsed         int64               `json:"elapsed"`
	NetUsage        uint64              `json:"net_usage"`
	Scheduled       bool                `json:"scheduled"`
	Except          string              `json:"except,omitempty"`
	ActionTraces    []ActionTrace       `json:"action_traces"`
	FailedDtrxTrace *TransactionTrace   `json:"failed_dtrx_trace,omitempty"`
}
