package records

import (
	"fmt"
	"time"

	"github.com/gabapcia/tracestream/internal/ledger"
	"github.com/gabapcia/tracestream/internal/pkg/types"
	"github.com/gabapcia/tracestream/internal/recordkey"
)

// BlockState is the wide row of a block delivery. It shares its dedup key with
// the BlockInfo of the same delivery.
type BlockState struct {
	Header
	PrimaryKey   string `json:"primary_key"`
	BlockNum     uint32 `json:"block_num"`
	Irreversible bool   `json:"irreversible"`
	BlockHeader  string `json:"block_header"`
	Transactions string `json:"transactions"`
}

func (BlockState) Kind() Kind { return KindBlockState }

// TransactionTraceRow is the wide row of an applied transaction.
type TransactionTraceRow struct {
	Header
	PrimaryKey      string          `json:"primary_key"`
	BlockNum        uint32          `json:"block_num"`
	BlockTime       types.Timestamp `json:"block_time"`
	ProducerBlockID *string         `json:"producer_block_id,omitempty"`
	Receipt         *string         `json:"receipt,omitempty"`
	Elapsed         int64           `json:"elapsed"`
	NetUsage        uint64          `json:"net_usage"`
	Scheduled       bool            `json:"scheduled"`
	ActionTraces    string          `json:"action_traces"`
	Except          *string         `json:"except,omitempty"`
	FailedDtrxTrace *string         `json:"failed_dtrx_trace,omitempty"`
}

func (TransactionTraceRow) Kind() Kind { return KindTransactionTrace }

// TransactionMetadata is the wide row of one transaction carried by a block
// delivery. Trx is the JSON of the signed transaction, unset for id-only
// references.
type TransactionMetadata struct {
	Header
	PrimaryKey    string                   `json:"primary_key"`
	BlockID       string                   `json:"block_id"`
	BlockNum      uint32                   `json:"block_num"`
	Irreversible  bool                     `json:"irreversible"`
	Status        ledger.TransactionStatus `json:"status"`
	CPUUsageUS    uint32                   `json:"cpu_usage_us"`
	NetUsageWords uint32                   `json:"net_usage_words"`
	Trx           *string                  `json:"trx,omitempty"`
}

func (TransactionMetadata) Kind() Kind { return KindTransactionMetadata }

// ActionTraceRow is the wide row of one action node. Parent holds the dedup key
// of the dispatching action's row and is nil for top-level actions.
type ActionTraceRow struct {
	Header
	PrimaryKey      uint64          `json:"primary_key"`
	Parent          *string         `json:"parent,omitempty"`
	Receipt         *string         `json:"receipt,omitempty"`
	Act             string          `json:"act"`
	Authorization   string          `json:"authorization"`
	Elapsed         int64           `json:"elapsed"`
	CPUUsage        uint64          `json:"cpu_usage"`
	TotalCPUUsage   uint64          `json:"total_cpu_usage"`
	Console         string          `json:"console"`
	TrxID           string          `json:"trx_id"`
	BlockNum        uint32          `json:"block_num"`
	BlockTime       types.Timestamp `json:"block_time"`
	ProducerBlockID string          `json:"producer_block_id"`
	InlineTraceNum  int             `json:"inline_trace_num"`
	InlineActions   string          `json:"inline_actions"`
}

func (ActionTraceRow) Kind() Kind { return KindActionTrace }

// blockHeader is the header part of a block, without its transactions.
type blockHeader struct {
	ID                string                  `json:"id"`
	Previous          string                  `json:"previous"`
	Producer          string                  `json:"producer"`
	Timestamp         types.Timestamp         `json:"timestamp"`
	ProducerSignature string                  `json:"producer_signature"`
	SigningKey        string                  `json:"block_signing_key"`
	SigDigest         string                  `json:"sig_digest"`
	TransactionMRoot  string                  `json:"transaction_mroot"`
	ActionMRoot       string                  `json:"action_mroot"`
	ScheduleVersion   uint32                  `json:"schedule_version"`
	Confirmed         uint16                  `json:"confirmed"`
	Extensions        []ledger.BlockExtension `json:"block_extensions,omitempty"`
}

// MapBlockState builds the BlockState row of a block delivery.
func MapBlockState(now time.Time, block *ledger.Block, irreversible bool) (BlockState, error) {
	if block == nil {
		return BlockState{}, ErrNilSnapshot
	}

	keys := recordkey.Block(block.ID, irreversible)

	return BlockState{
		Header:       newHeader(now, keys.Dedup),
		PrimaryKey:   keys.Primary,
		BlockNum:     block.Number,
		Irreversible: irreversible,
		BlockHeader: encodeJSON(blockHeader{
			ID:                block.ID,
			Previous:          block.Previous,
			Producer:          block.Producer,
			Timestamp:         block.Timestamp,
			ProducerSignature: block.ProducerSignature,
			SigningKey:        block.SigningKey,
			SigDigest:         block.SigDigest,
			TransactionMRoot:  block.TransactionMRoot,
			ActionMRoot:       block.ActionMRoot,
			ScheduleVersion:   block.ScheduleVersion,
			Confirmed:         block.Confirmed,
			Extensions:        block.Extensions,
		}),
		Transactions: encodeJSON(blockTransactions(block.Transactions)),
	}, nil
}

// MapTransactionMetadata builds the wide row of the index-th transaction of a
// block delivery.
func MapTransactionMetadata(now time.Time, block *ledger.Block, index int, irreversible bool) (TransactionMetadata, error) {
	if block == nil {
		return TransactionMetadata{}, ErrNilSnapshot
	}

	if index < 0 || index >= len(block.Transactions) {
		return TransactionMetadata{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(block.Transactions))
	}

	var (
		trx  = block.Transactions[index]
		keys = recordkey.BlockTransaction(block.ID, trx.ID, irreversible)
	)

	row := TransactionMetadata{
		Header:        newHeader(now, keys.Dedup),
		PrimaryKey:    keys.Primary,
		BlockID:       block.ID,
		BlockNum:      block.Number,
		Irreversible:  irreversible,
		Status:        trx.Status,
		CPUUsageUS:    trx.CPUUsageUS,
		NetUsageWords: trx.NetUsageWords,
	}

	if trx.Signed != nil {
		row.Trx = ptr(encodeJSON(trx.Signed))
	}

	return row, nil
}

// MapTransactionTraceRow builds the wide row of an applied transaction.
// ActionTraces lists the top-level global sequences; the action rows
// themselves are published separately.
func MapTransactionTraceRow(now time.Time, trace *ledger.TransactionTrace) (TransactionTraceRow, error) {
	if trace == nil {
		return TransactionTraceRow{}, ErrNilSnapshot
	}

	keys := recordkey.TransactionTrace(trace.ID)

	row := TransactionTraceRow{
		Header:       newHeader(now, keys.Dedup),
		PrimaryKey:   keys.Primary,
		BlockNum:     trace.BlockNum,
		BlockTime:    trace.BlockTime,
		Elapsed:      trace.Elapsed,
		NetUsage:     trace.NetUsage,
		Scheduled:    trace.Scheduled,
		ActionTraces: encodeJSON(globalSequences(trace.ActionTraces)),
	}

	if trace.ProducerBlockID != "" {
		row.ProducerBlockID = ptr(trace.ProducerBlockID)
	}

	if trace.Receipt != nil {
		row.Receipt = ptr(encodeJSON(trace.Receipt))
	}

	if trace.Except != "" {
		row.Except = ptr(trace.Except)
	}

	if trace.FailedDtrxTrace != nil {
		row.FailedDtrxTrace = ptr(trace.FailedDtrxTrace.ID)
	}

	return row, nil
}

// MapActionTraceRow builds the wide row of one action node. parentKey is the
// dedup key of the dispatching action's row, empty for top-level actions.
func MapActionTraceRow(now time.Time, scope Scope, node *ledger.ActionTrace, parentKey string) (ActionTraceRow, error) {
	if node == nil {
		return ActionTraceRow{}, ErrNilSnapshot
	}

	seq, _ := node.GlobalSequence()
	keys := recordkey.Action(scope.TransactionID, seq)

	row := ActionTraceRow{
		Header:          newHeader(now, keys.Dedup),
		PrimaryKey:      keys.Primary,
		Act:             encodeJSON(node.Act),
		Authorization:   encodeJSON(node.Act.Authorization),
		Elapsed:         node.Elapsed,
		CPUUsage:        node.CPUUsage,
		TotalCPUUsage:   node.TotalCPUUsage,
		Console:         node.Console,
		TrxID:           scope.TransactionID,
		BlockNum:        scope.BlockNum,
		BlockTime:       scope.BlockTime,
		ProducerBlockID: scope.BlockID,
		InlineTraceNum:  len(node.InlineTraces),
		InlineActions:   encodeJSON(globalSequences(node.InlineTraces)),
	}

	if parentKey != "" {
		row.Parent = ptr(parentKey)
	}

	if node.Receipt != nil {
		row.Receipt = ptr(encodeJSON(node.Receipt))
	}

	return row, nil
}

// blockTransactions never returns nil so that an empty block encodes as [].
func blockTransactions(trxs []ledger.BlockTransaction) []ledger.BlockTransaction {
	if trxs == nil {
		return []ledger.BlockTransaction{}
	}

	return trxs
}
