package records

import (
	"fmt"
	"time"

	"github.com/gabapcia/tracestream/internal/ledger"
	"github.com/gabapcia/tracestream/internal/pkg/types"
	"github.com/gabapcia/tracestream/internal/recordkey"
)

// Scope is the transaction context shared by every action of one applied
// transaction.
type Scope struct {
	TransactionID string
	BlockID       string
	BlockNum      uint32
	BlockTime     types.Timestamp
}

// ScopeOf returns the action scope of an applied transaction.
func ScopeOf(trace *ledger.TransactionTrace) (Scope, error) {
	if trace == nil {
		return Scope{}, ErrNilSnapshot
	}

	return Scope{
		TransactionID: trace.ID,
		BlockID:       trace.ProducerBlockID,
		BlockNum:      trace.BlockNum,
		BlockTime:     trace.BlockTime,
	}, nil
}

// MapBlock builds the BlockInfo of a block delivery.
func MapBlock(now time.Time, block *ledger.Block, irreversible bool) (BlockInfo, error) {
	if block == nil {
		return BlockInfo{}, ErrNilSnapshot
	}

	keys := recordkey.Block(block.ID, irreversible)

	trxIDs := make([]string, 0, len(block.Transactions))
	for _, trx := range block.Transactions {
		trxIDs = append(trxIDs, trx.ID)
	}

	return BlockInfo{
		Header:            newHeader(now, keys.Dedup),
		PrimaryKey:        keys.Primary,
		BlockID:           block.ID,
		Previous:          block.Previous,
		BlockNum:          block.Number,
		SigningKey:        block.SigningKey,
		SigDigest:         block.SigDigest,
		TrxsNum:           len(block.Transactions),
		Timestamp:         block.Timestamp,
		Producer:          block.Producer,
		TransactionMRoot:  block.TransactionMRoot,
		ActionMRoot:       block.ActionMRoot,
		ScheduleVersion:   block.ScheduleVersion,
		ProducerSignature: block.ProducerSignature,
		Trxs:              encodeJSON(trxIDs),
		Irreversible:      irreversible,
		BlockStateKey:     keys.Dedup,
	}, nil
}

// MapBlockTransaction builds the TransactionInfo of the index-th transaction
// of a block delivery.
//
// Signing fields are only set when the block carries the fully signed
// transaction; for id-only references they stay nil.
func MapBlockTransaction(now time.Time, block *ledger.Block, index int, irreversible bool) (TransactionInfo, error) {
	if block == nil {
		return TransactionInfo{}, ErrNilSnapshot
	}

	if index < 0 || index >= len(block.Transactions) {
		return TransactionInfo{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(block.Transactions))
	}

	var (
		trx  = block.Transactions[index]
		keys = recordkey.BlockTransaction(block.ID, trx.ID, irreversible)
	)

	info := TransactionInfo{
		Header:                 newHeader(now, keys.Dedup),
		PrimaryKey:             keys.Primary,
		TransactionID:          trx.ID,
		BlockID:                ptr(block.ID),
		BlockNum:               ptr(block.Number),
		Status:                 ptr(trx.Status),
		CPUUsageUS:             ptr(trx.CPUUsageUS),
		NetUsageWords:          ptr(trx.NetUsageWords),
		TransactionMetadataKey: ptr(keys.Dedup),
	}

	if trx.SignedID != "" {
		info.SignedID = ptr(trx.SignedID)
	}

	if irreversible {
		info.Irreversible = ptr(true)
	}

	if signed := trx.Signed; signed != nil {
		info.Expiration = ptr(signed.Expiration)
		info.RefBlockNum = ptr(signed.RefBlockNum)
		info.RefBlockPrefix = ptr(signed.RefBlockPrefix)
		info.MaxNetUsageWords = ptr(signed.MaxNetUsageWords)
		info.MaxCPUUsageMS = ptr(signed.MaxCPUUsageMS)
		info.DelaySec = ptr(signed.DelaySec)

		if actor, ok := signed.FirstAuthorizer(); ok {
			info.FirstAuthorizer = ptr(actor)
		}
	}

	return info, nil
}

// MapTransactionTrace builds the TransactionInfo of an applied transaction.
// Actions is the JSON array of the top-level actions' global sequences.
func MapTransactionTrace(now time.Time, trace *ledger.TransactionTrace) (TransactionInfo, error) {
	if trace == nil {
		return TransactionInfo{}, ErrNilSnapshot
	}

	keys := recordkey.TransactionTrace(trace.ID)

	info := TransactionInfo{
		Header:              newHeader(now, keys.Dedup),
		PrimaryKey:          keys.Primary,
		TransactionID:       trace.ID,
		BlockNum:            ptr(trace.BlockNum),
		Elapsed:             ptr(trace.Elapsed),
		NetUsage:            ptr(trace.NetUsage),
		Scheduled:           ptr(trace.Scheduled),
		ActionTraceNum:      ptr(len(trace.ActionTraces)),
		Actions:             ptr(encodeJSON(globalSequences(trace.ActionTraces))),
		TransactionTraceKey: ptr(keys.Dedup),
	}

	if trace.ProducerBlockID != "" {
		info.BlockID = ptr(trace.ProducerBlockID)
	}

	if receipt := trace.Receipt; receipt != nil {
		info.Status = ptr(receipt.Status)
		info.CPUUsageUS = ptr(receipt.CPUUsageUS)
		info.NetUsageWords = ptr(receipt.NetUsageWords)
	}

	return info, nil
}

// MapAction builds the ActionInfo of one action node. parent is the primary key
// of the dispatching action, nil for top-level actions.
//
// A node without receipt is keyed with global sequence zero and its receipt
// fields are left unset.
func MapAction(now time.Time, scope Scope, node *ledger.ActionTrace, parent *uint64) (ActionInfo, error) {
	if node == nil {
		return ActionInfo{}, ErrNilSnapshot
	}

	seq, _ := node.GlobalSequence()
	keys := recordkey.Action(scope.TransactionID, seq)

	info := ActionInfo{
		Header:          newHeader(now, keys.Dedup),
		PrimaryKey:      keys.Primary,
		Parent:          parent,
		Elapsed:         node.Elapsed,
		CPUUsage:        node.CPUUsage,
		TotalCPUUsage:   node.TotalCPUUsage,
		TrxID:           scope.TransactionID,
		ProducerBlockID: scope.BlockID,
		BlockNum:        scope.BlockNum,
		BlockTime:       scope.BlockTime,
		InlineTraceNum:  len(node.InlineTraces),
		Account:         node.Act.Account,
		Name:            node.Act.Name,
		Data:            node.Act.Data,
		InlineActions:   encodeJSON(globalSequences(node.InlineTraces)),
		ActionTraceKey:  keys.Dedup,
	}

	if receipt := node.Receipt; receipt != nil {
		info.Receiver = ptr(receipt.Receiver)
		info.ActDigest = ptr(receipt.ActDigest)
		info.GlobalSequence = ptr(receipt.GlobalSequence)
		info.RecvSequence = ptr(receipt.RecvSequence)
		info.CodeSequence = ptr(receipt.CodeSequence)
		info.AbiSequence = ptr(receipt.AbiSequence)
	}

	return info, nil
}

// NewActionLog builds the common part of a record derived from node's payload.
func NewActionLog(now time.Time, scope Scope, node *ledger.ActionTrace) (ActionLog, error) {
	if node == nil {
		return ActionLog{}, ErrNilSnapshot
	}

	seq, _ := node.GlobalSequence()
	keys := recordkey.Action(scope.TransactionID, seq)

	return ActionLog{
		Header:         newHeader(now, keys.Dedup),
		PrimaryKey:     keys.Primary,
		BlockID:        scope.BlockID,
		BlockNum:       scope.BlockNum,
		BlockTime:      scope.BlockTime,
		TransactionID:  scope.TransactionID,
		GlobalSequence: seq,
		ActionTraceKey: keys.Dedup,
	}, nil
}

// globalSequences lists the global sequences of traces in order. Traces
// without receipt are listed as zero to keep positions aligned.
func globalSequences(traces []ledger.ActionTrace) []uint64 {
	seqs := make([]uint64, 0, len(traces))
	for i := range traces {
		seq, _ := traces[i].GlobalSequence()
		seqs = append(seqs, seq)
	}

	return seqs
}
