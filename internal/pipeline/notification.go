package pipeline

import (
	"context"

	"github.com/gabapcia/tracestream/internal/ledger"
)

// NotificationKind identifies the engine signal a notification was raised by.
type NotificationKind uint8

const (
	NotificationUnknown NotificationKind = iota
	NotificationBlockAccepted
	NotificationBlockIrreversible
	NotificationTransactionApplied
)

func (k NotificationKind) String() string {
	switch k {
	case NotificationBlockAccepted:
		return "block_accepted"
	case NotificationBlockIrreversible:
		return "block_irreversible"
	case NotificationTransactionApplied:
		return "transaction_applied"
	default:
		return "unknown"
	}
}

// Notification is one signal delivered by the ledger engine. Block is set for
// block notifications and Trace for transaction-applied ones.
type Notification struct {
	Kind  NotificationKind
	Block *ledger.Block
	Trace *ledger.TransactionTrace
}

// Source delivers the engine's notifications in the order they were raised.
type Source interface {
	// Subscribe starts the delivery of notifications for blocks from
	// fromBlock onwards. A zero fromBlock means the current head.
	//
	// The returned channel is closed when the subscription ends, either
	// because ctx was canceled or the feed was lost.
	Subscribe(ctx context.Context, fromBlock uint32) (<-chan Notification, error)
}

// Handler reacts to the engine's signals. Every method runs one notification
// to completion before returning.
type Handler interface {
	// OnBlockAccepted publishes the records of a block that was just added to
	// the fork database.
	OnBlockAccepted(ctx context.Context, block *ledger.Block) error

	// OnBlockIrreversible publishes the records of a block that became final
	// and records it as the last irreversible block.
	OnBlockIrreversible(ctx context.Context, block *ledger.Block) error

	// OnTransactionApplied publishes the records of an applied transaction,
	// one per node of its action tree plus every derived log.
	OnTransactionApplied(ctx context.Context, trace *ledger.TransactionTrace) error
}
