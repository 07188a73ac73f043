// Package recordkey assigns deduplication and primary keys to every record the
// pipeline emits.
//
// A dedup key identifies one logical delivery and is used as the broker
// message key. A primary key addresses the row or document in downstream
// storage and may repeat across deliveries of the same entity (for example a
// block seen first as reversible and later as irreversible).
//
// Key shapes:
//
//	block              dedup = <block id><T|F>            primary = <block id>
//	block transaction  dedup = <block id><T|F><trx id>    primary = <trx id>
//	transaction trace  dedup = <trx id>                   primary = <trx id>
//	action and logs    dedup = <trx id><le-hex(gseq)>     primary = gseq
//
// where T marks an irreversible delivery, F a reversible one, and le-hex is
// types.Uint64LEHex. All functions are pure.
package recordkey

import "github.com/gabapcia/tracestream/internal/pkg/types"

const (
	irreversibleFlag = "T"
	reversibleFlag   = "F"
)

// Keys holds the keys of a record addressed by a chain identifier string.
type Keys struct {
	Dedup   string
	Primary string
}

// ActionKeys holds the keys of an action-scoped record, addressed by the
// action's global sequence.
type ActionKeys struct {
	Dedup   string
	Primary uint64
}

// FinalityFlag returns "T" for irreversible deliveries and "F" otherwise.
func FinalityFlag(irreversible bool) string {
	if irreversible {
		return irreversibleFlag
	}

	return reversibleFlag
}

// Block returns the keys of a block record.
func Block(blockID string, irreversible bool) Keys {
	return Keys{
		Dedup:   blockID + FinalityFlag(irreversible),
		Primary: blockID,
	}
}

// BlockTransaction returns the keys of a transaction record derived from a
// block notification.
func BlockTransaction(blockID, trxID string, irreversible bool) Keys {
	return Keys{
		Dedup:   blockID + FinalityFlag(irreversible) + trxID,
		Primary: trxID,
	}
}

// TransactionTrace returns the keys of a transaction record derived from a
// transaction-applied notification.
func TransactionTrace(trxID string) Keys {
	return Keys{
		Dedup:   trxID,
		Primary: trxID,
	}
}

// Action returns the keys of an action record, and of every log record
// derived from that action.
func Action(trxID string, globalSequence uint64) ActionKeys {
	return ActionKeys{
		Dedup:   trxID + types.Uint64LEHex(globalSequence),
		Primary: globalSequence,
	}
}
