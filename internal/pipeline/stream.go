package pipeline

import (
	"fmt"

	"github.com/gabapcia/tracestream/internal/pkg/types"
	"github.com/gabapcia/tracestream/internal/records"
)

// Stream names one kind of notification that can be switched on or off.
type Stream string

const (
	StreamAcceptedBlock      Stream = "accepted_block"
	StreamIrreversibleBlock  Stream = "irreversible_block"
	StreamAppliedTransaction Stream = "applied_transaction"
)

// DefaultStreams returns the streams enabled when none are configured.
func DefaultStreams() types.Set[Stream] {
	return types.NewSet(StreamAcceptedBlock, StreamIrreversibleBlock, StreamAppliedTransaction)
}

// DefaultFamilies returns the record namespaces published when none are
// configured.
func DefaultFamilies() types.Set[records.Namespace] {
	return types.NewSet(records.NamespaceSearch)
}

// ParseStream validates a stream name.
func ParseStream(s string) (Stream, error) {
	switch st := Stream(s); st {
	case StreamAcceptedBlock, StreamIrreversibleBlock, StreamAppliedTransaction:
		return st, nil
	default:
		return "", fmt.Errorf("unknown stream %q", s)
	}
}

// ParseFamily validates a record namespace name.
func ParseFamily(s string) (records.Namespace, error) {
	switch ns := records.Namespace(s); ns {
	case records.NamespaceSearch, records.NamespaceColumn:
		return ns, nil
	default:
		return "", fmt.Errorf("unknown schema family %q", s)
	}
}

func (k NotificationKind) stream() Stream {
	switch k {
	case NotificationBlockAccepted:
		return StreamAcceptedBlock
	case NotificationBlockIrreversible:
		return StreamIrreversibleBlock
	case NotificationTransactionApplied:
		return StreamAppliedTransaction
	default:
		return ""
	}
}
