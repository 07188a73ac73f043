// Package records defines the flat records published for every ledger
// notification and the mappers that build them from ledger snapshots.
//
// Records are grouped in two namespaces. The search namespace ("es") holds
// narrow, index-friendly summaries whose *_askey fields are meant to be
// indexed. The column namespace ("hbase") holds wide rows carrying the full
// snapshot detail, addressed by the same dedup keys the search records point at.
//
// Every record carries a dedup key, a produce timestamp in milliseconds and a
// primary key (see package recordkey). Optional fields are pointers tagged
// omitempty so that "not applicable" never travels as a zero value.
package records

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrNilSnapshot is returned by mappers when the ledger snapshot they receive
// is nil. It marks a malformed notification rather than a missing field.
var ErrNilSnapshot = errors.New("nil ledger snapshot")

// ErrIndexOutOfRange is returned when a block transaction index does not
// address a transaction of the block.
var ErrIndexOutOfRange = errors.New("transaction index out of range")

// Namespace groups record kinds that share a downstream store.
type Namespace string

const (
	NamespaceSearch Namespace = "es"
	NamespaceColumn Namespace = "hbase"
)

// Kind identifies a record schema. It determines the topic a record is
// published to.
type Kind struct {
	Namespace Namespace
	Name      string
}

var (
	KindBlockInfo       = Kind{NamespaceSearch, "BlockInfo"}
	KindTransactionInfo = Kind{NamespaceSearch, "TransactionInfo"}
	KindActionInfo      = Kind{NamespaceSearch, "ActionInfo"}
	KindTransferLog     = Kind{NamespaceSearch, "TransferLog"}
	KindSetcodeLog      = Kind{NamespaceSearch, "SetcodeLog"}
	KindSetabiLog       = Kind{NamespaceSearch, "SetabiLog"}
	KindTokenInfo       = Kind{NamespaceSearch, "TokenInfo"}
	KindIssueLog        = Kind{NamespaceSearch, "IssueLog"}

	KindBlockState          = Kind{NamespaceColumn, "BlockState"}
	KindTransactionTrace    = Kind{NamespaceColumn, "TransactionTrace"}
	KindTransactionMetadata = Kind{NamespaceColumn, "TransactionMetadata"}
	KindActionTrace         = Kind{NamespaceColumn, "ActionTrace"}
)

// String returns "<namespace>.<name>".
func (k Kind) String() string {
	return string(k.Namespace) + "." + k.Name
}

// Record is implemented by every published record.
type Record interface {
	// Kind returns the schema of the record.
	Kind() Kind

	// Key returns the dedup key, used verbatim as the broker message key.
	Key() string
}

// Header is embedded by every record.
type Header struct {
	DedupKey         string `json:"dedup_key"`
	ProduceTimestamp int64  `json:"produce_timestamp"`
}

// Key returns the dedup key.
func (h Header) Key() string {
	return h.DedupKey
}

func newHeader(now time.Time, dedupKey string) Header {
	return Header{
		DedupKey:         dedupKey,
		ProduceTimestamp: now.UnixMilli(),
	}
}

// namespaceSeparator joins the topic prefix, namespace and record name.
const namespaceSeparator = "."

// Topic returns the broker topic for records of kind k:
//
//	<prefix>.<namespace>.<name>
//
// The separator is reserved, so any "." inside the namespace token is removed
// before joining. An empty prefix yields "<namespace>.<name>".
func Topic(prefix string, k Kind) string {
	parts := make([]string, 0, 3)
	if prefix = strings.Trim(prefix, namespaceSeparator); prefix != "" {
		parts = append(parts, prefix)
	}

	if ns := strings.ReplaceAll(string(k.Namespace), namespaceSeparator, ""); ns != "" {
		parts = append(parts, ns)
	}

	return strings.Join(append(parts, k.Name), namespaceSeparator)
}

// encodeJSON renders v as a compact JSON string for side-channel fields such as
// id lists. Values passed here are plain slices and never fail to encode.
func encodeJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return string(data)
}

func ptr[T any](v T) *T {
	return &v
}
