// Package ledger defines the snapshots the ledger engine hands to its
// observers: accepted or irreversible blocks and applied transaction traces.
//
// The types mirror the engine's JSON variant naming so that a notification
// feed can decode them directly. They are read-only inputs: nothing in this
// repository mutates or retains a snapshot after a notification returns.
package ledger

import "github.com/gabapcia/tracestream/internal/pkg/types"

// Block is a produced block as observed on block-accepted and
// block-irreversible notifications. Transactions are kept in block order.
type Block struct {
	ID                string             `json:"id"`
	Previous          string             `json:"previous"`
	Number            uint32             `json:"block_num"`
	Producer          string             `json:"producer"`
	Timestamp         types.Timestamp    `json:"timestamp"`
	ProducerSignature string             `json:"producer_signature"`
	SigningKey        string             `json:"block_signing_key"`
	SigDigest         string             `json:"sig_digest"`
	TransactionMRoot  string             `json:"transaction_mroot"`
	ActionMRoot       string             `json:"action_mroot"`
	ScheduleVersion   uint32             `json:"schedule_version"`
	Confirmed         uint16             `json:"confirmed"`
	Transactions      []BlockTransaction `json:"transactions"`
	Extensions        []BlockExtension   `json:"block_extensions,omitempty"`
}

// BlockExtension is an opaque (type, data) pair carried by a block header.
type BlockExtension struct {
	Type uint16         `json:"type"`
	Data types.HexBytes `json:"data"`
}

// TransactionStatus is the receipt status of a transaction.
type TransactionStatus string

const (
	TransactionStatusExecuted TransactionStatus = "executed"
	TransactionStatusSoftFail TransactionStatus = "soft_fail"
	TransactionStatusHardFail TransactionStatus = "hard_fail"
	TransactionStatusDelayed  TransactionStatus = "delayed"
	TransactionStatusExpired  TransactionStatus = "expired"
)

// BlockTransaction is one transaction receipt inside a block.
//
// Signed is nil when the block only references the transaction by id, which
// happens when a previously deferred transaction is executed in this block.
type BlockTransaction struct {
	ID            string             `json:"id"`
	SignedID      string             `json:"signed_id,omitempty"`
	Status        TransactionStatus  `json:"status"`
	CPUUsageUS    uint32             `json:"cpu_usage_us"`
	NetUsageWords uint32             `json:"net_usage_words"`
	Signed        *SignedTransaction `json:"trx,omitempty"`
}

// SignedTransaction is the fully signed form of a transaction.
type SignedTransaction struct {
	Expiration         types.Timestamp  `json:"expiration"`
	RefBlockNum        uint16           `json:"ref_block_num"`
	RefBlockPrefix     uint32           `json:"ref_block_prefix"`
	MaxNetUsageWords   uint32           `json:"max_net_usage_words"`
	MaxCPUUsageMS      uint8            `json:"max_cpu_usage_ms"`
	DelaySec           uint32           `json:"delay_sec"`
	ContextFreeActions []Action         `json:"context_free_actions"`
	Actions            []Action         `json:"actions"`
	Signatures         []string         `json:"signatures"`
	ContextFreeData    []types.HexBytes `json:"context_free_data"`
	SigningKeys        []string         `json:"signing_keys,omitempty"`
}

// FirstAuthorizer returns the actor of the first authorization of the first
// authorized action, the account billed for the transaction. It returns false
// when no action carries an authorization.
func (t SignedTransaction) FirstAuthorizer() (string, bool) {
	for _, act := range t.Actions {
		if len(act.Authorization) > 0 {
			return act.Authorization[0].Actor, true
		}
	}

	return "", false
}
