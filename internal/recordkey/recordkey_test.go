package recordkey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	blockID = "0000000a5e4b1f2c"
	trxID   = "9f86d081884c7d65"
)

func TestBlock(t *testing.T) {
	t.Run("reversible and irreversible deliveries differ only in the flag", func(t *testing.T) {
		reversible := Block(blockID, false)
		irreversible := Block(blockID, true)

		assert.Equal(t, blockID+"F", reversible.Dedup)
		assert.Equal(t, blockID+"T", irreversible.Dedup)
		assert.NotEqual(t, reversible.Dedup, irreversible.Dedup)
		assert.Equal(t, reversible.Primary, irreversible.Primary)
		assert.Equal(t, blockID, irreversible.Primary)
	})
}

func TestBlockTransaction(t *testing.T) {
	t.Run("flag sits between block id and transaction id", func(t *testing.T) {
		keys := BlockTransaction(blockID, trxID, true)

		assert.Equal(t, blockID+"T"+trxID, keys.Dedup)
		assert.Equal(t, trxID, keys.Primary)
	})

	t.Run("reversible", func(t *testing.T) {
		keys := BlockTransaction(blockID, trxID, false)

		assert.Equal(t, blockID+"F"+trxID, keys.Dedup)
	})
}

func TestTransactionTrace(t *testing.T) {
	keys := TransactionTrace(trxID)

	assert.Equal(t, trxID, keys.Dedup)
	assert.Equal(t, trxID, keys.Primary)
}

func TestAction(t *testing.T) {
	t.Run("transaction id followed by little-endian sequence", func(t *testing.T) {
		keys := Action(trxID, 0x0102)

		assert.Equal(t, trxID+"0201000000000000", keys.Dedup)
		assert.Equal(t, uint64(0x0102), keys.Primary)
	})

	t.Run("no finality flag", func(t *testing.T) {
		keys := Action(trxID, 7)

		assert.False(t, strings.HasSuffix(keys.Dedup, "T"))
		assert.False(t, strings.HasSuffix(keys.Dedup, "F"))
		assert.Len(t, keys.Dedup, len(trxID)+16)
	})

	t.Run("distinct sequences give distinct keys", func(t *testing.T) {
		seen := make(map[string]uint64)
		for seq := uint64(0); seq < 4096; seq++ {
			key := Action(trxID, seq).Dedup
			prev, dup := seen[key]
			assert.False(t, dup, "sequence %d collides with %d", seq, prev)
			seen[key] = seq
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, Action(trxID, 99), Action(trxID, 99))
	})
}

func TestFinalityFlag(t *testing.T) {
	assert.Equal(t, "T", FinalityFlag(true))
	assert.Equal(t, "F", FinalityFlag(false))
}
