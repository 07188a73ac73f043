package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/tracestream/internal/pipeline"

	"github.com/redis/go-redis/v9"
)

// checkpointKeyPrefix is the namespace of every checkpoint key.
const checkpointKeyPrefix = "tracestream"

// checkpointKey returns the key holding the last irreversible block of the
// named pipeline:
//
//	"tracestream:checkpoint:<name>:last_irreversible"
func checkpointKey(name string) string {
	return fmt.Sprintf("%s:checkpoint:%s:last_irreversible", checkpointKeyPrefix, name)
}

// Checkpoint stores the last irreversible block of one pipeline. Pipelines
// reading different chains must use different names.
type Checkpoint struct {
	conn *redis.Client
	key  string
}

var _ pipeline.CheckpointStorage = (*Checkpoint)(nil)

// Checkpoint returns the checkpoint store of the pipeline called name.
func (c *client) Checkpoint(name string) *Checkpoint {
	return &Checkpoint{
		conn: c.conn,
		key:  checkpointKey(name),
	}
}

// SaveLastIrreversible stores blockNum with no expiration.
func (c *Checkpoint) SaveLastIrreversible(ctx context.Context, blockNum uint32) error {
	return c.conn.Set(ctx, c.key, blockNum, 0).Err()
}

// LoadLastIrreversible returns the stored block number or
// pipeline.ErrNoCheckpointFound.
func (c *Checkpoint) LoadLastIrreversible(ctx context.Context) (uint32, error) {
	val, err := c.conn.Get(ctx, c.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = pipeline.ErrNoCheckpointFound
		}

		return 0, err
	}

	n, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid checkpoint %q: %w", val, err)
	}

	return uint32(n), nil
}

// ResetLastIrreversible deletes the stored block number.
func (c *Checkpoint) ResetLastIrreversible(ctx context.Context) error {
	return c.conn.Del(ctx, c.key).Err()
}
