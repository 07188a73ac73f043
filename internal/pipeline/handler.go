package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/tracestream/internal/ledger"
	"github.com/gabapcia/tracestream/internal/pkg/logger"
	"github.com/gabapcia/tracestream/internal/recordkey"
	"github.com/gabapcia/tracestream/internal/records"
	"github.com/gabapcia/tracestream/internal/traceflat"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var _ Handler = (*service)(nil)

func (s *service) OnBlockAccepted(ctx context.Context, block *ledger.Block) error {
	return s.handleBlock(ctx, StreamAcceptedBlock, block, false)
}

func (s *service) OnBlockIrreversible(ctx context.Context, block *ledger.Block) error {
	if err := s.handleBlock(ctx, StreamIrreversibleBlock, block, true); err != nil {
		return err
	}

	if block == nil || !s.progress.startBlockReached || !s.progress.markIrreversible(block.Number) {
		return nil
	}

	err := s.retry.Execute(ctx, func() error {
		return s.checkpointStorage.SaveLastIrreversible(ctx, block.Number)
	})
	if err != nil {
		logger.Error(ctx, "failed to save last irreversible block",
			"block.num", block.Number,
			"error", err,
		)
	}

	return nil
}

// handleBlock publishes the block record and one record per contained
// transaction, in block order. The action trees of a block are not walked:
// they are published by the matching transaction-applied notifications.
func (s *service) handleBlock(ctx context.Context, stream Stream, block *ledger.Block, irreversible bool) error {
	if !s.streams.Has(stream) {
		return nil
	}

	if block == nil {
		return records.ErrNilSnapshot
	}

	ctx = logger.Derive(ctx,
		"block.id", block.ID,
		"block.num", block.Number,
		"block.irreversible", irreversible,
	)

	if !s.progress.admit(block.Number) {
		logger.Debug(ctx, "block below start block ignored", "start_block", s.progress.startBlock)
		return nil
	}

	now := s.now()

	info, err := records.MapBlock(now, block, irreversible)
	if err != nil {
		return fmt.Errorf("map block: %w", err)
	}
	s.emit(ctx, info)

	if s.families.Has(records.NamespaceColumn) {
		state, err := records.MapBlockState(now, block, irreversible)
		if err != nil {
			return fmt.Errorf("map block state: %w", err)
		}
		s.emit(ctx, state)
	}

	for i := range block.Transactions {
		trx, err := records.MapBlockTransaction(now, block, i, irreversible)
		if err != nil {
			return fmt.Errorf("map block transaction %d: %w", i, err)
		}
		s.emit(ctx, trx)

		if s.families.Has(records.NamespaceColumn) {
			meta, err := records.MapTransactionMetadata(now, block, i, irreversible)
			if err != nil {
				return fmt.Errorf("map transaction metadata %d: %w", i, err)
			}
			s.emit(ctx, meta)
		}
	}

	return nil
}

func (s *service) OnTransactionApplied(ctx context.Context, trace *ledger.TransactionTrace) error {
	if !s.streams.Has(StreamAppliedTransaction) {
		return nil
	}

	if trace == nil {
		return records.ErrNilSnapshot
	}

	ctx = logger.Derive(ctx,
		"transaction.id", trace.ID,
		"block.num", trace.BlockNum,
	)

	if !s.progress.admit(trace.BlockNum) {
		logger.Debug(ctx, "transaction below start block ignored", "start_block", s.progress.startBlock)
		return nil
	}

	now := s.now()

	info, err := records.MapTransactionTrace(now, trace)
	if err != nil {
		return fmt.Errorf("map transaction trace: %w", err)
	}
	s.emit(ctx, info)

	if s.families.Has(records.NamespaceColumn) {
		row, err := records.MapTransactionTraceRow(now, trace)
		if err != nil {
			return fmt.Errorf("map transaction trace row: %w", err)
		}
		s.emit(ctx, row)
	}

	scope, err := records.ScopeOf(trace)
	if err != nil {
		return err
	}

	err = traceflat.Walk(trace.ActionTraces, func(nodes []traceflat.Node, n traceflat.Node) error {
		return s.handleAction(ctx, now, scope, nodes, n)
	})
	if err != nil {
		return fmt.Errorf("walk action tree: %w", err)
	}

	return nil
}

// handleAction publishes the records of one action node: the action summary,
// its wide row and then every record derived by the pattern rules.
func (s *service) handleAction(ctx context.Context, now time.Time, scope records.Scope, nodes []traceflat.Node, n traceflat.Node) error {
	var (
		parentSeq *uint64
		parentKey string
	)
	if !n.IsRoot() {
		seq, _ := nodes[n.Parent].Trace.GlobalSequence()
		parentSeq = &seq
		parentKey = recordkey.Action(scope.TransactionID, seq).Dedup
	}

	info, err := records.MapAction(now, scope, n.Trace, parentSeq)
	if err != nil {
		return err
	}
	s.emit(ctx, info)

	if s.families.Has(records.NamespaceColumn) {
		row, err := records.MapActionTraceRow(now, scope, n.Trace, parentKey)
		if err != nil {
			return err
		}
		s.emit(ctx, row)
	}

	if !s.families.Has(records.NamespaceSearch) {
		return nil
	}

	for _, rec := range s.extractor.Extract(ctx, now, scope, n.Trace) {
		s.emit(ctx, rec)
	}

	return nil
}

// emit encodes rec and publishes it under its dedup key. Records of a
// disabled family are dropped. A publish failure is logged and counted but
// never stops the notification.
func (s *service) emit(ctx context.Context, rec records.Record) {
	kind := rec.Kind()
	if !s.families.Has(kind.Namespace) {
		return
	}

	attrs := metric.WithAttributes(attribute.String("record.kind", kind.String()))

	payload, err := json.Marshal(rec)
	if err != nil {
		s.instruments.publishFailures.Add(ctx, 1, attrs)
		logger.Error(ctx, "failed to encode record",
			"record.kind", kind.String(),
			"record.key", rec.Key(),
			"error", err,
		)
		return
	}

	topic := records.Topic(s.topicPrefix, kind)
	if err := s.publisher.Publish(ctx, topic, []byte(rec.Key()), payload); err != nil {
		s.instruments.publishFailures.Add(ctx, 1, attrs)
		logger.Error(ctx, "failed to publish record",
			"record.kind", kind.String(),
			"record.key", rec.Key(),
			"record.topic", topic,
			"error", err,
		)
		return
	}

	s.instruments.published.Add(ctx, 1, attrs)
}
