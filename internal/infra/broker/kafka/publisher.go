// Package kafka publishes records to Apache Kafka through a sarama
// SyncProducer. Every Publish waits for the partition leader's
// acknowledgement, so a nil error means the record was written.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/tracestream/internal/pipeline"
	"github.com/gabapcia/tracestream/internal/pkg/logger"
	"github.com/gabapcia/tracestream/internal/pkg/resilience/retry"

	"github.com/IBM/sarama"
)

var (
	// ErrPublisherClosed is returned by Publish once Close was called.
	ErrPublisherClosed = errors.New("kafka publisher closed")

	// ErrFlushTimeout is returned by one flush attempt when sends are still
	// in flight after the attempt's timeout.
	ErrFlushTimeout = errors.New("kafka flush timed out")
)

const (
	flushAttempts       = 5
	defaultFlushTimeout = 2 * time.Second
)

// Publisher implements pipeline.Publisher on top of a sarama SyncProducer.
type Publisher struct {
	producer     sarama.SyncProducer
	retry        retry.Retry
	flushTimeout time.Duration

	closed   atomic.Bool
	inflight sync.WaitGroup
}

var _ pipeline.Publisher = (*Publisher)(nil)

type options struct {
	retry        retry.Retry
	flushTimeout time.Duration
}

// Option configures the publisher.
type Option func(*options)

// WithFlushRetry sets the policy used to wait for in-flight sends on Close.
// Default: five attempts with exponential backoff.
func WithFlushRetry(r retry.Retry) Option {
	return func(o *options) {
		o.retry = r
	}
}

// WithFlushTimeout bounds one flush attempt. Default: 2s.
func WithFlushTimeout(d time.Duration) Option {
	return func(o *options) {
		o.flushTimeout = d
	}
}

// New connects to the brokers of cfg and returns a ready publisher.
func New(cfg Config, opts ...Option) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}

	saramaCfg, err := cfg.sarama()
	if err != nil {
		return nil, fmt.Errorf("build sarama config: %w", err)
	}

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("create sync producer: %w", err)
	}

	return NewFromProducer(producer, opts...), nil
}

// NewFromProducer wraps an existing producer. The publisher takes ownership
// of it and closes it on Close.
func NewFromProducer(producer sarama.SyncProducer, opts ...Option) *Publisher {
	o := options{
		retry:        retry.New(retry.WithAttempts(flushAttempts)),
		flushTimeout: defaultFlushTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Publisher{
		producer:     producer,
		retry:        o.retry,
		flushTimeout: o.flushTimeout,
	}
}

// Publish writes payload to topic under key. The key drives partition
// selection, so every delivery of a record lands on the same partition.
func (p *Publisher) Publish(ctx context.Context, topic string, key, payload []byte) error {
	if p.closed.Load() {
		return ErrPublisherClosed
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	p.inflight.Add(1)
	defer p.inflight.Done()

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send to %s: %w", topic, err)
	}

	logger.Debug(ctx, "record published",
		"record.topic", topic,
		"kafka.partition", partition,
		"kafka.offset", offset,
	)

	return nil
}

// flush waits for in-flight sends for at most one flush timeout.
func (p *Publisher) flush() error {
	done := make(chan struct{})
	go func() {
		p.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(p.flushTimeout):
		return ErrFlushTimeout
	}
}

// Close stops accepting records, waits for in-flight sends and closes the
// producer. Waiting is retried up to five times; the producer is closed even
// when sends are still pending after the last attempt.
func (p *Publisher) Close(ctx context.Context) error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}

	flushErr := p.retry.Execute(ctx, func() error {
		err := p.flush()
		if err != nil {
			logger.Warn(ctx, "kafka flush failed, retrying", "error", err)
		}
		return err
	})
	if flushErr == nil {
		logger.Info(ctx, "kafka producer flush finished")
	}

	if err := p.producer.Close(); err != nil {
		return errors.Join(flushErr, fmt.Errorf("close producer: %w", err))
	}

	return flushErr
}
