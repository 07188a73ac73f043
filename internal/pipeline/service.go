// Package pipeline turns the ledger engine's notifications into published
// records.
//
// Notifications are consumed one at a time from a Source and run to
// completion before the next one is read. Block notifications yield the block
// record and one record per contained transaction. Transaction-applied
// notifications yield the transaction record and then, walking the action
// tree breadth-first, one action record per node followed by every record the
// pattern rules derive from it.
//
// Nothing a single notification does can stop the loop: publish failures are
// logged and counted, malformed snapshots fail only their notification and
// panics are recovered into ErrNotificationPanicked.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/tracestream/internal/patterns"
	"github.com/gabapcia/tracestream/internal/pkg/logger"
	"github.com/gabapcia/tracestream/internal/pkg/resilience/retry"
	"github.com/gabapcia/tracestream/internal/pkg/types"
	"github.com/gabapcia/tracestream/internal/pkg/x/chflow"
	"github.com/gabapcia/tracestream/internal/records"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrNotificationPanicked wraps a panic recovered while handling a
	// notification.
	ErrNotificationPanicked = errors.New("notification handling panicked")

	// ErrUnknownNotification is returned for a notification of an unknown kind.
	ErrUnknownNotification = errors.New("unknown notification kind")
)

// Service runs the notification loop on top of the Handler.
type Service interface {
	Handler

	// Start loads the last irreversible checkpoint, subscribes to the source
	// right after it and processes notifications in the background until ctx
	// is canceled, Close is called or the source closes its channel.
	//
	// Returns ErrServiceAlreadyStarted if the service is already running.
	Start(ctx context.Context) error

	// Done is closed when the running loop exits. It is nil before Start.
	Done() <-chan struct{}

	// Close stops the loop and waits for the notification in flight. It is
	// safe to call Close on a service that was never started.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc
	done      chan struct{}

	source            Source
	publisher         Publisher
	extractor         patterns.Extractor
	checkpointStorage CheckpointStorage
	retry             retry.Retry

	topicPrefix string
	streams     types.Set[Stream]
	families    types.Set[records.Namespace]
	now         func() time.Time

	progress    progress
	instruments instruments
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	from, err := s.resumePoint(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)

	notificationsCh, err := s.source.Subscribe(ctx, from)
	if err != nil {
		cancel()
		return fmt.Errorf("subscribe from block %d: %w", from, err)
	}

	logger.Info(ctx, "pipeline started", "block.from", from, "topic_prefix", s.topicPrefix)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.run(ctx, notificationsCh)
	}()

	s.done = done
	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true
	return nil
}

func (s *service) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.done
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

// resumePoint returns the first block to subscribe from.
func (s *service) resumePoint(ctx context.Context) (uint32, error) {
	checkpoint, err := s.checkpointStorage.LoadLastIrreversible(ctx)
	switch {
	case errors.Is(err, ErrNoCheckpointFound):
		return s.progress.resumeFrom(0, false), nil
	case err != nil:
		return 0, fmt.Errorf("load last irreversible block: %w", err)
	}

	logger.Info(ctx, "resuming after last irreversible block", "block.num", checkpoint)
	return s.progress.resumeFrom(checkpoint, true), nil
}

func (s *service) run(ctx context.Context, notificationsCh <-chan Notification) {
	for {
		n, ok := chflow.Receive(ctx, notificationsCh)
		if !ok {
			if ctx.Err() == nil {
				logger.Warn(ctx, "notification source closed")
			}
			return
		}

		// Failures are logged inside dispatch.
		_ = s.dispatch(ctx, n)
	}
}

// dispatch runs one notification to completion under its own processing id
// and span.
func (s *service) dispatch(ctx context.Context, n Notification) (err error) {
	ctx = logger.Derive(ctx,
		"notification.id", uuid.Must(uuid.NewV7()).String(),
		"notification.kind", n.Kind.String(),
	)

	kindAttr := attribute.String("notification.kind", n.Kind.String())
	ctx, span := s.instruments.tracer.Start(ctx, "pipeline.dispatch", trace.WithAttributes(kindAttr))
	defer span.End()

	s.instruments.notifications.Add(ctx, 1, metric.WithAttributes(kindAttr))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrNotificationPanicked, r)
		}

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.instruments.failures.Add(ctx, 1, metric.WithAttributes(kindAttr))
			logger.Error(ctx, "notification processing failed", "error", err)
		}
	}()

	if st := n.Kind.stream(); st != "" && !s.streams.Has(st) {
		return nil
	}

	switch n.Kind {
	case NotificationBlockAccepted:
		return s.OnBlockAccepted(ctx, n.Block)
	case NotificationBlockIrreversible:
		return s.OnBlockIrreversible(ctx, n.Block)
	case NotificationTransactionApplied:
		return s.OnTransactionApplied(ctx, n.Trace)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownNotification, n.Kind)
	}
}

type config struct {
	topicPrefix       string
	streams           types.Set[Stream]
	families          types.Set[records.Namespace]
	startBlock        uint32
	now               func() time.Time
	checkpointStorage CheckpointStorage
	retry             retry.Retry
}

// Option configures the pipeline.
type Option func(*config)

// DefaultTopicPrefix is prepended to every topic when none is configured.
const DefaultTopicPrefix = "eosio"

// New returns a pipeline reading from source, publishing through publisher
// and deriving log records with extractor.
func New(source Source, publisher Publisher, extractor patterns.Extractor, opts ...Option) *service {
	cfg := config{
		topicPrefix:       DefaultTopicPrefix,
		streams:           DefaultStreams(),
		families:          DefaultFamilies(),
		now:               time.Now,
		checkpointStorage: nopCheckpoint{},
		retry:             retry.New(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		source:            source,
		publisher:         publisher,
		extractor:         extractor,
		checkpointStorage: cfg.checkpointStorage,
		retry:             cfg.retry,
		topicPrefix:       cfg.topicPrefix,
		streams:           cfg.streams,
		families:          cfg.families,
		now:               cfg.now,
		progress:          newProgress(cfg.startBlock),
		instruments:       newInstruments(),
	}
}

// WithTopicPrefix sets the first segment of every topic.
// Default: DefaultTopicPrefix.
func WithTopicPrefix(prefix string) Option {
	return func(c *config) {
		c.topicPrefix = prefix
	}
}

// WithStreams sets the notification streams to process. Notifications of any
// other stream are acknowledged without publishing. Default: DefaultStreams.
func WithStreams(streams types.Set[Stream]) Option {
	return func(c *config) {
		c.streams = streams
	}
}

// WithFamilies sets the record namespaces to publish. Default: DefaultFamilies.
func WithFamilies(families types.Set[records.Namespace]) Option {
	return func(c *config) {
		c.families = families
	}
}

// WithStartBlock drops every notification for blocks below n until a block at
// or above n is seen.
func WithStartBlock(n uint32) Option {
	return func(c *config) {
		c.startBlock = n
	}
}

// WithClock sets the source of produce timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithCheckpointStorage sets where the last irreversible block is persisted.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

// WithRetry sets the retry policy of checkpoint saves.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}
