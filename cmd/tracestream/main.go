package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/tracestream/internal/config"
	"github.com/gabapcia/tracestream/internal/handlers/cli"
	"github.com/gabapcia/tracestream/internal/infra/broker/kafka"
	"github.com/gabapcia/tracestream/internal/infra/ledger/nodeos"
	"github.com/gabapcia/tracestream/internal/infra/ledger/wsfeed"
	"github.com/gabapcia/tracestream/internal/infra/storage/redis"
	"github.com/gabapcia/tracestream/internal/patterns"
	"github.com/gabapcia/tracestream/internal/pipeline"
	"github.com/gabapcia/tracestream/internal/pkg/logger"
	"github.com/gabapcia/tracestream/internal/pkg/resilience/retry"
	"github.com/gabapcia/tracestream/internal/pkg/telemetry"
	"github.com/gabapcia/tracestream/internal/pkg/transport/chainapi"
	httptransport "github.com/gabapcia/tracestream/internal/pkg/transport/http"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, warnings, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, initErr := telemetry.Init(ctx, cfg.ServiceName)
		if initErr != nil {
			return fmt.Errorf("init telemetry: %w", initErr)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			err = errors.Join(err, shutdown(ctx))
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	for _, w := range warnings {
		logger.Warn(ctx, w)
	}

	store, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer store.Close()

	checkpoint := store.Checkpoint(cfg.Name)

	kafkaCfg := kafka.DefaultConfig()
	kafkaCfg.Brokers = cfg.Kafka.Brokers
	kafkaCfg.ClientID = cfg.Kafka.ClientID
	kafkaCfg.Version = cfg.Kafka.Version
	kafkaCfg.Compression = cfg.Kafka.Compression
	kafkaCfg.RequiredAcks = cfg.Kafka.RequiredAcks
	kafkaCfg.MaxMessageBytes = cfg.Kafka.MaxMessageBytes
	kafkaCfg.Timeout = cfg.Kafka.Timeout

	publisher, err := kafka.New(kafkaCfg, kafka.WithFlushTimeout(cfg.Kafka.FlushTimeout))
	if err != nil {
		return fmt.Errorf("connect kafka: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = errors.Join(err, publisher.Close(ctx))
	}()

	chainAPI := chainapi.NewClient(cfg.ABI.Endpoint,
		httptransport.WithTimeout(cfg.ABI.Timeout),
		httptransport.WithRetryMax(cfg.ABI.RetryMax),
	)
	extractor := patterns.New(nodeos.NewABIDecoder(chainAPI), patterns.WithDecodeTimeout(cfg.ABI.DecodeTimeout))

	svc := pipeline.New(wsfeed.New(cfg.FeedURL), publisher, extractor,
		pipeline.WithTopicPrefix(cfg.TopicPrefix),
		pipeline.WithStreams(cfg.StreamSet()),
		pipeline.WithFamilies(cfg.FamilySet()),
		pipeline.WithStartBlock(cfg.StartBlock),
		pipeline.WithCheckpointStorage(checkpoint),
		pipeline.WithRetry(retry.New(
			retry.WithAttempts(5),
			retry.WithDelay(200*time.Millisecond),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Warn(ctx, "checkpoint save failed", "attempt", attempt+1, "error", err)
			}),
		)),
	)

	return cli.Run(ctx, svc, checkpoint)
}
