package kafka

import (
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// ErrNoBrokers is returned by New when no broker address is configured.
var ErrNoBrokers = errors.New("kafka brokers are required")

// Config holds the producer settings.
type Config struct {
	Brokers  []string
	ClientID string

	// Version is the broker protocol version, e.g. "2.8.0". Empty keeps
	// sarama's default.
	Version string

	// Compression is one of none, gzip, snappy, lz4 or zstd.
	Compression string

	// RequiredAcks is 0 (no response), 1 (leader) or -1 (all in-sync replicas).
	RequiredAcks int

	MaxMessageBytes int
	Timeout         time.Duration
	RetryMax        int
	RetryBackoff    time.Duration
}

// DefaultConfig returns leader acknowledgement with gzip compression.
func DefaultConfig() Config {
	return Config{
		ClientID:        "tracestream",
		Compression:     "gzip",
		RequiredAcks:    1,
		MaxMessageBytes: 1000000,
		Timeout:         10 * time.Second,
		RetryMax:        3,
		RetryBackoff:    100 * time.Millisecond,
	}
}

func (c Config) sarama() (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	if c.Version != "" {
		version, err := sarama.ParseKafkaVersion(c.Version)
		if err != nil {
			return nil, fmt.Errorf("parse kafka version: %w", err)
		}
		cfg.Version = version
	}

	if c.ClientID != "" {
		cfg.ClientID = c.ClientID
	}

	switch c.RequiredAcks {
	case 0:
		cfg.Producer.RequiredAcks = sarama.NoResponse
	case 1:
		cfg.Producer.RequiredAcks = sarama.WaitForLocal
	case -1:
		cfg.Producer.RequiredAcks = sarama.WaitForAll
	default:
		return nil, fmt.Errorf("unsupported required acks %d", c.RequiredAcks)
	}

	compression, err := parseCompression(c.Compression)
	if err != nil {
		return nil, err
	}
	cfg.Producer.Compression = compression

	// Records are keyed by dedup key: every delivery of one record must land
	// on the same partition.
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	if c.MaxMessageBytes > 0 {
		cfg.Producer.MaxMessageBytes = c.MaxMessageBytes
	}
	if c.Timeout > 0 {
		cfg.Producer.Timeout = c.Timeout
	}
	cfg.Producer.Retry.Max = c.RetryMax
	if c.RetryBackoff > 0 {
		cfg.Producer.Retry.Backoff = c.RetryBackoff
	}

	// Required by SyncProducer.
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true

	return cfg, nil
}

func parseCompression(s string) (sarama.CompressionCodec, error) {
	switch s {
	case "", "none":
		return sarama.CompressionNone, nil
	case "gzip":
		return sarama.CompressionGZIP, nil
	case "snappy":
		return sarama.CompressionSnappy, nil
	case "lz4":
		return sarama.CompressionLZ4, nil
	case "zstd":
		return sarama.CompressionZSTD, nil
	default:
		return sarama.CompressionNone, fmt.Errorf("unsupported compression %q", s)
	}
}
