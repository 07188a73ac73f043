// Package config loads the process configuration from TRACESTREAM_*
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/tracestream/internal/pipeline"
	"github.com/gabapcia/tracestream/internal/pkg/types"
	"github.com/gabapcia/tracestream/internal/pkg/validator"
	"github.com/gabapcia/tracestream/internal/records"

	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable read by Load.
const Prefix = "TRACESTREAM"

type Kafka struct {
	Brokers         []string      `envconfig:"BROKERS" validate:"min=1,dive,hostname_port"`
	ClientID        string        `envconfig:"CLIENT_ID" default:"tracestream" validate:"required"`
	Version         string        `envconfig:"VERSION"`
	Compression     string        `envconfig:"COMPRESSION" default:"gzip" validate:"oneof=none gzip snappy lz4 zstd"`
	RequiredAcks    int           `envconfig:"REQUIRED_ACKS" default:"1" validate:"oneof=-1 0 1"`
	MaxMessageBytes int           `envconfig:"MAX_MESSAGE_BYTES" default:"1000000" validate:"gt=0"`
	Timeout         time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
	FlushTimeout    time.Duration `envconfig:"FLUSH_TIMEOUT" default:"2s" validate:"gt=0"`
}

type ABI struct {
	Endpoint      string        `envconfig:"ENDPOINT" validate:"required,url"`
	Timeout       time.Duration `envconfig:"TIMEOUT" default:"5s" validate:"gt=0"`
	RetryMax      int           `envconfig:"RETRY_MAX" default:"2" validate:"gte=0"`
	DecodeTimeout time.Duration `envconfig:"DECODE_TIMEOUT" default:"10s" validate:"gt=0"`
}

type Redis struct {
	Addr     string `envconfig:"ADDR" default:"localhost:6379" validate:"required,hostname_port"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
}

// Config is the whole process configuration.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"tracestream" validate:"required"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	// Name identifies this pipeline's checkpoint. Pipelines reading
	// different chains must not share it.
	Name string `envconfig:"NAME" default:"mainnet" validate:"required"`

	TopicPrefix string   `envconfig:"TOPIC_PREFIX" default:"eosio" validate:"omitempty,topicname"`
	Streams     []string `envconfig:"STREAMS" default:"accepted_block,irreversible_block,applied_transaction" validate:"min=1,dive,oneof=accepted_block irreversible_block applied_transaction"`
	Families    []string `envconfig:"FAMILIES" default:"es" validate:"dive,oneof=es hbase"`
	StartBlock  uint32   `envconfig:"START_BLOCK"`
	FeedURL     string   `envconfig:"FEED_URL" validate:"required,url"`

	Kafka Kafka `envconfig:"KAFKA"`
	ABI   ABI   `envconfig:"ABI"`
	Redis Redis `envconfig:"REDIS"`
}

// Load reads and validates the configuration. Settings that were replaced
// by their default are described in the returned warnings, to be logged once
// the logger is up.
func Load() (Config, []string, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, nil, fmt.Errorf("read environment: %w", err)
	}

	warnings := cfg.applyFallbacks()

	if err := validator.Validate(cfg); err != nil {
		return Config{}, nil, err
	}

	return cfg, warnings, nil
}

func (c *Config) applyFallbacks() []string {
	var warnings []string

	if c.TopicPrefix == "" {
		c.TopicPrefix = pipeline.DefaultTopicPrefix
		warnings = append(warnings, fmt.Sprintf("empty topic prefix, using %q", c.TopicPrefix))
	}

	if len(c.Families) == 0 {
		for ns := range pipeline.DefaultFamilies() {
			c.Families = append(c.Families, string(ns))
		}
		warnings = append(warnings, fmt.Sprintf("no schema family enabled, using %v", c.Families))
	}

	return warnings
}

// StreamSet returns the enabled streams. Call it on a loaded Config only.
func (c Config) StreamSet() types.Set[pipeline.Stream] {
	set := types.NewSet[pipeline.Stream]()
	for _, s := range c.Streams {
		st, _ := pipeline.ParseStream(s)
		set.Add(st)
	}
	return set
}

// FamilySet returns the enabled record namespaces. Call it on a loaded Config
// only.
func (c Config) FamilySet() types.Set[records.Namespace] {
	set := types.NewSet[records.Namespace]()
	for _, f := range c.Families {
		ns, _ := pipeline.ParseFamily(f)
		set.Add(ns)
	}
	return set
}
