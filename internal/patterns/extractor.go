// Package patterns derives typed log records from actions whose (account,
// name) matches one of a fixed list of contract calls: token transfer, code
// deployment, ABI update, token creation and token issuance.
//
// Payloads are decoded through an ABIDecoder under a bounded wait. A decode
// failure or timeout only suppresses the derived records of that action, and a
// payload missing a required field only suppresses the record of that rule.
package patterns

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/tracestream/internal/ledger"
	"github.com/gabapcia/tracestream/internal/pkg/logger"
	"github.com/gabapcia/tracestream/internal/records"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultDecodeTimeout bounds a single payload decode.
const DefaultDecodeTimeout = 10 * time.Second

// ABIDecoder turns an action's raw payload into named fields using the
// contract's published ABI.
type ABIDecoder interface {
	// Decode returns the payload of action account::name as a field map. It
	// must honor ctx cancellation.
	Decode(ctx context.Context, account, name string, data []byte) (map[string]any, error)
}

// Extractor evaluates every rule against an action node.
type Extractor interface {
	// Extract returns the records derived from node, in rule order. It never
	// fails: undecodable payloads and missing fields yield fewer records.
	Extract(ctx context.Context, now time.Time, scope records.Scope, node *ledger.ActionTrace) []records.Record
}

type config struct {
	timeout time.Duration
	rules   []Rule
}

// Option configures the extractor.
type Option func(*config)

// WithDecodeTimeout sets the ceiling of a single payload decode.
// Default: DefaultDecodeTimeout.
func WithDecodeTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRules replaces the rule list. Intended for tests.
func WithRules(rules ...Rule) Option {
	return func(c *config) {
		c.rules = rules
	}
}

type extractor struct {
	decoder ABIDecoder
	cfg     config

	decodeFailures metric.Int64Counter
	skipped        metric.Int64Counter
}

var _ Extractor = (*extractor)(nil)

// New returns an Extractor decoding payloads with decoder.
func New(decoder ABIDecoder, opts ...Option) Extractor {
	cfg := config{
		timeout: DefaultDecodeTimeout,
		rules:   Rules(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := otel.Meter("github.com/gabapcia/tracestream/internal/patterns")
	decodeFailures, _ := meter.Int64Counter("patterns.decode.failures",
		metric.WithDescription("Action payloads that could not be decoded"),
	)
	skipped, _ := meter.Int64Counter("patterns.records.skipped",
		metric.WithDescription("Derived records suppressed by a missing or invalid field"),
	)

	return &extractor{
		decoder:        decoder,
		cfg:            cfg,
		decodeFailures: decodeFailures,
		skipped:        skipped,
	}
}

func (e *extractor) matching(act ledger.Action) []Rule {
	var matched []Rule
	for _, rule := range e.cfg.rules {
		if rule.Match(act.Account, act.Name) {
			matched = append(matched, rule)
		}
	}

	return matched
}

// decode runs the decoder under the configured ceiling.
func (e *extractor) decode(ctx context.Context, act ledger.Action) (Fields, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.timeout)
	defer cancel()

	type result struct {
		fields map[string]any
		err    error
	}

	// The decoder is expected to honor ctx, but a misbehaving one must not
	// hold the notification past the ceiling.
	done := make(chan result, 1)
	go func() {
		fields, err := e.decoder.Decode(ctx, act.Account, act.Name, act.Data)
		done <- result{fields, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.fields, r.err
	}
}

func (e *extractor) Extract(ctx context.Context, now time.Time, scope records.Scope, node *ledger.ActionTrace) []records.Record {
	if node == nil {
		return nil
	}

	matched := e.matching(node.Act)
	if len(matched) == 0 {
		return nil
	}

	seq, _ := node.GlobalSequence()
	ctx = logger.Derive(ctx,
		"action.account", node.Act.Account,
		"action.name", node.Act.Name,
		"action.global_sequence", seq,
	)

	fields, err := e.decode(ctx, node.Act)
	if err != nil {
		e.decodeFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("action", node.Act.Account+"::"+node.Act.Name)))
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn(ctx, "action payload decode timed out", "timeout", e.cfg.timeout)
		} else {
			logger.Warn(ctx, "action payload decode failed", "error", err)
		}
		return nil
	}

	log, err := records.NewActionLog(now, scope, node)
	if err != nil {
		return nil
	}

	out := make([]records.Record, 0, len(matched))
	for _, rule := range matched {
		rec, err := rule.Extract(log, fields)
		if err != nil {
			e.skipped.Add(ctx, 1, metric.WithAttributes(attribute.String("rule", rule.Kind.String())))
			logger.Debug(ctx, "derived record skipped", "rule", rule.Kind.String(), "error", err)
			continue
		}

		out = append(out, rec)
	}

	return out
}
