// Package wsfeed receives the ledger engine's notifications over a websocket.
//
// After connecting, the client sends one subscribe message:
//
//	{"type":"subscribe","from_block":1234}
//
// and the engine answers with one envelope per notification:
//
//	{"type":"accepted_block","data":{...block...}}
//	{"type":"irreversible_block","data":{...block...}}
//	{"type":"applied_transaction","data":{...transaction trace...}}
package wsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/tracestream/internal/ledger"
	"github.com/gabapcia/tracestream/internal/pipeline"
	"github.com/gabapcia/tracestream/internal/pkg/logger"
	"github.com/gabapcia/tracestream/internal/pkg/x/chflow"

	"github.com/gorilla/websocket"
)

const (
	typeSubscribe          = "subscribe"
	typeAcceptedBlock      = "accepted_block"
	typeIrreversibleBlock  = "irreversible_block"
	typeAppliedTransaction = "applied_transaction"
)

type subscribeMessage struct {
	Type      string `json:"type"`
	FromBlock uint32 `json:"from_block,omitempty"`
}

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type config struct {
	dialer     *websocket.Dialer
	pingPeriod time.Duration
	writeWait  time.Duration
	bufferSize int
}

// Option configures the feed.
type Option func(*config)

// WithDialer replaces websocket.DefaultDialer.
func WithDialer(d *websocket.Dialer) Option {
	return func(c *config) {
		c.dialer = d
	}
}

// WithPingPeriod sets how often the connection is pinged. The connection is
// considered lost when no pong arrives within two periods. Default: 20s.
func WithPingPeriod(d time.Duration) Option {
	return func(c *config) {
		c.pingPeriod = d
	}
}

// WithBufferSize sets the capacity of the notification channel. Default: 16.
func WithBufferSize(n int) Option {
	return func(c *config) {
		c.bufferSize = n
	}
}

// Feed is a pipeline.Source reading from a websocket endpoint.
type Feed struct {
	url string
	cfg config
}

var _ pipeline.Source = (*Feed)(nil)

// New returns a feed for the websocket endpoint at url.
func New(url string, opts ...Option) *Feed {
	cfg := config{
		dialer:     websocket.DefaultDialer,
		pingPeriod: 20 * time.Second,
		writeWait:  5 * time.Second,
		bufferSize: 16,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Feed{url: url, cfg: cfg}
}

// Subscribe dials the endpoint, asks for notifications from fromBlock and
// returns the decoded stream. The channel is closed when ctx is canceled or
// the connection is lost.
func (f *Feed) Subscribe(ctx context.Context, fromBlock uint32) (<-chan pipeline.Notification, error) {
	conn, _, err := f.cfg.dialer.DialContext(ctx, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", f.url, err)
	}

	if err := conn.WriteJSON(subscribeMessage{Type: typeSubscribe, FromBlock: fromBlock}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	pongWait := 2 * f.cfg.pingPeriod
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx, cancel := context.WithCancel(ctx)
	notificationsCh := make(chan pipeline.Notification, f.cfg.bufferSize)

	go f.keepAlive(ctx, conn)

	go func() {
		defer close(notificationsCh)
		defer cancel()
		defer conn.Close()

		f.readLoop(ctx, conn, notificationsCh)
	}()

	// Unblocks the read loop on cancellation.
	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(f.cfg.writeWait),
		)
		conn.Close()
	}()

	logger.Info(ctx, "notification feed connected", "feed.url", f.url, "block.from", fromBlock)
	return notificationsCh, nil
}

func (f *Feed) keepAlive(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(f.cfg.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(f.cfg.writeWait)); err != nil {
				logger.Warn(ctx, "notification feed ping failed", "error", err)
				return
			}
		}
	}
}

func (f *Feed) readLoop(ctx context.Context, conn *websocket.Conn, notificationsCh chan<- pipeline.Notification) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				logger.Error(ctx, "notification feed lost", "error", err)
			}
			return
		}

		n, err := decode(data)
		if err != nil {
			logger.Warn(ctx, "skipping undecodable notification", "error", err)
			continue
		}

		if !chflow.Send(ctx, notificationsCh, n) {
			return
		}
	}
}

func decode(data []byte) (pipeline.Notification, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return pipeline.Notification{}, err
	}

	switch env.Type {
	case typeAcceptedBlock, typeIrreversibleBlock:
		var block ledger.Block
		if err := json.Unmarshal(env.Data, &block); err != nil {
			return pipeline.Notification{}, fmt.Errorf("%s: %w", env.Type, err)
		}

		kind := pipeline.NotificationBlockAccepted
		if env.Type == typeIrreversibleBlock {
			kind = pipeline.NotificationBlockIrreversible
		}
		return pipeline.Notification{Kind: kind, Block: &block}, nil

	case typeAppliedTransaction:
		var trace ledger.TransactionTrace
		if err := json.Unmarshal(env.Data, &trace); err != nil {
			return pipeline.Notification{}, fmt.Errorf("%s: %w", env.Type, err)
		}
		return pipeline.Notification{Kind: pipeline.NotificationTransactionApplied, Trace: &trace}, nil

	default:
		return pipeline.Notification{}, fmt.Errorf("unknown notification type %q", env.Type)
	}
}
