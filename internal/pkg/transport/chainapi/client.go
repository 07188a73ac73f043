// Package chainapi is a client for the ledger node's HTTP chain API, where
// every endpoint is a JSON POST under /v1/<plugin>/<method> answering either
// the result object or an error envelope.
package chainapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	httptransport "github.com/gabapcia/tracestream/internal/pkg/transport/http"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrNodeReturnedError indicates that the node answered with an error envelope.
var ErrNodeReturnedError = errors.New("node error")

// errorEnvelope is the body the node answers with on any non-2xx status.
type errorEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   struct {
		Code    int    `json:"code"`
		Name    string `json:"name"`
		What    string `json:"what"`
		Details []struct {
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

// Err wraps ErrNodeReturnedError with the most specific message the envelope
// carries.
func (e errorEnvelope) Err(status int) error {
	msg := e.Error.What
	if len(e.Error.Details) > 0 && e.Error.Details[0].Message != "" {
		msg = e.Error.Details[0].Message
	}
	if msg == "" {
		msg = e.Message
	}

	if e.Error.Name != "" {
		return fmt.Errorf("%w: [%d] %s - %s", ErrNodeReturnedError, status, e.Error.Name, msg)
	}

	return fmt.Errorf("%w: [%d] %s", ErrNodeReturnedError, status, msg)
}

// Client performs chain API calls.
type Client interface {
	// Call posts body as JSON to path (e.g. "/v1/chain/abi_bin_to_json") and
	// returns the raw JSON result.
	Call(ctx context.Context, path string, body any) (json.RawMessage, error)
}

type client struct {
	endpoint   string
	httpClient *retryablehttp.Client
}

var _ Client = (*client)(nil)

func (c *client) Call(ctx context.Context, path string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode/100 != 2 {
		var envelope errorEnvelope
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("%w: [%d] %s", ErrNodeReturnedError, res.StatusCode, http.StatusText(res.StatusCode))
		}
		return nil, envelope.Err(res.StatusCode)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("invalid JSON from %s", path)
	}

	return data, nil
}

// retryPolicy keeps the default policy but never retries a 500: the node
// answers it for deterministic failures such as an undecodable payload.
func retryPolicy(ctx context.Context, res *http.Response, err error) (bool, error) {
	if err == nil && res != nil && res.StatusCode == http.StatusInternalServerError {
		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, res, err)
}

// NewClient returns a Client posting to the node at endpoint. Options tune the
// underlying retrying HTTP client.
func NewClient(endpoint string, opts ...httptransport.Option) *client {
	opts = append([]httptransport.Option{httptransport.WithCheckRetry(retryPolicy)}, opts...)

	return &client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: httptransport.NewClient(opts...),
	}
}
