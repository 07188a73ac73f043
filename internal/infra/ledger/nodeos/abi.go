// Package nodeos adapts a running ledger node's chain API to the interfaces
// the pipeline consumes.
package nodeos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/tracestream/internal/patterns"
	"github.com/gabapcia/tracestream/internal/pkg/types"
)

const abiBinToJSONPath = "/v1/chain/abi_bin_to_json"

// ErrNoArgs is returned when the node answers without decoded arguments.
var ErrNoArgs = errors.New("abi_bin_to_json returned no args")

// ChainAPI is the subset of the node's chain API the decoder needs.
type ChainAPI interface {
	Call(ctx context.Context, path string, body any) (json.RawMessage, error)
}

type abiBinToJSONRequest struct {
	Code    string         `json:"code"`
	Action  string         `json:"action"`
	BinArgs types.HexBytes `json:"binargs"`
}

type abiBinToJSONResponse struct {
	Args map[string]any `json:"args"`
}

// ABIDecoder decodes action payloads with the ABI the node holds for the
// contract account.
type ABIDecoder struct {
	api ChainAPI
}

var _ patterns.ABIDecoder = (*ABIDecoder)(nil)

// NewABIDecoder returns a decoder calling api.
func NewABIDecoder(api ChainAPI) *ABIDecoder {
	return &ABIDecoder{api: api}
}

// Decode returns the named fields of account::name's payload. Numbers are
// kept as json.Number so that 64-bit amounts survive decoding.
func (d *ABIDecoder) Decode(ctx context.Context, account, name string, data []byte) (map[string]any, error) {
	raw, err := d.api.Call(ctx, abiBinToJSONPath, abiBinToJSONRequest{
		Code:    account,
		Action:  name,
		BinArgs: data,
	})
	if err != nil {
		return nil, fmt.Errorf("decode %s::%s: %w", account, name, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var res abiBinToJSONResponse
	if err := dec.Decode(&res); err != nil {
		return nil, fmt.Errorf("decode %s::%s response: %w", account, name, err)
	}

	if res.Args == nil {
		return nil, fmt.Errorf("decode %s::%s: %w", account, name, ErrNoArgs)
	}

	return res.Args, nil
}
