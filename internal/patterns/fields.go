package patterns

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/gabapcia/tracestream/internal/pkg/types"
)

var (
	// ErrMissingField is returned when a required payload field is absent.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidField is returned when a payload field has an unexpected type
	// or format.
	ErrInvalidField = errors.New("invalid field")
)

// Fields is a decoded action payload, keyed by ABI field name. Values follow
// encoding/json conventions: strings, float64 or json.Number, bools, maps and
// slices.
type Fields map[string]any

// String returns a required string field.
func (f Fields) String(name string) (string, error) {
	v, ok := f[name]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingField, name)
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, want string", ErrInvalidField, name, v)
	}

	return s, nil
}

// OptionalString returns nil when the field is absent.
func (f Fields) OptionalString(name string) (*string, error) {
	if v, ok := f[name]; !ok || v == nil {
		return nil, nil
	}

	s, err := f.String(name)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// Asset returns a required asset field such as "10.0000 EOS".
func (f Fields) Asset(name string) (Asset, error) {
	s, err := f.String(name)
	if err != nil {
		return Asset{}, err
	}

	asset, err := ParseAsset(s)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %s: %w", ErrInvalidField, name, err)
	}

	return asset, nil
}

// Bytes returns a required hex-encoded bytes field.
func (f Fields) Bytes(name string) (types.HexBytes, error) {
	s, err := f.String(name)
	if err != nil {
		return nil, err
	}

	b, err := types.HexBytesFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidField, name, err)
	}

	return b, nil
}

// OptionalUint8 returns nil when the field is absent.
func (f Fields) OptionalUint8(name string) (*uint8, error) {
	v, ok := f[name]
	if !ok || v == nil {
		return nil, nil
	}

	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidField, name, err)
		}
		n = parsed
	case int:
		n = float64(x)
	case uint8:
		n = float64(x)
	default:
		return nil, fmt.Errorf("%w: %s is %T, want number", ErrInvalidField, name, v)
	}

	if n < 0 || n > math.MaxUint8 || n != math.Trunc(n) {
		return nil, fmt.Errorf("%w: %s = %v is not a uint8", ErrInvalidField, name, n)
	}

	u := uint8(n)
	return &u, nil
}
