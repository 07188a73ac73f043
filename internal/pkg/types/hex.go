package types

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUint64Hex is returned when a string is not the 16-digit
// little-endian rendering produced by Uint64LEHex.
var ErrInvalidUint64Hex = errors.New("invalid little-endian uint64 hex")

// Uint64LEHex renders v as the hex of its 8 bytes in little-endian order,
// two lowercase digits per byte. The output is always 16 characters long.
//
// The byte order is part of the record key contract: consumers that split an
// action key back into transaction id and global sequence rely on it.
//
// Example:
//
//	Uint64LEHex(1)      // "0100000000000000"
//	Uint64LEHex(0x1234) // "3412000000000000"
func Uint64LEHex(v uint64) string {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return hex.EncodeToString(buf[:])
}

// ParseUint64LEHex is the inverse of Uint64LEHex.
func ParseUint64LEHex(s string) (uint64, error) {
	if len(s) != 16 {
		return 0, fmt.Errorf("%w: expected 16 characters, got %d", ErrInvalidUint64Hex, len(s))
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidUint64Hex, err)
	}

	return binary.LittleEndian.Uint64(raw), nil
}

// HexBytes is an opaque byte payload that travels as a lowercase hex string in
// JSON, the way the ledger engine renders action data, contract code and ABIs.
type HexBytes []byte

// HexBytesFromString decodes a hex string, accepting an optional 0x prefix.
func HexBytesFromString(s string) (HexBytes, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex bytes: %w", err)
	}

	return HexBytes(raw), nil
}

// String returns the lowercase hex representation.
func (b HexBytes) String() string {
	return hex.EncodeToString(b)
}

// MarshalJSON encodes the bytes as a JSON hex string.
func (b HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON parses a JSON hex string. A JSON null leaves b empty.
func (b *HexBytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex bytes: %w", err)
	}

	decoded, err := HexBytesFromString(s)
	if err != nil {
		return err
	}

	*b = decoded
	return nil
}
