package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// ledgerTimeLayout is the zone-less, millisecond precision layout the ledger
// engine uses for block and transaction timestamps. Values are always UTC.
const ledgerTimeLayout = "2006-01-02T15:04:05.000"

// Timestamp is a UTC point in time that reads both the ledger engine layout
// ("2018-06-09T11:56:30.500") and RFC 3339, and always writes the ledger layout.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to milliseconds and converts it to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// String formats the timestamp with the ledger layout.
func (t Timestamp) String() string {
	return t.UTC().Format(ledgerTimeLayout)
}

// MarshalJSON encodes the timestamp as a ledger layout JSON string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON parses a ledger layout or RFC 3339 JSON string.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid timestamp: %w", err)
	}

	for _, layout := range []string{ledgerTimeLayout, "2006-01-02T15:04:05", time.RFC3339Nano} {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*t = NewTimestamp(parsed)
			return nil
		}
	}

	return fmt.Errorf("invalid timestamp %q", s)
}
