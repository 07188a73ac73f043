package patterns

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAsset is returned when a string is not "<amount> <SYMBOL>".
var ErrInvalidAsset = errors.New("invalid asset")

// maxSymbolLength is the longest token symbol the ledger engine accepts.
const maxSymbolLength = 7

// Asset is a token quantity such as "10.0000 EOS".
type Asset struct {
	Amount    decimal.Decimal
	Symbol    string
	Precision int32
}

// ParseAsset parses "<amount> <SYMBOL>". The precision is the number of
// decimals written in the amount, so "1.0000 EOS" has precision 4.
func ParseAsset(s string) (Asset, error) {
	amount, symbol, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return Asset{}, fmt.Errorf("%w: %q has no symbol", ErrInvalidAsset, s)
	}

	symbol = strings.TrimSpace(symbol)
	if !validSymbol(symbol) {
		return Asset{}, fmt.Errorf("%w: bad symbol %q", ErrInvalidAsset, symbol)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %w", ErrInvalidAsset, err)
	}

	var precision int32
	if _, frac, found := strings.Cut(amount, "."); found {
		precision = int32(len(frac))
	}

	return Asset{
		Amount:    value,
		Symbol:    symbol,
		Precision: precision,
	}, nil
}

// Float64 returns the amount as a float64. Large amounts with many decimals
// may lose precision.
func (a Asset) Float64() float64 {
	return a.Amount.InexactFloat64()
}

// String renders the asset back in ledger notation.
func (a Asset) String() string {
	return a.Amount.StringFixed(a.Precision) + " " + a.Symbol
}

func validSymbol(s string) bool {
	if s == "" || len(s) > maxSymbolLength {
		return false
	}

	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}
