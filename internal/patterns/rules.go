package patterns

import (
	"slices"

	"github.com/gabapcia/tracestream/internal/records"
)

const (
	systemAccount = "eosio"
	tokenAccount  = "eosio.token"
)

// RuleKind tags one of the fixed derivation rules.
type RuleKind uint8

const (
	RuleTransfer RuleKind = iota
	RuleSetCode
	RuleSetAbi
	RuleTokenCreate
	RuleIssue
)

func (k RuleKind) String() string {
	switch k {
	case RuleTransfer:
		return "transfer"
	case RuleSetCode:
		return "setcode"
	case RuleSetAbi:
		return "setabi"
	case RuleTokenCreate:
		return "create"
	case RuleIssue:
		return "issue"
	default:
		return "unknown"
	}
}

// ExtractFunc builds a derived record from the common action log and the
// decoded payload. It returns an error wrapping ErrMissingField or
// ErrInvalidField when the payload lacks what the record needs.
type ExtractFunc func(log records.ActionLog, fields Fields) (records.Record, error)

// Rule derives one record kind from actions with a fixed (account, name).
type Rule struct {
	Kind    RuleKind
	Account string
	Name    string
	Extract ExtractFunc
}

// Match reports whether the rule applies to the action.
func (r Rule) Match(account, name string) bool {
	return r.Account == account && r.Name == name
}

var rules = []Rule{
	{Kind: RuleTransfer, Account: tokenAccount, Name: "transfer", Extract: extractTransfer},
	{Kind: RuleSetCode, Account: systemAccount, Name: "setcode", Extract: extractSetcode},
	{Kind: RuleSetAbi, Account: systemAccount, Name: "setabi", Extract: extractSetabi},
	{Kind: RuleTokenCreate, Account: tokenAccount, Name: "create", Extract: extractTokenCreate},
	{Kind: RuleIssue, Account: tokenAccount, Name: "issue", Extract: extractIssue},
}

// Rules returns the derivation rules in evaluation order.
func Rules() []Rule {
	return slices.Clone(rules)
}

// extractTransfer requires from, to and quantity. memo is optional.
func extractTransfer(log records.ActionLog, fields Fields) (records.Record, error) {
	from, err := fields.String("from")
	if err != nil {
		return nil, err
	}

	to, err := fields.String("to")
	if err != nil {
		return nil, err
	}

	quantity, err := fields.Asset("quantity")
	if err != nil {
		return nil, err
	}

	memo, err := fields.OptionalString("memo")
	if err != nil {
		return nil, err
	}

	return records.TransferLog{
		ActionLog:   log,
		From:        from,
		To:          to,
		Amount:      quantity.Float64(),
		TokenSymbol: quantity.Symbol,
		Memo:        memo,
	}, nil
}

// extractSetcode requires account and code. vmtype and vmversion are optional.
func extractSetcode(log records.ActionLog, fields Fields) (records.Record, error) {
	account, err := fields.String("account")
	if err != nil {
		return nil, err
	}

	code, err := fields.Bytes("code")
	if err != nil {
		return nil, err
	}

	vmType, err := fields.OptionalUint8("vmtype")
	if err != nil {
		return nil, err
	}

	vmVersion, err := fields.OptionalUint8("vmversion")
	if err != nil {
		return nil, err
	}

	return records.SetcodeLog{
		ActionLog: log,
		Account:   account,
		VMType:    vmType,
		VMVersion: vmVersion,
		Code:      code,
	}, nil
}

func extractSetabi(log records.ActionLog, fields Fields) (records.Record, error) {
	account, err := fields.String("account")
	if err != nil {
		return nil, err
	}

	abi, err := fields.Bytes("abi")
	if err != nil {
		return nil, err
	}

	return records.SetabiLog{
		ActionLog: log,
		Account:   account,
		Abi:       abi,
	}, nil
}

func extractTokenCreate(log records.ActionLog, fields Fields) (records.Record, error) {
	issuer, err := fields.String("issuer")
	if err != nil {
		return nil, err
	}

	supply, err := fields.Asset("maximum_supply")
	if err != nil {
		return nil, err
	}

	return records.TokenInfo{
		ActionLog:   log,
		Issuer:      issuer,
		TotalAmount: supply.Float64(),
		TokenSymbol: supply.Symbol,
	}, nil
}

// extractIssue requires to, quantity and memo together; an issue without a
// memo yields no record.
func extractIssue(log records.ActionLog, fields Fields) (records.Record, error) {
	to, err := fields.String("to")
	if err != nil {
		return nil, err
	}

	quantity, err := fields.Asset("quantity")
	if err != nil {
		return nil, err
	}

	memo, err := fields.String("memo")
	if err != nil {
		return nil, err
	}

	return records.IssueLog{
		ActionLog:   log,
		To:          to,
		Amount:      quantity.Float64(),
		TokenSymbol: quantity.Symbol,
		Memo:        memo,
	}, nil
}
