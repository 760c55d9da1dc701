package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/shiwake/internal/model"
)

// Per-row validation failures. A *RowError wraps exactly one of these.
var (
	ErrExcluded       = errors.New("row marked as excluded")
	ErrMissingField   = errors.New("required field is empty")
	ErrInvalidDate    = errors.New("invalid date")
	ErrUnknownAccount = errors.New("unknown account")
	ErrInvalidAmount  = errors.New("invalid amount")
)

// ErrUnbalanced means a built entry's debit and credit differ.
var ErrUnbalanced = errors.New("entry does not balance")

// Field names used in RowError.
const (
	FieldDate    = "date"
	FieldAccount = "account"
	FieldAmount  = "amount"
)

// RowError describes why a single input row was rejected.
type RowError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *RowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d: %s %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// AccountLookup resolves an account name in the chart of accounts.
type AccountLookup interface {
	Get(name string) (model.Account, bool)
}

// Validator checks raw records against the chart of accounts.
type Validator struct {
	accounts AccountLookup
}

// NewValidator creates a Validator.
func NewValidator(accounts AccountLookup) *Validator {
	return &Validator{accounts: accounts}
}

// Validate checks rec and returns the typed transaction. Checks run in a
// fixed order and the first failure is returned.
func (v *Validator) Validate(rec model.Record) (model.Transaction, error) {
	if rec.Excluded {
		return model.Transaction{}, &RowError{Row: rec.Row, Err: ErrExcluded}
	}

	if rec.Date == "" {
		return model.Transaction{}, &RowError{Row: rec.Row, Field: FieldDate, Err: ErrMissingField}
	}
	date, err := ParseDate(rec.Date)
	if err != nil {
		return model.Transaction{}, &RowError{Row: rec.Row, Field: FieldDate, Value: rec.Date, Err: err}
	}

	if rec.Account == "" {
		return model.Transaction{}, &RowError{Row: rec.Row, Field: FieldAccount, Err: ErrMissingField}
	}
	acct, ok := v.accounts.Get(rec.Account)
	if !ok {
		return model.Transaction{}, &RowError{Row: rec.Row, Field: FieldAccount, Value: rec.Account, Err: ErrUnknownAccount}
	}

	if rec.Amount == "" {
		return model.Transaction{}, &RowError{Row: rec.Row, Field: FieldAmount, Err: ErrMissingField}
	}
	amount, err := ParseAmount(rec.Amount)
	if err != nil {
		return model.Transaction{}, &RowError{Row: rec.Row, Field: FieldAmount, Value: rec.Amount, Err: err}
	}

	return model.Transaction{
		Row:           rec.Row,
		Source:        rec.Source,
		Date:          date,
		Account:       acct,
		Amount:        amount,
		Flow:          rec.Flow,
		Tax:           rec.Tax,
		Counterparty:  rec.Counterparty,
		Description:   rec.Description,
		InvoiceNumber: rec.InvoiceNumber,
	}, nil
}

// ParseDate parses a YYYY/M/D date. Out-of-range months and days fail.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(inputDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	return t, nil
}

// ParseAmount parses a non-negative whole yen amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative", ErrInvalidAmount)
	}
	if !d.Equal(d.Truncate(0)) {
		return decimal.Zero, fmt.Errorf("%w: not a whole number", ErrInvalidAmount)
	}
	return d.Truncate(0), nil
}

// CheckBalance returns ErrUnbalanced when e's sides differ.
func CheckBalance(e model.Entry) error {
	if !e.Balanced() {
		return fmt.Errorf("%w: debit %s != credit %s", ErrUnbalanced, e.DebitAmount, e.CreditAmount)
	}
	return nil
}
