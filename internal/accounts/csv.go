package accounts

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cleared-dev/shiwake/internal/model"
)

const (
	numFields = 3
	colName   = 0
	colType   = 1
	colDesc   = 2
)

// typeLabels maps the Japanese section names used on Yayoi charts to account types.
var typeLabels = map[string]model.AccountType{
	"資産":  model.AccountTypeAsset,
	"負債":  model.AccountTypeLiability,
	"純資産": model.AccountTypeEquity,
	"収益":  model.AccountTypeRevenue,
	"費用":  model.AccountTypeExpense,
}

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_name", "account_type", "description"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	row[colDesc] = acct.Description
	return row
}

// UnmarshalAccount converts a CSV row to an Account. The type column accepts
// either the English type name or its Japanese section label.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	if record[colName] == "" {
		return model.Account{}, fmt.Errorf("empty account_name")
	}

	typ, err := ParseType(record[colType])
	if err != nil {
		return model.Account{}, err
	}

	return model.Account{
		Name:        record[colName],
		Type:        typ,
		Description: record[colDesc],
	}, nil
}

// ParseType resolves an account type from "expense" or "費用" style labels.
func ParseType(s string) (model.AccountType, error) {
	if t, ok := typeLabels[s]; ok {
		return t, nil
	}
	t := model.AccountType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown account_type %q", s)
	}
	return t, nil
}
