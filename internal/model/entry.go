package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default values for the administrative columns of a Yayoi row.
const (
	DefaultFlag    = "2000" // 識別フラグ: single-line journal entry
	DefaultSticky1 = "0"    // 付箋1: unset
)

// Entry is one Yayoi journal row (one balanced double-entry line).
type Entry struct {
	Flag               string    // 識別フラグ
	VoucherNo          string    // 伝票No
	Settlement         string    // 決算
	Date               time.Time // 取引日付
	DebitAccount       string
	DebitSubAccount    string
	DebitDepartment    string
	DebitTaxCategory   string
	DebitAmount        decimal.Decimal
	DebitTax           string
	CreditAccount      string
	CreditSubAccount   string
	CreditDepartment   string
	CreditTaxCategory  string
	CreditAmount       decimal.Decimal
	CreditTax          string
	Summary            string // 摘要
	Number             string // 番号
	DueDate            string // 期日
	Type               string // タイプ
	Origin             string // 生成元
	Memo               string // 仕訳メモ
	Sticky1            string // 付箋1
	Sticky2            string // 付箋2
	Adjustment         string // 調整
	DebitCounterparty  string // 借方取引先名
	CreditCounterparty string // 貸方取引先名
}

// NewEntry returns an Entry with the administrative defaults filled in.
func NewEntry() Entry {
	return Entry{
		Flag:    DefaultFlag,
		Sticky1: DefaultSticky1,
	}
}

// Balanced reports whether the debit and credit amounts are equal.
func (e Entry) Balanced() bool {
	return e.DebitAmount.Equal(e.CreditAmount)
}
