package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source identifies where a record came from.
type Source string

const (
	SourceBank    Source = "bank"
	SourceReceipt Source = "receipt"
)

// Flow is the direction of money relative to the settlement account.
type Flow string

const (
	FlowOut  Flow = "out"  // withdrawal: named account on the debit side
	FlowIn   Flow = "in"   // deposit: named account on the credit side
	FlowAuto Flow = "auto" // decided by the account type
)

// Record is one raw input row, as handed over by a parser. All fields are
// the source text; nothing has been checked yet.
type Record struct {
	Row           int // line number in the source file; the header is line 1
	Source        Source
	Date          string
	Account       string
	Counterparty  string
	Description   string
	Amount        string
	Flow          Flow
	Tax           string
	InvoiceNumber string
	Excluded      bool
}

// Transaction is a Record that passed validation.
type Transaction struct {
	Row           int
	Source        Source
	Date          time.Time
	Account       Account
	Amount        decimal.Decimal // non-negative integer
	Flow          Flow
	Tax           string
	Counterparty  string
	Description   string
	InvoiceNumber string
}
