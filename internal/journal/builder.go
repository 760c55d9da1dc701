package journal

import (
	"strings"

	"github.com/cleared-dev/shiwake/internal/classify"
	"github.com/cleared-dev/shiwake/internal/model"
	"github.com/cleared-dev/shiwake/internal/normalize"
)

// Counterparty maps a label containing Match to the short name used as
// the receivable sub-account.
type Counterparty struct {
	Match string
	Name  string
}

// DefaultCounterparties returns the built-in receivable short names.
func DefaultCounterparties() []Counterparty {
	return []Counterparty{
		{Match: "genomedia株式会社", Name: "genomedia株式会社"},
		{Match: "株式会社 miup", Name: "株式会社miup"},
	}
}

// Options controls how a Builder lays out entries.
type Options struct {
	CashAccount       string // settlement account for receipts
	BankAccount       string // settlement account for bank rows
	ReceivableAccount string
	SummaryWidth      int
	CounterpartyWidth int
	GeneralizeSummary bool
	Counterparties    []Counterparty
}

// DefaultOptions returns the options used when no config is present.
func DefaultOptions() Options {
	return Options{
		CashAccount:       "現金",
		BankAccount:       "普通預金",
		ReceivableAccount: "売掛金",
		SummaryWidth:      SummaryWidth,
		CounterpartyWidth: CounterpartyWidth,
		GeneralizeSummary: true,
		Counterparties:    DefaultCounterparties(),
	}
}

// Builder turns validated transactions into Yayoi entries. It holds no
// mutable state and may be shared.
type Builder struct {
	opts       Options
	normalizer *normalize.Normalizer
	classifier *classify.Classifier
}

// NewBuilder creates a Builder. Nil normalizer or classifier fall back to
// the defaults; zero widths fall back to SummaryWidth and CounterpartyWidth.
func NewBuilder(opts Options, n *normalize.Normalizer, c *classify.Classifier) *Builder {
	if n == nil {
		n = normalize.Default()
	}
	if c == nil {
		c = classify.Default()
	}
	if opts.SummaryWidth <= 0 {
		opts.SummaryWidth = SummaryWidth
	}
	if opts.CounterpartyWidth <= 0 {
		opts.CounterpartyWidth = CounterpartyWidth
	}
	opts.Counterparties = append([]Counterparty(nil), opts.Counterparties...)
	return &Builder{opts: opts, normalizer: n, classifier: c}
}

// Build lays out one balanced entry for tx.
func (b *Builder) Build(tx model.Transaction) model.Entry {
	e := model.NewEntry()
	e.Date = tx.Date
	e.DebitAmount = tx.Amount
	e.CreditAmount = tx.Amount

	settlement := b.opts.BankAccount
	if tx.Source == model.SourceReceipt {
		settlement = b.opts.CashAccount
	}

	description := b.normalizer.Normalize(tx.Description)
	label := b.normalizer.Normalize(tx.Counterparty)
	if label == "" {
		label = description
	}

	// named is the side that carries the transaction's own account.
	var named, other side
	if b.namedOnDebit(tx) {
		named, other = debitSide(&e), creditSide(&e)
	} else {
		named, other = creditSide(&e), debitSide(&e)
	}
	*named.account = tx.Account.Name
	*named.tax = tx.Tax
	*other.account = settlement

	debtor, creditor := label, label
	if tx.Account.Name == b.opts.ReceivableAccount {
		short := b.shortName(label)
		*named.counterparty = ""
		*other.counterparty = short
		*other.subAccount = short
		debtor, creditor = e.DebitCounterparty, e.CreditCounterparty
	} else {
		e.DebitCounterparty = label
		e.CreditCounterparty = label
	}

	summary := description
	if b.opts.GeneralizeSummary {
		summary = b.classifier.Classify(classify.Input{
			Description: description,
			Account:     tx.Account.Name,
			Creditor:    creditor,
			Debtor:      debtor,
		})
	}
	e.Summary = Summary(summary, tx.InvoiceNumber, b.opts.SummaryWidth)

	e.DebitCounterparty = Truncate(e.DebitCounterparty, b.opts.CounterpartyWidth)
	e.CreditCounterparty = Truncate(e.CreditCounterparty, b.opts.CounterpartyWidth)
	return e
}

func (b *Builder) namedOnDebit(tx model.Transaction) bool {
	switch tx.Flow {
	case model.FlowOut:
		return true
	case model.FlowIn:
		return false
	default:
		return tx.Account.Type != model.AccountTypeRevenue
	}
}

// shortName resolves label to its configured short name, or label itself.
func (b *Builder) shortName(label string) string {
	for _, c := range b.opts.Counterparties {
		if c.Match != "" && strings.Contains(label, c.Match) {
			return c.Name
		}
	}
	return label
}

type side struct {
	account      *string
	subAccount   *string
	tax          *string
	counterparty *string
}

func debitSide(e *model.Entry) side {
	return side{&e.DebitAccount, &e.DebitSubAccount, &e.DebitTax, &e.DebitCounterparty}
}

func creditSide(e *model.Entry) side {
	return side{&e.CreditAccount, &e.CreditSubAccount, &e.CreditTax, &e.CreditCounterparty}
}
